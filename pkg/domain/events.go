package domain

import (
	"context"
	"time"
)

// EventType defines the category of the event.
type EventType string

const (
	EventGenerate EventType = "generate"
	EventReject   EventType = "reject"
)

// GenerateEvent is emitted after a successful generation.
type GenerateEvent struct {
	Timestamp time.Time `json:"timestamp"`
	Kind      Kind      `json:"kind"`
	TermCount int       `json:"term_count"`
	Duration  time.Duration
}

// RejectEvent is emitted when validation short-circuits a request.
type RejectEvent struct {
	Timestamp time.Time `json:"timestamp"`
	Kind      Kind      `json:"kind"`
	Reason    string    `json:"reason"`
}

// LifecycleHooks defines callbacks for engine observability.
// Nil hooks are skipped.
type LifecycleHooks struct {
	OnGenerate func(context.Context, *GenerateEvent)
	OnReject   func(context.Context, *RejectEvent)
}
