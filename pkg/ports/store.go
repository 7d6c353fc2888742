package ports

import (
	"context"

	"github.com/nthterm/nthterm/pkg/domain"
)

// SessionStore persists a visitor's last generation parameters so the form
// can be pre-filled across visits. Results are never stored; they are
// recomputed on every request.
type SessionStore interface {
	// Save persists the session under its ID.
	Save(ctx context.Context, session *domain.Session) error

	// Load retrieves a session by ID.
	// Returns domain.ErrSessionNotFound if the session does not exist.
	Load(ctx context.Context, id string) (*domain.Session, error)

	// Delete removes the session.
	Delete(ctx context.Context, id string) error

	// List returns the IDs of active sessions.
	List(ctx context.Context) ([]string, error)
}
