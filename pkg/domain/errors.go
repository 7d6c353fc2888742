package domain

import "errors"

// ErrUnknownKind is returned when a kind string is neither arithmetic nor geometric.
var ErrUnknownKind = errors.New("unknown sequence kind")

// ErrTermCountRange is returned when the requested term count is outside the
// accepted range. Callers surface it as a user-visible warning and skip
// generation entirely.
var ErrTermCountRange = errors.New("term count out of range")

// ErrSessionNotFound is returned when a session ID cannot be found in the store.
var ErrSessionNotFound = errors.New("session not found")
