package port

import (
	"context"

	"skema/internal/domain"
)

// SessionStore holds bounded per-session conversation history. Append must
// perform read-append-trim as a single atomic unit per session id so
// concurrent requests against the same session never lose updates.
type SessionStore interface {
	// Get returns the session's turns in order; empty for unknown ids.
	Get(ctx context.Context, sessionID string) ([]domain.Turn, error)
	// Append adds a turn, creating the session on first use, then trims the
	// history to the configured maximum (oldest turns dropped first).
	Append(ctx context.Context, sessionID string, turn domain.Turn) error
	// Clear removes all turns for the id; idempotent on unknown ids.
	Clear(ctx context.Context, sessionID string) error
}
