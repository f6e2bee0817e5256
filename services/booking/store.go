package booking

import (
	"context"
	"time"

	"tripatlas/models"
)

// SessionStore persists booking sessions between form steps. Implementations
// must return ErrSessionNotFound for missing or expired sessions.
type SessionStore interface {
	Save(ctx context.Context, session models.BookingSession, ttl time.Duration) error
	Get(ctx context.Context, sessionID string) (*models.BookingSession, error)
	Delete(ctx context.Context, sessionID string) error
}
