package booking

import (
	"context"
	"time"

	"tripatlas/database/repository/catalog"
	"tripatlas/models"

	"go.uber.org/zap"
)

// SessionService manages the multi-step trip booking flow: a session is
// initiated for a chosen plan, its selection is patched step by step with the
// total recomputed on every change, and confirmation finalizes the order.
type SessionService interface {
	InitiateSession(ctx context.Context, planID string, basePricePerPerson int64) (*models.BookingSession, error)
	UpdateSession(ctx context.Context, sessionID string, patch models.SelectionPatch) (*models.BookingSession, error)
	ConfirmBooking(ctx context.Context, sessionID string) (*models.BookingConfirmation, error)
	CancelSession(ctx context.Context, sessionID string) error
}

// Archiver records confirmed bookings asynchronously. Optional; a nil
// archiver disables archiving.
type Archiver interface {
	EnqueueArchive(conf models.BookingConfirmation) error
}

// DefaultSessionService implements SessionService.
type DefaultSessionService struct {
	Catalog    catalog.Repository
	Store      SessionStore
	Calculator *Calculator
	Payment    PaymentHandler
	Archiver   Archiver
	SessionTTL time.Duration
	Logger     *zap.Logger
}
