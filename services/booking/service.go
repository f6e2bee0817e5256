package booking

import (
	"context"
	"fmt"
	"time"

	"tripatlas/models"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// cheapestAccommodation returns the id of the zero-surcharge tier so new
// sessions start on the included stay.
func (s *DefaultSessionService) cheapestAccommodation(ctx context.Context) string {
	accoms, err := s.Catalog.AccommodationTypes(ctx)
	if err != nil {
		return ""
	}
	for _, a := range accoms {
		if a.Surcharge == 0 {
			return a.ID
		}
	}
	return ""
}

// InitiateSession creates a new booking session for the chosen plan, assigns
// it a unique SessionID and stores it with the configured TTL. The selection
// starts with one traveler, one room and the included accommodation tier.
func (s *DefaultSessionService) InitiateSession(ctx context.Context, planID string, basePricePerPerson int64) (*models.BookingSession, error) {
	if _, err := s.Catalog.PlanByID(ctx, planID); err != nil {
		return nil, fmt.Errorf("cannot start booking for plan %q: %w", planID, err)
	}

	session := models.BookingSession{
		SessionID: uuid.New().String(),
		Selection: models.BookingSelection{
			ChosenPlanID:       planID,
			BasePricePerPerson: basePricePerPerson,
			AccommodationType:  s.cheapestAccommodation(ctx),
			TravelerCount:      1,
			RoomCount:          1,
		},
		CreatedAt: time.Now(),
	}
	session.Total = s.Calculator.Total(session.Selection)

	if err := s.Store.Save(ctx, session, s.SessionTTL); err != nil {
		return nil, err
	}

	s.Logger.Info("booking session started",
		zap.String("session", session.SessionID), zap.String("plan", planID))
	return &session, nil
}

// UpdateSession applies one step of the booking form and recomputes the total
// from scratch; the calculator has no memory of previous totals.
func (s *DefaultSessionService) UpdateSession(ctx context.Context, sessionID string, patch models.SelectionPatch) (*models.BookingSession, error) {
	session, err := s.Store.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	if patch.AccommodationType != nil {
		session.Selection.AccommodationType = *patch.AccommodationType
	}
	if patch.AddOnIDs != nil {
		session.Selection.AddOnIDs = append([]string(nil), (*patch.AddOnIDs)...)
	}
	if patch.TravelerCount != nil {
		session.Selection.TravelerCount = *patch.TravelerCount
	}
	if patch.RoomCount != nil {
		session.Selection.RoomCount = *patch.RoomCount
	}

	session.Total = s.Calculator.Total(session.Selection)

	if err := s.Store.Save(ctx, *session, s.SessionTTL); err != nil {
		return nil, err
	}
	return session, nil
}

// ConfirmBooking finalizes the order: the total is recomputed one last time,
// a payment intent is created, the immutable confirmation is returned and the
// session is discarded.
func (s *DefaultSessionService) ConfirmBooking(ctx context.Context, sessionID string) (*models.BookingConfirmation, error) {
	session, err := s.Store.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	total := s.Calculator.Total(session.Selection)
	bookingID := uuid.New().String()

	intentID, err := s.Payment.CreateIntent(ctx, total.GrandTotal, bookingID)
	if err != nil {
		return nil, fmt.Errorf("payment failed for session %s: %w", sessionID, err)
	}

	conf := models.BookingConfirmation{
		BookingID:       bookingID,
		PlanID:          session.Selection.ChosenPlanID,
		Selection:       session.Selection,
		Total:           total,
		PaymentIntentID: intentID,
		Status:          "confirmed",
		ConfirmedAt:     time.Now(),
	}

	if s.Archiver != nil {
		if err := s.Archiver.EnqueueArchive(conf); err != nil {
			// Archiving is best-effort; the confirmation already stands.
			s.Logger.Warn("failed to enqueue booking archive",
				zap.String("booking", bookingID), zap.Error(err))
		}
	}

	if err := s.Store.Delete(ctx, sessionID); err != nil {
		s.Logger.Warn("failed to drop confirmed session", zap.String("session", sessionID), zap.Error(err))
	}

	s.Logger.Info("booking confirmed",
		zap.String("booking", bookingID),
		zap.String("plan", conf.PlanID),
		zap.Int64("grandTotal", total.GrandTotal))
	return &conf, nil
}

// CancelSession discards the session state.
func (s *DefaultSessionService) CancelSession(ctx context.Context, sessionID string) error {
	if err := s.Store.Delete(ctx, sessionID); err != nil {
		return fmt.Errorf("failed to cancel booking session: %w", err)
	}
	return nil
}
