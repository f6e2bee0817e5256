package booking

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	catalogRepo "tripatlas/database/repository/catalog"
	"tripatlas/models"

	"go.uber.org/zap"
)

func newTestSessionService() *DefaultSessionService {
	return &DefaultSessionService{
		Catalog:    catalogRepo.NewMemoryCatalogRepo(),
		Store:      NewMemorySessionStore(),
		Calculator: newTestCalculator(),
		Payment:    NewStripePaymentHandler(zap.NewNop(), false),
		SessionTTL: time.Minute,
		Logger:     zap.NewNop(),
	}
}

func TestInitiateSessionDefaults(t *testing.T) {
	svc := newTestSessionService()

	session, err := svc.InitiateSession(context.Background(), "nature-ultimate", 18000)
	if err != nil {
		t.Fatalf("InitiateSession: %v", err)
	}
	if session.SessionID == "" {
		t.Error("session id not assigned")
	}
	sel := session.Selection
	if sel.TravelerCount != 1 || sel.RoomCount != 1 {
		t.Errorf("defaults = %d travelers, %d rooms; want 1 and 1", sel.TravelerCount, sel.RoomCount)
	}
	if sel.AccommodationType != "homestay" {
		t.Errorf("default accommodation = %s, want the zero-surcharge tier", sel.AccommodationType)
	}
	if session.Total.GrandTotal != 18000 {
		t.Errorf("initial total = %d, want 18000", session.Total.GrandTotal)
	}
}

func TestInitiateSessionUnknownPlan(t *testing.T) {
	svc := newTestSessionService()
	if _, err := svc.InitiateSession(context.Background(), "no-such-plan", 18000); !errors.Is(err, catalogRepo.ErrPlanNotFound) {
		t.Fatalf("err = %v, want ErrPlanNotFound", err)
	}
}

func TestUpdateSessionRecomputesTotal(t *testing.T) {
	svc := newTestSessionService()
	ctx := context.Background()

	session, err := svc.InitiateSession(ctx, "nature-ultimate", 18000)
	if err != nil {
		t.Fatalf("InitiateSession: %v", err)
	}

	accom := "standard"
	addOns := []string{"guide"}
	travelers := 2
	updated, err := svc.UpdateSession(ctx, session.SessionID, models.SelectionPatch{
		AccommodationType: &accom,
		AddOnIDs:          &addOns,
		TravelerCount:     &travelers,
	})
	if err != nil {
		t.Fatalf("UpdateSession: %v", err)
	}
	if updated.Total.GrandTotal != 43000 {
		t.Errorf("total after update = %d, want 43000", updated.Total.GrandTotal)
	}

	// A later step only touches rooms; earlier choices stick.
	rooms := 3
	updated, err = svc.UpdateSession(ctx, session.SessionID, models.SelectionPatch{RoomCount: &rooms})
	if err != nil {
		t.Fatalf("UpdateSession: %v", err)
	}
	if updated.Selection.AccommodationType != "standard" || len(updated.Selection.AddOnIDs) != 1 {
		t.Error("partial patch clobbered earlier selections")
	}
	if updated.Total.GrandTotal != 47000 {
		t.Errorf("total with 3 rooms = %d, want 47000", updated.Total.GrandTotal)
	}
}

func TestConfirmBookingFinalizesAndDropsSession(t *testing.T) {
	svc := newTestSessionService()
	ctx := context.Background()

	session, err := svc.InitiateSession(ctx, "heritage-trails", 16500)
	if err != nil {
		t.Fatalf("InitiateSession: %v", err)
	}

	conf, err := svc.ConfirmBooking(ctx, session.SessionID)
	if err != nil {
		t.Fatalf("ConfirmBooking: %v", err)
	}
	if conf.Status != "confirmed" {
		t.Errorf("status = %s, want confirmed", conf.Status)
	}
	if conf.PlanID != "heritage-trails" {
		t.Errorf("plan = %s, want heritage-trails", conf.PlanID)
	}
	if !strings.HasPrefix(conf.PaymentIntentID, "pi_sim_") {
		t.Errorf("unconfigured payment should simulate an intent, got %s", conf.PaymentIntentID)
	}
	if conf.Total.GrandTotal != 16500 {
		t.Errorf("grand total = %d, want 16500", conf.Total.GrandTotal)
	}

	if _, err := svc.UpdateSession(ctx, session.SessionID, models.SelectionPatch{}); !errors.Is(err, ErrSessionNotFound) {
		t.Errorf("confirmed session should be gone, got err = %v", err)
	}
}

func TestCancelSessionDiscardsState(t *testing.T) {
	svc := newTestSessionService()
	ctx := context.Background()

	session, err := svc.InitiateSession(ctx, "leisure-lakeside", 15500)
	if err != nil {
		t.Fatalf("InitiateSession: %v", err)
	}
	if err := svc.CancelSession(ctx, session.SessionID); err != nil {
		t.Fatalf("CancelSession: %v", err)
	}
	if _, err := svc.ConfirmBooking(ctx, session.SessionID); !errors.Is(err, ErrSessionNotFound) {
		t.Errorf("cancelled session should be gone, got err = %v", err)
	}
}

func TestMemorySessionStoreExpiry(t *testing.T) {
	store := NewMemorySessionStore()
	ctx := context.Background()

	session := models.BookingSession{SessionID: "s1"}
	if err := store.Save(ctx, session, -time.Second); err != nil {
		t.Fatalf("Save: %v", err)
	}
	if _, err := store.Get(ctx, "s1"); !errors.Is(err, ErrSessionNotFound) {
		t.Errorf("expired session should report not found, got %v", err)
	}
}
