package booking

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/paymentintent"
	"go.uber.org/zap"
)

// PaymentHandler creates the payment intent that order placement hands to the
// external payment collaborator.
type PaymentHandler interface {
	CreateIntent(ctx context.Context, amount int64, bookingID string) (string, error)
}

// StripePaymentHandler creates a real Stripe payment intent when a key is
// configured and falls back to a simulated intent otherwise, so the flow
// works in development without a Stripe account.
type StripePaymentHandler struct {
	Logger     *zap.Logger
	Configured bool
	Currency   string
}

func NewStripePaymentHandler(logger *zap.Logger, configured bool) *StripePaymentHandler {
	return &StripePaymentHandler{Logger: logger, Configured: configured, Currency: "inr"}
}

func (h *StripePaymentHandler) CreateIntent(ctx context.Context, amount int64, bookingID string) (string, error) {
	if !h.Configured {
		intentID := "pi_sim_" + uuid.New().String()
		h.Logger.Info("Simulated payment intent",
			zap.String("intent", intentID), zap.String("booking", bookingID), zap.Int64("amount", amount))
		return intentID, nil
	}

	// Stripe amounts are in minor units.
	params := &stripe.PaymentIntentParams{
		Amount:   stripe.Int64(amount * 100),
		Currency: stripe.String(h.Currency),
	}
	params.AddMetadata("bookingId", bookingID)

	intent, err := paymentintent.New(params)
	if err != nil {
		return "", fmt.Errorf("failed to create payment intent: %w", err)
	}
	h.Logger.Info("Created payment intent",
		zap.String("intent", intent.ID), zap.String("booking", bookingID), zap.Int64("amount", amount))
	return intent.ID, nil
}
