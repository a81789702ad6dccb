package service

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"
	"github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/checkout/session"
	"github.com/stripe/stripe-go/v76/webhook"
	"gorm.io/gorm"

	"github.com/vitalplan/backend/config"
	"github.com/vitalplan/backend/internal/models"
)

// BillingService creates Stripe checkout sessions and applies
// subscription state from webhook events. The pipeline itself never
// checks entitlement; its HTTP entry point is gated by this service.
type BillingService struct {
	db            *gorm.DB
	priceID       string
	webhookSecret string
	successURL    string
	cancelURL     string
}

// NewBillingService creates a new BillingService instance
func NewBillingService(db *gorm.DB, cfg *config.Config) *BillingService {
	stripe.Key = cfg.StripeSecretKey
	return &BillingService{
		db:            db,
		priceID:       cfg.StripePriceID,
		webhookSecret: cfg.StripeWebhookSecret,
		successURL:    cfg.CheckoutSuccessURL,
		cancelURL:     cfg.CheckoutCancelURL,
	}
}

// CheckoutSession is the subset of the Stripe session the frontend
// needs.
type CheckoutSession struct {
	SessionID string `json:"session_id"`
	URL       string `json:"url"`
}

// CreateCheckoutSession starts a subscription checkout for the user.
func (s *BillingService) CreateCheckoutSession(ctx context.Context, userID uuid.UUID) (*CheckoutSession, error) {
	params := &stripe.CheckoutSessionParams{
		Mode: stripe.String(string(stripe.CheckoutSessionModeSubscription)),
		LineItems: []*stripe.CheckoutSessionLineItemParams{
			{
				Price:    stripe.String(s.priceID),
				Quantity: stripe.Int64(1),
			},
		},
		SuccessURL:        stripe.String(s.successURL),
		CancelURL:         stripe.String(s.cancelURL),
		ClientReferenceID: stripe.String(userID.String()),
	}
	params.Context = ctx

	sess, err := session.New(params)
	if err != nil {
		return nil, fmt.Errorf("failed to create checkout session: %w", err)
	}

	return &CheckoutSession{SessionID: sess.ID, URL: sess.URL}, nil
}

// HandleWebhook verifies a Stripe webhook signature and applies
// subscription changes. Unknown event types are acknowledged and
// ignored.
func (s *BillingService) HandleWebhook(ctx context.Context, payload []byte, signature string) error {
	event, err := webhook.ConstructEvent(payload, signature, s.webhookSecret)
	if err != nil {
		return fmt.Errorf("webhook signature verification failed: %w", err)
	}

	switch event.Type {
	case "checkout.session.completed":
		var sess stripe.CheckoutSession
		if err := json.Unmarshal(event.Data.Raw, &sess); err != nil {
			return fmt.Errorf("failed to parse checkout session: %w", err)
		}
		userID, err := uuid.Parse(sess.ClientReferenceID)
		if err != nil {
			return fmt.Errorf("invalid client reference id %q: %w", sess.ClientReferenceID, err)
		}
		return s.activateSubscription(ctx, userID)
	default:
		log.Printf("billing: ignoring webhook event type %s", event.Type)
	}

	return nil
}

func (s *BillingService) activateSubscription(ctx context.Context, userID uuid.UUID) error {
	end := time.Now().AddDate(0, 1, 0)
	return s.db.WithContext(ctx).
		Model(&models.User{}).
		Where("id = ?", userID).
		Updates(map[string]interface{}{
			"subscription_active": true,
			"subscription_end":    end,
		}).Error
}

// IsEntitled reports whether the user may generate plans.
func (s *BillingService) IsEntitled(ctx context.Context, userID uuid.UUID) (bool, error) {
	var user models.User
	if err := s.db.WithContext(ctx).First(&user, "id = ?", userID).Error; err != nil {
		return false, err
	}
	return user.IsEntitled(time.Now()), nil
}
