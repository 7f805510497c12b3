package payments

import (
	"context"
	"encoding/json"
	"fmt"
	"math"

	"github.com/stripe/stripe-go/v81"
	"github.com/stripe/stripe-go/v81/checkout/session"
	"github.com/stripe/stripe-go/v81/webhook"

	"zyppy-backend/internal/domain"
)

type StripeGateway struct {
	webhookSecret string
}

func NewStripeGateway(apiKey, webhookSecret string) *StripeGateway {
	stripe.Key = apiKey
	return &StripeGateway{webhookSecret: webhookSecret}
}

func (g *StripeGateway) CreateCheckoutSession(ctx context.Context, amount float64, currency string, successURL, cancelURL, webhookURL string, metadata map[string]string) (*CheckoutSession, error) {
	params := &stripe.CheckoutSessionParams{
		Mode:       stripe.String(string(stripe.CheckoutSessionModePayment)),
		SuccessURL: stripe.String(successURL),
		CancelURL:  stripe.String(cancelURL),
		LineItems: []*stripe.CheckoutSessionLineItemParams{
			{
				PriceData: &stripe.CheckoutSessionLineItemPriceDataParams{
					Currency:   stripe.String(currency),
					UnitAmount: stripe.Int64(int64(math.Round(amount * 100))),
					ProductData: &stripe.CheckoutSessionLineItemPriceDataProductDataParams{
						Name: stripe.String("Food delivery order"),
					},
				},
				Quantity: stripe.Int64(1),
			},
		},
	}
	params.Context = ctx
	for k, v := range metadata {
		params.AddMetadata(k, v)
	}

	s, err := session.New(params)
	if err != nil {
		return nil, err
	}

	return &CheckoutSession{SessionID: s.ID, URL: s.URL}, nil
}

func (g *StripeGateway) GetSessionStatus(ctx context.Context, sessionID string) (*SessionStatus, error) {
	params := &stripe.CheckoutSessionParams{}
	params.Context = ctx

	s, err := session.Get(sessionID, params)
	if err != nil {
		return nil, err
	}

	return &SessionStatus{
		Status:        normalizeSessionStatus(s.Status),
		PaymentStatus: normalizePaymentStatus(s.PaymentStatus),
		AmountTotal:   s.AmountTotal,
		Currency:      string(s.Currency),
	}, nil
}

func (g *StripeGateway) ParseWebhook(body []byte, signature string) (*WebhookEvent, error) {
	event, err := webhook.ConstructEvent(body, signature, g.webhookSecret)
	if err != nil {
		return nil, fmt.Errorf("webhook verification failed: %w", err)
	}

	out := &WebhookEvent{EventType: string(event.Type)}

	switch event.Type {
	case "checkout.session.completed", "checkout.session.async_payment_succeeded",
		"checkout.session.async_payment_failed", "checkout.session.expired":
		var s stripe.CheckoutSession
		if err := json.Unmarshal(event.Data.Raw, &s); err != nil {
			return nil, fmt.Errorf("parsing checkout session payload: %w", err)
		}
		out.SessionID = s.ID
		out.PaymentStatus = normalizePaymentStatus(s.PaymentStatus)
		if event.Type == "checkout.session.async_payment_failed" {
			out.PaymentStatus = domain.PaymentStatusFailed
		}
	}

	return out, nil
}

// Stripe reports open/complete/expired sessions and unpaid/paid payments;
// the transaction records use the vocabulary from the data model.
func normalizeSessionStatus(s stripe.CheckoutSessionStatus) string {
	switch s {
	case stripe.CheckoutSessionStatusComplete:
		return domain.SessionStatusCompleted
	case stripe.CheckoutSessionStatusExpired:
		return domain.SessionStatusExpired
	default:
		return domain.SessionStatusInitiated
	}
}

func normalizePaymentStatus(s stripe.CheckoutSessionPaymentStatus) string {
	switch s {
	case stripe.CheckoutSessionPaymentStatusPaid, stripe.CheckoutSessionPaymentStatusNoPaymentRequired:
		return domain.PaymentStatusPaid
	default:
		return domain.PaymentStatusPending
	}
}
