package payments

import "context"

// CheckoutSession is a freshly created hosted checkout page.
type CheckoutSession struct {
	SessionID string
	URL       string
}

// SessionStatus is the current external view of a checkout session.
type SessionStatus struct {
	Status        string
	PaymentStatus string
	AmountTotal   int64
	Currency      string
}

// WebhookEvent is a verified and parsed payment-service callback. SessionID
// is empty when the event does not reference a checkout session.
type WebhookEvent struct {
	EventType     string
	SessionID     string
	PaymentStatus string
}

// Gateway is the narrow surface of the external payment service. Amounts are
// in the major currency unit; AmountTotal comes back in the minor unit, as
// the external service reports it.
type Gateway interface {
	CreateCheckoutSession(ctx context.Context, amount float64, currency string, successURL, cancelURL, webhookURL string, metadata map[string]string) (*CheckoutSession, error)
	GetSessionStatus(ctx context.Context, sessionID string) (*SessionStatus, error)
	ParseWebhook(body []byte, signature string) (*WebhookEvent, error)
}

var _ Gateway = (*StripeGateway)(nil)
