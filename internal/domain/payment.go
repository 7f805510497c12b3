package domain

import (
	"time"

	"github.com/google/uuid"
)

const (
	PaymentStatusPending   = "pending"
	PaymentStatusPaid      = "paid"
	PaymentStatusFailed    = "failed"
	PaymentStatusCancelled = "cancelled"

	SessionStatusInitiated = "initiated"
	SessionStatusCompleted = "completed"
	SessionStatusExpired   = "expired"
)

// PaymentTransaction records one checkout attempt. There is exactly one per
// external session id; polling and webhooks only ever update status fields
// and UpdatedAt.
type PaymentTransaction struct {
	ID            string            `json:"id" bson:"id"`
	SessionID     string            `json:"session_id" bson:"session_id"`
	PaymentID     string            `json:"payment_id,omitempty" bson:"payment_id,omitempty"`
	UserID        string            `json:"user_id,omitempty" bson:"user_id,omitempty"`
	OrderID       string            `json:"order_id" bson:"order_id"`
	Amount        float64           `json:"amount" bson:"amount"`
	Currency      string            `json:"currency" bson:"currency"`
	PaymentStatus string            `json:"payment_status" bson:"payment_status"`
	Status        string            `json:"status" bson:"status"`
	Metadata      map[string]string `json:"metadata,omitempty" bson:"metadata,omitempty"`
	CreatedAt     time.Time         `json:"created_at" bson:"created_at"`
	UpdatedAt     time.Time         `json:"updated_at" bson:"updated_at"`
}

func NewPaymentTransaction(sessionID, orderID, userID string, amount float64, currency string, metadata map[string]string) *PaymentTransaction {
	now := time.Now().UTC()
	return &PaymentTransaction{
		ID:            uuid.NewString(),
		SessionID:     sessionID,
		OrderID:       orderID,
		UserID:        userID,
		Amount:        amount,
		Currency:      currency,
		PaymentStatus: PaymentStatusPending,
		Status:        SessionStatusInitiated,
		Metadata:      metadata,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
}
