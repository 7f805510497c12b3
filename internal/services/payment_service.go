package services

import (
	"context"
	"fmt"
	"log/slog"

	"zyppy-backend/internal/domain"
	"zyppy-backend/internal/infra/payments"
	"zyppy-backend/internal/repository"
)

const checkoutCurrency = "usd"

type CheckoutResult struct {
	URL       string `json:"url"`
	SessionID string `json:"session_id"`
}

// PaymentService creates hosted checkout sessions and reconciles their state
// back onto orders, via polling and via webhooks. A nil gateway means the
// payment service is unconfigured and every operation fails with
// ErrPaymentNotConfigured.
type PaymentService struct {
	gateway      payments.Gateway
	transactions repository.PaymentRepository
	orders       repository.OrderRepository
}

func NewPaymentService(gateway payments.Gateway, transactions repository.PaymentRepository, orders repository.OrderRepository) *PaymentService {
	return &PaymentService{
		gateway:      gateway,
		transactions: transactions,
		orders:       orders,
	}
}

// CreateCheckoutSession asks the external service for a hosted checkout page
// covering the order total and records the attempt. A new session overwrites
// the order's previous payment_session_id; concurrent checkouts race and the
// last write wins.
func (s *PaymentService) CreateCheckoutSession(ctx context.Context, orderID, originURL string) (*CheckoutResult, error) {
	if s.gateway == nil {
		return nil, ErrPaymentNotConfigured
	}

	order, err := s.orders.FindByID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, ErrOrderNotFound
	}

	webhookURL := originURL + "/api/webhook/stripe"
	successURL := originURL + "/order-success?session_id={CHECKOUT_SESSION_ID}"
	cancelURL := originURL + "/checkout"

	metadata := map[string]string{
		"order_id": orderID,
		"user_id":  order.UserID,
		"source":   "zyppy_food_delivery",
	}

	session, err := s.gateway.CreateCheckoutSession(ctx, order.TotalAmount, checkoutCurrency, successURL, cancelURL, webhookURL, metadata)
	if err != nil {
		return nil, fmt.Errorf("failed to create checkout session: %w", err)
	}

	txn := domain.NewPaymentTransaction(session.SessionID, orderID, order.UserID, order.TotalAmount, checkoutCurrency, metadata)
	if err := s.transactions.Insert(ctx, txn); err != nil {
		return nil, err
	}

	if err := s.orders.SetPaymentSession(ctx, orderID, session.SessionID); err != nil {
		return nil, err
	}

	return &CheckoutResult{URL: session.URL, SessionID: session.SessionID}, nil
}

// GetPaymentStatus reads the session fresh from the external service and
// syncs the transaction record. The order is confirmed only on the
// transition into "paid": repeated polls of an already-paid session do not
// touch the order again.
func (s *PaymentService) GetPaymentStatus(ctx context.Context, sessionID string) (*payments.SessionStatus, error) {
	if s.gateway == nil {
		return nil, ErrPaymentNotConfigured
	}

	status, err := s.gateway.GetSessionStatus(ctx, sessionID)
	if err != nil {
		return nil, fmt.Errorf("failed to get payment status: %w", err)
	}

	txn, err := s.transactions.FindBySessionID(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if txn == nil {
		// Unknown session: report the external state, nothing to sync.
		return status, nil
	}

	previousStatus := txn.PaymentStatus
	if err := s.transactions.UpdateFromPoll(ctx, sessionID, status.PaymentStatus, status.Status); err != nil {
		return nil, err
	}

	if status.PaymentStatus == domain.PaymentStatusPaid && previousStatus != domain.PaymentStatusPaid {
		if _, err := s.orders.UpdateStatus(ctx, txn.OrderID, domain.StatusConfirmed); err != nil {
			return nil, err
		}
	}

	return status, nil
}

// HandleWebhook applies a verified payment-service callback. Unlike the
// polling path it updates only the transaction's payment_status, and a
// "paid" event confirms the order every time it is delivered, with no
// edge check. Unknown sessions are still acknowledged.
func (s *PaymentService) HandleWebhook(ctx context.Context, body []byte, signature string) error {
	if s.gateway == nil {
		return ErrPaymentNotConfigured
	}

	event, err := s.gateway.ParseWebhook(body, signature)
	if err != nil {
		return fmt.Errorf("webhook error: %w", err)
	}

	if event.SessionID == "" {
		return nil
	}

	if err := s.transactions.UpdatePaymentStatus(ctx, event.SessionID, event.PaymentStatus); err != nil {
		return err
	}

	if event.PaymentStatus == domain.PaymentStatusPaid {
		txn, err := s.transactions.FindBySessionID(ctx, event.SessionID)
		if err != nil {
			return err
		}
		if txn != nil {
			if _, err := s.orders.UpdateStatus(ctx, txn.OrderID, domain.StatusConfirmed); err != nil {
				return err
			}
		} else {
			slog.Info("webhook for unknown session acknowledged", slog.String("session_id", event.SessionID))
		}
	}

	return nil
}
