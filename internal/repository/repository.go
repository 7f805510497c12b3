package repository

import (
	"context"

	"zyppy-backend/internal/domain"
)

// Repositories return (nil, nil) when a single document is not found;
// callers decide whether a miss is an error.

type UserRepository interface {
	Insert(ctx context.Context, user *domain.User) error
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
}

type RestaurantRepository interface {
	InsertMany(ctx context.Context, restaurants []domain.Restaurant) error
	Find(ctx context.Context, cuisine, search string) ([]domain.Restaurant, error)
	FindByID(ctx context.Context, id string) (*domain.Restaurant, error)
	HasAny(ctx context.Context) (bool, error)
}

type FoodItemRepository interface {
	InsertMany(ctx context.Context, items []domain.FoodItem) error
	FindByID(ctx context.Context, id string) (*domain.FoodItem, error)
	FindMenu(ctx context.Context, restaurantID, category string) ([]domain.FoodItem, error)
	Search(ctx context.Context, q string) ([]domain.FoodItem, error)
}

type OrderRepository interface {
	Insert(ctx context.Context, order *domain.Order) error
	FindByID(ctx context.Context, id string) (*domain.Order, error)
	FindByUser(ctx context.Context, userID string) ([]domain.Order, error)
	// UpdateStatus reports whether any order matched the id.
	UpdateStatus(ctx context.Context, id string, status domain.OrderStatus) (bool, error)
	SetPaymentSession(ctx context.Context, id, sessionID string) error
}

type ReviewRepository interface {
	Insert(ctx context.Context, review *domain.Review) error
	FindByUserAndOrder(ctx context.Context, userID, orderID string) (*domain.Review, error)
	FindByRestaurant(ctx context.Context, restaurantID string) ([]domain.Review, error)
}

type PaymentRepository interface {
	Insert(ctx context.Context, txn *domain.PaymentTransaction) error
	FindBySessionID(ctx context.Context, sessionID string) (*domain.PaymentTransaction, error)
	// UpdateFromPoll refreshes both status fields from a fresh external read.
	UpdateFromPoll(ctx context.Context, sessionID, paymentStatus, status string) error
	// UpdatePaymentStatus is the webhook path: payment_status and updated_at only.
	UpdatePaymentStatus(ctx context.Context, sessionID, paymentStatus string) error
}
