package services

import (
	"context"
	"log/slog"
	"math"
	"time"

	"zyppy-backend/internal/domain"
	"zyppy-backend/internal/infra/rabbitmq"
	"zyppy-backend/internal/repository"
)

// CatalogReader is the slice of the catalog the order service needs for
// pricing. Both lookups return (nil, nil) on a miss.
type CatalogReader interface {
	FoodItemByID(ctx context.Context, id string) (*domain.FoodItem, error)
	RestaurantByID(ctx context.Context, id string) (*domain.Restaurant, error)
}

var _ CatalogReader = (*CatalogService)(nil)

type OrderService struct {
	orders    repository.OrderRepository
	catalog   CatalogReader
	publisher rabbitmq.PublisherInterface
}

func NewOrderService(orders repository.OrderRepository, catalog CatalogReader, publisher rabbitmq.PublisherInterface) *OrderService {
	return &OrderService{
		orders:    orders,
		catalog:   catalog,
		publisher: publisher,
	}
}

// CreateOrder prices the cart and persists a pending order. Prices are a
// snapshot taken now; nothing reconciles later menu changes. A line whose
// food item cannot be resolved contributes zero instead of failing the
// order, and a missing restaurant means no delivery fee. That leniency is
// carried over from the original system on purpose; it can hide bad item
// ids from the caller.
func (s *OrderService) CreateOrder(ctx context.Context, userID, restaurantID string, items []domain.CartItem, deliveryAddress string) (*domain.Order, error) {
	total := 0.0
	for _, item := range items {
		food, err := s.catalog.FoodItemByID(ctx, item.FoodItemID)
		if err != nil {
			return nil, err
		}
		if food == nil {
			continue
		}
		total += food.Price * float64(item.Quantity)
	}

	restaurant, err := s.catalog.RestaurantByID(ctx, restaurantID)
	if err != nil {
		return nil, err
	}
	if restaurant != nil {
		total += restaurant.DeliveryFee
	}

	order := domain.NewOrder(userID, restaurantID, items, deliveryAddress)
	order.TotalAmount = math.Round(total*100) / 100

	if err := s.orders.Insert(ctx, order); err != nil {
		return nil, err
	}

	go s.publishOrderCreated(context.Background(), order)

	return order, nil
}

func (s *OrderService) GetOrder(ctx context.Context, id string) (*domain.Order, error) {
	order, err := s.orders.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, ErrOrderNotFound
	}
	return order, nil
}

func (s *OrderService) GetUserOrders(ctx context.Context, userID string) ([]domain.Order, error) {
	return s.orders.FindByUser(ctx, userID)
}

// UpdateOrderStatus sets any valid status from any current one; there is no
// transition graph to walk, delivered back to pending is allowed.
func (s *OrderService) UpdateOrderStatus(ctx context.Context, id string, status domain.OrderStatus) error {
	if !domain.ValidOrderStatus(status) {
		return ErrInvalidStatus
	}

	matched, err := s.orders.UpdateStatus(ctx, id, status)
	if err != nil {
		return err
	}
	if !matched {
		return ErrOrderNotFound
	}

	go s.publishStatusChanged(context.Background(), id, status)

	return nil
}

func (s *OrderService) publishOrderCreated(ctx context.Context, order *domain.Order) {
	if s.publisher == nil {
		return
	}
	evt := domain.OrderCreatedEvent{
		OrderID:      order.ID,
		UserID:       order.UserID,
		RestaurantID: order.RestaurantID,
		TotalAmount:  order.TotalAmount,
		CreatedAt:    order.CreatedAt,
	}
	if err := s.publisher.Publish(ctx, "order.created", evt); err != nil {
		slog.Error("failed to publish order.created", slog.String("order_id", order.ID), slog.String("error", err.Error()))
	}
}

func (s *OrderService) publishStatusChanged(ctx context.Context, orderID string, status domain.OrderStatus) {
	if s.publisher == nil {
		return
	}
	evt := domain.OrderStatusEvent{
		OrderID:   orderID,
		Status:    status,
		ChangedAt: time.Now().UTC(),
	}
	if err := s.publisher.Publish(ctx, "order.status_changed", evt); err != nil {
		slog.Error("failed to publish order.status_changed", slog.String("order_id", orderID), slog.String("error", err.Error()))
	}
}
