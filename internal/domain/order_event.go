package domain

import "time"

type OrderCreatedEvent struct {
	OrderID      string    `json:"orderId"`
	UserID       string    `json:"userId"`
	RestaurantID string    `json:"restaurantId"`
	TotalAmount  float64   `json:"totalAmount"`
	CreatedAt    time.Time `json:"createdAt"`
}

type OrderStatusEvent struct {
	OrderID   string      `json:"orderId"`
	Status    OrderStatus `json:"status"`
	ChangedAt time.Time   `json:"changedAt"`
}
