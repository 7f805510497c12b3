package domain

import (
	"time"

	"github.com/google/uuid"
)

type OrderStatus string

const (
	StatusPending   OrderStatus = "pending"
	StatusConfirmed OrderStatus = "confirmed"
	StatusPreparing OrderStatus = "preparing"
	StatusOnWay     OrderStatus = "on_way"
	StatusDelivered OrderStatus = "delivered"
	StatusCancelled OrderStatus = "cancelled"
)

// EstimatedDeliveryOffset is added to the creation time of every order.
const EstimatedDeliveryOffset = 40 * time.Minute

func ValidOrderStatus(s OrderStatus) bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusPreparing, StatusOnWay, StatusDelivered, StatusCancelled:
		return true
	}
	return false
}

// CartItem is only ever embedded in an Order, never persisted on its own.
type CartItem struct {
	FoodItemID          string `json:"food_item_id" bson:"food_item_id"`
	Quantity            int    `json:"quantity" bson:"quantity"`
	SpecialInstructions string `json:"special_instructions,omitempty" bson:"special_instructions,omitempty"`
}

type Order struct {
	ID                string      `json:"id" bson:"id"`
	UserID            string      `json:"user_id" bson:"user_id"`
	RestaurantID      string      `json:"restaurant_id" bson:"restaurant_id"`
	Items             []CartItem  `json:"items" bson:"items"`
	TotalAmount       float64     `json:"total_amount" bson:"total_amount"`
	DeliveryAddress   string      `json:"delivery_address" bson:"delivery_address"`
	Status            OrderStatus `json:"status" bson:"status"`
	CreatedAt         time.Time   `json:"created_at" bson:"created_at"`
	EstimatedDelivery time.Time   `json:"estimated_delivery" bson:"estimated_delivery"`
	PaymentSessionID  string      `json:"payment_session_id,omitempty" bson:"payment_session_id,omitempty"`
}

// NewOrder builds a pending order. TotalAmount is filled in by the order
// service once the line items have been priced.
func NewOrder(userID, restaurantID string, items []CartItem, deliveryAddress string) *Order {
	now := time.Now().UTC()
	return &Order{
		ID:                uuid.NewString(),
		UserID:            userID,
		RestaurantID:      restaurantID,
		Items:             items,
		DeliveryAddress:   deliveryAddress,
		Status:            StatusPending,
		CreatedAt:         now,
		EstimatedDelivery: now.Add(EstimatedDeliveryOffset),
	}
}
