package domain

import (
	"time"

	"github.com/google/uuid"
)

// Review is unique per (user_id, order_id) pair.
type Review struct {
	ID           string    `json:"id" bson:"id"`
	UserID       string    `json:"user_id" bson:"user_id"`
	RestaurantID string    `json:"restaurant_id" bson:"restaurant_id"`
	OrderID      string    `json:"order_id" bson:"order_id"`
	Rating       int       `json:"rating" bson:"rating"`
	Comment      string    `json:"comment,omitempty" bson:"comment,omitempty"`
	CreatedAt    time.Time `json:"created_at" bson:"created_at"`
}

func NewReview(userID, restaurantID, orderID string, rating int, comment string) *Review {
	return &Review{
		ID:           uuid.NewString(),
		UserID:       userID,
		RestaurantID: restaurantID,
		OrderID:      orderID,
		Rating:       rating,
		Comment:      comment,
		CreatedAt:    time.Now().UTC(),
	}
}
