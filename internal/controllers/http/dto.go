package http

type LoginRequest struct {
	Email string `json:"email" binding:"required"`
}

type RegisterRequest struct {
	Email   string `json:"email" binding:"required"`
	Name    string `json:"name" binding:"required"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
}

type CartItemRequest struct {
	FoodItemID          string `json:"food_item_id" binding:"required"`
	Quantity            int    `json:"quantity"`
	SpecialInstructions string `json:"special_instructions"`
}

type CreateOrderRequest struct {
	UserID          string            `json:"user_id" binding:"required"`
	RestaurantID    string            `json:"restaurant_id" binding:"required"`
	Items           []CartItemRequest `json:"items"`
	DeliveryAddress string            `json:"delivery_address" binding:"required"`
}

type CheckoutRequest struct {
	OrderID   string `json:"order_id" binding:"required"`
	OriginURL string `json:"origin_url" binding:"required"`
}

type CreateReviewRequest struct {
	UserID       string `json:"user_id" binding:"required"`
	RestaurantID string `json:"restaurant_id" binding:"required"`
	OrderID      string `json:"order_id" binding:"required"`
	Rating       int    `json:"rating" binding:"required,min=1,max=5"`
	Comment      string `json:"comment"`
}
