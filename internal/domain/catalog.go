package domain

// Restaurant is immutable reference data, seeded at startup when the store
// is empty.
type Restaurant struct {
	ID           string  `json:"id" bson:"id"`
	Name         string  `json:"name" bson:"name"`
	CuisineType  string  `json:"cuisine_type" bson:"cuisine_type"`
	Rating       float64 `json:"rating" bson:"rating"`
	DeliveryTime string  `json:"delivery_time" bson:"delivery_time"`
	DeliveryFee  float64 `json:"delivery_fee" bson:"delivery_fee"`
	ImageURL     string  `json:"image_url" bson:"image_url"`
	Description  string  `json:"description" bson:"description"`
}

type FoodItem struct {
	ID           string  `json:"id" bson:"id"`
	RestaurantID string  `json:"restaurant_id" bson:"restaurant_id"`
	Name         string  `json:"name" bson:"name"`
	Description  string  `json:"description" bson:"description"`
	Price        float64 `json:"price" bson:"price"`
	Category     string  `json:"category" bson:"category"`
	ImageURL     string  `json:"image_url" bson:"image_url"`
	IsVegetarian bool    `json:"is_vegetarian" bson:"is_vegetarian"`
	IsAvailable  bool    `json:"is_available" bson:"is_available"`
}
