package mongo

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// Collection names, keyed by application-generated string ids rather than
// store-native ObjectIDs.
const (
	ColUsers               = "users"
	ColRestaurants         = "restaurants"
	ColFoodItems           = "food_items"
	ColOrders              = "orders"
	ColReviews             = "reviews"
	ColPaymentTransactions = "payment_transactions"
)

func caseInsensitive(pattern string) primitive.Regex {
	return primitive.Regex{Pattern: pattern, Options: "i"}
}

func isNoDocuments(err error) bool {
	return err == mongo.ErrNoDocuments
}
