package services

import "errors"

var (
	ErrOrderNotFound      = errors.New("order not found")
	ErrRestaurantNotFound = errors.New("restaurant not found")
	ErrInvalidStatus      = errors.New("invalid status")
	ErrUserExists         = errors.New("user already exists")
	ErrDuplicateReview    = errors.New("review already exists for this order")

	// ErrPaymentNotConfigured means the payment gateway was never wired in
	// (no API key in the environment).
	ErrPaymentNotConfigured = errors.New("payment service not configured")
)
