package services

import (
	"context"

	"zyppy-backend/internal/domain"
	"zyppy-backend/internal/repository"
)

type ReviewService struct {
	reviews repository.ReviewRepository
}

func NewReviewService(reviews repository.ReviewRepository) *ReviewService {
	return &ReviewService{reviews: reviews}
}

// CreateReview enforces at most one review per (user, order) pair. A second
// attempt for the same order fails; the same user reviewing a different
// order succeeds.
func (s *ReviewService) CreateReview(ctx context.Context, userID, restaurantID, orderID string, rating int, comment string) (*domain.Review, error) {
	existing, err := s.reviews.FindByUserAndOrder(ctx, userID, orderID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrDuplicateReview
	}

	review := domain.NewReview(userID, restaurantID, orderID, rating, comment)
	if err := s.reviews.Insert(ctx, review); err != nil {
		return nil, err
	}
	return review, nil
}

func (s *ReviewService) ListRestaurantReviews(ctx context.Context, restaurantID string) ([]domain.Review, error) {
	return s.reviews.FindByRestaurant(ctx, restaurantID)
}
