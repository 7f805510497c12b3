package mongo

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"zyppy-backend/internal/domain"
	"zyppy-backend/internal/repository"
)

type reviewRepo struct {
	col *mongo.Collection
}

func NewReviewRepository(db *mongo.Database) repository.ReviewRepository {
	return &reviewRepo{col: db.Collection(ColReviews)}
}

func (r *reviewRepo) Insert(ctx context.Context, review *domain.Review) error {
	_, err := r.col.InsertOne(ctx, review)
	return err
}

func (r *reviewRepo) FindByUserAndOrder(ctx context.Context, userID, orderID string) (*domain.Review, error) {
	var rev domain.Review
	err := r.col.FindOne(ctx, bson.M{"user_id": userID, "order_id": orderID}).Decode(&rev)
	if err != nil {
		if isNoDocuments(err) {
			return nil, nil
		}
		return nil, err
	}
	return &rev, nil
}

func (r *reviewRepo) FindByRestaurant(ctx context.Context, restaurantID string) ([]domain.Review, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: "created_at", Value: -1}}).
		SetLimit(100)

	cur, err := r.col.Find(ctx, bson.M{"restaurant_id": restaurantID}, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	out := []domain.Review{}
	if err := cur.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}
