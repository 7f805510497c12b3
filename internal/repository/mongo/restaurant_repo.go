package mongo

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"zyppy-backend/internal/domain"
	"zyppy-backend/internal/repository"
)

type restaurantRepo struct {
	col *mongo.Collection
}

func NewRestaurantRepository(db *mongo.Database) repository.RestaurantRepository {
	return &restaurantRepo{col: db.Collection(ColRestaurants)}
}

func (r *restaurantRepo) InsertMany(ctx context.Context, restaurants []domain.Restaurant) error {
	if len(restaurants) == 0 {
		return nil
	}
	docs := make([]interface{}, len(restaurants))
	for i := range restaurants {
		docs[i] = restaurants[i]
	}
	_, err := r.col.InsertMany(ctx, docs)
	return err
}

func (r *restaurantRepo) Find(ctx context.Context, cuisine, search string) ([]domain.Restaurant, error) {
	filter := bson.M{}
	if cuisine != "" {
		filter["cuisine_type"] = caseInsensitive(cuisine)
	}
	if search != "" {
		filter["$or"] = []bson.M{
			{"name": caseInsensitive(search)},
			{"cuisine_type": caseInsensitive(search)},
		}
	}

	cur, err := r.col.Find(ctx, filter, options.Find().SetLimit(100))
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	out := []domain.Restaurant{}
	if err := cur.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *restaurantRepo) FindByID(ctx context.Context, id string) (*domain.Restaurant, error) {
	var rest domain.Restaurant
	err := r.col.FindOne(ctx, bson.M{"id": id}).Decode(&rest)
	if err != nil {
		if isNoDocuments(err) {
			return nil, nil
		}
		return nil, err
	}
	return &rest, nil
}

func (r *restaurantRepo) HasAny(ctx context.Context) (bool, error) {
	err := r.col.FindOne(ctx, bson.M{}).Err()
	if err != nil {
		if isNoDocuments(err) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}
