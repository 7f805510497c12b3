package mongo

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"zyppy-backend/internal/domain"
	"zyppy-backend/internal/repository"
)

type foodItemRepo struct {
	col *mongo.Collection
}

func NewFoodItemRepository(db *mongo.Database) repository.FoodItemRepository {
	return &foodItemRepo{col: db.Collection(ColFoodItems)}
}

func (r *foodItemRepo) InsertMany(ctx context.Context, items []domain.FoodItem) error {
	if len(items) == 0 {
		return nil
	}
	docs := make([]interface{}, len(items))
	for i := range items {
		docs[i] = items[i]
	}
	_, err := r.col.InsertMany(ctx, docs)
	return err
}

func (r *foodItemRepo) FindByID(ctx context.Context, id string) (*domain.FoodItem, error) {
	var item domain.FoodItem
	err := r.col.FindOne(ctx, bson.M{"id": id}).Decode(&item)
	if err != nil {
		if isNoDocuments(err) {
			return nil, nil
		}
		return nil, err
	}
	return &item, nil
}

func (r *foodItemRepo) FindMenu(ctx context.Context, restaurantID, category string) ([]domain.FoodItem, error) {
	filter := bson.M{"restaurant_id": restaurantID, "is_available": true}
	if category != "" {
		filter["category"] = caseInsensitive(category)
	}

	cur, err := r.col.Find(ctx, filter, options.Find().SetLimit(100))
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	out := []domain.FoodItem{}
	if err := cur.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *foodItemRepo) Search(ctx context.Context, q string) ([]domain.FoodItem, error) {
	filter := bson.M{
		"is_available": true,
		"$or": []bson.M{
			{"name": caseInsensitive(q)},
			{"description": caseInsensitive(q)},
			{"category": caseInsensitive(q)},
		},
	}

	cur, err := r.col.Find(ctx, filter, options.Find().SetLimit(50))
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	out := []domain.FoodItem{}
	if err := cur.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}
