package mongo

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"zyppy-backend/internal/domain"
	"zyppy-backend/internal/repository"
)

type userRepo struct {
	col *mongo.Collection
}

func NewUserRepository(db *mongo.Database) repository.UserRepository {
	return &userRepo{col: db.Collection(ColUsers)}
}

func (r *userRepo) Insert(ctx context.Context, user *domain.User) error {
	_, err := r.col.InsertOne(ctx, user)
	return err
}

func (r *userRepo) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	var u domain.User
	err := r.col.FindOne(ctx, bson.M{"email": email}).Decode(&u)
	if err != nil {
		if isNoDocuments(err) {
			return nil, nil
		}
		return nil, err
	}
	return &u, nil
}
