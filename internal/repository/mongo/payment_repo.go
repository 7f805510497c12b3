package mongo

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"zyppy-backend/internal/domain"
	"zyppy-backend/internal/repository"
)

type paymentRepo struct {
	col *mongo.Collection
}

func NewPaymentRepository(db *mongo.Database) repository.PaymentRepository {
	return &paymentRepo{col: db.Collection(ColPaymentTransactions)}
}

func (r *paymentRepo) Insert(ctx context.Context, txn *domain.PaymentTransaction) error {
	_, err := r.col.InsertOne(ctx, txn)
	return err
}

func (r *paymentRepo) FindBySessionID(ctx context.Context, sessionID string) (*domain.PaymentTransaction, error) {
	var t domain.PaymentTransaction
	err := r.col.FindOne(ctx, bson.M{"session_id": sessionID}).Decode(&t)
	if err != nil {
		if isNoDocuments(err) {
			return nil, nil
		}
		return nil, err
	}
	return &t, nil
}

func (r *paymentRepo) UpdateFromPoll(ctx context.Context, sessionID, paymentStatus, status string) error {
	_, err := r.col.UpdateOne(ctx, bson.M{"session_id": sessionID}, bson.M{"$set": bson.M{
		"payment_status": paymentStatus,
		"status":         status,
		"updated_at":     time.Now().UTC(),
	}})
	return err
}

func (r *paymentRepo) UpdatePaymentStatus(ctx context.Context, sessionID, paymentStatus string) error {
	_, err := r.col.UpdateOne(ctx, bson.M{"session_id": sessionID}, bson.M{"$set": bson.M{
		"payment_status": paymentStatus,
		"updated_at":     time.Now().UTC(),
	}})
	return err
}
