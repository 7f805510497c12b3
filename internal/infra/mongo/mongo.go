package mongo

import (
	"context"
	"fmt"
	"os"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// NewMongoFromEnv connects using MONGO_URL and returns the database named by
// DB_NAME.
func NewMongoFromEnv(ctx context.Context) (*mongo.Client, *mongo.Database, error) {
	url := os.Getenv("MONGO_URL")
	if url == "" {
		return nil, nil, fmt.Errorf("MONGO_URL is not set")
	}
	dbName := os.Getenv("DB_NAME")
	if dbName == "" {
		return nil, nil, fmt.Errorf("DB_NAME is not set")
	}

	connectCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(connectCtx, options.Client().ApplyURI(url))
	if err != nil {
		return nil, nil, fmt.Errorf("mongo connect: %w", err)
	}

	if err := client.Ping(connectCtx, nil); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, nil, fmt.Errorf("mongo ping: %w", err)
	}

	return client, client.Database(dbName), nil
}
