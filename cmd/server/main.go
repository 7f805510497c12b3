package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/joho/godotenv"
	"github.com/rs/cors"

	controller "zyppy-backend/internal/controllers/http"
	mongoinfra "zyppy-backend/internal/infra/mongo"
	"zyppy-backend/internal/infra/payments"
	"zyppy-backend/internal/infra/rabbitmq"
	mongorepo "zyppy-backend/internal/repository/mongo"
	"zyppy-backend/internal/seed"
	"zyppy-backend/internal/services"
)

func main() {
	_ = godotenv.Load()

	ctx := context.Background()

	client, db, err := mongoinfra.NewMongoFromEnv(ctx)
	if err != nil {
		log.Fatalf("db: connect: %v", err)
	}
	defer client.Disconnect(context.Background())

	users := mongorepo.NewUserRepository(db)
	restaurants := mongorepo.NewRestaurantRepository(db)
	foodItems := mongorepo.NewFoodItemRepository(db)
	orders := mongorepo.NewOrderRepository(db)
	reviews := mongorepo.NewReviewRepository(db)
	transactions := mongorepo.NewPaymentRepository(db)

	if err := seed.SampleData(ctx, restaurants, foodItems); err != nil {
		log.Fatalf("seed: %v", err)
	}

	var publisher *rabbitmq.Publisher
	if amqpURL := os.Getenv("RABBITMQ_URL"); amqpURL != "" {
		publisher, err = rabbitmq.NewPublisher(amqpURL, "order.exchange")
		if err != nil {
			log.Fatalf("failed to init publisher: %v", err)
		}
		defer publisher.Close()
	}

	var gateway payments.Gateway
	if apiKey := os.Getenv("STRIPE_API_KEY"); apiKey != "" {
		gateway = payments.NewStripeGateway(apiKey, os.Getenv("STRIPE_WEBHOOK_SECRET"))
	} else {
		log.Println("STRIPE_API_KEY not set, payment endpoints disabled")
	}

	catalog := services.NewCatalogService(restaurants, foodItems)

	if redisHost := os.Getenv("REDIS_HOST"); redisHost != "" {
		redisClient := redis.NewClient(&redis.Options{
			Addr:         redisHost + ":6379",
			DB:           0,
			PoolSize:     200,
			MinIdleConns: 20,
			DialTimeout:  2 * time.Second,
			ReadTimeout:  500 * time.Millisecond,
			WriteTimeout: 500 * time.Millisecond,
		})
		catalog.SetRedisClient(redisClient)
	}

	identity := services.NewIdentityService(users)

	var pub rabbitmq.PublisherInterface
	if publisher != nil {
		pub = publisher
	}
	orderSvc := services.NewOrderService(orders, catalog, pub)
	paymentSvc := services.NewPaymentService(gateway, transactions, orders)
	reviewSvc := services.NewReviewService(reviews)

	handler := controller.NewHandler(identity, catalog, orderSvc, paymentSvc, reviewSvc)

	if os.Getenv("GIN_MODE") == gin.ReleaseMode {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()
	r.Use(gin.Recovery())

	handler.RegisterRoutes(r)

	corsWrapper := cors.New(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"*"},
		AllowCredentials: true,
	})

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	log.Printf("Starting food delivery service on port %s", port)
	if err := http.ListenAndServe(":"+port, corsWrapper.Handler(r)); err != nil {
		log.Fatalf("server run: %v", err)
	}
}
