package services

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"

	"zyppy-backend/internal/domain"
	"zyppy-backend/internal/repository"
)

const catalogCacheTTL = time.Minute

// CatalogService serves restaurant and menu reads. Single-item lookups go
// through a best-effort Redis cache; every read works with the client unset.
type CatalogService struct {
	restaurants repository.RestaurantRepository
	foodItems   repository.FoodItemRepository
	redisClient *redis.Client
}

func NewCatalogService(restaurants repository.RestaurantRepository, foodItems repository.FoodItemRepository) *CatalogService {
	return &CatalogService{
		restaurants: restaurants,
		foodItems:   foodItems,
	}
}

func (s *CatalogService) SetRedisClient(client *redis.Client) {
	s.redisClient = client
}

func (s *CatalogService) ListRestaurants(ctx context.Context, cuisine, search string) ([]domain.Restaurant, error) {
	return s.restaurants.Find(ctx, cuisine, search)
}

func (s *CatalogService) GetRestaurant(ctx context.Context, id string) (*domain.Restaurant, error) {
	r, err := s.RestaurantByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if r == nil {
		return nil, ErrRestaurantNotFound
	}
	return r, nil
}

func (s *CatalogService) GetMenu(ctx context.Context, restaurantID, category string) ([]domain.FoodItem, error) {
	return s.foodItems.FindMenu(ctx, restaurantID, category)
}

func (s *CatalogService) SearchFoodItems(ctx context.Context, q string) ([]domain.FoodItem, error) {
	return s.foodItems.Search(ctx, q)
}

// RestaurantByID returns (nil, nil) on a miss; order pricing relies on that.
func (s *CatalogService) RestaurantByID(ctx context.Context, id string) (*domain.Restaurant, error) {
	cacheKey := fmt.Sprintf("restaurant:%s", id)

	if s.redisClient != nil {
		cached, err := s.redisClient.Get(ctx, cacheKey).Result()
		if err == nil {
			var r domain.Restaurant
			if err := json.Unmarshal([]byte(cached), &r); err == nil {
				return &r, nil
			}
		}
	}

	r, err := s.restaurants.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if s.redisClient != nil && r != nil {
		if data, err := json.Marshal(r); err == nil {
			s.redisClient.Set(ctx, cacheKey, data, catalogCacheTTL)
		}
	}

	return r, nil
}

// FoodItemByID returns (nil, nil) on a miss.
func (s *CatalogService) FoodItemByID(ctx context.Context, id string) (*domain.FoodItem, error) {
	cacheKey := fmt.Sprintf("food_item:%s", id)

	if s.redisClient != nil {
		cached, err := s.redisClient.Get(ctx, cacheKey).Result()
		if err == nil {
			var item domain.FoodItem
			if err := json.Unmarshal([]byte(cached), &item); err == nil {
				return &item, nil
			}
		}
	}

	item, err := s.foodItems.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if s.redisClient != nil && item != nil {
		if data, err := json.Marshal(item); err == nil {
			s.redisClient.Set(ctx, cacheKey, data, catalogCacheTTL)
		}
	}

	return item, nil
}
