package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"zyppy-backend/internal/domain"
	"zyppy-backend/internal/mocks"
)

func TestCatalogService_GetRestaurant(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		mockRestaurants := new(mocks.MockRestaurantRepository)
		mockRestaurants.On("FindByID", mock.Anything, "rest-1").Return(&domain.Restaurant{
			ID: "rest-1", Name: "Bella Italia", CuisineType: "Italian",
		}, nil)

		service := NewCatalogService(mockRestaurants, new(mocks.MockFoodItemRepository))
		restaurant, err := service.GetRestaurant(context.Background(), "rest-1")

		assert.NoError(t, err)
		assert.Equal(t, "Bella Italia", restaurant.Name)
	})

	t.Run("not found", func(t *testing.T) {
		mockRestaurants := new(mocks.MockRestaurantRepository)
		mockRestaurants.On("FindByID", mock.Anything, "missing").Return(nil, nil)

		service := NewCatalogService(mockRestaurants, new(mocks.MockFoodItemRepository))
		restaurant, err := service.GetRestaurant(context.Background(), "missing")

		assert.ErrorIs(t, err, ErrRestaurantNotFound)
		assert.Nil(t, restaurant)
	})
}

func TestCatalogService_ListRestaurants(t *testing.T) {
	mockRestaurants := new(mocks.MockRestaurantRepository)
	mockRestaurants.On("Find", mock.Anything, "italian", "").Return([]domain.Restaurant{
		{ID: "rest-1", CuisineType: "Italian"},
	}, nil)

	service := NewCatalogService(mockRestaurants, new(mocks.MockFoodItemRepository))
	restaurants, err := service.ListRestaurants(context.Background(), "italian", "")

	assert.NoError(t, err)
	assert.Len(t, restaurants, 1)
	assert.Equal(t, "Italian", restaurants[0].CuisineType)
}

func TestCatalogService_LookupsReturnNilOnMiss(t *testing.T) {
	// Order pricing depends on a miss being (nil, nil), not an error.
	mockRestaurants := new(mocks.MockRestaurantRepository)
	mockFoodItems := new(mocks.MockFoodItemRepository)
	mockRestaurants.On("FindByID", mock.Anything, "ghost").Return(nil, nil)
	mockFoodItems.On("FindByID", mock.Anything, "ghost").Return(nil, nil)

	service := NewCatalogService(mockRestaurants, mockFoodItems)

	restaurant, err := service.RestaurantByID(context.Background(), "ghost")
	assert.NoError(t, err)
	assert.Nil(t, restaurant)

	item, err := service.FoodItemByID(context.Background(), "ghost")
	assert.NoError(t, err)
	assert.Nil(t, item)
}

func TestCatalogService_GetMenu(t *testing.T) {
	mockFoodItems := new(mocks.MockFoodItemRepository)
	mockFoodItems.On("FindMenu", mock.Anything, "rest-1", "Pizza").Return([]domain.FoodItem{
		{ID: "item-1", Category: "Pizza", IsAvailable: true},
	}, nil)

	service := NewCatalogService(new(mocks.MockRestaurantRepository), mockFoodItems)
	items, err := service.GetMenu(context.Background(), "rest-1", "Pizza")

	assert.NoError(t, err)
	assert.Len(t, items, 1)
}

func TestCatalogService_SearchFoodItems(t *testing.T) {
	mockFoodItems := new(mocks.MockFoodItemRepository)
	mockFoodItems.On("Search", mock.Anything, "pizza").Return([]domain.FoodItem{
		{ID: "item-1", Name: "Margherita Pizza"},
	}, nil)

	service := NewCatalogService(new(mocks.MockRestaurantRepository), mockFoodItems)
	items, err := service.SearchFoodItems(context.Background(), "pizza")

	assert.NoError(t, err)
	assert.Len(t, items, 1)
}
