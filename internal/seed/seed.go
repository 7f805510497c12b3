package seed

import (
	"context"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"zyppy-backend/internal/domain"
	"zyppy-backend/internal/repository"
)

const foodImageURL = "https://images.unsplash.com/photo-1679989260436-1038a839f434?crop=entropy&cs=srgb&fm=jpg&q=85"

// SampleData fills the catalog with a demo set of restaurants and menus.
// It is a no-op when the restaurants collection already holds anything.
func SampleData(ctx context.Context, restaurants repository.RestaurantRepository, foodItems repository.FoodItemRepository) error {
	exists, err := restaurants.HasAny(ctx)
	if err != nil {
		return err
	}
	if exists {
		return nil
	}

	sampleRestaurants := []domain.Restaurant{
		{
			ID:           uuid.NewString(),
			Name:         "Bella Italia",
			CuisineType:  "Italian",
			Rating:       4.8,
			DeliveryTime: "25-35 min",
			DeliveryFee:  2.99,
			ImageURL:     "https://images.unsplash.com/photo-1517248135467-4c7edcad34c4?crop=entropy&cs=srgb&fm=jpg&q=85",
			Description:  "Authentic Italian cuisine with fresh ingredients",
		},
		{
			ID:           uuid.NewString(),
			Name:         "Spice Garden",
			CuisineType:  "Indian",
			Rating:       4.6,
			DeliveryTime: "30-45 min",
			DeliveryFee:  3.49,
			ImageURL:     "https://images.unsplash.com/photo-1737141499779-5e228d601f98?crop=entropy&cs=srgb&fm=jpg&q=85",
			Description:  "Flavorful Indian dishes with authentic spices",
		},
		{
			ID:           uuid.NewString(),
			Name:         "Ocean Breeze",
			CuisineType:  "Seafood",
			Rating:       4.7,
			DeliveryTime: "35-45 min",
			DeliveryFee:  4.99,
			ImageURL:     "https://images.unsplash.com/photo-1414235077428-338989a2e8c0?crop=entropy&cs=srgb&fm=jpg&q=85",
			Description:  "Fresh seafood and coastal flavors",
		},
	}

	items := []domain.FoodItem{}
	for _, r := range sampleRestaurants {
		items = append(items, menuFor(r)...)
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return restaurants.InsertMany(gctx, sampleRestaurants)
	})
	g.Go(func() error {
		return foodItems.InsertMany(gctx, items)
	})
	return g.Wait()
}

func menuFor(r domain.Restaurant) []domain.FoodItem {
	type entry struct {
		name, description string
		price             float64
		category          string
		vegetarian        bool
	}

	var entries []entry
	switch r.CuisineType {
	case "Italian":
		entries = []entry{
			{"Margherita Pizza", "Classic pizza with fresh mozzarella and basil", 12.99, "Pizza", true},
			{"Spaghetti Carbonara", "Creamy pasta with bacon and parmesan", 14.99, "Pasta", false},
			{"Caesar Salad", "Fresh romaine with caesar dressing", 8.99, "Salad", true},
			{"Tiramisu", "Classic Italian dessert", 6.99, "Dessert", true},
		}
	case "Indian":
		entries = []entry{
			{"Butter Chicken", "Creamy tomato-based chicken curry", 15.99, "Main Course", false},
			{"Palak Paneer", "Spinach curry with cottage cheese", 13.99, "Main Course", true},
			{"Garlic Naan", "Fresh baked bread with garlic", 3.99, "Bread", true},
			{"Mango Lassi", "Sweet yogurt drink with mango", 4.99, "Beverage", true},
		}
	default:
		entries = []entry{
			{"Grilled Salmon", "Fresh Atlantic salmon with herbs", 18.99, "Main Course", false},
			{"Fish & Chips", "Beer battered fish with crispy fries", 14.99, "Main Course", false},
			{"Seafood Pasta", "Mixed seafood with linguine", 19.99, "Pasta", false},
			{"Clam Chowder", "Creamy New England style soup", 7.99, "Soup", false},
		}
	}

	out := make([]domain.FoodItem, 0, len(entries))
	for _, e := range entries {
		out = append(out, domain.FoodItem{
			ID:           uuid.NewString(),
			RestaurantID: r.ID,
			Name:         e.name,
			Description:  e.description,
			Price:        e.price,
			Category:     e.category,
			ImageURL:     foodImageURL,
			IsVegetarian: e.vegetarian,
			IsAvailable:  true,
		})
	}
	return out
}
