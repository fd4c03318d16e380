package store_test

import (
	"context"
	"path/filepath"
	"testing"

	"food-order/config"
	"food-order/models"
	"food-order/store"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) *store.Store {
	t.Helper()
	db, err := config.OpenDB("sqlite", filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	require.NoError(t, config.Migrate(db))
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			sqlDB.Close()
		}
	})
	return store.New(db)
}

// fixture is a small catalog: two restaurants, two categories and a food in each
// combination that the cascade tests need.
type fixture struct {
	alice, bob *models.User
	pizzeria   *models.Restaurant
	diner      *models.Restaurant
	mains      *models.Category
	desserts   *models.Category
	margherita *models.FoodItem // pizzeria, mains
	tiramisu   *models.FoodItem // pizzeria, desserts
	burger     *models.FoodItem // diner, mains
	pancakes   *models.FoodItem // diner, desserts
}

func seed(t *testing.T, s *store.Store) fixture {
	t.Helper()
	ctx := context.Background()
	f := fixture{
		alice:    &models.User{Username: "alice", Email: "alice@example.com", PasswordHash: "x", Role: models.RoleCustomer},
		bob:      &models.User{Username: "bob", Email: "bob@example.com", PasswordHash: "x", Role: models.RoleCustomer},
		pizzeria: &models.Restaurant{Name: "Pizzeria", Location: "Main St"},
		diner:    &models.Restaurant{Name: "Diner", Location: "High St"},
		mains:    &models.Category{Name: "Mains"},
		desserts: &models.Category{Name: "Desserts"},
	}
	require.NoError(t, s.CreateUser(ctx, f.alice))
	require.NoError(t, s.CreateUser(ctx, f.bob))
	require.NoError(t, s.CreateRestaurant(ctx, f.pizzeria))
	require.NoError(t, s.CreateRestaurant(ctx, f.diner))
	require.NoError(t, s.CreateCategory(ctx, f.mains))
	require.NoError(t, s.CreateCategory(ctx, f.desserts))

	food := func(name string, r *models.Restaurant, c *models.Category, price string) *models.FoodItem {
		item := &models.FoodItem{
			Name:         name,
			RestaurantID: r.ID,
			CategoryID:   c.ID,
			Price:        decimal.RequireFromString(price),
			IsAvailable:  true,
		}
		require.NoError(t, s.CreateFoodItem(ctx, item))
		return item
	}
	f.margherita = food("Margherita", f.pizzeria, f.mains, "9.99")
	f.tiramisu = food("Tiramisu", f.pizzeria, f.desserts, "5.50")
	f.burger = food("Burger", f.diner, f.mains, "11.00")
	f.pancakes = food("Pancakes", f.diner, f.desserts, "6.25")
	return f
}

func order(t *testing.T, s *store.Store, u *models.User, f *models.FoodItem, qty int) *models.Order {
	t.Helper()
	o := &models.Order{
		UserID:     u.ID,
		FoodID:     f.ID,
		Quantity:   qty,
		TotalPrice: f.Price.Mul(decimal.NewFromInt(int64(qty))),
		Status:     models.StatusOrdered,
	}
	require.NoError(t, s.CreateOrder(context.Background(), o))
	return o
}
