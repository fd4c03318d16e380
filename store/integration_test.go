//go:build integration

package store_test

import (
	"context"
	"testing"
	"time"

	"food-order/config"
	"food-order/models"
	"food-order/store"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
)

func setupPostgres(t *testing.T) *store.Store {
	t.Helper()
	ctx := context.Background()

	pg, err := postgres.Run(ctx,
		"postgres:alpine",
		postgres.WithDatabase("foodorder"),
		postgres.WithUsername("foodorder"),
		postgres.WithPassword("foodorder"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(60*time.Second)),
	)
	require.NoError(t, err)
	t.Cleanup(func() {
		if err := pg.Terminate(ctx); err != nil {
			t.Logf("terminate postgres: %v", err)
		}
	})

	dsn, err := pg.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)
	db, err := config.OpenDB("postgres", dsn)
	require.NoError(t, err)
	require.NoError(t, config.Migrate(db))
	return store.New(db)
}

func TestPostgresOrderLifecycle(t *testing.T) {
	s := setupPostgres(t)
	ctx := context.Background()

	u := &models.User{Username: "alice", Email: "alice@example.com", PasswordHash: "x", Role: models.RoleCustomer}
	require.NoError(t, s.CreateUser(ctx, u))
	r := &models.Restaurant{Name: "Pizzeria", Location: "Main St"}
	require.NoError(t, s.CreateRestaurant(ctx, r))
	c := &models.Category{Name: "Mains"}
	require.NoError(t, s.CreateCategory(ctx, c))
	f := &models.FoodItem{
		Name: "Margherita", RestaurantID: r.ID, CategoryID: c.ID,
		Price: decimal.RequireFromString("9.99"), IsAvailable: true,
	}
	require.NoError(t, s.CreateFoodItem(ctx, f))
	o := &models.Order{UserID: u.ID, FoodID: f.ID, Quantity: 3, TotalPrice: decimal.RequireFromString("29.97"), Status: models.StatusOrdered}
	require.NoError(t, s.CreateOrder(ctx, o))

	orders, err := s.OrdersForUser(ctx, u.ID)
	require.NoError(t, err)
	require.Len(t, orders, 1)
	assert.Equal(t, "29.97", orders[0].TotalPrice.StringFixed(2))
	assert.Equal(t, "Pizzeria", orders[0].Food.Restaurant.Name)

	require.NoError(t, s.DeleteRestaurant(ctx, r.ID))
	counts, err := s.Counts(ctx)
	require.NoError(t, err)
	assert.Equal(t, store.Counts{Users: 1, Categories: 1}, counts)
}
