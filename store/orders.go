package store

import (
	"context"
	"fmt"

	"food-order/models"
)

func (s *Store) CreateOrder(ctx context.Context, o *models.Order) error {
	if err := s.db(ctx).Omit("User", "Food").Create(o).Error; err != nil {
		return fmt.Errorf("create order: %w", err)
	}
	return nil
}

// OrdersForUser returns only the orders placed by userID, newest first.
func (s *Store) OrdersForUser(ctx context.Context, userID uint) ([]models.Order, error) {
	var orders []models.Order
	err := s.db(ctx).Preload("Food.Restaurant").
		Where("user_id = ?", userID).
		Order("ordered_at desc, id desc").
		Find(&orders).Error
	if err != nil {
		return nil, fmt.Errorf("orders for user %d: %w", userID, err)
	}
	return orders, nil
}

// ListOrders returns every order with user, food and restaurant loaded up front.
func (s *Store) ListOrders(ctx context.Context) ([]models.Order, error) {
	var orders []models.Order
	err := s.db(ctx).Preload("User").Preload("Food.Restaurant").
		Order("ordered_at desc, id desc").
		Find(&orders).Error
	if err != nil {
		return nil, fmt.Errorf("list orders: %w", err)
	}
	return orders, nil
}
