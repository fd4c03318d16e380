package services

import (
	"context"
	"strconv"
	"strings"

	"food-order/models"
	"food-order/store"

	"github.com/shopspring/decimal"
)

const (
	ErrInvalidQuantity UserError = "Quantity must be a positive whole number."
	ErrFoodUnavailable UserError = "This item is not available right now."
)

type OrderService struct {
	store *store.Store
}

func NewOrderService(s *store.Store) *OrderService {
	return &OrderService{store: s}
}

// ParseQuantity reads a form quantity. Blank means one.
func ParseQuantity(raw string) (int, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 1, nil
	}
	q, err := strconv.Atoi(raw)
	if err != nil || q < 1 {
		return 0, ErrInvalidQuantity
	}
	return q, nil
}

// PlaceOrder records an order for userID, priced at the food's current price.
func (o *OrderService) PlaceOrder(ctx context.Context, userID, foodID uint, quantity int) (*models.Order, error) {
	if quantity < 1 {
		return nil, ErrInvalidQuantity
	}
	food, err := o.store.FoodItemByID(ctx, foodID)
	if err != nil {
		return nil, err
	}
	if !food.IsAvailable {
		return nil, ErrFoodUnavailable
	}

	order := &models.Order{
		UserID:     userID,
		FoodID:     food.ID,
		Quantity:   quantity,
		TotalPrice: Total(food.Price, quantity),
		Status:     models.StatusOrdered,
	}
	if err := o.store.CreateOrder(ctx, order); err != nil {
		return nil, err
	}
	order.Food = *food
	return order, nil
}

// Total is unit price times quantity.
func Total(price decimal.Decimal, quantity int) decimal.Decimal {
	return price.Mul(decimal.NewFromInt(int64(quantity)))
}
