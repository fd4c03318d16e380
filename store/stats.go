package store

import (
	"context"
	"fmt"

	"food-order/models"
)

// Counts summarises the catalog for the admin dashboard.
type Counts struct {
	Foods       int64
	Categories  int64
	Restaurants int64
	Users       int64
	Orders      int64
}

func (s *Store) Counts(ctx context.Context) (Counts, error) {
	var c Counts
	tables := []struct {
		model any
		dst   *int64
	}{
		{&models.FoodItem{}, &c.Foods},
		{&models.Category{}, &c.Categories},
		{&models.Restaurant{}, &c.Restaurants},
		{&models.User{}, &c.Users},
		{&models.Order{}, &c.Orders},
	}
	for _, t := range tables {
		if err := s.db(ctx).Model(t.model).Count(t.dst).Error; err != nil {
			return Counts{}, fmt.Errorf("count %T: %w", t.model, err)
		}
	}
	return c, nil
}
