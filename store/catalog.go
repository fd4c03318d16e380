package store

import (
	"context"
	"fmt"

	"food-order/models"

	"gorm.io/gorm"
)

// ── Restaurants ─────────────────────────────────────────────────────────────

func (s *Store) CreateRestaurant(ctx context.Context, r *models.Restaurant) error {
	if err := s.db(ctx).Create(r).Error; err != nil {
		return fmt.Errorf("create restaurant: %w", err)
	}
	return nil
}

func (s *Store) RestaurantByID(ctx context.Context, id uint) (*models.Restaurant, error) {
	var r models.Restaurant
	if err := s.db(ctx).First(&r, id).Error; err != nil {
		return nil, notFound(err, "restaurant by id")
	}
	return &r, nil
}

func (s *Store) ListRestaurants(ctx context.Context) ([]models.Restaurant, error) {
	var rs []models.Restaurant
	if err := s.db(ctx).Order("name asc, id asc").Find(&rs).Error; err != nil {
		return nil, fmt.Errorf("list restaurants: %w", err)
	}
	return rs, nil
}

func (s *Store) UpdateRestaurant(ctx context.Context, r *models.Restaurant) error {
	if err := s.db(ctx).Save(r).Error; err != nil {
		return fmt.Errorf("update restaurant: %w", err)
	}
	return nil
}

// DeleteRestaurant removes the restaurant, its food items and every order
// placed for those items.
func (s *Store) DeleteRestaurant(ctx context.Context, id uint) error {
	return s.db(ctx).Transaction(func(tx *gorm.DB) error {
		var r models.Restaurant
		if err := tx.First(&r, id).Error; err != nil {
			return notFound(err, "delete restaurant")
		}
		if err := deleteFoodItemsWhere(tx, "restaurant_id = ?", id); err != nil {
			return err
		}
		if err := tx.Delete(&r).Error; err != nil {
			return fmt.Errorf("delete restaurant: %w", err)
		}
		return nil
	})
}

// ── Categories ──────────────────────────────────────────────────────────────

func (s *Store) CreateCategory(ctx context.Context, c *models.Category) error {
	if err := s.db(ctx).Create(c).Error; err != nil {
		return fmt.Errorf("create category: %w", err)
	}
	return nil
}

func (s *Store) CategoryByID(ctx context.Context, id uint) (*models.Category, error) {
	var c models.Category
	if err := s.db(ctx).First(&c, id).Error; err != nil {
		return nil, notFound(err, "category by id")
	}
	return &c, nil
}

func (s *Store) ListCategories(ctx context.Context) ([]models.Category, error) {
	var cs []models.Category
	if err := s.db(ctx).Order("name asc, id asc").Find(&cs).Error; err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	return cs, nil
}

func (s *Store) UpdateCategory(ctx context.Context, c *models.Category) error {
	if err := s.db(ctx).Save(c).Error; err != nil {
		return fmt.Errorf("update category: %w", err)
	}
	return nil
}

// DeleteCategory removes the category, its food items and their orders.
func (s *Store) DeleteCategory(ctx context.Context, id uint) error {
	return s.db(ctx).Transaction(func(tx *gorm.DB) error {
		var c models.Category
		if err := tx.First(&c, id).Error; err != nil {
			return notFound(err, "delete category")
		}
		if err := deleteFoodItemsWhere(tx, "category_id = ?", id); err != nil {
			return err
		}
		if err := tx.Delete(&c).Error; err != nil {
			return fmt.Errorf("delete category: %w", err)
		}
		return nil
	})
}

// ── Food items ──────────────────────────────────────────────────────────────

func (s *Store) CreateFoodItem(ctx context.Context, f *models.FoodItem) error {
	if err := s.db(ctx).Omit("Category", "Restaurant").Create(f).Error; err != nil {
		return fmt.Errorf("create food item: %w", err)
	}
	return nil
}

func (s *Store) FoodItemByID(ctx context.Context, id uint) (*models.FoodItem, error) {
	var f models.FoodItem
	err := s.db(ctx).Preload("Category").Preload("Restaurant").First(&f, id).Error
	if err != nil {
		return nil, notFound(err, "food item by id")
	}
	return &f, nil
}

// ListFoodItems returns every food item, newest first.
func (s *Store) ListFoodItems(ctx context.Context) ([]models.FoodItem, error) {
	return s.listFoodItems(s.db(ctx))
}

// ListAvailableFoodItems is ListFoodItems restricted to items that can be ordered.
func (s *Store) ListAvailableFoodItems(ctx context.Context) ([]models.FoodItem, error) {
	return s.listFoodItems(s.db(ctx).Where("is_available = ?", true))
}

func (s *Store) listFoodItems(q *gorm.DB) ([]models.FoodItem, error) {
	var fs []models.FoodItem
	err := q.Preload("Category").Preload("Restaurant").
		Order("created_at desc, id desc").
		Find(&fs).Error
	if err != nil {
		return nil, fmt.Errorf("list food items: %w", err)
	}
	return fs, nil
}

// UpdateFoodItem overwrites every column, including a false availability flag.
func (s *Store) UpdateFoodItem(ctx context.Context, f *models.FoodItem) error {
	row := *f
	// stale preloaded associations must not override the new foreign keys
	row.Category, row.Restaurant = models.Category{}, models.Restaurant{}
	if err := s.db(ctx).Omit("Category", "Restaurant").Save(&row).Error; err != nil {
		return fmt.Errorf("update food item: %w", err)
	}
	return nil
}

// DeleteFoodItem removes the item and the orders placed for it.
func (s *Store) DeleteFoodItem(ctx context.Context, id uint) error {
	return s.db(ctx).Transaction(func(tx *gorm.DB) error {
		var f models.FoodItem
		if err := tx.First(&f, id).Error; err != nil {
			return notFound(err, "delete food item")
		}
		return deleteFoodItemsWhere(tx, "id = ?", id)
	})
}

// deleteFoodItemsWhere deletes the matching food items after their orders.
func deleteFoodItemsWhere(tx *gorm.DB, cond string, arg any) error {
	ids := tx.Model(&models.FoodItem{}).Select("id").Where(cond, arg)
	if err := tx.Where("food_id IN (?)", ids).Delete(&models.Order{}).Error; err != nil {
		return fmt.Errorf("delete orders for food items: %w", err)
	}
	if err := tx.Where(cond, arg).Delete(&models.FoodItem{}).Error; err != nil {
		return fmt.Errorf("delete food items: %w", err)
	}
	return nil
}
