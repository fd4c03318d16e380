package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type Restaurant struct {
	ID        uint       `json:"id" gorm:"primaryKey"`
	Name      string     `json:"name" gorm:"size:100;not null"`
	Location  string     `json:"location" gorm:"size:150;not null"`
	FoodItems []FoodItem `json:"food_items,omitempty" gorm:"foreignKey:RestaurantID"`
}

type Category struct {
	ID        uint       `json:"id" gorm:"primaryKey"`
	Name      string     `json:"name" gorm:"size:50;not null"`
	FoodItems []FoodItem `json:"food_items,omitempty" gorm:"foreignKey:CategoryID"`
}

type FoodItem struct {
	ID           uint            `json:"id" gorm:"primaryKey"`
	Name         string          `json:"name" gorm:"size:100;not null"`
	CategoryID   uint            `json:"category_id" gorm:"not null;index"`
	Category     Category        `json:"category,omitempty" gorm:"foreignKey:CategoryID"`
	RestaurantID uint            `json:"restaurant_id" gorm:"not null;index"`
	Restaurant   Restaurant      `json:"restaurant,omitempty" gorm:"foreignKey:RestaurantID"`
	Description  string          `json:"description"`
	Price        decimal.Decimal `json:"price" gorm:"type:decimal(7,2);not null"`
	Image        string          `json:"image"` // media reference, relative to the media root
	IsAvailable  bool            `json:"is_available" gorm:"not null"`
	CreatedAt    time.Time       `json:"created_at"`
}
