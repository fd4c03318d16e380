package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// StatusOrdered is the status every order is created with. Nothing moves an
// order out of it yet.
const StatusOrdered = "Ordered"

type Order struct {
	ID         uint            `json:"id" gorm:"primaryKey"`
	UserID     uint            `json:"user_id" gorm:"not null;index"`
	User       User            `json:"user,omitempty" gorm:"foreignKey:UserID"`
	FoodID     uint            `json:"food_id" gorm:"not null;index"`
	Food       FoodItem        `json:"food,omitempty" gorm:"foreignKey:FoodID"`
	Quantity   int             `json:"quantity" gorm:"not null;default:1"`
	TotalPrice decimal.Decimal `json:"total_price" gorm:"type:decimal(8,2);not null"`
	Status     string          `json:"status" gorm:"size:20;not null;default:'Ordered'"`
	OrderedAt  time.Time       `json:"ordered_at" gorm:"autoCreateTime"`
}
