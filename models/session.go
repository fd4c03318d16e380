package models

import "time"

// Session is a server-side login. The cookie only carries Token, so deleting
// the row logs that browser out even if the cookie is replayed.
type Session struct {
	Token     string    `gorm:"primaryKey;size:64"`
	UserID    uint      `gorm:"not null;index"`
	ExpiresAt time.Time `gorm:"not null;index"`
	CreatedAt time.Time
}
