package models

import (
	"time"
)

const (
	StatusPending  = "pending"
	StatusVerified = "verified"
	StatusResolved = "resolved"
	StatusRejected = "rejected"
)

// ValidStatus reports whether s is one of the four report statuses.
// Anything else is ignored on update, the prior status is kept.
func ValidStatus(s string) bool {
	switch s {
	case StatusPending, StatusVerified, StatusResolved, StatusRejected:
		return true
	}
	return false
}

type Report struct {
	ID          uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	Title       string    `gorm:"size:150;not null" json:"title"`
	Description string    `gorm:"type:text" json:"description"`
	Latitude    float64   `gorm:"not null" json:"latitude"`
	Longitude   float64   `gorm:"not null" json:"longitude"`
	ImageURL    *string   `gorm:"size:255" json:"image_url"`
	Status      string    `gorm:"size:20;not null;default:'pending'" json:"status"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`

	UserID     uint     `gorm:"not null" json:"user_id"`
	User       User     `gorm:"foreignKey:UserID" json:"-"`
	CategoryID uint     `gorm:"not null" json:"category_id"`
	Category   Category `gorm:"foreignKey:CategoryID" json:"-"`
}
