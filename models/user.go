package models

import (
	"time"
)

const (
	RoleReporter = "reporter"
	RoleAdmin    = "admin"
)

type User struct {
	ID        uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	Name      string    `gorm:"size:100;not null" json:"name"`
	Email     string    `gorm:"size:120;uniqueIndex;not null" json:"email"`
	Password  string    `gorm:"size:255;not null" json:"-"` // Don't expose password hash in JSON
	Role      string    `gorm:"size:20;not null;default:'reporter'" json:"role"`
	CreatedAt time.Time `json:"created_at"`

	Reports []Report `gorm:"foreignKey:UserID" json:"-"`
}
