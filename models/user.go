package models

import (
	"time"
)

type UserRole string

const (
	RoleUser  UserRole = "USER"
	RoleAdmin UserRole = "ADMIN"
)

// User rows are created on first sign-in. Role changes happen out of band,
// never over this API.
type User struct {
	ID         uint      `json:"id" gorm:"primarykey"`
	Name       string    `json:"name"`
	Email      string    `json:"-" gorm:"uniqueIndex;not null"`
	Password   string    `json:"-"`
	Image      string    `json:"image"`
	Role       UserRole  `json:"role" gorm:"default:'USER'"`
	Provider   string    `json:"-"`
	ProviderID string    `json:"-" gorm:"index"`
	CreatedAt  time.Time `json:"-"`
	UpdatedAt  time.Time `json:"-"`
}
