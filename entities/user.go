package entities

import (
	"github.com/google/uuid"
)

type User struct {
	ID         uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	Username   string    `json:"username"`
	Email      string    `gorm:"uniqueIndex" json:"email"`
	Password   string    `json:"-"`
	Role       string    `json:"role"` // user, admin
	IsVerified bool      `json:"is_verified"`

	Timestamp
}
