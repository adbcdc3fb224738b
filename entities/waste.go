package entities

import (
	"time"

	"github.com/google/uuid"
)

// WeeklyWaste is a rollup row written by the scheduled job, one per user per week.
type WeeklyWaste struct {
	ID           uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	UserID       uuid.UUID `gorm:"index" json:"user_id"`
	WeekStart    time.Time `json:"week_start"`
	ExpiredWaste float64   `json:"expired_waste"`
	PortionWaste float64   `json:"portion_waste"`

	User *User `gorm:"foreignKey:UserID"`
	Timestamp
}
