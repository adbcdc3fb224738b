package entities

import (
	"github.com/google/uuid"
)

type Recipe struct {
	ID                  uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	Name                string    `json:"name"`
	Description         string    `gorm:"type:text" json:"description"`
	Steps               string    `gorm:"type:text" json:"steps"`
	CookingTime         string    `json:"cooking_time"`
	SustainabilityNotes string    `gorm:"type:text" json:"sustainability_notes"`
	// Ingredients is a JSON list of {ingredient_name, quantity, unit} per serving.
	Ingredients string `gorm:"type:text" json:"ingredients"`

	Timestamp
}
