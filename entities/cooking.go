package entities

import (
	"github.com/google/uuid"
)

// CookingEvent records one cook action. PortionWasted starts at zero and is
// updated later by the waste-logging endpoint.
type CookingEvent struct {
	ID              uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	UserID          uuid.UUID `gorm:"index" json:"user_id"`
	RecipeID        uuid.UUID `json:"recipe_id"`
	Pax             int       `json:"pax"`
	IngredientsUsed string    `gorm:"type:text" json:"ingredients_used"`
	PortionWasted   float64   `gorm:"default:0" json:"portion_wasted"`

	User   *User   `gorm:"foreignKey:UserID"`
	Recipe *Recipe `gorm:"foreignKey:RecipeID"`
	Timestamp
}
