package domain

import (
	"errors"
)

var (
	MessageSuccessCook        = "cooking process completed"
	MessageSuccessRecordWaste = "food waste recorded successfully"

	MessageFailedCook        = "failed to save cooking data"
	MessageFailedRecordWaste = "failed to record food waste"

	ErrCookingEventNotFound = errors.New("cooking event not found")
	ErrStockConflict        = errors.New("stock changed concurrently, retry the cook request")
)

type (
	CookRequest struct {
		RecipeID        string             `json:"recipe_id" validate:"required,uuid"`
		Pax             int                `json:"pax" validate:"required,gt=0"`
		IngredientsUsed []RecipeIngredient `json:"ingredients_used" validate:"required,min=1,dive"`
	}

	// Shortfall is the unmet portion of an ingredient's requirement after all
	// matching batches were consumed. Reported, never fatal.
	Shortfall struct {
		IngredientName string  `json:"ingredient_name"`
		MissingAmount  float64 `json:"missing_amount"`
		Unit           string  `json:"unit"`
	}

	CookResponse struct {
		Message       string      `json:"message"`
		CalculationID string      `json:"calculation_id"`
		Shortfalls    []Shortfall `json:"shortfalls,omitempty"`
	}

	// PortionWasted is a pointer so "missing" and "zero" stay distinguishable.
	RecordWasteRequest struct {
		PortionWasted *float64 `json:"portion_wasted" validate:"required,gte=0"`
	}
)
