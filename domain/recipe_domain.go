package domain

import (
	"errors"
	"time"
)

var (
	MessageSuccessGetRecipes         = "recipes retrieved successfully"
	MessageSuccessCreateRecipe       = "recipe added successfully"
	MessageSuccessUpdateRecipe       = "recipe updated successfully"
	MessageSuccessDeleteRecipe       = "recipe deleted successfully"
	MessageSuccessGetRecommendations = "recommended recipes retrieved successfully"
	MessageSuccessGetLeftovers       = "leftover report retrieved successfully"

	MessageFailedGetRecipes         = "failed to retrieve recipes"
	MessageFailedCreateRecipe       = "failed to add recipe"
	MessageFailedUpdateRecipe       = "failed to update recipe"
	MessageFailedDeleteRecipe       = "failed to delete recipe"
	MessageFailedGetRecommendations = "failed to retrieve recommended recipes"
	MessageFailedGetLeftovers       = "failed to retrieve leftover report"

	ErrRecipeNotFound = errors.New("recipe not found")
	ErrNoIngredients  = errors.New("recipe must have at least one ingredient")
)

type (
	// RecipeIngredient is the per-serving requirement for one ingredient.
	RecipeIngredient struct {
		IngredientName string  `json:"ingredient_name" validate:"required"`
		Quantity       float64 `json:"quantity" validate:"required,gt=0"`
		Unit           string  `json:"unit" validate:"required,oneof=kg g L ml pcs"`
	}

	CreateRecipeRequest struct {
		Name                string             `json:"name" validate:"required,max=255"`
		Description         string             `json:"description"`
		Steps               string             `json:"steps"`
		CookingTime         string             `json:"cooking_time"`
		SustainabilityNotes string             `json:"sustainability_notes"`
		Ingredients         []RecipeIngredient `json:"ingredients" validate:"required,min=1,dive"`
	}

	RecipeResponse struct {
		ID                  string             `json:"id"`
		Name                string             `json:"name"`
		Description         string             `json:"description"`
		Steps               string             `json:"steps"`
		CookingTime         string             `json:"cooking_time"`
		SustainabilityNotes string             `json:"sustainability_notes"`
		Ingredients         []RecipeIngredient `json:"ingredients"`
		CreatedAt           time.Time          `json:"created_at"`
	}

	// MatchedRecipe is a recommendation result: every listed ingredient name is
	// present in the user's stock. Shortfalls carry sufficiency detail so the
	// client can warn before the user cooks.
	MatchedRecipe struct {
		RecipeID       string             `json:"recipe_id"`
		RecipeName     string             `json:"recipe_name"`
		GroceryMatched []RecipeIngredient `json:"grocery_matched"`
		Sufficient     bool               `json:"sufficient"`
		Shortfalls     []Shortfall        `json:"shortfalls,omitempty"`
	}

	// IngredientLeftover is one row of the leftover report: how much of an
	// ingredient a recipe needs, how much stock covers it, and what would
	// remain after cooking. Leftover never goes negative.
	IngredientLeftover struct {
		IngredientName    string  `json:"ingredient_name"`
		RequiredQuantity  float64 `json:"required_quantity"`
		AvailableQuantity float64 `json:"available_quantity"`
		LeftoverQuantity  float64 `json:"leftover_quantity"`
		Unit              string  `json:"unit"`
	}
)
