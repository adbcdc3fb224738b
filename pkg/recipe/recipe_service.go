package recipe

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/google/uuid"
	"github.com/rubeenavs/foodwise/domain"
	"github.com/rubeenavs/foodwise/entities"
	"gorm.io/gorm"
)

type (
	RecipeService interface {
		CreateRecipe(ctx context.Context, req domain.CreateRecipeRequest) (domain.RecipeResponse, error)
		GetRecipes(ctx context.Context) ([]domain.RecipeResponse, error)
		UpdateRecipe(ctx context.Context, id string, req domain.CreateRecipeRequest) error
		DeleteRecipe(ctx context.Context, id string) error
	}

	recipeService struct {
		recipeRepository RecipeRepository
	}
)

func NewRecipeService(recipeRepository RecipeRepository) RecipeService {
	return &recipeService{recipeRepository: recipeRepository}
}

func (s *recipeService) CreateRecipe(ctx context.Context, req domain.CreateRecipeRequest) (domain.RecipeResponse, error) {
	if len(req.Ingredients) == 0 {
		return domain.RecipeResponse{}, domain.ErrNoIngredients
	}

	ingredientsJSON, err := json.Marshal(req.Ingredients)
	if err != nil {
		return domain.RecipeResponse{}, err
	}

	recipe := &entities.Recipe{
		ID:                  uuid.New(),
		Name:                req.Name,
		Description:         req.Description,
		Steps:               req.Steps,
		CookingTime:         req.CookingTime,
		SustainabilityNotes: req.SustainabilityNotes,
		Ingredients:         string(ingredientsJSON),
	}

	if err := s.recipeRepository.CreateRecipe(ctx, recipe); err != nil {
		return domain.RecipeResponse{}, err
	}

	return toRecipeResponse(recipe, req.Ingredients), nil
}

func (s *recipeService) GetRecipes(ctx context.Context) ([]domain.RecipeResponse, error) {
	recipes, err := s.recipeRepository.GetRecipes(ctx)
	if err != nil {
		return nil, err
	}

	response := make([]domain.RecipeResponse, 0, len(recipes))
	for _, recipe := range recipes {
		ingredients, err := ParseIngredients(recipe.Ingredients)
		if err != nil {
			// malformed ingredient list, still expose the recipe itself
			ingredients = nil
		}
		response = append(response, toRecipeResponse(recipe, ingredients))
	}
	return response, nil
}

func (s *recipeService) UpdateRecipe(ctx context.Context, id string, req domain.CreateRecipeRequest) error {
	if len(req.Ingredients) == 0 {
		return domain.ErrNoIngredients
	}

	recipe, err := s.recipeRepository.GetRecipeByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrRecipeNotFound
		}
		return err
	}

	ingredientsJSON, err := json.Marshal(req.Ingredients)
	if err != nil {
		return err
	}

	recipe.Name = req.Name
	recipe.Description = req.Description
	recipe.Steps = req.Steps
	recipe.CookingTime = req.CookingTime
	recipe.SustainabilityNotes = req.SustainabilityNotes
	recipe.Ingredients = string(ingredientsJSON)

	return s.recipeRepository.UpdateRecipe(ctx, recipe)
}

func (s *recipeService) DeleteRecipe(ctx context.Context, id string) error {
	rows, err := s.recipeRepository.DeleteRecipe(ctx, id)
	if err != nil {
		return err
	}
	if rows == 0 {
		return domain.ErrRecipeNotFound
	}
	return nil
}

// ParseIngredients decodes the serialized per-serving ingredient list.
func ParseIngredients(raw string) ([]domain.RecipeIngredient, error) {
	var ingredients []domain.RecipeIngredient
	if err := json.Unmarshal([]byte(raw), &ingredients); err != nil {
		return nil, err
	}
	return ingredients, nil
}

func toRecipeResponse(recipe *entities.Recipe, ingredients []domain.RecipeIngredient) domain.RecipeResponse {
	return domain.RecipeResponse{
		ID:                  recipe.ID.String(),
		Name:                recipe.Name,
		Description:         recipe.Description,
		Steps:               recipe.Steps,
		CookingTime:         recipe.CookingTime,
		SustainabilityNotes: recipe.SustainabilityNotes,
		Ingredients:         ingredients,
		CreatedAt:           recipe.CreatedAt,
	}
}
