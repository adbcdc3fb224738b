package recommendation

import (
	"context"
	"errors"
	"log"

	"github.com/rubeenavs/foodwise/domain"
	"github.com/rubeenavs/foodwise/pkg/cooking"
	"github.com/rubeenavs/foodwise/pkg/grocery"
	"github.com/rubeenavs/foodwise/pkg/recipe"
	"gorm.io/gorm"
)

type (
	RecommendationService interface {
		Recommend(ctx context.Context, userID string) ([]domain.MatchedRecipe, error)
		Leftovers(ctx context.Context, userID, recipeID string, pax int) ([]domain.IngredientLeftover, error)
	}

	recommendationService struct {
		recipeRepository  recipe.RecipeRepository
		groceryRepository grocery.GroceryRepository
	}
)

func NewRecommendationService(recipeRepository recipe.RecipeRepository, groceryRepository grocery.GroceryRepository) RecommendationService {
	return &recommendationService{
		recipeRepository:  recipeRepository,
		groceryRepository: groceryRepository,
	}
}

// Recommend returns the recipes whose every ingredient name is present in the
// user's positive-quantity stock. Feasibility goes through the same predicate
// the consumption engine uses, so the two sites can never disagree on what
// counts as the same ingredient. Recipes with unparsable ingredient lists are
// skipped, and recipe fetch order is preserved.
func (s *recommendationService) Recommend(ctx context.Context, userID string) ([]domain.MatchedRecipe, error) {
	batches, err := s.groceryRepository.GetPositiveBatches(ctx, userID)
	if err != nil {
		return nil, err
	}

	recipes, err := s.recipeRepository.GetRecipes(ctx)
	if err != nil {
		return nil, err
	}

	matched := make([]domain.MatchedRecipe, 0)
	for _, r := range recipes {
		ingredients, err := recipe.ParseIngredients(r.Ingredients)
		if err != nil || len(ingredients) == 0 {
			log.Printf("recommend: skipping recipe %s with malformed ingredients", r.ID)
			continue
		}

		feasible, shortfalls := cooking.CheckFeasibility(batches, ingredients, 1)
		if !feasible {
			continue
		}

		matched = append(matched, domain.MatchedRecipe{
			RecipeID:       r.ID.String(),
			RecipeName:     r.Name,
			GroceryMatched: ingredients,
			Sufficient:     len(shortfalls) == 0,
			Shortfalls:     shortfalls,
		})
	}

	return matched, nil
}

// Leftovers reports, per ingredient of one recipe, the scaled requirement
// against the user's current stock and what would remain after cooking.
func (s *recommendationService) Leftovers(ctx context.Context, userID, recipeID string, pax int) ([]domain.IngredientLeftover, error) {
	r, err := s.recipeRepository.GetRecipeByID(ctx, recipeID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrRecipeNotFound
		}
		return nil, err
	}

	ingredients, err := recipe.ParseIngredients(r.Ingredients)
	if err != nil || len(ingredients) == 0 {
		return nil, domain.ErrNoIngredients
	}

	batches, err := s.groceryRepository.GetPositiveBatches(ctx, userID)
	if err != nil {
		return nil, err
	}

	return cooking.ComputeLeftovers(batches, ingredients, pax), nil
}
