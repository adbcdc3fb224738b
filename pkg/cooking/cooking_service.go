package cooking

import (
	"context"
	"encoding/json"
	"log"

	"github.com/google/uuid"
	"github.com/rubeenavs/foodwise/domain"
	"github.com/rubeenavs/foodwise/entities"
)

type (
	CookingService interface {
		Cook(ctx context.Context, req domain.CookRequest, userID string) (domain.CookResponse, error)
		RecordWaste(ctx context.Context, eventID string, portionWasted float64, userID string) error
	}

	cookingService struct {
		cookingRepository CookingRepository
	}
)

func NewCookingService(cookingRepository CookingRepository) CookingService {
	return &cookingService{cookingRepository: cookingRepository}
}

// Cook deducts the scaled ingredient requirements from the user's grocery
// batches, oldest purchase first, and records a cooking event. Missing or
// insufficient stock is reported as a shortfall, never as a failure; the whole
// operation runs inside one transaction so a persistence error rolls the
// ledger back.
func (s *cookingService) Cook(ctx context.Context, req domain.CookRequest, userID string) (domain.CookResponse, error) {
	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return domain.CookResponse{}, domain.ErrParseUUID
	}
	recipeUUID, err := uuid.Parse(req.RecipeID)
	if err != nil {
		return domain.CookResponse{}, domain.ErrParseUUID
	}

	event := &entities.CookingEvent{
		ID:       uuid.New(),
		UserID:   userUUID,
		RecipeID: recipeUUID,
		Pax:      req.Pax,
	}

	var shortfalls []domain.Shortfall
	err = s.cookingRepository.WithTransaction(ctx, func(repo CookingRepository) error {
		shortfalls = shortfalls[:0]
		for _, ingredient := range req.IngredientsUsed {
			missing, err := s.consumeIngredient(ctx, repo, userID, ingredient, req.Pax)
			if err != nil {
				return err
			}
			if missing != nil {
				shortfalls = append(shortfalls, *missing)
			}
		}

		ingredientsJSON, err := json.Marshal(req.IngredientsUsed)
		if err != nil {
			return err
		}
		event.IngredientsUsed = string(ingredientsJSON)
		return repo.CreateCookingEvent(ctx, event)
	})
	if err != nil {
		return domain.CookResponse{}, err
	}

	return domain.CookResponse{
		Message:       domain.MessageSuccessCook,
		CalculationID: event.ID.String(),
		Shortfalls:    shortfalls,
	}, nil
}

// consumeIngredient walks the ingredient's batches in purchase-date order and
// deducts the normalized requirement. Returns a shortfall when stock ran out,
// or an error only on persistence problems.
func (s *cookingService) consumeIngredient(ctx context.Context, repo CookingRepository, userID string, ingredient domain.RecipeIngredient, pax int) (*domain.Shortfall, error) {
	required, unit := Normalize(ingredient.Quantity*float64(pax), ingredient.Unit)

	batches, err := repo.GetBatchesForIngredient(ctx, userID, ingredient.IngredientName)
	if err != nil {
		return nil, err
	}
	if len(batches) == 0 {
		log.Printf("cook: no stock for ingredient %q (user %s), skipping", ingredient.IngredientName, userID)
		return &domain.Shortfall{IngredientName: ingredient.IngredientName, MissingAmount: required, Unit: unit}, nil
	}

	remaining := required
	for _, batch := range batches {
		if remaining <= 0 {
			break
		}
		available, _ := Normalize(batch.Quantity, batch.Unit)
		if available <= 0 {
			// depleted rows should not exist, tolerate them
			continue
		}

		if available > remaining {
			newQuantity, newUnit := ForStorage(available-remaining, unit)
			rows, err := repo.UpdateBatchQuantity(ctx, batch.ID, batch.Quantity, newQuantity, newUnit)
			if err != nil {
				return nil, err
			}
			if rows == 0 {
				return nil, domain.ErrStockConflict
			}
			remaining = 0
		} else {
			rows, err := repo.DeleteBatch(ctx, batch.ID, batch.Quantity)
			if err != nil {
				return nil, err
			}
			if rows == 0 {
				return nil, domain.ErrStockConflict
			}
			remaining -= available
		}
	}

	if remaining > 0 {
		log.Printf("cook: insufficient stock for ingredient %q (user %s), short by %.2f %s", ingredient.IngredientName, userID, remaining, unit)
		return &domain.Shortfall{IngredientName: ingredient.IngredientName, MissingAmount: remaining, Unit: unit}, nil
	}
	return nil, nil
}

func (s *cookingService) RecordWaste(ctx context.Context, eventID string, portionWasted float64, userID string) error {
	if _, err := uuid.Parse(eventID); err != nil {
		return domain.ErrParseUUID
	}

	rows, err := s.cookingRepository.UpdatePortionWasted(ctx, eventID, userID, portionWasted)
	if err != nil {
		return err
	}
	if rows == 0 {
		return domain.ErrCookingEventNotFound
	}
	return nil
}
