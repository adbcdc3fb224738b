package cooking

import (
	"github.com/rubeenavs/foodwise/domain"
	"github.com/rubeenavs/foodwise/entities"
)

// CheckFeasibility is the single predicate shared by the recommendation
// matcher and the cook pre-check. A recipe is feasible when every listed
// ingredient name is present in the stock with positive quantity; the returned
// shortfalls additionally report where the summed stock does not cover the
// scaled requirement, so callers can warn about insufficiency.
func CheckFeasibility(batches []*entities.GroceryBatch, ingredients []domain.RecipeIngredient, pax int) (bool, []domain.Shortfall) {
	type stock struct {
		present bool
		byUnit  map[string]float64
	}

	available := make(map[string]*stock)
	for _, batch := range batches {
		if batch.Quantity <= 0 {
			continue
		}
		key := NormalizeName(batch.Name)
		entry, ok := available[key]
		if !ok {
			entry = &stock{byUnit: make(map[string]float64)}
			available[key] = entry
		}
		quantity, unit := Normalize(batch.Quantity, batch.Unit)
		entry.present = true
		entry.byUnit[unit] += quantity
	}

	feasible := true
	var shortfalls []domain.Shortfall
	for _, ingredient := range ingredients {
		required, unit := Normalize(ingredient.Quantity*float64(pax), ingredient.Unit)
		entry, ok := available[NormalizeName(ingredient.IngredientName)]
		if !ok || !entry.present {
			feasible = false
			shortfalls = append(shortfalls, domain.Shortfall{
				IngredientName: ingredient.IngredientName,
				MissingAmount:  required,
				Unit:           unit,
			})
			continue
		}
		if entry.byUnit[unit] < required {
			shortfalls = append(shortfalls, domain.Shortfall{
				IngredientName: ingredient.IngredientName,
				MissingAmount:  required - entry.byUnit[unit],
				Unit:           unit,
			})
		}
	}

	return feasible, shortfalls
}

// ComputeLeftovers builds the per-ingredient leftover report for a recipe:
// the scaled requirement, the summed stock in the same base unit, and what
// would remain after cooking, floored at zero. Ingredients missing from stock
// appear with zero availability rather than being dropped.
func ComputeLeftovers(batches []*entities.GroceryBatch, ingredients []domain.RecipeIngredient, pax int) []domain.IngredientLeftover {
	available := make(map[string]map[string]float64)
	for _, batch := range batches {
		if batch.Quantity <= 0 {
			continue
		}
		key := NormalizeName(batch.Name)
		if available[key] == nil {
			available[key] = make(map[string]float64)
		}
		quantity, unit := Normalize(batch.Quantity, batch.Unit)
		available[key][unit] += quantity
	}

	report := make([]domain.IngredientLeftover, 0, len(ingredients))
	for _, ingredient := range ingredients {
		required, unit := Normalize(ingredient.Quantity*float64(pax), ingredient.Unit)
		stock := available[NormalizeName(ingredient.IngredientName)][unit]

		leftover := stock - required
		if leftover < 0 {
			leftover = 0
		}

		report = append(report, domain.IngredientLeftover{
			IngredientName:    ingredient.IngredientName,
			RequiredQuantity:  required,
			AvailableQuantity: stock,
			LeftoverQuantity:  leftover,
			Unit:              unit,
		})
	}

	return report
}
