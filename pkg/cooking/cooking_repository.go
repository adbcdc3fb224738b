package cooking

import (
	"context"

	"github.com/google/uuid"
	"github.com/rubeenavs/foodwise/entities"
	"gorm.io/gorm"
)

type (
	CookingRepository interface {
		// WithTransaction runs fn against a transaction-scoped copy of the
		// repository so one cook request either consumes stock and records its
		// event, or leaves the ledger untouched.
		WithTransaction(ctx context.Context, fn func(repo CookingRepository) error) error

		GetBatchesForIngredient(ctx context.Context, userID string, name string) ([]*entities.GroceryBatch, error)
		// UpdateBatchQuantity writes the new quantity only if the row still
		// holds prevQuantity; zero affected rows means a concurrent writer won.
		UpdateBatchQuantity(ctx context.Context, id uuid.UUID, prevQuantity, newQuantity float64, newUnit string) (int64, error)
		DeleteBatch(ctx context.Context, id uuid.UUID, prevQuantity float64) (int64, error)
		CreateCookingEvent(ctx context.Context, event *entities.CookingEvent) error
		UpdatePortionWasted(ctx context.Context, eventID, userID string, portionWasted float64) (int64, error)
	}

	cookingRepository struct {
		db *gorm.DB
	}
)

func NewCookingRepository(db *gorm.DB) CookingRepository {
	return &cookingRepository{db: db}
}

func (r *cookingRepository) WithTransaction(ctx context.Context, fn func(repo CookingRepository) error) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&cookingRepository{db: tx})
	})
}

func (r *cookingRepository) GetBatchesForIngredient(ctx context.Context, userID string, name string) ([]*entities.GroceryBatch, error) {
	var batches []*entities.GroceryBatch
	if err := r.db.WithContext(ctx).
		Where("user_id = ? AND LOWER(TRIM(name)) = ?", userID, NormalizeName(name)).
		Order("purchase_date asc").
		Find(&batches).Error; err != nil {
		return nil, err
	}
	return batches, nil
}

func (r *cookingRepository) UpdateBatchQuantity(ctx context.Context, id uuid.UUID, prevQuantity, newQuantity float64, newUnit string) (int64, error) {
	result := r.db.WithContext(ctx).
		Model(&entities.GroceryBatch{}).
		Where("id = ? AND quantity = ?", id, prevQuantity).
		Updates(map[string]interface{}{"quantity": newQuantity, "unit": newUnit})
	return result.RowsAffected, result.Error
}

func (r *cookingRepository) DeleteBatch(ctx context.Context, id uuid.UUID, prevQuantity float64) (int64, error) {
	result := r.db.WithContext(ctx).
		Where("id = ? AND quantity = ?", id, prevQuantity).
		Delete(&entities.GroceryBatch{})
	return result.RowsAffected, result.Error
}

func (r *cookingRepository) CreateCookingEvent(ctx context.Context, event *entities.CookingEvent) error {
	return r.db.WithContext(ctx).Create(event).Error
}

func (r *cookingRepository) UpdatePortionWasted(ctx context.Context, eventID, userID string, portionWasted float64) (int64, error) {
	result := r.db.WithContext(ctx).
		Model(&entities.CookingEvent{}).
		Where("id = ? AND user_id = ?", eventID, userID).
		Update("portion_wasted", portionWasted)
	return result.RowsAffected, result.Error
}
