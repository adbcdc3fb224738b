package waste

import (
	"context"
	"time"

	"github.com/rubeenavs/foodwise/entities"
	"gorm.io/gorm"
)

type (
	WasteRepository interface {
		GetExpiredCost(ctx context.Context, userID string) (float64, error)
		GetPortionWaste(ctx context.Context, userID string) (float64, error)
		GetWeeklyWaste(ctx context.Context, userID string, limit int) ([]*entities.WeeklyWaste, error)
		CreateWeeklyWaste(ctx context.Context, row *entities.WeeklyWaste) error
		GetUserIDs(ctx context.Context) ([]string, error)
	}

	wasteRepository struct {
		db *gorm.DB
	}
)

func NewWasteRepository(db *gorm.DB) WasteRepository {
	return &wasteRepository{db: db}
}

// GetExpiredCost sums the purchase price of batches already past expiry.
func (r *wasteRepository) GetExpiredCost(ctx context.Context, userID string) (float64, error) {
	var total *float64
	if err := r.db.WithContext(ctx).
		Model(&entities.GroceryBatch{}).
		Where("user_id = ? AND expiry_date IS NOT NULL AND expiry_date < ?", userID, time.Now()).
		Select("SUM(price)").
		Scan(&total).Error; err != nil {
		return 0, err
	}
	if total == nil {
		return 0, nil
	}
	return *total, nil
}

func (r *wasteRepository) GetPortionWaste(ctx context.Context, userID string) (float64, error) {
	var total *float64
	if err := r.db.WithContext(ctx).
		Model(&entities.CookingEvent{}).
		Where("user_id = ?", userID).
		Select("SUM(portion_wasted)").
		Scan(&total).Error; err != nil {
		return 0, err
	}
	if total == nil {
		return 0, nil
	}
	return *total, nil
}

func (r *wasteRepository) GetWeeklyWaste(ctx context.Context, userID string, limit int) ([]*entities.WeeklyWaste, error) {
	var rows []*entities.WeeklyWaste
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("week_start desc").
		Limit(limit).
		Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *wasteRepository) CreateWeeklyWaste(ctx context.Context, row *entities.WeeklyWaste) error {
	return r.db.WithContext(ctx).Create(row).Error
}

func (r *wasteRepository) GetUserIDs(ctx context.Context) ([]string, error) {
	var ids []string
	if err := r.db.WithContext(ctx).
		Model(&entities.User{}).
		Pluck("id", &ids).Error; err != nil {
		return nil, err
	}
	return ids, nil
}
