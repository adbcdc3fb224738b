package grocery

import (
	"context"
	"time"

	"github.com/rubeenavs/foodwise/entities"
	"gorm.io/gorm"
)

type (
	GroceryRepository interface {
		AddBatch(ctx context.Context, batch *entities.GroceryBatch) error
		AddBatches(ctx context.Context, batches []*entities.GroceryBatch) error
		GetBatchByID(ctx context.Context, id string) (*entities.GroceryBatch, error)
		UpdateBatch(ctx context.Context, batch *entities.GroceryBatch) error
		DeleteBatch(ctx context.Context, id string) error
		GetBatches(ctx context.Context, userID string) ([]*entities.GroceryBatch, error)
		GetPositiveBatches(ctx context.Context, userID string) ([]*entities.GroceryBatch, error)
		GetBatchesByExpiryRange(ctx context.Context, userID string, startDate, endDate time.Time) ([]*entities.GroceryBatch, error)

		CreateBillScan(ctx context.Context, scan *entities.BillScan) error
		GetBillScanByID(ctx context.Context, id string) (*entities.BillScan, error)
		UpdateBillScan(ctx context.Context, scan *entities.BillScan) error
		GetBatchesByBillScan(ctx context.Context, scanID string) ([]*entities.GroceryBatch, error)
	}

	groceryRepository struct {
		db *gorm.DB
	}
)

func NewGroceryRepository(db *gorm.DB) GroceryRepository {
	return &groceryRepository{db: db}
}

func (r *groceryRepository) AddBatch(ctx context.Context, batch *entities.GroceryBatch) error {
	return r.db.WithContext(ctx).Create(batch).Error
}

func (r *groceryRepository) AddBatches(ctx context.Context, batches []*entities.GroceryBatch) error {
	return r.db.WithContext(ctx).Create(batches).Error
}

func (r *groceryRepository) GetBatchByID(ctx context.Context, id string) (*entities.GroceryBatch, error) {
	var batch entities.GroceryBatch
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&batch).Error; err != nil {
		return nil, err
	}
	return &batch, nil
}

func (r *groceryRepository) UpdateBatch(ctx context.Context, batch *entities.GroceryBatch) error {
	return r.db.WithContext(ctx).Save(batch).Error
}

func (r *groceryRepository) DeleteBatch(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&entities.GroceryBatch{}).Error
}

func (r *groceryRepository) GetBatches(ctx context.Context, userID string) ([]*entities.GroceryBatch, error) {
	var batches []*entities.GroceryBatch
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("purchase_date asc").
		Find(&batches).Error; err != nil {
		return nil, err
	}
	return batches, nil
}

func (r *groceryRepository) GetPositiveBatches(ctx context.Context, userID string) ([]*entities.GroceryBatch, error) {
	var batches []*entities.GroceryBatch
	if err := r.db.WithContext(ctx).
		Where("user_id = ? AND quantity > 0", userID).
		Order("purchase_date asc").
		Find(&batches).Error; err != nil {
		return nil, err
	}
	return batches, nil
}

func (r *groceryRepository) GetBatchesByExpiryRange(ctx context.Context, userID string, startDate, endDate time.Time) ([]*entities.GroceryBatch, error) {
	var batches []*entities.GroceryBatch
	if err := r.db.WithContext(ctx).
		Where("user_id = ? AND expiry_date BETWEEN ? AND ?", userID, startDate, endDate).
		Order("expiry_date asc").
		Find(&batches).Error; err != nil {
		return nil, err
	}
	return batches, nil
}

func (r *groceryRepository) CreateBillScan(ctx context.Context, scan *entities.BillScan) error {
	return r.db.WithContext(ctx).Create(scan).Error
}

func (r *groceryRepository) GetBillScanByID(ctx context.Context, id string) (*entities.BillScan, error) {
	var scan entities.BillScan
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&scan).Error; err != nil {
		return nil, err
	}
	return &scan, nil
}

func (r *groceryRepository) UpdateBillScan(ctx context.Context, scan *entities.BillScan) error {
	return r.db.WithContext(ctx).Save(scan).Error
}

func (r *groceryRepository) GetBatchesByBillScan(ctx context.Context, scanID string) ([]*entities.GroceryBatch, error) {
	var batches []*entities.GroceryBatch
	if err := r.db.WithContext(ctx).
		Where("bill_scan_id = ?", scanID).
		Find(&batches).Error; err != nil {
		return nil, err
	}
	return batches, nil
}
