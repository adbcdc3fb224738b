package grocery

import (
	"context"
	"mime/multipart"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"github.com/rubeenavs/foodwise/domain"
	"github.com/rubeenavs/foodwise/entities"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type s3Stub struct{}

func (s3Stub) UploadFile(fileName string, file *multipart.FileHeader, folder string, allowedExt ...string) (string, error) {
	return folder + "/" + fileName, nil
}
func (s3Stub) DeleteFile(objectKey string) error      { return nil }
func (s3Stub) GetPublicLinkKey(objectKey string) string { return "https://bucket.test/" + objectKey }

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(
		&entities.User{},
		&entities.GroceryBatch{},
		&entities.BillScan{},
	))
	return db
}

func newTestService(db *gorm.DB) GroceryService {
	return NewGroceryService(NewGroceryRepository(db), s3Stub{})
}

func TestAddGrocery(t *testing.T) {
	db := setupTestDB(t)
	service := newTestService(db)
	userID := uuid.New()

	res, err := service.AddGrocery(context.Background(), domain.AddGroceryRequest{
		Name:         "Rice",
		Quantity:     5,
		Unit:         "kg",
		Price:        12.5,
		PurchaseDate: "2026-03-01",
		ExpiryDate:   "2027-03-01",
	}, userID.String())
	require.NoError(t, err)

	assert.Equal(t, "Rice", res.Name)
	assert.Equal(t, "Safe", res.Status)

	var batch entities.GroceryBatch
	require.NoError(t, db.Where("user_id = ?", userID).First(&batch).Error)
	assert.InDelta(t, 5, batch.Quantity, 0.001)
	require.NotNil(t, batch.ExpiryDate)
}

func TestAddGroceryRejectsBadDates(t *testing.T) {
	db := setupTestDB(t)
	service := newTestService(db)
	userID := uuid.New().String()

	_, err := service.AddGrocery(context.Background(), domain.AddGroceryRequest{
		Name: "Rice", Quantity: 1, Unit: "kg", PurchaseDate: "01/03/2026",
	}, userID)
	assert.ErrorIs(t, err, domain.ErrInvalidPurchaseDate)

	_, err = service.AddGrocery(context.Background(), domain.AddGroceryRequest{
		Name: "Rice", Quantity: 1, Unit: "kg", PurchaseDate: "2026-03-01", ExpiryDate: "soon",
	}, userID)
	assert.ErrorIs(t, err, domain.ErrInvalidExpiryDate)
}

func TestUpdateGroceryOwnership(t *testing.T) {
	db := setupTestDB(t)
	service := newTestService(db)

	owner := uuid.New()
	batch := &entities.GroceryBatch{
		ID: uuid.New(), UserID: owner, Name: "Milk", Quantity: 1, Unit: "L",
		PurchaseDate: time.Now(),
	}
	require.NoError(t, db.Create(batch).Error)

	err := service.UpdateGrocery(context.Background(), batch.ID.String(), domain.UpdateGroceryRequest{
		Quantity: 2,
	}, uuid.New().String())
	assert.ErrorIs(t, err, domain.ErrUnauthorizedAccess)

	require.NoError(t, service.UpdateGrocery(context.Background(), batch.ID.String(), domain.UpdateGroceryRequest{
		Quantity: 2,
	}, owner.String()))

	var stored entities.GroceryBatch
	require.NoError(t, db.Where("id = ?", batch.ID).First(&stored).Error)
	assert.InDelta(t, 2, stored.Quantity, 0.001)
}

func TestDeleteGrocery(t *testing.T) {
	db := setupTestDB(t)
	service := newTestService(db)

	owner := uuid.New()
	batch := &entities.GroceryBatch{
		ID: uuid.New(), UserID: owner, Name: "Milk", Quantity: 1, Unit: "L",
		PurchaseDate: time.Now(),
	}
	require.NoError(t, db.Create(batch).Error)

	assert.ErrorIs(t,
		service.DeleteGrocery(context.Background(), batch.ID.String(), uuid.New().String()),
		domain.ErrUnauthorizedAccess)
	assert.ErrorIs(t,
		service.DeleteGrocery(context.Background(), uuid.New().String(), owner.String()),
		domain.ErrGroceryNotFound)

	require.NoError(t, service.DeleteGrocery(context.Background(), batch.ID.String(), owner.String()))

	var count int64
	require.NoError(t, db.Model(&entities.GroceryBatch{}).Count(&count).Error)
	assert.Zero(t, count)
}

func TestGetGroceriesStatus(t *testing.T) {
	db := setupTestDB(t)
	service := newTestService(db)
	userID := uuid.New()

	expired := time.Now().AddDate(0, 0, -1)
	warning := time.Now().AddDate(0, 0, 2)
	safe := time.Now().AddDate(0, 0, 30)

	for name, expiry := range map[string]*time.Time{
		"Old Milk":   &expired,
		"Yogurt":     &warning,
		"Rice":       &safe,
		"Dry Pasta":  nil,
	} {
		require.NoError(t, db.Create(&entities.GroceryBatch{
			ID: uuid.New(), UserID: userID, Name: name, Quantity: 1, Unit: "pcs",
			PurchaseDate: time.Now(), ExpiryDate: expiry,
		}).Error)
	}

	groceries, err := service.GetGroceries(context.Background(), userID.String())
	require.NoError(t, err)
	require.Len(t, groceries, 4)

	statuses := make(map[string]string)
	for _, g := range groceries {
		statuses[g.Name] = g.Status
	}
	assert.Equal(t, "Expired", statuses["Old Milk"])
	assert.Equal(t, "Warning", statuses["Yogurt"])
	assert.Equal(t, "Safe", statuses["Rice"])
	assert.Equal(t, "Safe", statuses["Dry Pasta"])
}

func TestGetUpcomingExpiries(t *testing.T) {
	db := setupTestDB(t)
	service := newTestService(db)
	userID := uuid.New()

	soon := time.Now().AddDate(0, 0, 2)
	later := time.Now().AddDate(0, 0, 20)
	past := time.Now().AddDate(0, 0, -1)

	for name, expiry := range map[string]*time.Time{
		"Yogurt": &soon,
		"Rice":   &later,
		"Milk":   &past,
	} {
		require.NoError(t, db.Create(&entities.GroceryBatch{
			ID: uuid.New(), UserID: userID, Name: name, Quantity: 1, Unit: "pcs",
			PurchaseDate: time.Now(), ExpiryDate: expiry,
		}).Error)
	}

	expiring, err := service.GetUpcomingExpiries(context.Background(), userID.String(), 3)
	require.NoError(t, err)

	require.Len(t, expiring, 1)
	assert.Equal(t, "Yogurt", expiring[0].Name)
}

func TestGetBillScanOwnership(t *testing.T) {
	db := setupTestDB(t)
	service := newTestService(db)

	owner := uuid.New()
	scan := &entities.BillScan{
		ID: uuid.New(), UserID: owner, ImageURL: "https://bucket.test/bills/x", Status: "Pending",
	}
	require.NoError(t, db.Create(scan).Error)

	_, err := service.GetBillScan(context.Background(), scan.ID.String(), uuid.New().String())
	assert.ErrorIs(t, err, domain.ErrUnauthorizedAccess)

	res, err := service.GetBillScan(context.Background(), scan.ID.String(), owner.String())
	require.NoError(t, err)
	assert.Equal(t, "Pending", res.Status)
	assert.Empty(t, res.Items)
}
