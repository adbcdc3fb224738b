package cooking

import (
	"context"
	"errors"
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

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(
		&entities.User{},
		&entities.Recipe{},
		&entities.GroceryBatch{},
		&entities.BillScan{},
		&entities.CookingEvent{},
	))
	return db
}

func seedBatch(t *testing.T, db *gorm.DB, userID uuid.UUID, name string, quantity float64, unit string, purchaseDate time.Time) uuid.UUID {
	t.Helper()

	batch := &entities.GroceryBatch{
		ID:           uuid.New(),
		UserID:       userID,
		Name:         name,
		Quantity:     quantity,
		Unit:         unit,
		PurchaseDate: purchaseDate,
	}
	require.NoError(t, db.Create(batch).Error)
	return batch.ID
}

func getBatch(t *testing.T, db *gorm.DB, id uuid.UUID) (entities.GroceryBatch, bool) {
	t.Helper()

	var batch entities.GroceryBatch
	err := db.Where("id = ?", id).First(&batch).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return entities.GroceryBatch{}, false
	}
	require.NoError(t, err)
	return batch, true
}

func cookRequest(recipeID uuid.UUID, pax int, ingredients ...domain.RecipeIngredient) domain.CookRequest {
	return domain.CookRequest{
		RecipeID:        recipeID.String(),
		Pax:             pax,
		IngredientsUsed: ingredients,
	}
}

func TestCookConsumesOldestBatchFirst(t *testing.T) {
	db := setupTestDB(t)
	service := NewCookingService(NewCookingRepository(db))

	userID := uuid.New()
	day1 := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	day2 := day1.AddDate(0, 0, 5)
	day3 := day1.AddDate(0, 0, 10)

	oldest := seedBatch(t, db, userID, "Rice", 1, "kg", day1)
	middle := seedBatch(t, db, userID, "Rice", 1, "kg", day2)
	newest := seedBatch(t, db, userID, "Rice", 1, "kg", day3)

	res, err := service.Cook(context.Background(), cookRequest(uuid.New(), 2, domain.RecipeIngredient{
		IngredientName: "Rice", Quantity: 0.75, Unit: "kg",
	}), userID.String())
	require.NoError(t, err)
	assert.Empty(t, res.Shortfalls)

	_, found := getBatch(t, db, oldest)
	assert.False(t, found, "oldest batch should be fully consumed")

	batch, found := getBatch(t, db, middle)
	require.True(t, found)
	assert.InDelta(t, 500, batch.Quantity, 0.001)
	assert.Equal(t, "g", batch.Unit)

	batch, found = getBatch(t, db, newest)
	require.True(t, found)
	assert.InDelta(t, 1, batch.Quantity, 0.001)
	assert.Equal(t, "kg", batch.Unit)
}

func TestCookPartialDeductionLeavesGrams(t *testing.T) {
	db := setupTestDB(t)
	service := NewCookingService(NewCookingRepository(db))

	userID := uuid.New()
	id := seedBatch(t, db, userID, "Flour", 1, "kg", time.Now())

	res, err := service.Cook(context.Background(), cookRequest(uuid.New(), 1, domain.RecipeIngredient{
		IngredientName: "Flour", Quantity: 400, Unit: "g",
	}), userID.String())
	require.NoError(t, err)
	assert.Empty(t, res.Shortfalls)

	batch, found := getBatch(t, db, id)
	require.True(t, found)
	assert.InDelta(t, 600, batch.Quantity, 0.001)
	assert.Equal(t, "g", batch.Unit)
}

func TestCookRemainderRollsBackToKilograms(t *testing.T) {
	db := setupTestDB(t)
	service := NewCookingService(NewCookingRepository(db))

	userID := uuid.New()
	id := seedBatch(t, db, userID, "Sugar", 2, "kg", time.Now())

	_, err := service.Cook(context.Background(), cookRequest(uuid.New(), 1, domain.RecipeIngredient{
		IngredientName: "Sugar", Quantity: 500, Unit: "g",
	}), userID.String())
	require.NoError(t, err)

	batch, found := getBatch(t, db, id)
	require.True(t, found)
	assert.InDelta(t, 1.5, batch.Quantity, 0.001)
	assert.Equal(t, "kg", batch.Unit)
}

func TestCookExactDepletionDeletesBatch(t *testing.T) {
	db := setupTestDB(t)
	service := NewCookingService(NewCookingRepository(db))

	userID := uuid.New()
	id := seedBatch(t, db, userID, "Milk", 500, "ml", time.Now())

	res, err := service.Cook(context.Background(), cookRequest(uuid.New(), 1, domain.RecipeIngredient{
		IngredientName: "Milk", Quantity: 0.5, Unit: "L",
	}), userID.String())
	require.NoError(t, err)
	assert.Empty(t, res.Shortfalls)

	_, found := getBatch(t, db, id)
	assert.False(t, found)
}

func TestCookInsufficientStockReportsShortfall(t *testing.T) {
	db := setupTestDB(t)
	service := NewCookingService(NewCookingRepository(db))

	userID := uuid.New()
	id := seedBatch(t, db, userID, "Rice", 300, "g", time.Now())

	res, err := service.Cook(context.Background(), cookRequest(uuid.New(), 1, domain.RecipeIngredient{
		IngredientName: "Rice", Quantity: 1, Unit: "kg",
	}), userID.String())
	require.NoError(t, err)

	require.Len(t, res.Shortfalls, 1)
	assert.Equal(t, "Rice", res.Shortfalls[0].IngredientName)
	assert.InDelta(t, 700, res.Shortfalls[0].MissingAmount, 0.001)
	assert.Equal(t, "g", res.Shortfalls[0].Unit)

	_, found := getBatch(t, db, id)
	assert.False(t, found, "what stock existed should still be consumed")

	var count int64
	require.NoError(t, db.Model(&entities.CookingEvent{}).Count(&count).Error)
	assert.EqualValues(t, 1, count, "cooking event is recorded despite the shortfall")
}

func TestCookMissingIngredientDoesNotFail(t *testing.T) {
	db := setupTestDB(t)
	service := NewCookingService(NewCookingRepository(db))

	userID := uuid.New()
	riceID := seedBatch(t, db, userID, "Rice", 1, "kg", time.Now())

	res, err := service.Cook(context.Background(), cookRequest(uuid.New(), 1,
		domain.RecipeIngredient{IngredientName: "Rice", Quantity: 200, Unit: "g"},
		domain.RecipeIngredient{IngredientName: "Saffron", Quantity: 2, Unit: "g"},
	), userID.String())
	require.NoError(t, err)

	require.Len(t, res.Shortfalls, 1)
	assert.Equal(t, "Saffron", res.Shortfalls[0].IngredientName)
	assert.InDelta(t, 2, res.Shortfalls[0].MissingAmount, 0.001)

	batch, found := getBatch(t, db, riceID)
	require.True(t, found)
	assert.InDelta(t, 800, batch.Quantity, 0.001)
}

func TestCookMatchesNamesCaseInsensitively(t *testing.T) {
	db := setupTestDB(t)
	service := NewCookingService(NewCookingRepository(db))

	userID := uuid.New()
	id := seedBatch(t, db, userID, "  Chicken Breast ", 1, "kg", time.Now())

	res, err := service.Cook(context.Background(), cookRequest(uuid.New(), 1, domain.RecipeIngredient{
		IngredientName: "chicken breast", Quantity: 250, Unit: "g",
	}), userID.String())
	require.NoError(t, err)
	assert.Empty(t, res.Shortfalls)

	batch, found := getBatch(t, db, id)
	require.True(t, found)
	assert.InDelta(t, 750, batch.Quantity, 0.001)
}

func TestCookIgnoresOtherUsersStock(t *testing.T) {
	db := setupTestDB(t)
	service := NewCookingService(NewCookingRepository(db))

	owner := uuid.New()
	other := uuid.New()
	otherID := seedBatch(t, db, other, "Rice", 5, "kg", time.Now())

	res, err := service.Cook(context.Background(), cookRequest(uuid.New(), 1, domain.RecipeIngredient{
		IngredientName: "Rice", Quantity: 1, Unit: "kg",
	}), owner.String())
	require.NoError(t, err)
	require.Len(t, res.Shortfalls, 1)

	batch, found := getBatch(t, db, otherID)
	require.True(t, found)
	assert.InDelta(t, 5, batch.Quantity, 0.001)
}

func TestCookInvalidIDs(t *testing.T) {
	db := setupTestDB(t)
	service := NewCookingService(NewCookingRepository(db))

	_, err := service.Cook(context.Background(), cookRequest(uuid.New(), 1), "not-a-uuid")
	assert.ErrorIs(t, err, domain.ErrParseUUID)

	req := cookRequest(uuid.New(), 1)
	req.RecipeID = "not-a-uuid"
	_, err = service.Cook(context.Background(), req, uuid.New().String())
	assert.ErrorIs(t, err, domain.ErrParseUUID)
}

func TestRecordWaste(t *testing.T) {
	db := setupTestDB(t)
	service := NewCookingService(NewCookingRepository(db))

	userID := uuid.New()
	event := &entities.CookingEvent{
		ID:       uuid.New(),
		UserID:   userID,
		RecipeID: uuid.New(),
		Pax:      2,
	}
	require.NoError(t, db.Create(event).Error)

	require.NoError(t, service.RecordWaste(context.Background(), event.ID.String(), 1.5, userID.String()))

	var stored entities.CookingEvent
	require.NoError(t, db.Where("id = ?", event.ID).First(&stored).Error)
	assert.InDelta(t, 1.5, stored.PortionWasted, 0.001)
}

func TestRecordWasteUnknownEvent(t *testing.T) {
	db := setupTestDB(t)
	service := NewCookingService(NewCookingRepository(db))

	err := service.RecordWaste(context.Background(), uuid.New().String(), 1, uuid.New().String())
	assert.ErrorIs(t, err, domain.ErrCookingEventNotFound)
}

func TestRecordWasteOtherUsersEvent(t *testing.T) {
	db := setupTestDB(t)
	service := NewCookingService(NewCookingRepository(db))

	event := &entities.CookingEvent{
		ID:       uuid.New(),
		UserID:   uuid.New(),
		RecipeID: uuid.New(),
		Pax:      1,
	}
	require.NoError(t, db.Create(event).Error)

	err := service.RecordWaste(context.Background(), event.ID.String(), 1, uuid.New().String())
	assert.ErrorIs(t, err, domain.ErrCookingEventNotFound)
}
