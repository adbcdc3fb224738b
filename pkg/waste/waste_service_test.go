package waste

import (
	"context"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
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
		&entities.WeeklyWaste{},
	))
	return db
}

func seedUser(t *testing.T, db *gorm.DB) uuid.UUID {
	t.Helper()

	user := &entities.User{
		ID:       uuid.New(),
		Username: "tester",
		Email:    uuid.New().String() + "@example.com",
		Password: "hashed",
		Role:     "user",
	}
	require.NoError(t, db.Create(user).Error)
	return user.ID
}

func TestGetWasteSummary(t *testing.T) {
	db := setupTestDB(t)
	service := NewWasteService(NewWasteRepository(db))
	userID := seedUser(t, db)

	expired := time.Now().AddDate(0, 0, -2)
	fresh := time.Now().AddDate(0, 0, 10)
	require.NoError(t, db.Create(&entities.GroceryBatch{
		ID: uuid.New(), UserID: userID, Name: "Milk", Quantity: 1, Unit: "L",
		Price: 3.5, PurchaseDate: time.Now().AddDate(0, 0, -9), ExpiryDate: &expired,
	}).Error)
	require.NoError(t, db.Create(&entities.GroceryBatch{
		ID: uuid.New(), UserID: userID, Name: "Rice", Quantity: 1, Unit: "kg",
		Price: 10, PurchaseDate: time.Now(), ExpiryDate: &fresh,
	}).Error)
	require.NoError(t, db.Create(&entities.CookingEvent{
		ID: uuid.New(), UserID: userID, RecipeID: uuid.New(), Pax: 2, PortionWasted: 1.5,
	}).Error)
	require.NoError(t, db.Create(&entities.CookingEvent{
		ID: uuid.New(), UserID: userID, RecipeID: uuid.New(), Pax: 1, PortionWasted: 0.5,
	}).Error)

	summary, err := service.GetWasteSummary(context.Background(), userID.String())
	require.NoError(t, err)

	assert.InDelta(t, 3.5, summary.ExpiredWaste, 0.001, "only the expired batch counts")
	assert.InDelta(t, 2.0, summary.PortionWaste, 0.001)
}

func TestGetWasteSummaryEmpty(t *testing.T) {
	db := setupTestDB(t)
	service := NewWasteService(NewWasteRepository(db))
	userID := seedUser(t, db)

	summary, err := service.GetWasteSummary(context.Background(), userID.String())
	require.NoError(t, err)
	assert.Zero(t, summary.ExpiredWaste)
	assert.Zero(t, summary.PortionWaste)
}

func TestStoreWeeklyWasteSnapshotsEveryUser(t *testing.T) {
	db := setupTestDB(t)
	service := NewWasteService(NewWasteRepository(db))

	first := seedUser(t, db)
	second := seedUser(t, db)

	expired := time.Now().AddDate(0, 0, -1)
	require.NoError(t, db.Create(&entities.GroceryBatch{
		ID: uuid.New(), UserID: first, Name: "Milk", Quantity: 1, Unit: "L",
		Price: 4, PurchaseDate: time.Now().AddDate(0, 0, -8), ExpiryDate: &expired,
	}).Error)

	require.NoError(t, service.StoreWeeklyWaste(context.Background()))

	var rows []entities.WeeklyWaste
	require.NoError(t, db.Order("expired_waste desc").Find(&rows).Error)
	require.Len(t, rows, 2)

	assert.Equal(t, first, rows[0].UserID)
	assert.InDelta(t, 4, rows[0].ExpiredWaste, 0.001)
	assert.Equal(t, second, rows[1].UserID)
	assert.Zero(t, rows[1].ExpiredWaste)
	assert.Equal(t, time.Sunday, rows[0].WeekStart.Weekday())
}

func TestStartOfWeek(t *testing.T) {
	// UTC+12: early local hours fall on the previous UTC day, which a naive
	// epoch truncation would land on.
	auckland := time.FixedZone("NZST", 12*60*60)

	tests := []struct {
		name string
		in   time.Time
		want time.Time
	}{
		{
			"midweek",
			time.Date(2026, 3, 4, 15, 30, 0, 0, time.UTC), // Wednesday
			time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC),
		},
		{
			"sunday stays put",
			time.Date(2026, 3, 1, 23, 59, 0, 0, time.UTC),
			time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC),
		},
		{
			"non-UTC zone truncates to local midnight",
			time.Date(2026, 3, 2, 1, 0, 0, 0, auckland), // Monday, 13:00 Sunday UTC
			time.Date(2026, 3, 1, 0, 0, 0, 0, auckland),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := startOfWeek(tt.in)
			assert.True(t, got.Equal(tt.want), "got %v, want %v", got, tt.want)
			assert.Equal(t, time.Sunday, got.Weekday())
			hour, min, sec := got.Clock()
			assert.Zero(t, hour+min+sec)
		})
	}
}

func TestGetWeeklyWasteReturnsRecentFirst(t *testing.T) {
	db := setupTestDB(t)
	service := NewWasteService(NewWasteRepository(db))
	userID := seedUser(t, db)

	for week := 0; week < 9; week++ {
		require.NoError(t, db.Create(&entities.WeeklyWaste{
			ID:           uuid.New(),
			UserID:       userID,
			WeekStart:    time.Now().AddDate(0, 0, -7*week),
			ExpiredWaste: float64(week),
		}).Error)
	}

	rows, err := service.GetWeeklyWaste(context.Background(), userID.String())
	require.NoError(t, err)

	require.Len(t, rows, 7, "trend window is capped")
	assert.Zero(t, rows[0].ExpiredWaste, "most recent week comes first")
	for i := 1; i < len(rows); i++ {
		assert.True(t, rows[i].WeekStart.Before(rows[i-1].WeekStart))
	}
}
