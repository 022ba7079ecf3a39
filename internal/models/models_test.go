package models

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/pageza/healthscan/backend/internal/types"
)

func openDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	require.NoError(t, db.AutoMigrate(&User{}, &HealthProfile{}, &ScanRecord{}, &UnlockedAchievement{}))
	return db
}

func TestScanRecordRoundTrip(t *testing.T) {
	db := openDB(t)
	userID := uuid.New()
	scannedAt := time.Date(2025, 3, 14, 9, 30, 0, 0, time.UTC)

	product := &types.ScannedProduct{
		ID:          uuid.NewString(),
		Name:        "Chocolate Chip Cookies",
		Ingredients: []string{"Wheat flour", "Sugar"},
		NutritionFacts: &types.NutritionFacts{
			Calories: 150, Sugar: 12, Sodium: 200, ServingSize: "2 cookies (30g)",
		},
		RiskLevel:          types.RiskMedium,
		CompatibilityScore: 55,
		Warnings: []types.ProductWarning{
			{Type: types.WarningHealthCondition, Ingredient: "Sugar", Reason: "High sugar", Severity: types.SeverityHigh},
		},
		Alternatives: []string{"Sugar-free alternatives"},
		ScannedAt:    scannedAt,
	}

	require.NoError(t, db.Create(NewScanRecord(userID, "scans/x.jpg", product)).Error)

	var got ScanRecord
	require.NoError(t, db.First(&got, "id = ?", product.ID).Error)
	back := got.ToProduct()

	assert.Equal(t, product.ID, back.ID)
	assert.Equal(t, product.Ingredients, back.Ingredients)
	assert.Equal(t, product.NutritionFacts, back.NutritionFacts)
	assert.Equal(t, product.Warnings, back.Warnings)
	assert.Equal(t, product.Alternatives, back.Alternatives)
	assert.Equal(t, product.RiskLevel, back.RiskLevel)
	assert.True(t, scannedAt.Equal(back.ScannedAt))
	assert.Equal(t, "scans/x.jpg", got.ImageKey)
}

func TestScanRecordWithoutNutrition(t *testing.T) {
	db := openDB(t)
	rec := NewScanRecord(uuid.New(), "", &types.ScannedProduct{ID: "not-a-uuid", Name: "Apple", ScannedAt: time.Now()})
	require.NoError(t, db.Create(rec).Error)

	var got ScanRecord
	require.NoError(t, db.First(&got, "id = ?", rec.ID).Error)
	back := got.ToProduct()
	assert.Nil(t, back.NutritionFacts)
	assert.Equal(t, []string{}, back.Ingredients)
	assert.Equal(t, []types.ProductWarning{}, back.Warnings)
}

func TestHealthProfileToProfile(t *testing.T) {
	db := openDB(t)
	rec := HealthProfile{
		UserID:           uuid.New(),
		Weight:           70,
		WeightUnit:       "kg",
		HealthConditions: []string{"Diabetes"},
		Allergies:        []string{"Milk"},
	}
	require.NoError(t, db.Create(&rec).Error)
	assert.NotEqual(t, uuid.Nil, rec.ID)

	var got HealthProfile
	require.NoError(t, db.First(&got, "user_id = ?", rec.UserID).Error)
	p := got.ToProfile()
	assert.Equal(t, types.WeightUnitKilograms, p.WeightUnit)
	assert.Equal(t, []string{"Diabetes"}, p.HealthConditions)
	assert.Equal(t, []string{"Milk"}, p.Allergies)
	assert.Equal(t, []string{}, p.DietaryRestrictions)
}

func TestUnlockedAchievementUnique(t *testing.T) {
	db := openDB(t)
	userID := uuid.New()
	now := time.Now()
	require.NoError(t, db.Create(&UnlockedAchievement{UserID: userID, AchievementID: "first-scan", UnlockedAt: now}).Error)
	assert.Error(t, db.Create(&UnlockedAchievement{UserID: userID, AchievementID: "first-scan", UnlockedAt: now}).Error)
	assert.NoError(t, db.Create(&UnlockedAchievement{UserID: uuid.New(), AchievementID: "first-scan", UnlockedAt: now}).Error)
}
