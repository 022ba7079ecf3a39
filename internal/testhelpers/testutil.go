package testhelpers

import (
	"testing"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/pageza/healthscan/backend/internal/models"
	"github.com/pageza/healthscan/backend/internal/types"
)

// TestPassword is the plain-text password of users made by CreateTestUser.
const TestPassword = "testpassword123"

// PNGHeader is the smallest payload sniffed as image/png.
var PNGHeader = []byte("\x89PNG\r\n\x1a\n\x00\x00\x00\rIHDR")

// CreateTestUser inserts a user with TestPassword.
func CreateTestUser(t *testing.T, db *gorm.DB, name, email string) *models.User {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(TestPassword), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("failed to hash password: %v", err)
	}
	user := &models.User{Name: name, Email: email, PasswordHash: string(hash)}
	if err := db.Create(user).Error; err != nil {
		t.Fatalf("failed to create test user: %v", err)
	}
	return user
}

// CreateTestProfile stores a health profile for user.
func CreateTestProfile(t *testing.T, db *gorm.DB, user *models.User, p *types.UserProfile) *models.HealthProfile {
	t.Helper()
	rec := &models.HealthProfile{
		UserID:              user.ID,
		Weight:              p.Weight,
		WeightUnit:          string(p.WeightUnit),
		HealthConditions:    p.HealthConditions,
		Allergies:           p.Allergies,
		DietaryRestrictions: p.DietaryRestrictions,
	}
	if rec.WeightUnit == "" {
		rec.WeightUnit = string(types.WeightUnitKilograms)
	}
	if err := db.Create(rec).Error; err != nil {
		t.Fatalf("failed to create test profile: %v", err)
	}
	return rec
}
