package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/pageza/healthscan/backend/internal/models"
	"github.com/pageza/healthscan/backend/internal/types"
)

const maxLabelLength = 100

// ProfileService handles health profile operations
type ProfileService struct {
	db *gorm.DB
}

// Ensure ProfileService implements IProfileService
var _ IProfileService = (*ProfileService)(nil)

// NewProfileService creates a new ProfileService instance
func NewProfileService(db *gorm.DB) *ProfileService {
	return &ProfileService{
		db: db,
	}
}

// GetProfile retrieves a user's health profile. A user who has not finished
// onboarding gets ErrProfileRequired.
func (s *ProfileService) GetProfile(ctx context.Context, userID uuid.UUID) (*types.UserProfile, error) {
	var profile models.HealthProfile
	if err := s.db.WithContext(ctx).Where("user_id = ?", userID).First(&profile).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProfileRequired
		}
		return nil, fmt.Errorf("failed to load profile: %w", err)
	}
	return profile.ToProfile(), nil
}

// SaveProfile creates the profile on first call and replaces it afterwards.
func (s *ProfileService) SaveProfile(ctx context.Context, userID uuid.UUID, req *types.ProfileRequest) (*types.UserProfile, error) {
	if err := ValidateProfileRequest(req); err != nil {
		return nil, err
	}

	var profile models.HealthProfile
	err := s.db.WithContext(ctx).Where("user_id = ?", userID).First(&profile).Error
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		profile = models.HealthProfile{UserID: userID}
	case err != nil:
		return nil, fmt.Errorf("failed to load profile: %w", err)
	}

	profile.Weight = req.Weight
	profile.WeightUnit = string(req.WeightUnit)
	profile.HealthConditions = cleanLabels(req.HealthConditions, types.HealthConditions)
	profile.Allergies = cleanLabels(req.Allergies, types.CommonAllergies)
	profile.DietaryRestrictions = cleanLabels(req.DietaryRestrictions, types.DietaryRestrictions)

	if err := s.db.WithContext(ctx).Save(&profile).Error; err != nil {
		return nil, fmt.Errorf("failed to save profile: %w", err)
	}

	log.Printf("[ProfileService] Saved profile for user %s", userID)
	return profile.ToProfile(), nil
}

// ValidateProfileRequest checks the fields onboarding and settings submit.
func ValidateProfileRequest(req *types.ProfileRequest) error {
	if req == nil {
		return fmt.Errorf("%w: empty request", ErrInvalidProfile)
	}
	if req.Weight < 0 {
		return fmt.Errorf("%w: weight must not be negative", ErrInvalidProfile)
	}
	if !req.WeightUnit.Valid() {
		return fmt.Errorf("%w: weight unit must be kg or lbs", ErrInvalidProfile)
	}
	for _, list := range [][]string{req.HealthConditions, req.Allergies, req.DietaryRestrictions} {
		for _, label := range list {
			if runes := []rune(label); len(runes) > maxLabelLength {
				return fmt.Errorf("%w: label %q is too long", ErrInvalidProfile, string(runes[:20])+"...")
			}
		}
	}
	return nil
}

// cleanLabels trims, drops blanks and removes case-insensitive duplicates.
// Labels found in catalog take the catalog spelling; others keep the first
// spelling.
func cleanLabels(labels, catalog []string) []string {
	out := make([]string, 0, len(labels))
	seen := make(map[string]bool, len(labels))
	for _, l := range labels {
		l = strings.TrimSpace(l)
		key := strings.ToLower(l)
		if l == "" || seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, canonicalLabel(l, catalog))
	}
	return out
}

func canonicalLabel(label string, catalog []string) string {
	for _, known := range catalog {
		if strings.EqualFold(label, known) {
			return known
		}
	}
	return label
}
