package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/pageza/healthscan/backend/internal/types"
)

// HealthProfile is the persisted form of types.UserProfile, one per user.
type HealthProfile struct {
	ID                  uuid.UUID                   `gorm:"type:varchar(36);primarykey" json:"id"`
	UserID              uuid.UUID                   `gorm:"type:varchar(36);not null;uniqueIndex" json:"user_id"`
	Weight              float64                     `gorm:"not null;default:0" json:"weight"`
	WeightUnit          string                      `gorm:"size:8;not null;default:'kg'" json:"weight_unit"`
	HealthConditions    datatypes.JSONSlice[string] `json:"health_conditions"`
	Allergies           datatypes.JSONSlice[string] `json:"allergies"`
	DietaryRestrictions datatypes.JSONSlice[string] `json:"dietary_restrictions"`
	CreatedAt           time.Time                   `json:"created_at"`
	UpdatedAt           time.Time                   `json:"updated_at"`
}

func (p *HealthProfile) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}

// ToProfile converts the record into the value the analysis engine consumes.
func (p *HealthProfile) ToProfile() *types.UserProfile {
	return &types.UserProfile{
		ID:                  p.ID,
		Weight:              p.Weight,
		WeightUnit:          types.WeightUnit(p.WeightUnit),
		HealthConditions:    nonNil(p.HealthConditions),
		Allergies:           nonNil(p.Allergies),
		DietaryRestrictions: nonNil(p.DietaryRestrictions),
		CreatedAt:           p.CreatedAt,
		UpdatedAt:           p.UpdatedAt,
	}
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return append([]string(nil), s...)
}
