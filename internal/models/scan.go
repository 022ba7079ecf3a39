package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/pageza/healthscan/backend/internal/types"
)

// ScanRecord is one analyzed product scan.
type ScanRecord struct {
	ID                 uuid.UUID                                 `gorm:"type:varchar(36);primarykey" json:"id"`
	UserID             uuid.UUID                                 `gorm:"type:varchar(36);not null;index:idx_scan_user_time,priority:1" json:"user_id"`
	Name               string                                    `gorm:"not null" json:"name"`
	ImageKey           string                                    `gorm:"size:255" json:"-"`
	Ingredients        datatypes.JSONSlice[string]               `json:"ingredients"`
	Nutrition          datatypes.JSONType[*types.NutritionFacts] `json:"nutrition_facts"`
	RiskLevel          string                                    `gorm:"size:16;not null" json:"risk_level"`
	CompatibilityScore int                                       `gorm:"not null" json:"compatibility_score"`
	Warnings           datatypes.JSONSlice[types.ProductWarning] `json:"warnings"`
	Alternatives       datatypes.JSONSlice[string]               `json:"alternatives"`
	ScannedAt          time.Time                                 `gorm:"not null;index:idx_scan_user_time,priority:2" json:"scanned_at"`
	CreatedAt          time.Time                                 `json:"created_at"`
}

func (s *ScanRecord) BeforeCreate(tx *gorm.DB) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	return nil
}

// NewScanRecord captures an analyzed product for userID.
func NewScanRecord(userID uuid.UUID, imageKey string, p *types.ScannedProduct) *ScanRecord {
	id, err := uuid.Parse(p.ID)
	if err != nil {
		id = uuid.New()
	}
	return &ScanRecord{
		ID:                 id,
		UserID:             userID,
		Name:               p.Name,
		ImageKey:           imageKey,
		Ingredients:        datatypes.JSONSlice[string](p.Ingredients),
		Nutrition:          datatypes.NewJSONType(p.NutritionFacts),
		RiskLevel:          string(p.RiskLevel),
		CompatibilityScore: p.CompatibilityScore,
		Warnings:           datatypes.JSONSlice[types.ProductWarning](p.Warnings),
		Alternatives:       datatypes.JSONSlice[string](p.Alternatives),
		ScannedAt:          p.ScannedAt,
	}
}

// ToProduct converts the record back into the analyzed product. ImageURL is
// left empty; links are signed per request from ImageKey.
func (s *ScanRecord) ToProduct() *types.ScannedProduct {
	p := &types.ScannedProduct{
		ID:                 s.ID.String(),
		Name:               s.Name,
		Ingredients:        []string(s.Ingredients),
		NutritionFacts:     s.Nutrition.Data(),
		RiskLevel:          types.RiskLevel(s.RiskLevel),
		CompatibilityScore: s.CompatibilityScore,
		Warnings:           []types.ProductWarning(s.Warnings),
		Alternatives:       []string(s.Alternatives),
		ScannedAt:          s.ScannedAt,
	}
	if p.Ingredients == nil {
		p.Ingredients = []string{}
	}
	if p.Warnings == nil {
		p.Warnings = []types.ProductWarning{}
	}
	if p.Alternatives == nil {
		p.Alternatives = []string{}
	}
	return p
}
