package types

import (
	"time"

	"github.com/google/uuid"
)

// WeightUnit is the unit a profile weight is recorded in.
type WeightUnit string

const (
	WeightUnitKilograms WeightUnit = "kg"
	WeightUnitPounds    WeightUnit = "lbs"
)

// Valid reports whether u is a known unit.
func (u WeightUnit) Valid() bool {
	return u == WeightUnitKilograms || u == WeightUnitPounds
}

// RiskLevel is the coarse classification of a scanned product.
type RiskLevel string

const (
	RiskLow    RiskLevel = "low"
	RiskMedium RiskLevel = "medium"
	RiskHigh   RiskLevel = "high"
)

// Severity ranks a warning. high > medium > low.
type Severity string

const (
	SeverityLow    Severity = "low"
	SeverityMedium Severity = "medium"
	SeverityHigh   Severity = "high"
)

// WarningType identifies which part of the profile a warning conflicts with.
type WarningType string

const (
	WarningAllergy            WarningType = "allergy"
	WarningHealthCondition    WarningType = "health_condition"
	WarningDietaryRestriction WarningType = "dietary_restriction"
)

// UserProfile is the health profile a product is evaluated against.
type UserProfile struct {
	ID                  uuid.UUID  `json:"id"`
	Weight              float64    `json:"weight"`
	WeightUnit          WeightUnit `json:"weight_unit"`
	HealthConditions    []string   `json:"health_conditions"`
	Allergies           []string   `json:"allergies"`
	DietaryRestrictions []string   `json:"dietary_restrictions"`
	CreatedAt           time.Time  `json:"created_at"`
	UpdatedAt           time.Time  `json:"updated_at"`
}

// HasRestriction reports whether the profile lists the given dietary restriction.
func (p *UserProfile) HasRestriction(restriction string) bool {
	for _, r := range p.DietaryRestrictions {
		if r == restriction {
			return true
		}
	}
	return false
}

// NutritionFacts are per-serving values read off a product label.
type NutritionFacts struct {
	Calories           float64 `json:"calories"`
	TotalFat           float64 `json:"total_fat"`
	SaturatedFat       float64 `json:"saturated_fat"`
	Cholesterol        float64 `json:"cholesterol"`
	Sodium             float64 `json:"sodium"`
	TotalCarbohydrates float64 `json:"total_carbohydrates"`
	Sugar              float64 `json:"sugar"`
	Protein            float64 `json:"protein"`
	ServingSize        string  `json:"serving_size"`
}

// ProductWarning flags a conflict between a product and a profile.
type ProductWarning struct {
	Type       WarningType `json:"type"`
	Ingredient string      `json:"ingredient"`
	Reason     string      `json:"reason"`
	Severity   Severity    `json:"severity"`
}

// ProductExtraction is what an image analyzer reads off a product photo.
type ProductExtraction struct {
	Name        string          `json:"name"`
	Ingredients []string        `json:"ingredients"`
	Nutrition   *NutritionFacts `json:"nutrition_facts,omitempty"`
}

// ScannedProduct is a fully analyzed product.
type ScannedProduct struct {
	ID                 string           `json:"id"`
	Name               string           `json:"name"`
	ImageURL           string           `json:"image_url"`
	Ingredients        []string         `json:"ingredients"`
	NutritionFacts     *NutritionFacts  `json:"nutrition_facts"`
	RiskLevel          RiskLevel        `json:"risk_level"`
	CompatibilityScore int              `json:"compatibility_score"`
	Warnings           []ProductWarning `json:"warnings"`
	Alternatives       []string         `json:"alternatives"`
	ScannedAt          time.Time        `json:"scanned_at"`
}

// Catalog lists the labels the core knows how to reason about, as offered
// by onboarding and settings.
var (
	HealthConditions = []string{
		"Diabetes",
		"Hypertension",
		"Heart Disease",
		"High Cholesterol",
		"Kidney Disease",
		"Celiac Disease",
		"Lactose Intolerance",
		"GERD",
		"Irritable Bowel Syndrome",
	}

	CommonAllergies = []string{
		"Peanuts",
		"Tree Nuts",
		"Milk",
		"Eggs",
		"Wheat",
		"Soy",
		"Fish",
		"Shellfish",
		"Sesame",
	}

	DietaryRestrictions = []string{
		"Vegetarian",
		"Vegan",
		"Gluten-Free",
		"Dairy-Free",
		"Low-Sodium",
		"Low-Sugar",
		"Keto",
		"Paleo",
		"Halal",
		"Kosher",
	}
)
