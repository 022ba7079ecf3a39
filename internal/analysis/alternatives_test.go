package analysis

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/pageza/healthscan/backend/internal/types"
)

func TestSuggestFallback(t *testing.T) {
	got := Suggest(nil, &types.UserProfile{})
	assert.Equal(t, []string{
		"Organic or whole grain alternatives",
		"Fresh fruits for natural sweetness",
	}, got)
}

func TestSuggestPatternsInOrder(t *testing.T) {
	warnings := []types.ProductWarning{
		{Type: types.WarningDietaryRestriction, Ingredient: "Milk powder", Severity: types.SeverityLow},
		{Type: types.WarningAllergy, Ingredient: "Wheat", Severity: types.SeverityHigh},
		{Type: types.WarningHealthCondition, Ingredient: "Sugar", Severity: types.SeverityMedium},
	}
	profile := &types.UserProfile{DietaryRestrictions: []string{"Vegan"}}

	assert.Equal(t, []string{
		"Sugar-free or low-sugar alternatives",
		"Gluten-free cookies or crackers",
		"Dairy-free or plant-based alternatives",
		"Certified vegan cookies and snacks",
	}, Suggest(warnings, profile))
}

func TestSuggestVeganWithoutWarnings(t *testing.T) {
	profile := &types.UserProfile{DietaryRestrictions: []string{"Vegan"}}
	assert.Equal(t, []string{"Certified vegan cookies and snacks"}, Suggest(nil, profile))
}

func TestSuggestWheatOnlyForAllergy(t *testing.T) {
	warnings := []types.ProductWarning{
		{Type: types.WarningDietaryRestriction, Ingredient: "Wheat", Severity: types.SeverityMedium},
	}
	assert.Equal(t, fallbackAlternatives, Suggest(warnings, &types.UserProfile{}))
}
