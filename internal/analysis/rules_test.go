package analysis

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pageza/healthscan/backend/internal/types"
)

var cookieIngredients = []string{
	"Wheat flour", "Sugar", "Palm oil", "Eggs", "Milk powder",
	"Salt", "Baking powder", "Vanilla flavoring", "Soy lecithin",
}

func cookieNutrition() *types.NutritionFacts {
	return &types.NutritionFacts{
		Calories:           150,
		TotalFat:           8,
		SaturatedFat:       4,
		Cholesterol:        25,
		Sodium:             200,
		TotalCarbohydrates: 18,
		Sugar:              12,
		Protein:            3,
		ServingSize:        "2 cookies (30g)",
	}
}

type warningKey struct {
	Type       types.WarningType
	Ingredient string
}

func keys(warnings []types.ProductWarning) map[warningKey]types.Severity {
	out := make(map[warningKey]types.Severity, len(warnings))
	for _, w := range warnings {
		out[warningKey{w.Type, w.Ingredient}] = w.Severity
	}
	return out
}

func TestEvaluateEmptyProfile(t *testing.T) {
	profile := &types.UserProfile{}
	warnings := Evaluate(cookieIngredients, cookieNutrition(), profile)
	assert.Empty(t, warnings)
	assert.Equal(t, 100, Score(warnings, cookieNutrition(), profile))
}

func TestEvaluateMilkAllergy(t *testing.T) {
	profile := &types.UserProfile{Allergies: []string{"Milk"}}
	warnings := Evaluate([]string{"Oats", "Milk powder"}, nil, profile)

	require.Len(t, warnings, 1)
	assert.Equal(t, types.WarningAllergy, warnings[0].Type)
	assert.Equal(t, types.SeverityHigh, warnings[0].Severity)
	assert.Equal(t, "Milk", warnings[0].Ingredient)
	assert.LessOrEqual(t, Score(warnings, nil, profile), 70)
}

func TestEvaluateAllergySynonymAndCase(t *testing.T) {
	profile := &types.UserProfile{Allergies: []string{"Wheat", "peanuts", "Sesame"}}
	warnings := Evaluate([]string{"Enriched FLOUR", "Roasted Peanuts"}, nil, profile)

	got := keys(warnings)
	assert.Len(t, got, 2)
	assert.Contains(t, got, warningKey{types.WarningAllergy, "Wheat"})
	assert.Contains(t, got, warningKey{types.WarningAllergy, "peanuts"})
}

func TestEvaluateDiabetesSugar(t *testing.T) {
	profile := &types.UserProfile{HealthConditions: []string{"Diabetes"}}
	nutrition := &types.NutritionFacts{Sugar: 12}
	warnings := Evaluate(nil, nutrition, profile)

	require.Len(t, warnings, 1)
	assert.Equal(t, types.WarningHealthCondition, warnings[0].Type)
	assert.Equal(t, "Sugar", warnings[0].Ingredient)
	assert.Equal(t, types.SeverityMedium, warnings[0].Severity)

	// 12g is under the scorer's 15g limit, so only the warning counts.
	assert.Equal(t, 85, Score(warnings, nutrition, profile))
}

func TestEvaluateConditionThresholdsAreStrict(t *testing.T) {
	profile := &types.UserProfile{HealthConditions: []string{"Diabetes", "Hypertension", "High Cholesterol"}}
	nutrition := &types.NutritionFacts{Sugar: 10, Sodium: 150, SaturatedFat: 3}
	assert.Empty(t, Evaluate(nil, nutrition, profile))
}

func TestEvaluateConditionsSkippedWithoutNutrition(t *testing.T) {
	profile := &types.UserProfile{HealthConditions: []string{"Diabetes", "Hypertension"}}
	assert.Empty(t, Evaluate(cookieIngredients, nil, profile))
}

func TestEvaluateVeganPerIngredient(t *testing.T) {
	profile := &types.UserProfile{DietaryRestrictions: []string{"Vegan"}}
	warnings := Evaluate([]string{"Eggs", "Milk powder"}, nil, profile)

	require.Len(t, warnings, 2)
	for _, w := range warnings {
		assert.Equal(t, types.WarningDietaryRestriction, w.Type)
		assert.Equal(t, types.SeverityLow, w.Severity)
	}
	got := keys(warnings)
	assert.Contains(t, got, warningKey{types.WarningDietaryRestriction, "Eggs"})
	assert.Contains(t, got, warningKey{types.WarningDietaryRestriction, "Milk powder"})
}

func TestEvaluateGlutenFree(t *testing.T) {
	profile := &types.UserProfile{DietaryRestrictions: []string{"Gluten-Free"}}
	warnings := Evaluate([]string{"Rye bread", "Barley malt", "Rice"}, nil, profile)

	require.Len(t, warnings, 2)
	for _, w := range warnings {
		assert.Equal(t, types.SeverityMedium, w.Severity)
	}
}

func TestEvaluateFullProfileAgainstCookies(t *testing.T) {
	profile := &types.UserProfile{
		Allergies:           []string{"Wheat", "Milk"},
		HealthConditions:    []string{"Diabetes", "Hypertension", "High Cholesterol"},
		DietaryRestrictions: []string{"Vegan", "Gluten-Free"},
	}
	warnings := Evaluate(cookieIngredients, cookieNutrition(), profile)

	assert.Equal(t, map[warningKey]types.Severity{
		{types.WarningAllergy, "Wheat"}:                  types.SeverityHigh,
		{types.WarningAllergy, "Milk"}:                   types.SeverityHigh,
		{types.WarningHealthCondition, "Sugar"}:          types.SeverityMedium,
		{types.WarningHealthCondition, "Sodium"}:         types.SeverityMedium,
		{types.WarningHealthCondition, "Saturated Fat"}:  types.SeverityMedium,
		{types.WarningDietaryRestriction, "Eggs"}:        types.SeverityLow,
		{types.WarningDietaryRestriction, "Milk powder"}: types.SeverityLow,
		{types.WarningDietaryRestriction, "Wheat flour"}: types.SeverityMedium,
	}, keys(warnings))
}

func TestEvaluateNilProfile(t *testing.T) {
	assert.Empty(t, Evaluate(cookieIngredients, cookieNutrition(), nil))
}
