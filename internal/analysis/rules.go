// Package analysis evaluates a product's ingredients and nutrition facts
// against a user's health profile.
package analysis

import (
	"fmt"
	"strings"

	"github.com/pageza/healthscan/backend/internal/types"
)

// Profile labels with built-in rules.
const (
	ConditionDiabetes        = "Diabetes"
	ConditionHypertension    = "Hypertension"
	ConditionHighCholesterol = "High Cholesterol"

	RestrictionVegan      = "Vegan"
	RestrictionGlutenFree = "Gluten-Free"
)

// allergySynonyms maps an allergy label to an extra ingredient marker.
var allergySynonyms = map[string]string{
	"wheat": "flour",
	"milk":  "milk",
}

// nutrientLimit ties a health condition to a nutrient. Above warnAbove the
// rule engine emits a warning; above penalizeAbove the scorer deducts again.
type nutrientLimit struct {
	condition     string
	nutrient      string
	reason        string
	warnAbove     float64
	penalizeAbove float64
	value         func(n *types.NutritionFacts) float64
}

var conditionLimits = []nutrientLimit{
	{
		condition:     ConditionDiabetes,
		nutrient:      "Sugar",
		reason:        "High sugar content may affect blood glucose levels",
		warnAbove:     10,
		penalizeAbove: 15,
		value:         func(n *types.NutritionFacts) float64 { return n.Sugar },
	},
	{
		condition:     ConditionHypertension,
		nutrient:      "Sodium",
		reason:        "High sodium content may increase blood pressure",
		warnAbove:     150,
		penalizeAbove: 200,
		value:         func(n *types.NutritionFacts) float64 { return n.Sodium },
	},
	{
		condition:     ConditionHighCholesterol,
		nutrient:      "Saturated Fat",
		reason:        "High saturated fat may increase cholesterol levels",
		warnAbove:     3,
		penalizeAbove: 5,
		value:         func(n *types.NutritionFacts) float64 { return n.SaturatedFat },
	},
}

// restrictionRule flags every ingredient containing one of its markers.
type restrictionRule struct {
	restriction string
	markers     []string
	reason      string
	severity    types.Severity
}

var restrictionRules = []restrictionRule{
	{
		restriction: RestrictionVegan,
		markers:     []string{"egg", "milk", "butter", "honey"},
		reason:      "Contains animal products (not vegan)",
		severity:    types.SeverityLow,
	},
	{
		restriction: RestrictionGlutenFree,
		markers:     []string{"wheat", "flour", "barley", "rye"},
		reason:      "Contains gluten",
		severity:    types.SeverityMedium,
	},
}

// Evaluate returns every warning the profile raises against the product.
// A nil nutrition skips the health-condition rules.
func Evaluate(ingredients []string, nutrition *types.NutritionFacts, profile *types.UserProfile) []types.ProductWarning {
	var warnings []types.ProductWarning
	if profile == nil {
		return warnings
	}

	lowered := make([]string, len(ingredients))
	for i, ingredient := range ingredients {
		lowered[i] = strings.ToLower(ingredient)
	}

	warnings = append(warnings, checkAllergies(lowered, profile.Allergies)...)
	if nutrition != nil {
		warnings = append(warnings, checkConditions(nutrition, profile.HealthConditions)...)
	}
	warnings = append(warnings, checkRestrictions(ingredients, lowered, profile.DietaryRestrictions)...)

	return warnings
}

func checkAllergies(lowered []string, allergies []string) []types.ProductWarning {
	var warnings []types.ProductWarning
	for _, allergy := range allergies {
		label := strings.ToLower(allergy)
		synonym := allergySynonyms[label]

		found := false
		for _, ingredient := range lowered {
			if strings.Contains(ingredient, label) || (synonym != "" && strings.Contains(ingredient, synonym)) {
				found = true
				break
			}
		}
		if !found {
			continue
		}

		warnings = append(warnings, types.ProductWarning{
			Type:       types.WarningAllergy,
			Ingredient: allergy,
			Reason:     fmt.Sprintf("Contains %s which is in your allergy list", allergy),
			Severity:   types.SeverityHigh,
		})
	}
	return warnings
}

func checkConditions(nutrition *types.NutritionFacts, conditions []string) []types.ProductWarning {
	var warnings []types.ProductWarning
	for _, condition := range conditions {
		for _, limit := range conditionLimits {
			if limit.condition != condition || limit.value(nutrition) <= limit.warnAbove {
				continue
			}
			warnings = append(warnings, types.ProductWarning{
				Type:       types.WarningHealthCondition,
				Ingredient: limit.nutrient,
				Reason:     limit.reason,
				Severity:   types.SeverityMedium,
			})
		}
	}
	return warnings
}

func checkRestrictions(ingredients, lowered []string, restrictions []string) []types.ProductWarning {
	var warnings []types.ProductWarning
	for _, restriction := range restrictions {
		for _, rule := range restrictionRules {
			if rule.restriction != restriction {
				continue
			}
			for i, ingredient := range lowered {
				if !containsAny(ingredient, rule.markers) {
					continue
				}
				warnings = append(warnings, types.ProductWarning{
					Type:       types.WarningDietaryRestriction,
					Ingredient: ingredients[i],
					Reason:     rule.reason,
					Severity:   rule.severity,
				})
			}
		}
	}
	return warnings
}

func containsAny(s string, markers []string) bool {
	for _, m := range markers {
		if strings.Contains(s, m) {
			return true
		}
	}
	return false
}
