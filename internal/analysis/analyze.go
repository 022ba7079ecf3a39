package analysis

import (
	"time"

	"github.com/pageza/healthscan/backend/internal/types"
)

// Analyze runs the full pipeline over an extracted product and returns the
// scanned product as shown to the user.
func Analyze(id string, ext types.ProductExtraction, profile *types.UserProfile, imageURL string, scannedAt time.Time) *types.ScannedProduct {
	warnings := Evaluate(ext.Ingredients, ext.Nutrition, profile)
	score := Score(warnings, ext.Nutrition, profile)

	ingredients := ext.Ingredients
	if ingredients == nil {
		ingredients = []string{}
	}
	if warnings == nil {
		warnings = []types.ProductWarning{}
	}

	return &types.ScannedProduct{
		ID:                 id,
		Name:               ext.Name,
		ImageURL:           imageURL,
		Ingredients:        ingredients,
		NutritionFacts:     ext.Nutrition,
		RiskLevel:          Risk(warnings, score),
		CompatibilityScore: score,
		Warnings:           warnings,
		Alternatives:       Suggest(warnings, profile),
		ScannedAt:          scannedAt,
	}
}
