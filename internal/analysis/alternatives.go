package analysis

import (
	"strings"

	"github.com/pageza/healthscan/backend/internal/types"
)

var fallbackAlternatives = []string{
	"Organic or whole grain alternatives",
	"Fresh fruits for natural sweetness",
}

// Suggest maps warning patterns to replacement ideas. Output follows the
// order of the checks below and is not de-duplicated.
func Suggest(warnings []types.ProductWarning, profile *types.UserProfile) []string {
	var alternatives []string

	if anyWarning(warnings, func(w types.ProductWarning) bool {
		return strings.Contains(strings.ToLower(w.Ingredient), "sugar")
	}) {
		alternatives = append(alternatives, "Sugar-free or low-sugar alternatives")
	}

	if anyWarning(warnings, func(w types.ProductWarning) bool {
		return w.Type == types.WarningAllergy && w.Ingredient == "Wheat"
	}) {
		alternatives = append(alternatives, "Gluten-free cookies or crackers")
	}

	if anyWarning(warnings, func(w types.ProductWarning) bool {
		return strings.Contains(strings.ToLower(w.Ingredient), "milk")
	}) {
		alternatives = append(alternatives, "Dairy-free or plant-based alternatives")
	}

	if profile != nil && profile.HasRestriction(RestrictionVegan) {
		alternatives = append(alternatives, "Certified vegan cookies and snacks")
	}

	if len(alternatives) == 0 {
		alternatives = append(alternatives, fallbackAlternatives...)
	}
	return alternatives
}

func anyWarning(warnings []types.ProductWarning, pred func(types.ProductWarning) bool) bool {
	for _, w := range warnings {
		if pred(w) {
			return true
		}
	}
	return false
}
