package analysis

import "github.com/pageza/healthscan/backend/internal/types"

const (
	maxScore = 100
	minScore = 0

	conditionPenalty = 10
)

var severityPenalty = map[types.Severity]int{
	types.SeverityHigh:   30,
	types.SeverityMedium: 15,
	types.SeverityLow:    5,
}

// Score reduces warnings and nutrition into a 0..100 compatibility score.
//
// Conditions whose nutrient exceeds the stricter penalty limit cost an extra
// 10 points on top of the warning the rule engine already raised for them.
func Score(warnings []types.ProductWarning, nutrition *types.NutritionFacts, profile *types.UserProfile) int {
	score := maxScore

	for _, w := range warnings {
		score -= severityPenalty[w.Severity]
	}

	if nutrition != nil && profile != nil {
		for _, condition := range profile.HealthConditions {
			for _, limit := range conditionLimits {
				if limit.condition == condition && limit.value(nutrition) > limit.penalizeAbove {
					score -= conditionPenalty
				}
			}
		}
	}

	return clamp(score, minScore, maxScore)
}

// Risk classifies a product from its warnings and compatibility score.
func Risk(warnings []types.ProductWarning, score int) types.RiskLevel {
	for _, w := range warnings {
		if w.Severity == types.SeverityHigh {
			return types.RiskHigh
		}
	}
	switch {
	case score < 40:
		return types.RiskHigh
	case len(warnings) > 0 || score < 70:
		return types.RiskMedium
	default:
		return types.RiskLow
	}
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
