// Package scoring turns analyzed products into health-score entries and folds
// scan history into dashboard stats, streaks, achievements and messages.
package scoring

import (
	"math"

	"github.com/pageza/healthscan/backend/internal/types"
)

const (
	maxDelta = 50
	minDelta = -50
)

// ProductDelta maps one scanned product to a signed health-score delta in
// [-50, 50]. Low-severity warnings carry no penalty here.
func ProductDelta(p *types.ScannedProduct) int {
	score := roundHalfUp(float64(p.CompatibilityScore-50) * 0.8)

	for _, w := range p.Warnings {
		switch w.Severity {
		case types.SeverityHigh:
			score -= 15
		case types.SeverityMedium:
			score -= 8
		}
	}

	if n := p.NutritionFacts; n != nil {
		if n.Sodium < 100 {
			score += 5
		}
		if n.Sugar < 5 {
			score += 5
		}
		if n.Protein > 10 {
			score += 3
		}
		if n.SaturatedFat < 2 {
			score += 3
		}
	}

	if len(p.Warnings) == 0 {
		score += 10
	}

	return clamp(score, minDelta, maxDelta)
}

// Categorize buckets a delta.
func Categorize(delta int) types.ScoreCategory {
	switch {
	case delta >= 30:
		return types.CategoryExcellent
	case delta >= 10:
		return types.CategoryGood
	case delta >= -10:
		return types.CategoryNeutral
	case delta >= -30:
		return types.CategoryPoor
	default:
		return types.CategoryHarmful
	}
}

// NewEntry derives the health-score entry for a scanned product.
func NewEntry(p *types.ScannedProduct) types.HealthScoreEntry {
	delta := ProductDelta(p)
	return types.HealthScoreEntry{
		ID:          p.ID + "-score",
		ProductID:   p.ID,
		ProductName: p.Name,
		Score:       delta,
		ScannedAt:   p.ScannedAt,
		Category:    Categorize(delta),
	}
}

// Entries derives an entry per product, preserving order.
func Entries(products []*types.ScannedProduct) []types.HealthScoreEntry {
	entries := make([]types.HealthScoreEntry, 0, len(products))
	for _, p := range products {
		entries = append(entries, NewEntry(p))
	}
	return entries
}

// roundHalfUp rounds .5 toward positive infinity.
func roundHalfUp(x float64) int {
	return int(math.Floor(x + 0.5))
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
