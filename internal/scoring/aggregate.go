package scoring

import (
	"math"
	"time"

	"github.com/pageza/healthscan/backend/internal/types"
)

const (
	// Window is how far back entries count toward the current score.
	Window = 30 * 24 * time.Hour

	// NeutralScore is reported when no entry falls inside the window.
	NeutralScore = 50

	maxConsistencyBonus = 10.0
	bonusPerScan        = 0.5
)

// CurrentScore folds the entries scanned after now-30d into a 0..100 score.
func CurrentScore(entries []types.HealthScoreEntry, now time.Time) int {
	cutoff := now.Add(-Window)

	var sum float64
	var count int
	for _, e := range entries {
		if e.ScannedAt.After(cutoff) {
			sum += float64(e.Score)
			count++
		}
	}
	if count == 0 {
		return NeutralScore
	}

	base := NeutralScore + sum/float64(count)
	bonus := math.Min(maxConsistencyBonus, float64(count)*bonusPerScan)

	return clamp(roundHalfUp(base+bonus), 0, 100)
}

// ScoreAsOf computes the score a user had at instant t, ignoring anything
// scanned after it.
func ScoreAsOf(entries []types.HealthScoreEntry, t time.Time) int {
	var past []types.HealthScoreEntry
	for _, e := range entries {
		if !e.ScannedAt.After(t) {
			past = append(past, e)
		}
	}
	return CurrentScore(past, t)
}
