package scoring

import (
	"math"
	"sort"
	"time"

	"github.com/pageza/healthscan/backend/internal/types"
)

const day = 24 * time.Hour

// Streak counts consecutive positive-scoring scans walking back from now.
// The first entry that is non-positive or too far from the previous one
// ends the walk.
func Streak(entries []types.HealthScoreEntry, now time.Time) int {
	sorted := make([]types.HealthScoreEntry, len(entries))
	copy(sorted, entries)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].ScannedAt.After(sorted[j].ScannedAt)
	})

	streak := 0
	cursor := now
	for _, e := range sorted {
		daysDiff := int(math.Floor(float64(cursor.Sub(e.ScannedAt)) / float64(day)))
		if daysDiff > streak+1 || e.Score <= 0 {
			break
		}
		streak++
		cursor = e.ScannedAt
	}
	return streak
}
