package scoring

import (
	"time"

	"github.com/pageza/healthscan/backend/internal/types"
)

const (
	weekAgo  = 7 * day
	monthAgo = 30 * day
)

// BuildStats computes the dashboard stats for entries at now.
// previousBest and rank come from outside the history.
func BuildStats(entries []types.HealthScoreEntry, now time.Time, previousBest, rank int) types.UserHealthStats {
	current := CurrentScore(entries, now)

	best := current
	if previousBest > best {
		best = previousBest
	}

	stats := types.UserHealthStats{
		CurrentScore:  current,
		WeeklyChange:  current - ScoreAsOf(entries, now.Add(-weekAgo)),
		MonthlyChange: current - ScoreAsOf(entries, now.Add(-monthAgo)),
		TotalScans:    len(entries),
		Streak:        Streak(entries, now),
		BestScore:     best,
		Rank:          rank,
	}
	stats.Achievements = CheckAchievements(&stats, entries, now)
	return stats
}
