package scoring

import (
	"time"

	"github.com/pageza/healthscan/backend/internal/types"
)

// Achievement IDs.
const (
	AchievementFirstScan   = "first-scan"
	AchievementWeekStreak  = "week-streak"
	AchievementMonthStreak = "month-streak"
	AchievementHighScore   = "high-score"
)

type achievementRule struct {
	template types.Achievement
	applies  func(stats *types.UserHealthStats) bool
}

var achievementRules = []achievementRule{
	{
		template: types.Achievement{
			ID:          AchievementFirstScan,
			Title:       "Health Journey Begins!",
			Description: "Completed your first food scan",
			Icon:        "🎯",
			Type:        types.AchievementScans,
		},
		applies: func(s *types.UserHealthStats) bool { return s.TotalScans == 1 },
	},
	{
		template: types.Achievement{
			ID:          AchievementWeekStreak,
			Title:       "Week Warrior",
			Description: "7 days of healthy choices!",
			Icon:        "🔥",
			Type:        types.AchievementStreak,
		},
		applies: func(s *types.UserHealthStats) bool { return s.Streak == 7 },
	},
	{
		template: types.Achievement{
			ID:          AchievementMonthStreak,
			Title:       "Health Champion",
			Description: "30 days of consistent healthy eating!",
			Icon:        "👑",
			Type:        types.AchievementStreak,
		},
		applies: func(s *types.UserHealthStats) bool { return s.Streak == 30 },
	},
	{
		template: types.Achievement{
			ID:          AchievementHighScore,
			Title:       "Health Master",
			Description: "Achieved 80+ health score!",
			Icon:        "⭐",
			Type:        types.AchievementScore,
		},
		applies: func(s *types.UserHealthStats) bool { return s.CurrentScore >= 80 },
	},
}

// CheckAchievements re-derives every achievement whose condition holds for
// stats. It keeps no memory between calls: an achievement is reported on
// every call while its condition holds.
func CheckAchievements(stats *types.UserHealthStats, entries []types.HealthScoreEntry, now time.Time) []types.Achievement {
	achievements := []types.Achievement{}
	for _, rule := range achievementRules {
		if !rule.applies(stats) {
			continue
		}
		a := rule.template
		a.UnlockedAt = now
		achievements = append(achievements, a)
	}
	return achievements
}
