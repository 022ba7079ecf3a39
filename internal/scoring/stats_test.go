package scoring

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/pageza/healthscan/backend/internal/types"
)

func TestBuildStats(t *testing.T) {
	entries := []types.HealthScoreEntry{
		entryAt(20, 10*day),
		entryAt(20, day),
	}

	stats := BuildStats(entries, testNow, 85, 4)

	assert.Equal(t, 71, stats.CurrentScore)
	assert.Equal(t, 0, stats.WeeklyChange)
	assert.Equal(t, 21, stats.MonthlyChange)
	assert.Equal(t, 2, stats.TotalScans)
	assert.Equal(t, 1, stats.Streak)
	assert.Equal(t, 85, stats.BestScore)
	assert.Equal(t, 4, stats.Rank)
	assert.Empty(t, stats.Achievements)
}

func TestBuildStatsFirstScan(t *testing.T) {
	stats := BuildStats([]types.HealthScoreEntry{entryAt(36, 0)}, testNow, 0, 1)

	// 50 + 36 + 0.5
	assert.Equal(t, 87, stats.CurrentScore)
	assert.Equal(t, 87, stats.BestScore)
	assert.Equal(t, 37, stats.WeeklyChange)
	assert.Equal(t, []string{AchievementFirstScan, AchievementHighScore}, ids(stats.Achievements))
}

func TestBuildStatsEmpty(t *testing.T) {
	stats := BuildStats(nil, testNow, 0, 0)
	assert.Equal(t, 50, stats.CurrentScore)
	assert.Equal(t, 0, stats.Streak)
	assert.Equal(t, 0, stats.WeeklyChange)
	assert.NotNil(t, stats.Achievements)
}
