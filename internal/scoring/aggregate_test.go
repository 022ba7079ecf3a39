package scoring

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/pageza/healthscan/backend/internal/types"
)

var testNow = time.Date(2025, 3, 14, 15, 0, 0, 0, time.UTC)

func entryAt(score int, ago time.Duration) types.HealthScoreEntry {
	return types.HealthScoreEntry{Score: score, ScannedAt: testNow.Add(-ago)}
}

func TestCurrentScoreEmpty(t *testing.T) {
	assert.Equal(t, 50, CurrentScore(nil, testNow))
}

func TestCurrentScoreAllStale(t *testing.T) {
	entries := []types.HealthScoreEntry{
		entryAt(40, 31*day),
		entryAt(-40, 45*day),
	}
	assert.Equal(t, 50, CurrentScore(entries, testNow))
}

func TestCurrentScoreConsistencyBonus(t *testing.T) {
	var entries []types.HealthScoreEntry
	for i := 0; i < 10; i++ {
		entries = append(entries, entryAt(20, time.Duration(i)*day))
	}
	assert.Equal(t, 75, CurrentScore(entries, testNow))

	entries = entries[:0]
	for i := 0; i < 25; i++ {
		entries = append(entries, entryAt(0, time.Duration(i)*time.Hour))
	}
	// bonus caps at 10
	assert.Equal(t, 60, CurrentScore(entries, testNow))
}

func TestCurrentScoreRoundsHalfUp(t *testing.T) {
	entries := []types.HealthScoreEntry{entryAt(10, time.Hour), entryAt(-5, 2*time.Hour)}
	// 50 + 2.5 + 1
	assert.Equal(t, 54, CurrentScore(entries, testNow))
}

func TestCurrentScoreClamps(t *testing.T) {
	var entries []types.HealthScoreEntry
	for i := 0; i < 30; i++ {
		entries = append(entries, entryAt(50, time.Hour))
	}
	assert.Equal(t, 100, CurrentScore(entries, testNow))
}

func TestCurrentScoreWindowBoundaryExcluded(t *testing.T) {
	entries := []types.HealthScoreEntry{entryAt(40, Window)}
	assert.Equal(t, 50, CurrentScore(entries, testNow))

	entries = []types.HealthScoreEntry{entryAt(40, Window-time.Second)}
	assert.Equal(t, 91, CurrentScore(entries, testNow))
}

func TestScoreAsOf(t *testing.T) {
	entries := []types.HealthScoreEntry{
		entryAt(20, 10*day),
		entryAt(20, day),
	}
	// only the older entry existed a week ago: 50 + 20 + 0.5
	assert.Equal(t, 71, ScoreAsOf(entries, testNow.Add(-7*day)))
	assert.Equal(t, 50, ScoreAsOf(entries, testNow.Add(-30*day)))
}
