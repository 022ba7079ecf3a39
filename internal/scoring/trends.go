package scoring

import (
	"time"

	"github.com/pageza/healthscan/backend/internal/types"
)

// TrendView selects how many days a trend covers.
type TrendView string

const (
	TrendWeekly  TrendView = "weekly"
	TrendMonthly TrendView = "monthly"
)

// Days returns the number of days in the view, defaulting to a week.
func (v TrendView) Days() int {
	if v == TrendMonthly {
		return 30
	}
	return 7
}

// DailyTrend returns one point per calendar day (in now's location) ending
// today. Days without scans sit at the neutral 50.
func DailyTrend(entries []types.HealthScoreEntry, now time.Time, days int) []types.TrendPoint {
	if days <= 0 {
		return []types.TrendPoint{}
	}

	type bucket struct {
		sum   float64
		count int
	}
	buckets := make(map[string]*bucket)
	for _, e := range entries {
		key := e.ScannedAt.In(now.Location()).Format(time.DateOnly)
		b, ok := buckets[key]
		if !ok {
			b = &bucket{}
			buckets[key] = b
		}
		b.sum += float64(e.Score)
		b.count++
	}

	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	points := make([]types.TrendPoint, 0, days)
	for i := days - 1; i >= 0; i-- {
		date := today.AddDate(0, 0, -i)
		key := date.Format(time.DateOnly)

		var raw float64
		var scans int
		if b, ok := buckets[key]; ok {
			raw = b.sum / float64(b.count)
			scans = b.count
		}

		points = append(points, types.TrendPoint{
			Date:     key,
			Label:    date.Format("Jan 02"),
			Score:    roundHalfUp(raw + NeutralScore),
			Scans:    scans,
			RawScore: raw,
		})
	}
	return points
}

// AverageTrendScore is the mean of the point scores.
func AverageTrendScore(points []types.TrendPoint) float64 {
	if len(points) == 0 {
		return NeutralScore
	}
	var sum float64
	for _, p := range points {
		sum += float64(p.Score)
	}
	return sum / float64(len(points))
}
