package scoring

import (
	"fmt"

	"github.com/pageza/healthscan/backend/internal/types"
)

// MessageCategory is the tone of a motivational message.
type MessageCategory string

const (
	MessageExcellent   MessageCategory = "excellent"
	MessageGood        MessageCategory = "good"
	MessageImproving   MessageCategory = "improving"
	MessageEncouraging MessageCategory = "encouraging"
)

// RandomSource picks an index in [0, n). *rand.Rand from math/rand/v2
// satisfies it.
type RandomSource interface {
	IntN(n int) int
}

// CategoryFor selects the message category for stats.
func CategoryFor(stats *types.UserHealthStats) MessageCategory {
	switch {
	case stats.CurrentScore >= 80:
		return MessageExcellent
	case stats.CurrentScore >= 60:
		return MessageGood
	case stats.WeeklyChange > 0:
		return MessageImproving
	default:
		return MessageEncouraging
	}
}

// MessagePool returns the candidate messages of a category for stats.
func MessagePool(category MessageCategory, stats *types.UserHealthStats) []string {
	switch category {
	case MessageExcellent:
		return []string{
			"🌟 You're crushing it! Keep up the amazing work!",
			"🏆 Health champion status unlocked!",
			"💪 Your dedication is inspiring!",
		}
	case MessageGood:
		return []string{
			"👍 Great job maintaining healthy choices!",
			"🎯 You're on the right track!",
			"🌱 Your health journey is flourishing!",
		}
	case MessageImproving:
		return []string{
			"📈 Every scan makes you healthier!",
			"🔥 Building that streak, one choice at a time!",
			"💚 Small steps lead to big changes!",
		}
	default:
		return []string{
			fmt.Sprintf("🎯 Just %d points to reach 100!", 100-stats.CurrentScore),
			fmt.Sprintf("🔥 %d day streak - don't break it now!", stats.Streak),
			"🌟 Your next healthy choice could be your best yet!",
		}
	}
}

// MotivationalMessage picks a message for stats using rnd.
func MotivationalMessage(stats *types.UserHealthStats, rnd RandomSource) string {
	pool := MessagePool(CategoryFor(stats), stats)
	return pool[rnd.IntN(len(pool))]
}
