package scoring

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pageza/healthscan/backend/internal/types"
)

func TestShareMessagePlatforms(t *testing.T) {
	fb := ShareMessage(types.ShareFacebook, 72, 4)
	assert.Contains(t, fb, "72/100 health score")
	assert.Contains(t, fb, "4-day healthy eating streak")
	assert.True(t, strings.HasSuffix(fb, "\n\n"+AppURL))

	tw := ShareMessage(types.ShareTwitter, 72, 4)
	assert.True(t, strings.HasPrefix(tw, "🎯 Health Score: 72/100\n🔥 Streak: 4 days"))

	direct := ShareMessage(types.ShareDirect, 72, 4)
	assert.NotContains(t, direct, AppURL)
	assert.Equal(t, direct, ShareMessage("myspace", 72, 4))
}

func TestShareLink(t *testing.T) {
	assert.Equal(t, "https://healthscan.app/share?score=72&streak=4", ShareLink(72, 4))
}

func TestShareCarriesLatestAchievement(t *testing.T) {
	stats := &types.UserHealthStats{
		CurrentScore: 85,
		Streak:       7,
		Achievements: []types.Achievement{{ID: AchievementWeekStreak}, {ID: AchievementHighScore}},
	}
	data := Share("instagram", stats)

	assert.Equal(t, types.ShareInstagram, data.Platform)
	require.NotNil(t, data.Achievement)
	assert.Equal(t, AchievementHighScore, data.Achievement.ID)
	assert.Equal(t, ShareLink(85, 7), data.Link)

	data = Share("", &types.UserHealthStats{})
	assert.Equal(t, types.ShareDirect, data.Platform)
	assert.Nil(t, data.Achievement)
}
