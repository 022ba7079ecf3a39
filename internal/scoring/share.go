package scoring

import (
	"fmt"
	"net/url"
	"strconv"

	"github.com/pageza/healthscan/backend/internal/types"
)

// AppURL is appended to messages shared on social platforms.
const AppURL = "https://healthscan.app"

// ShareMessage builds the text shared on platform. Unknown platforms get
// the direct message.
func ShareMessage(platform types.SharePlatform, score, streak int) string {
	switch platform {
	case types.ShareFacebook:
		return withURL(fmt.Sprintf("🌟 Just hit a %d/100 health score on HealthScan! 💪 On a %d-day healthy eating streak! Join me in making better food choices! #HealthyEating #HealthScan", score, streak))
	case types.ShareTwitter:
		return withURL(fmt.Sprintf("🎯 Health Score: %d/100\n🔥 Streak: %d days\n💚 Making smarter food choices with @HealthScan! #HealthyLiving", score, streak))
	case types.ShareInstagram:
		return withURL(fmt.Sprintf("✨ Health journey update! Currently at %d/100 with a %d-day streak of healthy choices! 🥗💪 Who's joining me on this wellness adventure? #HealthScan #WellnessJourney #HealthyChoices", score, streak))
	default:
		return fmt.Sprintf("Hey! I've been using HealthScan to track my food choices and I'm at %d/100 with a %d-day streak! You should try it too - it's really helping me eat healthier! 🌱", score, streak)
	}
}

// ShareLink is a link that shows score and streak to anyone.
func ShareLink(score, streak int) string {
	q := url.Values{}
	q.Set("score", strconv.Itoa(score))
	q.Set("streak", strconv.Itoa(streak))
	return AppURL + "/share?" + q.Encode()
}

// NormalizePlatform maps arbitrary input onto a known platform.
func NormalizePlatform(p string) types.SharePlatform {
	switch types.SharePlatform(p) {
	case types.ShareFacebook, types.ShareTwitter, types.ShareInstagram:
		return types.SharePlatform(p)
	default:
		return types.ShareDirect
	}
}

// Share assembles the share payload for stats. The most recent achievement,
// if any, rides along.
func Share(platform types.SharePlatform, stats *types.UserHealthStats) types.SocialShareData {
	platform = NormalizePlatform(string(platform))
	data := types.SocialShareData{
		Score:    stats.CurrentScore,
		Streak:   stats.Streak,
		Message:  ShareMessage(platform, stats.CurrentScore, stats.Streak),
		Link:     ShareLink(stats.CurrentScore, stats.Streak),
		Platform: platform,
	}
	if n := len(stats.Achievements); n > 0 {
		a := stats.Achievements[n-1]
		data.Achievement = &a
	}
	return data
}

func withURL(msg string) string {
	return msg + "\n\n" + AppURL
}
