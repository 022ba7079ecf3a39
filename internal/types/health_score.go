package types

import "time"

// ScoreCategory buckets a per-scan health delta.
type ScoreCategory string

const (
	CategoryExcellent ScoreCategory = "excellent"
	CategoryGood      ScoreCategory = "good"
	CategoryNeutral   ScoreCategory = "neutral"
	CategoryPoor      ScoreCategory = "poor"
	CategoryHarmful   ScoreCategory = "harmful"
)

// AchievementType groups achievements by what triggered them.
type AchievementType string

const (
	AchievementStreak      AchievementType = "streak"
	AchievementScore       AchievementType = "score"
	AchievementScans       AchievementType = "scans"
	AchievementImprovement AchievementType = "improvement"
)

// HealthScoreEntry is the per-scan record derived from a scanned product.
type HealthScoreEntry struct {
	ID          string        `json:"id"`
	ProductID   string        `json:"product_id"`
	ProductName string        `json:"product_name"`
	Score       int           `json:"score"` // -50..+50
	ScannedAt   time.Time     `json:"scanned_at"`
	Category    ScoreCategory `json:"category"`
}

// Achievement is an unlockable milestone.
type Achievement struct {
	ID          string          `json:"id"`
	Title       string          `json:"title"`
	Description string          `json:"description"`
	Icon        string          `json:"icon"`
	UnlockedAt  time.Time       `json:"unlocked_at"`
	Type        AchievementType `json:"type"`
}

// UserHealthStats is the dashboard summary for a user.
type UserHealthStats struct {
	CurrentScore  int           `json:"current_score"` // 0..100
	WeeklyChange  int           `json:"weekly_change"`
	MonthlyChange int           `json:"monthly_change"`
	TotalScans    int           `json:"total_scans"`
	Streak        int           `json:"streak"`
	BestScore     int           `json:"best_score"`
	Rank          int           `json:"rank"`
	Achievements  []Achievement `json:"achievements"`
}

// TrendPoint is one day of the health trend chart.
type TrendPoint struct {
	Date     string  `json:"date"`
	Label    string  `json:"label"`
	Score    int     `json:"score"`
	Scans    int     `json:"scans"`
	RawScore float64 `json:"raw_score"`
}

// SharePlatform is a destination for a share message.
type SharePlatform string

const (
	ShareFacebook  SharePlatform = "facebook"
	ShareTwitter   SharePlatform = "twitter"
	ShareInstagram SharePlatform = "instagram"
	ShareDirect    SharePlatform = "direct"
)

// SocialShareData is the payload handed to a share dialog.
type SocialShareData struct {
	Score       int           `json:"score"`
	Streak      int           `json:"streak"`
	Achievement *Achievement  `json:"achievement,omitempty"`
	Message     string        `json:"message"`
	Link        string        `json:"link"`
	Platform    SharePlatform `json:"platform"`
}

// LeaderboardEntry is one row of the score leaderboard.
type LeaderboardEntry struct {
	UserID   string `json:"user_id"`
	Name     string `json:"name"`
	Score    int    `json:"score"`
	Rank     int    `json:"rank"`
	Streak   int    `json:"streak"`
	IsViewer bool   `json:"is_viewer"`
}
