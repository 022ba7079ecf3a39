package models

import (
	"time"

	"github.com/google/uuid"
)

// UnlockedAchievement records the first time a user earned an achievement.
type UnlockedAchievement struct {
	ID            uint      `gorm:"primarykey" json:"-"`
	UserID        uuid.UUID `gorm:"type:varchar(36);not null;uniqueIndex:idx_user_achievement,priority:1" json:"user_id"`
	AchievementID string    `gorm:"size:64;not null;uniqueIndex:idx_user_achievement,priority:2" json:"achievement_id"`
	UnlockedAt    time.Time `gorm:"not null" json:"unlocked_at"`
}
