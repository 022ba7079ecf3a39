package service

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/pageza/healthscan/backend/internal/models"
	"github.com/pageza/healthscan/backend/internal/types"
)

// AchievementLedger remembers which achievements a user has already been
// told about. The evaluator re-derives the full set on every call.
type AchievementLedger struct {
	db *gorm.DB
}

func NewAchievementLedger(db *gorm.DB) *AchievementLedger {
	return &AchievementLedger{db: db}
}

// Unlock records each achievement once and returns the ones seen for the
// first time, stamped with at.
func (l *AchievementLedger) Unlock(ctx context.Context, userID uuid.UUID, achievements []types.Achievement, at time.Time) ([]types.Achievement, error) {
	fresh := []types.Achievement{}
	for _, a := range achievements {
		res := l.db.WithContext(ctx).
			Clauses(clause.OnConflict{DoNothing: true}).
			Create(&models.UnlockedAchievement{
				UserID:        userID,
				AchievementID: a.ID,
				UnlockedAt:    at,
			})
		if res.Error != nil {
			return nil, fmt.Errorf("failed to record achievement %s: %w", a.ID, res.Error)
		}
		if res.RowsAffected == 1 {
			a.UnlockedAt = at
			fresh = append(fresh, a)
			log.Printf("[AchievementLedger] User %s unlocked %s", userID, a.ID)
		}
	}
	return fresh, nil
}

// UnlockedAt maps achievement id to when the user first earned it.
func (l *AchievementLedger) UnlockedAt(ctx context.Context, userID uuid.UUID) (map[string]time.Time, error) {
	var rows []models.UnlockedAchievement
	if err := l.db.WithContext(ctx).Where("user_id = ?", userID).Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to load achievements: %w", err)
	}
	out := make(map[string]time.Time, len(rows))
	for _, r := range rows {
		out[r.AchievementID] = r.UnlockedAt
	}
	return out, nil
}
