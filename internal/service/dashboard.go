package service

import (
	"context"
	"fmt"
	"log"
	"math/rand/v2"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/pageza/healthscan/backend/internal/models"
	"github.com/pageza/healthscan/backend/internal/scoring"
	"github.com/pageza/healthscan/backend/internal/types"
)

// DefaultLeaderboardSize is used when the caller asks for no particular size.
const DefaultLeaderboardSize = 10

// globalRand draws from the runtime's shared, concurrency-safe generator.
type globalRand struct{}

func (globalRand) IntN(n int) int { return rand.IntN(n) }

// DashboardService turns scan history into the health score screens.
type DashboardService struct {
	db     *gorm.DB
	scans  IScanService
	ledger *AchievementLedger
	board  Leaderboard
	rnd    scoring.RandomSource
	now    func() time.Time
}

// Ensure DashboardService implements IDashboardService
var _ IDashboardService = (*DashboardService)(nil)

// NewDashboardService wires the dashboard. board may be nil when redis is
// unavailable; rnd may be nil to use the shared generator.
func NewDashboardService(db *gorm.DB, scans IScanService, ledger *AchievementLedger, board Leaderboard, rnd scoring.RandomSource) *DashboardService {
	if rnd == nil {
		rnd = globalRand{}
	}
	return &DashboardService{
		db:     db,
		scans:  scans,
		ledger: ledger,
		board:  board,
		rnd:    rnd,
		now:    time.Now,
	}
}

// SetClock replaces the time source the score windows are measured from.
func (s *DashboardService) SetClock(now func() time.Time) {
	s.now = now
}

func (s *DashboardService) entries(ctx context.Context, userID uuid.UUID) ([]types.HealthScoreEntry, error) {
	return s.scans.History(ctx, userID)
}

func (s *DashboardService) user(ctx context.Context, userID uuid.UUID) (*models.User, error) {
	var user models.User
	if err := s.db.WithContext(ctx).First(&user, "id = ?", userID).Error; err != nil {
		return nil, fmt.Errorf("failed to load user: %w", err)
	}
	return &user, nil
}

// stats computes the read-only part of the dashboard.
func (s *DashboardService) stats(ctx context.Context, userID uuid.UUID) (*models.User, []types.HealthScoreEntry, types.UserHealthStats, error) {
	user, err := s.user(ctx, userID)
	if err != nil {
		return nil, nil, types.UserHealthStats{}, err
	}
	entries, err := s.entries(ctx, userID)
	if err != nil {
		return nil, nil, types.UserHealthStats{}, err
	}

	rank := 0
	if s.board != nil {
		if rank, err = s.board.Rank(ctx, userID.String()); err != nil {
			log.Printf("[DashboardService] Leaderboard rank unavailable: %v", err)
		}
	}
	return user, entries, scoring.BuildStats(entries, s.now(), user.BestScore, rank), nil
}

// Dashboard computes stats, records newly unlocked achievements, updates
// the best score and leaderboard, and picks a motivational message.
func (s *DashboardService) Dashboard(ctx context.Context, userID uuid.UUID) (*types.DashboardResponse, error) {
	now := s.now()
	user, err := s.user(ctx, userID)
	if err != nil {
		return nil, err
	}
	entries, err := s.entries(ctx, userID)
	if err != nil {
		return nil, err
	}

	stats := scoring.BuildStats(entries, now, user.BestScore, 0)

	if s.board != nil {
		stats.Rank = s.syncLeaderboard(ctx, user, &stats)
	}

	if stats.BestScore > user.BestScore {
		if err := s.db.WithContext(ctx).Model(user).Update("best_score", stats.BestScore).Error; err != nil {
			return nil, fmt.Errorf("failed to update best score: %w", err)
		}
	}

	fresh, err := s.ledger.Unlock(ctx, userID, stats.Achievements, now)
	if err != nil {
		return nil, err
	}
	unlockedAt, err := s.ledger.UnlockedAt(ctx, userID)
	if err != nil {
		return nil, err
	}
	for i, a := range stats.Achievements {
		if at, ok := unlockedAt[a.ID]; ok {
			stats.Achievements[i].UnlockedAt = at
		}
	}

	return &types.DashboardResponse{
		Stats:           stats,
		NewAchievements: fresh,
		Message:         scoring.MotivationalMessage(&stats, s.rnd),
		Entries:         entries,
	}, nil
}

// syncLeaderboard records the user's current score and returns their rank.
// A user without scans is taken off the board.
func (s *DashboardService) syncLeaderboard(ctx context.Context, user *models.User, stats *types.UserHealthStats) int {
	id := user.ID.String()
	if stats.TotalScans == 0 {
		if err := s.board.Remove(ctx, id); err != nil {
			log.Printf("[DashboardService] Leaderboard removal failed for %s: %v", id, err)
		}
		return 0
	}

	err := s.board.Record(ctx, types.LeaderboardEntry{
		UserID: id,
		Name:   user.Name,
		Score:  stats.CurrentScore,
		Streak: stats.Streak,
	})
	rank := 0
	if err == nil {
		rank, err = s.board.Rank(ctx, id)
	}
	if err != nil {
		log.Printf("[DashboardService] Leaderboard update failed for %s: %v", id, err)
	}
	return rank
}

// Trends returns one point per day for the requested view.
func (s *DashboardService) Trends(ctx context.Context, userID uuid.UUID, view scoring.TrendView) (*types.TrendsResponse, error) {
	entries, err := s.entries(ctx, userID)
	if err != nil {
		return nil, err
	}
	if view != scoring.TrendMonthly {
		view = scoring.TrendWeekly
	}
	points := scoring.DailyTrend(entries, s.now(), view.Days())
	return &types.TrendsResponse{
		View:    string(view),
		Points:  points,
		Average: scoring.AverageTrendScore(points),
	}, nil
}

// Share builds the share text for platform from the current stats.
func (s *DashboardService) Share(ctx context.Context, userID uuid.UUID, platform types.SharePlatform) (*types.SocialShareData, error) {
	_, _, stats, err := s.stats(ctx, userID)
	if err != nil {
		return nil, err
	}
	data := scoring.Share(platform, &stats)
	return &data, nil
}

// Leaderboard lists the top scorers and marks the viewer's row.
func (s *DashboardService) Leaderboard(ctx context.Context, userID uuid.UUID, limit int) (*types.LeaderboardResponse, error) {
	resp := &types.LeaderboardResponse{Entries: []types.LeaderboardEntry{}}
	if s.board == nil {
		return resp, nil
	}
	if limit <= 0 {
		limit = DefaultLeaderboardSize
	}

	top, err := s.board.Top(ctx, limit)
	if err != nil {
		return nil, err
	}
	viewer := userID.String()
	for i := range top {
		top[i].IsViewer = top[i].UserID == viewer
	}
	resp.Entries = top

	if resp.ViewerRank, err = s.board.Rank(ctx, viewer); err != nil {
		return nil, err
	}
	return resp, nil
}
