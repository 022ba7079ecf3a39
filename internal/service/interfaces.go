package service

import (
	"context"

	"github.com/google/uuid"

	"github.com/pageza/healthscan/backend/internal/models"
	"github.com/pageza/healthscan/backend/internal/scoring"
	"github.com/pageza/healthscan/backend/internal/types"
)

// IAuthService defines the interface for authentication operations
type IAuthService interface {
	Register(ctx context.Context, name, email, password string) (*models.User, error)
	Login(ctx context.Context, email, password string) (*models.User, error)
	GenerateToken(user *models.User) (string, error)
	ValidateToken(token string) (*types.TokenClaims, error)
	GetUserByID(ctx context.Context, userID uuid.UUID) (*models.User, error)
}

// IProfileService defines the interface for health profile operations
type IProfileService interface {
	GetProfile(ctx context.Context, userID uuid.UUID) (*types.UserProfile, error)
	SaveProfile(ctx context.Context, userID uuid.UUID, req *types.ProfileRequest) (*types.UserProfile, error)
}

// IScanService defines the interface for scanning and scan history
type IScanService interface {
	Scan(ctx context.Context, userID uuid.UUID, image []byte) (*types.ScannedProduct, error)
	ListScans(ctx context.Context, userID uuid.UUID) ([]*types.ScannedProduct, error)
	GetScan(ctx context.Context, userID uuid.UUID, scanID string) (*types.ScannedProduct, error)
	DeleteScan(ctx context.Context, userID uuid.UUID, scanID string) error
	History(ctx context.Context, userID uuid.UUID) ([]types.HealthScoreEntry, error)
}

// IDashboardService defines the interface for the health score screens
type IDashboardService interface {
	Dashboard(ctx context.Context, userID uuid.UUID) (*types.DashboardResponse, error)
	Trends(ctx context.Context, userID uuid.UUID, view scoring.TrendView) (*types.TrendsResponse, error)
	Share(ctx context.Context, userID uuid.UUID, platform types.SharePlatform) (*types.SocialShareData, error)
	Leaderboard(ctx context.Context, userID uuid.UUID, limit int) (*types.LeaderboardResponse, error)
}

// ImageAnalyzer reads product name, ingredients and nutrition off a photo.
type ImageAnalyzer interface {
	Analyze(ctx context.Context, image []byte) (*types.ProductExtraction, error)
}

// ImageStore keeps scan photos and hands out URLs for them.
type ImageStore interface {
	Save(ctx context.Context, key string, data []byte, contentType string) error
	URL(ctx context.Context, key string) (string, error)
	Delete(ctx context.Context, key string) error
}

// Leaderboard ranks users by current health score.
type Leaderboard interface {
	Record(ctx context.Context, entry types.LeaderboardEntry) error
	Rank(ctx context.Context, userID string) (int, error)
	Top(ctx context.Context, n int) ([]types.LeaderboardEntry, error)
	Remove(ctx context.Context, userID string) error
}
