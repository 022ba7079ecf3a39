package testhelpers

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"github.com/pageza/healthscan/backend/internal/models"
	"github.com/pageza/healthscan/backend/internal/scoring"
	"github.com/pageza/healthscan/backend/internal/service"
	"github.com/pageza/healthscan/backend/internal/types"
)

var (
	_ service.IAuthService      = (*MockAuthService)(nil)
	_ service.IProfileService   = (*MockProfileService)(nil)
	_ service.IScanService      = (*MockScanService)(nil)
	_ service.IDashboardService = (*MockDashboardService)(nil)
)

// MockAuthService is a mock implementation of the AuthService interface
type MockAuthService struct {
	mock.Mock
}

func (m *MockAuthService) Register(ctx context.Context, name, email, password string) (*models.User, error) {
	args := m.Called(ctx, name, email, password)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockAuthService) Login(ctx context.Context, email, password string) (*models.User, error) {
	args := m.Called(ctx, email, password)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockAuthService) GenerateToken(user *models.User) (string, error) {
	args := m.Called(user)
	return args.String(0), args.Error(1)
}

func (m *MockAuthService) ValidateToken(token string) (*types.TokenClaims, error) {
	args := m.Called(token)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*types.TokenClaims), args.Error(1)
}

func (m *MockAuthService) GetUserByID(ctx context.Context, userID uuid.UUID) (*models.User, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

// MockProfileService is a mock implementation of the ProfileService interface
type MockProfileService struct {
	mock.Mock
}

func (m *MockProfileService) GetProfile(ctx context.Context, userID uuid.UUID) (*types.UserProfile, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*types.UserProfile), args.Error(1)
}

func (m *MockProfileService) SaveProfile(ctx context.Context, userID uuid.UUID, req *types.ProfileRequest) (*types.UserProfile, error) {
	args := m.Called(ctx, userID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*types.UserProfile), args.Error(1)
}

// MockScanService is a mock implementation of the ScanService interface
type MockScanService struct {
	mock.Mock
}

func (m *MockScanService) Scan(ctx context.Context, userID uuid.UUID, image []byte) (*types.ScannedProduct, error) {
	args := m.Called(ctx, userID, image)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*types.ScannedProduct), args.Error(1)
}

func (m *MockScanService) ListScans(ctx context.Context, userID uuid.UUID) ([]*types.ScannedProduct, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*types.ScannedProduct), args.Error(1)
}

func (m *MockScanService) GetScan(ctx context.Context, userID uuid.UUID, scanID string) (*types.ScannedProduct, error) {
	args := m.Called(ctx, userID, scanID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*types.ScannedProduct), args.Error(1)
}

func (m *MockScanService) DeleteScan(ctx context.Context, userID uuid.UUID, scanID string) error {
	args := m.Called(ctx, userID, scanID)
	return args.Error(0)
}

func (m *MockScanService) History(ctx context.Context, userID uuid.UUID) ([]types.HealthScoreEntry, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]types.HealthScoreEntry), args.Error(1)
}

// MockDashboardService is a mock implementation of the DashboardService interface
type MockDashboardService struct {
	mock.Mock
}

func (m *MockDashboardService) Dashboard(ctx context.Context, userID uuid.UUID) (*types.DashboardResponse, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*types.DashboardResponse), args.Error(1)
}

func (m *MockDashboardService) Trends(ctx context.Context, userID uuid.UUID, view scoring.TrendView) (*types.TrendsResponse, error) {
	args := m.Called(ctx, userID, view)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*types.TrendsResponse), args.Error(1)
}

func (m *MockDashboardService) Share(ctx context.Context, userID uuid.UUID, platform types.SharePlatform) (*types.SocialShareData, error) {
	args := m.Called(ctx, userID, platform)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*types.SocialShareData), args.Error(1)
}

func (m *MockDashboardService) Leaderboard(ctx context.Context, userID uuid.UUID, limit int) (*types.LeaderboardResponse, error) {
	args := m.Called(ctx, userID, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*types.LeaderboardResponse), args.Error(1)
}
