package router

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/pageza/healthscan/backend/internal/api"
	"github.com/pageza/healthscan/backend/internal/testhelpers"
	"github.com/pageza/healthscan/backend/internal/types"
)

func TestSetupRouter(t *testing.T) {
	gin.SetMode(gin.TestMode)
	userID := uuid.New()

	auth := new(testhelpers.MockAuthService)
	auth.On("ValidateToken", "good").Return(&types.TokenClaims{UserID: userID}, nil)
	profiles := new(testhelpers.MockProfileService)
	profiles.On("GetProfile", mock.Anything, userID).Return(&types.UserProfile{WeightUnit: types.WeightUnitKilograms}, nil)

	router := SetupRouter(Handlers{
		Auth:      api.NewAuthHandler(auth),
		Profile:   api.NewProfileHandler(profiles),
		Scan:      api.NewScanHandler(new(testhelpers.MockScanService)),
		Dashboard: api.NewDashboardHandler(new(testhelpers.MockDashboardService)),
	}, auth, Options{})

	tests := []struct {
		name   string
		path   string
		token  string
		status int
	}{
		{"health is public", "/health", "", http.StatusOK},
		{"catalog is public", "/api/v1/catalog", "", http.StatusOK},
		{"profile needs a token", "/api/v1/profile", "", http.StatusUnauthorized},
		{"profile with token", "/api/v1/profile", "good", http.StatusOK},
		{"dashboard needs a token", "/api/v1/dashboard", "", http.StatusUnauthorized},
		{"unknown route", "/api/v1/recipes", "good", http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, tt.path, nil)
			if tt.token != "" {
				req.Header.Set("Authorization", "Bearer "+tt.token)
			}
			rr := httptest.NewRecorder()
			router.ServeHTTP(rr, req)
			assert.Equal(t, tt.status, rr.Code)
		})
	}
}
