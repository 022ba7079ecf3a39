package middleware_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pageza/healthscan/backend/internal/middleware"
	"github.com/pageza/healthscan/backend/internal/testhelpers"
)

func TestScanRateLimiter(t *testing.T) {
	client := testhelpers.SetupTestRedis(t)
	limiter := middleware.NewScanRateLimiter(client, 2)
	userID := uuid.New()

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.POST("/scans", func(c *gin.Context) {
		c.Set(middleware.ContextUserID, userID)
		c.Next()
	}, limiter.RateLimitMiddleware(), func(c *gin.Context) {
		c.Status(http.StatusCreated)
	})

	codes := make([]int, 0, 3)
	for i := 0; i < 3; i++ {
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, httptest.NewRequest(http.MethodPost, "/scans", nil))
		codes = append(codes, rr.Code)
		if i == 2 {
			assert.Equal(t, "0", rr.Header().Get("X-RateLimit-Remaining"))
			assert.Contains(t, rr.Body.String(), "rate limit exceeded")
		}
	}
	assert.Equal(t, []int{http.StatusCreated, http.StatusCreated, http.StatusTooManyRequests}, codes)

	remaining, _, err := limiter.GetRemainingRequests(context.Background(), userID.String())
	require.NoError(t, err)
	assert.Equal(t, 0, remaining)

	remaining, _, err = limiter.GetRemainingRequests(context.Background(), uuid.NewString())
	require.NoError(t, err)
	assert.Equal(t, 2, remaining)
}

func TestRateLimitMiddlewareRequiresUser(t *testing.T) {
	limiter := middleware.NewScanRateLimiter(nil, 1)

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.POST("/scans", limiter.RateLimitMiddleware(), func(c *gin.Context) {
		c.Status(http.StatusCreated)
	})

	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, httptest.NewRequest(http.MethodPost, "/scans", nil))
	assert.Equal(t, http.StatusUnauthorized, rr.Code)
}
