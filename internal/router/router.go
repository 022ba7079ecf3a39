package router

import (
	"github.com/gin-gonic/gin"

	"github.com/pageza/healthscan/backend/internal/api"
	"github.com/pageza/healthscan/backend/internal/middleware"
)

// Handlers groups the API handlers mounted under /api/v1.
type Handlers struct {
	Auth      *api.AuthHandler
	Profile   *api.ProfileHandler
	Scan      *api.ScanHandler
	Dashboard *api.DashboardHandler
}

// Options carries the optional pieces of the router.
type Options struct {
	AllowedOrigins []string
	// ScanLimiter is nil when redis is unavailable.
	ScanLimiter  *middleware.RateLimiter
	HealthChecks map[string]api.HealthCheck
}

// SetupRouter configures the application routes
func SetupRouter(h Handlers, tokens middleware.TokenValidator, opts Options) *gin.Engine {
	router := gin.New()
	router.Use(gin.Logger(), middleware.ErrorHandler())
	router.Use(middleware.CORS(opts.AllowedOrigins))

	router.GET("/health", api.HealthHandler(opts.HealthChecks))

	// API v1 routes
	v1 := router.Group("/api/v1")
	v1.GET("/catalog", api.Catalog)
	h.Auth.RegisterRoutes(v1)

	// Protected routes
	protected := v1.Group("")
	protected.Use(middleware.AuthMiddleware(tokens))
	{
		h.Profile.RegisterRoutes(protected)
		if opts.ScanLimiter != nil {
			h.Scan.RegisterRoutes(protected, opts.ScanLimiter.RateLimitMiddleware())
		} else {
			h.Scan.RegisterRoutes(protected)
		}
		h.Dashboard.RegisterRoutes(protected)
	}

	return router
}
