package server

import (
	"context"
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/pageza/healthscan/backend/config"
	"github.com/pageza/healthscan/backend/internal/api"
	"github.com/pageza/healthscan/backend/internal/database"
	"github.com/pageza/healthscan/backend/internal/middleware"
	"github.com/pageza/healthscan/backend/internal/router"
	"github.com/pageza/healthscan/backend/internal/service"
)

// Server represents the HTTP server
type Server struct {
	router *gin.Engine
	http   *http.Server
	db     *gorm.DB
	redis  *redis.Client
}

// New wires services and routes. redisClient and images may be nil; the
// scan rate limiter and leaderboard are then disabled, and scan photos are
// not kept.
func New(cfg *config.Config, db *gorm.DB, redisClient *redis.Client, images service.ImageStore) *Server {
	authService := service.NewAuthService(db, cfg.JWTSecret, cfg.TokenTTL)
	profileService := service.NewProfileService(db)
	scanService := service.NewScanService(db, profileService, service.NewSyntheticAnalyzer(cfg.AnalyzerDelay), images)

	checks := map[string]api.HealthCheck{
		"database": func(ctx context.Context) error { return database.HealthCheck(ctx, db) },
	}

	var (
		board   service.Leaderboard
		limiter *middleware.RateLimiter
	)
	if redisClient != nil {
		board = service.NewRedisLeaderboard(redisClient, "")
		if cfg.ScanRateLimit > 0 {
			limiter = middleware.NewScanRateLimiter(redisClient, cfg.ScanRateLimit)
		}
		checks["redis"] = func(ctx context.Context) error { return redisClient.Ping(ctx).Err() }
	}
	dashboardService := service.NewDashboardService(db, scanService, service.NewAchievementLedger(db), board, nil)

	engine := router.SetupRouter(router.Handlers{
		Auth:      api.NewAuthHandler(authService),
		Profile:   api.NewProfileHandler(profileService),
		Scan:      api.NewScanHandler(scanService),
		Dashboard: api.NewDashboardHandler(dashboardService),
	}, authService, router.Options{
		AllowedOrigins: cfg.AllowedOrigins,
		ScanLimiter:    limiter,
		HealthChecks:   checks,
	})

	return &Server{
		router: engine,
		http: &http.Server{
			Addr:              cfg.Addr(),
			Handler:           engine,
			ReadHeaderTimeout: 10 * time.Second,
		},
		db:    db,
		redis: redisClient,
	}
}

// Handler exposes the router, mainly for tests.
func (s *Server) Handler() http.Handler {
	return s.router
}

// Start serves until Shutdown is called.
func (s *Server) Start() error {
	log.Printf("[Server] Listening on %s", s.http.Addr)
	if err := s.http.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// Shutdown gracefully stops the HTTP server and closes its connections.
func (s *Server) Shutdown(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	err := s.http.Shutdown(ctx)
	if s.redis != nil {
		if cerr := s.redis.Close(); cerr != nil {
			log.Printf("[Server] Failed to close redis: %v", cerr)
		}
	}
	if sqlDB, derr := s.db.DB(); derr == nil {
		sqlDB.Close()
	}
	return err
}
