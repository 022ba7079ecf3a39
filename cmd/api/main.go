package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/redis/go-redis/v9"

	"github.com/pageza/healthscan/backend/config"
	"github.com/pageza/healthscan/backend/internal/database"
	"github.com/pageza/healthscan/backend/internal/server"
	"github.com/pageza/healthscan/backend/internal/service"
)

func main() {
	// Initialize configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	ctx := context.Background()

	db, err := database.Open(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	if err := database.RunMigrations(db); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	// Redis backs the scan rate limiter and the leaderboard; both are
	// optional outside production.
	var redisClient *redis.Client
	if redisClient, err = database.NewRedisClient(ctx, cfg); err != nil {
		if config.GetEnvironment().RequiresRedis() {
			log.Fatalf("Failed to connect to Redis: %v", err)
		}
		log.Printf("Warning: continuing without Redis: %v", err)
		redisClient = nil
	}

	var images service.ImageStore
	if cfg.S3Bucket != "" {
		s3Config, err := config.NewS3Config(ctx, cfg)
		if err != nil {
			log.Fatalf("Failed to configure S3: %v", err)
		}
		images = service.NewS3ImageStore(s3Config)
		log.Printf("Storing scan images in bucket %s", cfg.S3Bucket)
	}

	// Create and start server
	srv := server.New(cfg, db, redisClient, images)

	// Channel to listen for errors coming from the server
	errChan := make(chan error, 1)

	// Start server in a goroutine
	go func() {
		log.Println("Starting server...")
		errChan <- srv.Start()
	}()

	// Channel to listen for an interrupt or terminate signal from the OS
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	// Block until we receive a signal or error
	select {
	case err := <-errChan:
		if err != nil {
			log.Fatalf("Server error: %v", err)
		}
	case sig := <-quit:
		log.Printf("Received signal: %v", sig)
	}

	// Gracefully shutdown the server
	log.Println("Shutting down server...")
	if err := srv.Shutdown(context.Background()); err != nil {
		log.Fatalf("Server shutdown error: %v", err)
	}
	log.Println("Server stopped")
}
