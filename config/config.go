package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the application
type Config struct {
	// Server configuration
	ServerPort     string
	ServerHost     string
	AllowedOrigins []string

	// Database configuration
	DBDriver   string // postgres or sqlite
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSSLMode  string
	SQLitePath string

	// Redis configuration
	RedisHost     string
	RedisPort     string
	RedisPassword string
	RedisDB       int
	RedisURL      string

	// JWT configuration
	JWTSecret string
	TokenTTL  time.Duration

	// Scan image storage
	S3Bucket           string
	S3Endpoint         string
	AWSRegion          string
	AWSAccessKeyID     string
	AWSSecretAccessKey string

	// Scanning
	AnalyzerDelay time.Duration
	ScanRateLimit int // scans per hour, 0 disables the limiter
}

// Addr returns the listen address.
func (c *Config) Addr() string {
	return c.ServerHost + ":" + c.ServerPort
}

// developmentDefaults apply only in development and test.
var developmentDefaults = map[string]string{
	"SERVER_PORT":     "8080",
	"SERVER_HOST":     "",
	"ALLOWED_ORIGINS": "http://localhost:5173,http://frontend:5173",
	"DB_DRIVER":       "sqlite",
	"DB_HOST":         "localhost",
	"DB_PORT":         "5432",
	"DB_USER":         "postgres",
	"DB_NAME":         "healthscan",
	"DB_SSL_MODE":     "disable",
	"SQLITE_PATH":     "healthscan.db",
	"REDIS_HOST":      "localhost",
	"REDIS_PORT":      "6379",
	"JWT_SECRET":      "your-secret-key",
	"TOKEN_TTL":       "24h",
	"AWS_REGION":      "us-east-1",
	"ANALYZER_DELAY":  "2s",
	"SCAN_RATE_LIMIT": "30",
}

// LoadConfig creates a new Config instance with values from environment variables or secrets
func LoadConfig() (*Config, error) {
	env := GetEnvironment()

	var src source
	switch env {
	case CI:
		src = source{env: true}
	case Development, Test:
		if env.LoadsDotEnv() {
			// A missing .env is fine; real env vars still apply.
			_ = godotenv.Load()
		}
		src = source{env: true, secrets: true, defaults: developmentDefaults}
	case Production:
		src = source{secrets: true, env: true, secretsFirst: true}
	default:
		return nil, fmt.Errorf("unknown environment: %s", env)
	}

	cfg, err := src.load()
	if err != nil {
		return nil, fmt.Errorf("failed to load %s configuration: %w", env, err)
	}

	// Validate the configuration
	if err := ValidateConfig(cfg, env); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return cfg, nil
}

// source resolves a setting from env vars, Docker secrets and defaults.
type source struct {
	env          bool
	secrets      bool
	secretsFirst bool
	defaults     map[string]string
}

func (s source) get(name string) string {
	fromEnv := func() string {
		if !s.env {
			return ""
		}
		return strings.TrimSpace(os.Getenv(name))
	}
	fromSecret := func() string {
		if !s.secrets {
			return ""
		}
		return readSecret(strings.ToLower(name))
	}

	first, second := fromEnv, fromSecret
	if s.secretsFirst {
		first, second = fromSecret, fromEnv
	}
	if v := first(); v != "" {
		return v
	}
	if v := second(); v != "" {
		return v
	}
	return s.defaults[name]
}

func (s source) load() (*Config, error) {
	cfg := &Config{
		ServerPort:         s.get("SERVER_PORT"),
		ServerHost:         s.get("SERVER_HOST"),
		AllowedOrigins:     splitList(s.get("ALLOWED_ORIGINS")),
		DBDriver:           strings.ToLower(s.get("DB_DRIVER")),
		DBHost:             s.get("DB_HOST"),
		DBPort:             s.get("DB_PORT"),
		DBUser:             s.get("DB_USER"),
		DBPassword:         s.get("DB_PASSWORD"),
		DBName:             s.get("DB_NAME"),
		DBSSLMode:          s.get("DB_SSL_MODE"),
		SQLitePath:         s.get("SQLITE_PATH"),
		RedisHost:          s.get("REDIS_HOST"),
		RedisPort:          s.get("REDIS_PORT"),
		RedisPassword:      s.get("REDIS_PASSWORD"),
		RedisURL:           s.get("REDIS_URL"),
		JWTSecret:          s.get("JWT_SECRET"),
		S3Bucket:           s.get("S3_BUCKET_NAME"),
		S3Endpoint:         s.get("S3_ENDPOINT"),
		AWSRegion:          s.get("AWS_REGION"),
		AWSAccessKeyID:     s.get("AWS_ACCESS_KEY_ID"),
		AWSSecretAccessKey: s.get("AWS_SECRET_ACCESS_KEY"),
	}
	if cfg.DBDriver == "" {
		cfg.DBDriver = "postgres"
	}

	var err error
	if cfg.RedisDB, err = atoiOrZero("REDIS_DB", s.get("REDIS_DB")); err != nil {
		return nil, err
	}
	if cfg.ScanRateLimit, err = atoiOrZero("SCAN_RATE_LIMIT", s.get("SCAN_RATE_LIMIT")); err != nil {
		return nil, err
	}
	if cfg.TokenTTL, err = durationOr("TOKEN_TTL", s.get("TOKEN_TTL"), 24*time.Hour); err != nil {
		return nil, err
	}
	if cfg.AnalyzerDelay, err = durationOr("ANALYZER_DELAY", s.get("ANALYZER_DELAY"), 0); err != nil {
		return nil, err
	}

	return cfg, nil
}

func atoiOrZero(name, v string) (int, error) {
	if v == "" {
		return 0, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, ValidationError{Field: name, Message: fmt.Sprintf("not an integer: %q", v)}
	}
	return n, nil
}

func durationOr(name, v string, def time.Duration) (time.Duration, error) {
	if v == "" {
		return def, nil
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return 0, ValidationError{Field: name, Message: fmt.Sprintf("not a duration: %q", v)}
	}
	return d, nil
}

func splitList(v string) []string {
	var out []string
	for _, part := range strings.Split(v, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}

// readSecret reads a Docker secret from the secrets directory
func readSecret(name string) string {
	secretsDir := os.Getenv("SECRETS_DIR")
	if secretsDir == "" {
		secretsDir = "/run/secrets"
	}
	secretPath := filepath.Join(secretsDir, name)
	if data, err := os.ReadFile(secretPath); err == nil {
		return strings.TrimSpace(string(data))
	}
	return ""
}
