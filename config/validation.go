package config

import (
	"fmt"
	"strconv"
	"strings"
)

// ValidationError represents a configuration validation error
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidationErrors collects every problem found in one pass.
type ValidationErrors []ValidationError

func (e ValidationErrors) Error() string {
	lines := make([]string, len(e))
	for i, v := range e {
		lines[i] = v.Error()
	}
	return strings.Join(lines, "\n")
}

// minProductionSecretLen guards against placeholder JWT secrets.
const minProductionSecretLen = 32

// ValidateConfig checks if the configuration meets the requirements for env
func ValidateConfig(cfg *Config, env Environment) error {
	var errs ValidationErrors
	require := func(field, value string) {
		if value == "" {
			errs = append(errs, ValidationError{Field: field, Message: "is required"})
		}
	}

	require("SERVER_PORT", cfg.ServerPort)
	if cfg.ServerPort != "" {
		if p, err := strconv.Atoi(cfg.ServerPort); err != nil || p <= 0 || p > 65535 {
			errs = append(errs, ValidationError{Field: "SERVER_PORT", Message: "must be a port number"})
		}
	}

	switch cfg.DBDriver {
	case "postgres":
		require("DB_HOST", cfg.DBHost)
		require("DB_PORT", cfg.DBPort)
		require("DB_USER", cfg.DBUser)
		require("DB_NAME", cfg.DBName)
		if env.RequiresDBPassword() {
			require("DB_PASSWORD", cfg.DBPassword)
		}
	case "sqlite":
		require("SQLITE_PATH", cfg.SQLitePath)
		if !env.AllowsSQLite() {
			errs = append(errs, ValidationError{Field: "DB_DRIVER", Message: "sqlite is not supported in production"})
		}
	default:
		errs = append(errs, ValidationError{Field: "DB_DRIVER", Message: fmt.Sprintf("unsupported driver %q", cfg.DBDriver)})
	}

	require("JWT_SECRET", cfg.JWTSecret)
	if env == Production && cfg.JWTSecret != "" && len(cfg.JWTSecret) < minProductionSecretLen {
		errs = append(errs, ValidationError{Field: "JWT_SECRET", Message: fmt.Sprintf("must be at least %d characters", minProductionSecretLen)})
	}

	if cfg.ScanRateLimit < 0 {
		errs = append(errs, ValidationError{Field: "SCAN_RATE_LIMIT", Message: "must not be negative"})
	}
	if cfg.AnalyzerDelay < 0 {
		errs = append(errs, ValidationError{Field: "ANALYZER_DELAY", Message: "must not be negative"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}
