package config

import (
	"os"
	"strings"
)

// Environment is the deployment the server runs in.
type Environment string

const (
	Development Environment = "development"
	Test        Environment = "test"
	CI          Environment = "ci"
	Production  Environment = "production"
)

// ParseEnvironment maps an ENV value onto a known environment. Anything
// unrecognised is treated as development.
func ParseEnvironment(s string) Environment {
	switch Environment(strings.ToLower(strings.TrimSpace(s))) {
	case Production, "prod":
		return Production
	case Test:
		return Test
	case CI:
		return CI
	default:
		return Development
	}
}

// GetEnvironment reads the environment from CI and ENV. CI=true wins.
func GetEnvironment() Environment {
	if os.Getenv("CI") == "true" {
		return CI
	}
	return ParseEnvironment(os.Getenv("ENV"))
}

// RequiresRedis reports whether the server must refuse to start without
// redis. Elsewhere the rate limiter and leaderboard are simply disabled.
func (e Environment) RequiresRedis() bool {
	return e == Production
}

// AllowsSQLite reports whether the embedded sqlite driver may be used.
func (e Environment) AllowsSQLite() bool {
	return e != Production
}

// RequiresDBPassword reports whether postgres must be password protected.
func (e Environment) RequiresDBPassword() bool {
	return e == CI || e == Production
}

// LoadsDotEnv reports whether a local .env file is read on startup.
func (e Environment) LoadsDotEnv() bool {
	return e == Development
}

func IsProduction() bool {
	return GetEnvironment() == Production
}
