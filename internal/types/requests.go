package types

import "github.com/google/uuid"

// RegisterRequest is the body of POST /auth/register.
type RegisterRequest struct {
	Name     string `json:"name" binding:"required,max=100"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
}

// LoginRequest is the body of POST /auth/login.
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// UserResponse is the public view of an account.
type UserResponse struct {
	ID    uuid.UUID `json:"id"`
	Name  string    `json:"name"`
	Email string    `json:"email"`
}

// AuthResponse is returned by register and login.
type AuthResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}

// ProfileRequest creates or replaces the caller's health profile.
type ProfileRequest struct {
	Weight              float64    `json:"weight"`
	WeightUnit          WeightUnit `json:"weight_unit" binding:"required"`
	HealthConditions    []string   `json:"health_conditions"`
	Allergies           []string   `json:"allergies"`
	DietaryRestrictions []string   `json:"dietary_restrictions"`
}

// ScanRequest carries a base64 data URI when the image is not sent as multipart.
type ScanRequest struct {
	ImageData string `json:"image_data" binding:"required"`
}

// CatalogResponse lists the labels a profile can be built from.
type CatalogResponse struct {
	HealthConditions    []string `json:"health_conditions"`
	Allergies           []string `json:"allergies"`
	DietaryRestrictions []string `json:"dietary_restrictions"`
}

// DashboardResponse is the health score screen.
type DashboardResponse struct {
	Stats           UserHealthStats    `json:"stats"`
	NewAchievements []Achievement      `json:"new_achievements"`
	Message         string             `json:"message"`
	Entries         []HealthScoreEntry `json:"entries"`
}

// TrendsResponse is one chart view.
type TrendsResponse struct {
	View    string       `json:"view"`
	Points  []TrendPoint `json:"points"`
	Average float64      `json:"average"`
}

// LeaderboardResponse lists the top scorers plus the viewer's own rank.
type LeaderboardResponse struct {
	Entries    []LeaderboardEntry `json:"entries"`
	ViewerRank int                `json:"viewer_rank"`
}
