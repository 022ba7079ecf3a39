package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pageza/healthscan/backend/internal/models"
	"github.com/pageza/healthscan/backend/internal/service"
	"github.com/pageza/healthscan/backend/internal/testhelpers"
	"github.com/pageza/healthscan/backend/internal/types"
)

func TestAuthRegisterAndLogin(t *testing.T) {
	db := testhelpers.SetupTestDatabase(t)
	auth := service.NewAuthService(db, "test-secret", time.Hour)
	ctx := context.Background()

	user, err := auth.Register(ctx, " Ada ", "Ada@Example.com", "password123")
	require.NoError(t, err)
	assert.Equal(t, "Ada", user.Name)
	assert.Equal(t, "ada@example.com", user.Email)
	assert.NotEqual(t, "password123", user.PasswordHash)

	_, err = auth.Register(ctx, "Other", "ada@example.com", "password456")
	assert.ErrorIs(t, err, service.ErrUserExists)

	got, err := auth.Login(ctx, "ADA@example.com", "password123")
	require.NoError(t, err)
	assert.Equal(t, user.ID, got.ID)

	_, err = auth.Login(ctx, "ada@example.com", "wrong-password")
	assert.ErrorIs(t, err, service.ErrInvalidCredentials)

	_, err = auth.Login(ctx, "nobody@example.com", "password123")
	assert.ErrorIs(t, err, service.ErrInvalidCredentials)
}

func TestAuthTokens(t *testing.T) {
	db := testhelpers.SetupTestDatabase(t)
	auth := service.NewAuthService(db, "test-secret", time.Hour)
	user := &models.User{ID: uuid.New(), Name: "Ada", Email: "ada@example.com"}

	token, err := auth.GenerateToken(user)
	require.NoError(t, err)

	claims, err := auth.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, user.ID, claims.UserID)
	assert.Equal(t, "Ada", claims.Name)

	t.Run("wrong secret", func(t *testing.T) {
		other := service.NewAuthService(db, "other-secret", time.Hour)
		_, err := other.ValidateToken(token)
		assert.ErrorIs(t, err, service.ErrInvalidToken)
	})

	t.Run("expired", func(t *testing.T) {
		expired := jwt.NewWithClaims(jwt.SigningMethodHS256, &types.TokenClaims{
			RegisteredClaims: jwt.RegisteredClaims{
				Issuer:    "healthscan",
				ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Minute)),
			},
			UserID: user.ID,
		})
		signed, err := expired.SignedString([]byte("test-secret"))
		require.NoError(t, err)

		_, err = auth.ValidateToken(signed)
		assert.ErrorIs(t, err, service.ErrTokenExpired)
	})

	t.Run("none algorithm rejected", func(t *testing.T) {
		unsigned := jwt.NewWithClaims(jwt.SigningMethodNone, &types.TokenClaims{
			RegisteredClaims: jwt.RegisteredClaims{Issuer: "healthscan"},
			UserID:           user.ID,
		})
		signed, err := unsigned.SignedString(jwt.UnsafeAllowNoneSignatureType)
		require.NoError(t, err)

		_, err = auth.ValidateToken(signed)
		assert.ErrorIs(t, err, service.ErrInvalidToken)
	})
}
