package api

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/pageza/healthscan/backend/internal/service"
	"github.com/pageza/healthscan/backend/internal/testhelpers"
	"github.com/pageza/healthscan/backend/internal/types"
)

func TestGetProfile(t *testing.T) {
	userID := uuid.New()

	t.Run("existing profile", func(t *testing.T) {
		profiles := new(testhelpers.MockProfileService)
		profiles.On("GetProfile", mock.Anything, userID).Return(&types.UserProfile{
			Weight:     70,
			WeightUnit: types.WeightUnitKilograms,
			Allergies:  []string{"Milk"},
		}, nil)
		router, v1 := newTestRouter(&userID)
		NewProfileHandler(profiles).RegisterRoutes(v1)

		rr := doJSON(t, router, http.MethodGet, "/api/v1/profile", nil)

		assert.Equal(t, http.StatusOK, rr.Code)
		var got types.UserProfile
		decode(t, rr, &got)
		assert.Equal(t, []string{"Milk"}, got.Allergies)
	})

	t.Run("onboarding not finished", func(t *testing.T) {
		profiles := new(testhelpers.MockProfileService)
		profiles.On("GetProfile", mock.Anything, userID).Return(nil, service.ErrProfileRequired)
		router, v1 := newTestRouter(&userID)
		NewProfileHandler(profiles).RegisterRoutes(v1)

		rr := doJSON(t, router, http.MethodGet, "/api/v1/profile", nil)
		assert.Equal(t, http.StatusPreconditionRequired, rr.Code)
	})

	t.Run("unauthenticated", func(t *testing.T) {
		router, v1 := newTestRouter(nil)
		NewProfileHandler(new(testhelpers.MockProfileService)).RegisterRoutes(v1)

		rr := doJSON(t, router, http.MethodGet, "/api/v1/profile", nil)
		assert.Equal(t, http.StatusUnauthorized, rr.Code)
	})

	t.Run("storage failure is hidden", func(t *testing.T) {
		profiles := new(testhelpers.MockProfileService)
		profiles.On("GetProfile", mock.Anything, userID).Return(nil, errors.New("connection refused"))
		router, v1 := newTestRouter(&userID)
		NewProfileHandler(profiles).RegisterRoutes(v1)

		rr := doJSON(t, router, http.MethodGet, "/api/v1/profile", nil)
		assert.Equal(t, http.StatusInternalServerError, rr.Code)
		assert.NotContains(t, rr.Body.String(), "connection refused")
	})
}

func TestUpdateProfile(t *testing.T) {
	userID := uuid.New()
	req := types.ProfileRequest{
		Weight:           150,
		WeightUnit:       types.WeightUnitPounds,
		HealthConditions: []string{"Diabetes"},
	}

	t.Run("saved", func(t *testing.T) {
		profiles := new(testhelpers.MockProfileService)
		profiles.On("SaveProfile", mock.Anything, userID, &req).Return(&types.UserProfile{
			Weight:           150,
			WeightUnit:       types.WeightUnitPounds,
			HealthConditions: []string{"Diabetes"},
		}, nil)
		router, v1 := newTestRouter(&userID)
		NewProfileHandler(profiles).RegisterRoutes(v1)

		rr := doJSON(t, router, http.MethodPut, "/api/v1/profile", req)

		assert.Equal(t, http.StatusOK, rr.Code)
		profiles.AssertExpectations(t)
	})

	t.Run("invalid", func(t *testing.T) {
		profiles := new(testhelpers.MockProfileService)
		bad := types.ProfileRequest{Weight: -1, WeightUnit: types.WeightUnitKilograms}
		profiles.On("SaveProfile", mock.Anything, userID, &bad).
			Return(nil, fmt.Errorf("%w: weight must not be negative", service.ErrInvalidProfile))
		router, v1 := newTestRouter(&userID)
		NewProfileHandler(profiles).RegisterRoutes(v1)

		rr := doJSON(t, router, http.MethodPut, "/api/v1/profile", bad)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
		assert.Contains(t, rr.Body.String(), "weight must not be negative")
	})

	t.Run("missing unit", func(t *testing.T) {
		router, v1 := newTestRouter(&userID)
		NewProfileHandler(new(testhelpers.MockProfileService)).RegisterRoutes(v1)

		rr := doJSON(t, router, http.MethodPut, "/api/v1/profile", map[string]interface{}{"weight": 70})
		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})
}

func TestCatalog(t *testing.T) {
	router, v1 := newTestRouter(nil)
	v1.GET("/catalog", Catalog)

	rr := doJSON(t, router, http.MethodGet, "/api/v1/catalog", nil)

	assert.Equal(t, http.StatusOK, rr.Code)
	var got types.CatalogResponse
	decode(t, rr, &got)
	assert.Contains(t, got.HealthConditions, "Diabetes")
	assert.Contains(t, got.Allergies, "Milk")
	assert.Contains(t, got.DietaryRestrictions, "Gluten-Free")
}
