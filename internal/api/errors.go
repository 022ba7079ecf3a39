package api

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/pageza/healthscan/backend/internal/middleware"
	"github.com/pageza/healthscan/backend/internal/service"
)

// respondError maps service sentinels to status codes. Anything unknown is
// logged and reported as a 500 without leaking details.
func respondError(c *gin.Context, err error) {
	var status int
	switch {
	case errors.Is(err, service.ErrInvalidProfile), errors.Is(err, service.ErrUnsupportedImage):
		status = http.StatusBadRequest
	case errors.Is(err, service.ErrInvalidCredentials), errors.Is(err, service.ErrInvalidToken), errors.Is(err, service.ErrTokenExpired):
		status = http.StatusUnauthorized
	case errors.Is(err, service.ErrScanNotFound):
		status = http.StatusNotFound
	case errors.Is(err, service.ErrUserExists):
		status = http.StatusConflict
	case errors.Is(err, service.ErrProfileRequired):
		status = http.StatusPreconditionRequired
	default:
		log.Printf("[API] %s %s failed: %v", c.Request.Method, c.Request.URL.Path, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}
	c.JSON(status, gin.H{"error": err.Error()})
}

// currentUser reads the id set by the auth middleware, answering 401 when absent.
func currentUser(c *gin.Context) (uuid.UUID, bool) {
	id, ok := middleware.UserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
	}
	return id, ok
}
