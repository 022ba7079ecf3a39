package api

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/pageza/healthscan/backend/internal/scoring"
	"github.com/pageza/healthscan/backend/internal/service"
)

// maxLeaderboardSize bounds the limit query parameter.
const maxLeaderboardSize = 100

type DashboardHandler struct {
	dashboardService service.IDashboardService
}

func NewDashboardHandler(dashboardService service.IDashboardService) *DashboardHandler {
	return &DashboardHandler{dashboardService: dashboardService}
}

// RegisterRoutes expects router to be behind the auth middleware.
func (h *DashboardHandler) RegisterRoutes(router *gin.RouterGroup) {
	dashboard := router.Group("/dashboard")
	{
		dashboard.GET("", h.GetDashboard)
		dashboard.GET("/trends", h.GetTrends)
		dashboard.GET("/share", h.GetShare)
	}
	router.GET("/leaderboard", h.GetLeaderboard)
}

func (h *DashboardHandler) GetDashboard(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}

	resp, err := h.dashboardService.Dashboard(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *DashboardHandler) GetTrends(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}

	view := scoring.TrendView(c.DefaultQuery("view", string(scoring.TrendWeekly)))
	if view != scoring.TrendWeekly && view != scoring.TrendMonthly {
		c.JSON(http.StatusBadRequest, gin.H{"error": "view must be weekly or monthly"})
		return
	}

	resp, err := h.dashboardService.Trends(c.Request.Context(), userID, view)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *DashboardHandler) GetShare(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}

	platform := scoring.NormalizePlatform(c.Query("platform"))
	resp, err := h.dashboardService.Share(c.Request.Context(), userID, platform)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *DashboardHandler) GetLeaderboard(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}

	limit := service.DefaultLeaderboardSize
	if raw := c.Query("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n <= 0 || n > maxLeaderboardSize {
			c.JSON(http.StatusBadRequest, gin.H{"error": "limit must be between 1 and 100"})
			return
		}
		limit = n
	}

	resp, err := h.dashboardService.Leaderboard(c.Request.Context(), userID, limit)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}
