package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/trichocare/backend/internal/middleware"
	"github.com/trichocare/backend/internal/service"
)

// DashboardHandler serves the admin dashboard aggregates.
type DashboardHandler struct {
	dashboard   *service.DashboardService
	authService service.IAuthService
	roles       middleware.RoleLookup
}

func NewDashboardHandler(dashboard *service.DashboardService, authService service.IAuthService, roles middleware.RoleLookup) *DashboardHandler {
	return &DashboardHandler{
		dashboard:   dashboard,
		authService: authService,
		roles:       roles,
	}
}

func (h *DashboardHandler) RegisterRoutes(router *gin.RouterGroup) {
	dashboard := router.Group("/dashboard")
	dashboard.Use(middleware.AuthMiddleware(h.authService))
	{
		dashboard.GET("/stats", middleware.RequirePermission(h.roles, "Dashboard", "read"), h.GetStats)
	}
}

func (h *DashboardHandler) GetStats(c *gin.Context) {
	stats, err := h.dashboard.GetStats(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to compute stats"})
		return
	}
	c.JSON(http.StatusOK, stats)
}
