package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/trichocare/backend/internal/middleware"
	"github.com/trichocare/backend/internal/scoring"
	"github.com/trichocare/backend/internal/service"
)

// Deps bundles everything the route tree needs. Redis is optional; without
// it analysis creation runs unthrottled.
type Deps struct {
	DB     *gorm.DB
	Engine *scoring.Engine
	Auth   service.IAuthService
	Roles  *service.RoleService
	Images service.ImageStore
	Redis  *redis.Client
}

// HealthCheck reports API liveness.
func HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "healthy",
		"message": "TrichoCare API is running",
		"version": "v1.0.0",
	})
}

// RegisterRoutes wires every API route onto the router.
func RegisterRoutes(router *gin.Engine, deps Deps) {
	router.GET("/health", HealthCheck)
	router.GET("/api/health", HealthCheck)

	customerService := service.NewCustomerService(deps.DB)
	employeeService := service.NewEmployeeService(deps.DB, deps.Roles)
	analysisService := service.NewAnalysisService(deps.DB, deps.Engine, deps.Images)
	dashboardService := service.NewDashboardService(deps.DB)

	var analysisLimiter *middleware.RateLimiter
	if deps.Redis != nil {
		analysisLimiter = middleware.NewAnalysisCreationRateLimiter(deps.Redis)
	}

	authHandler := NewAuthHandler(deps.Auth)
	customerHandler := NewCustomerHandler(customerService, deps.Auth, deps.Roles)
	employeeHandler := NewEmployeeHandler(employeeService, deps.Auth, deps.Roles)
	roleHandler := NewRoleHandler(deps.Roles, deps.Auth)
	analysisHandler := NewAnalysisHandler(analysisService, deps.Auth, deps.Roles, analysisLimiter)
	dashboardHandler := NewDashboardHandler(dashboardService, deps.Auth, deps.Roles)

	v1 := router.Group("/api/v1")
	authHandler.RegisterRoutes(v1)
	customerHandler.RegisterRoutes(v1)
	employeeHandler.RegisterRoutes(v1)
	roleHandler.RegisterRoutes(v1)
	analysisHandler.RegisterRoutes(v1)
	dashboardHandler.RegisterRoutes(v1)
}
