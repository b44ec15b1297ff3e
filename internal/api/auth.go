package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/trichocare/backend/internal/middleware"
	"github.com/trichocare/backend/internal/service"
	"github.com/trichocare/backend/internal/types"
)

// AuthHandler handles staff login and session introspection.
type AuthHandler struct {
	authService service.IAuthService
}

func NewAuthHandler(authService service.IAuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

func (h *AuthHandler) RegisterRoutes(router *gin.RouterGroup) {
	auth := router.Group("/auth")
	{
		auth.POST("/login", h.Login)
		auth.GET("/me", middleware.AuthMiddleware(h.authService), h.Me)
	}
}

// Login verifies credentials and returns a signed token.
func (h *AuthHandler) Login(c *gin.Context) {
	var req types.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	token, employee, err := h.authService.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrAccountDisabled) {
			c.JSON(http.StatusForbidden, gin.H{"error": "account disabled"})
			return
		}
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid credentials"})
		return
	}

	roleName := ""
	if employee.Role != nil {
		roleName = employee.Role.Name
	}
	c.JSON(http.StatusOK, types.LoginResponse{
		Token: token,
		Name:  employee.Name,
		Role:  roleName,
	})
}

// Me returns the claims of the presented token.
func (h *AuthHandler) Me(c *gin.Context) {
	employeeID, _ := c.Get("employee_id")
	email, _ := c.Get("email")
	role, _ := c.Get("role")
	c.JSON(http.StatusOK, gin.H{
		"employee_id": employeeID,
		"email":       email,
		"role":        role,
	})
}
