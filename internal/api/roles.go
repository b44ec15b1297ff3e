package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/trichocare/backend/internal/middleware"
	"github.com/trichocare/backend/internal/models"
	"github.com/trichocare/backend/internal/service"
	"github.com/trichocare/backend/internal/types"
)

// RoleHandler manages the role and permission tables. Role management lives
// under the Settings module.
type RoleHandler struct {
	roles       *service.RoleService
	authService service.IAuthService
}

func NewRoleHandler(roles *service.RoleService, authService service.IAuthService) *RoleHandler {
	return &RoleHandler{
		roles:       roles,
		authService: authService,
	}
}

func (h *RoleHandler) RegisterRoutes(router *gin.RouterGroup) {
	roles := router.Group("/roles")
	roles.Use(middleware.AuthMiddleware(h.authService))
	{
		roles.GET("", middleware.RequirePermission(h.roles, "Settings", "read"), h.ListRoles)
		roles.GET("/modules", middleware.RequirePermission(h.roles, "Settings", "read"), h.ListModules)
		roles.GET("/:id", middleware.RequirePermission(h.roles, "Settings", "read"), h.GetRole)
		roles.POST("", middleware.RequirePermission(h.roles, "Settings", "create"), h.CreateRole)
		roles.PUT("/:id", middleware.RequirePermission(h.roles, "Settings", "update"), h.UpdateRole)
		roles.DELETE("/:id", middleware.RequirePermission(h.roles, "Settings", "delete"), h.DeleteRole)
	}
}

func (h *RoleHandler) ListRoles(c *gin.Context) {
	roles, err := h.roles.ListRoles(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch roles"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"roles": roles})
}

// ListModules returns the modules and actions a permission table can grant,
// so the admin UI can render the grid without hardcoding it.
func (h *RoleHandler) ListModules(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"modules": models.Modules,
		"actions": models.Actions,
	})
}

func (h *RoleHandler) GetRole(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid role id"})
		return
	}
	role, err := h.roles.GetRole(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "role not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch role"})
		return
	}
	c.JSON(http.StatusOK, role)
}

func (h *RoleHandler) CreateRole(c *gin.Context) {
	var req types.CreateRoleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	role, err := h.roles.CreateRole(c.Request.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrSystemRole):
			c.JSON(http.StatusForbidden, gin.H{"error": "role name is reserved"})
		case errors.Is(err, service.ErrRoleExists):
			c.JSON(http.StatusConflict, gin.H{"error": "role already exists"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create role"})
		}
		return
	}
	c.JSON(http.StatusCreated, role)
}

func (h *RoleHandler) UpdateRole(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid role id"})
		return
	}
	var req types.UpdateRoleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	role, err := h.roles.UpdateRole(c.Request.Context(), id, &req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrSystemRole):
			c.JSON(http.StatusForbidden, gin.H{"error": "system role cannot be modified"})
		case errors.Is(err, gorm.ErrRecordNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "role not found"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update role"})
		}
		return
	}
	c.JSON(http.StatusOK, role)
}

func (h *RoleHandler) DeleteRole(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid role id"})
		return
	}
	if err := h.roles.DeleteRole(c.Request.Context(), id); err != nil {
		switch {
		case errors.Is(err, service.ErrSystemRole):
			c.JSON(http.StatusForbidden, gin.H{"error": "system role cannot be deleted"})
		case errors.Is(err, service.ErrRoleAssigned):
			c.JSON(http.StatusConflict, gin.H{"error": "role is assigned to employees"})
		case errors.Is(err, gorm.ErrRecordNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "role not found"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete role"})
		}
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "role deleted"})
}
