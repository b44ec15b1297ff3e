package middleware

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/trichocare/backend/internal/models"
)

// RoleLookup resolves a role by name.
type RoleLookup interface {
	GetRoleByName(ctx context.Context, name string) (*models.Role, error)
}

// RequirePermission gates a route on the caller's role granting action on
// module. Runs after AuthMiddleware, which stores the role name in the
// context.
func RequirePermission(roles RoleLookup, module, action string) gin.HandlerFunc {
	return func(c *gin.Context) {
		roleName, exists := c.Get("role")
		if !exists {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "user not authenticated"})
			c.Abort()
			return
		}

		role, err := roles.GetRoleByName(c.Request.Context(), roleName.(string))
		if err != nil {
			c.JSON(http.StatusForbidden, gin.H{"error": "role not found"})
			c.Abort()
			return
		}

		if !role.Allows(module, action) {
			c.JSON(http.StatusForbidden, gin.H{"error": "insufficient permissions"})
			c.Abort()
			return
		}

		c.Next()
	}
}
