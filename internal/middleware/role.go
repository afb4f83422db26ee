package middleware

import (
	"net/http"

	"salonbooking/internal/domain"
	"salonbooking/internal/pkg/response"

	"github.com/gin-gonic/gin"
)

// RequireRole ensures that the authenticated user has the specified role.
// Role failures surface as 401, matching the rest of the API: the caller
// is simply not authorized for the operation.
func RequireRole(requiredRole domain.UserRole) gin.HandlerFunc {
	return func(c *gin.Context) {
		role, exists := c.Get("role")
		if !exists {
			response.Error(c, http.StatusUnauthorized, "UNAUTHORIZED", "Role not found in token")
			c.Abort()
			return
		}

		if role.(string) != string(requiredRole) {
			response.Error(c, http.StatusUnauthorized, "UNAUTHORIZED", "Access denied: insufficient permissions")
			c.Abort()
			return
		}

		c.Next()
	}
}

// AdminOnly middleware requires the ADMIN role
func AdminOnly() gin.HandlerFunc {
	return RequireRole(domain.RoleAdmin)
}

// ClientOnly middleware requires the CLIENT role
func ClientOnly() gin.HandlerFunc {
	return RequireRole(domain.RoleClient)
}
