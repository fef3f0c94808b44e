package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/oakstay/hotel-booking-backend/internal/auth"
)

// RequireAdmin ensures the authenticated principal carries the admin role.
// It MUST be used after auth.AuthRequired middleware.
func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		if auth.GetRole(c) != auth.RoleAdmin {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "forbidden: admin access required"})
			return
		}

		c.Next()
	}
}
