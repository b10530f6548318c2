package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"hotelbooking/internal/domain"
	"hotelbooking/internal/pkg/response"
)

// RequireUserType ensures the authenticated user has one of the given
// account types.
func RequireUserType(types ...domain.UserType) gin.HandlerFunc {
	return func(c *gin.Context) {
		ut, exists := c.Get("user_type")
		if !exists {
			response.Error(c, http.StatusUnauthorized, "UNAUTHORIZED", "User type not found in token")
			c.Abort()
			return
		}

		current := domain.UserType(ut.(string))
		for _, t := range types {
			if current == t {
				c.Next()
				return
			}
		}

		response.Error(c, http.StatusForbidden, "FORBIDDEN", "Access denied: insufficient permissions")
		c.Abort()
	}
}

// AdminOnly requires an admin account.
func AdminOnly() gin.HandlerFunc {
	return RequireUserType(domain.TypeAdmin)
}

// OwnerOrAdmin requires a hotel owner or admin account.
func OwnerOrAdmin() gin.HandlerFunc {
	return RequireUserType(domain.TypeHotelOwner, domain.TypeAdmin)
}
