package http

import (
	"net/http"
	"strconv"

	"storefront-service/internal/repository"

	"github.com/gin-gonic/gin"
)

const userIDKey = "userID"

// RequireUser resolves the caller's identity. The edge proxy authenticates
// sessions and forwards the user id in X-User-Id; requests without one are
// anonymous and rejected.
func RequireUser() gin.HandlerFunc {
	return func(c *gin.Context) {
		raw := c.GetHeader("X-User-Id")
		if raw == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
			return
		}
		userID, err := strconv.ParseUint(raw, 10, 64)
		if err != nil || userID == 0 {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid user id"})
			return
		}
		c.Set(userIDKey, userID)
		c.Next()
	}
}

// RequireAdmin gates the back office behind a user_roles lookup.
func RequireAdmin(roles repository.RoleRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		isAdmin, err := roles.IsAdmin(currentUserID(c))
		if err != nil {
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		if !isAdmin {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "admin access required"})
			return
		}
		c.Next()
	}
}

func currentUserID(c *gin.Context) uint64 {
	return c.GetUint64(userIDKey)
}
