package middleware

import (
	"net/http"
	"strings"

	"bakehouse/utils"

	"github.com/gin-gonic/gin"
)

// Context keys set by the auth middleware.
const (
	ContextCustomerID = "customerID"
	ContextIsAdmin    = "isAdmin"
)

// AuthMiddleware validates the Bearer token and checks the session against
// the auth cache; a missing cache entry means the session was revoked.
func AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if !strings.HasPrefix(header, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "missing bearer token"})
			return
		}
		token := strings.TrimPrefix(header, "Bearer ")

		id, err := utils.ExtractIDFromToken(token)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid or expired token"})
			return
		}

		cache := utils.GetAuthCacheClient()
		key := utils.AuthCachePrefix + utils.HashToken(token)
		if err := cache.Get(c.Request.Context(), key).Err(); err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "session revoked or expired"})
			return
		}

		admin, _ := utils.IsAdminToken(token)
		c.Set(ContextCustomerID, id)
		c.Set(ContextIsAdmin, admin)
		c.Next()
	}
}

// AdminMiddleware requires an authenticated admin session. Must run after
// AuthMiddleware.
func AdminMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		if admin, ok := c.Get(ContextIsAdmin); !ok || admin != true {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "admin access required"})
			return
		}
		c.Next()
	}
}
