package middlewares

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"nsdrink-pos/config"
	"nsdrink-pos/utils"
)

// AuthMiddleware requires a valid bearer token and exposes its claims on the
// gin context.
func AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		token, found := strings.CutPrefix(header, "Bearer ")
		if !found || strings.TrimSpace(token) == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authorization token required"})
			return
		}

		claims, err := utils.ParseToken(strings.TrimSpace(token), config.App.JWTSecret)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired token"})
			return
		}

		c.Set(utils.CtxPhone, claims.Phone)
		c.Set(utils.CtxName, claims.Name)
		c.Set(utils.CtxRole, claims.Role)
		c.Next()
	}
}

// RoleMiddleware lets the request through only for the listed roles.
func RoleMiddleware(roles ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		role := utils.GetUserRole(c)
		for _, r := range roles {
			if r == role {
				c.Next()
				return
			}
		}
		c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Access denied"})
	}
}
