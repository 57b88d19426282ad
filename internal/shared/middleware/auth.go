package middleware

import (
	"strings"

	"portfolio-backend/pkg/jwt"

	"github.com/gin-gonic/gin"
)

// StudioAuth guards the authoring API. Requests must carry a bearer token
// issued by the studio login endpoint.
func StudioAuth(manager *jwt.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.JSON(401, gin.H{"error": "missing authorization header"})
			c.Abort()
			return
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			c.JSON(401, gin.H{"error": "invalid authorization header format"})
			c.Abort()
			return
		}

		claims, err := manager.ValidateToken(parts[1])
		if err != nil {
			c.JSON(401, gin.H{"error": "invalid token"})
			c.Abort()
			return
		}

		if claims.Role != "admin" {
			c.JSON(403, gin.H{"error": "admin role required"})
			c.Abort()
			return
		}

		c.Set("studioUser", claims.Subject)
		c.Next()
	}
}
