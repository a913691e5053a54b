package middleware

import (
	"database/sql"
	"net/http"
	"strings"

	"boutique/config"
	"boutique/utils"

	"github.com/gin-gonic/gin"
)

// AuthMiddleware handles the authentication check via a bearer token
func AuthMiddleware(secret []byte) gin.HandlerFunc {
	return func(c *gin.Context) {
		// Get Authorization header
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "authorization header required"})
			c.Abort()
			return
		}

		// Extract token from "Bearer <token>"
		splitToken := strings.Split(authHeader, "Bearer ")
		if len(splitToken) != 2 {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid token format"})
			c.Abort()
			return
		}

		tokenString := splitToken[1]

		// Validate token
		claims, err := utils.ValidateToken(tokenString, secret)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
			c.Abort()
			return
		}

		// Set user ID and role in context
		c.Set("adminID", claims.UserID)
		c.Set("role", claims.Role)

		c.Next()
	}
}

// AdminRequired ensures the authenticated principal is still listed in the
// admin_users table. The token alone is not enough: a removed admin loses
// access on their next request.
func AdminRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		adminID, exists := c.Get("adminID")
		if !exists {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
			c.Abort()
			return
		}

		var id string
		err := config.DB.Get(&id, "SELECT id FROM admin_users WHERE id = ?", adminID)
		if err != nil {
			if err == sql.ErrNoRows {
				c.JSON(http.StatusForbidden, gin.H{"error": "admin privileges required"})
			} else {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "database error"})
			}
			c.Abort()
			return
		}

		c.Next()
	}
}
