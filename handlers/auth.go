package handlers

import (
	"database/sql"
	"net/http"
	"time"

	"boutique/config"
	"boutique/models"
	"boutique/utils"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
)

const adminUserColumns = "id, email, name, password_hash, role, created_at"

// LoginAdmin authenticates an admin user and returns a JWT token
func LoginAdmin(secret []byte, ttl time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input models.AdminLoginInput

		// Parse request body
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		// Query admin user from database
		var user models.AdminUser
		err := config.DB.Get(&user,
			"SELECT "+adminUserColumns+" FROM admin_users WHERE email = ?", input.Email)
		if err != nil {
			if err == sql.ErrNoRows {
				c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid credentials"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "database error"})
			return
		}

		// Compare password
		err = bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(input.Password))
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid credentials"})
			return
		}

		// Generate JWT token
		token, err := utils.GenerateJWT(user.ID, user.Role, secret, ttl)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to generate token"})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"message": "login successful",
			"token":   token,
			"user":    user,
		})
	}
}

// LogoutAdmin acknowledges a sign-out. Tokens are stateless; dropping the
// token is the client's side of the contract.
func LogoutAdmin(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": "logout successful"})
}

// GetAdminSession returns the authenticated principal, re-verified against
// the admin_users table
func GetAdminSession(c *gin.Context) {
	adminID, exists := c.Get("adminID")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	var user models.AdminUser
	err := config.DB.Get(&user,
		"SELECT "+adminUserColumns+" FROM admin_users WHERE id = ?", adminID)
	if err != nil {
		if err == sql.ErrNoRows {
			c.JSON(http.StatusForbidden, gin.H{"error": "admin privileges required"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "database error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"user": user})
}
