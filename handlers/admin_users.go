package handlers

import (
	"net/http"

	"boutique/config"
	"boutique/models"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// ListAdminUsers retrieves all admin users
func ListAdminUsers(c *gin.Context) {
	var users []models.AdminUser
	err := config.DB.Select(&users,
		"SELECT "+adminUserColumns+" FROM admin_users ORDER BY created_at DESC")
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch admin users"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"users": users})
}

// CreateAdminUser creates an admin account (only callable by another admin)
func CreateAdminUser(c *gin.Context) {
	var input models.AdminUserInput

	// Parse request body
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	role := input.Role
	if role == "" {
		role = "admin"
	}

	// Hash password
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to process password"})
		return
	}

	userID := uuid.NewString()

	query := `INSERT INTO admin_users (id, email, name, password_hash, role) VALUES (?, ?, ?, ?, ?)`
	_, err = config.DB.Exec(query, userID, input.Email, input.Name, hashedPassword, role)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create admin: " + err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "admin created successfully",
		"user_id": userID,
	})
}

// UpdateAdminUser modifies an admin user's email, name and role
func UpdateAdminUser(c *gin.Context) {
	userID := c.Param("id")

	var input models.AdminUserUpdateInput

	// Parse request body
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	role := input.Role
	if role == "" {
		role = "admin"
	}

	query := `UPDATE admin_users SET email = ?, name = ?, role = ? WHERE id = ?`
	result, err := config.DB.Exec(query, input.Email, input.Name, role, userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update admin: " + err.Error()})
		return
	}

	rows, err := result.RowsAffected()
	if err == nil && rows == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "admin user not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "admin updated successfully"})
}

// DeleteAdminUser removes an admin user. Admins cannot delete themselves.
func DeleteAdminUser(c *gin.Context) {
	userID := c.Param("id")

	if adminID, exists := c.Get("adminID"); exists && adminID == userID {
		c.JSON(http.StatusBadRequest, gin.H{"error": "cannot delete your own account"})
		return
	}

	result, err := config.DB.Exec("DELETE FROM admin_users WHERE id = ?", userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete admin: " + err.Error()})
		return
	}

	rows, err := result.RowsAffected()
	if err == nil && rows == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "admin user not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "admin deleted successfully"})
}
