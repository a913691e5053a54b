package handlers

import (
	"net/http"

	"boutique/config"
	"boutique/models"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// CreateCategory adds a new category
func CreateCategory(c *gin.Context) {
	var input models.CategoryInput

	// Parse request body
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	categoryID := uuid.NewString()

	query := `INSERT INTO categories (id, name, slug, image) VALUES (?, ?, ?, ?)`
	_, err := config.DB.Exec(query, categoryID, input.Name, input.Slug, input.Image)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create category: " + err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message":     "category created successfully",
		"category_id": categoryID,
	})
}

// UpdateCategory modifies an existing category
func UpdateCategory(c *gin.Context) {
	categoryID := c.Param("id")

	var input models.CategoryInput

	// Parse request body
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	query := `UPDATE categories SET name = ?, slug = ?, image = ? WHERE id = ?`
	result, err := config.DB.Exec(query, input.Name, input.Slug, input.Image, categoryID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update category: " + err.Error()})
		return
	}

	rows, err := result.RowsAffected()
	if err == nil && rows == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "category not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "category updated successfully"})
}

// DeleteCategory removes a category. Deleting a category that still has
// products fails on the foreign key; the driver message is surfaced.
func DeleteCategory(c *gin.Context) {
	categoryID := c.Param("id")

	result, err := config.DB.Exec("DELETE FROM categories WHERE id = ?", categoryID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete category: " + err.Error()})
		return
	}

	rows, err := result.RowsAffected()
	if err == nil && rows == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "category not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "category deleted successfully"})
}
