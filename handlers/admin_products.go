package handlers

import (
	"net/http"

	"boutique/config"
	"boutique/models"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// CreateProduct adds a new product
func CreateProduct(c *gin.Context) {
	var input models.ProductInput

	// Parse request body
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	productID := uuid.NewString()

	query := `INSERT INTO products
		(id, name, description, price, original_price, category_id, sizes, colors, images, is_new, is_best_seller, in_stock)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
	_, err := config.DB.Exec(query,
		productID, input.Name, input.Description, input.Price, input.OriginalPrice,
		input.CategoryID, models.StringList(input.Sizes), models.StringList(input.Colors),
		models.StringList(input.Images), input.IsNew, input.IsBestSeller, input.InStock)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create product: " + err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message":    "product created successfully",
		"product_id": productID,
	})
}

// UpdateProduct modifies an existing product
func UpdateProduct(c *gin.Context) {
	productID := c.Param("id")

	var input models.ProductInput

	// Parse request body
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	query := `UPDATE products SET
		name = ?, description = ?, price = ?, original_price = ?, category_id = ?,
		sizes = ?, colors = ?, images = ?, is_new = ?, is_best_seller = ?, in_stock = ?
		WHERE id = ?`
	result, err := config.DB.Exec(query,
		input.Name, input.Description, input.Price, input.OriginalPrice,
		input.CategoryID, models.StringList(input.Sizes), models.StringList(input.Colors),
		models.StringList(input.Images), input.IsNew, input.IsBestSeller, input.InStock,
		productID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update product: " + err.Error()})
		return
	}

	rows, err := result.RowsAffected()
	if err == nil && rows == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "product not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "product updated successfully"})
}

// DeleteProduct removes a product
func DeleteProduct(c *gin.Context) {
	productID := c.Param("id")

	result, err := config.DB.Exec("DELETE FROM products WHERE id = ?", productID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete product: " + err.Error()})
		return
	}

	rows, err := result.RowsAffected()
	if err == nil && rows == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "product not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "product deleted successfully"})
}
