package handlers

import (
	"database/sql"
	"net/http"

	"boutique/middleware"
	"boutique/models"
	"boutique/store"

	"github.com/gin-gonic/gin"
)

// GetFavorites retrieves the session's favorites list
func GetFavorites(c *gin.Context) {
	snapshot := middleware.SessionStore(c).Snapshot()
	favorites := snapshot.Favorites
	if favorites == nil {
		favorites = []models.Product{}
	}
	c.JSON(http.StatusOK, gin.H{"favorites": favorites})
}

// AddFavorite bookmarks a product. Adding a product that is already a
// favorite is a no-op.
func AddFavorite(c *gin.Context) {
	var input struct {
		ProductID string `json:"product_id" binding:"required"`
	}

	// Parse request body
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	product, err := fetchProduct(input.ProductID)
	if err != nil {
		if err == sql.ErrNoRows {
			c.JSON(http.StatusNotFound, gin.H{"error": "product not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch product"})
		return
	}

	state := middleware.SessionStore(c).Dispatch(store.AddToFavorites(product))
	c.JSON(http.StatusOK, gin.H{"favorites": state.Favorites})
}

// RemoveFavorite removes a product from the favorites list
func RemoveFavorite(c *gin.Context) {
	state := middleware.SessionStore(c).Dispatch(
		store.RemoveFromFavorites(c.Param("productID")))
	favorites := state.Favorites
	if favorites == nil {
		favorites = []models.Product{}
	}
	c.JSON(http.StatusOK, gin.H{"favorites": favorites})
}
