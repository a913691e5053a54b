package handlers

import (
	"net/http"

	"boutique/settings"

	"github.com/gin-gonic/gin"
)

// GetSettings retrieves the store settings
func GetSettings(s *settings.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		current, err := s.Get()
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load settings"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"settings": current})
	}
}

// UpdateSettings replaces the store settings
func UpdateSettings(s *settings.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input settings.StoreSettings

		// Parse request body
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		if err := s.Save(input); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to save settings"})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"message":  "settings saved successfully",
			"settings": input,
		})
	}
}
