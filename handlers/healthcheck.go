package handlers

import (
	"net/http"

	"boutique/config"

	"github.com/gin-gonic/gin"
)

// CheckConnection reports whether the database is reachable
func CheckConnection(c *gin.Context) {
	err := config.DB.Ping()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "database connection failed"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "ok"})
}
