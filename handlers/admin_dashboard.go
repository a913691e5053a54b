package handlers

import (
	"math/rand"
	"net/http"

	"boutique/config"
	"boutique/models"

	"github.com/gin-gonic/gin"
)

// GetDashboard aggregates the back-office landing data: entity totals, the
// four newest products (with their categories) and the four most recent
// WhatsApp interactions. The views figure is simulated; no page-view
// tracking exists.
func GetDashboard(c *gin.Context) {
	var productCount, categoryCount, interactionCount int

	if err := config.DB.Get(&productCount, "SELECT COUNT(*) FROM products"); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to count products"})
		return
	}
	if err := config.DB.Get(&categoryCount, "SELECT COUNT(*) FROM categories"); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to count categories"})
		return
	}
	if err := config.DB.Get(&interactionCount, "SELECT COUNT(*) FROM whatsapp_interactions"); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to count interactions"})
		return
	}

	var productRows []productRow
	err := config.DB.Select(&productRows, `SELECT `+productColumns+`
		FROM products p
		LEFT JOIN categories c ON c.id = p.category_id
		ORDER BY p.created_at DESC
		LIMIT 4`)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch recent products"})
		return
	}

	recentProducts := make([]models.Product, 0, len(productRows))
	for _, row := range productRows {
		recentProducts = append(recentProducts, row.toProduct())
	}

	var recentInteractions []models.WhatsAppInteraction
	err = config.DB.Select(&recentInteractions, `
		SELECT id, product_id, product_name, user_agent, ip_address, created_at
		FROM whatsapp_interactions
		ORDER BY created_at DESC
		LIMIT 4`)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch recent interactions"})
		return
	}
	if recentInteractions == nil {
		recentInteractions = []models.WhatsAppInteraction{}
	}

	c.JSON(http.StatusOK, gin.H{
		"stats": gin.H{
			"products":              productCount,
			"categories":            categoryCount,
			"whatsapp_interactions": interactionCount,
			"today_views":           rand.Intn(1000) + 500,
		},
		"recent_products":     recentProducts,
		"recent_interactions": recentInteractions,
	})
}
