package handlers

import (
	"net/http"

	"boutique/config"
	"boutique/models"
	"boutique/store"

	"github.com/gin-gonic/gin"
)

// ListOrders retrieves the admin-facing orders list. Orders are synthesized
// at checkout and kept in memory only.
func ListOrders(orders *store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		snapshot := orders.Snapshot()
		list := snapshot.Orders
		if list == nil {
			list = []models.Order{}
		}
		c.JSON(http.StatusOK, gin.H{"orders": list})
	}
}

// UpdateOrderStatus replaces the status of an order. Any state may move to
// any other; the status string is applied as sent.
func UpdateOrderStatus(orders *store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		orderID := c.Param("id")

		var input models.OrderStatusInput

		// Parse request body
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		state := orders.Dispatch(store.UpdateOrderStatus(orderID, input.Status))

		for _, order := range state.Orders {
			if order.ID == orderID {
				c.JSON(http.StatusOK, gin.H{
					"message": "order status updated",
					"order":   order,
				})
				return
			}
		}

		c.JSON(http.StatusNotFound, gin.H{"error": "order not found"})
	}
}

// ListInteractions retrieves the WhatsApp interaction log, newest first
func ListInteractions(c *gin.Context) {
	var interactions []models.WhatsAppInteraction
	err := config.DB.Select(&interactions, `
		SELECT id, product_id, product_name, user_agent, ip_address, created_at
		FROM whatsapp_interactions
		ORDER BY created_at DESC`)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch interactions"})
		return
	}

	if interactions == nil {
		interactions = []models.WhatsAppInteraction{}
	}
	c.JSON(http.StatusOK, gin.H{"interactions": interactions})
}
