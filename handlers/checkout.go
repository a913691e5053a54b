package handlers

import (
	"database/sql"
	"io"
	"net/http"

	"boutique/middleware"
	"boutique/models"
	"boutique/store"
	"boutique/whatsapp"

	"github.com/gin-gonic/gin"
)

// checkoutInput is the optional checkout request body
type checkoutInput struct {
	Phone    string              `json:"phone"`
	Customer models.CustomerInfo `json:"customer"`
}

// bindCheckout parses the request body. A missing body is fine and yields
// zero input; the content length is not consulted, so chunked bodies are
// parsed like any other.
func bindCheckout(c *gin.Context) (checkoutInput, error) {
	var input checkoutInput
	if err := c.ShouldBindJSON(&input); err != nil && err != io.EOF {
		return checkoutInput{}, err
	}
	return input, nil
}

// Checkout folds the session's cart into a WhatsApp deep link and a locally
// synthesized order. The order is kept in the session and in the admin
// orders view only; nothing is written to the database except the per-line
// interaction log, which is fired in the background.
func Checkout(tracker *whatsapp.Tracker, adminOrders *store.Store, merchantPhone string) gin.HandlerFunc {
	return func(c *gin.Context) {
		input, err := bindCheckout(c)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		session := middleware.SessionStore(c)
		snapshot := session.Snapshot()
		if len(snapshot.Cart) == 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "cart is empty"})
			return
		}

		phone := input.Phone
		if phone == "" {
			phone = merchantPhone
		}

		message, link := whatsapp.CartLink(snapshot.Cart, phone)

		// One interaction per cart line, duplicates included
		userAgent := c.Request.UserAgent()
		clientIP := c.ClientIP()
		for _, item := range snapshot.Cart {
			go tracker.Track(item.Product, userAgent, clientIP)
		}

		order := whatsapp.NewOrderFromCart(snapshot.Cart, input.Customer)
		session.Dispatch(store.AddOrder(order))
		adminOrders.Dispatch(store.AddOrder(order))

		c.JSON(http.StatusOK, gin.H{
			"order":   order,
			"message": message,
			"link":    link,
		})
	}
}

// ProductWhatsAppLink builds the interest message and deep link for one
// product and records the interaction in the background
func ProductWhatsAppLink(tracker *whatsapp.Tracker, merchantPhone string) gin.HandlerFunc {
	return func(c *gin.Context) {
		product, err := fetchProduct(c.Param("id"))
		if err != nil {
			if err == sql.ErrNoRows {
				c.JSON(http.StatusNotFound, gin.H{"error": "product not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch product"})
			return
		}

		phone := c.Query("phone")
		if phone == "" {
			phone = merchantPhone
		}

		message, link := whatsapp.ProductLink(product, phone)

		go tracker.Track(product, c.Request.UserAgent(), c.ClientIP())

		c.JSON(http.StatusOK, gin.H{
			"message": message,
			"link":    link,
		})
	}
}

// GetSessionOrders retrieves the session's local order history
func GetSessionOrders(c *gin.Context) {
	snapshot := middleware.SessionStore(c).Snapshot()
	orders := snapshot.Orders
	if orders == nil {
		orders = []models.Order{}
	}
	c.JSON(http.StatusOK, gin.H{"orders": orders})
}
