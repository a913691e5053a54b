package handlers

import (
	"database/sql"
	"net/http"

	"boutique/middleware"
	"boutique/models"
	"boutique/store"
	"boutique/whatsapp"

	"github.com/gin-gonic/gin"
)

func cartSummary(items []models.CartItem) models.CartSummary {
	totalItems := 0
	for _, item := range items {
		totalItems += item.Quantity
	}
	if items == nil {
		items = []models.CartItem{}
	}
	return models.CartSummary{
		ItemCount:   len(items),
		TotalItems:  totalItems,
		TotalAmount: whatsapp.CartTotal(items),
		Items:       items,
	}
}

// GetCart retrieves the session's current cart
func GetCart(c *gin.Context) {
	snapshot := middleware.SessionStore(c).Snapshot()
	c.JSON(http.StatusOK, gin.H{"cart": cartSummary(snapshot.Cart)})
}

// AddToCart adds a product to the cart. Adding the same
// (product, size, color) again increments the line's quantity.
func AddToCart(c *gin.Context) {
	var input models.CartItemInput

	// Parse request body
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if input.Quantity <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "quantity must be a positive integer"})
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

	state := middleware.SessionStore(c).Dispatch(store.AddToCart(models.CartItem{
		Product:  product,
		Size:     input.Size,
		Color:    input.Color,
		Quantity: input.Quantity,
	}))

	c.JSON(http.StatusOK, gin.H{"cart": cartSummary(state.Cart)})
}

// UpdateCartItem changes the quantity of a cart line. This handler is the
// single place where quantity <= 0 turns into a removal; the state store
// itself applies quantities verbatim.
func UpdateCartItem(c *gin.Context) {
	var input models.CartQuantityInput

	// Parse request body
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	key := models.CartKey{ProductID: input.ProductID, Size: input.Size, Color: input.Color}

	var action store.Action
	if input.Quantity <= 0 {
		action = store.RemoveFromCart(key)
	} else {
		action = store.UpdateCartQuantity(key, input.Quantity)
	}

	state := middleware.SessionStore(c).Dispatch(action)
	c.JSON(http.StatusOK, gin.H{"cart": cartSummary(state.Cart)})
}

// RemoveCartItem removes the exact (product, size, color) line
func RemoveCartItem(c *gin.Context) {
	var input models.CartKey

	// Parse request body
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	state := middleware.SessionStore(c).Dispatch(store.RemoveFromCart(input))
	c.JSON(http.StatusOK, gin.H{"cart": cartSummary(state.Cart)})
}

// RemoveCartProduct removes every line of a product regardless of variant
func RemoveCartProduct(c *gin.Context) {
	state := middleware.SessionStore(c).Dispatch(
		store.RemoveProductFromCart(c.Param("productID")))
	c.JSON(http.StatusOK, gin.H{"cart": cartSummary(state.Cart)})
}

// ClearCart empties the session's cart
func ClearCart(c *gin.Context) {
	state := middleware.SessionStore(c).Dispatch(store.ClearCart())
	c.JSON(http.StatusOK, gin.H{"cart": cartSummary(state.Cart)})
}
