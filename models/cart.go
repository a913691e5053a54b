package models

// CartItem represents one cart line: a product in a chosen size and color
type CartItem struct {
	Product  Product `json:"product"`
	Size     string  `json:"size,omitempty"`
	Color    string  `json:"color,omitempty"`
	Quantity int     `json:"quantity"`
}

// Key returns the identity of the line. Two cart lines with the same key are
// the same line; adding a matching item increments quantity instead of
// appending.
func (i CartItem) Key() CartKey {
	return CartKey{ProductID: i.Product.ID, Size: i.Size, Color: i.Color}
}

// CartKey identifies a cart line by (product id, size, color)
type CartKey struct {
	ProductID string `json:"product_id"`
	Size      string `json:"size,omitempty"`
	Color     string `json:"color,omitempty"`
}

// CartItemInput holds data for adding an item to the cart
type CartItemInput struct {
	ProductID string `json:"product_id" binding:"required"`
	Size      string `json:"size"`
	Color     string `json:"color"`
	Quantity  int    `json:"quantity"`
}

// CartQuantityInput holds data for changing the quantity of a cart line
type CartQuantityInput struct {
	ProductID string `json:"product_id" binding:"required"`
	Size      string `json:"size"`
	Color     string `json:"color"`
	Quantity  int    `json:"quantity"`
}

// CartSummary provides a summary of the cart with totals
type CartSummary struct {
	ItemCount   int        `json:"item_count"`
	TotalItems  int        `json:"total_items"`
	TotalAmount float64    `json:"total_amount"`
	Items       []CartItem `json:"items"`
}
