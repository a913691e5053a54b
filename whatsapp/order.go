package whatsapp

import (
	"fmt"
	"math/rand"
	"time"

	"boutique/models"
)

// DefaultCustomerName is used when a checkout arrives without contact data,
// which is the normal case for the WhatsApp flow.
const DefaultCustomerName = "Cliente WhatsApp"

const suffixAlphabet = "0123456789abcdefghijklmnopqrstuvwxyz"

// newOrderID generates an order identifier from the current time plus a
// random suffix. It is not guaranteed unique; orders are never persisted, so
// collisions only matter within one session's volatile history.
func newOrderID(now time.Time) string {
	return fmt.Sprintf("order_%d_%s", now.UnixMilli(), randomSuffix(9))
}

func randomSuffix(n int) string {
	b := make([]byte, n)
	for i := range b {
		b[i] = suffixAlphabet[rand.Intn(len(suffixAlphabet))]
	}
	return string(b)
}

// NewOrderFromCart synthesizes an Order from the cart. The result is
// deterministic for identical inputs except for the generated identifiers:
// items, totals and the pending status are pure functions of the cart.
// Delivery is free, so total_amount equals the sum of the line totals.
func NewOrderFromCart(items []models.CartItem, customer models.CustomerInfo) models.Order {
	now := time.Now().UTC()

	orderItems := make([]models.OrderItem, 0, len(items))
	var subtotal float64
	for i, item := range items {
		lineTotal := item.Product.Price * float64(item.Quantity)
		subtotal += lineTotal
		orderItems = append(orderItems, models.OrderItem{
			ID:         fmt.Sprintf("item_%d_%d", i, now.UnixMilli()),
			Product:    item.Product,
			Quantity:   item.Quantity,
			UnitPrice:  item.Product.Price,
			TotalPrice: lineTotal,
			Size:       item.Size,
			Color:      item.Color,
		})
	}

	name := customer.Name
	if name == "" {
		name = DefaultCustomerName
	}

	const deliveryFee = 0 // frete grátis

	return models.Order{
		ID:              newOrderID(now),
		CustomerName:    name,
		CustomerPhone:   customer.Phone,
		CustomerEmail:   customer.Email,
		DeliveryAddress: customer.Address,
		TotalAmount:     subtotal + deliveryFee,
		DeliveryFee:     deliveryFee,
		Status:          models.OrderStatusPending,
		Items:           orderItems,
		CreatedAt:       now,
	}
}
