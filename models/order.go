package models

import (
	"time"
)

// Order statuses. The initial status is always pending; every other
// transition is an explicit admin action.
const (
	OrderStatusPending   = "pending"
	OrderStatusConfirmed = "confirmed"
	OrderStatusShipped   = "shipped"
	OrderStatusDelivered = "delivered"
	OrderStatusCancelled = "cancelled"
)

// Order is a locally synthesized record of a checkout intent. Orders are not
// written to the database; the WhatsApp interaction log is the only durable
// trace of a checkout.
type Order struct {
	ID              string      `json:"id"`
	CustomerName    string      `json:"customer_name"`
	CustomerPhone   string      `json:"customer_phone"`
	CustomerEmail   string      `json:"customer_email"`
	DeliveryAddress string      `json:"delivery_address"`
	TotalAmount     float64     `json:"total_amount"`
	DeliveryFee     float64     `json:"delivery_fee"`
	Status          string      `json:"status"`
	Items           []OrderItem `json:"order_items"`
	CreatedAt       time.Time   `json:"created_at"`
}

// OrderItem is one line of an order
type OrderItem struct {
	ID         string  `json:"id"`
	Product    Product `json:"product"`
	Quantity   int     `json:"quantity"`
	UnitPrice  float64 `json:"unit_price"`
	TotalPrice float64 `json:"total_price"`
	Size       string  `json:"size,omitempty"`
	Color      string  `json:"color,omitempty"`
}

// CustomerInfo carries the optional contact fields collected at checkout
type CustomerInfo struct {
	Name    string `json:"name"`
	Phone   string `json:"phone"`
	Email   string `json:"email"`
	Address string `json:"address"`
}

// OrderStatusInput holds data for updating an order status
type OrderStatusInput struct {
	Status string `json:"status" binding:"required"`
}
