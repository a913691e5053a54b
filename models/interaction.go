package models

import (
	"time"
)

// WhatsAppInteraction is a best-effort record of a shopper expressing
// interest in a product via a WhatsApp deep link
type WhatsAppInteraction struct {
	ID          string    `db:"id" json:"id"`
	ProductID   string    `db:"product_id" json:"product_id"`
	ProductName string    `db:"product_name" json:"product_name"`
	UserAgent   *string   `db:"user_agent" json:"user_agent"`
	IPAddress   *string   `db:"ip_address" json:"ip_address"`
	CreatedAt   time.Time `db:"created_at" json:"created_at"`
}
