package models

import (
	"time"
)

// Category represents a product category
type Category struct {
	ID        string    `db:"id" json:"id"`
	Name      string    `db:"name" json:"name"`
	Slug      string    `db:"slug" json:"slug"`
	Image     string    `db:"image" json:"image"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
	UpdatedAt time.Time `db:"updated_at" json:"updated_at"`

	// ProductCount is filled by a separate count query, not stored
	ProductCount int `db:"-" json:"product_count,omitempty"`
}

// CategoryInput holds data for creating/updating a category
type CategoryInput struct {
	Name  string `json:"name" binding:"required"`
	Slug  string `json:"slug" binding:"required"`
	Image string `json:"image"`
}
