package models

import (
	"time"
)

// Product represents a catalog product. The storefront only reads products;
// writes go through the admin surface.
type Product struct {
	ID            string     `db:"id" json:"id"`
	Name          string     `db:"name" json:"name"`
	Description   string     `db:"description" json:"description"`
	Price         float64    `db:"price" json:"price"`
	OriginalPrice *float64   `db:"original_price" json:"original_price"`
	CategoryID    string     `db:"category_id" json:"category_id"`
	Sizes         StringList `db:"sizes" json:"sizes"`
	Colors        StringList `db:"colors" json:"colors"`
	Images        StringList `db:"images" json:"images"`
	IsNew         bool       `db:"is_new" json:"is_new"`
	IsBestSeller  bool       `db:"is_best_seller" json:"is_best_seller"`
	InStock       bool       `db:"in_stock" json:"in_stock"`
	CreatedAt     time.Time  `db:"created_at" json:"created_at"`
	UpdatedAt     time.Time  `db:"updated_at" json:"updated_at"`
	Category      *Category  `db:"-" json:"category,omitempty"`
}

// ProductInput holds data for creating/updating a product
type ProductInput struct {
	Name          string   `json:"name" binding:"required"`
	Description   string   `json:"description"`
	Price         float64  `json:"price" binding:"required"`
	OriginalPrice *float64 `json:"original_price"`
	CategoryID    string   `json:"category_id" binding:"required"`
	Sizes         []string `json:"sizes"`
	Colors        []string `json:"colors"`
	Images        []string `json:"images"`
	IsNew         bool     `json:"is_new"`
	IsBestSeller  bool     `json:"is_best_seller"`
	InStock       bool     `json:"in_stock"`
}
