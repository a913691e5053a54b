package handlers

import (
	"database/sql"
	"net/http"

	"boutique/config"
	"boutique/models"

	"github.com/gin-gonic/gin"
)

// productRow carries a product joined with its category columns
type productRow struct {
	models.Product
	CategoryName  sql.NullString `db:"cat_name"`
	CategorySlug  sql.NullString `db:"cat_slug"`
	CategoryImage sql.NullString `db:"cat_image"`
}

func (r productRow) toProduct() models.Product {
	p := r.Product
	if r.CategoryName.Valid {
		p.Category = &models.Category{
			ID:    p.CategoryID,
			Name:  r.CategoryName.String,
			Slug:  r.CategorySlug.String,
			Image: r.CategoryImage.String,
		}
	}
	return p
}

const productColumns = `
	p.id, p.name, p.description, p.price, p.original_price, p.category_id,
	p.sizes, p.colors, p.images, p.is_new, p.is_best_seller, p.in_stock,
	p.created_at, p.updated_at,
	c.name AS cat_name, c.slug AS cat_slug, c.image AS cat_image`

// GetAllProducts retrieves the catalog, newest first. Optional query
// parameters: category (slug), search, new=true, best_seller=true.
func GetAllProducts(c *gin.Context) {
	query := `SELECT ` + productColumns + `
		FROM products p
		LEFT JOIN categories c ON c.id = p.category_id`

	var conds []string
	var args []interface{}

	if slug := c.Query("category"); slug != "" {
		conds = append(conds, "c.slug = ?")
		args = append(args, slug)
	}
	if search := c.Query("search"); search != "" {
		conds = append(conds, "(p.name LIKE ? OR p.description LIKE ?)")
		args = append(args, "%"+search+"%", "%"+search+"%")
	}
	if c.Query("new") == "true" {
		conds = append(conds, "p.is_new = TRUE")
	}
	if c.Query("best_seller") == "true" {
		conds = append(conds, "p.is_best_seller = TRUE")
	}

	for i, cond := range conds {
		if i == 0 {
			query += " WHERE " + cond
		} else {
			query += " AND " + cond
		}
	}
	query += " ORDER BY p.created_at DESC"

	var rows []productRow
	if err := config.DB.Select(&rows, query, args...); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch products"})
		return
	}

	products := make([]models.Product, 0, len(rows))
	for _, row := range rows {
		products = append(products, row.toProduct())
	}

	c.JSON(http.StatusOK, gin.H{"products": products})
}

// GetProduct retrieves a specific product by ID
func GetProduct(c *gin.Context) {
	product, err := fetchProduct(c.Param("id"))
	if err != nil {
		if err == sql.ErrNoRows {
			c.JSON(http.StatusNotFound, gin.H{"error": "product not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch product"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"product": product})
}

// fetchProduct loads one product with its category
func fetchProduct(id string) (models.Product, error) {
	var row productRow
	err := config.DB.Get(&row, `SELECT `+productColumns+`
		FROM products p
		LEFT JOIN categories c ON c.id = p.category_id
		WHERE p.id = ?`, id)
	if err != nil {
		return models.Product{}, err
	}
	return row.toProduct(), nil
}

// GetCategories retrieves all categories with their product counts
func GetCategories(c *gin.Context) {
	var categories []models.Category
	err := config.DB.Select(&categories,
		`SELECT id, name, slug, image, created_at, updated_at FROM categories ORDER BY name`)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch categories"})
		return
	}

	// one count-only query per category
	for i := range categories {
		var count int
		err := config.DB.Get(&count,
			"SELECT COUNT(*) FROM products WHERE category_id = ?", categories[i].ID)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to count products"})
			return
		}
		categories[i].ProductCount = count
	}

	c.JSON(http.StatusOK, gin.H{"categories": categories})
}
