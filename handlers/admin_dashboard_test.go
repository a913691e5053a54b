package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/gin-gonic/gin"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"boutique/config"
	"boutique/models"
)

func setupMockDB(t *testing.T) sqlmock.Sqlmock {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	config.DB = sqlx.NewDb(db, "sqlmock")
	return mock
}

func testGetContext(path string) (*gin.Context, *httptest.ResponseRecorder) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, path, nil)
	return c, w
}

var productRowColumns = []string{
	"id", "name", "description", "price", "original_price", "category_id",
	"sizes", "colors", "images", "is_new", "is_best_seller", "in_stock",
	"created_at", "updated_at", "cat_name", "cat_slug", "cat_image",
}

func TestGetDashboard(t *testing.T) {
	mock := setupMockDB(t)
	now := time.Now().UTC()

	mock.ExpectQuery(`SELECT COUNT\(\*\) FROM products`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(7))
	mock.ExpectQuery(`SELECT COUNT\(\*\) FROM categories`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(3))
	mock.ExpectQuery(`SELECT COUNT\(\*\) FROM whatsapp_interactions`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(12))

	mock.ExpectQuery(`FROM products p\s+LEFT JOIN categories c ON c.id = p.category_id\s+ORDER BY p.created_at DESC\s+LIMIT 4`).
		WillReturnRows(sqlmock.NewRows(productRowColumns).
			AddRow("p1", "Biquíni Sol", "Descrição", 89.90, nil, "c1",
				[]byte(`["M","G"]`), []byte(`["Azul"]`), []byte(`["img.jpg"]`),
				true, false, true, now, now, "Biquínis", "biquinis", "cat.jpg"))

	mock.ExpectQuery(`FROM whatsapp_interactions\s+ORDER BY created_at DESC\s+LIMIT 4`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "product_id", "product_name", "user_agent", "ip_address", "created_at"}).
			AddRow("i1", "p1", "Biquíni Sol", "agent", nil, now))

	c, w := testGetContext("/admin/dashboard")
	GetDashboard(c)

	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Stats struct {
			Products             int `json:"products"`
			Categories           int `json:"categories"`
			WhatsappInteractions int `json:"whatsapp_interactions"`
			TodayViews           int `json:"today_views"`
		} `json:"stats"`
		RecentProducts     []models.Product             `json:"recent_products"`
		RecentInteractions []models.WhatsAppInteraction `json:"recent_interactions"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))

	assert.Equal(t, 7, resp.Stats.Products)
	assert.Equal(t, 3, resp.Stats.Categories)
	assert.Equal(t, 12, resp.Stats.WhatsappInteractions)
	assert.GreaterOrEqual(t, resp.Stats.TodayViews, 500)

	require.Len(t, resp.RecentProducts, 1)
	assert.Equal(t, "Biquíni Sol", resp.RecentProducts[0].Name)
	require.NotNil(t, resp.RecentProducts[0].Category)
	assert.Equal(t, "biquinis", resp.RecentProducts[0].Category.Slug)

	require.Len(t, resp.RecentInteractions, 1)
	assert.Equal(t, "p1", resp.RecentInteractions[0].ProductID)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetDashboardEmptyStore(t *testing.T) {
	mock := setupMockDB(t)

	mock.ExpectQuery(`SELECT COUNT\(\*\) FROM products`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))
	mock.ExpectQuery(`SELECT COUNT\(\*\) FROM categories`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))
	mock.ExpectQuery(`SELECT COUNT\(\*\) FROM whatsapp_interactions`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))
	mock.ExpectQuery(`FROM products p`).
		WillReturnRows(sqlmock.NewRows(productRowColumns))
	mock.ExpectQuery(`FROM whatsapp_interactions`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "product_id", "product_name", "user_agent", "ip_address", "created_at"}))

	c, w := testGetContext("/admin/dashboard")
	GetDashboard(c)

	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		RecentProducts     []models.Product             `json:"recent_products"`
		RecentInteractions []models.WhatsAppInteraction `json:"recent_interactions"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.NotNil(t, resp.RecentProducts)
	assert.Empty(t, resp.RecentProducts)
	assert.Empty(t, resp.RecentInteractions)

	assert.NoError(t, mock.ExpectationsWereMet())
}
