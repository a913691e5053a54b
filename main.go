package main

import (
	"time"

	"boutique/config"
	"boutique/handlers"
	"boutique/middleware"
	"boutique/models"
	"boutique/settings"
	"boutique/store"
	"boutique/whatsapp"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

func main() {
	_ = godotenv.Load()

	log := logrus.New()

	cfg, err := config.Load()
	if err != nil {
		log.WithError(err).Fatal("failed to load configuration")
	}

	// Initialize database and apply migrations
	if err := config.InitDB(cfg.DatabaseDSN); err != nil {
		log.WithError(err).Fatal("failed to initialize database")
	}
	defer config.DB.Close()

	sessions := store.NewSessionManager()
	adminOrders := store.New()
	seedSampleOrders(adminOrders)

	tracker := whatsapp.NewTracker(config.DB, log)
	storeSettings := settings.NewStore(cfg.SettingsPath)
	jwtSecret := []byte(cfg.JWTSecret)

	// Create a new Gin router
	r := gin.Default()

	r.Use(middleware.CORSMiddleware())

	r.GET("/health-check", handlers.CheckConnection)

	// Public catalog routes (no session required)
	r.GET("/categories", handlers.GetCategories)
	r.GET("/products", handlers.GetAllProducts)
	r.GET("/products/:id", handlers.GetProduct)

	// Storefront routes (session-scoped state)
	shop := r.Group("/")
	shop.Use(middleware.Session(sessions))
	{
		shop.GET("/products/:id/whatsapp-link", handlers.ProductWhatsAppLink(tracker, cfg.MerchantPhone))

		// Cart routes
		shop.GET("/cart", handlers.GetCart)
		shop.POST("/cart/items", handlers.AddToCart)
		shop.PUT("/cart/items", handlers.UpdateCartItem)
		shop.DELETE("/cart/items", handlers.RemoveCartItem)
		shop.DELETE("/cart/items/:productID", handlers.RemoveCartProduct)
		shop.DELETE("/cart", handlers.ClearCart)

		// Favorites routes
		shop.GET("/favorites", handlers.GetFavorites)
		shop.POST("/favorites", handlers.AddFavorite)
		shop.DELETE("/favorites/:productID", handlers.RemoveFavorite)

		// Checkout route
		shop.POST("/checkout", handlers.Checkout(tracker, adminOrders, cfg.MerchantPhone))

		// Local order history
		shop.GET("/orders", handlers.GetSessionOrders)
	}

	// Auth routes
	r.POST("/admin/login", handlers.LoginAdmin(jwtSecret, cfg.TokenTTL))
	r.POST("/admin/logout", handlers.LogoutAdmin)

	// Admin-only routes
	admin := r.Group("/admin")
	admin.Use(middleware.AuthMiddleware(jwtSecret), middleware.AdminRequired())
	{
		admin.GET("/session", handlers.GetAdminSession)
		admin.GET("/dashboard", handlers.GetDashboard)

		// Product management
		admin.POST("/products", handlers.CreateProduct)
		admin.PUT("/products/:id", handlers.UpdateProduct)
		admin.DELETE("/products/:id", handlers.DeleteProduct)

		// Category management
		admin.POST("/categories", handlers.CreateCategory)
		admin.PUT("/categories/:id", handlers.UpdateCategory)
		admin.DELETE("/categories/:id", handlers.DeleteCategory)

		// Admin user management
		admin.GET("/users", handlers.ListAdminUsers)
		admin.POST("/users", handlers.CreateAdminUser)
		admin.PUT("/users/:id", handlers.UpdateAdminUser)
		admin.DELETE("/users/:id", handlers.DeleteAdminUser)

		// Order and interaction views
		admin.GET("/orders", handlers.ListOrders(adminOrders))
		admin.PUT("/orders/:id/status", handlers.UpdateOrderStatus(adminOrders))
		admin.GET("/interactions", handlers.ListInteractions)

		// Store settings
		admin.GET("/settings", handlers.GetSettings(storeSettings))
		admin.PUT("/settings", handlers.UpdateSettings(storeSettings))
	}

	// Start the server
	log.Infof("server starting on %s", cfg.HTTPAddr)
	if err := r.Run(cfg.HTTPAddr); err != nil {
		log.WithError(err).Fatal("server stopped")
	}
}

// seedSampleOrders fills the admin orders view with demonstration data when
// no checkout has happened yet
func seedSampleOrders(orders *store.Store) {
	now := time.Now().UTC()
	orders.Dispatch(store.SetOrders([]models.Order{
		{
			ID:              "order_001",
			CustomerName:    "Maria Silva",
			CustomerPhone:   "(62) 99999-9999",
			CustomerEmail:   "maria@email.com",
			DeliveryAddress: "Rua das Flores, 123 - Goiânia/GO",
			TotalAmount:     299.80,
			DeliveryFee:     0,
			Status:          models.OrderStatusPending,
			Items:           []models.OrderItem{},
			CreatedAt:       now,
		},
		{
			ID:              "order_002",
			CustomerName:    "Ana Costa",
			CustomerPhone:   "(62) 98888-8888",
			CustomerEmail:   "ana@email.com",
			DeliveryAddress: "Av. Principal, 456 - Aparecida/GO",
			TotalAmount:     189.90,
			DeliveryFee:     0,
			Status:          models.OrderStatusConfirmed,
			Items:           []models.OrderItem{},
			CreatedAt:       now.Add(-24 * time.Hour),
		},
	}))
}
