package api

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"mtdstore-backend/config"
	"mtdstore-backend/internal/middleware"
	"mtdstore-backend/internal/services"
	"mtdstore-backend/internal/store"
)

// NewRouter builds the Gin engine with all middleware and routes wired
func NewRouter(cfg *config.Config, st *store.Store) *gin.Engine {
	if cfg.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.Recovery())

	router.Use(middleware.CORS())
	router.Use(middleware.SecurityMiddleware(&middleware.SecurityConfig{
		MaxRequestSize:    cfg.MaxUploadSize,
		RateLimitRequests: cfg.RateLimitRequests,
		RateLimitWindow:   time.Duration(cfg.RateLimitWindow) * time.Second,
	}))

	authService := services.NewAuthService(cfg.JWTSecret, cfg.JWTExpiration)
	router.Use(middleware.NewAuthMiddleware(authService).OptionalAuth())

	authHandlers := NewAuthHandlers(st, cfg.JWTSecret, cfg.JWTExpiration)
	productHandlers := NewProductHandlers(st)
	orderHandlers := NewOrderHandlers(st)
	paymentHandlers := NewPaymentHandlers(st, cfg.CommissionRate)
	uploadHandlers := NewUploadHandlers(cfg)
	adminHandlers := NewAdminHandlers(st)

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// Uploaded product images and bundled static assets
	router.Static("/uploads", cfg.UploadDir)
	router.Static("/static", "./static")

	apiGroup := router.Group("/api")
	{
		apiGroup.POST("/login", authHandlers.Login)

		products := apiGroup.Group("/products")
		{
			products.GET("", productHandlers.GetProducts)
			products.POST("", productHandlers.AddProduct)
			products.PUT("/:id", productHandlers.UpdateProduct)
			products.DELETE("/:id", productHandlers.DeleteProduct)
		}

		orders := apiGroup.Group("/orders")
		{
			orders.GET("", orderHandlers.GetOrders)
			orders.POST("", orderHandlers.CreateOrder)
			orders.GET("/user/:username", orderHandlers.GetUserOrders)
			orders.GET("/seller/:sellerId", orderHandlers.GetSellerOrders)
		}

		seller := apiGroup.Group("/seller")
		{
			seller.GET("/upi", paymentHandlers.GetSellerUPI)
			seller.POST("/upi", paymentHandlers.SetSellerUPI)
		}

		apiGroup.POST("/payment/process", paymentHandlers.ProcessPayment)
		apiGroup.POST("/upload", uploadHandlers.UploadFile)

		admin := apiGroup.Group("/admin")
		{
			admin.GET("/commission", paymentHandlers.GetAdminCommission)
			admin.GET("/users", adminHandlers.GetAllUsers)
			admin.POST("/users", adminHandlers.AddUser)
			admin.DELETE("/users/:username", adminHandlers.DeleteUser)
			admin.GET("/stats", adminHandlers.GetAdminStats)
		}
	}

	return router
}
