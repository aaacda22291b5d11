package router

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"invensight/internal/config"
	"invensight/internal/handler"
	"invensight/internal/middleware"
	"invensight/internal/service"
)

// Setup configures the Gin engine with all routes and middleware.
func Setup(
	cfg *config.Config,
	authSvc service.AuthService,
	authH *handler.AuthHandler,
	productH *handler.ProductHandler,
	reportH *handler.ReportHandler,
	userH *handler.UserHandler,
	healthH *handler.HealthHandler,
) *gin.Engine {
	r := gin.New()

	// Global middleware
	r.Use(middleware.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger())
	r.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.CORS.AllowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization", "X-Request-ID"},
		ExposeHeaders:    []string{"Content-Disposition"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// Health checks
	r.GET("/healthz", healthH.Liveness)
	r.GET("/readyz", healthH.Readiness)

	v1 := r.Group("/api/v1")

	// Public auth routes
	auth := v1.Group("/auth")
	auth.POST("/signup", authH.Signup)
	auth.POST("/login", authH.Login)

	// Protected routes - require valid JWT
	protected := v1.Group("")
	protected.Use(middleware.AuthMiddleware(authSvc))

	// Product records and analytics. The report routes are registered before
	// the :id route so Gin does not treat "stats" as a product id.
	products := protected.Group("/products")
	products.GET("/stats", reportH.Stats)
	products.GET("/sales-and-orders", reportH.SalesAndOrders)
	products.GET("/suppliers-and-categories", reportH.SuppliersAndCategories)
	products.GET("/suppliers", reportH.Suppliers)
	products.GET("/categories", reportH.Categories)
	products.GET("/reports/export", reportH.Export)
	products.GET("", productH.List)
	products.DELETE("/:id", productH.Delete)

	// User management
	users := protected.Group("/users")
	users.GET("", userH.List)
	users.PUT("/:id", userH.Update)

	return r
}
