package api

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/dressforpleasure/storefront/internal/api/handlers"
	"github.com/dressforpleasure/storefront/internal/config"
)

// Services bundles the intake and sync services the router exposes.
type Services struct {
	Contact    handlers.ContactService
	Newsletter handlers.NewsletterService
	Sync       handlers.CatalogSyncService
}

// NewRouter creates and configures the Gin router
func NewRouter(cfg *config.Config, services Services, logger *zap.Logger) *gin.Engine {
	if cfg.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()

	// Middleware
	router.Use(gin.Recovery())
	router.Use(requestIDMiddleware())
	router.Use(loggingMiddleware(logger))

	// The storefront is served from a different origin, so the form
	// endpoints must answer preflight requests permissively.
	router.Use(cors.New(cors.Config{
		AllowOrigins: []string{"*"},
		AllowMethods: []string{"GET", "POST", "OPTIONS"},
		AllowHeaders: []string{"Content-Type"},
	}))

	router.HandleMethodNotAllowed = true
	router.NoMethod(func(c *gin.Context) {
		// The cors middleware only short-circuits preflights that carry an
		// Origin header; a bare OPTIONS would otherwise land here as a 405.
		if c.Request.Method == "OPTIONS" {
			c.Header("Access-Control-Allow-Origin", "*")
			c.Header("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
			c.Header("Access-Control-Allow-Headers", "Content-Type")
			c.Status(204)
			return
		}
		c.JSON(405, gin.H{"error": "Method not allowed"})
	})

	// Health check
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	api := router.Group("/api")
	{
		api.POST("/contact-form", handlers.HandleContactForm(services.Contact, logger))
		api.POST("/newsletter-signup", handlers.HandleNewsletterSignup(services.Newsletter, logger))
		api.POST("/sync-stripe-products", handlers.HandleSyncProducts(services.Sync, logger))
	}

	return router
}

// requestIDMiddleware tags each request with a correlation ID
func requestIDMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := c.GetHeader("X-Request-ID")
		if requestID == "" {
			requestID = uuid.NewString()
		}
		c.Set("request_id", requestID)
		c.Header("X-Request-ID", requestID)
		c.Next()
	}
}

// loggingMiddleware logs HTTP requests
func loggingMiddleware(logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		path := c.Request.URL.Path
		method := c.Request.Method

		c.Next()

		status := c.Writer.Status()
		logger.Info("HTTP request",
			zap.String("method", method),
			zap.String("path", path),
			zap.Int("status", status),
			zap.String("request_id", c.GetString("request_id")),
		)
	}
}
