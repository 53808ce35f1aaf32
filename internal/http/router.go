package http

import (
	"github.com/gin-gonic/gin"

	"github.com/mrlokans/bookcatalog/internal/audit"
	"github.com/mrlokans/bookcatalog/internal/database"
)

// RouterConfig carries all dependencies the router needs. A config struct
// keeps the constructor signature stable as endpoints come and go.
type RouterConfig struct {
	Database     *database.Database
	ReviewStore  ReviewStore
	MongoPinger  MongoPinger
	AuditService *audit.Service

	TemplatesPath string
	StaticPath    string
	Version       string
}

// NewRouter creates and configures the HTTP router with all endpoints.
func NewRouter(cfg RouterConfig) *gin.Engine {
	router := gin.New()
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(RequestIDMiddleware())

	booksController := NewBooksController(cfg.Database, cfg.AuditService)
	reviewsController := NewReviewsController(cfg.ReviewStore, cfg.AuditService)
	health := NewHealthController(cfg.Database, cfg.MongoPinger, cfg.Version)

	// Health endpoints
	router.GET("/health", health.Status)
	router.GET("/ping", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"message": "pong",
		})
	})

	// Catalog API endpoints
	router.GET("/api/books", booksController.GetAllBooks)
	router.POST("/api/add_book", booksController.AddBook)
	router.GET("/api/search", booksController.SearchBooks)

	// Reviews API endpoints
	router.GET("/api/reviews", reviewsController.ListReviews)
	router.POST("/api/reviews", reviewsController.AddReview)
	router.DELETE("/api/reviews/:id", reviewsController.DeleteReview)

	// Audit trail
	if cfg.AuditService != nil {
		auditController := NewAuditController(cfg.AuditService)
		router.GET("/api/audit", auditController.ListEvents)
	}

	// Home page and static assets
	if cfg.TemplatesPath != "" {
		router.LoadHTMLGlob(cfg.TemplatesPath + "/*.html")
		uiController := NewUIController()
		router.GET("/", uiController.HomePage)
	}
	if cfg.StaticPath != "" {
		router.Static("/static", cfg.StaticPath)
	}

	return router
}
