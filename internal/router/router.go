package router

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/giandomeniconigro90-pixel/menu-lucciola/internal/menu"
	"github.com/giandomeniconigro90-pixel/menu-lucciola/internal/middleware"
	"github.com/giandomeniconigro90-pixel/menu-lucciola/internal/venue"
)

// New wires the board API. The display frontend lives on a different
// origin, so the read endpoints are open behind CORS.
func New(
	menuHandler *menu.Handler,
	venueHandler *venue.Handler,
	log *zap.Logger,
) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestLogger(log))

	r.Use(cors.New(cors.Config{
		AllowOrigins: []string{"*"},
		AllowMethods: []string{"GET", "POST"},
		AllowHeaders: []string{"Origin", "Content-Type"},
		MaxAge:       12 * time.Hour,
	}))

	// Health check route
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	menuGroup := r.Group("/menu")
	{
		menuGroup.GET("", menuHandler.GetMenu)
		menuGroup.GET("/categories/:key", menuHandler.GetCategory)
		menuGroup.GET("/search", menuHandler.Search)
		menuGroup.GET("/banner", menuHandler.GetBanner)
		menuGroup.GET("/vocabulary", menuHandler.GetVocabulary)
		menuGroup.POST("/reload", menuHandler.Reload)
	}

	if venueHandler != nil {
		r.GET("/status", venueHandler.GetStatus)
	}

	return r
}
