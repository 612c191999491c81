package router

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/olupoagric/storefront/internal/server/handlers"
)

// Handlers groups the HTTP adapters the router mounts.
type Handlers struct {
	Catalog  *handlers.CatalogHandler
	Calendar *handlers.CalendarHandler
	Session  *handlers.SessionHandler
}

// New wires the Gin engine with required routes and middlewares.
func New(h Handlers, logger *zap.Logger) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(zapLoggerMiddleware(logger))

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := r.Group("/api", handlers.Visitor())
	{
		api.GET("/products", h.Catalog.ListProducts)
		api.GET("/products/:id/purchase", h.Catalog.Purchase)
		api.GET("/calendar", h.Calendar.Page)
		api.GET("/calendar/entries", h.Catalog.CalendarEntries)
		api.PUT("/calendar/month", h.Calendar.SelectMonth)
		api.GET("/weather", h.Calendar.Weather)
		api.POST("/assistant", h.Calendar.Ask)
		api.GET("/session", h.Session.Get)
		api.POST("/session/actions", h.Session.Dispatch)
		api.GET("/services", handlers.Services)
	}

	if logger != nil {
		logger.Info("router initialized")
	}

	return r
}

func zapLoggerMiddleware(logger *zap.Logger) gin.HandlerFunc {
	if logger == nil {
		logger = zap.NewNop()
	}

	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		logger.Info("request completed",
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("duration", time.Since(start)),
			zap.String("client_ip", c.ClientIP()))
	}
}
