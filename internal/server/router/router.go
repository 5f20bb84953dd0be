package router

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"farmtrack/internal/repository/records"
	"farmtrack/internal/server/handlers"
)

// Handlers bundles the HTTP adapters the router wires up.
type Handlers struct {
	Auth      *handlers.AuthHandler
	Crops     *handlers.CropHandler
	Livestock *handlers.LivestockHandler
	Sales     *handlers.SaleHandler
	Dashboard *handlers.DashboardHandler
	Reports   *handlers.ReportHandler
}

// New wires the Gin engine with required routes and middlewares.
func New(store *records.Store, h Handlers, logger *zap.Logger) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(zapLoggerMiddleware(logger))

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	api := r.Group("/api")

	authGroup := api.Group("/auth")
	authGroup.POST("/register", h.Auth.Register)
	authGroup.POST("/login", h.Auth.Login)
	authGroup.POST("/logout", h.Auth.Logout)
	authGroup.GET("/me", h.Auth.Me)

	protected := api.Group("")
	protected.Use(requireSession(store))

	protected.GET("/dashboard", h.Dashboard.Overview)

	protected.GET("/crops", h.Crops.List)
	protected.POST("/crops", h.Crops.Create)
	protected.PUT("/crops/:id", h.Crops.Update)
	protected.DELETE("/crops/:id", h.Crops.Delete)

	protected.GET("/livestock", h.Livestock.List)
	protected.POST("/livestock", h.Livestock.Create)
	protected.PUT("/livestock/:id", h.Livestock.Update)
	protected.DELETE("/livestock/:id", h.Livestock.Delete)

	protected.GET("/sales", h.Sales.List)
	protected.POST("/sales", h.Sales.Create)
	protected.DELETE("/sales/:id", h.Sales.Delete)
	protected.GET("/sales/summary", h.Sales.Summary)
	protected.GET("/sales/options", h.Sales.ItemOptions)

	protected.GET("/reports/stats", h.Dashboard.ReportStats)
	protected.GET("/reports/:kind", h.Reports.Download)

	if logger != nil {
		logger.Info("router initialized")
	}

	return r
}

// requireSession guards the record and report routes behind the persisted
// session pointer, the API analogue of the login-page redirect.
func requireSession(store *records.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		if _, ok := store.CurrentUser(); !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "login required"})
			return
		}
		c.Next()
	}
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
