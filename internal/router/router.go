package router

import (
	"github.com/gin-gonic/gin"

	"expensey/internal/config"
	"expensey/internal/handler"
	"expensey/internal/middleware"
)

// Setup configures the Gin engine with all routes and middleware.
func Setup(
	cfg *config.Config,
	parseH *handler.ParseHandler,
	txH *handler.TransactionHandler,
	usageH *handler.UsageHandler,
	healthH *handler.HealthHandler,
) *gin.Engine {
	r := gin.New()

	// Global middleware
	r.Use(middleware.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger())
	r.Use(middleware.CORS(cfg.CORS.AllowedOrigins))

	// Health checks
	r.GET("/healthz", healthH.Liveness)
	r.GET("/readyz", healthH.Readiness)

	v1 := r.Group("/api/v1")

	// Extraction is public; it touches no per-user state.
	v1.POST("/parse", parseH.Parse)

	// Persistence routes require an identity token.
	protected := v1.Group("")
	protected.Use(middleware.Auth(cfg.JWT))

	txs := protected.Group("/transactions")
	txs.POST("", txH.Create)
	txs.GET("", txH.List)
	txs.GET("/export", txH.Export)

	protected.GET("/usage", usageH.Get)

	return r
}
