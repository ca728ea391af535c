package delivery

import (
	"adsniper/internal/delivery/middleware"
	"adsniper/pkg/config"
	"adsniper/pkg/logger"
	"adsniper/pkg/metrics"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

type HTTPRouter struct {
	handlers *HTTPHandlers
	cfg      config.HTTPConfig
	logger   *logger.Logger
	metrics  *metrics.Metrics
}

func NewHTTPRouter(handlers *HTTPHandlers, cfg config.HTTPConfig, logger *logger.Logger, metrics *metrics.Metrics) *HTTPRouter {
	return &HTTPRouter{
		handlers: handlers,
		cfg:      cfg,
		logger:   logger,
		metrics:  metrics,
	}
}

func (r *HTTPRouter) SetupRoutes() *gin.Engine {
	gin.SetMode(gin.ReleaseMode)

	router := gin.New()

	router.Use(middleware.RequestID())
	router.Use(middleware.Logger(r.logger))
	router.Use(middleware.Recovery(r.logger))
	router.Use(middleware.Metrics(r.metrics))
	router.Use(middleware.WriteRateLimit(r.cfg.WriteRatePerSecond, r.cfg.WriteRateBurst))

	config := cors.DefaultConfig()
	config.AllowAllOrigins = true
	config.AllowMethods = []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"}
	config.AllowHeaders = []string{"Content-Type", "X-Request-ID"}
	config.ExposeHeaders = []string{"X-Request-ID"}

	router.Use(cors.New(config))

	// Health endpoint
	router.GET("/health", r.handlers.HealthCheck)

	// API v1 routes
	v1 := router.Group("/api/v1")
	{
		// Campaign record store
		campaigns := v1.Group("/campaigns")
		{
			campaigns.GET("", r.handlers.ListCampaigns)
			campaigns.POST("", r.handlers.CreateCampaign)
			campaigns.GET("/summary", r.handlers.GetSummary)
			campaigns.GET("/:id", r.handlers.GetCampaign)
			campaigns.PATCH("/:id", r.handlers.UpdateCampaign)
			campaigns.DELETE("/:id", r.handlers.DeleteCampaign)
		}

		// Geometry editor session
		editor := v1.Group("/editor")
		{
			editor.GET("/state", r.handlers.EditorState)
			editor.POST("/start", r.handlers.EditorStart)
			editor.POST("/points", r.handlers.EditorAddPoint)
			editor.POST("/commit", r.handlers.EditorCommit)
			editor.POST("/cancel", r.handlers.EditorCancel)
			editor.POST("/select", r.handlers.EditorSelect)
			editor.DELETE("/polygons/:id", r.handlers.EditorDeletePolygon)
			editor.DELETE("/polygons", r.handlers.EditorClearAll)
		}
	}

	// Prometheus metrics endpoint
	router.GET("/metrics", middleware.PrometheusHandler())

	return router
}
