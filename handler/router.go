package handler

import (
	"html/template"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/tieubaoca/motivate-be/middleware"
	"github.com/tieubaoca/motivate-be/service"
	"github.com/tieubaoca/motivate-be/utils"
	"github.com/tieubaoca/motivate-be/web"
	"go.uber.org/zap"
)

const (
	EndPointMotivation    = "/api/motivation"
	EndPointTest          = "/api/test"
	EndPointWebSocket     = "/ws/motivation"
	EndPointHealth        = "/health"
	EndPointMetrics       = "/metrics"
	EndPointIndex         = "/"
	EndPointTestDashboard = "/test-dashboard"
)

type RouterConfig struct {
	AllowedOrigins string
}

// NewRouter wires every endpoint onto a gin engine.
func NewRouter(cfg RouterConfig, motivation *service.MotivationService, logger *zap.Logger) *gin.Engine {
	router := gin.New()
	router.SetHTMLTemplate(template.Must(template.ParseFS(web.Templates, "templates/*.html")))

	origins := utils.ParseOrigins(cfg.AllowedOrigins)
	corsHandler := NewCorsHandler(origins)
	motivationHandler := NewMotivationHandler(motivation, logger)
	diagnosticHandler := NewDiagnosticHandler(motivation, logger)
	pageHandler := NewPageHandler()
	wsService := service.NewWebSocketService(motivation, origins, logger)

	router.Use(
		middleware.RequestID(),
		middleware.Logging(logger, EndPointHealth, EndPointMetrics),
		middleware.Recovery(logger),
	)

	router.GET(EndPointHealth, func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	router.GET(EndPointMetrics, gin.WrapH(promhttp.Handler()))

	router.GET(EndPointIndex, pageHandler.Index)
	router.GET(EndPointTestDashboard, pageHandler.TestDashboard)

	api := router.Group("/api")
	api.Use(corsHandler.CorsMiddleware)
	{
		api.POST("/motivation", motivationHandler.HandleMotivation)
		api.GET("/test", diagnosticHandler.HandleTest)
		api.OPTIONS("/*any", func(c *gin.Context) {})
	}

	router.GET(EndPointWebSocket, gin.WrapF(wsService.HandleAsk))

	return router
}
