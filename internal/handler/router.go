package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"invopay/internal/handler/api"
	"invopay/internal/handler/middleware"
	"invopay/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

func NewRouter(
	engine *gin.Engine,
	cfg config.Config,
	webhookHandler *api.WebhookHandler,
	invoiceHandler *api.InvoiceHandler,
	recurringHandler *api.RecurringHandler,
	paymentDetailsHandler *api.PaymentDetailsHandler,
	authMiddleware *middleware.AuthMiddleware,
) {
	setupMiddleware(engine, cfg)
	setupRoutes(engine, webhookHandler, invoiceHandler, recurringHandler, paymentDetailsHandler, authMiddleware)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.LoggingMiddleware(nil, cfg.Log))
	engine.Use(middleware.MetricsMiddleware())
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(
	engine *gin.Engine,
	webhookHandler *api.WebhookHandler,
	invoiceHandler *api.InvoiceHandler,
	recurringHandler *api.RecurringHandler,
	paymentDetailsHandler *api.PaymentDetailsHandler,
	authMiddleware *middleware.AuthMiddleware,
) {
	engine.GET("/health", healthCheck)
	engine.GET("/metrics", gin.WrapH(promhttp.Handler()))

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	apiGroup := engine.Group("/api")
	{
		// Authenticated by signature, not by bearer token.
		addRoutes(apiGroup, []route{
			{Method: http.MethodPost, Path: "/webhook", Handler: webhookHandler.Handle},
		})

		invoices := apiGroup.Group("/invoices")
		invoices.Use(authMiddleware.RequireAuth())
		{
			addRoutes(invoices, []route{
				{Method: http.MethodPost, Path: "", Handler: invoiceHandler.Create},
				{Method: http.MethodGet, Path: "", Handler: invoiceHandler.List},
				{Method: http.MethodGet, Path: "/:id", Handler: invoiceHandler.Get},
			})
		}

		recurring := apiGroup.Group("/recurring-payments")
		recurring.Use(authMiddleware.RequireAuth())
		{
			addRoutes(recurring, []route{
				{Method: http.MethodGet, Path: "/:externalId", Handler: recurringHandler.Get},
			})
		}

		paymentDetails := apiGroup.Group("/payment-details")
		paymentDetails.Use(authMiddleware.RequireAuth())
		{
			addRoutes(paymentDetails, []route{
				{Method: http.MethodPost, Path: "", Handler: paymentDetailsHandler.Submit},
			})
		}
	}
}

// @Summary Health check
// @Description Check if the service is healthy
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"message": "Service is healthy",
	})
}

func addRoutes(g *gin.RouterGroup, rs []route) {
	for _, r := range rs {
		h := r.Handler
		if len(r.Mw) > 0 {
			h = chainHandlers(append(r.Mw, r.Handler)...)
		}
		switch r.Method {
		case http.MethodGet:
			g.GET(r.Path, h)
		case http.MethodPost:
			g.POST(r.Path, h)
		case http.MethodPut:
			g.PUT(r.Path, h)
		case http.MethodPatch:
			g.PATCH(r.Path, h)
		case http.MethodDelete:
			g.DELETE(r.Path, h)
		default:
			g.Any(r.Path, h)
		}
	}
}

func chainHandlers(hs ...gin.HandlerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		for _, h := range hs {
			h(c)
			if c.IsAborted() {
				return
			}
		}
	}
}
