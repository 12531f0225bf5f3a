package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"shopdispatch/internal/domain/user"
	"shopdispatch/internal/handler/api"
	"shopdispatch/internal/handler/middleware"
	"shopdispatch/internal/pkg/config"
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
	pricingHandler *api.PricingHandler,
	requestHandler *api.RequestHandler,
	driverHandler *api.DriverHandler,
	deviceHandler *api.DeviceHandler,
	authMiddleware *middleware.AuthMiddleware,
) {
	setupMiddleware(engine, cfg)
	setupRoutes(engine, pricingHandler, requestHandler, driverHandler, deviceHandler, authMiddleware)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config) {
	// A wrong verb on a known path is 405, not 404.
	engine.HandleMethodNotAllowed = true

	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.NewLogger(cfg.Log).LoggingMiddleware())
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(
	engine *gin.Engine,
	pricingHandler *api.PricingHandler,
	requestHandler *api.RequestHandler,
	driverHandler *api.DriverHandler,
	deviceHandler *api.DeviceHandler,
	authMiddleware *middleware.AuthMiddleware,
) {
	engine.GET("/health", healthCheck)
	engine.GET("/metrics", gin.WrapH(promhttp.Handler()))

	apiGroup := engine.Group("/api")
	{
		// Fee quoting is public: customers see the breakdown before they
		// sign up or sign in.
		addRoutes(apiGroup.Group("/fees"), []route{
			{Method: http.MethodPost, Path: "/quote", Handler: pricingHandler.QuoteFees},
		})

		requests := apiGroup.Group("/requests")
		requests.Use(authMiddleware.RequireAuth())
		{
			addRoutes(requests, []route{
				{Method: http.MethodPost, Path: "", Handler: requestHandler.CreateRequest,
					Mw: []gin.HandlerFunc{authMiddleware.RequireRole(user.RoleCustomer)}},
				{Method: http.MethodGet, Path: "", Handler: requestHandler.ListMyRequests,
					Mw: []gin.HandlerFunc{authMiddleware.RequireRole(user.RoleCustomer)}},
				{Method: http.MethodGet, Path: "/:id", Handler: requestHandler.GetRequest},
				{Method: http.MethodPost, Path: "/:id/accept", Handler: requestHandler.AcceptRequest,
					Mw: []gin.HandlerFunc{authMiddleware.RequireRole(user.RoleDriver)}},
				{Method: http.MethodPost, Path: "/:id/cancel", Handler: requestHandler.CancelRequest,
					Mw: []gin.HandlerFunc{authMiddleware.RequireRole(user.RoleCustomer)}},
				{Method: http.MethodPost, Path: "/:id/complete", Handler: requestHandler.CompleteRequest,
					Mw: []gin.HandlerFunc{authMiddleware.RequireRole(user.RoleDriver)}},
			})
		}

		drivers := apiGroup.Group("/drivers")
		drivers.Use(authMiddleware.RequireAuth())
		{
			addRoutes(drivers, []route{
				{Method: http.MethodPatch, Path: "/status", Handler: driverHandler.UpdateStatus,
					Mw: []gin.HandlerFunc{authMiddleware.RequireRole(user.RoleDriver)}},
				{Method: http.MethodPost, Path: "/notify", Handler: driverHandler.NotifyDrivers,
					Mw: []gin.HandlerFunc{authMiddleware.RequireRole(user.RoleCustomer)}},
			})
		}

		devices := apiGroup.Group("/devices")
		devices.Use(authMiddleware.RequireAuth())
		{
			addRoutes(devices, []route{
				{Method: http.MethodPost, Path: "", Handler: deviceHandler.RegisterDevice},
			})
		}
	}
}

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
