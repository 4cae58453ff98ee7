package handler

import (
	"log/slog"
	"net/http"

	"session-booking/internal/handler/api"
	"session-booking/internal/handler/middleware"
	"session-booking/internal/pkg/config"
	"session-booking/internal/pkg/jwt"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

type Handlers struct {
	Slots    *api.SlotHandler
	Flows    *api.FlowHandler
	Sessions *api.SessionHandler
}

func NewHandlers(slots *api.SlotHandler, flows *api.FlowHandler, sessions *api.SessionHandler) Handlers {
	return Handlers{Slots: slots, Flows: flows, Sessions: sessions}
}

func NewRouter(
	engine *gin.Engine,
	cfg config.Config,
	requestLogger *middleware.Logger,
	logger *slog.Logger,
	handlers Handlers,
	authMiddleware *middleware.AuthMiddleware,
) {
	setupMiddleware(engine, cfg, requestLogger, logger)
	setupRoutes(engine, handlers, authMiddleware)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config, requestLogger *middleware.Logger, logger *slog.Logger) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery(logger))
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS, logger))
	engine.Use(requestLogger.Middleware())
	engine.Use(middleware.ErrorHandler(logger))
}

func setupRoutes(engine *gin.Engine, h Handlers, authMiddleware *middleware.AuthMiddleware) {
	engine.GET("/health", healthCheck)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	apiGroup := engine.Group("/api")
	apiGroup.Use(authMiddleware.RequireAuth())
	{
		addRoutes(apiGroup, []route{
			{Method: http.MethodGet, Path: "/slots", Handler: h.Slots.List},
		})

		flows := apiGroup.Group("/flows")
		addRoutes(flows, []route{
			{Method: http.MethodPost, Path: "/primary", Handler: h.Flows.StartPrimary},
			{Method: http.MethodPost, Path: "/invite", Handler: h.Flows.StartInvite},
			{Method: http.MethodPost, Path: "/continue", Handler: h.Flows.Continue},
			{Method: http.MethodPost, Path: "/finalize", Handler: h.Flows.Finalize},
		})

		admin := apiGroup.Group("/admin")
		adminOnly := []gin.HandlerFunc{authMiddleware.RequireRole(jwt.RoleAdmin)}
		addRoutes(admin, []route{
			{Method: http.MethodGet, Path: "/sessions", Handler: h.Sessions.List, Mw: adminOnly},
			{Method: http.MethodGet, Path: "/sessions/:id", Handler: h.Sessions.Get, Mw: adminOnly},
		})
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
