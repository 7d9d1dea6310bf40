package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/fx"

	"concert-reservation/internal/handler/api"
	"concert-reservation/internal/handler/middleware"
	"concert-reservation/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

type RouterParams struct {
	fx.In

	Engine             *gin.Engine
	Config             config.Config
	Logger             *middleware.Logger
	HTTPMetrics        *middleware.HTTPMetrics
	Gatherer           prometheus.Gatherer
	AuthHandler        *api.AuthHandler
	ConcertHandler     *api.ConcertHandler
	ReservationHandler *api.ReservationHandler
	AuthMiddleware     *middleware.AuthMiddleware
}

func NewRouter(p RouterParams) {
	setupMiddleware(p)
	setupRoutes(p)
}

func setupMiddleware(p RouterParams) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	p.Engine.Use(middleware.CustomRecovery())
	p.Engine.Use(middleware.NewCORSMiddleware(p.Config.CORS))
	p.Engine.Use(p.Logger.LoggingMiddleware())
	if p.Config.Metrics.Enabled {
		p.Engine.Use(p.HTTPMetrics.Middleware())
	}
	p.Engine.Use(middleware.ErrorHandler())
}

func setupRoutes(p RouterParams) {
	engine := p.Engine
	engine.GET("/health", healthCheck)

	if p.Config.Metrics.Enabled {
		engine.GET(p.Config.Metrics.Path, gin.WrapH(promhttp.HandlerFor(p.Gatherer, promhttp.HandlerOpts{})))
	}

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	requireAuth := p.AuthMiddleware.RequireAuth()

	apiGroup := engine.Group("/api")
	{
		auth := apiGroup.Group("/auth")
		{
			addRoutes(auth, []route{
				{Method: http.MethodPost, Path: "/login", Handler: p.AuthHandler.Login},
			})

			authRequired := auth.Group("")
			authRequired.Use(requireAuth)
			addRoutes(authRequired, []route{
				{Method: http.MethodPost, Path: "/logout", Handler: p.AuthHandler.Logout},
				{Method: http.MethodGet, Path: "/me", Handler: p.AuthHandler.Me},
			})
		}

		// static segments are registered alongside /:id; gin resolves them first
		concerts := apiGroup.Group("/concerts")
		concerts.Use(requireAuth)
		{
			addRoutes(concerts, []route{
				{Method: http.MethodPost, Path: "", Handler: p.ConcertHandler.Create},
				{Method: http.MethodGet, Path: "", Handler: p.ConcertHandler.List},
				{Method: http.MethodGet, Path: "/my-concerts", Handler: p.ConcertHandler.MyConcerts},
				{Method: http.MethodGet, Path: "/owner-stats", Handler: p.ConcertHandler.OwnerStats},
				{Method: http.MethodGet, Path: "/my-reservations", Handler: p.ReservationHandler.MyReservations},
				{Method: http.MethodGet, Path: "/history", Handler: p.ReservationHandler.MyHistory},
				{Method: http.MethodGet, Path: "/owner-history", Handler: p.ReservationHandler.OwnerHistory},
				{Method: http.MethodGet, Path: "/:id", Handler: p.ConcertHandler.Get},
				{Method: http.MethodGet, Path: "/:id/history", Handler: p.ReservationHandler.ConcertHistory},
				{Method: http.MethodPost, Path: "/:id/reserve", Handler: p.ReservationHandler.Reserve},
				{Method: http.MethodDelete, Path: "/:id/reserve", Handler: p.ReservationHandler.Cancel},
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
