package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"vehicle-rental/internal/handler/api"
	"vehicle-rental/internal/handler/middleware"
	"vehicle-rental/internal/infra/metrics"
	"vehicle-rental/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

type Handlers struct {
	Vehicle     *api.VehicleHandler
	Location    *api.LocationHandler
	Search      *api.SearchSessionHandler
	Reservation *api.ReservationHandler
	Booking     *api.BookingHandler
	Review      *api.ReviewHandler
}

func NewRouter(
	engine *gin.Engine,
	cfg config.Config,
	logger *middleware.Logger,
	m *metrics.Metrics,
	h Handlers,
	authMiddleware *middleware.AuthMiddleware,
) {
	setupMiddleware(engine, cfg, logger, m)
	setupRoutes(engine, m, h, authMiddleware)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config, logger *middleware.Logger, m *metrics.Metrics) {
	slogger := logger.GetSlogLogger()
	// outermost, so panics in any later middleware are caught
	engine.Use(middleware.CustomRecovery(slogger))
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(logger.LoggingMiddleware())
	engine.Use(middleware.Metrics(m))
	engine.Use(middleware.ErrorHandler(slogger))
}

func setupRoutes(engine *gin.Engine, m *metrics.Metrics, h Handlers, authMiddleware *middleware.AuthMiddleware) {
	engine.GET("/health", healthCheck)
	engine.GET("/metrics", gin.WrapH(m.Handler()))

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	apiGroup := engine.Group("/api")
	{
		vehicles := apiGroup.Group("/vehicles")
		{
			addRoutes(vehicles, []route{
				{Method: http.MethodGet, Path: "", Handler: h.Vehicle.Search},
				{Method: http.MethodGet, Path: "/facets", Handler: h.Vehicle.Facets},
				{Method: http.MethodGet, Path: "/highlights", Handler: h.Vehicle.Highlights},
				{Method: http.MethodGet, Path: "/:id", Handler: h.Vehicle.Get},
				{Method: http.MethodGet, Path: "/:id/reviews", Handler: h.Review.ListByVehicle},
			})
		}

		addRoutes(apiGroup, []route{
			{Method: http.MethodGet, Path: "/locations", Handler: h.Location.List},
		})

		search := apiGroup.Group("/search-sessions")
		{
			addRoutes(search, []route{
				{Method: http.MethodPost, Path: "", Handler: h.Search.Create},
				{Method: http.MethodGet, Path: "/:id", Handler: h.Search.Get},
				{Method: http.MethodPatch, Path: "/:id", Handler: h.Search.Update},
			})
		}

		// Drafts are anonymous until submit; the token is read when present.
		reservations := apiGroup.Group("/reservations")
		reservations.Use(authMiddleware.OptionalAuth())
		{
			addRoutes(reservations, []route{
				{Method: http.MethodPost, Path: "", Handler: h.Reservation.Start},
				{Method: http.MethodGet, Path: "/:id", Handler: h.Reservation.Get},
				{Method: http.MethodPut, Path: "/:id/billing", Handler: h.Reservation.UpdateBilling},
				{Method: http.MethodPut, Path: "/:id/rental", Handler: h.Reservation.UpdateRental},
				{Method: http.MethodPut, Path: "/:id/payment", Handler: h.Reservation.UpdatePayment},
				{Method: http.MethodPut, Path: "/:id/consent", Handler: h.Reservation.UpdateConsent},
				{Method: http.MethodPost, Path: "/:id/advance", Handler: h.Reservation.Advance},
				{Method: http.MethodPost, Path: "/:id/back", Handler: h.Reservation.Back},
				{Method: http.MethodPost, Path: "/:id/submit", Handler: h.Reservation.Submit},
			})
		}

		addRoutes(apiGroup, []route{
			{Method: http.MethodGet, Path: "/bookings", Handler: h.Booking.List, Mw: []gin.HandlerFunc{authMiddleware.RequireAuth()}},
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
