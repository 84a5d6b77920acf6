package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"shareit/internal/handler/api"
	"shareit/internal/handler/middleware"
	"shareit/internal/pkg/config"
	"shareit/internal/usecase/shared"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

type Handlers struct {
	User    *api.UserHandler
	Item    *api.ItemHandler
	Booking *api.BookingHandler
	Request *api.RequestHandler
}

func NewRouter(engine *gin.Engine, cfg config.Config, h Handlers, idem shared.IdempotencyStore) {
	setupMiddleware(engine, cfg)
	setupRoutes(engine, h, idem)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.NewLogger(cfg.Log).LoggingMiddleware())
	engine.Use(middleware.MetricsMiddleware())
	if limit := middleware.NewRateLimitMiddleware(cfg.RateLimit); limit != nil {
		engine.Use(limit)
	}
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(engine *gin.Engine, h Handlers, idem shared.IdempotencyStore) {
	engine.GET("/health", healthCheck)
	engine.GET("/metrics", gin.WrapH(promhttp.Handler()))

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	users := engine.Group("/users")
	addRoutes(users, []route{
		{Method: http.MethodPost, Path: "", Handler: h.User.Create},
		{Method: http.MethodGet, Path: "", Handler: h.User.List},
		{Method: http.MethodGet, Path: "/:userId", Handler: h.User.Get},
		{Method: http.MethodPatch, Path: "/:userId", Handler: h.User.Update},
		{Method: http.MethodDelete, Path: "/:userId", Handler: h.User.Delete},
	})

	// search is the only item route that does not need an actor
	engine.GET("/items/search", h.Item.Search)

	items := engine.Group("/items")
	items.Use(middleware.RequireActor())
	addRoutes(items, []route{
		{Method: http.MethodPost, Path: "", Handler: h.Item.Create},
		{Method: http.MethodGet, Path: "", Handler: h.Item.ListOwn},
		{Method: http.MethodGet, Path: "/:itemId", Handler: h.Item.Get},
		{Method: http.MethodPatch, Path: "/:itemId", Handler: h.Item.Update},
		{Method: http.MethodDelete, Path: "/:itemId", Handler: h.Item.Delete},
		{Method: http.MethodPost, Path: "/:itemId/comment", Handler: h.Item.Comment},
	})

	bookings := engine.Group("/bookings")
	bookings.Use(middleware.RequireActor())
	addRoutes(bookings, []route{
		{Method: http.MethodPost, Path: "", Handler: h.Booking.Create, Mw: []gin.HandlerFunc{middleware.NewIdempotencyMiddleware(idem)}},
		{Method: http.MethodGet, Path: "", Handler: h.Booking.ListByBooker},
		{Method: http.MethodGet, Path: "/owner", Handler: h.Booking.ListByOwner},
		{Method: http.MethodGet, Path: "/:bookingId", Handler: h.Booking.Get},
		{Method: http.MethodPatch, Path: "/:bookingId", Handler: h.Booking.Decide},
	})

	requests := engine.Group("/requests")
	requests.Use(middleware.RequireActor())
	addRoutes(requests, []route{
		{Method: http.MethodPost, Path: "", Handler: h.Request.Create},
		{Method: http.MethodGet, Path: "", Handler: h.Request.ListOwn},
		{Method: http.MethodGet, Path: "/all", Handler: h.Request.ListOthers},
		{Method: http.MethodGet, Path: "/:requestId", Handler: h.Request.Get},
	})
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

// addRoutes registers route middleware as real gin handlers so that
// c.Next inside them reaches the route handler.
func addRoutes(g *gin.RouterGroup, rs []route) {
	for _, r := range rs {
		hs := append(append([]gin.HandlerFunc{}, r.Mw...), r.Handler)
		g.Handle(r.Method, r.Path, hs...)
	}
}
