package handler

import (
	"net/http"

	"football-field-booking/internal/handler/api"
	"football-field-booking/internal/handler/middleware"
	"football-field-booking/internal/pkg/config"

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
	Field    *api.FieldHandler
	Booking  *api.BookingHandler
	District *api.DistrictHandler
}

func NewRouter(engine *gin.Engine, cfg config.Config, logger *middleware.Logger, h Handlers, authMiddleware *middleware.AuthMiddleware) {
	setupMiddleware(engine, cfg, logger)
	setupRoutes(engine, h, authMiddleware)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config, logger *middleware.Logger) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(logger.LoggingMiddleware())
	engine.Use(middleware.ErrorHandler())

	engine.HandleMethodNotAllowed = true
	engine.NoRoute(middleware.NotFound)
	engine.NoMethod(middleware.MethodNotAllowed)
}

func setupRoutes(engine *gin.Engine, h Handlers, authMiddleware *middleware.AuthMiddleware) {
	engine.GET("/health", healthCheck)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	requireAuth := authMiddleware.RequireAuth()
	optionalAuth := authMiddleware.OptionalAuth()

	apiGroup := engine.Group("/api")
	{
		fields := apiGroup.Group("/fields")
		addRoutes(fields, []route{
			{Method: http.MethodGet, Path: "", Handler: h.Field.List, Mw: []gin.HandlerFunc{optionalAuth}},
			{Method: http.MethodPost, Path: "", Handler: h.Field.Create, Mw: []gin.HandlerFunc{requireAuth}},
			{Method: http.MethodGet, Path: "/:id", Handler: h.Field.Get},
			{Method: http.MethodPut, Path: "/:id", Handler: h.Field.Replace, Mw: []gin.HandlerFunc{requireAuth}},
			{Method: http.MethodPatch, Path: "/:id", Handler: h.Field.Update, Mw: []gin.HandlerFunc{requireAuth}},
			{Method: http.MethodDelete, Path: "/:id", Handler: h.Field.Delete, Mw: []gin.HandlerFunc{requireAuth}},
		})

		addRoutes(apiGroup, []route{
			{Method: http.MethodGet, Path: "/available-fields", Handler: h.Field.Available},
			{Method: http.MethodGet, Path: "/districts", Handler: h.District.List},
		})

		bookings := apiGroup.Group("/bookings")
		bookings.Use(requireAuth)
		{
			addRoutes(bookings, []route{
				{Method: http.MethodPost, Path: "", Handler: h.Booking.Create},
				{Method: http.MethodGet, Path: "", Handler: h.Booking.List},
				{Method: http.MethodGet, Path: "/:id", Handler: h.Booking.Get},
				{Method: http.MethodDelete, Path: "/:id", Handler: h.Booking.Delete},
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
