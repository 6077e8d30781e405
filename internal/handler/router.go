package handler

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"stock-ledger/internal/domain/user"
	"stock-ledger/internal/handler/api"
	"stock-ledger/internal/handler/middleware"
	"stock-ledger/internal/pkg/config"
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
	logger *slog.Logger,
	stockHandler *api.StockHandler,
	reservationHandler *api.ReservationHandler,
	authMiddleware *middleware.AuthMiddleware,
) {
	setupMiddleware(engine, cfg, logger)
	setupRoutes(engine, stockHandler, reservationHandler, authMiddleware)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config, logger *slog.Logger) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery(logger))
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS, logger))
	engine.Use(middleware.LoggingMiddleware(logger, cfg.Log))
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(engine *gin.Engine, stockHandler *api.StockHandler, reservationHandler *api.ReservationHandler, authMiddleware *middleware.AuthMiddleware) {
	engine.GET("/health", healthCheck)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	operator := authMiddleware.RequireRoleAtLeast(user.RoleOperator)
	admin := authMiddleware.RequireRoleAtLeast(user.RoleAdmin)

	apiGroup := engine.Group("/api")
	apiGroup.Use(authMiddleware.RequireAuth())
	{
		stock := apiGroup.Group("/stock")
		{
			addRoutes(stock, []route{
				{Method: http.MethodPost, Path: "", Handler: stockHandler.InitializeStock, Mw: []gin.HandlerFunc{operator}},
				{Method: http.MethodPost, Path: "/bulk-adjust", Handler: stockHandler.BulkAdjust, Mw: []gin.HandlerFunc{operator}},
				{Method: http.MethodGet, Path: "/:productId", Handler: stockHandler.GetStock},
				{Method: http.MethodDelete, Path: "/:productId", Handler: stockHandler.RemoveStock, Mw: []gin.HandlerFunc{admin}},
				{Method: http.MethodPost, Path: "/:productId/adjustments", Handler: stockHandler.AdjustOnHand, Mw: []gin.HandlerFunc{operator}},
				{Method: http.MethodGet, Path: "/:productId/adjustments", Handler: stockHandler.ListAdjustments, Mw: []gin.HandlerFunc{operator}},
			})
		}

		reservations := apiGroup.Group("/reservations")
		{
			addRoutes(reservations, []route{
				{Method: http.MethodPost, Path: "", Handler: reservationHandler.Reserve},
				{Method: http.MethodPost, Path: "/batch", Handler: reservationHandler.ReserveBatch},
				{Method: http.MethodGet, Path: "/:id", Handler: reservationHandler.GetReservation},
				{Method: http.MethodGet, Path: "/:id/events", Handler: reservationHandler.ListEvents},
				{Method: http.MethodPost, Path: "/:id/confirm", Handler: reservationHandler.Confirm, Mw: []gin.HandlerFunc{operator}},
				{Method: http.MethodPost, Path: "/:id/cancel", Handler: reservationHandler.Cancel, Mw: []gin.HandlerFunc{operator}},
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
