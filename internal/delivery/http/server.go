package http

import (
	"context"
	stderrors "errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/compress"
	fiberSwagger "github.com/swaggo/fiber-swagger"
	"github.com/vaccination-dashboard/internal/config"
	"github.com/vaccination-dashboard/internal/delivery/http/handler"
	"github.com/vaccination-dashboard/internal/delivery/http/middleware"
	"github.com/vaccination-dashboard/internal/pkg/errors"
	"github.com/vaccination-dashboard/internal/pkg/metrics"
	"github.com/vaccination-dashboard/internal/pkg/utils"
	"go.uber.org/zap"
)

const APIPrefix = "/api/v1"

// HealthChecker - зависимость, состояние которой попадает в /health
type HealthChecker interface {
	Health(ctx context.Context) error
}

// Server - HTTP сервер на основе Fiber
type Server struct {
	app     *fiber.App
	config  *config.Config
	logger  *zap.Logger
	metrics *metrics.Manager

	// Handlers
	dashboardHandler *handler.DashboardHandler
	pageHandler      *handler.PageHandler

	health HealthChecker
}

// NewServer - создание нового HTTP сервера. health может быть nil,
// когда данные читаются из файлов.
func NewServer(
	cfg *config.Config,
	logger *zap.Logger,
	m *metrics.Manager,
	dashboardHandler *handler.DashboardHandler,
	pageHandler *handler.PageHandler,
	health HealthChecker,
) *Server {
	app := fiber.New(fiber.Config{
		AppName:      "Vaccination Dashboard",
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
		ErrorHandler: customErrorHandler(logger),
	})

	s := &Server{
		app:              app,
		config:           cfg,
		logger:           logger,
		metrics:          m,
		dashboardHandler: dashboardHandler,
		pageHandler:      pageHandler,
		health:           health,
	}

	s.setupMiddlewares()
	s.setupRoutes()

	return s
}

// App - доступ к fiber.App (для тестов через app.Test)
func (s *Server) App() *fiber.App {
	return s.app
}

// setupMiddlewares - настройка middleware
func (s *Server) setupMiddlewares() {
	s.app.Use(middleware.Recovery(s.logger))
	s.app.Use(middleware.Logger(s.logger, s.metrics))
	s.app.Use(middleware.CORS(s.config.Server.CORSOrigins))
	s.app.Use(compress.New(compress.Config{
		Level: compress.LevelBestSpeed,
	}))
}

// setupRoutes - настройка маршрутов
func (s *Server) setupRoutes() {
	// Swagger documentation route
	s.app.Get("/swagger/*", fiberSwagger.WrapHandler)

	if s.config.Metrics.Enabled && s.metrics != nil {
		s.app.Get("/metrics", adaptor.HTTPHandler(s.metrics.Handler()))
	}

	if s.pageHandler != nil {
		s.app.Get("/", s.pageHandler.RenderDashboard)
	}

	api := s.app.Group(APIPrefix)

	// Health check
	api.Get("/health", s.healthCheck)

	api.Get("/options", s.dashboardHandler.GetOptions)
	api.Get("/dashboard", s.dashboardHandler.GetDashboard)

	// Map routes
	api.Get("/map", s.dashboardHandler.GetMap)
	api.Get("/map.geojson", s.dashboardHandler.GetMapGeoJSON)
	api.Get("/map.png", s.dashboardHandler.GetMapImage)

	// Detail routes
	api.Get("/detail", s.dashboardHandler.GetDetail)
	api.Get("/detail/geometry.png", s.dashboardHandler.GetRegionImage)

	// Trend routes
	api.Get("/trend", s.dashboardHandler.GetTrend)
	api.Get("/trend.png", s.dashboardHandler.GetTrendImage)
}

// healthCheck godoc
// @Summary Health check
// @Tags Health
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Failure 503 {object} map[string]interface{}
// @Router /api/v1/health [get]
func (s *Server) healthCheck(c *fiber.Ctx) error {
	status := fiber.Map{
		"status": "healthy",
		"source": s.config.Data.Source,
		"time":   time.Now(),
	}

	if s.health != nil {
		ctx, cancel := context.WithTimeout(c.Context(), 2*time.Second)
		defer cancel()
		if err := s.health.Health(ctx); err != nil {
			s.logger.Warn("Health check failed", zap.Error(err))
			status["status"] = "degraded"
			status["error"] = err.Error()
			return c.Status(fiber.StatusServiceUnavailable).JSON(status)
		}
	}

	return c.JSON(status)
}

// Start - запуск HTTP сервера
func (s *Server) Start() error {
	addr := s.config.GetServerAddr()
	s.logger.Info("Starting HTTP server", zap.String("address", addr))
	return s.app.Listen(addr)
}

// Shutdown - graceful shutdown HTTP сервера
func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("Shutting down HTTP server")
	return s.app.ShutdownWithContext(ctx)
}

// customErrorHandler - кастомный обработчик ошибок
func customErrorHandler(logger *zap.Logger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		var fiberErr *fiber.Error
		if stderrors.As(err, &fiberErr) {
			if fiberErr.Code >= fiber.StatusInternalServerError {
				logger.Error("HTTP Error", zap.String("path", c.Path()), zap.Int("status", fiberErr.Code), zap.Error(err))
			}
			return c.Status(fiberErr.Code).JSON(utils.ErrorResponse{
				Error: errors.New(codeForStatus(fiberErr.Code), fiberErr.Message, fiberErr.Code),
			})
		}

		logger.Error("HTTP Error",
			zap.String("path", c.Path()),
			zap.Error(err),
		)
		return utils.SendError(c, err)
	}
}

func codeForStatus(status int) string {
	switch status {
	case fiber.StatusNotFound:
		return "NOT_FOUND"
	case fiber.StatusMethodNotAllowed:
		return "METHOD_NOT_ALLOWED"
	case fiber.StatusBadRequest:
		return "INVALID_REQUEST"
	}
	return errors.ErrInternalServer.Code
}
