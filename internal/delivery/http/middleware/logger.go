package middleware

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/vaccination-dashboard/internal/pkg/metrics"
	"go.uber.org/zap"
)

const HeaderRequestID = "X-Request-ID"

// Logger - middleware логирования запросов и записи HTTP метрик.
// Входящий X-Request-ID сохраняется, иначе генерируется новый.
func Logger(logger *zap.Logger, m *metrics.Manager) fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()

		requestID := c.Get(HeaderRequestID)
		if requestID == "" {
			requestID = uuid.NewString()
		}
		c.Set(HeaderRequestID, requestID)
		c.Locals("request_id", requestID)

		err := c.Next()
		if err != nil {
			// отдаём ошибку обработчику fiber, чтобы статус в логе был итоговым
			if hErr := c.App().ErrorHandler(c, err); hErr != nil {
				_ = c.SendStatus(fiber.StatusInternalServerError)
			}
		}

		duration := time.Since(start)
		status := c.Response().StatusCode()

		route := c.Route().Path
		if m != nil {
			m.ObserveHTTP(route, c.Method(), status, duration)
		}

		fields := []zap.Field{
			zap.String("request_id", requestID),
			zap.String("method", c.Method()),
			zap.String("path", c.Path()),
			zap.Int("status", status),
			zap.Duration("duration", duration),
		}
		switch {
		case status >= fiber.StatusInternalServerError:
			logger.Error("HTTP request", fields...)
		case status >= fiber.StatusBadRequest:
			logger.Warn("HTTP request", fields...)
		default:
			logger.Debug("HTTP request", fields...)
		}

		return nil
	}
}
