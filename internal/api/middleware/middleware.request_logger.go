package middleware

import (
	"time"

	"github.com/gofiber/fiber/v3"
	"github.com/sirupsen/logrus"

	"retail_sales/internal/logger"
)

// RequestLogger ghi log cho mỗi request vào request.log (method, path, status, latency).
// Đăng ký qua RegisterRouteWithMiddleware hoặc app.Use() ở tầng app.
func RequestLogger() fiber.Handler {
	log := logger.GetRequestLogger()
	return func(c fiber.Ctx) error {
		start := time.Now()

		err := c.Next()

		entry := log.WithFields(logrus.Fields{
			"method":     c.Method(),
			"path":       c.Path(),
			"query":      string(c.Request().URI().QueryString()),
			"status":     c.Response().StatusCode(),
			"latency_ms": time.Since(start).Milliseconds(),
			"ip":         c.IP(),
		})
		if err != nil {
			entry.WithError(err).Warn("Request failed")
		} else {
			entry.Info("Request completed")
		}
		return err
	}
}
