package middleware

import (
	"time"

	"github.com/labstack/echo/v4"
	"github.com/pairprep/pairprep/internal/pkg/logger"
)

// RequestLoggerMiddleware logs every HTTP request with latency and status,
// at a level matching the response class.
func RequestLoggerMiddleware(zapLogger *logger.ZapLogger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()

			err := next(c)
			if err != nil {
				c.Error(err)
			}

			latency := time.Since(start)
			status := c.Response().Status

			fields := []logger.Field{
				logger.String("method", c.Request().Method),
				logger.String("path", c.Request().URL.Path),
				logger.String("client_ip", c.RealIP()),
				logger.String("request_id", c.Response().Header().Get(RequestIDHeader)),
				logger.Int("status", status),
				logger.Duration("latency", latency),
				logger.Int64("latency_ms", latency.Milliseconds()),
			}

			switch {
			case status >= 500:
				if err != nil {
					fields = append(fields, logger.Err(err))
				}
				zapLogger.Error("Server error", fields...)
			case status >= 400:
				zapLogger.Warn("Client error", fields...)
			default:
				zapLogger.Info("Request processed", fields...)
			}

			return nil
		}
	}
}
