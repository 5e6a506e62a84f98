package middleware

import (
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pairprep/pairprep/internal/pkg/logger"
)

// RequestIDHeader is the header carrying the request ID across services
const RequestIDHeader = "X-Request-ID"

// RequestIDMiddleware assigns a request ID to every request (reusing the
// caller's when present) and threads it through the request context so log
// lines and downstream HTTP calls correlate.
func RequestIDMiddleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			requestID := c.Request().Header.Get(RequestIDHeader)
			if requestID == "" {
				requestID = uuid.New().String()
			}

			ctx := logger.WithRequestID(c.Request().Context(), requestID)
			c.SetRequest(c.Request().WithContext(ctx))
			c.Response().Header().Set(RequestIDHeader, requestID)

			return next(c)
		}
	}
}
