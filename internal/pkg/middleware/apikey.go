package middleware

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/pairprep/pairprep/internal/pkg/models"
)

const (
	// APIKeyHeader is the header carrying the service API key
	APIKeyHeader = "X-API-Key"
)

// APIKeyMiddleware validates API keys for service-to-service communication
type APIKeyMiddleware struct {
	serviceKeys map[string]string
}

// NewAPIKeyMiddleware creates an API key middleware from the configured keys
func NewAPIKeyMiddleware(config models.APIKeyConfig) *APIKeyMiddleware {
	return &APIKeyMiddleware{
		serviceKeys: map[string]string{
			"match-service":    config.MatchService,
			"question-service": config.QuestionService,
			"collab-service":   config.CollabService,
		},
	}
}

// ValidateAPIKey returns a middleware rejecting requests whose API key does
// not match one of the allowed services.
func (m *APIKeyMiddleware) ValidateAPIKey(allowedServices ...string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			apiKey := c.Request().Header.Get(APIKeyHeader)
			if apiKey == "" {
				return c.JSON(http.StatusUnauthorized, echo.Map{
					"error": "API key is required",
				})
			}

			// Check if the API key belongs to any of the allowed services
			validKey := false
			for _, service := range allowedServices {
				if m.serviceKeys[service] != "" && strings.EqualFold(apiKey, m.serviceKeys[service]) {
					validKey = true
					break
				}
			}

			if !validKey {
				return c.JSON(http.StatusUnauthorized, echo.Map{
					"error": "Invalid API key",
				})
			}

			return next(c)
		}
	}
}
