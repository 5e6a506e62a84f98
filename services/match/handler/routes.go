package handler

import (
	"github.com/labstack/echo/v4"
	"github.com/pairprep/pairprep/internal/pkg/middleware"
	"github.com/pairprep/pairprep/services/match"
	httpHandler "github.com/pairprep/pairprep/services/match/handler/http"
)

// Handler combines all handlers for the match service
type Handler struct {
	matchHTTP *httpHandler.MatchHandler
}

// NewHandler creates a new combined handler
func NewHandler(matchUC match.MatchUC) *Handler {
	return &Handler{
		matchHTTP: httpHandler.NewMatchHandler(matchUC),
	}
}

// RegisterRoutes registers all HTTP routes
func (h *Handler) RegisterRoutes(e *echo.Echo, apiKeyMiddleware *middleware.APIKeyMiddleware) {
	// Public match endpoints
	matchGroup := e.Group("/v1/match")
	matchGroup.POST("", h.matchHTTP.SubmitMatch)
	matchGroup.DELETE("/:userID", h.matchHTTP.CancelMatch)
	matchGroup.GET("/active/:userID", h.matchHTTP.ActiveSession)
	matchGroup.GET("/history/:userID", h.matchHTTP.MatchHistory)
	matchGroup.GET("/queue", h.matchHTTP.QueueSizes)

	// Internal routes for service-to-service communication (API key required)
	internal := e.Group("/internal", apiKeyMiddleware.ValidateAPIKey("match-service"))
	internal.DELETE("/sessions/:userID", h.matchHTTP.EndSession)
}
