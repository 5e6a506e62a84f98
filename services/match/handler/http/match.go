package http

import (
	"context"
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/pairprep/pairprep/internal/pkg/models"
	"github.com/pairprep/pairprep/services/match"
)

// MatchHandler handles HTTP requests for match operations
type MatchHandler struct {
	matchUC match.MatchUC
}

// NewMatchHandler creates a new match HTTP handler
func NewMatchHandler(matchUC match.MatchUC) *MatchHandler {
	return &MatchHandler{
		matchUC: matchUC,
	}
}

// MatchResponse is the response structure for a submit call
type MatchResponse struct {
	Matched bool                `json:"matched"`
	Message string              `json:"message,omitempty"`
	Result  *models.MatchResult `json:"result,omitempty"`
}

// SubmitMatch blocks until the caller is paired, the wait budget elapses
// or the request is canceled
func (h *MatchHandler) SubmitMatch(c echo.Context) error {
	var req models.MatchRequest
	if err := c.Bind(&req); err != nil {
		return BadRequestResponse(c, "Invalid request body: "+err.Error())
	}

	if req.UserID == "" {
		return BadRequestResponse(c, "User ID is required")
	}
	if req.Difficulty == "" {
		return BadRequestResponse(c, "Difficulty is required")
	}
	if req.Topic == "" {
		return BadRequestResponse(c, "Topic is required")
	}
	if len(req.Languages) == 0 {
		return BadRequestResponse(c, "At least one language is required")
	}

	result, err := h.matchUC.Submit(c.Request().Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, match.ErrAlreadyWaiting):
			return ErrorResponseHandler(c, http.StatusConflict, "A match request for this user is already waiting")
		case errors.Is(err, match.ErrActiveSession):
			return ErrorResponseHandler(c, http.StatusConflict, "User is already in an active session")
		case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
			// Client went away; the waiting entry has already been cleaned up.
			return err
		default:
			return ErrorResponseHandler(c, http.StatusInternalServerError, "Failed to process match request: "+err.Error())
		}
	}

	if !result.Matched() {
		return c.JSON(http.StatusOK, MatchResponse{
			Matched: false,
			Message: "No partner found within the wait budget",
		})
	}

	return c.JSON(http.StatusOK, MatchResponse{
		Matched: true,
		Result:  &result,
	})
}

// CancelMatch removes the user's waiting match request
func (h *MatchHandler) CancelMatch(c echo.Context) error {
	userID := c.Param("userID")
	if userID == "" {
		return BadRequestResponse(c, "User ID is required")
	}

	if !h.matchUC.Cancel(c.Request().Context(), userID) {
		return ErrorResponseHandler(c, http.StatusNotFound, "No waiting match request for this user")
	}

	return SuccessResponseWithData(c, http.StatusOK, "Match request canceled", nil)
}

// ActiveSession returns the session the user is currently in, if any
func (h *MatchHandler) ActiveSession(c echo.Context) error {
	userID := c.Param("userID")
	if userID == "" {
		return BadRequestResponse(c, "User ID is required")
	}

	sessionID, err := h.matchUC.ActiveSession(c.Request().Context(), userID)
	if err != nil {
		return ErrorResponseHandler(c, http.StatusInternalServerError, "Failed to look up active session: "+err.Error())
	}
	if sessionID == "" {
		return ErrorResponseHandler(c, http.StatusNotFound, "No active session for this user")
	}

	return SuccessResponseWithData(c, http.StatusOK, "Active session found", echo.Map{
		"user_id":    userID,
		"session_id": sessionID,
	})
}

// EndSession clears the user's active-session marker. Called by the collab
// service when a session finishes.
func (h *MatchHandler) EndSession(c echo.Context) error {
	userID := c.Param("userID")
	if userID == "" {
		return BadRequestResponse(c, "User ID is required")
	}

	if err := h.matchUC.EndSession(c.Request().Context(), userID); err != nil {
		return ErrorResponseHandler(c, http.StatusInternalServerError, "Failed to end session: "+err.Error())
	}

	return SuccessResponseWithData(c, http.StatusOK, "Session ended", nil)
}

// MatchHistory lists the user's finalized pairings, newest first
func (h *MatchHandler) MatchHistory(c echo.Context) error {
	userID := c.Param("userID")
	if userID == "" {
		return BadRequestResponse(c, "User ID is required")
	}

	records, err := h.matchUC.MatchHistory(c.Request().Context(), userID)
	if err != nil {
		return ErrorResponseHandler(c, http.StatusInternalServerError, "Failed to load match history: "+err.Error())
	}

	return SuccessResponseWithData(c, http.StatusOK, "Match history retrieved", records)
}

// QueueSizes reports the current number of waiters per bucket
func (h *MatchHandler) QueueSizes(c echo.Context) error {
	return SuccessResponseWithData(c, http.StatusOK, "Queue sizes retrieved", h.matchUC.QueueSizes())
}
