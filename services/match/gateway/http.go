package gateway

import (
	"context"
	"fmt"
	"net/url"

	httpclient "github.com/pairprep/pairprep/internal/pkg/http"
	"github.com/pairprep/pairprep/internal/pkg/logger"
	"github.com/pairprep/pairprep/internal/pkg/models"
)

// HTTPGateway wraps the question and collab service clients
type HTTPGateway struct {
	questionClient *httpclient.APIKeyClient
	collabClient   *httpclient.APIKeyClient
}

// NewHTTPGateway creates clients for both HTTP collaborators
func NewHTTPGateway(cfg *models.Config) *HTTPGateway {
	return &HTTPGateway{
		questionClient: httpclient.NewAPIKeyClient(&cfg.APIKey, "question-service", cfg.Services.QuestionServiceURL),
		collabClient:   httpclient.NewAPIKeyClient(&cfg.APIKey, "collab-service", cfg.Services.CollabServiceURL),
	}
}

// questionResponse is the question service's pick response
type questionResponse struct {
	QuestionID string `json:"question_id"`
}

// GetQuestion asks the question service to pick a question matching the
// pair's difficulty and topic
func (gw *HTTPGateway) GetQuestion(ctx context.Context, difficulty, topic, userA, userB string) (string, error) {
	endpoint := fmt.Sprintf("/internal/questions/pick?difficulty=%s&topic=%s&user_a=%s&user_b=%s",
		url.QueryEscape(difficulty), url.QueryEscape(topic),
		url.QueryEscape(userA), url.QueryEscape(userB))

	var resp questionResponse
	if err := gw.questionClient.GetJSON(ctx, endpoint, &resp); err != nil {
		logger.ErrorCtx(ctx, "Failed to fetch question",
			logger.String("difficulty", difficulty),
			logger.String("topic", topic),
			logger.ErrorField(err))
		return "", fmt.Errorf("failed to fetch question: %w", err)
	}

	if resp.QuestionID == "" {
		return "", fmt.Errorf("question service returned empty question id")
	}

	return resp.QuestionID, nil
}

// CreateSession registers a collaborative session with the collab service
func (gw *HTTPGateway) CreateSession(ctx context.Context, session models.SessionRequest) error {
	var resp map[string]string
	if err := gw.collabClient.PostJSON(ctx, "/internal/sessions", session, &resp); err != nil {
		logger.ErrorCtx(ctx, "Failed to register session",
			logger.String("session_id", session.SessionID),
			logger.String("user_a", session.UserA),
			logger.String("user_b", session.UserB),
			logger.ErrorField(err))
		return fmt.Errorf("failed to register session: %w", err)
	}

	return nil
}
