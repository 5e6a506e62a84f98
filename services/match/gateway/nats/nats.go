package nats

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/pairprep/pairprep/internal/pkg/constants"
	"github.com/pairprep/pairprep/internal/pkg/logger"
	"github.com/pairprep/pairprep/internal/pkg/models"
	natspkg "github.com/pairprep/pairprep/internal/pkg/nats"
)

// NATSGateway handles NATS gateway operations
type NATSGateway struct {
	natsClient *natspkg.Client
}

// NewNATSGateway creates a new NATS gateway instance
func NewNATSGateway(client *natspkg.Client) *NATSGateway {
	return &NATSGateway{
		natsClient: client,
	}
}

// PublishMatchFound publishes a match found event
func (g *NATSGateway) PublishMatchFound(ctx context.Context, result models.MatchResult) error {
	data, err := json.Marshal(result)
	if err != nil {
		return fmt.Errorf("failed to marshal match result: %w", err)
	}

	if err := g.natsClient.Publish(constants.SubjectMatchFound, data); err != nil {
		logger.ErrorCtx(ctx, "Failed to publish match found event",
			logger.String("session_id", result.SessionID),
			logger.String("user_a", result.UserA),
			logger.String("user_b", result.UserB),
			logger.Err(err))
		return fmt.Errorf("failed to publish match found event: %w", err)
	}

	logger.DebugCtx(ctx, "Published match found event",
		logger.String("session_id", result.SessionID),
		logger.String("subject", constants.SubjectMatchFound))

	return nil
}

// PublishMatchTimeout publishes an event for a waiter that left the pool
// without a pairing
func (g *NATSGateway) PublishMatchTimeout(ctx context.Context, event models.MatchTimeoutEvent) error {
	data, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal match timeout event: %w", err)
	}

	if err := g.natsClient.Publish(constants.SubjectMatchTimeout, data); err != nil {
		logger.ErrorCtx(ctx, "Failed to publish match timeout event",
			logger.String("user_id", event.UserID),
			logger.String("reason", event.Reason),
			logger.Err(err))
		return fmt.Errorf("failed to publish match timeout event: %w", err)
	}

	return nil
}
