package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/pairprep/pairprep/internal/pkg/constants"
)

// SetActiveSession marks a user as being in a session. The TTL bounds how
// long the marker survives if the collab service never reports the session
// ended.
func (r *MatchRepo) SetActiveSession(ctx context.Context, userID, sessionID string, ttl time.Duration) error {
	key := fmt.Sprintf(constants.KeyActiveSession, userID)
	if err := r.redisClient.Set(ctx, key, sessionID, ttl); err != nil {
		return fmt.Errorf("failed to set active session: %w", err)
	}
	return nil
}

// GetActiveSession returns the session the user is currently in, or ""
func (r *MatchRepo) GetActiveSession(ctx context.Context, userID string) (string, error) {
	key := fmt.Sprintf(constants.KeyActiveSession, userID)
	sessionID, err := r.redisClient.Get(ctx, key)
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", nil
		}
		return "", fmt.Errorf("failed to get active session: %w", err)
	}
	return sessionID, nil
}

// ClearActiveSession removes a user's active-session marker
func (r *MatchRepo) ClearActiveSession(ctx context.Context, userID string) error {
	key := fmt.Sprintf(constants.KeyActiveSession, userID)
	if err := r.redisClient.Delete(ctx, key); err != nil {
		return fmt.Errorf("failed to clear active session: %w", err)
	}
	return nil
}
