package match

import (
	"context"

	"github.com/pairprep/pairprep/internal/pkg/models"
)

// MatchUC defines the interface for match business logic
type MatchUC interface {
	// Submit blocks until the requester is paired, the wait budget elapses,
	// the request is canceled, or ctx is done. The zero MatchResult is the
	// no-match sentinel.
	Submit(ctx context.Context, req models.MatchRequest) (models.MatchResult, error)

	// Cancel removes a waiting requester and unblocks its Submit call.
	// Returns false if the requester is not currently waiting.
	Cancel(ctx context.Context, userID string) bool

	// QueueSizes reports the current number of waiters per bucket.
	QueueSizes() map[string]int

	// ActiveSession returns the session ID the user is currently in, or ""
	ActiveSession(ctx context.Context, userID string) (string, error)

	// EndSession clears a user's active-session marker
	EndSession(ctx context.Context, userID string) error

	// MatchHistory lists a user's finalized pairings, newest first
	MatchHistory(ctx context.Context, userID string) ([]*models.MatchRecord, error)
}
