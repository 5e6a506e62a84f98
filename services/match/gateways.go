package match

import (
	"context"

	"github.com/pairprep/pairprep/internal/pkg/models"
)

// MatchGW defines the match gateway interface: the external collaborators
// consulted during session finalization plus event publication.
type MatchGW interface {
	// GetQuestion asks the question service to pick a question for the pair
	GetQuestion(ctx context.Context, difficulty, topic, userA, userB string) (string, error)

	// CreateSession registers a collaborative session with the collab service
	CreateSession(ctx context.Context, session models.SessionRequest) error

	// PublishMatchFound publishes a match found event
	PublishMatchFound(ctx context.Context, result models.MatchResult) error

	// PublishMatchTimeout publishes an event for a waiter that left the pool
	// without a pairing
	PublishMatchTimeout(ctx context.Context, event models.MatchTimeoutEvent) error
}
