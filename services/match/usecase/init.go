package usecase

import (
	"sync"

	"github.com/pairprep/pairprep/internal/pkg/models"
	"github.com/pairprep/pairprep/services/match"
)

// MatchUC implements the match use case interface. It owns the waiting pool
// and the user index; both are mutated only while holding mu, and the lock
// is never held across a blocking wait or an external call.
type MatchUC struct {
	cfg       *models.Config
	strategy  Strategy
	matchRepo match.MatchRepo
	matchGW   match.MatchGW

	mu sync.Mutex
	// pool maps a bucket key to its waiters in arrival order.
	pool map[string][]*WaitingEntry
	// index maps a user ID to its waiting entry for O(1) cancellation.
	// A user is in index iff its entry is in the bucket derived from that
	// entry's own difficulty and topic.
	index map[string]*WaitingEntry
}

// NewMatchUC creates a new match use case
func NewMatchUC(
	cfg *models.Config,
	strategy Strategy,
	matchRepo match.MatchRepo,
	matchGW match.MatchGW,
) *MatchUC {
	return &MatchUC{
		cfg:       cfg,
		strategy:  strategy,
		matchRepo: matchRepo,
		matchGW:   matchGW,
		pool:      make(map[string][]*WaitingEntry),
		index:     make(map[string]*WaitingEntry),
	}
}
