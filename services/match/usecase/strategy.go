package usecase

import (
	"time"

	"github.com/pairprep/pairprep/internal/pkg/models"
)

// WaitingEntry represents one requester currently waiting in the pool.
type WaitingEntry struct {
	// Request is the originating match request; never mutated.
	Request models.MatchRequest

	// EnqueuedAt is when the entry entered the pool.
	EnqueuedAt time.Time

	// notify is the entry's single-slot handoff channel. Whichever path
	// removes the entry from pool and index under lock owns the one send;
	// the entry's own Submit call is the only receiver.
	notify chan models.MatchResult
}

// Strategy decides whether a compatible opponent for a newcomer exists in
// the current pool and, if so, which opponent and which shared language.
// Implementations must be pure: no pool mutation, no side effects, so the
// policy can be swapped without touching the coordinator's locking.
type Strategy interface {
	FindMatch(newcomer *models.MatchRequest, pool map[string][]*WaitingEntry) (*WaitingEntry, string)
}

// FirstLanguageStrategy pairs the newcomer with the oldest waiter in its
// bucket that shares at least one acceptable language. The shared language
// chosen is the first in the candidate's list that the newcomer also
// accepts.
type FirstLanguageStrategy struct{}

// FindMatch scans the newcomer's bucket in arrival order
func (FirstLanguageStrategy) FindMatch(newcomer *models.MatchRequest, pool map[string][]*WaitingEntry) (*WaitingEntry, string) {
	bucket := pool[BucketKey(newcomer.Difficulty, newcomer.Topic)]
	if len(bucket) == 0 {
		return nil, ""
	}

	accepted := make(map[string]struct{}, len(newcomer.Languages))
	for _, lang := range newcomer.Languages {
		accepted[lang] = struct{}{}
	}

	for _, candidate := range bucket {
		if candidate.Request.UserID == newcomer.UserID {
			continue
		}
		// Candidate list order decides which shared language wins.
		for _, lang := range candidate.Request.Languages {
			if _, ok := accepted[lang]; ok {
				return candidate, lang
			}
		}
	}

	return nil, ""
}
