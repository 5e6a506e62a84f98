package usecase

import (
	"testing"
	"time"

	"github.com/pairprep/pairprep/internal/pkg/models"
	"github.com/stretchr/testify/assert"
)

func poolWith(entries ...*WaitingEntry) map[string][]*WaitingEntry {
	pool := make(map[string][]*WaitingEntry)
	for _, e := range entries {
		key := BucketKey(e.Request.Difficulty, e.Request.Topic)
		pool[key] = append(pool[key], e)
	}
	return pool
}

func waiting(userID, difficulty, topic string, languages ...string) *WaitingEntry {
	return &WaitingEntry{
		Request: models.MatchRequest{
			UserID:     userID,
			Difficulty: difficulty,
			Topic:      topic,
			Languages:  languages,
		},
		EnqueuedAt: time.Now(),
		notify:     make(chan models.MatchResult, 1),
	}
}

func TestFirstLanguageStrategy_EmptyPool(t *testing.T) {
	strategy := FirstLanguageStrategy{}

	newcomer := &models.MatchRequest{
		UserID:     "user-1",
		Difficulty: "easy",
		Topic:      "arrays",
		Languages:  []string{"go"},
	}

	opponent, language := strategy.FindMatch(newcomer, map[string][]*WaitingEntry{})

	assert.Nil(t, opponent)
	assert.Empty(t, language)
}

func TestFirstLanguageStrategy_PrefersOldestWaiter(t *testing.T) {
	strategy := FirstLanguageStrategy{}

	first := waiting("user-1", "easy", "arrays", "go", "python")
	second := waiting("user-2", "easy", "arrays", "go", "python")
	pool := poolWith(first, second)

	newcomer := &models.MatchRequest{
		UserID:     "user-3",
		Difficulty: "easy",
		Topic:      "arrays",
		Languages:  []string{"go"},
	}

	opponent, language := strategy.FindMatch(newcomer, pool)

	assert.Same(t, first, opponent)
	assert.Equal(t, "go", language)
}

func TestFirstLanguageStrategy_CandidateOrderPicksLanguage(t *testing.T) {
	strategy := FirstLanguageStrategy{}

	candidate := waiting("user-1", "medium", "graphs", "java", "python", "go")
	pool := poolWith(candidate)

	// The newcomer lists go first, but the candidate's order wins.
	newcomer := &models.MatchRequest{
		UserID:     "user-2",
		Difficulty: "medium",
		Topic:      "graphs",
		Languages:  []string{"go", "python"},
	}

	opponent, language := strategy.FindMatch(newcomer, pool)

	assert.Same(t, candidate, opponent)
	assert.Equal(t, "python", language)
}

func TestFirstLanguageStrategy_SkipsWaiterWithoutSharedLanguage(t *testing.T) {
	strategy := FirstLanguageStrategy{}

	noOverlap := waiting("user-1", "easy", "arrays", "rust")
	compatible := waiting("user-2", "easy", "arrays", "go")
	pool := poolWith(noOverlap, compatible)

	newcomer := &models.MatchRequest{
		UserID:     "user-3",
		Difficulty: "easy",
		Topic:      "arrays",
		Languages:  []string{"go", "python"},
	}

	opponent, language := strategy.FindMatch(newcomer, pool)

	assert.Same(t, compatible, opponent)
	assert.Equal(t, "go", language)
}

func TestFirstLanguageStrategy_NoSharedLanguageAnywhere(t *testing.T) {
	strategy := FirstLanguageStrategy{}

	pool := poolWith(
		waiting("user-1", "easy", "arrays", "rust"),
		waiting("user-2", "easy", "arrays", "haskell"),
	)

	newcomer := &models.MatchRequest{
		UserID:     "user-3",
		Difficulty: "easy",
		Topic:      "arrays",
		Languages:  []string{"go"},
	}

	opponent, language := strategy.FindMatch(newcomer, pool)

	assert.Nil(t, opponent)
	assert.Empty(t, language)
}

func TestFirstLanguageStrategy_IgnoresOtherBuckets(t *testing.T) {
	strategy := FirstLanguageStrategy{}

	pool := poolWith(waiting("user-1", "hard", "graphs", "go"))

	newcomer := &models.MatchRequest{
		UserID:     "user-2",
		Difficulty: "easy",
		Topic:      "graphs",
		Languages:  []string{"go"},
	}

	opponent, _ := strategy.FindMatch(newcomer, pool)

	assert.Nil(t, opponent)
}

func TestFirstLanguageStrategy_SkipsSameUser(t *testing.T) {
	strategy := FirstLanguageStrategy{}

	pool := poolWith(waiting("user-1", "easy", "arrays", "go"))

	newcomer := &models.MatchRequest{
		UserID:     "user-1",
		Difficulty: "easy",
		Topic:      "arrays",
		Languages:  []string{"go"},
	}

	opponent, _ := strategy.FindMatch(newcomer, pool)

	assert.Nil(t, opponent)
}

func TestFirstLanguageStrategy_BucketKeyVariantsStillMatch(t *testing.T) {
	strategy := FirstLanguageStrategy{}

	candidate := waiting("user-1", "Easy", "Linked Lists", "go")
	pool := poolWith(candidate)

	newcomer := &models.MatchRequest{
		UserID:     "user-2",
		Difficulty: " easy",
		Topic:      "linked   lists ",
		Languages:  []string{"go"},
	}

	opponent, language := strategy.FindMatch(newcomer, pool)

	assert.Same(t, candidate, opponent)
	assert.Equal(t, "go", language)
}
