package usecase

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/pairprep/pairprep/internal/pkg/models"
	"github.com/pairprep/pairprep/services/match"
	"github.com/pairprep/pairprep/services/match/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestMatchUC(t *testing.T, waitBudget time.Duration) (*MatchUC, *mocks.MockMatchRepo, *mocks.MockMatchGW) {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	mockRepo := mocks.NewMockMatchRepo(ctrl)
	mockGW := mocks.NewMockMatchGW(ctrl)

	cfg := &models.Config{}
	cfg.Match.WaitBudget = waitBudget
	cfg.Match.SessionTTL = time.Hour

	uc := NewMatchUC(cfg, FirstLanguageStrategy{}, mockRepo, mockGW)
	return uc, mockRepo, mockGW
}

func matchRequest(userID string, languages ...string) models.MatchRequest {
	return models.MatchRequest{
		UserID:     userID,
		Difficulty: "easy",
		Topic:      "arrays",
		Languages:  languages,
	}
}

// allowFinalization wires the collaborator calls a successful pairing makes.
func allowFinalization(mockRepo *mocks.MockMatchRepo, mockGW *mocks.MockMatchGW, questionID string) {
	mockGW.EXPECT().GetQuestion(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(questionID, nil).AnyTimes()
	mockGW.EXPECT().CreateSession(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	mockGW.EXPECT().PublishMatchFound(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	mockRepo.EXPECT().RecordMatch(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	mockRepo.EXPECT().SetActiveSession(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
}

func TestSubmit_PairsTwoCompatibleUsers(t *testing.T) {
	uc, mockRepo, mockGW := newTestMatchUC(t, 5*time.Second)

	mockRepo.EXPECT().GetActiveSession(gomock.Any(), gomock.Any()).Return("", nil).Times(2)
	allowFinalization(mockRepo, mockGW, "question-42")

	resultA := make(chan models.MatchResult, 1)
	go func() {
		result, err := uc.Submit(context.Background(), matchRequest("alice", "python", "go"))
		assert.NoError(t, err)
		resultA <- result
	}()

	// Let alice park before bob arrives.
	waitForWaiters(t, uc, 1)

	resultB, err := uc.Submit(context.Background(), matchRequest("bob", "python"))
	require.NoError(t, err)

	select {
	case gotA := <-resultA:
		assert.Equal(t, resultB, gotA)
	case <-time.After(2 * time.Second):
		t.Fatal("first submitter never unblocked")
	}

	assert.True(t, resultB.Matched())
	assert.Equal(t, "question-42", resultB.QuestionID)
	assert.Equal(t, "alice", resultB.UserA)
	assert.Equal(t, "bob", resultB.UserB)
	assert.Equal(t, "python", resultB.Language)
	assert.Empty(t, uc.QueueSizes())
}

func TestSubmit_TimesOutWithoutOpponent(t *testing.T) {
	uc, mockRepo, mockGW := newTestMatchUC(t, 50*time.Millisecond)

	mockRepo.EXPECT().GetActiveSession(gomock.Any(), "alice").Return("", nil)
	mockGW.EXPECT().PublishMatchTimeout(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, event models.MatchTimeoutEvent) error {
			assert.Equal(t, "alice", event.UserID)
			assert.Equal(t, "timeout", event.Reason)
			return nil
		})

	start := time.Now()
	result, err := uc.Submit(context.Background(), matchRequest("alice", "go"))

	require.NoError(t, err)
	assert.False(t, result.Matched())
	assert.GreaterOrEqual(t, time.Since(start), 50*time.Millisecond)

	// The entry is gone: a late cancel finds nothing.
	assert.False(t, uc.Cancel(context.Background(), "alice"))
	assert.Empty(t, uc.QueueSizes())
}

func TestCancel_UnblocksWaiter(t *testing.T) {
	uc, mockRepo, mockGW := newTestMatchUC(t, 5*time.Second)

	mockRepo.EXPECT().GetActiveSession(gomock.Any(), "alice").Return("", nil)
	mockGW.EXPECT().PublishMatchTimeout(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, event models.MatchTimeoutEvent) error {
			assert.Equal(t, "canceled", event.Reason)
			return nil
		})

	done := make(chan models.MatchResult, 1)
	go func() {
		result, err := uc.Submit(context.Background(), matchRequest("alice", "go"))
		assert.NoError(t, err)
		done <- result
	}()

	waitForWaiters(t, uc, 1)

	assert.True(t, uc.Cancel(context.Background(), "alice"))

	select {
	case result := <-done:
		assert.False(t, result.Matched())
	case <-time.After(time.Second):
		t.Fatal("canceled submitter never unblocked")
	}

	// Second cancel finds nothing.
	assert.False(t, uc.Cancel(context.Background(), "alice"))
	assert.Empty(t, uc.QueueSizes())
}

func TestCancel_UnknownUser(t *testing.T) {
	uc, _, _ := newTestMatchUC(t, time.Second)

	assert.False(t, uc.Cancel(context.Background(), "nobody"))
}

func TestSubmit_DuplicateUserRejected(t *testing.T) {
	uc, mockRepo, mockGW := newTestMatchUC(t, 5*time.Second)

	mockRepo.EXPECT().GetActiveSession(gomock.Any(), "alice").Return("", nil).Times(2)
	mockGW.EXPECT().PublishMatchTimeout(gomock.Any(), gomock.Any()).Return(nil)

	done := make(chan struct{})
	go func() {
		defer close(done)
		_, err := uc.Submit(context.Background(), matchRequest("alice", "go"))
		assert.NoError(t, err)
	}()

	waitForWaiters(t, uc, 1)

	_, err := uc.Submit(context.Background(), matchRequest("alice", "go"))
	assert.ErrorIs(t, err, match.ErrAlreadyWaiting)

	uc.Cancel(context.Background(), "alice")
	<-done
}

func TestSubmit_ActiveSessionRejected(t *testing.T) {
	uc, mockRepo, _ := newTestMatchUC(t, time.Second)

	mockRepo.EXPECT().GetActiveSession(gomock.Any(), "alice").Return("session-1", nil)

	_, err := uc.Submit(context.Background(), matchRequest("alice", "go"))
	assert.ErrorIs(t, err, match.ErrActiveSession)
}

func TestSubmit_ActiveSessionLookupFailureDoesNotBlockMatching(t *testing.T) {
	uc, mockRepo, mockGW := newTestMatchUC(t, 50*time.Millisecond)

	mockRepo.EXPECT().GetActiveSession(gomock.Any(), "alice").
		Return("", errors.New("redis: connection refused"))
	mockGW.EXPECT().PublishMatchTimeout(gomock.Any(), gomock.Any()).Return(nil)

	result, err := uc.Submit(context.Background(), matchRequest("alice", "go"))

	assert.NoError(t, err)
	assert.False(t, result.Matched())
}

func TestSubmit_ContextCanceledCleansUpEntry(t *testing.T) {
	uc, mockRepo, mockGW := newTestMatchUC(t, 5*time.Second)

	mockRepo.EXPECT().GetActiveSession(gomock.Any(), "alice").Return("", nil)
	mockGW.EXPECT().PublishMatchTimeout(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, event models.MatchTimeoutEvent) error {
			assert.Equal(t, "canceled", event.Reason)
			return nil
		})

	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan struct{})
	go func() {
		defer close(done)
		result, err := uc.Submit(ctx, matchRequest("alice", "go"))
		assert.ErrorIs(t, err, context.Canceled)
		assert.False(t, result.Matched())
	}()

	waitForWaiters(t, uc, 1)
	cancel()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("submitter never unblocked after context cancellation")
	}

	assert.Empty(t, uc.QueueSizes())
	assert.False(t, uc.Cancel(context.Background(), "alice"))
}

func TestSubmit_QuestionFetchFailureDropsPairing(t *testing.T) {
	uc, mockRepo, mockGW := newTestMatchUC(t, 5*time.Second)

	mockRepo.EXPECT().GetActiveSession(gomock.Any(), gomock.Any()).Return("", nil).Times(2)
	mockGW.EXPECT().GetQuestion(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return("", errors.New("question service unavailable"))

	resultA := make(chan models.MatchResult, 1)
	go func() {
		result, err := uc.Submit(context.Background(), matchRequest("alice", "go"))
		assert.NoError(t, err)
		resultA <- result
	}()

	waitForWaiters(t, uc, 1)

	resultB, err := uc.Submit(context.Background(), matchRequest("bob", "go"))
	require.NoError(t, err)
	assert.False(t, resultB.Matched())

	select {
	case gotA := <-resultA:
		assert.False(t, gotA.Matched())
	case <-time.After(time.Second):
		t.Fatal("opponent never unblocked after dropped pairing")
	}

	// Both sides are out of the pool; neither was re-queued.
	assert.Empty(t, uc.QueueSizes())
}

func TestSubmit_SessionRegistrationFailureDropsPairing(t *testing.T) {
	uc, mockRepo, mockGW := newTestMatchUC(t, 5*time.Second)

	mockRepo.EXPECT().GetActiveSession(gomock.Any(), gomock.Any()).Return("", nil).Times(2)
	mockGW.EXPECT().GetQuestion(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return("question-1", nil)
	mockGW.EXPECT().CreateSession(gomock.Any(), gomock.Any()).
		Return(errors.New("collab service unavailable"))

	resultA := make(chan models.MatchResult, 1)
	go func() {
		result, err := uc.Submit(context.Background(), matchRequest("alice", "go"))
		assert.NoError(t, err)
		resultA <- result
	}()

	waitForWaiters(t, uc, 1)

	resultB, err := uc.Submit(context.Background(), matchRequest("bob", "go"))
	require.NoError(t, err)
	assert.False(t, resultB.Matched())
	assert.False(t, (<-resultA).Matched())
	assert.Empty(t, uc.QueueSizes())
}

func TestSubmit_BestEffortBookkeepingFailuresKeepPairing(t *testing.T) {
	uc, mockRepo, mockGW := newTestMatchUC(t, 5*time.Second)

	mockRepo.EXPECT().GetActiveSession(gomock.Any(), gomock.Any()).Return("", nil).Times(2)
	mockGW.EXPECT().GetQuestion(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return("question-1", nil)
	mockGW.EXPECT().CreateSession(gomock.Any(), gomock.Any()).Return(nil)
	mockRepo.EXPECT().RecordMatch(gomock.Any(), gomock.Any()).
		Return(errors.New("db down"))
	mockRepo.EXPECT().SetActiveSession(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(errors.New("redis down")).Times(2)
	mockGW.EXPECT().PublishMatchFound(gomock.Any(), gomock.Any()).
		Return(errors.New("nats down"))

	resultA := make(chan models.MatchResult, 1)
	go func() {
		result, err := uc.Submit(context.Background(), matchRequest("alice", "go"))
		assert.NoError(t, err)
		resultA <- result
	}()

	waitForWaiters(t, uc, 1)

	resultB, err := uc.Submit(context.Background(), matchRequest("bob", "go"))
	require.NoError(t, err)
	assert.True(t, resultB.Matched())
	assert.Equal(t, resultB, <-resultA)
}

func TestSubmit_ConcurrentSubmitsPairEveryoneExactlyOnce(t *testing.T) {
	uc, mockRepo, mockGW := newTestMatchUC(t, 5*time.Second)

	mockRepo.EXPECT().GetActiveSession(gomock.Any(), gomock.Any()).Return("", nil).AnyTimes()
	allowFinalization(mockRepo, mockGW, "question-1")

	const users = 8
	results := make(chan models.MatchResult, users)

	var wg sync.WaitGroup
	for i := 0; i < users; i++ {
		wg.Add(1)
		userID := string(rune('a' + i))
		go func() {
			defer wg.Done()
			result, err := uc.Submit(context.Background(), matchRequest(userID, "go"))
			assert.NoError(t, err)
			results <- result
		}()
	}
	wg.Wait()
	close(results)

	sessions := make(map[string][]models.MatchResult)
	seen := make(map[string]int)
	for result := range results {
		require.True(t, result.Matched())
		sessions[result.SessionID] = append(sessions[result.SessionID], result)
		seen[result.UserA]++
		seen[result.UserB]++
	}

	assert.Len(t, sessions, users/2)
	for sessionID, pair := range sessions {
		assert.Len(t, pair, 2, "session %s", sessionID)
		assert.Equal(t, pair[0], pair[1])
	}
	assert.Len(t, seen, users)
	for userID, count := range seen {
		// Each submit sees its own pairing once, and its partner sees the
		// same pairing once.
		assert.Equal(t, 2, count, "user %s", userID)
	}
	assert.Empty(t, uc.QueueSizes())
}

func TestQueueSizes_ReportsPerBucketCounts(t *testing.T) {
	uc, mockRepo, mockGW := newTestMatchUC(t, 5*time.Second)

	mockRepo.EXPECT().GetActiveSession(gomock.Any(), gomock.Any()).Return("", nil).Times(2)
	mockGW.EXPECT().PublishMatchTimeout(gomock.Any(), gomock.Any()).Return(nil).Times(2)

	var wg sync.WaitGroup
	for _, req := range []models.MatchRequest{
		{UserID: "alice", Difficulty: "easy", Topic: "arrays", Languages: []string{"go"}},
		{UserID: "bob", Difficulty: "hard", Topic: "graphs", Languages: []string{"go"}},
	} {
		wg.Add(1)
		req := req
		go func() {
			defer wg.Done()
			_, err := uc.Submit(context.Background(), req)
			assert.NoError(t, err)
		}()
	}

	waitForWaiters(t, uc, 2)

	sizes := uc.QueueSizes()
	assert.Equal(t, map[string]int{
		"easy-arrays": 1,
		"hard-graphs": 1,
	}, sizes)

	assert.True(t, uc.Cancel(context.Background(), "alice"))
	assert.True(t, uc.Cancel(context.Background(), "bob"))
	wg.Wait()

	assert.Empty(t, uc.QueueSizes())
}

// waitForWaiters blocks until the pool holds the expected number of waiting
// entries, failing the test after a deadline.
func waitForWaiters(t *testing.T, uc *MatchUC, expected int) {
	t.Helper()

	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		total := 0
		for _, size := range uc.QueueSizes() {
			total += size
		}
		if total == expected {
			return
		}
		time.Sleep(5 * time.Millisecond)
	}
	t.Fatalf("pool never reached %d waiting entries", expected)
}
