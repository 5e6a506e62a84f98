package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/pairprep/pairprep/internal/pkg/logger"
	"github.com/pairprep/pairprep/internal/pkg/metrics"
	"github.com/pairprep/pairprep/internal/pkg/models"
	"github.com/pairprep/pairprep/services/match"
)

const (
	reasonTimeout  = "timeout"
	reasonCanceled = "canceled"
)

// Submit pairs the requester with a compatible waiter if one exists,
// otherwise parks the request in the waiting pool until another submit
// picks it, the wait budget elapses, Cancel removes it, or ctx is done.
func (uc *MatchUC) Submit(ctx context.Context, req models.MatchRequest) (models.MatchResult, error) {
	if sessionID, err := uc.matchRepo.GetActiveSession(ctx, req.UserID); err != nil {
		// Availability over strictness: a Redis outage must not stop matching.
		logger.WarnCtx(ctx, "Active session lookup failed, continuing",
			logger.String("user_id", req.UserID),
			logger.Err(err))
	} else if sessionID != "" {
		return models.MatchResult{}, match.ErrActiveSession
	}

	entry := &WaitingEntry{
		Request:    req,
		EnqueuedAt: time.Now(),
		notify:     make(chan models.MatchResult, 1),
	}

	uc.mu.Lock()
	if _, waiting := uc.index[req.UserID]; waiting {
		uc.mu.Unlock()
		return models.MatchResult{}, match.ErrAlreadyWaiting
	}

	// Search before inserting the newcomer, so it cannot match itself.
	opponent, language := uc.strategy.FindMatch(&req, uc.pool)
	if opponent != nil {
		// Commit point: once the opponent leaves pool and index, no other
		// submitter can discover either side of this pairing.
		if !uc.removeLocked(opponent) {
			logPoolIndexDivergence(ctx, opponent)
		}
		uc.mu.Unlock()
		return uc.finalize(ctx, entry, opponent, language), nil
	}

	key := BucketKey(req.Difficulty, req.Topic)
	uc.pool[key] = append(uc.pool[key], entry)
	uc.index[req.UserID] = entry
	metrics.QueueSize.Inc()
	uc.mu.Unlock()

	logger.InfoCtx(ctx, "No opponent available, waiting",
		logger.String("user_id", req.UserID),
		logger.String("bucket", key),
		logger.Duration("wait_budget", uc.cfg.Match.WaitBudget))

	timer := time.NewTimer(uc.cfg.Match.WaitBudget)
	defer timer.Stop()

	select {
	case result := <-entry.notify:
		return result, nil
	case <-timer.C:
		return uc.abandon(ctx, entry, reasonTimeout), nil
	case <-ctx.Done():
		// Client gone; clean up our own entry rather than leaving it to
		// the timer that no one is waiting on anymore.
		return uc.abandon(ctx, entry, reasonCanceled), ctx.Err()
	}
}

// Cancel removes a waiting requester from the pool and unblocks its Submit
// call with the no-match sentinel. Reports false when the requester is not
// waiting: never queued, already matched, or already timed out.
func (uc *MatchUC) Cancel(ctx context.Context, userID string) bool {
	uc.mu.Lock()
	entry, waiting := uc.index[userID]
	if !waiting {
		uc.mu.Unlock()
		return false
	}

	if !uc.removeLocked(entry) {
		uc.mu.Unlock()
		logPoolIndexDivergence(ctx, entry)
		return false
	}
	uc.mu.Unlock()

	entry.notify <- models.MatchResult{}
	metrics.MatchCancellationsTotal.Inc()
	uc.publishNoMatch(ctx, entry, reasonCanceled)

	logger.InfoCtx(ctx, "Match request canceled",
		logger.String("user_id", userID))
	return true
}

// QueueSizes reports the current number of waiters per bucket.
func (uc *MatchUC) QueueSizes() map[string]int {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	sizes := make(map[string]int, len(uc.pool))
	for key, bucket := range uc.pool {
		sizes[key] = len(bucket)
	}
	return sizes
}

// abandon removes the entry after its wait ended without a notification. If
// a racing cancel or match already removed it, that path owns the entry's
// terminal signal and its result stands; we collect it from the channel.
func (uc *MatchUC) abandon(ctx context.Context, entry *WaitingEntry, reason string) models.MatchResult {
	uc.mu.Lock()
	current, waiting := uc.index[entry.Request.UserID]
	if !waiting || current != entry {
		uc.mu.Unlock()
		return <-entry.notify
	}

	if !uc.removeLocked(entry) {
		uc.mu.Unlock()
		logPoolIndexDivergence(ctx, entry)
		return models.MatchResult{}
	}
	uc.mu.Unlock()

	if reason == reasonTimeout {
		metrics.MatchTimeoutsTotal.Inc()
		logger.InfoCtx(ctx, "Match request timed out",
			logger.String("user_id", entry.Request.UserID),
			logger.Duration("waited", time.Since(entry.EnqueuedAt)))
	}
	uc.publishNoMatch(ctx, entry, reason)

	return models.MatchResult{}
}

// finalize runs with no lock held: both parties are already committed to
// each other and invisible to concurrent submitters. On any collaborator
// failure the pairing is dropped and both sides receive the sentinel;
// neither party is re-queued.
func (uc *MatchUC) finalize(ctx context.Context, newcomer, opponent *WaitingEntry, language string) models.MatchResult {
	a := opponent.Request
	b := newcomer.Request

	questionID, err := uc.matchGW.GetQuestion(ctx, b.Difficulty, b.Topic, a.UserID, b.UserID)
	if err != nil {
		return uc.dropPairing(ctx, opponent, newcomer, "question fetch failed", err)
	}

	result := models.MatchResult{
		SessionID:  uuid.New().String(),
		QuestionID: questionID,
		UserA:      a.UserID,
		UserB:      b.UserID,
		Language:   language,
	}

	session := models.SessionRequest{
		SessionID:  result.SessionID,
		QuestionID: result.QuestionID,
		UserA:      result.UserA,
		UserB:      result.UserB,
		Language:   result.Language,
	}
	if err := uc.matchGW.CreateSession(ctx, session); err != nil {
		return uc.dropPairing(ctx, opponent, newcomer, "session registration failed", err)
	}

	// Bookkeeping below is best effort: the pairing stands even if any of
	// these fail.
	record := &models.MatchRecord{
		ID:         uuid.New().String(),
		SessionID:  result.SessionID,
		QuestionID: result.QuestionID,
		UserA:      result.UserA,
		UserB:      result.UserB,
		Language:   result.Language,
		Difficulty: b.Difficulty,
		Topic:      b.Topic,
		CreatedAt:  time.Now(),
	}
	if err := uc.matchRepo.RecordMatch(ctx, record); err != nil {
		logger.WarnCtx(ctx, "Failed to record match history",
			logger.String("session_id", result.SessionID),
			logger.Err(err))
	}

	for _, userID := range []string{a.UserID, b.UserID} {
		if err := uc.matchRepo.SetActiveSession(ctx, userID, result.SessionID, uc.cfg.Match.SessionTTL); err != nil {
			logger.WarnCtx(ctx, "Failed to mark active session",
				logger.String("user_id", userID),
				logger.String("session_id", result.SessionID),
				logger.Err(err))
		}
	}

	if err := uc.matchGW.PublishMatchFound(ctx, result); err != nil {
		logger.WarnCtx(ctx, "Failed to publish match found event",
			logger.String("session_id", result.SessionID),
			logger.Err(err))
	}

	metrics.MatchesTotal.Inc()
	metrics.MatchDuration.Observe(time.Since(opponent.EnqueuedAt).Seconds())

	logger.InfoCtx(ctx, "Match finalized",
		logger.String("session_id", result.SessionID),
		logger.String("question_id", result.QuestionID),
		logger.String("user_a", result.UserA),
		logger.String("user_b", result.UserB),
		logger.String("language", result.Language))

	opponent.notify <- result
	return result
}

// dropPairing abandons a committed pairing after a finalization failure.
// Both sides receive the no-match sentinel; callers cannot distinguish this
// from a timeout by the result value alone.
func (uc *MatchUC) dropPairing(ctx context.Context, opponent, newcomer *WaitingEntry, msg string, err error) models.MatchResult {
	metrics.FinalizationFailuresTotal.Inc()
	logger.ErrorCtx(ctx, "Abandoning committed pairing: "+msg,
		logger.String("user_a", opponent.Request.UserID),
		logger.String("user_b", newcomer.Request.UserID),
		logger.Err(err))

	opponent.notify <- models.MatchResult{}
	return models.MatchResult{}
}

// removeLocked takes an entry out of both the user index and its pool
// bucket, preserving arrival order for the remaining waiters. Callers must
// hold uc.mu. Returns false when the entry's bucket does not contain it,
// which means pool and index have diverged.
func (uc *MatchUC) removeLocked(entry *WaitingEntry) bool {
	delete(uc.index, entry.Request.UserID)

	key := BucketKey(entry.Request.Difficulty, entry.Request.Topic)
	bucket := uc.pool[key]
	for i, e := range bucket {
		if e == entry {
			uc.pool[key] = append(bucket[:i], bucket[i+1:]...)
			if len(uc.pool[key]) == 0 {
				delete(uc.pool, key)
			}
			metrics.QueueSize.Dec()
			return true
		}
	}
	return false
}

// publishNoMatch publishes the leave event for a waiter that exited the
// pool without a pairing.
func (uc *MatchUC) publishNoMatch(ctx context.Context, entry *WaitingEntry, reason string) {
	event := models.MatchTimeoutEvent{
		UserID:     entry.Request.UserID,
		Difficulty: entry.Request.Difficulty,
		Topic:      entry.Request.Topic,
		Reason:     reason,
		Timestamp:  time.Now(),
	}
	if err := uc.matchGW.PublishMatchTimeout(ctx, event); err != nil {
		logger.WarnCtx(ctx, "Failed to publish match timeout event",
			logger.String("user_id", entry.Request.UserID),
			logger.Err(err))
	}
}

// logPoolIndexDivergence records the fatal internal-consistency violation:
// the user index references an entry that its own bucket does not hold.
// The operation fails but the process keeps running.
func logPoolIndexDivergence(ctx context.Context, entry *WaitingEntry) {
	logger.ErrorCtx(ctx, "FATAL: waiting pool and user index diverged",
		logger.String("user_id", entry.Request.UserID),
		logger.String("bucket", BucketKey(entry.Request.Difficulty, entry.Request.Topic)))
}
