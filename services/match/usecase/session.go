package usecase

import (
	"context"

	"github.com/pairprep/pairprep/internal/pkg/models"
)

// ActiveSession returns the session ID the user is currently in, or ""
func (uc *MatchUC) ActiveSession(ctx context.Context, userID string) (string, error) {
	return uc.matchRepo.GetActiveSession(ctx, userID)
}

// EndSession clears a user's active-session marker so they can queue again
func (uc *MatchUC) EndSession(ctx context.Context, userID string) error {
	return uc.matchRepo.ClearActiveSession(ctx, userID)
}

// MatchHistory lists a user's finalized pairings, newest first
func (uc *MatchUC) MatchHistory(ctx context.Context, userID string) ([]*models.MatchRecord, error) {
	return uc.matchRepo.MatchHistory(ctx, userID)
}
