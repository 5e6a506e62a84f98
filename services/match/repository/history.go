package repository

import (
	"context"
	"fmt"

	"github.com/pairprep/pairprep/internal/pkg/models"
)

// historyLimit bounds how many records a history lookup returns.
const historyLimit = 50

// RecordMatch persists a finalized pairing
func (r *MatchRepo) RecordMatch(ctx context.Context, record *models.MatchRecord) error {
	query := `
		INSERT INTO matches (
			id, session_id, question_id, user_a, user_b,
			language, difficulty, topic, created_at
		) VALUES (
			:id, :session_id, :question_id, :user_a, :user_b,
			:language, :difficulty, :topic, :created_at
		)
	`

	if _, err := r.db.NamedExecContext(ctx, query, record); err != nil {
		return fmt.Errorf("failed to insert match record: %w", err)
	}

	return nil
}

// MatchHistory lists a user's finalized pairings, newest first
func (r *MatchRepo) MatchHistory(ctx context.Context, userID string) ([]*models.MatchRecord, error) {
	query := `
		SELECT id, session_id, question_id, user_a, user_b,
		       language, difficulty, topic, created_at
		FROM matches
		WHERE user_a = $1 OR user_b = $1
		ORDER BY created_at DESC
		LIMIT $2
	`

	records := []*models.MatchRecord{}
	if err := r.db.SelectContext(ctx, &records, query, userID, historyLimit); err != nil {
		return nil, fmt.Errorf("failed to list match history: %w", err)
	}

	return records, nil
}
