package match

import (
	"context"
	"time"

	"github.com/pairprep/pairprep/internal/pkg/models"
)

// MatchRepo defines the interface for match data access operations
type MatchRepo interface {
	// Match history (Postgres)
	RecordMatch(ctx context.Context, record *models.MatchRecord) error
	MatchHistory(ctx context.Context, userID string) ([]*models.MatchRecord, error)

	// Active session tracking (Redis)
	SetActiveSession(ctx context.Context, userID, sessionID string, ttl time.Duration) error
	GetActiveSession(ctx context.Context, userID string) (string, error)
	ClearActiveSession(ctx context.Context, userID string) error
}
