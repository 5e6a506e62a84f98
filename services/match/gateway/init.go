package gateway

import (
	"context"

	"github.com/pairprep/pairprep/internal/pkg/models"
	natspkg "github.com/pairprep/pairprep/internal/pkg/nats"
	natsgw "github.com/pairprep/pairprep/services/match/gateway/nats"
)

// MatchGW aggregates the HTTP collaborators and the NATS publisher behind
// the gateway interface the use case consumes.
type MatchGW struct {
	http *HTTPGateway
	nats *natsgw.NATSGateway
}

// NewMatchGW creates a new match gateway
func NewMatchGW(cfg *models.Config, natsClient *natspkg.Client) *MatchGW {
	return &MatchGW{
		http: NewHTTPGateway(cfg),
		nats: natsgw.NewNATSGateway(natsClient),
	}
}

// GetQuestion delegates to the question service client
func (g *MatchGW) GetQuestion(ctx context.Context, difficulty, topic, userA, userB string) (string, error) {
	return g.http.GetQuestion(ctx, difficulty, topic, userA, userB)
}

// CreateSession delegates to the collab service client
func (g *MatchGW) CreateSession(ctx context.Context, session models.SessionRequest) error {
	return g.http.CreateSession(ctx, session)
}

// PublishMatchFound delegates to the NATS gateway
func (g *MatchGW) PublishMatchFound(ctx context.Context, result models.MatchResult) error {
	return g.nats.PublishMatchFound(ctx, result)
}

// PublishMatchTimeout delegates to the NATS gateway
func (g *MatchGW) PublishMatchTimeout(ctx context.Context, event models.MatchTimeoutEvent) error {
	return g.nats.PublishMatchTimeout(ctx, event)
}
