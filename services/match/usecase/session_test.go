package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/pairprep/pairprep/internal/pkg/models"
	"github.com/stretchr/testify/assert"
)

func TestActiveSession(t *testing.T) {
	uc, mockRepo, _ := newTestMatchUC(t, time.Second)

	mockRepo.EXPECT().GetActiveSession(gomock.Any(), "alice").Return("session-1", nil)

	sessionID, err := uc.ActiveSession(context.Background(), "alice")
	assert.NoError(t, err)
	assert.Equal(t, "session-1", sessionID)
}

func TestEndSession(t *testing.T) {
	uc, mockRepo, _ := newTestMatchUC(t, time.Second)

	mockRepo.EXPECT().ClearActiveSession(gomock.Any(), "alice").Return(nil)

	assert.NoError(t, uc.EndSession(context.Background(), "alice"))
}

func TestMatchHistory(t *testing.T) {
	uc, mockRepo, _ := newTestMatchUC(t, time.Second)

	records := []*models.MatchRecord{
		{ID: "1", SessionID: "session-1", UserA: "alice", UserB: "bob"},
	}
	mockRepo.EXPECT().MatchHistory(gomock.Any(), "alice").Return(records, nil)

	got, err := uc.MatchHistory(context.Background(), "alice")
	assert.NoError(t, err)
	assert.Equal(t, records, got)
}

func TestMatchHistory_RepositoryError(t *testing.T) {
	uc, mockRepo, _ := newTestMatchUC(t, time.Second)

	mockRepo.EXPECT().MatchHistory(gomock.Any(), "alice").
		Return(nil, errors.New("db down"))

	_, err := uc.MatchHistory(context.Background(), "alice")
	assert.Error(t, err)
}
