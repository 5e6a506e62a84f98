package models

import "time"

// MatchRequest describes one user asking to be paired for a practice
// session. It is immutable once submitted: the coordinator copies it into
// the waiting pool and never writes to it.
type MatchRequest struct {
	UserID     string   `json:"user_id"`
	Difficulty string   `json:"difficulty"`
	Topic      string   `json:"topic"`
	Languages  []string `json:"languages"`
}

// MatchResult is the outcome of a submit call. The zero value is the
// no-match sentinel, returned for timeouts, cancellations and session
// finalization failures alike.
type MatchResult struct {
	SessionID  string `json:"session_id,omitempty"`
	QuestionID string `json:"question_id,omitempty"`
	UserA      string `json:"user_a,omitempty"`
	UserB      string `json:"user_b,omitempty"`
	Language   string `json:"language,omitempty"`
}

// Matched reports whether the result names a real pairing rather than the
// no-match sentinel.
func (r MatchResult) Matched() bool {
	return r.SessionID != ""
}

// SessionRequest is the payload sent to the collab service to register a
// freshly finalized session.
type SessionRequest struct {
	SessionID  string `json:"session_id"`
	QuestionID string `json:"question_id"`
	UserA      string `json:"user_a"`
	UserB      string `json:"user_b"`
	Language   string `json:"language"`
}

// MatchRecord is a finalized pairing persisted for history lookups.
type MatchRecord struct {
	ID         string    `json:"id" db:"id"`
	SessionID  string    `json:"session_id" db:"session_id"`
	QuestionID string    `json:"question_id" db:"question_id"`
	UserA      string    `json:"user_a" db:"user_a"`
	UserB      string    `json:"user_b" db:"user_b"`
	Language   string    `json:"language" db:"language"`
	Difficulty string    `json:"difficulty" db:"difficulty"`
	Topic      string    `json:"topic" db:"topic"`
	CreatedAt  time.Time `json:"created_at" db:"created_at"`
}

// MatchTimeoutEvent is published when a waiter leaves the pool without a
// pairing, so downstream consumers (client notifications, analytics) can
// react.
type MatchTimeoutEvent struct {
	UserID     string    `json:"user_id"`
	Difficulty string    `json:"difficulty"`
	Topic      string    `json:"topic"`
	Reason     string    `json:"reason"` // "timeout" or "canceled"
	Timestamp  time.Time `json:"timestamp"`
}
