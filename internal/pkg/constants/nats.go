package constants

// NATS Subjects
const (
	// Match Service
	SubjectMatchFound   = "match.found"
	SubjectMatchTimeout = "match.timeout"
)
