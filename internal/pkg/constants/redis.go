package constants

// Redis key formats
const (
	// Match Service
	KeyActiveSession = "session:active:%s" // Format: session:active:{user_id}
)
