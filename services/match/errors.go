package match

import "errors"

var (
	// ErrAlreadyWaiting is returned when a user submits a match request
	// while a previous request of theirs is still in the waiting pool.
	ErrAlreadyWaiting = errors.New("user already has a match request waiting")

	// ErrActiveSession is returned when a user submits a match request
	// while they are already in a collaborative session.
	ErrActiveSession = errors.New("user is already in an active session")
)
