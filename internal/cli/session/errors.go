package session

import "errors"

var (
	// ErrNotInitialized is returned when a store is used before Initialize succeeded.
	ErrNotInitialized = errors.New("session store is not initialized")
	// ErrOutsideScope is returned when no store is bound to the context.
	ErrOutsideScope = errors.New("session store accessed outside of its scope")
	// ErrEmptyUser is returned by Login for a user that encodes to JSON null.
	ErrEmptyUser = errors.New("empty user")
)
