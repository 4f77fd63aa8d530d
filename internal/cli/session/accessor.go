package session

import "context"

// Accessor is what presentation code sees of the session.
type Accessor[U any] interface {
	// CurrentUser returns the logged in user, if any.
	CurrentUser() (U, bool)

	// Login makes user the current session.
	Login(ctx context.Context, user U) error

	// Logout clears the current session.
	Logout(ctx context.Context) error

	// IsAuthenticated reports whether a user is logged in.
	IsAuthenticated() bool
}
