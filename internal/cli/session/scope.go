package session

import (
	"context"
	"fmt"
)

type scopeKey[U any] struct{}

// WithStore binds st to ctx. Consumers retrieve it with From or MustFrom.
func WithStore[U any](ctx context.Context, st *Store[U]) context.Context {
	if st == nil {
		panic("session: WithStore called with nil store")
	}
	return context.WithValue(ctx, scopeKey[U]{}, st)
}

// From returns the store bound to ctx.
func From[U any](ctx context.Context) (*Store[U], error) {
	st, ok := ctx.Value(scopeKey[U]{}).(*Store[U])
	if !ok {
		return nil, ErrOutsideScope
	}
	if !st.Initialized() {
		return nil, ErrNotInitialized
	}
	return st, nil
}

// MustFrom is like From but panics when no initialized store is in scope.
func MustFrom[U any](ctx context.Context) *Store[U] {
	st, err := From[U](ctx)
	if err != nil {
		panic(fmt.Errorf("session: %w", err))
	}
	return st
}
