package session

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"Mintopia/internal/cli/repo"

	"go.uber.org/zap"
)

// DefaultKey is the storage key the session is persisted under.
const DefaultKey = "mintopia_user"

type options struct {
	key    string
	logger *zap.SugaredLogger
}

// Option configures a Store.
type Option func(*options)

// WithKey overrides the storage key. (default "mintopia_user".)
func WithKey(key string) Option {
	return func(o *options) {
		if key != "" {
			o.key = key
		}
	}
}

// WithLogger sets the logger used for diagnostics. (default no-op.)
func WithLogger(l *zap.SugaredLogger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}

// Store is the client session: an optional user of type U kept in memory and
// in a KVStore. Mutations hold the lock across the storage call, so memory and
// storage never disagree once a call returns.
type Store[U any] struct {
	kv  repo.KVStore
	key string
	log *zap.SugaredLogger

	mu          sync.RWMutex
	initialized bool
	present     bool
	user        U
}

var _ Accessor[any] = (*Store[any])(nil)

// New creates a store on top of kv. It does not touch storage; call Initialize.
func New[U any](kv repo.KVStore, opts ...Option) *Store[U] {
	o := options{key: DefaultKey, logger: zap.NewNop().Sugar()}
	for _, opt := range opts {
		opt(&o)
	}
	return &Store[U]{kv: kv, key: o.key, log: o.logger}
}

// Open creates a store and loads the persisted session.
func Open[U any](ctx context.Context, kv repo.KVStore, opts ...Option) (*Store[U], error) {
	s := New[U](kv, opts...)
	if err := s.Initialize(ctx); err != nil {
		return nil, err
	}
	return s, nil
}

// Key returns the storage key.
func (s *Store[U]) Key() string { return s.key }

// Initialize loads the persisted user. A value that cannot be decoded into U is
// logged and removed from storage, leaving the session empty. Only a failing
// storage read is returned as an error.
func (s *Store[U]) Initialize(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	var zero U
	s.user, s.present, s.initialized = zero, false, false

	raw, found, err := s.kv.Get(ctx, s.key)
	if err != nil {
		return fmt.Errorf("load session: %w", err)
	}
	s.initialized = true
	if !found {
		return nil
	}

	data := bytes.TrimSpace([]byte(raw))
	if bytes.Equal(data, []byte("null")) {
		return nil
	}
	var u U
	if err := DecodeJSON(data, &u); err != nil {
		s.log.Warnw("discarding malformed persisted session",
			"key", s.key,
			"error", err,
		)
		if rmErr := s.kv.Remove(ctx, s.key); rmErr != nil {
			s.log.Errorw("failed to remove malformed session",
				"key", s.key,
				"error", rmErr,
			)
		}
		return nil
	}
	s.user, s.present = u, true
	return nil
}

// Login stores user as the current session. On failure nothing changes.
// The shape of user is not checked, with one exception: a value that encodes
// to JSON null is rejected with ErrEmptyUser, because it would read back as
// "no session" and leave Login without effect after a restart.
func (s *Store[U]) Login(ctx context.Context, user U) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.initialized {
		return ErrNotInitialized
	}
	b, err := json.Marshal(user)
	if err != nil {
		return fmt.Errorf("encode user: %w", err)
	}
	if bytes.Equal(b, []byte("null")) {
		return ErrEmptyUser
	}
	if err := s.kv.Set(ctx, s.key, string(b)); err != nil {
		return fmt.Errorf("persist session: %w", err)
	}
	s.user, s.present = user, true
	s.log.Debugw("session started", "key", s.key)
	return nil
}

// Logout clears the session. Calling it without a session is a no-op.
func (s *Store[U]) Logout(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.initialized {
		return ErrNotInitialized
	}
	if err := s.kv.Remove(ctx, s.key); err != nil {
		return fmt.Errorf("remove session: %w", err)
	}
	var zero U
	s.user, s.present = zero, false
	s.log.Debugw("session cleared", "key", s.key)
	return nil
}

// IsAuthenticated reports whether a user is logged in.
func (s *Store[U]) IsAuthenticated() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.present
}

// CurrentUser returns the logged in user, or the zero value and false.
func (s *Store[U]) CurrentUser() (U, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.user, s.present
}

// Initialized reports whether Initialize has completed.
func (s *Store[U]) Initialized() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.initialized
}
