package session

import (
	"context"
	"testing"

	"Mintopia/internal/cli/repo/memory"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScope_FromBoundStore(t *testing.T) {
	st := openTestStore[testUser](t, memory.New())
	ctx := WithStore(context.Background(), st)

	got, err := From[testUser](ctx)
	require.NoError(t, err)
	assert.Same(t, st, got)
	assert.Same(t, st, MustFrom[testUser](ctx))
}

func TestScope_OutsideScope(t *testing.T) {
	_, err := From[testUser](context.Background())
	assert.ErrorIs(t, err, ErrOutsideScope)

	assert.Panics(t, func() { MustFrom[testUser](context.Background()) })
}

func TestScope_WrongUserType(t *testing.T) {
	st := openTestStore[testUser](t, memory.New())
	ctx := WithStore(context.Background(), st)

	_, err := From[map[string]any](ctx)
	assert.ErrorIs(t, err, ErrOutsideScope)
}

func TestScope_UninitializedStore(t *testing.T) {
	ctx := WithStore(context.Background(), New[testUser](memory.New()))

	_, err := From[testUser](ctx)
	assert.ErrorIs(t, err, ErrNotInitialized)
	assert.Panics(t, func() { MustFrom[testUser](ctx) })
}

func TestScope_NilStorePanics(t *testing.T) {
	assert.Panics(t, func() { WithStore[testUser](context.Background(), nil) })
}
