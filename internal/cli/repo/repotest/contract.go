// Package repotest содержит общий набор проверок для реализаций repo.KVStore.
package repotest

import (
	"context"
	"testing"
	"time"

	"Mintopia/internal/cli/repo"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// RunKVStoreContract runs a suite of tests to verify that a KVStore implementation
// adheres to the defined interface contract.
func RunKVStoreContract(t *testing.T, store repo.KVStore) {
	t.Helper()
	ctx := context.Background()
	key := "contract_" + time.Now().Format("20060102150405")

	t.Run("Get missing", func(t *testing.T) {
		v, found, err := store.Get(ctx, key+"_missing")
		require.NoError(t, err)
		assert.False(t, found)
		assert.Empty(t, v)
	})

	t.Run("Set and Get", func(t *testing.T) {
		require.NoError(t, store.Set(ctx, key, `{"id":1,"name":"Ann"}`))

		v, found, err := store.Get(ctx, key)
		require.NoError(t, err)
		assert.True(t, found)
		assert.JSONEq(t, `{"id":1,"name":"Ann"}`, v)
	})

	t.Run("Set overwrites", func(t *testing.T) {
		require.NoError(t, store.Set(ctx, key, `{"id":1}`))
		require.NoError(t, store.Set(ctx, key, `{"id":2}`))

		v, found, err := store.Get(ctx, key)
		require.NoError(t, err)
		assert.True(t, found)
		assert.JSONEq(t, `{"id":2}`, v)
	})

	t.Run("Remove", func(t *testing.T) {
		require.NoError(t, store.Set(ctx, key, `"x"`))
		require.NoError(t, store.Remove(ctx, key))

		_, found, err := store.Get(ctx, key)
		require.NoError(t, err)
		assert.False(t, found, "Get after Remove should report missing key")
	})

	t.Run("Remove missing", func(t *testing.T) {
		assert.NoError(t, store.Remove(ctx, key+"_never_set"))
	})
}
