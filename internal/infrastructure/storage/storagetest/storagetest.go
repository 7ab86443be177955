// Package storagetest checks that a storage.Store honours the key-value
// contract. Backends call Run from their own tests.
package storagetest

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"vaultkeeper/internal/infrastructure/storage"
)

// Run exercises a fresh, empty store obtained from newStore for each case.
func Run(t *testing.T, newStore func(t *testing.T) storage.Store) {
	t.Helper()
	ctx := context.Background()

	t.Run("missing key", func(t *testing.T) {
		s := newStore(t)
		v, ok, err := s.Get(ctx, "records:nobody")
		require.NoError(t, err)
		assert.False(t, ok)
		assert.Empty(t, v)
	})

	t.Run("set then get", func(t *testing.T) {
		s := newStore(t)
		require.NoError(t, s.Set(ctx, "records:e_1", `[{"id":"r1","data":{"name":"Ünïcödé"}}]`))

		v, ok, err := s.Get(ctx, "records:e_1")
		require.NoError(t, err)
		assert.True(t, ok)
		assert.Equal(t, `[{"id":"r1","data":{"name":"Ünïcödé"}}]`, v)
	})

	t.Run("overwrite", func(t *testing.T) {
		s := newStore(t)
		require.NoError(t, s.Set(ctx, "documents", "[1]"))
		require.NoError(t, s.Set(ctx, "documents", "[2]"))

		v, _, err := s.Get(ctx, "documents")
		require.NoError(t, err)
		assert.Equal(t, "[2]", v)
	})

	t.Run("empty value is present", func(t *testing.T) {
		s := newStore(t)
		require.NoError(t, s.Set(ctx, "blank", ""))

		v, ok, err := s.Get(ctx, "blank")
		require.NoError(t, err)
		assert.True(t, ok)
		assert.Empty(t, v)
	})

	t.Run("list keys", func(t *testing.T) {
		s := newStore(t)
		want := []string{"document_index", "documents", "records:e_1", "records:e_2"}
		for _, k := range want {
			require.NoError(t, s.Set(ctx, k, "{}"))
		}

		keys, err := s.ListKeys(ctx)
		require.NoError(t, err)
		assert.ElementsMatch(t, want, keys)
	})

	t.Run("concurrent writers", func(t *testing.T) {
		s := newStore(t)
		var wg sync.WaitGroup
		for i := 0; i < 16; i++ {
			wg.Add(1)
			go func(i int) {
				defer wg.Done()
				assert.NoError(t, s.Set(ctx, fmt.Sprintf("records:e_%d", i), "[]"))
			}(i)
		}
		wg.Wait()

		keys, err := s.ListKeys(ctx)
		require.NoError(t, err)
		assert.Len(t, keys, 16)
	})
}
