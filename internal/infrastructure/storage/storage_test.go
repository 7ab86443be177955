package storage_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"vaultkeeper/internal/infrastructure/storage"
	"vaultkeeper/internal/infrastructure/storage/memory"
)

func TestNamespaced(t *testing.T) {
	ctx := context.Background()
	base := memory.New()
	require.NoError(t, base.Set(ctx, "other:records:e_1", "[]"))

	a := storage.Namespaced(base, "alice")
	b := storage.Namespaced(base, "bob")

	require.NoError(t, a.Set(ctx, "records:e_1", `[{"id":"r1"}]`))
	require.NoError(t, b.Set(ctx, "documents", "[]"))

	v, ok, err := a.Get(ctx, "records:e_1")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, `[{"id":"r1"}]`, v)

	_, ok, err = b.Get(ctx, "records:e_1")
	require.NoError(t, err)
	assert.False(t, ok)

	keys, err := a.ListKeys(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"records:e_1"}, keys)

	raw, err := base.ListKeys(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"alice:records:e_1", "bob:documents", "other:records:e_1"}, raw)
}

func TestNamespaced_Empty(t *testing.T) {
	base := memory.New()
	assert.Same(t, base, storage.Namespaced(base, "").(*memory.Storage))
}

func TestMemory_Closed(t *testing.T) {
	ctx := context.Background()
	s := memory.New()
	require.NoError(t, s.Close())

	_, _, err := s.Get(ctx, "k")
	assert.ErrorIs(t, err, storage.ErrClosed)
	assert.ErrorIs(t, s.Set(ctx, "k", "v"), storage.ErrClosed)
	_, err = s.ListKeys(ctx)
	assert.ErrorIs(t, err, storage.ErrClosed)
}
