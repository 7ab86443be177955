package kv

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/exp/slog"

	"vaultkeeper/internal/domain/docindex"
	"vaultkeeper/internal/domain/document"
	"vaultkeeper/internal/domain/entity"
	"vaultkeeper/internal/domain/record"
	"vaultkeeper/internal/domain/schema"
	"vaultkeeper/internal/infrastructure/storage"
	"vaultkeeper/internal/infrastructure/storage/memory"
)

func TestRecordRepository(t *testing.T) {
	ctx := context.Background()
	store := memory.New()
	repo := NewRecordRepository(store, slog.Default())

	got, err := repo.List(ctx, "e_1")
	require.NoError(t, err)
	assert.NotNil(t, got)
	assert.Empty(t, got)

	created := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	records := []record.Record{{
		ID:          "r_1",
		EntityID:    "e_1",
		RecordType:  schema.TypePassport,
		Title:       "Passport",
		Data:        map[string]any{"firstName": "Ann"},
		Attachments: []record.Attachment{{DocumentID: "doc_1"}},
		CreatedAt:   created,
		UpdatedAt:   created,
	}}
	require.NoError(t, repo.Save(ctx, "e_1", records))
	require.NoError(t, repo.Save(ctx, "e_0", nil))
	require.NoError(t, store.Set(ctx, "documents", "[]"))

	got, err = repo.List(ctx, "e_1")
	require.NoError(t, err)
	assert.Equal(t, records, got)

	raw, ok, err := store.Get(ctx, "records:e_0")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "[]", raw)

	ids, err := repo.Entities(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"e_0", "e_1"}, ids)
}

func TestRecordRepository_Corrupt(t *testing.T) {
	ctx := context.Background()
	store := memory.New()
	require.NoError(t, store.Set(ctx, "records:e_1", "{oops"))

	_, err := NewRecordRepository(store, slog.Default()).List(ctx, "e_1")
	assert.ErrorIs(t, err, record.ErrCorrupt)
}

func TestRecordRepository_StoreErrors(t *testing.T) {
	ctx := context.Background()
	store := memory.New()
	require.NoError(t, store.Close())
	repo := NewRecordRepository(store, slog.Default())

	_, err := repo.List(ctx, "e_1")
	assert.ErrorIs(t, err, storage.ErrClosed)
	assert.ErrorIs(t, repo.Save(ctx, "e_1", nil), storage.ErrClosed)
	_, err = repo.Entities(ctx)
	assert.ErrorIs(t, err, storage.ErrClosed)
}

func TestDocumentRepository(t *testing.T) {
	ctx := context.Background()
	store := memory.New()
	repo := NewDocumentRepository(store)

	docs, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, []document.Document{}, docs)

	want := []document.Document{{ID: "doc_1", URI: "file:///a.pdf", Name: "a.pdf", MimeType: "application/pdf"}}
	require.NoError(t, repo.Save(ctx, want))
	docs, err = repo.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, want, docs)

	require.NoError(t, store.Set(ctx, "documents", "nope"))
	_, err = repo.List(ctx)
	assert.ErrorIs(t, err, document.ErrCorrupt)
}

func TestEntityRepository(t *testing.T) {
	ctx := context.Background()
	store := memory.New()
	repo := NewEntityRepository(store)

	want := []entity.Entity{{ID: "e_1", Name: "Rex", Kind: entity.KindPet}}
	require.NoError(t, repo.Save(ctx, want))
	got, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, want, got)

	require.NoError(t, store.Set(ctx, "entities", "{"))
	_, err = repo.List(ctx)
	assert.ErrorIs(t, err, entity.ErrCorrupt)
}

func TestIndexRepository(t *testing.T) {
	ctx := context.Background()
	store := memory.New()
	repo := NewIndexRepository(store)

	_, err := repo.Load(ctx)
	assert.ErrorIs(t, err, docindex.ErrNotFound)

	want := docindex.Index{"doc_1": {{EntityID: "e_1", RecordID: "r_1", RecordType: schema.TypePassport, Title: "Passport"}}}
	require.NoError(t, repo.Save(ctx, want))
	got, err := repo.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, want, got)

	require.NoError(t, repo.Save(ctx, nil))
	got, err = repo.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, docindex.Index{}, got)

	require.NoError(t, store.Set(ctx, "document_index", "[1,2"))
	_, err = repo.Load(ctx)
	assert.ErrorIs(t, err, docindex.ErrCorrupt)
	assert.False(t, errors.Is(err, docindex.ErrNotFound))
}
