package kv

import (
	"context"

	"vaultkeeper/internal/domain/document"
	"vaultkeeper/internal/infrastructure/storage"
)

type DocumentRepository struct {
	store storage.Store
}

func NewDocumentRepository(store storage.Store) *DocumentRepository {
	return &DocumentRepository{store: store}
}

func (r *DocumentRepository) List(ctx context.Context) ([]document.Document, error) {
	docs := []document.Document{}
	if _, err := load(ctx, r.store, documentsKey, &docs, document.ErrCorrupt); err != nil {
		return nil, err
	}
	return docs, nil
}

func (r *DocumentRepository) Save(ctx context.Context, docs []document.Document) error {
	return save(ctx, r.store, documentsKey, docs)
}
