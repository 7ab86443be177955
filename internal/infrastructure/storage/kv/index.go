package kv

import (
	"context"

	"vaultkeeper/internal/domain/docindex"
	"vaultkeeper/internal/infrastructure/storage"
)

type IndexRepository struct {
	store storage.Store
}

func NewIndexRepository(store storage.Store) *IndexRepository {
	return &IndexRepository{store: store}
}

func (r *IndexRepository) Load(ctx context.Context) (docindex.Index, error) {
	var idx docindex.Index
	found, err := load(ctx, r.store, indexKey, &idx, docindex.ErrCorrupt)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, docindex.ErrNotFound
	}
	if idx == nil {
		idx = docindex.Index{}
	}
	return idx, nil
}

func (r *IndexRepository) Save(ctx context.Context, idx docindex.Index) error {
	if idx == nil {
		idx = docindex.Index{}
	}
	return save(ctx, r.store, indexKey, idx)
}
