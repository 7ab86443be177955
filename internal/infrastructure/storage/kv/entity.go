package kv

import (
	"context"

	"vaultkeeper/internal/domain/entity"
	"vaultkeeper/internal/infrastructure/storage"
)

type EntityRepository struct {
	store storage.Store
}

func NewEntityRepository(store storage.Store) *EntityRepository {
	return &EntityRepository{store: store}
}

func (r *EntityRepository) List(ctx context.Context) ([]entity.Entity, error) {
	entities := []entity.Entity{}
	if _, err := load(ctx, r.store, entitiesKey, &entities, entity.ErrCorrupt); err != nil {
		return nil, err
	}
	return entities, nil
}

func (r *EntityRepository) Save(ctx context.Context, entities []entity.Entity) error {
	return save(ctx, r.store, entitiesKey, entities)
}
