package entity

import "context"

type Repository interface {
	List(ctx context.Context) ([]Entity, error)
	Save(ctx context.Context, entities []Entity) error
}

// RecordRemover drops an entity's records together with their index entries.
type RecordRemover interface {
	DeleteEntity(ctx context.Context, entityID string) error
}
