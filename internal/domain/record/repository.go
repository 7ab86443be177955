package record

import (
	"context"
)

// Repository persists each entity's ordered record list as one unit.
type Repository interface {
	// List returns the entity's records; an unknown entity has none.
	List(ctx context.Context, entityID string) ([]Record, error)
	// Save replaces the entity's whole record list.
	Save(ctx context.Context, entityID string, records []Record) error
	// Entities lists every entity that has a stored record list.
	Entities(ctx context.Context) ([]string, error)
}

// IndexUpdater is told about an entity's full record list after every write.
type IndexUpdater interface {
	UpdateForEntity(ctx context.Context, entityID string, records []Record) error
}
