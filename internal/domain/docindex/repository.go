package docindex

import (
	"context"

	"vaultkeeper/internal/domain/record"
)

// Repository stores the serialized index. Load reports a missing copy with
// ErrNotFound and an undecodable one with ErrCorrupt.
type Repository interface {
	Load(ctx context.Context) (Index, error)
	Save(ctx context.Context, idx Index) error
}

// RecordSource is the source of truth scanned by a full rebuild.
type RecordSource interface {
	Entities(ctx context.Context) ([]string, error)
	List(ctx context.Context, entityID string) ([]record.Record, error)
}
