package kv

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"golang.org/x/exp/slog"

	"vaultkeeper/internal/domain/record"
	"vaultkeeper/internal/infrastructure/storage"
)

type RecordRepository struct {
	store storage.Store
	log   *slog.Logger
}

func NewRecordRepository(store storage.Store, log *slog.Logger) *RecordRepository {
	return &RecordRepository{store: store, log: log.With("component", "record_repository")}
}

func (r *RecordRepository) List(ctx context.Context, entityID string) ([]record.Record, error) {
	var records []record.Record
	if _, err := load(ctx, r.store, recordsPrefix+entityID, &records, record.ErrCorrupt); err != nil {
		r.log.Error("failed to read records", "entity_id", entityID, "error", err)
		return nil, err
	}
	if records == nil {
		records = []record.Record{}
	}
	return records, nil
}

func (r *RecordRepository) Save(ctx context.Context, entityID string, records []record.Record) error {
	if records == nil {
		records = []record.Record{}
	}
	return save(ctx, r.store, recordsPrefix+entityID, records)
}

// Entities returns the ids of every stored record list in lexical order.
func (r *RecordRepository) Entities(ctx context.Context) ([]string, error) {
	keys, err := r.store.ListKeys(ctx)
	if err != nil {
		return nil, fmt.Errorf("list keys: %w", err)
	}
	ids := make([]string, 0, len(keys))
	for _, k := range keys {
		if id, ok := strings.CutPrefix(k, recordsPrefix); ok && id != "" {
			ids = append(ids, id)
		}
	}
	sort.Strings(ids)
	return ids, nil
}
