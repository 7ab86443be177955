// Package kv maps the domain repositories onto a storage.Store. Every
// collection is one JSON document under a fixed key.
package kv

import (
	"context"
	"encoding/json"
	"fmt"

	"vaultkeeper/internal/infrastructure/storage"
)

const (
	recordsPrefix = "records:"
	documentsKey  = "documents"
	entitiesKey   = "entities"
	indexKey      = "document_index"
)

// load decodes key into dst. A missing key leaves dst untouched and reports
// found=false. Decode failures are wrapped with corrupt.
func load(ctx context.Context, store storage.Store, key string, dst any, corrupt error) (found bool, err error) {
	raw, ok, err := store.Get(ctx, key)
	if err != nil {
		return false, fmt.Errorf("get %s: %w", key, err)
	}
	if !ok {
		return false, nil
	}
	if err := json.Unmarshal([]byte(raw), dst); err != nil {
		return true, fmt.Errorf("%w: %s: %v", corrupt, key, err)
	}
	return true, nil
}

func save(ctx context.Context, store storage.Store, key string, v any) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encode %s: %w", key, err)
	}
	if err := store.Set(ctx, key, string(raw)); err != nil {
		return fmt.Errorf("set %s: %w", key, err)
	}
	return nil
}
