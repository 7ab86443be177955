// Package driver opens the configured storage backend and stacks the
// optional decorators on top of it.
package driver

import (
	"context"
	"fmt"

	"golang.org/x/exp/slog"

	"vaultkeeper/internal/config"
	"vaultkeeper/internal/infrastructure/storage"
	"vaultkeeper/internal/infrastructure/storage/cache"
	"vaultkeeper/internal/infrastructure/storage/encrypted"
	"vaultkeeper/internal/infrastructure/storage/memory"
	"vaultkeeper/internal/infrastructure/storage/postgres"
	"vaultkeeper/internal/infrastructure/storage/redis"
	"vaultkeeper/internal/infrastructure/storage/sqlite"
)

// Open returns cache(encrypted(namespaced(backend))), skipping the layers the
// configuration leaves disabled.
func Open(ctx context.Context, cfg config.Storage, log *slog.Logger) (storage.Store, error) {
	log = log.With("component", "storage", "driver", cfg.Driver)

	base, err := openBackend(ctx, cfg)
	if err != nil {
		log.Error("failed to open storage", "error", err)
		return nil, err
	}

	store := storage.Namespaced(base, cfg.Namespace)

	if cfg.Passphrase != "" {
		sealed, err := encrypted.New(ctx, store, cfg.Passphrase, encrypted.DefaultParams)
		if err != nil {
			base.Close()
			log.Error("failed to unlock storage", "error", err)
			return nil, fmt.Errorf("open encrypted storage: %w", err)
		}
		store = sealed
	}

	if cfg.CacheTTL > 0 {
		store = cache.New(store, cfg.CacheTTL)
	}

	log.Info("storage opened",
		"namespace", cfg.Namespace,
		"encrypted", cfg.Passphrase != "",
		"cache_ttl", cfg.CacheTTL,
	)
	return store, nil
}

func openBackend(ctx context.Context, cfg config.Storage) (storage.Store, error) {
	switch cfg.Driver {
	case config.DriverMemory:
		return memory.New(), nil
	case config.DriverSQLite:
		return sqlite.New(ctx, cfg.SQLitePath)
	case config.DriverPostgres:
		return postgres.New(ctx, cfg)
	case config.DriverRedis:
		return redis.New(ctx, cfg.Redis)
	}
	return nil, fmt.Errorf("%w: unknown storage driver %q", config.ErrInvalidConfig, cfg.Driver)
}
