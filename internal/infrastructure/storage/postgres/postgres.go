package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"vaultkeeper/internal/config"
	"vaultkeeper/internal/infrastructure/migration"
)

type Storage struct {
	pool *pgxpool.Pool
}

// New connects to cfg.DatabaseURI and brings the schema up to date before
// returning.
func New(ctx context.Context, cfg config.Storage) (*Storage, error) {
	pool, err := pgxpool.New(ctx, cfg.DatabaseURI)
	if err != nil {
		return nil, fmt.Errorf("create pool: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	mg := migration.NewMigration(cfg, migration.DefaultEngine)
	if err := mg.Up(); err != nil {
		pool.Close()
		return nil, fmt.Errorf("migration error: %w", err)
	}
	return &Storage{pool: pool}, nil
}

func (s *Storage) Get(ctx context.Context, key string) (string, bool, error) {
	const query = `SELECT value FROM kv WHERE key = $1`

	var value string
	err := s.pool.QueryRow(ctx, query, key).Scan(&value)
	if errors.Is(err, pgx.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("get %q: %w", key, err)
	}
	return value, true, nil
}

func (s *Storage) Set(ctx context.Context, key, value string) error {
	const query = `
		INSERT INTO kv (key, value, updated_at) VALUES ($1, $2, now())
		ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value, updated_at = EXCLUDED.updated_at`

	if _, err := s.pool.Exec(ctx, query, key, value); err != nil {
		return fmt.Errorf("set %q: %w", key, err)
	}
	return nil
}

func (s *Storage) ListKeys(ctx context.Context) ([]string, error) {
	const query = `SELECT key FROM kv ORDER BY key`

	rows, err := s.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list keys: %w", err)
	}
	keys, err := pgx.CollectRows(rows, pgx.RowTo[string])
	if err != nil {
		return nil, fmt.Errorf("list keys: %w", err)
	}
	return keys, nil
}

func (s *Storage) Close() error {
	s.pool.Close()
	return nil
}

func (s *Storage) Pool() *pgxpool.Pool {
	return s.pool
}
