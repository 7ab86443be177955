package redis

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"

	"vaultkeeper/internal/config"
)

const scanBatch = 256

type Storage struct {
	rdb *redis.Client
}

func NewRedis(addr string, password string, db int) *redis.Client {
	return redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})
}

// New connects using cfg.Redis and checks the server answers.
func New(ctx context.Context, cfg config.Redis) (*Storage, error) {
	rdb := NewRedis(cfg.Addr, cfg.Password, cfg.DB)
	if err := rdb.Ping(ctx).Err(); err != nil {
		rdb.Close()
		return nil, fmt.Errorf("ping redis: %w", err)
	}
	return &Storage{rdb: rdb}, nil
}

func (s *Storage) Get(ctx context.Context, key string) (string, bool, error) {
	v, err := s.rdb.Get(ctx, key).Result()
	if errors.Is(err, redis.Nil) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("get %q: %w", key, err)
	}
	return v, true, nil
}

func (s *Storage) Set(ctx context.Context, key, value string) error {
	if err := s.rdb.Set(ctx, key, value, 0).Err(); err != nil {
		return fmt.Errorf("set %q: %w", key, err)
	}
	return nil
}

// ListKeys walks the keyspace with SCAN.
func (s *Storage) ListKeys(ctx context.Context) ([]string, error) {
	keys := []string{}
	iter := s.rdb.Scan(ctx, 0, "*", scanBatch).Iterator()
	for iter.Next(ctx) {
		keys = append(keys, iter.Val())
	}
	if err := iter.Err(); err != nil {
		return nil, fmt.Errorf("scan keys: %w", err)
	}
	return keys, nil
}

func (s *Storage) Close() error {
	return s.rdb.Close()
}
