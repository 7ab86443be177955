package cache

import (
	"context"
	"time"

	"github.com/patrickmn/go-cache"

	"vaultkeeper/internal/infrastructure/storage"
)

// Storage is a read-through, write-through cache in front of another store.
// Only this process's writes refresh it; other writers become visible when
// an entry expires.
type Storage struct {
	storage.Store
	cache *cache.Cache
}

func New(store storage.Store, ttl time.Duration) *Storage {
	return &Storage{
		Store: store,
		cache: cache.New(ttl, 2*ttl),
	}
}

func (s *Storage) Get(ctx context.Context, key string) (string, bool, error) {
	if cached, found := s.cache.Get(key); found {
		return cached.(string), true, nil
	}

	v, ok, err := s.Store.Get(ctx, key)
	if err != nil || !ok {
		return v, ok, err
	}
	s.cache.Set(key, v, cache.DefaultExpiration)
	return v, true, nil
}

func (s *Storage) Set(ctx context.Context, key, value string) error {
	if err := s.Store.Set(ctx, key, value); err != nil {
		s.cache.Delete(key)
		return err
	}
	s.cache.Set(key, value, cache.DefaultExpiration)
	return nil
}

func (s *Storage) Close() error {
	s.cache.Flush()
	return s.Store.Close()
}
