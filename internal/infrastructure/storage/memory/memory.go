package memory

import (
	"context"
	"sort"
	"sync"

	"vaultkeeper/internal/infrastructure/storage"
)

// Storage keeps everything in a map. Data does not outlive the process.
type Storage struct {
	mu     sync.RWMutex
	data   map[string]string
	closed bool
}

func New() *Storage {
	return &Storage{data: make(map[string]string)}
}

func (s *Storage) Get(_ context.Context, key string) (string, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.closed {
		return "", false, storage.ErrClosed
	}
	v, ok := s.data[key]
	return v, ok, nil
}

func (s *Storage) Set(_ context.Context, key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return storage.ErrClosed
	}
	s.data[key] = value
	return nil
}

// ListKeys returns keys in lexical order.
func (s *Storage) ListKeys(_ context.Context) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.closed {
		return nil, storage.ErrClosed
	}
	keys := make([]string, 0, len(s.data))
	for k := range s.data {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys, nil
}

func (s *Storage) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.closed = true
	return nil
}
