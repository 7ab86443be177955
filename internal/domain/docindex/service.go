package docindex

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"golang.org/x/exp/slog"

	"vaultkeeper/internal/domain/record"
)

type Servicer interface {
	Load(ctx context.Context) error
	RebuildAll(ctx context.Context) error
	UpdateForEntity(ctx context.Context, entityID string, records []record.Record) error
	Lookup(ctx context.Context, documentID string) ([]Ref, error)
}

// Service keeps the index in memory and persists it after every change.
// The first call loads it, rebuilding when nothing usable is stored.
type Service struct {
	mu      sync.Mutex
	idx     Index
	repo    Repository
	records RecordSource
	log     *slog.Logger
}

func NewService(repo Repository, records RecordSource, log *slog.Logger) *Service {
	return &Service{
		repo:    repo,
		records: records,
		log:     log.With("component", "document_index"),
	}
}

// Load reads the persisted index, falling back to a full rebuild when it is
// missing or corrupt. Storage errors are returned as is.
func (s *Service) Load(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.load(ctx)
}

func (s *Service) RebuildAll(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.rebuild(ctx)
}

// UpdateForEntity replaces the entity's references with those declared by
// records and persists the result.
func (s *Service) UpdateForEntity(ctx context.Context, entityID string, records []record.Record) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.ensureLoaded(ctx); err != nil {
		return err
	}

	s.idx.ReplaceEntity(entityID, records)
	if err := s.repo.Save(ctx, s.idx); err != nil {
		s.log.Error("failed to persist index", "entity_id", entityID, "error", err)
		return fmt.Errorf("persist document index: %w", err)
	}

	s.log.Debug("index updated", "entity_id", entityID, "records", len(records))
	return nil
}

// Lookup lists the records attaching documentID; an unknown document yields
// an empty slice.
func (s *Service) Lookup(ctx context.Context, documentID string) ([]Ref, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.ensureLoaded(ctx); err != nil {
		return nil, err
	}
	return s.idx.Lookup(documentID), nil
}

func (s *Service) ensureLoaded(ctx context.Context) error {
	if s.idx != nil {
		return nil
	}
	return s.load(ctx)
}

func (s *Service) load(ctx context.Context) error {
	idx, err := s.repo.Load(ctx)
	switch {
	case err == nil:
		if idx == nil {
			idx = make(Index)
		}
		s.idx = idx
		s.log.Debug("index loaded", "documents", len(idx))
		return nil
	case errors.Is(err, ErrNotFound), errors.Is(err, ErrCorrupt):
		s.log.Info("rebuilding document index", "reason", err)
		return s.rebuild(ctx)
	default:
		s.log.Error("failed to load index", "error", err)
		return fmt.Errorf("load document index: %w", err)
	}
}

func (s *Service) rebuild(ctx context.Context) error {
	entityIDs, err := s.records.Entities(ctx)
	if err != nil {
		s.log.Error("failed to list entities", "error", err)
		return fmt.Errorf("rebuild document index: %w", err)
	}

	byEntity := make(map[string][]record.Record, len(entityIDs))
	for _, id := range entityIDs {
		records, err := s.records.List(ctx, id)
		if err != nil {
			s.log.Error("failed to list records", "entity_id", id, "error", err)
			return fmt.Errorf("rebuild document index: %w", err)
		}
		byEntity[id] = records
	}

	idx := Build(byEntity)
	if err := s.repo.Save(ctx, idx); err != nil {
		s.log.Error("failed to persist index", "error", err)
		return fmt.Errorf("persist document index: %w", err)
	}
	s.idx = idx

	s.log.Info("document index rebuilt", "entities", len(entityIDs), "documents", len(idx))
	return nil
}
