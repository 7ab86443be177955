package entity

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"golang.org/x/exp/slog"
)

type Servicer interface {
	Create(ctx context.Context, name string, kind Kind) (*Entity, error)
	List(ctx context.Context) ([]Entity, error)
	Get(ctx context.Context, id string) (*Entity, error)
	Delete(ctx context.Context, id string) error
}

type Service struct {
	mu      sync.Mutex
	repo    Repository
	records RecordRemover
	now     func() time.Time
	newID   func() string
	log     *slog.Logger
}

func NewService(repo Repository, records RecordRemover, log *slog.Logger) *Service {
	return &Service{
		repo:    repo,
		records: records,
		now:     time.Now,
		newID:   func() string { return uuid.New().String() },
		log:     log.With("component", "entity_service"),
	}
}

func (s *Service) Create(ctx context.Context, name string, kind Kind) (*Entity, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrInvalidName
	}
	if kind == "" {
		kind = KindPerson
	}
	if !kind.Valid() {
		return nil, fmt.Errorf("%w: %q", ErrInvalidKind, kind)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	entities, err := s.repo.List(ctx)
	if err != nil {
		s.log.Error("failed to load entities", "error", err)
		return nil, fmt.Errorf("create entity: %w", err)
	}

	e := Entity{ID: s.newID(), Name: name, Kind: kind, CreatedAt: s.now().UTC()}
	entities = append(entities, e)

	if err := s.repo.Save(ctx, entities); err != nil {
		s.log.Error("failed to save entities", "entity_id", e.ID, "error", err)
		return nil, fmt.Errorf("create entity: %w", err)
	}

	s.log.Info("entity created", "entity_id", e.ID, "kind", e.Kind)
	return &e, nil
}

func (s *Service) List(ctx context.Context) ([]Entity, error) {
	entities, err := s.repo.List(ctx)
	if err != nil {
		s.log.Error("failed to list entities", "error", err)
		return nil, fmt.Errorf("list entities: %w", err)
	}
	if entities == nil {
		entities = []Entity{}
	}
	return entities, nil
}

// Get returns nil without an error for an unknown id.
func (s *Service) Get(ctx context.Context, id string) (*Entity, error) {
	entities, err := s.List(ctx)
	if err != nil {
		return nil, err
	}
	for i := range entities {
		if entities[i].ID == id {
			return &entities[i], nil
		}
	}
	return nil, nil
}

// Delete removes the entity and all of its records. The records go first so a
// failure leaves the entity in place to retry against.
func (s *Service) Delete(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	entities, err := s.repo.List(ctx)
	if err != nil {
		s.log.Error("failed to load entities", "error", err)
		return fmt.Errorf("delete entity: %w", err)
	}

	kept := make([]Entity, 0, len(entities))
	for _, e := range entities {
		if e.ID != id {
			kept = append(kept, e)
		}
	}
	if len(kept) == len(entities) {
		return ErrNotFound
	}

	if err := s.records.DeleteEntity(ctx, id); err != nil {
		s.log.Error("failed to delete entity records", "entity_id", id, "error", err)
		return fmt.Errorf("delete entity: %w", err)
	}
	if err := s.repo.Save(ctx, kept); err != nil {
		s.log.Error("failed to save entities", "entity_id", id, "error", err)
		return fmt.Errorf("delete entity: %w", err)
	}

	s.log.Info("entity deleted", "entity_id", id)
	return nil
}
