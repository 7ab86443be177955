package record

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"golang.org/x/exp/slog"

	"vaultkeeper/internal/domain/normalize"
)

type Servicer interface {
	Upsert(ctx context.Context, entityID string, rec Record) (*Record, error)
	Delete(ctx context.Context, entityID, recordID string) error
	List(ctx context.Context, entityID string) ([]Record, error)
	Get(ctx context.Context, entityID, recordID string) (*Record, error)
	DeleteEntity(ctx context.Context, entityID string) error
	Rows(rec Record) []normalize.Row
	Tables(rec Record) []normalize.Table
}

// Service owns every entity's record list. Writes to one entity are
// serialised in-process; writers in other processes can still race.
type Service struct {
	repo       Repository
	normalizer *normalize.Normalizer
	index      IndexUpdater
	now        func() time.Time
	newID      func() string
	locks      entityLocks
	log        *slog.Logger
}

type Option func(*Service)

func WithClock(now func() time.Time) Option {
	return func(s *Service) { s.now = now }
}

func WithIDs(newID func() string) Option {
	return func(s *Service) { s.newID = newID }
}

// NewService creates a new record service
func NewService(repo Repository, normalizer *normalize.Normalizer, index IndexUpdater, log *slog.Logger, opts ...Option) *Service {
	s := &Service{
		repo:       repo,
		normalizer: normalizer,
		index:      index,
		now:        time.Now,
		newID:      func() string { return uuid.New().String() },
		log:        log.With("component", "record_service"),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Upsert canonicalises rec.Data, stamps the record and stores it in the
// entity's list: an existing id keeps its position, a new record goes first.
// The document index is updated with the entity's full list afterwards.
func (s *Service) Upsert(ctx context.Context, entityID string, rec Record) (*Record, error) {
	if entityID == "" {
		return nil, ErrInvalidEntity
	}
	if rec.RecordType == "" {
		return nil, ErrInvalidType
	}

	unlock := s.locks.lock(entityID)
	defer unlock()

	records, err := s.repo.List(ctx, entityID)
	if err != nil {
		s.log.Error("failed to load records", "entity_id", entityID, "error", err)
		return nil, fmt.Errorf("upsert record: %w", err)
	}

	now := s.now().UTC()
	rec.EntityID = entityID
	rec.Data = s.normalizer.ForSave(rec.RecordType, rec.Data)
	rec.Attachments = cleanAttachments(rec.Attachments)
	if rec.ID == "" {
		rec.ID = s.newID()
	}
	if strings.TrimSpace(rec.Title) == "" {
		rec.Title = rec.RecordType.DisplayName()
	}
	rec.UpdatedAt = now

	next := make([]Record, 0, len(records)+1)
	if i := indexOf(records, rec.ID); i >= 0 {
		rec.CreatedAt = records[i].CreatedAt
		next = append(next, records...)
		next[i] = rec
	} else {
		if rec.CreatedAt.IsZero() {
			rec.CreatedAt = now
		}
		next = append(next, rec)
		next = append(next, records...)
	}

	if err := s.persist(ctx, entityID, next); err != nil {
		return nil, fmt.Errorf("upsert record: %w", err)
	}

	s.log.Info("record saved", "entity_id", entityID, "record_id", rec.ID, "type", rec.RecordType)
	return &rec, nil
}

// Delete removes the record. An unknown id is a no-op: nothing is written and
// the index is left alone.
func (s *Service) Delete(ctx context.Context, entityID, recordID string) error {
	unlock := s.locks.lock(entityID)
	defer unlock()

	records, err := s.repo.List(ctx, entityID)
	if err != nil {
		s.log.Error("failed to load records", "entity_id", entityID, "error", err)
		return fmt.Errorf("delete record: %w", err)
	}

	i := indexOf(records, recordID)
	if i < 0 {
		s.log.Debug("record to delete not found", "entity_id", entityID, "record_id", recordID)
		return nil
	}

	next := make([]Record, 0, len(records)-1)
	next = append(next, records[:i]...)
	next = append(next, records[i+1:]...)

	if err := s.persist(ctx, entityID, next); err != nil {
		return fmt.Errorf("delete record: %w", err)
	}

	s.log.Info("record deleted", "entity_id", entityID, "record_id", recordID)
	return nil
}

// DeleteEntity drops every record of the entity along with its share of the
// document index.
func (s *Service) DeleteEntity(ctx context.Context, entityID string) error {
	unlock := s.locks.lock(entityID)
	defer unlock()

	if err := s.persist(ctx, entityID, []Record{}); err != nil {
		return fmt.Errorf("delete entity records: %w", err)
	}

	s.log.Info("entity records deleted", "entity_id", entityID)
	return nil
}

// List returns the entity's records in stored order.
func (s *Service) List(ctx context.Context, entityID string) ([]Record, error) {
	records, err := s.repo.List(ctx, entityID)
	if err != nil {
		s.log.Error("failed to list records", "entity_id", entityID, "error", err)
		return nil, fmt.Errorf("list records: %w", err)
	}
	if records == nil {
		records = []Record{}
	}
	return records, nil
}

// Get returns nil without an error when the record does not exist.
func (s *Service) Get(ctx context.Context, entityID, recordID string) (*Record, error) {
	records, err := s.List(ctx, entityID)
	if err != nil {
		return nil, err
	}
	if i := indexOf(records, recordID); i >= 0 {
		return &records[i], nil
	}
	return nil, nil
}

func (s *Service) Rows(rec Record) []normalize.Row {
	return s.normalizer.Rows(rec.RecordType, rec.Data)
}

func (s *Service) Tables(rec Record) []normalize.Table {
	return s.normalizer.Tables(rec.RecordType, rec.Data)
}

func (s *Service) persist(ctx context.Context, entityID string, records []Record) error {
	if err := s.repo.Save(ctx, entityID, records); err != nil {
		s.log.Error("failed to save records", "entity_id", entityID, "error", err)
		return err
	}
	if err := s.index.UpdateForEntity(ctx, entityID, records); err != nil {
		s.log.Error("failed to update document index", "entity_id", entityID, "error", err)
		return fmt.Errorf("update document index: %w", err)
	}
	return nil
}

func cleanAttachments(in []Attachment) []Attachment {
	out := make([]Attachment, 0, len(in))
	for _, a := range in {
		a.DocumentID = strings.TrimSpace(a.DocumentID)
		if a.DocumentID == "" {
			continue
		}
		out = append(out, a)
	}
	return out
}

// entityLocks hands out one mutex per entity id. Entries are never removed.
type entityLocks struct {
	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

func (l *entityLocks) lock(entityID string) (unlock func()) {
	l.mu.Lock()
	if l.locks == nil {
		l.locks = make(map[string]*sync.Mutex)
	}
	m, ok := l.locks[entityID]
	if !ok {
		m = &sync.Mutex{}
		l.locks[entityID] = m
	}
	l.mu.Unlock()

	m.Lock()
	return m.Unlock
}
