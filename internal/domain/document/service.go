package document

import (
	"context"
	"fmt"
	"mime"
	"path"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"golang.org/x/exp/slog"
)

const defaultMimeType = "application/octet-stream"

type Servicer interface {
	Add(ctx context.Context, doc Document) (*Document, error)
	Get(ctx context.Context, id string) (*Document, error)
	List(ctx context.Context) ([]Document, error)
	Delete(ctx context.Context, id string) error
}

type Service struct {
	mu    sync.Mutex
	repo  Repository
	now   func() time.Time
	newID func() string
	log   *slog.Logger
}

func NewService(repo Repository, log *slog.Logger) *Service {
	return &Service{
		repo:  repo,
		now:   time.Now,
		newID: func() string { return uuid.New().String() },
		log:   log.With("component", "document_service"),
	}
}

// Add stores doc, filling in the id, name and mime type when missing. An
// existing id is replaced in place and keeps its creation time.
func (s *Service) Add(ctx context.Context, doc Document) (*Document, error) {
	doc.URI = strings.TrimSpace(doc.URI)
	if doc.URI == "" {
		return nil, ErrInvalidURI
	}
	if doc.ID == "" {
		doc.ID = s.newID()
	}
	if doc.Name == "" {
		doc.Name = path.Base(doc.URI)
	}
	if doc.MimeType == "" {
		doc.MimeType = guessMimeType(doc.Name, doc.URI)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	docs, err := s.repo.List(ctx)
	if err != nil {
		s.log.Error("failed to load documents", "error", err)
		return nil, fmt.Errorf("add document: %w", err)
	}

	replaced := false
	for i := range docs {
		if docs[i].ID == doc.ID {
			doc.CreatedAt = docs[i].CreatedAt
			docs[i] = doc
			replaced = true
			break
		}
	}
	if !replaced {
		doc.CreatedAt = s.now().UTC()
		docs = append(docs, doc)
	}

	if err := s.repo.Save(ctx, docs); err != nil {
		s.log.Error("failed to save documents", "document_id", doc.ID, "error", err)
		return nil, fmt.Errorf("add document: %w", err)
	}

	s.log.Info("document stored", "document_id", doc.ID, "mime_type", doc.MimeType)
	return &doc, nil
}

// Get returns nil without an error for an unknown id.
func (s *Service) Get(ctx context.Context, id string) (*Document, error) {
	docs, err := s.List(ctx)
	if err != nil {
		return nil, err
	}
	for i := range docs {
		if docs[i].ID == id {
			return &docs[i], nil
		}
	}
	return nil, nil
}

func (s *Service) List(ctx context.Context) ([]Document, error) {
	docs, err := s.repo.List(ctx)
	if err != nil {
		s.log.Error("failed to list documents", "error", err)
		return nil, fmt.Errorf("list documents: %w", err)
	}
	if docs == nil {
		docs = []Document{}
	}
	return docs, nil
}

// Delete removes the document. Records that still attach it keep their
// attachment; lookups simply stop resolving it.
func (s *Service) Delete(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	docs, err := s.repo.List(ctx)
	if err != nil {
		s.log.Error("failed to load documents", "error", err)
		return fmt.Errorf("delete document: %w", err)
	}

	kept := make([]Document, 0, len(docs))
	for _, d := range docs {
		if d.ID != id {
			kept = append(kept, d)
		}
	}
	if len(kept) == len(docs) {
		return nil
	}

	if err := s.repo.Save(ctx, kept); err != nil {
		s.log.Error("failed to save documents", "document_id", id, "error", err)
		return fmt.Errorf("delete document: %w", err)
	}

	s.log.Info("document deleted", "document_id", id)
	return nil
}

func guessMimeType(names ...string) string {
	for _, n := range names {
		ext := strings.ToLower(path.Ext(n))
		if ext == "" {
			continue
		}
		if t := mime.TypeByExtension(ext); t != "" {
			return t
		}
	}
	return defaultMimeType
}
