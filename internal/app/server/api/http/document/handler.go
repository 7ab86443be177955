package document

import (
	"context"
	"errors"

	"github.com/danielgtaylor/huma/v2"
	"golang.org/x/exp/slog"

	"vaultkeeper/internal/domain/docindex"
	"vaultkeeper/internal/domain/document"
)

type Handler struct {
	documents  document.Servicer
	index      docindex.Servicer
	log        *slog.Logger
	middleware huma.Middlewares
}

func NewHandler(documents document.Servicer, index docindex.Servicer, log *slog.Logger, mws huma.Middlewares) *Handler {
	return &Handler{
		documents:  documents,
		index:      index,
		log:        log,
		middleware: mws,
	}
}

func (h *Handler) SetupRoutes(api huma.API) {
	huma.Register(api, h.listOp(), h.list)
	huma.Register(api, h.addOp(), h.add)
	huma.Register(api, h.findOp(), h.find)
	huma.Register(api, h.linksOp(), h.links)
	huma.Register(api, h.rebuildOp(), h.rebuild)
}

func (h *Handler) list(ctx context.Context, _ *struct{}) (*listOutput, error) {
	docs, err := h.documents.List(ctx)
	if err != nil {
		return nil, huma.Error500InternalServerError("document storage failed", err)
	}
	return &listOutput{Body: docs}, nil
}

func (h *Handler) add(ctx context.Context, input *addInput) (*documentOutput, error) {
	doc, err := h.documents.Add(ctx, document.Document{
		ID:       input.Body.ID,
		URI:      input.Body.URI,
		Name:     input.Body.Name,
		MimeType: input.Body.MimeType,
		Metadata: input.Body.Metadata,
	})
	if errors.Is(err, document.ErrInvalidURI) {
		return nil, huma.Error422UnprocessableEntity(err.Error())
	}
	if err != nil {
		return nil, huma.Error500InternalServerError("document storage failed", err)
	}
	return &documentOutput{Body: *doc}, nil
}

func (h *Handler) find(ctx context.Context, input *idInput) (*documentOutput, error) {
	doc, err := h.documents.Get(ctx, input.ID)
	if err != nil {
		return nil, huma.Error500InternalServerError("document storage failed", err)
	}
	if doc == nil {
		return nil, huma.Error404NotFound("document not found")
	}
	return &documentOutput{Body: *doc}, nil
}

func (h *Handler) links(ctx context.Context, input *idInput) (*linksOutput, error) {
	refs, err := h.index.Lookup(ctx, input.ID)
	if err != nil {
		return nil, huma.Error500InternalServerError("document index unavailable", err)
	}
	return &linksOutput{Body: refs}, nil
}

func (h *Handler) rebuild(ctx context.Context, _ *struct{}) (*rebuildOutput, error) {
	if err := h.index.RebuildAll(ctx); err != nil {
		h.log.Error("document index rebuild failed", "error", err)
		return nil, huma.Error500InternalServerError("document index rebuild failed", err)
	}
	out := &rebuildOutput{}
	out.Body.Status = "rebuilt"
	return out, nil
}
