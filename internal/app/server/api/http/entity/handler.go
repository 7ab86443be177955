package entity

import (
	"context"
	"errors"

	"github.com/danielgtaylor/huma/v2"
	"golang.org/x/exp/slog"

	"vaultkeeper/internal/domain/entity"
)

type Handler struct {
	service    entity.Servicer
	log        *slog.Logger
	middleware huma.Middlewares
}

func NewHandler(service entity.Servicer, log *slog.Logger, mws huma.Middlewares) *Handler {
	return &Handler{
		service:    service,
		log:        log,
		middleware: mws,
	}
}

func (h *Handler) SetupRoutes(api huma.API) {
	huma.Register(api, h.listOp(), h.list)
	huma.Register(api, h.createOp(), h.create)
	huma.Register(api, h.deleteOp(), h.delete)
}

func (h *Handler) list(ctx context.Context, _ *struct{}) (*listOutput, error) {
	entities, err := h.service.List(ctx)
	if err != nil {
		return nil, huma.Error500InternalServerError("entity storage failed", err)
	}
	return &listOutput{Body: entities}, nil
}

func (h *Handler) create(ctx context.Context, input *createInput) (*entityOutput, error) {
	e, err := h.service.Create(ctx, input.Body.Name, input.Body.Kind)
	switch {
	case errors.Is(err, entity.ErrInvalidName), errors.Is(err, entity.ErrInvalidKind):
		return nil, huma.Error422UnprocessableEntity(err.Error())
	case err != nil:
		return nil, huma.Error500InternalServerError("entity storage failed", err)
	}
	return &entityOutput{Body: *e}, nil
}

func (h *Handler) delete(ctx context.Context, input *deleteInput) (*struct{}, error) {
	err := h.service.Delete(ctx, input.EntityID)
	switch {
	case errors.Is(err, entity.ErrNotFound):
		return nil, huma.Error404NotFound("entity not found")
	case err != nil:
		return nil, huma.Error500InternalServerError("entity storage failed", err)
	}
	return nil, nil
}
