package record

import (
	"context"
	"errors"

	"github.com/danielgtaylor/huma/v2"
	"golang.org/x/exp/slog"

	"vaultkeeper/internal/domain/record"
	"vaultkeeper/internal/domain/schema"
)

type Handler struct {
	service    record.Servicer
	log        *slog.Logger
	middleware huma.Middlewares
}

func NewHandler(service record.Servicer, log *slog.Logger, mws huma.Middlewares) *Handler {
	return &Handler{
		service:    service,
		log:        log,
		middleware: mws,
	}
}

func (h *Handler) SetupRoutes(api huma.API) {
	huma.Register(api, h.listOp(), h.list)
	huma.Register(api, h.findOp(), h.find)
	huma.Register(api, h.upsertOp(), h.upsert)
	huma.Register(api, h.deleteOp(), h.delete)
}

func (h *Handler) list(ctx context.Context, input *listInput) (*listOutput, error) {
	records, err := h.service.List(ctx, input.EntityID)
	if err != nil {
		return nil, toHTTPError(err)
	}
	return &listOutput{Body: records}, nil
}

func (h *Handler) find(ctx context.Context, input *findInput) (*findOutput, error) {
	rec, err := h.service.Get(ctx, input.EntityID, input.RecordID)
	if err != nil {
		return nil, toHTTPError(err)
	}
	if rec == nil {
		return nil, huma.Error404NotFound("record not found")
	}

	return &findOutput{
		Body: view{
			Record: *rec,
			Rows:   h.service.Rows(*rec),
			Tables: h.service.Tables(*rec),
		},
	}, nil
}

func (h *Handler) upsert(ctx context.Context, input *upsertInput) (*upsertOutput, error) {
	rec, err := h.service.Upsert(ctx, input.EntityID, record.Record{
		ID:          input.Body.ID,
		RecordType:  schema.RecordType(input.Body.RecordType),
		Title:       input.Body.Title,
		Data:        input.Body.Data,
		Attachments: input.Body.Attachments,
	})
	if err != nil {
		return nil, toHTTPError(err)
	}
	return &upsertOutput{Body: *rec}, nil
}

func (h *Handler) delete(ctx context.Context, input *deleteInput) (*struct{}, error) {
	if err := h.service.Delete(ctx, input.EntityID, input.RecordID); err != nil {
		return nil, toHTTPError(err)
	}
	return nil, nil
}

func toHTTPError(err error) error {
	switch {
	case errors.Is(err, record.ErrInvalidEntity), errors.Is(err, record.ErrInvalidType):
		return huma.Error422UnprocessableEntity(err.Error())
	default:
		return huma.Error500InternalServerError("record storage failed", err)
	}
}
