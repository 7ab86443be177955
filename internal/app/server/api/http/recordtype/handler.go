package recordtype

import (
	"context"

	"github.com/danielgtaylor/huma/v2"
	"golang.org/x/exp/slog"

	"vaultkeeper/internal/domain/normalize"
	"vaultkeeper/internal/domain/schema"
)

type Handler struct {
	normalizer *normalize.Normalizer
	log        *slog.Logger
	middleware huma.Middlewares
}

func NewHandler(normalizer *normalize.Normalizer, log *slog.Logger, mws huma.Middlewares) *Handler {
	return &Handler{
		normalizer: normalizer,
		log:        log,
		middleware: mws,
	}
}

func (h *Handler) SetupRoutes(api huma.API) {
	huma.Register(api, h.listOp(), h.list)
	huma.Register(api, h.fieldsOp(), h.fields)
	huma.Register(api, h.normalizeOp(), h.normalize)
	huma.Register(api, h.displayOp(), h.display)
}

func (h *Handler) list(_ context.Context, _ *struct{}) (*listOutput, error) {
	types := h.normalizer.Registry().Types()
	out := make([]typeView, 0, len(types))
	for _, t := range types {
		out = append(out, typeView{
			Type:        string(t),
			DisplayName: t.DisplayName(),
			Category:    string(t.Category()),
		})
	}
	return &listOutput{Body: out}, nil
}

func (h *Handler) fields(_ context.Context, input *typeInput) (*fieldsOutput, error) {
	fields := h.normalizer.Registry().Fields(schema.RecordType(input.Type))
	return &fieldsOutput{Body: toFieldViews(fields, nil)}, nil
}

func (h *Handler) normalize(_ context.Context, input *payloadInput) (*normalizeOutput, error) {
	out := &normalizeOutput{}
	out.Body.Data = h.normalizer.ForSave(schema.RecordType(input.Type), input.Body.Data)
	return out, nil
}

func (h *Handler) display(_ context.Context, input *payloadInput) (*displayOutput, error) {
	rt := schema.RecordType(input.Type)
	payload, _ := input.Body.Data.(map[string]any)

	out := &displayOutput{}
	out.Body.Rows = h.normalizer.Rows(rt, payload)
	out.Body.Tables = h.normalizer.Tables(rt, payload)
	return out, nil
}
