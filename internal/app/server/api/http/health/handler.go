package health

import (
	"context"

	"github.com/danielgtaylor/huma/v2"
	"golang.org/x/exp/slog"
)

type Handler struct {
	ready      func(ctx context.Context) error
	log        *slog.Logger
	middleware huma.Middlewares
}

// NewHandler takes a readiness probe; nil means always ready.
func NewHandler(ready func(ctx context.Context) error, log *slog.Logger, middleware huma.Middlewares) *Handler {
	return &Handler{
		ready:      ready,
		log:        log,
		middleware: middleware,
	}
}

func (h *Handler) SetupRoutes(api huma.API) {
	huma.Register(api, h.healthCheckOp(), h.healthCheck)
}

func (h *Handler) healthCheck(ctx context.Context, _ *Input) (*Output, error) {
	h.log.Debug("health check request received")

	if h.ready != nil {
		if err := h.ready(ctx); err != nil {
			h.log.Error("health check failed", "error", err)
			return nil, huma.Error503ServiceUnavailable("document index unavailable", err)
		}
	}

	return &Output{
		Body: Response{
			Status: "OK",
			Index:  "ready",
		},
	}, nil
}
