// Package api exposes the vault over HTTP:
//
//	GET    /api/v1/health
//	GET    /api/record-types
//	GET    /api/record-types/{type}/fields
//	POST   /api/record-types/{type}/normalize
//	POST   /api/record-types/{type}/display
//	GET    /api/entities
//	POST   /api/entities
//	DELETE /api/entities/{entityId}
//	GET    /api/entities/{entityId}/records
//	PUT    /api/entities/{entityId}/records
//	GET    /api/entities/{entityId}/records/{recordId}
//	DELETE /api/entities/{entityId}/records/{recordId}
//	GET    /api/documents
//	POST   /api/documents
//	GET    /api/documents/{id}
//	GET    /api/documents/{id}/records
//	POST   /api/document-index/rebuild
package api

import (
	"context"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humachi"
	"github.com/go-chi/chi/v5"
	"golang.org/x/exp/slog"

	"vaultkeeper/internal/app/core"
	documentAPI "vaultkeeper/internal/app/server/api/http/document"
	entityAPI "vaultkeeper/internal/app/server/api/http/entity"
	healthAPI "vaultkeeper/internal/app/server/api/http/health"
	"vaultkeeper/internal/app/server/api/http/middleware"
	"vaultkeeper/internal/app/server/api/http/middleware/logger"
	recordAPI "vaultkeeper/internal/app/server/api/http/record"
	recordTypeAPI "vaultkeeper/internal/app/server/api/http/recordtype"
)

type Handlers struct {
	Health     *healthAPI.Handler
	RecordType *recordTypeAPI.Handler
	Record     *recordAPI.Handler
	Document   *documentAPI.Handler
	Entity     *entityAPI.Handler
}

// New creates a *chi.Mux with every operation registered through huma.
func New(c *core.Core, log *slog.Logger) *chi.Mux {
	mux := chi.NewMux()

	config := huma.DefaultConfig("Vaultkeeper API", "1.0.0")
	API := humachi.New(mux, config)

	h := handlers(c, log)
	h.Health.SetupRoutes(API)
	h.RecordType.SetupRoutes(API)
	h.Record.SetupRoutes(API)
	h.Document.SetupRoutes(API)
	h.Entity.SetupRoutes(API)

	return mux
}

func handlers(c *core.Core, log *slog.Logger) *Handlers {
	loggerMW := logger.New(log)
	middlewares := middleware.NewContainer()

	middlewares.Add(loggerMW.Middleware())
	healthHandler := healthAPI.NewHandler(func(ctx context.Context) error {
		_, err := c.LookupRecordsForDocument(ctx, "")
		return err
	}, log, middlewares.GetAllAndClear())

	middlewares.Add(loggerMW.Middleware())
	recordTypeHandler := recordTypeAPI.NewHandler(c.Normalizer, log, middlewares.GetAllAndClear())

	middlewares.Add(loggerMW.Middleware())
	recordHandler := recordAPI.NewHandler(c.Records, log, middlewares.GetAllAndClear())

	middlewares.Add(loggerMW.Middleware())
	documentHandler := documentAPI.NewHandler(c.Documents, c.Index, log, middlewares.GetAllAndClear())

	middlewares.Add(loggerMW.Middleware())
	entityHandler := entityAPI.NewHandler(c.Entities, log, middlewares.GetAllAndClear())

	return &Handlers{
		Health:     healthHandler,
		RecordType: recordTypeHandler,
		Record:     recordHandler,
		Document:   documentHandler,
		Entity:     entityHandler,
	}
}
