// Package core assembles the vault: schema registry, normalizer, record,
// document and entity services and the document index, all over one store.
package core

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/exp/slog"

	"vaultkeeper/internal/domain/docindex"
	"vaultkeeper/internal/domain/document"
	"vaultkeeper/internal/domain/entity"
	"vaultkeeper/internal/domain/normalize"
	"vaultkeeper/internal/domain/record"
	"vaultkeeper/internal/domain/schema"
	"vaultkeeper/internal/infrastructure/storage"
	"vaultkeeper/internal/infrastructure/storage/kv"
)

type Core struct {
	Registry   *schema.Registry
	Normalizer *normalize.Normalizer
	Records    record.Servicer
	Documents  document.Servicer
	Entities   entity.Servicer
	Index      docindex.Servicer

	store storage.Store
	log   *slog.Logger
}

type options struct {
	registry      *schema.Registry
	strictToggles bool
	now           func() time.Time
	newID         func() string
}

type Option func(*options)

func WithRegistry(reg *schema.Registry) Option {
	return func(o *options) { o.registry = reg }
}

func WithStrictToggles(strict bool) Option {
	return func(o *options) { o.strictToggles = strict }
}

// WithClock fixes record and item timestamps.
func WithClock(now func() time.Time) Option {
	return func(o *options) { o.now = now }
}

// WithIDs replaces the generator for record and item ids.
func WithIDs(newID func() string) Option {
	return func(o *options) { o.newID = newID }
}

// New wires every service over store. Close releases the store.
func New(store storage.Store, log *slog.Logger, opts ...Option) *Core {
	o := options{registry: schema.Default()}
	for _, opt := range opts {
		opt(&o)
	}

	var normOpts []normalize.Option
	var recOpts []record.Option
	if o.strictToggles {
		normOpts = append(normOpts, normalize.WithToggleMode(normalize.Strict))
	}
	if o.now != nil {
		normOpts = append(normOpts, normalize.WithClock(o.now))
		recOpts = append(recOpts, record.WithClock(o.now))
	}
	if o.newID != nil {
		normOpts = append(normOpts, normalize.WithIDs(o.newID))
		recOpts = append(recOpts, record.WithIDs(o.newID))
	}

	normalizer := normalize.New(o.registry, normOpts...)

	recordRepo := kv.NewRecordRepository(store, log)
	index := docindex.NewService(kv.NewIndexRepository(store), recordRepo, log)
	records := record.NewService(recordRepo, normalizer, index, log, recOpts...)

	return &Core{
		Registry:   o.registry,
		Normalizer: normalizer,
		Records:    records,
		Documents:  document.NewService(kv.NewDocumentRepository(store), log),
		Entities:   entity.NewService(kv.NewEntityRepository(store), records, log),
		Index:      index,
		store:      store,
		log:        log.With("component", "core"),
	}
}

// Start loads the document index, rebuilding it when nothing usable is stored.
func (c *Core) Start(ctx context.Context) error {
	if err := c.Index.Load(ctx); err != nil {
		return fmt.Errorf("load document index: %w", err)
	}
	c.log.Info("vault ready")
	return nil
}

func (c *Core) Close() error {
	return c.store.Close()
}

func (c *Core) NormalizeForSave(rt schema.RecordType, raw any) map[string]any {
	return c.Normalizer.ForSave(rt, raw)
}

func (c *Core) GetDisplayRows(rt schema.RecordType, payload map[string]any) []normalize.Row {
	return c.Normalizer.Rows(rt, payload)
}

func (c *Core) GetDisplayTables(rt schema.RecordType, payload map[string]any) []normalize.Table {
	return c.Normalizer.Tables(rt, payload)
}

func (c *Core) UpsertRecord(ctx context.Context, entityID string, rec record.Record) (*record.Record, error) {
	return c.Records.Upsert(ctx, entityID, rec)
}

func (c *Core) DeleteRecord(ctx context.Context, entityID, recordID string) error {
	return c.Records.Delete(ctx, entityID, recordID)
}

func (c *Core) ListRecords(ctx context.Context, entityID string) ([]record.Record, error) {
	return c.Records.List(ctx, entityID)
}

func (c *Core) GetRecord(ctx context.Context, entityID, recordID string) (*record.Record, error) {
	return c.Records.Get(ctx, entityID, recordID)
}

func (c *Core) LookupRecordsForDocument(ctx context.Context, documentID string) ([]docindex.Ref, error) {
	return c.Index.Lookup(ctx, documentID)
}

func (c *Core) RebuildDocumentIndex(ctx context.Context) error {
	return c.Index.RebuildAll(ctx)
}
