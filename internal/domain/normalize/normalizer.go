// Package normalize turns arbitrary record input into the canonical payload of
// its record type and renders canonical payloads back into display rows.
//
// Nothing in this package returns an error: malformed input is coerced or
// dropped, never rejected.
package normalize

import (
	"time"

	"github.com/google/uuid"

	"vaultkeeper/internal/domain/path"
	"vaultkeeper/internal/domain/schema"
	"vaultkeeper/internal/utils/clone"
)

type Normalizer struct {
	registry *schema.Registry
	now      func() time.Time
	newID    func() string
	toggles  ToggleMode
}

type Option func(*Normalizer)

// WithClock fixes the time used for objectList item timestamps.
func WithClock(now func() time.Time) Option {
	return func(n *Normalizer) { n.now = now }
}

// WithIDs replaces the item id generator.
func WithIDs(newID func() string) Option {
	return func(n *Normalizer) { n.newID = newID }
}

func WithToggleMode(mode ToggleMode) Option {
	return func(n *Normalizer) { n.toggles = mode }
}

func New(registry *schema.Registry, opts ...Option) *Normalizer {
	n := &Normalizer{
		registry: registry,
		now:      time.Now,
		newID:    func() string { return uuid.New().String() },
	}
	for _, opt := range opts {
		opt(n)
	}
	return n
}

func (n *Normalizer) Registry() *schema.Registry {
	return n.registry
}

// ForSave builds the canonical payload for rt from raw. The result always has
// the shape of rt's canonical default, whatever raw looks like.
func (n *Normalizer) ForSave(rt schema.RecordType, raw any) map[string]any {
	out := n.registry.CanonicalDefault(rt)
	input, _ := raw.(map[string]any)
	if input == nil {
		return out
	}

	fields := n.registry.Fields(rt)
	if len(fields) == 0 {
		// No schema: keep the caller's keys so legacy records survive a re-save.
		for k, v := range input {
			out[k] = clone.Value(v)
		}
		return out
	}

	for _, f := range fields {
		if !f.HasData() {
			continue
		}
		v, ok := path.Get(input, f.Key)
		if !ok {
			continue
		}
		path.Set(out, f.Key, n.coerce(f, v))
	}
	return out
}

// objectList accepts one object or an array of objects and returns the kept
// items, each with an id and timestamps.
func (n *Normalizer) objectList(f schema.Field, raw any) []any {
	var items []any
	switch t := raw.(type) {
	case map[string]any:
		items = []any{t}
	case []any:
		items = t
	}

	now := n.now().UTC().Format(time.RFC3339)
	out := []any{}
	for _, it := range items {
		src, ok := it.(map[string]any)
		if !ok {
			continue
		}
		item := clone.Map(src)

		empty := true
		for _, sub := range f.ItemFields {
			if !sub.HasData() {
				continue
			}
			v, _ := path.Get(src, sub.Key)
			coerced := n.coerceItem(sub, v)
			path.Set(item, sub.Key, coerced)
			if !isEmpty(coerced) {
				empty = false
			}
		}
		if empty {
			continue
		}

		if id := stringify(src["id"]); id != "" {
			item["id"] = id
		} else {
			item["id"] = n.newID()
		}
		if created := stringify(src["createdAt"]); created != "" {
			item["createdAt"] = created
		} else {
			item["createdAt"] = now
		}
		item["updatedAt"] = now
		out = append(out, item)
	}
	return out
}

// coerceItem is coerce for item fields, where a missing value still gets its
// zero form so every kept item carries every declared key.
func (n *Normalizer) coerceItem(f schema.Field, raw any) any {
	if raw == nil {
		return f.ZeroValue()
	}
	return n.coerce(f, raw)
}
