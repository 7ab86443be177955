package schema

import (
	"fmt"
	"sort"

	"vaultkeeper/internal/domain/path"
	"vaultkeeper/internal/utils/clone"
)

// Schema is the ordered field list of one record type. Legacy holds keys kept
// in the canonical default that no field declares anymore.
type Schema struct {
	Type   RecordType
	Fields []Field
	Legacy map[string]any
}

// Registry maps record types to their schema and canonical default.
type Registry struct {
	schemas  map[RecordType]Schema
	defaults map[RecordType]map[string]any
}

// NewRegistry composes schema groups into one lookup. Declarations are static,
// so a malformed one panics here rather than surfacing at save time.
func NewRegistry(groups ...[]Schema) *Registry {
	r := &Registry{
		schemas:  make(map[RecordType]Schema),
		defaults: make(map[RecordType]map[string]any),
	}
	for _, group := range groups {
		for _, s := range group {
			if _, dup := r.schemas[s.Type]; dup {
				panic(fmt.Sprintf("schema: duplicate record type %s", s.Type))
			}
			if err := validate(s); err != nil {
				panic(fmt.Sprintf("schema: %s: %v", s.Type, err))
			}
			r.schemas[s.Type] = s
			r.defaults[s.Type] = buildDefault(s)
		}
	}
	return r
}

var defaultRegistry = NewRegistry(
	identificationSchemas(),
	medicalSchemas(),
	travelSchemas(),
	petSchemas(),
	householdSchemas(),
)

// Default returns the registry of every shipped record type.
func Default() *Registry {
	return defaultRegistry
}

// Fields returns the declarations for rt, or nil for unknown types.
func (r *Registry) Fields(rt RecordType) []Field {
	s, ok := r.schemas[rt]
	if !ok {
		return nil
	}
	out := make([]Field, len(s.Fields))
	copy(out, s.Fields)
	return out
}

// VisibleFields returns the editable fields of rt given the record's values.
func (r *Registry) VisibleFields(rt RecordType, data map[string]any) []Field {
	var out []Field
	for _, f := range r.Fields(rt) {
		if f.VisibleIn(data) {
			out = append(out, f)
		}
	}
	return out
}

// CanonicalDefault returns a fresh deep copy of rt's default payload. Unknown
// types get an empty object.
func (r *Registry) CanonicalDefault(rt RecordType) map[string]any {
	return clone.Map(r.defaults[rt])
}

func (r *Registry) Has(rt RecordType) bool {
	_, ok := r.schemas[rt]
	return ok
}

// Types lists registered record types in lexical order.
func (r *Registry) Types() []RecordType {
	out := make([]RecordType, 0, len(r.schemas))
	for rt := range r.schemas {
		out = append(out, rt)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

func buildDefault(s Schema) map[string]any {
	def := clone.Map(s.Legacy)
	for _, f := range s.Fields {
		if !f.HasData() {
			continue
		}
		path.Set(def, f.Key, f.ZeroValue())
	}
	return def
}

func validate(s Schema) error {
	if err := validateFields(s.Fields, false); err != nil {
		return err
	}
	return nil
}

func validateFields(fields []Field, nested bool) error {
	seen := make(map[string]struct{}, len(fields))
	for _, f := range fields {
		if len(f.Key) == 0 {
			return fmt.Errorf("field with empty key")
		}
		key := f.Key.String()
		if _, dup := seen[key]; dup {
			return fmt.Errorf("duplicate field key %q", key)
		}
		seen[key] = struct{}{}

		if !f.Type.Valid() {
			return fmt.Errorf("field %q: unknown type %q", key, f.Type)
		}
		if f.Type == FieldObjectList {
			if nested {
				return fmt.Errorf("field %q: objectList cannot be nested", key)
			}
			if len(f.ItemFields) == 0 {
				return fmt.Errorf("field %q: objectList without item fields", key)
			}
			if err := validateFields(f.ItemFields, true); err != nil {
				return fmt.Errorf("field %q: %w", key, err)
			}
		} else if len(f.ItemFields) > 0 {
			return fmt.Errorf("field %q: item fields on %s", key, f.Type)
		}
	}
	// "address" and "address.city" cannot both hold data.
	for _, f := range fields {
		for i := 1; i < len(f.Key); i++ {
			prefix := f.Key[:i].String()
			if _, clash := seen[prefix]; clash {
				return fmt.Errorf("field %q is nested under field %q", f.Key, prefix)
			}
		}
	}
	return nil
}
