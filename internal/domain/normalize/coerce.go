package normalize

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"vaultkeeper/internal/domain/schema"
	"vaultkeeper/internal/utils/clone"
)

// ToggleMode selects how free-form input is read as a boolean.
type ToggleMode int

const (
	// Lenient accepts true/yes/1 and false/no/0; anything else is false.
	Lenient ToggleMode = iota
	// Strict accepts only a JSON boolean or the string "true".
	Strict
)

// coercer turns a raw value (already known to be present) into the stored form.
type coercer func(n *Normalizer, f schema.Field, raw any) any

// coercers is keyed by field type; scalar types share one entry.
var coercers = map[schema.FieldType]coercer{
	schema.FieldText:      coerceScalar,
	schema.FieldMultiline: coerceScalar,
	schema.FieldDate:      coerceScalar,
	schema.FieldSelect:    coerceScalar,
	schema.FieldToggle:    coerceToggle,
	schema.FieldList:      coerceList,
	schema.FieldTimeList:  coerceTimeList,
	schema.FieldDocument:  coerceDocument,
	// objectList is handled by the normalizer itself: it needs timestamps and ids.
}

func (n *Normalizer) coerce(f schema.Field, raw any) any {
	if f.Truthy() {
		return n.truthy(raw)
	}
	if f.Type == schema.FieldObjectList {
		return n.objectList(f, raw)
	}
	fn, ok := coercers[f.Type]
	if !ok {
		return f.ZeroValue()
	}
	v := fn(n, f, raw)
	if f.NullOnEmpty() && v == "" {
		return nil
	}
	return v
}

func coerceScalar(_ *Normalizer, _ schema.Field, raw any) any {
	return stringify(raw)
}

func coerceToggle(n *Normalizer, _ schema.Field, raw any) any {
	return n.truthy(raw)
}

func coerceList(_ *Normalizer, _ schema.Field, raw any) any {
	return splitList(raw)
}

var timeOfDay = regexp.MustCompile(`^([01]?\d|2[0-3]):([0-5]\d)$`)

func coerceTimeList(_ *Normalizer, _ schema.Field, raw any) any {
	out := []any{}
	for _, item := range splitList(raw) {
		m := timeOfDay.FindStringSubmatch(item.(string))
		if m == nil {
			continue
		}
		hour, _ := strconv.Atoi(m[1])
		out = append(out, fmt.Sprintf("%02d:%s", hour, m[2]))
	}
	return out
}

func coerceDocument(_ *Normalizer, _ schema.Field, raw any) any {
	switch t := raw.(type) {
	case map[string]any:
		if len(t) == 0 {
			return nil
		}
		return clone.Map(t)
	case string:
		if s := strings.TrimSpace(t); s != "" {
			return s
		}
	}
	return nil
}

func (n *Normalizer) truthy(raw any) bool {
	if b, ok := raw.(bool); ok {
		return b
	}
	s := strings.ToLower(stringify(raw))
	if n.toggles == Strict {
		return s == "true"
	}
	switch s {
	case "true", "yes", "1":
		return true
	}
	// "false", "no", "0" and anything unrecognised.
	return false
}

// stringify renders a scalar for storage. Composite values have no scalar
// form and become "".
func stringify(raw any) string {
	switch t := raw.(type) {
	case nil:
		return ""
	case string:
		return strings.TrimSpace(t)
	case bool:
		return strconv.FormatBool(t)
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	case float32:
		return strconv.FormatFloat(float64(t), 'f', -1, 32)
	case int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64:
		return fmt.Sprint(t)
	case fmt.Stringer:
		return strings.TrimSpace(t.String())
	}
	return ""
}

// splitList accepts an array or free text (newline separated if it has
// newlines, comma separated otherwise) and returns trimmed non-empty strings.
func splitList(raw any) []any {
	out := []any{}
	var parts []string
	switch t := raw.(type) {
	case []any:
		for _, item := range t {
			parts = append(parts, stringify(item))
		}
	case []string:
		parts = t
	case string:
		if strings.Contains(t, "\n") {
			parts = strings.Split(t, "\n")
		} else {
			parts = strings.Split(t, ",")
		}
	}
	for _, p := range parts {
		if s := strings.TrimSpace(p); s != "" {
			out = append(out, s)
		}
	}
	return out
}

// isEmpty is the falsy test used to drop objectList items.
func isEmpty(v any) bool {
	switch t := v.(type) {
	case nil:
		return true
	case string:
		return strings.TrimSpace(t) == ""
	case bool:
		return !t
	case []any:
		return len(t) == 0
	case map[string]any:
		return len(t) == 0
	}
	return false
}
