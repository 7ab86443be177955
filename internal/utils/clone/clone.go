// Package clone deep-copies values decoded from JSON (maps, slices, scalars).
package clone

// Value returns a deep copy of v. Only map[string]any and []any are descended
// into; every other value is returned as is.
func Value(v any) any {
	switch t := v.(type) {
	case map[string]any:
		return Map(t)
	case []any:
		out := make([]any, len(t))
		for i, item := range t {
			out[i] = Value(item)
		}
		return out
	default:
		return v
	}
}

// Map deep-copies m. A nil map yields an empty one.
func Map(m map[string]any) map[string]any {
	out := make(map[string]any, len(m))
	for k, v := range m {
		out[k] = Value(v)
	}
	return out
}
