// Package path resolves dotted property paths ("address.city") over loosely
// typed payloads decoded from JSON.
package path

import (
	"errors"
	"strings"
)

var (
	ErrEmptyPath    = errors.New("empty path")
	ErrEmptySegment = errors.New("empty path segment")
)

// Path is a parsed dotted path. Build it once with Parse or MustParse and keep it
// alongside the declaration that owns it.
type Path []string

// Parse splits s on dots. Empty input and empty segments are rejected.
func Parse(s string) (Path, error) {
	if s == "" {
		return nil, ErrEmptyPath
	}
	segments := strings.Split(s, ".")
	for _, seg := range segments {
		if seg == "" {
			return nil, ErrEmptySegment
		}
	}
	return Path(segments), nil
}

// MustParse is Parse for static declarations; it panics on invalid input.
func MustParse(s string) Path {
	p, err := Parse(s)
	if err != nil {
		panic("path: " + s + ": " + err.Error())
	}
	return p
}

func (p Path) String() string {
	return strings.Join(p, ".")
}

// Leaf returns the last segment.
func (p Path) Leaf() string {
	if len(p) == 0 {
		return ""
	}
	return p[len(p)-1]
}

// Get returns the value at p. The joined key is tried as a literal first so
// legacy flat keys ("address.city" stored as one key) keep resolving.
func Get(obj any, p Path) (any, bool) {
	if len(p) == 0 {
		return nil, false
	}
	m, ok := obj.(map[string]any)
	if !ok {
		return nil, false
	}
	if len(p) > 1 {
		if v, ok := m[p.String()]; ok {
			return v, true
		}
	}

	var cur any = m
	for _, seg := range p {
		node, ok := cur.(map[string]any)
		if !ok {
			return nil, false
		}
		cur, ok = node[seg]
		if !ok {
			return nil, false
		}
	}
	return cur, true
}

// Set assigns v at p, creating intermediate objects and replacing any
// non-object value found on the way. obj is mutated and returned; a nil obj
// yields a fresh map.
func Set(obj map[string]any, p Path, v any) map[string]any {
	if obj == nil {
		obj = make(map[string]any)
	}
	if len(p) == 0 {
		return obj
	}

	node := obj
	for _, seg := range p[:len(p)-1] {
		next, ok := node[seg].(map[string]any)
		if !ok {
			next = make(map[string]any)
			node[seg] = next
		}
		node = next
	}
	node[p.Leaf()] = v
	return obj
}

// GetByPath is Get for an unparsed path. Invalid paths resolve to nothing.
func GetByPath(obj any, s string) (any, bool) {
	p, err := Parse(s)
	if err != nil {
		return nil, false
	}
	return Get(obj, p)
}

// SetByPath is Set for an unparsed path. Invalid paths leave obj untouched.
func SetByPath(obj map[string]any, s string, v any) map[string]any {
	p, err := Parse(s)
	if err != nil {
		if obj == nil {
			return make(map[string]any)
		}
		return obj
	}
	return Set(obj, p, v)
}
