// Package storage defines the key-value contract every persistence backend
// satisfies. Values are opaque strings; callers own their encoding.
package storage

import (
	"context"
	"errors"
	"strings"
)

var ErrClosed = errors.New("store is closed")

type Store interface {
	// Get returns ok=false for a missing key; that is not an error.
	Get(ctx context.Context, key string) (value string, ok bool, err error)
	Set(ctx context.Context, key, value string) error
	ListKeys(ctx context.Context) ([]string, error)
	Close() error
}

// Namespaced prefixes every key with "ns:" so several vaults can share one
// backend. ListKeys only reports keys of the namespace, without the prefix.
func Namespaced(store Store, ns string) Store {
	if ns == "" {
		return store
	}
	return &namespaced{Store: store, prefix: ns + ":"}
}

type namespaced struct {
	Store
	prefix string
}

func (n *namespaced) Get(ctx context.Context, key string) (string, bool, error) {
	return n.Store.Get(ctx, n.prefix+key)
}

func (n *namespaced) Set(ctx context.Context, key, value string) error {
	return n.Store.Set(ctx, n.prefix+key, value)
}

func (n *namespaced) ListKeys(ctx context.Context) ([]string, error) {
	keys, err := n.Store.ListKeys(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]string, 0, len(keys))
	for _, k := range keys {
		if rest, ok := strings.CutPrefix(k, n.prefix); ok {
			out = append(out, rest)
		}
	}
	return out, nil
}
