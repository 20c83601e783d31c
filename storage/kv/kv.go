// Package kv is the durable key-value storage behind sessions.
package kv

import (
	"context"

	"github.com/pkg/errors"
)

var ErrNotFound = errors.New("key not found")

// Store is a minimal durable key-value store. Delete of a missing key is not an error.
type Store interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
}

type namespaced struct {
	store  Store
	prefix string
}

// Namespace scopes every key of store under prefix.
func Namespace(store Store, prefix string) Store {
	if prefix == "" {
		return store
	}
	return &namespaced{store: store, prefix: prefix}
}

func (ns *namespaced) Get(ctx context.Context, key string) ([]byte, error) {
	return ns.store.Get(ctx, ns.prefix+key)
}

func (ns *namespaced) Set(ctx context.Context, key string, value []byte) error {
	return ns.store.Set(ctx, ns.prefix+key, value)
}

func (ns *namespaced) Delete(ctx context.Context, key string) error {
	return ns.store.Delete(ctx, ns.prefix+key)
}
