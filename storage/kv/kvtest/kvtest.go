// Package kvtest holds the behaviour every kv.Store backend must share.
package kvtest

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/baseldt/lms/storage/kv"
)

// Run exercises store. The store must start empty.
func Run(t *testing.T, store kv.Store) {
	t.Helper()
	ctx := context.Background()

	t.Run("missing key", func(t *testing.T) {
		_, err := store.Get(ctx, "lms-user")
		assert.ErrorIs(t, err, kv.ErrNotFound)
	})

	t.Run("set then get", func(t *testing.T) {
		require.NoError(t, store.Set(ctx, "lms-user", []byte(`{"id":"1"}`)))
		val, err := store.Get(ctx, "lms-user")
		require.NoError(t, err)
		assert.Equal(t, `{"id":"1"}`, string(val))
	})

	t.Run("overwrite", func(t *testing.T) {
		require.NoError(t, store.Set(ctx, "lms-user", []byte(`{"id":"2"}`)))
		val, err := store.Get(ctx, "lms-user")
		require.NoError(t, err)
		assert.Equal(t, `{"id":"2"}`, string(val))
	})

	t.Run("delete twice", func(t *testing.T) {
		require.NoError(t, store.Delete(ctx, "lms-user"))
		require.NoError(t, store.Delete(ctx, "lms-user"))
		_, err := store.Get(ctx, "lms-user")
		assert.ErrorIs(t, err, kv.ErrNotFound)
	})

	t.Run("namespaces are isolated", func(t *testing.T) {
		a := kv.Namespace(store, "ctx:a:")
		b := kv.Namespace(store, "ctx:b:")
		require.NoError(t, a.Set(ctx, "lms-user", []byte("a")))

		_, err := b.Get(ctx, "lms-user")
		assert.ErrorIs(t, err, kv.ErrNotFound)
		_, err = store.Get(ctx, "lms-user")
		assert.ErrorIs(t, err, kv.ErrNotFound)

		val, err := store.Get(ctx, "ctx:a:lms-user")
		require.NoError(t, err)
		assert.Equal(t, "a", string(val))
		require.NoError(t, a.Delete(ctx, "lms-user"))
	})
}
