package filekv

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/baseldt/lms/storage/kv/kvtest"
)

func TestStore(t *testing.T) {
	store, err := NewStore(filepath.Join(t.TempDir(), "nested", "dir"))
	require.NoError(t, err)
	kvtest.Run(t, store)
}

func TestStore_survivesReopen(t *testing.T) {
	dir := t.TempDir()
	ctx := context.Background()

	first, err := NewStore(dir)
	require.NoError(t, err)
	require.NoError(t, first.Set(ctx, "ctx:a:lms-user", []byte("persisted")))

	second, err := NewStore(dir)
	require.NoError(t, err)
	val, err := second.Get(ctx, "ctx:a:lms-user")
	require.NoError(t, err)
	assert.Equal(t, "persisted", string(val))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 1, "temp files must not be left behind")
}
