package storage

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openStores(t *testing.T) map[string]Store {
	t.Helper()

	fileStore, err := NewFileStore(filepath.Join(t.TempDir(), "data"))
	require.NoError(t, err)

	sqliteStore, err := OpenSQLite(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { sqliteStore.Close() })

	return map[string]Store{
		BackendFile:   fileStore,
		BackendSQLite: sqliteStore,
	}
}

func TestStore_PutGetDelete(t *testing.T) {
	ctx := context.Background()

	for name, store := range openStores(t) {
		t.Run(name, func(t *testing.T) {
			_, err := store.Get(ctx, "careerPathPlanner")
			assert.True(t, errors.Is(err, ErrNotFound))

			require.NoError(t, store.Put(ctx, "careerPathPlanner", []byte(`{"courses":[]}`)))
			got, err := store.Get(ctx, "careerPathPlanner")
			require.NoError(t, err)
			assert.JSONEq(t, `{"courses":[]}`, string(got))

			// Last write wins
			require.NoError(t, store.Put(ctx, "careerPathPlanner", []byte(`{"skills":{"creativity":4}}`)))
			got, err = store.Get(ctx, "careerPathPlanner")
			require.NoError(t, err)
			assert.JSONEq(t, `{"skills":{"creativity":4}}`, string(got))

			require.NoError(t, store.Delete(ctx, "careerPathPlanner"))
			_, err = store.Get(ctx, "careerPathPlanner")
			assert.True(t, errors.Is(err, ErrNotFound))

			// Deleting twice is fine
			assert.NoError(t, store.Delete(ctx, "careerPathPlanner"))
		})
	}
}

func TestStore_InvalidKey(t *testing.T) {
	ctx := context.Background()

	for name, store := range openStores(t) {
		t.Run(name, func(t *testing.T) {
			for _, key := range []string{"", "../escape", "a/b", ".hidden"} {
				err := store.Put(ctx, key, []byte(`{}`))
				var storeErr *StoreError
				assert.True(t, errors.As(err, &storeErr), "key %q", key)
			}
		})
	}
}

func TestFileStore_LeavesNoTempFiles(t *testing.T) {
	dir := t.TempDir()
	store, err := NewFileStore(dir)
	require.NoError(t, err)

	require.NoError(t, store.Put(context.Background(), "doc", []byte(`{}`)))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "doc.json", entries[0].Name())
}

func TestFileStore_CanceledContext(t *testing.T) {
	store, err := NewFileStore(t.TempDir())
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	assert.ErrorIs(t, store.Put(ctx, "doc", []byte(`{}`)), context.Canceled)
}

func TestSQLiteStore_PersistsAcrossReopen(t *testing.T) {
	dir := t.TempDir()
	ctx := context.Background()

	store, err := OpenSQLite(dir)
	require.NoError(t, err)
	require.NoError(t, store.Put(ctx, "doc", []byte(`{"a":1}`)))
	require.NoError(t, store.Close())

	reopened, err := OpenSQLite(dir)
	require.NoError(t, err)
	defer reopened.Close()

	got, err := reopened.Get(ctx, "doc")
	require.NoError(t, err)
	assert.JSONEq(t, `{"a":1}`, string(got))
}

func TestOpen_Backends(t *testing.T) {
	dir := t.TempDir()

	s, err := Open("", dir)
	require.NoError(t, err)
	assert.IsType(t, &FileStore{}, s)

	s, err = Open(BackendSQLite, dir)
	require.NoError(t, err)
	assert.IsType(t, &SQLiteStore{}, s)
	require.NoError(t, s.Close())

	_, err = Open("redis", dir)
	assert.Error(t, err)
}
