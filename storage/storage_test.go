package storage_test

import (
	"context"
	"io"
	"testing"

	"github.com/krishkalaria12/chrono-snap/config"
	"github.com/krishkalaria12/chrono-snap/storage"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func exerciseStore(t *testing.T, store storage.ObjectStore) {
	t.Helper()
	ctx := context.Background()
	data := []byte("\x89PNG\r\n\x1a\nfake image bytes")

	info, err := store.Put(ctx, "timetravel-medieval-1.png", data, "image/png")
	require.NoError(t, err)
	assert.Equal(t, "timetravel-medieval-1.png", info.Key)
	assert.Equal(t, int64(len(data)), info.Size)
	assert.NotEmpty(t, info.ETag)

	obj, err := store.Get(ctx, "timetravel-medieval-1.png")
	require.NoError(t, err)
	got, err := io.ReadAll(obj.Body)
	require.NoError(t, err)
	require.NoError(t, obj.Body.Close())
	assert.Equal(t, data, got)
	assert.Equal(t, "image/png", obj.ContentType)
	assert.Equal(t, info.ETag, obj.ETag)

	_, err = store.Put(ctx, "timetravel-future-2.png", []byte("other"), "image/jpeg")
	require.NoError(t, err)

	list, err := store.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 2)

	keys := []string{list[0].Key, list[1].Key}
	assert.ElementsMatch(t, []string{"timetravel-medieval-1.png", "timetravel-future-2.png"}, keys)

	_, err = store.Get(ctx, "missing.png")
	require.ErrorIs(t, err, storage.ErrNotFound)
}

func TestMemoryStore(t *testing.T) {
	exerciseStore(t, storage.NewMemoryStore())
}

func TestMemoryStoreCopiesInput(t *testing.T) {
	ctx := context.Background()
	store := storage.NewMemoryStore()
	data := []byte("abc")

	_, err := store.Put(ctx, "k", data, "image/png")
	require.NoError(t, err)
	data[0] = 'z'

	obj, err := store.Get(ctx, "k")
	require.NoError(t, err)
	got, err := io.ReadAll(obj.Body)
	require.NoError(t, err)
	assert.Equal(t, "abc", string(got))
}

func TestLocalStore(t *testing.T) {
	store, err := storage.NewLocalStore(t.TempDir())
	require.NoError(t, err)
	defer store.Close()

	exerciseStore(t, store)
}

func TestLocalStoreSurvivesReopen(t *testing.T) {
	dir := t.TempDir()
	ctx := context.Background()

	store, err := storage.NewLocalStore(dir)
	require.NoError(t, err)
	_, err = store.Put(ctx, "timetravel-renaissance-3.png", []byte("painted"), "image/png")
	require.NoError(t, err)
	require.NoError(t, store.Close())

	store, err = storage.NewLocalStore(dir)
	require.NoError(t, err)
	defer store.Close()

	obj, err := store.Get(ctx, "timetravel-renaissance-3.png")
	require.NoError(t, err)
	defer obj.Body.Close()
	got, err := io.ReadAll(obj.Body)
	require.NoError(t, err)
	assert.Equal(t, "painted", string(got))
}

func TestOpen(t *testing.T) {
	ctx := context.Background()

	store, closer, err := storage.Open(ctx, config.StorageConfig{Backend: config.BackendNone})
	require.NoError(t, err)
	assert.Nil(t, store)
	require.NoError(t, closer.Close())

	store, closer, err = storage.Open(ctx, config.StorageConfig{Backend: config.BackendMemory})
	require.NoError(t, err)
	assert.IsType(t, &storage.MemoryStore{}, store)
	require.NoError(t, closer.Close())

	store, closer, err = storage.Open(ctx, config.StorageConfig{Backend: config.BackendLocal, LocalDir: t.TempDir()})
	require.NoError(t, err)
	assert.IsType(t, &storage.LocalStore{}, store)
	require.NoError(t, closer.Close())

	_, _, err = storage.Open(ctx, config.StorageConfig{Backend: "ftp"})
	require.ErrorIs(t, err, config.ErrUnknownBackend)

	_, _, err = storage.Open(ctx, config.StorageConfig{Backend: config.BackendGCS})
	require.Error(t, err)
}
