package iocache

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/huangsam/trustspot/internal/contract"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJSONStorePersistsAcrossReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cache.json")

	store := NewJSONStore(path)
	require.NoError(t, store.Set("key", []byte(`{"a":1}`), 1000, 3600))
	require.NoError(t, store.Close())

	reopened := NewJSONStore(path)
	value, createdAt, ttlSeconds, err := reopened.Get("key")
	require.NoError(t, err)
	assert.Equal(t, `{"a":1}`, string(value))
	assert.Equal(t, int64(1000), createdAt)
	assert.Equal(t, int64(3600), ttlSeconds)
}

func TestJSONStoreMissingKey(t *testing.T) {
	store := NewJSONStore(filepath.Join(t.TempDir(), "cache.json"))

	_, _, _, err := store.Get("absent")
	assert.True(t, errors.Is(err, contract.ErrCacheMiss), "absent key should return ErrCacheMiss")
}

func TestJSONStoreCorruptFileStartsEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cache.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))

	store := NewJSONStore(path)
	keys, err := store.Keys()
	require.NoError(t, err)
	assert.Empty(t, keys, "corrupt document should load as an empty cache")

	// The store must still accept writes after recovering.
	require.NoError(t, store.Set("key", []byte(`1`), 1000, 60))
	_, _, _, err = store.Get("key")
	assert.NoError(t, err)
}

func TestJSONStoreDeleteIsIdempotent(t *testing.T) {
	store := NewJSONStore(filepath.Join(t.TempDir(), "cache.json"))

	require.NoError(t, store.Set("key", []byte(`1`), 1000, 60))
	require.NoError(t, store.Delete("key"))
	require.NoError(t, store.Delete("key"), "deleting an absent key should not error")

	_, _, _, err := store.Get("key")
	assert.True(t, errors.Is(err, contract.ErrCacheMiss))
}

func TestJSONStoreClearRemovesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cache.json")
	store := NewJSONStore(path)

	require.NoError(t, store.Set("key", []byte(`1`), 1000, 60))
	_, err := os.Stat(path)
	require.NoError(t, err, "document should exist after a write")

	require.NoError(t, store.Clear())
	_, err = os.Stat(path)
	assert.True(t, os.IsNotExist(err), "Clear should remove the document")

	// Clearing again without a file is fine.
	assert.NoError(t, store.Clear())
}

func TestJSONStoreGetStatus(t *testing.T) {
	store := NewJSONStore(filepath.Join(t.TempDir(), "cache.json"))

	require.NoError(t, store.Set("old", []byte(`1`), 1000, 60))
	require.NoError(t, store.Set("new", []byte(`2`), 2000, 60))

	status, err := store.GetStatus()
	require.NoError(t, err)
	assert.Equal(t, "json", status.Backend)
	assert.True(t, status.Connected)
	assert.Equal(t, 2, status.TotalEntries)
	assert.Equal(t, int64(2000), status.LastEntryTime.Unix())
	assert.Equal(t, int64(1000), status.OldestEntryTime.Unix())
}
