package iocache

import (
	"path/filepath"
	"sync"
	"testing"

	"github.com/huangsam/trustspot/schema"
	"github.com/stretchr/testify/assert"
)

func TestInitStores(t *testing.T) {
	t.Run("single setup", func(t *testing.T) {
		initOnce = sync.Once{}  // Reset for test
		closeOnce = sync.Once{} // Reset for test

		path := filepath.Join(t.TempDir(), "cache.json")
		err := InitStores(schema.JSONBackend, path, "", "")
		assert.NoError(t, err, "Failed to initialize persistence")

		assert.NotNil(t, Manager, "Manager should not be nil")
		assert.NotNil(t, Manager.GetCacheStore(), "Cache store should not be nil")
		assert.Nil(t, Manager.GetHistoryStore(), "History store should be nil when no backend is set")

		CloseStores()
	})

	t.Run("idempotent setup", func(t *testing.T) {
		initOnce = sync.Once{}  // Reset for test
		closeOnce = sync.Once{} // Reset for test

		path := filepath.Join(t.TempDir(), "cache.json")

		// Multiple initializations should be safe (sync.Once)
		err1 := InitStores(schema.JSONBackend, path, "", "")
		err2 := InitStores(schema.JSONBackend, path, "", "")
		err3 := InitStores(schema.JSONBackend, path, "", "")

		assert.NoError(t, err1, "First init should not fail")
		assert.NoError(t, err2, "Second init should not fail")
		assert.NoError(t, err3, "Third init should not fail")

		// Multiple closes should be safe (sync.Once)
		CloseStores()
		CloseStores()
		CloseStores()
	})

	t.Run("none cache backend", func(t *testing.T) {
		initOnce = sync.Once{}  // Reset for test
		closeOnce = sync.Once{} // Reset for test

		err := InitStores(schema.NoneBackend, "", "", "")
		assert.NoError(t, err, "Failed to initialize persistence with none backend")

		store := Manager.GetCacheStore()
		assert.NotNil(t, store, "Cache store should not be nil for none backend")

		CloseStores()
	})

	t.Run("history backend enabled", func(t *testing.T) {
		initOnce = sync.Once{}  // Reset for test
		closeOnce = sync.Once{} // Reset for test

		tmpDir := t.TempDir()
		err := InitStores(
			schema.JSONBackend, filepath.Join(tmpDir, "cache.json"),
			schema.SQLiteBackend, filepath.Join(tmpDir, "history.db"))
		assert.NoError(t, err, "Failed to initialize persistence with history")

		assert.NotNil(t, Manager.GetCacheStore(), "Cache store should not be nil")
		assert.NotNil(t, Manager.GetHistoryStore(), "History store should not be nil")

		CloseStores()
	})
}

func TestNewManager(t *testing.T) {
	store := NewJSONStore(filepath.Join(t.TempDir(), "cache.json"))
	mgr := NewManager(store, nil)

	assert.Equal(t, store, mgr.GetCacheStore())
	assert.Nil(t, mgr.GetHistoryStore())
}
