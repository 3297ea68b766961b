// Package iocache is for caching I/O calls.
package iocache

import (
	"fmt"
	"sync"

	"github.com/huangsam/trustspot/internal/contract"
	"github.com/huangsam/trustspot/schema"
)

// cacheTable is the name of the table for SQL cache backends.
const cacheTable = "trustspot_cache"

// StoreManagerImpl manages the cache and history store instances.
type StoreManagerImpl struct {
	sync.RWMutex // Protects the store pointers during initialization
	cache        contract.CacheStore
	history      contract.HistoryStore
}

var _ contract.StoreManager = &StoreManagerImpl{} // Compile-time check

// GetCacheStore returns the cache CacheStore.
func (mgr *StoreManagerImpl) GetCacheStore() contract.CacheStore {
	mgr.RLock()
	defer mgr.RUnlock()
	return mgr.cache
}

// GetHistoryStore returns the HistoryStore.
func (mgr *StoreManagerImpl) GetHistoryStore() contract.HistoryStore {
	mgr.RLock()
	defer mgr.RUnlock()
	return mgr.history
}

// Global Manager instance for main logic.
var (
	Manager   = &StoreManagerImpl{}
	initOnce  sync.Once
	closeOnce sync.Once
)

// InitStores initializes the global store manager.
// historyBackend can be empty to disable scan history tracking.
func InitStores(cacheBackend schema.StoreBackend, cacheConnStr string, historyBackend schema.StoreBackend, historyConnStr string) error {
	var initErr error

	initOnce.Do(func() {
		var cacheStore contract.CacheStore
		var err error

		switch cacheBackend {
		case schema.JSONBackend:
			cacheStore = NewJSONStore(cacheConnStr)
		default:
			cacheStore, err = NewSQLStore(cacheTable, cacheBackend, cacheConnStr)
			if err != nil {
				initErr = fmt.Errorf("failed to initialize cache store: %w", err)
				return
			}
		}

		var historyStore contract.HistoryStore
		if historyBackend != "" {
			historyStore, err = NewHistoryStore(historyBackend, historyConnStr)
			if err != nil {
				if cacheStore != nil {
					_ = cacheStore.Close()
				}
				initErr = fmt.Errorf("failed to initialize history store: %w", err)
				return
			}
		}

		Manager.Lock()
		Manager.cache = cacheStore
		Manager.history = historyStore
		Manager.Unlock()
	})

	return initErr
}

// CloseStores should be called on application shutdown.
func CloseStores() { // called in main defer
	closeOnce.Do(func() {
		Manager.Lock()
		defer Manager.Unlock()
		if Manager.cache != nil {
			_ = Manager.cache.Close()
		}
		if Manager.history != nil {
			_ = Manager.history.Close()
		}
	})
}

// NewManager builds a StoreManager from explicit stores. Used by tests and
// the MCP server where globals are undesirable.
func NewManager(cache contract.CacheStore, history contract.HistoryStore) *StoreManagerImpl {
	return &StoreManagerImpl{cache: cache, history: history}
}
