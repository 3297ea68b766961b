package iocache

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/huangsam/trustspot/internal/contract"
	"github.com/huangsam/trustspot/schema"
)

// jsonEntry is the on-disk shape of one cache entry.
type jsonEntry struct {
	Value      json.RawMessage `json:"value"`
	CreatedAt  int64           `json:"createdAt"`
	TTLSeconds int64           `json:"ttlSeconds"`
}

// JSONStoreImpl persists the cache as a single JSON document on disk.
// A corrupt or unreadable document is treated as an empty cache, never a
// fatal error. Conflicting writes to the same key are serialized at the
// process level by the mutex; last write wins.
type JSONStoreImpl struct {
	mu      sync.Mutex
	path    string
	entries map[string]jsonEntry
}

var _ contract.CacheStore = &JSONStoreImpl{} // Compile-time check

// NewJSONStore loads (or initializes) the JSON cache document at path.
// An empty path resolves to the per-user default location.
func NewJSONStore(path string) *JSONStoreImpl {
	if path == "" {
		path = contract.GetCacheFilePath()
	}
	store := &JSONStoreImpl{
		path:    path,
		entries: make(map[string]jsonEntry),
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		// Missing file is the common first-run case; anything else is
		// still only worth a warning.
		if !os.IsNotExist(err) {
			contract.LogWarn(fmt.Sprintf("Cache file %q unreadable, starting empty", path), err)
		}
		return store
	}

	if err := json.Unmarshal(raw, &store.entries); err != nil {
		contract.LogWarn(fmt.Sprintf("Cache file %q corrupt, starting empty", path), err)
		store.entries = make(map[string]jsonEntry)
	}
	return store
}

// Get implements the CacheStore interface.
func (js *JSONStoreImpl) Get(key string) ([]byte, int64, int64, error) {
	js.mu.Lock()
	defer js.mu.Unlock()

	entry, ok := js.entries[key]
	if !ok {
		return nil, 0, 0, contract.ErrCacheMiss
	}
	return entry.Value, entry.CreatedAt, entry.TTLSeconds, nil
}

// Set implements the CacheStore interface.
func (js *JSONStoreImpl) Set(key string, value []byte, createdAt int64, ttlSeconds int64) error {
	js.mu.Lock()
	defer js.mu.Unlock()

	js.entries[key] = jsonEntry{
		Value:      json.RawMessage(value),
		CreatedAt:  createdAt,
		TTLSeconds: ttlSeconds,
	}
	return js.flushLocked()
}

// Delete implements the CacheStore interface.
func (js *JSONStoreImpl) Delete(key string) error {
	js.mu.Lock()
	defer js.mu.Unlock()

	if _, ok := js.entries[key]; !ok {
		return nil
	}
	delete(js.entries, key)
	return js.flushLocked()
}

// Keys implements the CacheStore interface.
func (js *JSONStoreImpl) Keys() ([]string, error) {
	js.mu.Lock()
	defer js.mu.Unlock()

	keys := make([]string, 0, len(js.entries))
	for key := range js.entries {
		keys = append(keys, key)
	}
	return keys, nil
}

// Clear implements the CacheStore interface.
func (js *JSONStoreImpl) Clear() error {
	js.mu.Lock()
	defer js.mu.Unlock()

	js.entries = make(map[string]jsonEntry)
	if err := os.Remove(js.path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to remove cache file %s: %w", js.path, err)
	}
	return nil
}

// GetStatus implements the CacheStore interface.
func (js *JSONStoreImpl) GetStatus() (schema.CacheStatus, error) {
	js.mu.Lock()
	defer js.mu.Unlock()

	status := schema.CacheStatus{
		Backend:      string(schema.JSONBackend),
		Connected:    true,
		TotalEntries: len(js.entries),
	}
	for _, entry := range js.entries {
		created := time.Unix(entry.CreatedAt, 0)
		if status.LastEntryTime.IsZero() || created.After(status.LastEntryTime) {
			status.LastEntryTime = created
		}
		if status.OldestEntryTime.IsZero() || created.Before(status.OldestEntryTime) {
			status.OldestEntryTime = created
		}
	}
	return status, nil
}

// Close implements the CacheStore interface.
func (js *JSONStoreImpl) Close() error {
	return nil // document is rewritten on every mutation; nothing held open
}

// flushLocked atomically rewrites the whole document. Callers hold js.mu.
func (js *JSONStoreImpl) flushLocked() error {
	encoded, err := json.Marshal(js.entries)
	if err != nil {
		return fmt.Errorf("failed to encode cache document: %w", err)
	}

	dir := filepath.Dir(js.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("failed to create cache directory %s: %w", dir, err)
	}

	// Write-then-rename keeps a crashed write from corrupting the document.
	tmp, err := os.CreateTemp(dir, ".trustspot_cache-*.tmp")
	if err != nil {
		return fmt.Errorf("failed to create temp cache file: %w", err)
	}
	tmpName := tmp.Name()
	if _, err := tmp.Write(encoded); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpName)
		return fmt.Errorf("failed to write cache document: %w", err)
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpName)
		return fmt.Errorf("failed to close temp cache file: %w", err)
	}
	if err := os.Rename(tmpName, js.path); err != nil {
		_ = os.Remove(tmpName)
		return fmt.Errorf("failed to replace cache file %s: %w", js.path, err)
	}
	return nil
}
