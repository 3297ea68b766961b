// Package iocache is for caching I/O calls.
package iocache

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/huangsam/trustspot/internal/contract"
	"github.com/huangsam/trustspot/schema"
)

// Cache is a TTL-keyed key/value view over a durable CacheStore.
// Expiry is checked lazily on read; there is no background sweep.
// Caching is strictly best-effort: write failures are logged and swallowed
// so they never abort the calling operation.
type Cache struct {
	store contract.CacheStore
	now   func() time.Time
}

// NewCache creates a Cache over the given store.
func NewCache(store contract.CacheStore) *Cache {
	return &Cache{store: store, now: time.Now}
}

// NewCacheWithClock creates a Cache with an injected clock for tests.
func NewCacheWithClock(store contract.CacheStore, now func() time.Time) *Cache {
	return &Cache{store: store, now: now}
}

// Get returns the raw cached value and its creation time. The boolean is
// false when the key is absent or its TTL has elapsed. An expired entry is
// deleted on read.
func (c *Cache) Get(key string) ([]byte, time.Time, bool) {
	value, createdAt, ttlSeconds, err := c.store.Get(key)
	if err != nil {
		return nil, time.Time{}, false
	}
	created := time.Unix(createdAt, 0)
	if c.expired(createdAt, ttlSeconds) {
		if err := c.store.Delete(key); err != nil {
			contract.LogWarn("Cache expiry deletion failed", err)
		}
		return nil, time.Time{}, false
	}
	return value, created, true
}

// GetJSON decodes the cached value for key into out. The boolean follows
// the same contract as Get; a value that no longer decodes counts as a miss.
func (c *Cache) GetJSON(key string, out any) (time.Time, bool) {
	value, created, ok := c.Get(key)
	if !ok {
		return time.Time{}, false
	}
	if err := json.Unmarshal(value, out); err != nil {
		contract.LogWarn(fmt.Sprintf("Cache entry %q is not decodable, treating as miss", key), err)
		return time.Time{}, false
	}
	return created, true
}

// Set stores a value under key with the given TTL. The value is JSON
// encoded. Failures are logged and swallowed.
func (c *Cache) Set(key string, value any, ttl time.Duration) {
	encoded, err := json.Marshal(value)
	if err != nil {
		contract.LogWarn(fmt.Sprintf("Cache encode failed for %q", key), err)
		return
	}
	if err := c.store.Set(key, encoded, c.now().Unix(), int64(ttl.Seconds())); err != nil {
		contract.LogWarn(fmt.Sprintf("Cache write failed for %q", key), err)
	}
}

// Has reports whether a non-expired entry exists for key.
func (c *Cache) Has(key string) bool {
	_, _, ok := c.Get(key)
	return ok
}

// Clear removes all entries.
func (c *Cache) Clear() error {
	return c.store.Clear()
}

// Cleanup removes all expired entries and returns the removed count.
func (c *Cache) Cleanup() (int, error) {
	keys, err := c.store.Keys()
	if err != nil {
		return 0, err
	}
	removed := 0
	for _, key := range keys {
		_, createdAt, ttlSeconds, err := c.store.Get(key)
		if err != nil {
			continue // already gone
		}
		if c.expired(createdAt, ttlSeconds) {
			if err := c.store.Delete(key); err != nil {
				contract.LogWarn(fmt.Sprintf("Cache cleanup failed for %q", key), err)
				continue
			}
			removed++
		}
	}
	return removed, nil
}

// AgeOf returns a human readable age for a non-expired entry, like "5m ago".
func (c *Cache) AgeOf(key string) (string, bool) {
	_, created, ok := c.Get(key)
	if !ok {
		return "", false
	}
	return humanizeAge(c.now().Sub(created)), true
}

// TimestampOf returns the RFC3339 creation timestamp for a non-expired entry.
func (c *Cache) TimestampOf(key string) (string, bool) {
	_, created, ok := c.Get(key)
	if !ok {
		return "", false
	}
	return created.UTC().Format(time.RFC3339), true
}

// Size returns the count of non-expired entries.
func (c *Cache) Size() int {
	keys, err := c.store.Keys()
	if err != nil {
		return 0
	}
	count := 0
	for _, key := range keys {
		_, createdAt, ttlSeconds, err := c.store.Get(key)
		if err != nil {
			continue
		}
		if !c.expired(createdAt, ttlSeconds) {
			count++
		}
	}
	return count
}

// Status returns status information from the backing store.
func (c *Cache) Status() (schema.CacheStatus, error) {
	status, err := c.store.GetStatus()
	if err != nil {
		return status, err
	}
	status.LiveEntries = c.Size()
	return status, nil
}

// expired reports whether an entry created at createdAt (unix seconds) with
// the given TTL is logically absent at the current clock reading.
func (c *Cache) expired(createdAt, ttlSeconds int64) bool {
	elapsed := c.now().Unix() - createdAt
	return elapsed > ttlSeconds
}

// humanizeAge renders a duration as a coarse "N units ago" string.
func humanizeAge(d time.Duration) string {
	switch {
	case d < time.Minute:
		return fmt.Sprintf("%ds ago", int(d.Seconds()))
	case d < time.Hour:
		return fmt.Sprintf("%dm ago", int(d.Minutes()))
	case d < 24*time.Hour:
		return fmt.Sprintf("%dh ago", int(d.Hours()))
	default:
		return fmt.Sprintf("%dd ago", int(d.Hours()/24))
	}
}
