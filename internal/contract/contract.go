// Package contract provides interfaces and shared utilities for trustspot's internal architecture.
package contract

import (
	"errors"
	"time"

	"github.com/huangsam/trustspot/schema"
)

// ErrCacheMiss is returned by CacheStore.Get when a key is absent.
var ErrCacheMiss = errors.New("cache miss")

// CacheStore defines the interface for durable cache storage.
// This allows mocking the store for testing.
type CacheStore interface {
	// Get returns the raw value, creation timestamp (unix seconds) and TTL
	// in seconds for a key. It returns ErrCacheMiss when the key is absent.
	Get(key string) (value []byte, createdAt int64, ttlSeconds int64, err error)

	// Set inserts or replaces a key/value pair.
	Set(key string, value []byte, createdAt int64, ttlSeconds int64) error

	// Delete removes a key. Deleting an absent key is not an error.
	Delete(key string) error

	// Keys returns all stored keys, expired or not.
	Keys() ([]string, error)

	// Clear removes all entries.
	Clear() error

	// GetStatus returns status information about the cache store.
	GetStatus() (schema.CacheStatus, error)

	// Close closes the underlying store.
	Close() error
}

// HistoryStore defines the interface for recording project scan runs.
type HistoryStore interface {
	// BeginScan creates a new scan run and returns its unique ID.
	BeginScan(startTime time.Time, configParams map[string]any) (int64, error)

	// EndScan updates the scan run with completion data.
	EndScan(scanID int64, endTime time.Time, totalPackages int, aggregateScore float64) error

	// RecordPackageScore stores the per-package analytical outcome for a scan.
	RecordPackageScore(scanID int64, name, version string, trustScore float64, isZombie, isTyposquat bool) error

	// RecentScans returns up to limit scan runs, newest first.
	RecentScans(limit int) ([]schema.ScanRun, error)

	// GetStatus returns status information about the history store.
	GetStatus() (schema.HistoryStatus, error)

	// Close closes the underlying connection.
	Close() error
}

// StoreManager defines the interface for managing the persistence stores.
// This allows the storage layer to be mocked for testing.
type StoreManager interface {
	GetCacheStore() CacheStore
	GetHistoryStore() HistoryStore
}
