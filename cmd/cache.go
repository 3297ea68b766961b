package cmd

import (
	"fmt"

	"github.com/huangsam/trustspot/internal/contract"
	"github.com/huangsam/trustspot/internal/iocache"
	"github.com/huangsam/trustspot/schema"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// cacheSetup loads minimal configuration needed for cache operations.
// This is used by commands that need cache access without full shared setup.
func cacheSetup() error {
	if err := loadConfigFile(); err != nil {
		return err
	}

	// Get cache-related config values
	backend := schema.StoreBackend(viper.GetString("cache-backend"))
	connStr := viper.GetString("cache-db-connect")

	// Basic validation for database backends
	if err := contract.ValidateDatabaseConnectionString(backend, connStr); err != nil {
		return err
	}

	// Initialize caching with the loaded config (no history tracking for cache commands)
	if err := iocache.InitStores(backend, connStr, "", ""); err != nil {
		return fmt.Errorf("failed to initialize cache: %w", err)
	}

	cfg.CacheBackend = backend
	cfg.CacheDBConnect = connStr

	return nil
}

// cacheSetupWrapper wraps cacheSetup to provide PreRunE for cache commands.
func cacheSetupWrapper(_ *cobra.Command, _ []string) error {
	return cacheSetup()
}

// cacheCmd focused on cache management.
//
// Note: Cache subcommands use minimal initialization (cacheSetup) instead of
// the full sharedSetup used by analysis commands. This avoids weight merging
// and manifest discovery for simple cache operations.
var cacheCmd = &cobra.Command{
	Use:   "cache",
	Short: "Manage the signal cache (improves performance, enables offline mode)",
	Long: `Manage the cache of collected registry, repository and vulnerability signals.

Trustspot caches every upstream response so repeated checks skip the network
entirely and --offline mode keeps working without connectivity.

Supported backends: JSON file (default), SQLite, MySQL, PostgreSQL, or None (in-memory)

Subcommands:
  status  - Show cache statistics and connection info
  cleanup - Remove expired entries only
  clear   - Remove all cached data

Examples:
  # Check cache status
  trustspot cache status

  # Drop expired entries
  trustspot cache cleanup`,
}

// cacheClearCmd clears the cache.
var cacheClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Remove all cached upstream signals",
	Long: `Delete all cached signal data from the configured backend.

Use this when:
- Upstream data changed and you want fresh signals now
- Cache may be stale or corrupted
- Testing collection without cache

Examples:
  # Clear the default JSON cache
  trustspot cache clear

  # Clear a MySQL cache (set connection string via env variable)
  TRUSTSPOT_CACHE_BACKEND=mysql TRUSTSPOT_CACHE_DB_CONNECT="..." trustspot cache clear`,
	PreRunE: cacheSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := iocache.Manager.GetCacheStore().Clear(); err != nil {
			contract.LogFatal("Failed to clear cache", err)
		}
		fmt.Println("Cache cleared successfully.")
	},
}

// cacheCleanupCmd removes only expired cache entries.
var cacheCleanupCmd = &cobra.Command{
	Use:   "cleanup",
	Short: "Remove expired cache entries",
	Long: `Delete only the cache entries whose TTL has elapsed, keeping live signals.

Run this periodically to keep long-lived caches from growing without bound
while preserving entries that still serve offline mode.

Examples:
  # Drop expired entries
  trustspot cache cleanup`,
	PreRunE: cacheSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		cache := iocache.NewCache(iocache.Manager.GetCacheStore())
		removed, err := cache.Cleanup()
		if err != nil {
			contract.LogFatal("Failed to clean up cache", err)
		}
		fmt.Printf("Removed %d expired entries.\n", removed)
	},
}

// cacheStatusCmd shows cache status.
var cacheStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Display cache statistics and connection details",
	Long: `Show detailed information about the signal cache.

Displays:
- Backend type and connection status
- Total and live (unexpired) entry counts
- Last and oldest cache entry timestamps

Use this to:
- Verify cache is working and connected
- Estimate how useful --offline mode will be
- Debug cache-related issues

Examples:
  # Check cache status
  trustspot cache status`,
	PreRunE: cacheSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		status, err := iocache.Manager.GetCacheStore().GetStatus()
		if err != nil {
			contract.LogFatal("Failed to get cache status", err)
		}
		iocache.PrintCacheStatus(status)
	},
}
