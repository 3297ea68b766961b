package cmd

import (
	"fmt"

	"github.com/huangsam/trustspot/internal/contract"
	"github.com/huangsam/trustspot/internal/iocache"
	"github.com/huangsam/trustspot/internal/outwriter"
	"github.com/huangsam/trustspot/schema"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// historySetup loads minimal configuration needed for history operations.
// This is used by commands that need history access without full shared setup.
func historySetup() error {
	if err := loadConfigFile(); err != nil {
		return err
	}

	// Get history-related config values
	backendStr := viper.GetString("history-backend")
	connStr := viper.GetString("history-db-connect")

	// Handle empty backend as NoneBackend
	var backend schema.StoreBackend
	if backendStr == "" {
		backend = schema.NoneBackend
	} else {
		backend = schema.StoreBackend(backendStr)
	}

	// Basic validation for database backends
	if err := contract.ValidateDatabaseConnectionString(backend, connStr); err != nil {
		return err
	}

	// Get output-related config values (used by recent command)
	cfg.Output = schema.OutputMode(viper.GetString("output"))
	if cfg.Output == "" {
		cfg.Output = schema.TextOut
	}
	cfg.OutputFile = viper.GetString("output-file")
	cfg.Precision = viper.GetInt("precision")
	if cfg.Precision <= 0 {
		cfg.Precision = contract.DefaultPrecision
	}
	useColors, err := contract.ParseBoolString(viper.GetString("color"))
	if err != nil {
		useColors = true
	}
	cfg.UseColors = useColors

	// Initialize stores with the loaded config (no signal cache for history commands)
	if err := iocache.InitStores(schema.NoneBackend, "", backend, connStr); err != nil {
		return fmt.Errorf("failed to initialize history: %w", err)
	}

	cfg.HistoryBackend = backend
	cfg.HistoryDBConnect = connStr

	return nil
}

// historySetupWrapper wraps historySetup to provide PreRunE for history commands.
func historySetupWrapper(_ *cobra.Command, _ []string) error {
	return historySetup()
}

// historyCmd focused on scan history management.
//
// Note: History subcommands use minimal initialization (historySetup) instead
// of the full sharedSetup used by analysis commands. This avoids weight merging
// and manifest discovery for simple history operations.
var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Manage historical scan tracking and exports",
	Long: `Manage historical scan data used for trend tracking and reporting.

When enabled, Trustspot tracks every project scan, storing:
- Run metadata (timestamp, configuration, duration)
- Per-package trust scores and risk flags

This enables longitudinal analysis, trend detection, and data export for BI tools.

Supported backends: SQLite, MySQL, PostgreSQL, or None (disabled)

Subcommands:
  recent - Show recent scan runs (supports parquet export)
  status - Show scan history statistics

Examples:
  # List recent scans
  trustspot history recent --history-backend sqlite

  # Export for analysis in pandas/DuckDB
  trustspot history recent --output parquet --output-file scans.parquet`,
}

// historyRecentCmd lists recent scan runs.
var historyRecentCmd = &cobra.Command{
	Use:   "recent",
	Short: "List recent scan runs with aggregate scores",
	Long: `Show the most recent project scan runs recorded in the history store.

Respects the global --output flag, so the same command serves terminal review
(text), scripting (json, csv) and analytics export (parquet).

Examples:
  # Last 10 scans as a table
  trustspot history recent

  # Last 50 scans as Parquet for DuckDB
  trustspot history recent --limit 50 --output parquet --output-file scans.parquet`,
	PreRunE: historySetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		history := iocache.Manager.GetHistoryStore()
		if history == nil {
			contract.LogFatal("Scan history is not configured", fmt.Errorf("set a history backend via --history-backend"))
		}

		runs, err := history.RecentScans(viper.GetInt("limit"))
		if err != nil {
			contract.LogFatal("Failed to query scan history", err)
		}

		writer := outwriter.NewOutWriter()
		if err := writer.WriteScans(runs, cfg); err != nil {
			contract.LogFatal("Failed to write scan history", err)
		}
	},
}

// historyStatusCmd shows scan history status.
var historyStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Display scan history statistics and connection details",
	Long: `Show detailed information about historical scan tracking.

Displays:
- Backend type and connection status
- Total number of scan runs stored
- Last scan timestamp

Use this to:
- Verify scan tracking is enabled and working
- Monitor data accumulation over time
- Check database connection health

Examples:
  # Check scan history status
  trustspot history status`,
	PreRunE: historySetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		history := iocache.Manager.GetHistoryStore()
		if history == nil {
			contract.LogFatal("Scan history is not configured", fmt.Errorf("set a history backend via --history-backend"))
		}

		status, err := history.GetStatus()
		if err != nil {
			contract.LogFatal("Failed to get history status", err)
		}
		iocache.PrintHistoryStatus(status)
	},
}
