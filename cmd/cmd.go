// Package cmd defines the command-line interface for trustspot.
package cmd

import (
	"github.com/huangsam/trustspot/internal/contract"
	"github.com/huangsam/trustspot/schema"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func init() {
	// Call initConfig on Cobra's initialization
	cobra.OnInitialize(initConfig)

	// Add primary subcommands to the root command
	rootCmd.AddCommand(checkCmd)
	rootCmd.AddCommand(scanCmd)
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(cacheCmd)
	rootCmd.AddCommand(historyCmd)

	// Add the cache subcommands to the parent cache command
	cacheCmd.AddCommand(cacheClearCmd)
	cacheCmd.AddCommand(cacheCleanupCmd)
	cacheCmd.AddCommand(cacheStatusCmd)

	// Add the history subcommands to the parent history command
	historyCmd.AddCommand(historyRecentCmd)
	historyCmd.AddCommand(historyStatusCmd)

	// Bind all persistent flags of rootCmd to Viper
	rootCmd.PersistentFlags().Float64("min-trust", contract.DefaultMinTrust, "Trust score threshold for flagging packages")
	rootCmd.PersistentFlags().String("cache-ttl", "", "Signal cache lifetime as a Go duration (default 24h)")
	rootCmd.PersistentFlags().Int("concurrency", contract.DefaultConcurrency, "Number of concurrent signal collectors per package")
	rootCmd.PersistentFlags().Int("workers", contract.DefaultWorkers, "Number of concurrent workers for project scans")
	rootCmd.PersistentFlags().String("timeout", "", "Per-collector timeout as a Go duration (default 30s)")
	rootCmd.PersistentFlags().Bool("offline", false, "Use cached signals only, never touch the network")
	rootCmd.PersistentFlags().String("token", "", "GitHub API token for higher rate limits")
	rootCmd.PersistentFlags().String("ignore", "", "Comma-separated list of package names or patterns to skip")
	rootCmd.PersistentFlags().String("ecosystem", contract.DefaultEcosystem, "Package ecosystem: npm, pypi or go")
	rootCmd.PersistentFlags().String("output", string(schema.TextOut), "Output format: text or csv or json or parquet")
	rootCmd.PersistentFlags().String("output-file", "", "Optional path to write output to")
	rootCmd.PersistentFlags().Int("precision", contract.DefaultPrecision, "Decimal precision for numeric columns")
	rootCmd.PersistentFlags().String("profile", "", "Enable profiling and write profiles to files with this prefix")
	rootCmd.PersistentFlags().Int("width", 0, "Terminal width override (0 = auto-detect)")
	rootCmd.PersistentFlags().String("registry-url", "", "Alternate package registry endpoint")
	rootCmd.PersistentFlags().String("cache-backend", string(schema.JSONBackend), "Cache backend: json or sqlite or mysql or postgresql or none")
	rootCmd.PersistentFlags().String("cache-db-connect", "", "Database connection string for mysql/postgresql (e.g., user:pass@tcp(host:port)/dbname)")
	rootCmd.PersistentFlags().String("history-backend", "", "Scan history backend: sqlite or mysql or postgresql or none")
	rootCmd.PersistentFlags().String("history-db-connect", "", "Database connection string for scan history (must differ from cache-db-connect)")
	rootCmd.PersistentFlags().String("color", "yes", "Enable colored labels in output (yes/no/true/false/1/0)")
	rootCmd.PersistentFlags().String("config", "", "Path to config file")
	if err := viper.BindPFlags(rootCmd.PersistentFlags()); err != nil {
		contract.LogFatal("Error binding root flags", err)
	}

	// Bind all flags of historyRecentCmd to Viper
	historyRecentCmd.Flags().Int("limit", 10, "Number of scan runs to display")
	if err := viper.BindPFlags(historyRecentCmd.Flags()); err != nil {
		contract.LogFatal("Error binding history recent flags", err)
	}
}
