package contract

import (
	"fmt"
	"maps"
	"math"
	"runtime"
	"strings"
	"time"

	"github.com/huangsam/trustspot/schema"
)

// Default values for configuration.
const (
	DefaultMinTrust         = 40.0
	DefaultCacheTTL         = 24 * time.Hour
	DefaultConcurrency      = 6 // one slot per signal source
	DefaultCollectorTimeout = 30 * time.Second
	DefaultPrecision        = 1
	DefaultEcosystem        = "npm"
	MaxConcurrency          = 64
)

// DefaultWorkers is the default number of concurrent workers used for
// per-package scanning and blast radius file batches.
var DefaultWorkers = runtime.GOMAXPROCS(0)

// DateTimeFormat is the default date time representation.
var DateTimeFormat = time.RFC3339

// ProfileConfig holds profiling settings.
type ProfileConfig struct {
	Enabled bool
	Prefix  string
}

// ProcessProfilingConfig handles the profiling flag and sets up profiling configuration.
func ProcessProfilingConfig(profile *ProfileConfig, profilePrefix string) error {
	if profilePrefix != "" {
		profile.Enabled = true
		profile.Prefix = profilePrefix
	}
	return nil
}

// WeightsRawInput holds per-dimension weight overrides from the YAML config
// file. Use float64 pointers so absent fields keep their defaults.
type WeightsRawInput struct {
	Security   *float64 `mapstructure:"security"`
	Maintainer *float64 `mapstructure:"maintainer"`
	Activity   *float64 `mapstructure:"activity"`
	Popularity *float64 `mapstructure:"popularity"`
	Funding    *float64 `mapstructure:"funding"`
	License    *float64 `mapstructure:"license"`
}

// TyposquatRawInput holds typosquat detector extensions from the config file.
type TyposquatRawInput struct {
	ExtraNames []string `mapstructure:"extra-names"`
	Affixes    []string `mapstructure:"affixes"`
}

// ConfigRawInput holds the raw inputs from all sources (flags, env, config file).
// Viper unmarshals into this struct.
type ConfigRawInput struct {
	// Set manually from positional args, so no tag
	ProjectDirStr string

	// --- Fields from rootCmd.PersistentFlags() ---
	MinTrust         float64 `mapstructure:"min-trust"`
	CacheTTL         string  `mapstructure:"cache-ttl"`
	Concurrency      int     `mapstructure:"concurrency"`
	Workers          int     `mapstructure:"workers"`
	Timeout          string  `mapstructure:"timeout"`
	Offline          bool    `mapstructure:"offline"`
	Token            string  `mapstructure:"token"`
	Ignore           string  `mapstructure:"ignore"`
	Ecosystem        string  `mapstructure:"ecosystem"`
	Output           string  `mapstructure:"output"`
	OutputFile       string  `mapstructure:"output-file"`
	Precision        int     `mapstructure:"precision"`
	Color            string  `mapstructure:"color"`
	Width            int     `mapstructure:"width"`
	RegistryURL      string  `mapstructure:"registry-url"`
	CacheBackend     string  `mapstructure:"cache-backend"`
	CacheDBConnect   string  `mapstructure:"cache-db-connect"`
	HistoryBackend   string  `mapstructure:"history-backend"`
	HistoryDBConnect string  `mapstructure:"history-db-connect"`

	// --- Custom weights from config file ---
	Weights WeightsRawInput `mapstructure:"weights"`

	// --- Typosquat extensions from config file ---
	Typosquat TyposquatRawInput `mapstructure:"typosquat"`
}

// Config holds the runtime configuration for the analysis.
// This struct remains the "final, validated" config.
type Config struct {
	ProjectDir string

	MinTrust         float64
	CacheTTL         time.Duration
	Concurrency      int
	Workers          int
	CollectorTimeout time.Duration
	Offline          bool
	Token            string
	Ignored          []string
	Ecosystem        string

	Output     schema.OutputMode
	OutputFile string
	Precision  int
	UseColors  bool
	Width      int // Terminal width override (0 = auto-detect)

	RegistryURL string // Alternate registry endpoint; empty means the default

	CacheBackend     schema.StoreBackend
	CacheDBConnect   string // Please use env var as this is plaintext
	HistoryBackend   schema.StoreBackend
	HistoryDBConnect string // Please use env var as this is plaintext

	// Weights is the final per-dimension weight map, computed from
	// defaults + config overrides. Always sums to 1.0 after validation.
	Weights map[schema.Dimension]float64

	// ExtraReferenceNames extends the typosquat reference list.
	ExtraReferenceNames []string

	// Affixes overrides the typosquat affix set when non-empty.
	Affixes []string
}

// Clone returns a deep copy of the Config struct.
func (c *Config) Clone() *Config {
	clone := *c
	if c.Ignored != nil {
		clone.Ignored = make([]string, len(c.Ignored))
		copy(clone.Ignored, c.Ignored)
	}
	if c.Weights != nil {
		clone.Weights = make(map[schema.Dimension]float64)
		maps.Copy(clone.Weights, c.Weights)
	}
	if c.ExtraReferenceNames != nil {
		clone.ExtraReferenceNames = make([]string, len(c.ExtraReferenceNames))
		copy(clone.ExtraReferenceNames, c.ExtraReferenceNames)
	}
	if c.Affixes != nil {
		clone.Affixes = make([]string, len(c.Affixes))
		copy(clone.Affixes, c.Affixes)
	}
	return &clone
}

// ProcessAndValidate performs all complex parsing and validation on the raw
// inputs and updates the final Config struct.
func ProcessAndValidate(cfg *Config, input *ConfigRawInput) error {
	if err := validateSimpleInputs(cfg, input); err != nil {
		return err
	}
	if err := processDurations(cfg, input); err != nil {
		return err
	}
	if err := processWeights(cfg, input); err != nil {
		return err
	}
	if err := validateBackendConfigs(cfg, input); err != nil {
		return err
	}
	return nil
}

// validateSimpleInputs validates scalar flags and populates cfg.
func validateSimpleInputs(cfg *Config, input *ConfigRawInput) error {
	cfg.ProjectDir = input.ProjectDirStr
	if cfg.ProjectDir == "" {
		cfg.ProjectDir = "."
	}

	if input.MinTrust < 0 || input.MinTrust > 100 {
		return fmt.Errorf("min-trust must be in [0,100], got %.1f", input.MinTrust)
	}
	cfg.MinTrust = input.MinTrust

	cfg.Concurrency = input.Concurrency
	if cfg.Concurrency <= 0 {
		cfg.Concurrency = DefaultConcurrency
	}
	if cfg.Concurrency > MaxConcurrency {
		return fmt.Errorf("concurrency must be at most %d, got %d", MaxConcurrency, cfg.Concurrency)
	}

	cfg.Workers = input.Workers
	if cfg.Workers <= 0 {
		cfg.Workers = DefaultWorkers
	}

	cfg.Offline = input.Offline
	cfg.Token = input.Token
	cfg.OutputFile = input.OutputFile
	cfg.RegistryURL = strings.TrimRight(input.RegistryURL, "/")
	cfg.Width = input.Width

	cfg.Ecosystem = input.Ecosystem
	if cfg.Ecosystem == "" {
		cfg.Ecosystem = DefaultEcosystem
	}

	cfg.Ignored = nil
	for _, name := range strings.Split(input.Ignore, ",") {
		if name = strings.TrimSpace(name); name != "" {
			cfg.Ignored = append(cfg.Ignored, name)
		}
	}

	cfg.Output = schema.OutputMode(strings.ToLower(input.Output))
	if cfg.Output == "" {
		cfg.Output = schema.TextOut
	}
	if _, ok := schema.ValidOutputModes[cfg.Output]; !ok {
		return fmt.Errorf("invalid output mode '%s'. must be text, json, csv, parquet", input.Output)
	}

	cfg.Precision = input.Precision
	if cfg.Precision < 0 || cfg.Precision > 6 {
		return fmt.Errorf("precision must be in [0,6], got %d", input.Precision)
	}

	useColors, err := ParseBoolString(valueOrDefault(input.Color, "yes"))
	if err != nil {
		return fmt.Errorf("invalid color value: %w", err)
	}
	cfg.UseColors = useColors

	cfg.ExtraReferenceNames = input.Typosquat.ExtraNames
	cfg.Affixes = input.Typosquat.Affixes

	return nil
}

// processDurations parses the TTL and timeout strings.
func processDurations(cfg *Config, input *ConfigRawInput) error {
	cfg.CacheTTL = DefaultCacheTTL
	if input.CacheTTL != "" {
		ttl, err := time.ParseDuration(input.CacheTTL)
		if err != nil {
			return fmt.Errorf("invalid cache-ttl %q: %w", input.CacheTTL, err)
		}
		if ttl <= 0 {
			return fmt.Errorf("cache-ttl must be positive, got %s", ttl)
		}
		cfg.CacheTTL = ttl
	}

	cfg.CollectorTimeout = DefaultCollectorTimeout
	if input.Timeout != "" {
		timeout, err := time.ParseDuration(input.Timeout)
		if err != nil {
			return fmt.Errorf("invalid timeout %q: %w", input.Timeout, err)
		}
		if timeout <= 0 {
			return fmt.Errorf("timeout must be positive, got %s", timeout)
		}
		cfg.CollectorTimeout = timeout
	}

	return nil
}

// processWeights merges default weights with config-file overrides and
// validates the invariant that weights sum to 1.0. A silently wrong scoring
// model is worse than a refusal to start, so a bad sum is a hard error.
func processWeights(cfg *Config, input *ConfigRawInput) error {
	weights := make(map[schema.Dimension]float64, len(schema.DefaultWeights))
	maps.Copy(weights, schema.DefaultWeights)

	overrides := map[schema.Dimension]*float64{
		schema.SecurityDim:   input.Weights.Security,
		schema.MaintainerDim: input.Weights.Maintainer,
		schema.ActivityDim:   input.Weights.Activity,
		schema.PopularityDim: input.Weights.Popularity,
		schema.FundingDim:    input.Weights.Funding,
		schema.LicenseDim:    input.Weights.License,
	}
	for dim, override := range overrides {
		if override == nil {
			continue
		}
		if *override < 0 || *override > 1 {
			return fmt.Errorf("weight for %s must be in [0,1], got %.3f", dim, *override)
		}
		weights[dim] = *override
	}

	var sum float64
	for _, w := range weights {
		sum += w
	}
	if math.Abs(sum-1.0) > 1e-6 {
		return fmt.Errorf("dimension weights must sum to 1.0, got %.4f", sum)
	}

	cfg.Weights = weights
	return nil
}

// validateBackendConfigs validates cache and history backend configurations.
func validateBackendConfigs(cfg *Config, input *ConfigRawInput) error {
	// --- Cache Backend Validation ---
	cfg.CacheBackend = schema.StoreBackend(strings.ToLower(valueOrDefault(input.CacheBackend, string(schema.JSONBackend))))
	if _, ok := schema.ValidStoreBackends[cfg.CacheBackend]; !ok {
		return fmt.Errorf("invalid cache backend '%s'. must be json, sqlite, mysql, postgresql, none", input.CacheBackend)
	}
	cfg.CacheDBConnect = input.CacheDBConnect
	if err := ValidateDatabaseConnectionString(cfg.CacheBackend, cfg.CacheDBConnect); err != nil {
		return err
	}

	// --- History Backend Validation ---
	cfg.HistoryBackend = schema.StoreBackend(strings.ToLower(input.HistoryBackend))
	if cfg.HistoryBackend != "" {
		if cfg.HistoryBackend == schema.JSONBackend {
			return fmt.Errorf("history storage requires a SQL backend (sqlite, mysql, postgresql), got json")
		}
		if _, ok := schema.ValidStoreBackends[cfg.HistoryBackend]; !ok {
			return fmt.Errorf("invalid history backend '%s'. must be sqlite, mysql, postgresql, none", input.HistoryBackend)
		}
		cfg.HistoryDBConnect = input.HistoryDBConnect
		if err := ValidateDatabaseConnectionString(cfg.HistoryBackend, cfg.HistoryDBConnect); err != nil {
			return err
		}

		// Cache and history must not share a SQLite file
		if cfg.CacheBackend == schema.SQLiteBackend && cfg.HistoryBackend == schema.SQLiteBackend {
			cacheDBPath := valueOrDefault(cfg.CacheDBConnect, GetCacheDBFilePath())
			historyDBPath := valueOrDefault(cfg.HistoryDBConnect, GetHistoryDBFilePath())
			if cacheDBPath == historyDBPath {
				return fmt.Errorf("cache and history storage must use different SQLite database files. Both resolve to %q", cacheDBPath)
			}
		}
	}

	return nil
}

// ValidateDatabaseConnectionString validates the format of database connection
// strings for MySQL and PostgreSQL backends.
func ValidateDatabaseConnectionString(backend schema.StoreBackend, connStr string) error {
	switch backend {
	case schema.JSONBackend, schema.SQLiteBackend, schema.NoneBackend:
		return nil
	case schema.MySQLBackend:
		if connStr == "" {
			return fmt.Errorf("cache-db-connect is required when using %s backend", backend)
		}
		if !strings.Contains(connStr, "@tcp(") {
			return fmt.Errorf("MySQL connection string must contain '@tcp(' for host:port specification")
		}
		if !strings.Contains(connStr, "/") {
			return fmt.Errorf("MySQL connection string must contain '/' followed by database name")
		}
	case schema.PostgreSQLBackend:
		if connStr == "" {
			return fmt.Errorf("cache-db-connect is required when using %s backend", backend)
		}
		if !strings.Contains(connStr, "host=") {
			return fmt.Errorf("PostgreSQL connection string must contain 'host=' parameter")
		}
		if !strings.Contains(connStr, "dbname=") {
			return fmt.Errorf("PostgreSQL connection string must contain 'dbname=' parameter")
		}
	}
	return nil
}

// valueOrDefault returns s unless it is empty, in which case def is returned.
func valueOrDefault(s, def string) string {
	if s == "" {
		return def
	}
	return s
}
