package contract

import (
	"testing"
	"time"

	"github.com/huangsam/trustspot/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// validInput returns a raw input that passes validation with defaults.
func validInput() *ConfigRawInput {
	return &ConfigRawInput{
		MinTrust:     DefaultMinTrust,
		Output:       string(schema.TextOut),
		Precision:    DefaultPrecision,
		CacheBackend: string(schema.JSONBackend),
	}
}

func TestProcessAndValidateDefaults(t *testing.T) {
	cfg := &Config{}
	require.NoError(t, ProcessAndValidate(cfg, validInput()))

	assert.Equal(t, ".", cfg.ProjectDir)
	assert.Equal(t, DefaultMinTrust, cfg.MinTrust)
	assert.Equal(t, DefaultCacheTTL, cfg.CacheTTL)
	assert.Equal(t, DefaultConcurrency, cfg.Concurrency)
	assert.Equal(t, DefaultCollectorTimeout, cfg.CollectorTimeout)
	assert.Equal(t, DefaultEcosystem, cfg.Ecosystem)
	assert.Equal(t, schema.TextOut, cfg.Output)
	assert.Equal(t, schema.JSONBackend, cfg.CacheBackend)
	assert.True(t, cfg.UseColors)
	assert.Equal(t, schema.DefaultWeights, cfg.Weights)
}

func TestProcessAndValidateIgnoreList(t *testing.T) {
	input := validInput()
	input.Ignore = " lodash, @corp/* ,,react "

	cfg := &Config{}
	require.NoError(t, ProcessAndValidate(cfg, input))
	assert.Equal(t, []string{"lodash", "@corp/*", "react"}, cfg.Ignored)
}

func TestProcessAndValidateScalarErrors(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*ConfigRawInput)
	}{
		{"min-trust too high", func(in *ConfigRawInput) { in.MinTrust = 101 }},
		{"min-trust negative", func(in *ConfigRawInput) { in.MinTrust = -1 }},
		{"concurrency too high", func(in *ConfigRawInput) { in.Concurrency = MaxConcurrency + 1 }},
		{"bad output mode", func(in *ConfigRawInput) { in.Output = "xml" }},
		{"precision out of range", func(in *ConfigRawInput) { in.Precision = 9 }},
		{"bad color value", func(in *ConfigRawInput) { in.Color = "maybe" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			input := validInput()
			tt.mutate(input)
			assert.Error(t, ProcessAndValidate(&Config{}, input))
		})
	}
}

func TestProcessDurations(t *testing.T) {
	t.Run("custom values", func(t *testing.T) {
		input := validInput()
		input.CacheTTL = "12h"
		input.Timeout = "5s"

		cfg := &Config{}
		require.NoError(t, ProcessAndValidate(cfg, input))
		assert.Equal(t, 12*time.Hour, cfg.CacheTTL)
		assert.Equal(t, 5*time.Second, cfg.CollectorTimeout)
	})

	t.Run("unparsable ttl", func(t *testing.T) {
		input := validInput()
		input.CacheTTL = "yesterday"
		assert.Error(t, ProcessAndValidate(&Config{}, input))
	})

	t.Run("negative timeout", func(t *testing.T) {
		input := validInput()
		input.Timeout = "-5s"
		assert.Error(t, ProcessAndValidate(&Config{}, input))
	})
}

func TestProcessWeights(t *testing.T) {
	ptr := func(v float64) *float64 { return &v }

	t.Run("overrides that keep the sum", func(t *testing.T) {
		input := validInput()
		input.Weights.Security = ptr(0.30)
		input.Weights.Maintainer = ptr(0.15)

		cfg := &Config{}
		require.NoError(t, ProcessAndValidate(cfg, input))
		assert.InDelta(t, 0.30, cfg.Weights[schema.SecurityDim], 0.0001)
		assert.InDelta(t, 0.15, cfg.Weights[schema.MaintainerDim], 0.0001)
		// Untouched dimensions keep their defaults.
		assert.InDelta(t, schema.DefaultWeights[schema.LicenseDim], cfg.Weights[schema.LicenseDim], 0.0001)
	})

	t.Run("sum drift is a hard error", func(t *testing.T) {
		input := validInput()
		input.Weights.Security = ptr(0.50)

		err := ProcessAndValidate(&Config{}, input)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "must sum to 1.0")
	})

	t.Run("out of range weight", func(t *testing.T) {
		input := validInput()
		input.Weights.Funding = ptr(1.5)
		assert.Error(t, ProcessAndValidate(&Config{}, input))
	})
}

func TestValidateBackendConfigs(t *testing.T) {
	t.Run("history requires sql backend", func(t *testing.T) {
		input := validInput()
		input.HistoryBackend = "json"

		err := ProcessAndValidate(&Config{}, input)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "requires a SQL backend")
	})

	t.Run("shared sqlite file is rejected", func(t *testing.T) {
		input := validInput()
		input.CacheBackend = string(schema.SQLiteBackend)
		input.CacheDBConnect = "/tmp/shared.db"
		input.HistoryBackend = string(schema.SQLiteBackend)
		input.HistoryDBConnect = "/tmp/shared.db"

		err := ProcessAndValidate(&Config{}, input)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "different SQLite database files")
	})

	t.Run("separate sqlite files are fine", func(t *testing.T) {
		input := validInput()
		input.CacheBackend = string(schema.SQLiteBackend)
		input.CacheDBConnect = "/tmp/cache.db"
		input.HistoryBackend = string(schema.SQLiteBackend)
		input.HistoryDBConnect = "/tmp/history.db"

		cfg := &Config{}
		require.NoError(t, ProcessAndValidate(cfg, input))
		assert.Equal(t, schema.SQLiteBackend, cfg.HistoryBackend)
	})

	t.Run("unknown cache backend", func(t *testing.T) {
		input := validInput()
		input.CacheBackend = "redis"
		assert.Error(t, ProcessAndValidate(&Config{}, input))
	})
}

func TestValidateDatabaseConnectionString(t *testing.T) {
	tests := []struct {
		name    string
		backend schema.StoreBackend
		connStr string
		wantErr bool
	}{
		{"sqlite empty is fine", schema.SQLiteBackend, "", false},
		{"json empty is fine", schema.JSONBackend, "", false},
		{"mysql empty", schema.MySQLBackend, "", true},
		{"mysql missing tcp", schema.MySQLBackend, "user:pass/dbname", true},
		{"mysql valid", schema.MySQLBackend, "user:pass@tcp(localhost:3306)/trustspot", false},
		{"postgres empty", schema.PostgreSQLBackend, "", true},
		{"postgres missing dbname", schema.PostgreSQLBackend, "host=localhost", true},
		{"postgres valid", schema.PostgreSQLBackend, "host=localhost port=5432 dbname=trustspot", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateDatabaseConnectionString(tt.backend, tt.connStr)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestConfigClone(t *testing.T) {
	cfg := &Config{}
	input := validInput()
	input.Ignore = "lodash,react"
	require.NoError(t, ProcessAndValidate(cfg, input))

	clone := cfg.Clone()
	clone.Ignored[0] = "changed"
	clone.Weights[schema.SecurityDim] = 0.99
	clone.Offline = true

	assert.Equal(t, "lodash", cfg.Ignored[0], "clone must not share the ignore slice")
	assert.InDelta(t, schema.DefaultWeights[schema.SecurityDim], cfg.Weights[schema.SecurityDim], 0.0001,
		"clone must not share the weight map")
	assert.False(t, cfg.Offline)
}

func TestProcessProfilingConfig(t *testing.T) {
	profile := &ProfileConfig{}
	require.NoError(t, ProcessProfilingConfig(profile, ""))
	assert.False(t, profile.Enabled)

	require.NoError(t, ProcessProfilingConfig(profile, "perf"))
	assert.True(t, profile.Enabled)
	assert.Equal(t, "perf", profile.Prefix)
}
