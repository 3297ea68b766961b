package outwriter

import (
	"bytes"
	"encoding/csv"
	"strings"
	"testing"
	"time"

	"github.com/huangsam/trustspot/internal/contract"
	"github.com/huangsam/trustspot/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func floatPtr(v float64) *float64 { return &v }

// sampleReport returns a fully populated package report for output tests.
func sampleReport() schema.PackageReport {
	lastActivity := time.Date(2023, 1, 15, 0, 0, 0, 0, time.UTC)
	set := schema.CollectorSet{}
	for _, src := range schema.Sources {
		set.SetBySource(src, schema.CollectorResult{Source: src, Status: schema.StatusSuccess})
	}
	return schema.PackageReport{
		Name:     "left-pad",
		Version:  "1.3.0",
		IsDirect: true,
		Trust: schema.TrustResult{
			TrustScore: 42.5,
			Metrics: schema.TrustMetrics{
				Security:   floatPtr(55),
				Maintainer: floatPtr(30),
				Activity:   floatPtr(20),
				Popularity: floatPtr(70),
				Funding:    floatPtr(10),
				License:    floatPtr(100),
			},
		},
		Zombie: schema.ZombieResult{
			IsZombie:     true,
			Severity:     schema.ZombieCritical,
			LastActivity: &lastActivity,
			Reason:       "no publish or commit in over 2 years",
		},
		Typosquat: schema.TyposquatResult{
			IsRisky:      true,
			SimilarNames: []string{"leftpad", "left-pads"},
			MinDistance:  1,
		},
		Blast: &schema.BlastRadius{
			AffectedFileCount: 12,
			AffectedFilePaths: []string{"src/a.js", "src/b.js"},
			Percentage:        8.3,
		},
		Collected: set,
	}
}

func testConfig() *contract.Config {
	return &contract.Config{
		MinTrust:     60,
		Precision:    1,
		UseColors:    false,
		Width:        120,
		Workers:      4,
		Weights:      schema.DefaultWeights,
		CacheBackend: schema.JSONBackend,
	}
}

func TestWritePackageText(t *testing.T) {
	var buf bytes.Buffer
	fmtFloat, _ := createFormatters(1)
	require.NoError(t, writePackageText(&buf, sampleReport(), testConfig(), fmtFloat))

	out := buf.String()
	assert.Contains(t, out, "left-pad@1.3.0")
	assert.Contains(t, out, "Trust score: 42.5")
	assert.Contains(t, out, contract.CautionValue)
	assert.Contains(t, out, "Zombie (critical)")
	assert.Contains(t, out, "Possible typosquat of: leftpad, left-pads")
	assert.Contains(t, out, "Blast radius: 12 files (8.3%)")
	for _, dim := range schema.Dimensions {
		assert.Contains(t, out, string(dim))
	}
}

func TestWritePackageTextMinimal(t *testing.T) {
	report := sampleReport()
	report.Version = ""
	report.Trust = schema.TrustResult{
		TrustScore:            50,
		Metrics:               schema.TrustMetrics{License: floatPtr(100)},
		InsufficientData:      true,
		UnavailableDimensions: []schema.Dimension{schema.SecurityDim, schema.ActivityDim},
	}
	report.Zombie = schema.ZombieResult{Severity: schema.ZombieNone}
	report.Typosquat = schema.TyposquatResult{}
	report.Blast = nil

	var buf bytes.Buffer
	fmtFloat, _ := createFormatters(1)
	require.NoError(t, writePackageText(&buf, report, testConfig(), fmtFloat))

	out := buf.String()
	assert.Contains(t, out, "left-pad@latest")
	assert.Contains(t, out, "Insufficient data: security, activity unavailable")
	assert.NotContains(t, out, "Zombie (")
	assert.NotContains(t, out, "typosquat")
	assert.NotContains(t, out, "Blast radius")
}

func TestWriteJSONPackageReport(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, writeJSONPackageReport(&buf, sampleReport()))

	out := buf.String()
	assert.Contains(t, out, `"label": "`+contract.CautionValue+`"`)
	assert.Contains(t, out, `"name": "left-pad"`)
	assert.Contains(t, out, `"trustScore": 42.5`)
}

func TestWriteCSVPackageRow(t *testing.T) {
	var buf bytes.Buffer
	fmtFloat, _ := createFormatters(1)
	err := writeCSVWithHeader(&buf, packageCSVHeader(), func(w *csv.Writer) error {
		return writeCSVPackageRow(w, 1, sampleReport(), fmtFloat)
	})
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 2)

	fields := strings.Split(lines[1], ",")
	require.Len(t, fields, len(packageCSVHeader()))
	assert.Equal(t, "1", fields[0])
	assert.Equal(t, "left-pad", fields[1])
	assert.Equal(t, "yes", fields[3])
	assert.Equal(t, "42.5", fields[4])
	assert.Equal(t, "leftpad|left-pads", fields[10])
	assert.Equal(t, "12", fields[11])
	assert.Equal(t, "8.3", fields[12])
}

func TestDimensionSource(t *testing.T) {
	tests := []struct {
		dim  schema.Dimension
		want schema.Source
	}{
		{schema.SecurityDim, schema.VulnsSource},
		{schema.MaintainerDim, schema.RegistrySource},
		{schema.ActivityDim, schema.RepoSource},
		{schema.PopularityDim, schema.PopularitySource},
		{schema.FundingDim, schema.FundingSource},
		{schema.LicenseDim, schema.LicenseSource},
	}

	for _, tt := range tests {
		t.Run(string(tt.dim), func(t *testing.T) {
			assert.Equal(t, tt.want, dimensionSource(tt.dim))
		})
	}
}

func TestJoinDimensions(t *testing.T) {
	assert.Equal(t, "", joinDimensions(nil))
	assert.Equal(t, "security, license",
		joinDimensions([]schema.Dimension{schema.SecurityDim, schema.LicenseDim}))
}
