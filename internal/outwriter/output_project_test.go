package outwriter

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/huangsam/trustspot/internal/contract"
	"github.com/huangsam/trustspot/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// sampleProject returns a two-package project report, one below threshold.
func sampleProject() *schema.ProjectReport {
	low := sampleReport()
	high := sampleReport()
	high.Name = "react"
	high.Version = "18.2.0"
	high.IsDirect = false
	high.Trust.TrustScore = 88.0
	high.Zombie = schema.ZombieResult{Severity: schema.ZombieNone}
	high.Typosquat = schema.TyposquatResult{}
	high.Blast = nil

	return &schema.ProjectReport{
		ProjectDir:     "/work/app",
		Reports:        []schema.PackageReport{low, high},
		AggregateScore: 65.2,
		Duration:       3 * time.Second,
	}
}

func TestWriteProjectTable(t *testing.T) {
	var buf bytes.Buffer
	fmtFloat, _ := createFormatters(1)
	require.NoError(t, writeProjectTable(&buf, sampleProject(), testConfig(), fmtFloat))

	out := buf.String()
	assert.Contains(t, out, "left-pad")
	assert.Contains(t, out, "react")
	assert.Contains(t, out, "42.5")
	assert.Contains(t, out, "88.0")
	assert.Contains(t, out, "critical")
	assert.Contains(t, out, "8.3%")
	assert.Contains(t, out, "Scanned 2 packages in /work/app (aggregate score: 65.2, 1 below 60)")
	assert.Contains(t, out, "Scan completed in 3s with 4 workers. Cache backend: json")
}

func TestWriteJSONProjectReport(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, writeJSONProjectReport(&buf, sampleProject()))

	out := buf.String()
	assert.Contains(t, out, `"aggregateLabel": "`+contract.ModerateValue+`"`)
	assert.Contains(t, out, `"projectDir": "/work/app"`)
	assert.Contains(t, out, `"aggregateScore": 65.2`)
}

func TestWriteScansTable(t *testing.T) {
	runs := []schema.ScanRun{
		{
			ScanID:         1700000000000000001,
			StartTime:      time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC),
			EndTime:        time.Date(2024, 3, 1, 10, 0, 5, 0, time.UTC),
			TotalPackages:  42,
			AggregateScore: 71.5,
		},
		{
			ScanID:         1700000000000000002,
			StartTime:      time.Date(2024, 3, 2, 10, 0, 0, 0, time.UTC),
			EndTime:        time.Date(2024, 3, 2, 10, 0, 4, 0, time.UTC),
			TotalPackages:  40,
			AggregateScore: 35.0,
		},
	}

	var buf bytes.Buffer
	fmtFloat, _ := createFormatters(1)
	require.NoError(t, writeScansTable(&buf, runs, testConfig(), fmtFloat))

	out := buf.String()
	assert.Contains(t, out, "1700000000000000001")
	assert.Contains(t, out, "2024-03-01 10:00:00")
	assert.Contains(t, out, "71.5")
	assert.Contains(t, out, contract.ModerateValue)
	assert.Contains(t, out, contract.CriticalValue)
	assert.Contains(t, out, "Showing 2 scan runs")
}

func TestWriteScansTableEmpty(t *testing.T) {
	var buf bytes.Buffer
	fmtFloat, _ := createFormatters(1)
	require.NoError(t, writeScansTable(&buf, nil, testConfig(), fmtFloat))
	assert.Contains(t, buf.String(), "Showing 0 scan runs")
}

func TestProjectTableTruncatesLongNames(t *testing.T) {
	project := sampleProject()
	project.Reports[0].Name = strings.Repeat("verylongscope-", 6) + "pkg"

	cfg := testConfig()
	cfg.Width = 70 // forces the minimum 12-char name column

	var buf bytes.Buffer
	fmtFloat, _ := createFormatters(1)
	require.NoError(t, writeProjectTable(&buf, project, cfg, fmtFloat))
	assert.Contains(t, buf.String(), "...")
	assert.NotContains(t, buf.String(), project.Reports[0].Name)
}
