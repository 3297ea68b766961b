package parquet

import (
	"io"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/huangsam/trustspot/schema"
	"github.com/parquet-go/parquet-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func floatPtr(v float64) *float64 { return &v }

func TestScanRunStructTags(t *testing.T) {
	// Verify struct tags are properly defined for parquet schema inference
	pqSchema := parquet.SchemaOf(new(ScanRun))
	require.NotNil(t, pqSchema)

	expectedColumns := []string{
		"scan_id",
		"start_time",
		"end_time",
		"total_packages",
		"aggregate_score",
	}

	for _, colName := range expectedColumns {
		col, ok := pqSchema.Lookup(colName)
		require.True(t, ok, "Column %s should exist in schema", colName)
		require.NotNil(t, col, "Column %s should not be nil", colName)
	}
}

func TestPackageScoreStructTags(t *testing.T) {
	// Verify struct tags are properly defined for parquet schema inference
	pqSchema := parquet.SchemaOf(new(PackageScore))
	require.NotNil(t, pqSchema)

	expectedColumns := []string{
		"package_name",
		"package_version",
		"is_direct",
		"trust_score",
		"trust_label",
		"insufficient_data",
		"security_score",
		"maintainer_score",
		"activity_score",
		"popularity_score",
		"funding_score",
		"license_score",
		"is_zombie",
		"zombie_severity",
		"is_typosquat",
		"similar_names",
		"blast_file_count",
		"blast_percentage",
	}

	for _, colName := range expectedColumns {
		col, ok := pqSchema.Lookup(colName)
		require.True(t, ok, "Column %s should exist in schema", colName)
		require.NotNil(t, col, "Column %s should not be nil", colName)
	}
}

func TestConvertScanRuns(t *testing.T) {
	start := time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)
	end := start.Add(5 * time.Second)

	runs := []schema.ScanRun{
		{ScanID: 101, StartTime: start, EndTime: end, TotalPackages: 42, AggregateScore: 71.5},
		{ScanID: 102, StartTime: start, TotalPackages: 7, AggregateScore: 55.0}, // never finished
	}

	converted := ConvertScanRuns(runs)
	require.Len(t, converted, 2)

	assert.Equal(t, int64(101), converted[0].ScanID)
	assert.Equal(t, int32(42), converted[0].TotalPackages)
	require.NotNil(t, converted[0].EndTime, "finished scan should keep its end time")
	assert.Equal(t, end, *converted[0].EndTime)

	assert.Nil(t, converted[1].EndTime, "zero end time should convert to nil")
}

func TestConvertPackageReports(t *testing.T) {
	reports := []schema.PackageReport{
		{
			Name:     "left-pad",
			Version:  "1.3.0",
			IsDirect: true,
			Trust: schema.TrustResult{
				TrustScore: 42.5,
				Metrics:    schema.TrustMetrics{Security: floatPtr(55), License: floatPtr(100)},
			},
			Zombie:    schema.ZombieResult{IsZombie: true, Severity: schema.ZombieCritical},
			Typosquat: schema.TyposquatResult{IsRisky: true, SimilarNames: []string{"leftpad", "left-pads"}},
			Blast:     &schema.BlastRadius{AffectedFileCount: 12, Percentage: 8.3},
		},
		{
			Name:   "react",
			Trust:  schema.TrustResult{TrustScore: 88},
			Zombie: schema.ZombieResult{Severity: schema.ZombieNone},
		},
	}

	converted := ConvertPackageReports(reports)
	require.Len(t, converted, 2)

	first := converted[0]
	assert.Equal(t, "left-pad", first.PackageName)
	assert.Equal(t, "Caution", first.TrustLabel)
	require.NotNil(t, first.SecurityScore)
	assert.InDelta(t, 55, *first.SecurityScore, 0.0001)
	assert.Nil(t, first.MaintainerScore, "unavailable dimension should stay nil")
	assert.Equal(t, "critical", first.ZombieSeverity)
	require.NotNil(t, first.SimilarNames)
	assert.Equal(t, "leftpad|left-pads", *first.SimilarNames)
	require.NotNil(t, first.BlastFileCount)
	assert.Equal(t, int32(12), *first.BlastFileCount)
	require.NotNil(t, first.BlastPercentage)
	assert.InDelta(t, 8.3, *first.BlastPercentage, 0.0001)

	second := converted[1]
	assert.Equal(t, "Trusted", second.TrustLabel)
	assert.Nil(t, second.SimilarNames, "no similar names should convert to nil")
	assert.Nil(t, second.BlastFileCount)
	assert.Nil(t, second.BlastPercentage)
}

func TestWriteScanRunsParquet(t *testing.T) {
	tmpDir := t.TempDir()
	outputPath := filepath.Join(tmpDir, "scan_runs.parquet")

	start := time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)
	data := ConvertScanRuns([]schema.ScanRun{
		{ScanID: 1, StartTime: start, EndTime: start.Add(time.Second), TotalPackages: 5, AggregateScore: 80},
		{ScanID: 2, StartTime: start.Add(time.Hour), TotalPackages: 3, AggregateScore: 60},
	})

	err := WriteScanRunsParquet(data, outputPath)
	require.NoError(t, err, "Writing Parquet file should not produce error")

	info, err := os.Stat(outputPath)
	require.NoError(t, err, "Output file should exist")
	assert.Greater(t, info.Size(), int64(0), "Output file should not be empty")

	// Read back and verify data
	file, err := os.Open(outputPath)
	require.NoError(t, err, "Should be able to open output file")
	defer file.Close()

	reader := parquet.NewGenericReader[ScanRun](file)
	defer reader.Close()

	readData := make([]ScanRun, reader.NumRows())
	n, err := reader.Read(readData)
	if err != nil && err != io.EOF {
		require.NoError(t, err, "Should be able to read data")
	}
	assert.Equal(t, len(data), n, "Should read all records")

	for i := range data {
		assert.Equal(t, data[i].ScanID, readData[i].ScanID, "ScanID should match")
		assert.Equal(t, data[i].TotalPackages, readData[i].TotalPackages, "TotalPackages should match")
		assert.InDelta(t, data[i].AggregateScore, readData[i].AggregateScore, 0.0001, "AggregateScore should match")
		assert.WithinDuration(t, data[i].StartTime, readData[i].StartTime, time.Nanosecond, "StartTime should match")

		if data[i].EndTime == nil {
			assert.Nil(t, readData[i].EndTime, "EndTime should be nil")
		} else {
			require.NotNil(t, readData[i].EndTime, "EndTime should not be nil")
			assert.WithinDuration(t, *data[i].EndTime, *readData[i].EndTime, time.Nanosecond, "EndTime should match")
		}
	}
}

func TestWritePackageScoresParquet(t *testing.T) {
	tmpDir := t.TempDir()
	outputPath := filepath.Join(tmpDir, "package_scores.parquet")

	names := "leftpad|left-pads"
	count := int32(12)
	data := []PackageScore{
		{
			PackageName:     "left-pad",
			PackageVersion:  "1.3.0",
			IsDirect:        true,
			TrustScore:      42.5,
			TrustLabel:      "Caution",
			SecurityScore:   floatPtr(55),
			IsZombie:        true,
			ZombieSeverity:  "critical",
			IsTyposquat:     true,
			SimilarNames:    &names,
			BlastFileCount:  &count,
			BlastPercentage: floatPtr(8.3),
		},
		{
			PackageName:    "react",
			TrustScore:     88,
			TrustLabel:     "Trusted",
			ZombieSeverity: "none",
		},
	}

	err := WritePackageScoresParquet(data, outputPath)
	require.NoError(t, err, "Writing Parquet file should not produce error")

	file, err := os.Open(outputPath)
	require.NoError(t, err, "Should be able to open output file")
	defer file.Close()

	reader := parquet.NewGenericReader[PackageScore](file)
	defer reader.Close()

	readData := make([]PackageScore, reader.NumRows())
	n, err := reader.Read(readData)
	if err != nil && err != io.EOF {
		require.NoError(t, err, "Should be able to read data")
	}
	assert.Equal(t, len(data), n, "Should read all records")

	first := readData[0]
	assert.Equal(t, "left-pad", first.PackageName)
	assert.InDelta(t, 42.5, first.TrustScore, 0.0001)
	require.NotNil(t, first.SecurityScore)
	assert.InDelta(t, 55, *first.SecurityScore, 0.0001)
	assert.Nil(t, first.MaintainerScore, "nil dimension should survive the round trip")
	require.NotNil(t, first.SimilarNames)
	assert.Equal(t, names, *first.SimilarNames)
	require.NotNil(t, first.BlastFileCount)
	assert.Equal(t, count, *first.BlastFileCount)

	second := readData[1]
	assert.Equal(t, "react", second.PackageName)
	assert.Nil(t, second.SimilarNames)
	assert.Nil(t, second.BlastFileCount)
	assert.Nil(t, second.BlastPercentage)
}

func TestWriteScanRunsParquet_EmptyData(t *testing.T) {
	tmpDir := t.TempDir()
	outputPath := filepath.Join(tmpDir, "empty_scan_runs.parquet")

	err := WriteScanRunsParquet([]ScanRun{}, outputPath)
	require.NoError(t, err, "Writing empty data should not produce error")

	info, err := os.Stat(outputPath)
	require.NoError(t, err, "Output file should exist")
	assert.Greater(t, info.Size(), int64(0), "Output file should contain schema even if empty")
}

func TestWritePackageScoresParquet_InvalidPath(t *testing.T) {
	err := WritePackageScoresParquet([]PackageScore{{PackageName: "x"}}, "/nonexistent/directory/output.parquet")
	require.Error(t, err, "Writing to invalid path should produce error")
}
