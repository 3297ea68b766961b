// Package parquet provides data structures and functions for exporting trust
// analysis data to Parquet files using github.com/parquet-go/parquet-go.
package parquet

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/huangsam/trustspot/internal/contract"
	"github.com/huangsam/trustspot/schema"
	"github.com/parquet-go/parquet-go"
)

// ScanRun represents a single project scan with metadata.
// This struct maps to the trustspot_scan_runs database table.
type ScanRun struct {
	// ScanID is the unique identifier for this scan
	ScanID int64 `parquet:"scan_id,snappy"`

	// StartTime is when the scan began
	StartTime time.Time `parquet:"start_time,snappy"`

	// EndTime is when the scan completed (nullable)
	EndTime *time.Time `parquet:"end_time,optional,snappy"`

	// TotalPackages is the number of packages analyzed in this scan
	TotalPackages int32 `parquet:"total_packages,snappy"`

	// AggregateScore is the direct-weighted project score
	AggregateScore float64 `parquet:"aggregate_score,snappy"`
}

// PackageScore represents the analytical outcome for one package.
// This struct maps to the trustspot_package_scores database table.
type PackageScore struct {
	// PackageName is the registry name of the package
	PackageName string `parquet:"package_name,snappy"`

	// PackageVersion is the analyzed version (empty means latest)
	PackageVersion string `parquet:"package_version,snappy"`

	// IsDirect reports whether the package is a direct dependency
	IsDirect bool `parquet:"is_direct,snappy"`

	// TrustScore is the composite trust score in [0,100]
	TrustScore float64 `parquet:"trust_score,snappy"`

	// TrustLabel is the human label for the trust score
	TrustLabel string `parquet:"trust_label,snappy"`

	// InsufficientData reports whether 2+ dimensions were unavailable
	InsufficientData bool `parquet:"insufficient_data,snappy"`

	// SecurityScore is the security dimension score (nullable)
	SecurityScore *float64 `parquet:"security_score,optional,snappy"`

	// MaintainerScore is the maintainer dimension score (nullable)
	MaintainerScore *float64 `parquet:"maintainer_score,optional,snappy"`

	// ActivityScore is the activity dimension score (nullable)
	ActivityScore *float64 `parquet:"activity_score,optional,snappy"`

	// PopularityScore is the popularity dimension score (nullable)
	PopularityScore *float64 `parquet:"popularity_score,optional,snappy"`

	// FundingScore is the funding dimension score (nullable)
	FundingScore *float64 `parquet:"funding_score,optional,snappy"`

	// LicenseScore is the license dimension score (nullable)
	LicenseScore *float64 `parquet:"license_score,optional,snappy"`

	// IsZombie reports whether the package looks abandoned
	IsZombie bool `parquet:"is_zombie,snappy"`

	// ZombieSeverity is the abandonment severity (none, warning, critical)
	ZombieSeverity string `parquet:"zombie_severity,snappy"`

	// IsTyposquat reports whether the name imitates a popular package
	IsTyposquat bool `parquet:"is_typosquat,snappy"`

	// SimilarNames lists imitated names, pipe separated (nullable)
	SimilarNames *string `parquet:"similar_names,optional,snappy"`

	// BlastFileCount is the number of project files referencing the package (nullable)
	BlastFileCount *int32 `parquet:"blast_file_count,optional,snappy"`

	// BlastPercentage is the share of project files referencing the package (nullable)
	BlastPercentage *float64 `parquet:"blast_percentage,optional,snappy"`
}

// WriteScanRunsParquet writes a slice of ScanRun structs to a Parquet file.
func WriteScanRunsParquet(data []ScanRun, outputPath string) error {
	file, err := os.Create(outputPath)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer func() { _ = file.Close() }()

	// The schema is automatically derived from the ScanRun struct tags
	writer := parquet.NewGenericWriter[ScanRun](file)
	defer func() { _ = writer.Close() }()

	if _, err := writer.Write(data); err != nil {
		return fmt.Errorf("failed to write data to parquet file: %w", err)
	}

	return nil
}

// WritePackageScoresParquet writes a slice of PackageScore structs to a Parquet file.
func WritePackageScoresParquet(data []PackageScore, outputPath string) error {
	file, err := os.Create(outputPath)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer func() { _ = file.Close() }()

	// The schema is automatically derived from the PackageScore struct tags
	writer := parquet.NewGenericWriter[PackageScore](file)
	defer func() { _ = writer.Close() }()

	if _, err := writer.Write(data); err != nil {
		return fmt.Errorf("failed to write data to parquet file: %w", err)
	}

	return nil
}

// ConvertScanRuns converts schema.ScanRun records for Parquet export.
func ConvertScanRuns(runs []schema.ScanRun) []ScanRun {
	result := make([]ScanRun, len(runs))
	for i, run := range runs {
		converted := ScanRun{
			ScanID:         run.ScanID,
			StartTime:      run.StartTime,
			TotalPackages:  int32(run.TotalPackages),
			AggregateScore: run.AggregateScore,
		}
		if !run.EndTime.IsZero() {
			endTime := run.EndTime
			converted.EndTime = &endTime
		}
		result[i] = converted
	}
	return result
}

// ConvertPackageReports converts schema.PackageReport records for Parquet export.
func ConvertPackageReports(reports []schema.PackageReport) []PackageScore {
	result := make([]PackageScore, len(reports))
	for i, report := range reports {
		score := PackageScore{
			PackageName:      report.Name,
			PackageVersion:   report.Version,
			IsDirect:         report.IsDirect,
			TrustScore:       report.Trust.TrustScore,
			TrustLabel:       contract.GetPlainLabel(report.Trust.TrustScore),
			InsufficientData: report.Trust.InsufficientData,
			SecurityScore:    report.Trust.Metrics.Security,
			MaintainerScore:  report.Trust.Metrics.Maintainer,
			ActivityScore:    report.Trust.Metrics.Activity,
			PopularityScore:  report.Trust.Metrics.Popularity,
			FundingScore:     report.Trust.Metrics.Funding,
			LicenseScore:     report.Trust.Metrics.License,
			IsZombie:         report.Zombie.IsZombie,
			ZombieSeverity:   string(report.Zombie.Severity),
			IsTyposquat:      report.Typosquat.IsRisky,
		}
		if len(report.Typosquat.SimilarNames) > 0 {
			names := strings.Join(report.Typosquat.SimilarNames, "|")
			score.SimilarNames = &names
		}
		if report.Blast != nil {
			count := int32(report.Blast.AffectedFileCount)
			pct := report.Blast.Percentage
			score.BlastFileCount = &count
			score.BlastPercentage = &pct
		}
		result[i] = score
	}
	return result
}
