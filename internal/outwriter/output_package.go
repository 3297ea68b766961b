package outwriter

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"

	"github.com/huangsam/trustspot/internal/contract"
	"github.com/huangsam/trustspot/internal/parquet"
	"github.com/huangsam/trustspot/schema"

	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"
)

// PrintPackageReport outputs one package report, dispatching on the output format.
func PrintPackageReport(report schema.PackageReport, cfg *contract.Config) error {
	fmtFloat, _ := createFormatters(cfg.Precision)

	switch cfg.Output {
	case schema.JSONOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeJSONPackageReport(w, report)
		}, "Wrote JSON")
	case schema.CSVOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeCSVWithHeader(w, packageCSVHeader(), func(csvWriter *csv.Writer) error {
				return writeCSVPackageRow(csvWriter, 1, report, fmtFloat)
			})
		}, "Wrote CSV")
	case schema.ParquetOut:
		if cfg.OutputFile == "" {
			return fmt.Errorf("parquet output requires --output-file")
		}
		return parquet.WritePackageScoresParquet(
			parquet.ConvertPackageReports([]schema.PackageReport{report}), cfg.OutputFile)
	default:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writePackageText(w, report, cfg, fmtFloat)
		}, "Wrote report")
	}
}

// writePackageText renders the human-readable single package view: a summary
// block followed by a per-dimension breakdown table.
func writePackageText(w io.Writer, report schema.PackageReport, cfg *contract.Config, fmtFloat func(float64) string) error {
	version := report.Version
	if version == "" {
		version = "latest"
	}
	if _, err := fmt.Fprintf(w, "%s@%s\n", report.Name, version); err != nil {
		return err
	}

	label := contract.GetPlainLabel(report.Trust.TrustScore)
	if cfg.UseColors {
		label = contract.GetColorLabel(report.Trust.TrustScore)
	}
	if _, err := fmt.Fprintf(w, "Trust score: %s (%s)\n", fmtFloat(report.Trust.TrustScore), label); err != nil {
		return err
	}
	if report.Trust.InsufficientData {
		if _, err := fmt.Fprintf(w, "Insufficient data: %s unavailable\n",
			joinDimensions(report.Trust.UnavailableDimensions)); err != nil {
			return err
		}
	}
	if report.Zombie.IsZombie {
		if _, err := fmt.Fprintf(w, "Zombie (%s): %s\n", report.Zombie.Severity, report.Zombie.Reason); err != nil {
			return err
		}
	}
	if report.Typosquat.IsRisky {
		if _, err := fmt.Fprintf(w, "Possible typosquat of: %s\n",
			strings.Join(report.Typosquat.SimilarNames, ", ")); err != nil {
			return err
		}
	}
	if report.Blast != nil {
		if _, err := fmt.Fprintf(w, "Blast radius: %d files (%s%%)\n",
			report.Blast.AffectedFileCount, fmtFloat(report.Blast.Percentage)); err != nil {
			return err
		}
	}

	table := tablewriter.NewWriter(w)
	table.Header([]string{"Dimension", "Score", "Weight", "Status"})
	table.Configure(func(tblCfg *tablewriter.Config) {
		tblCfg.Row.Alignment.Global = tw.AlignRight
	})

	var data [][]string
	for _, dim := range schema.Dimensions {
		row := []string{string(dim)}
		if score := report.Trust.Metrics.ByDimension(dim); score != nil {
			row = append(row, fmtFloat(*score))
		} else {
			row = append(row, "-")
		}
		row = append(row, fmtFloat(cfg.Weights[dim]))
		row = append(row, string(report.Collected.BySource(dimensionSource(dim)).Status))
		data = append(data, row)
	}
	if err := table.Bulk(data); err != nil {
		return err
	}
	return table.Render()
}

// dimensionSource maps a scoring dimension to its primary signal source.
func dimensionSource(dim schema.Dimension) schema.Source {
	switch dim {
	case schema.SecurityDim:
		return schema.VulnsSource
	case schema.MaintainerDim:
		return schema.RegistrySource
	case schema.ActivityDim:
		return schema.RepoSource
	case schema.PopularityDim:
		return schema.PopularitySource
	case schema.FundingDim:
		return schema.FundingSource
	default:
		return schema.LicenseSource
	}
}

// joinDimensions renders a dimension list for the summary block.
func joinDimensions(dims []schema.Dimension) string {
	names := make([]string, len(dims))
	for i, dim := range dims {
		names[i] = string(dim)
	}
	return strings.Join(names, ", ")
}

// writeJSONPackageReport writes one package report in JSON format.
func writeJSONPackageReport(w io.Writer, report schema.PackageReport) error {
	type JSONPackageReport struct {
		Label string `json:"label"`
		schema.PackageReport
	}
	return writeJSON(w, JSONPackageReport{
		Label:         contract.GetPlainLabel(report.Trust.TrustScore),
		PackageReport: report,
	})
}

// packageCSVHeader is the shared CSV column set for package rows.
func packageCSVHeader() []string {
	return []string{
		"rank",
		"package",
		"version",
		"direct",
		"score",
		"label",
		"insufficient_data",
		"zombie",
		"zombie_severity",
		"typosquat",
		"similar_names",
		"blast_files",
		"blast_pct",
	}
}

// writeCSVPackageRow writes one package report as a CSV record.
func writeCSVPackageRow(w *csv.Writer, rank int, report schema.PackageReport, fmtFloat func(float64) string) error {
	blastFiles, blastPct := "", ""
	if report.Blast != nil {
		blastFiles = fmt.Sprintf("%d", report.Blast.AffectedFileCount)
		blastPct = fmtFloat(report.Blast.Percentage)
	}
	rec := []string{
		fmt.Sprintf("%d", rank),
		report.Name,
		report.Version,
		yesNo(report.IsDirect),
		fmtFloat(report.Trust.TrustScore),
		contract.GetPlainLabel(report.Trust.TrustScore),
		yesNo(report.Trust.InsufficientData),
		yesNo(report.Zombie.IsZombie),
		string(report.Zombie.Severity),
		yesNo(report.Typosquat.IsRisky),
		strings.Join(report.Typosquat.SimilarNames, "|"),
		blastFiles,
		blastPct,
	}
	return w.Write(rec)
}
