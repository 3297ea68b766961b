package outwriter

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/huangsam/trustspot/internal/contract"
	"github.com/huangsam/trustspot/internal/parquet"
	"github.com/huangsam/trustspot/schema"

	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"
)

// PrintProjectReport outputs a project scan report, dispatching on the output format.
func PrintProjectReport(project *schema.ProjectReport, cfg *contract.Config) error {
	fmtFloat, _ := createFormatters(cfg.Precision)

	switch cfg.Output {
	case schema.JSONOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeJSONProjectReport(w, project)
		}, "Wrote JSON")
	case schema.CSVOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeCSVWithHeader(w, packageCSVHeader(), func(csvWriter *csv.Writer) error {
				for i, report := range project.Reports {
					if err := writeCSVPackageRow(csvWriter, i+1, report, fmtFloat); err != nil {
						return err
					}
				}
				return nil
			})
		}, "Wrote CSV")
	case schema.ParquetOut:
		if cfg.OutputFile == "" {
			return fmt.Errorf("parquet output requires --output-file")
		}
		return parquet.WritePackageScoresParquet(
			parquet.ConvertPackageReports(project.Reports), cfg.OutputFile)
	default:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeProjectTable(w, project, cfg, fmtFloat)
		}, "Wrote table")
	}
}

// writeProjectTable generates and writes the human-readable project table.
func writeProjectTable(w io.Writer, project *schema.ProjectReport, cfg *contract.Config, fmtFloat func(float64) string) error {
	table := tablewriter.NewWriter(w)
	table.Header([]string{"Rank", "Package", "Version", "Direct", "Score", "Label", "Zombie", "Squat", "Blast"})
	table.Configure(func(tblCfg *tablewriter.Config) {
		tblCfg.Row.Alignment.Global = tw.AlignRight
	})

	nameWidth := getMaxTableNameWidth(cfg)
	var data [][]string
	belowThreshold := 0
	for i, report := range project.Reports {
		if report.Trust.TrustScore < cfg.MinTrust {
			belowThreshold++
		}

		label := contract.GetPlainLabel(report.Trust.TrustScore)
		if cfg.UseColors {
			label = contract.GetColorLabel(report.Trust.TrustScore)
		}

		blast := "-"
		if report.Blast != nil {
			blast = fmt.Sprintf("%s%%", fmtFloat(report.Blast.Percentage))
		}

		zombie := string(schema.ZombieNone)
		if report.Zombie.IsZombie {
			zombie = string(report.Zombie.Severity)
		}

		data = append(data, []string{
			strconv.Itoa(i + 1),
			truncateName(report.Name, nameWidth),
			report.Version,
			yesNo(report.IsDirect),
			fmtFloat(report.Trust.TrustScore),
			label,
			zombie,
			yesNo(report.Typosquat.IsRisky),
			blast,
		})
	}

	if err := table.Bulk(data); err != nil {
		return err
	}
	if err := table.Render(); err != nil {
		return err
	}

	if _, err := fmt.Fprintf(w, "Scanned %d packages in %s (aggregate score: %s, %d below %.0f)\n",
		len(project.Reports), project.ProjectDir, fmtFloat(project.AggregateScore),
		belowThreshold, cfg.MinTrust); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "Scan completed in %v with %d workers. Cache backend: %s\n",
		project.Duration, cfg.Workers, cfg.CacheBackend); err != nil {
		return err
	}
	return nil
}

// writeJSONProjectReport writes the project report in JSON format.
func writeJSONProjectReport(w io.Writer, project *schema.ProjectReport) error {
	type JSONProjectReport struct {
		AggregateLabel string `json:"aggregateLabel"`
		*schema.ProjectReport
	}
	return writeJSON(w, JSONProjectReport{
		AggregateLabel: contract.GetPlainLabel(project.AggregateScore),
		ProjectReport:  project,
	})
}

// PrintScanRuns outputs scan history entries, dispatching on the output format.
func PrintScanRuns(runs []schema.ScanRun, cfg *contract.Config) error {
	fmtFloat, _ := createFormatters(cfg.Precision)

	switch cfg.Output {
	case schema.JSONOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeJSON(w, runs)
		}, "Wrote JSON")
	case schema.CSVOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			header := []string{"scan_id", "start_time", "end_time", "total_packages", "aggregate_score"}
			return writeCSVWithHeader(w, header, func(csvWriter *csv.Writer) error {
				for _, run := range runs {
					rec := []string{
						strconv.FormatInt(run.ScanID, 10),
						run.StartTime.Format(contract.DateTimeFormat),
						run.EndTime.Format(contract.DateTimeFormat),
						strconv.Itoa(run.TotalPackages),
						fmtFloat(run.AggregateScore),
					}
					if err := csvWriter.Write(rec); err != nil {
						return err
					}
				}
				return nil
			})
		}, "Wrote CSV")
	case schema.ParquetOut:
		if cfg.OutputFile == "" {
			return fmt.Errorf("parquet output requires --output-file")
		}
		return parquet.WriteScanRunsParquet(parquet.ConvertScanRuns(runs), cfg.OutputFile)
	default:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeScansTable(w, runs, cfg, fmtFloat)
		}, "Wrote table")
	}
}

// writeScansTable generates and writes the human-readable scan history table.
func writeScansTable(w io.Writer, runs []schema.ScanRun, cfg *contract.Config, fmtFloat func(float64) string) error {
	table := tablewriter.NewWriter(w)
	table.Header([]string{"Scan", "Started", "Packages", "Aggregate", "Label"})
	table.Configure(func(tblCfg *tablewriter.Config) {
		tblCfg.Row.Alignment.Global = tw.AlignRight
	})

	var data [][]string
	for _, run := range runs {
		label := contract.GetPlainLabel(run.AggregateScore)
		if cfg.UseColors {
			label = contract.GetColorLabel(run.AggregateScore)
		}
		data = append(data, []string{
			strconv.FormatInt(run.ScanID, 10),
			run.StartTime.Format(contract.DateTimeFormat),
			strconv.Itoa(run.TotalPackages),
			fmtFloat(run.AggregateScore),
			label,
		})
	}

	if err := table.Bulk(data); err != nil {
		return err
	}
	if err := table.Render(); err != nil {
		return err
	}
	_, err := fmt.Fprintf(w, "Showing %d scan runs\n", len(runs))
	return err
}
