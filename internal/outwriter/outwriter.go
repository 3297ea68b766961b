// Package outwriter has output and writer logic.
package outwriter

import (
	"github.com/huangsam/trustspot/internal/contract"
	"github.com/huangsam/trustspot/schema"
)

// OutWriter provides a unified interface for all output operations.
// It encapsulates the various output formats and provides a clean API for the core logic.
type OutWriter struct{}

// NewOutWriter creates a new instance of the output writer.
func NewOutWriter() *OutWriter {
	return &OutWriter{}
}

// WritePackage prints a single package report using the configured output format.
func (ow *OutWriter) WritePackage(report schema.PackageReport, cfg *contract.Config) error {
	return PrintPackageReport(report, cfg)
}

// WriteProject prints a project scan report using the configured output format.
func (ow *OutWriter) WriteProject(project *schema.ProjectReport, cfg *contract.Config) error {
	return PrintProjectReport(project, cfg)
}

// WriteScans prints recent scan history entries using the configured output format.
func (ow *OutWriter) WriteScans(runs []schema.ScanRun, cfg *contract.Config) error {
	return PrintScanRuns(runs, cfg)
}
