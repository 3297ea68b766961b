package cmd

import (
	"fmt"

	"github.com/huangsam/trustspot/core"
	"github.com/huangsam/trustspot/internal/contract"
	"github.com/huangsam/trustspot/internal/outwriter"
	"github.com/spf13/cobra"
)

// scanCmd analyzes every dependency of a project.
var scanCmd = &cobra.Command{
	Use:   "scan [project-dir]",
	Short: "Scan every dependency of a project and rank them by trust",
	Long: `Read the project manifest and lockfile, analyze every dependency and
print a ranked report with trust scores, zombie flags, typosquat flags and
blast radius per package.

Direct dependencies count double in the aggregate project score since you
chose them; transitive ones came along for the ride.

Fails with a non-zero exit code when any package scores below --min-trust,
which makes the command usable as a CI gate.

Examples:
  # Scan the current directory
  trustspot scan

  # Scan another project and skip internal packages
  trustspot scan ../webapp --ignore "@corp/*"

  # Gate a CI pipeline on a stricter threshold
  trustspot scan --min-trust 60

  # Export the full report for analytics
  trustspot scan --output parquet --output-file scan.parquet`,
	Args:    cobra.MaximumNArgs(1),
	PreRunE: sharedSetupWrapper,
	RunE: func(_ *cobra.Command, _ []string) error {
		engine, err := core.NewEngine(cfg, storeManager)
		if err != nil {
			return fmt.Errorf("engine setup failed: %w", err)
		}

		project, err := engine.ScanProject(rootCtx)
		if err != nil {
			return fmt.Errorf("scan failed: %w", err)
		}

		writer := outwriter.NewOutWriter()
		if err := writer.WriteProject(project, cfg); err != nil {
			contract.LogFatal("Failed to write project report", err)
		}

		below := 0
		for _, report := range project.Reports {
			if report.Trust.TrustScore < cfg.MinTrust {
				below++
			}
		}
		if below > 0 {
			return fmt.Errorf("%d packages scored below threshold %.1f", below, cfg.MinTrust)
		}
		return nil
	},
}
