package cmd

import (
	"fmt"
	"strings"

	"github.com/huangsam/trustspot/core"
	"github.com/huangsam/trustspot/internal/contract"
	"github.com/huangsam/trustspot/internal/outwriter"
	"github.com/spf13/cobra"
)

// checkCmd analyzes a single package.
var checkCmd = &cobra.Command{
	Use:   "check <package[@version]>",
	Short: "Compute the trust score for a single package",
	Long: `Analyze one package and print its trust score, per-dimension breakdown,
abandonment status and typosquat risk.

The version is optional; without it the registry's latest dist-tag is used.
Scoped names keep their scope prefix, so '@scope/name@1.2.3' works as expected.

Examples:
  # Check the latest version
  trustspot check lodash

  # Check an exact version
  trustspot check lodash@4.17.21

  # Check a scoped package offline using cached signals
  trustspot check @babel/core --offline

  # Emit JSON for further processing
  trustspot check express --output json`,
	Args: cobra.ExactArgs(1),
	PreRunE: func(cmd *cobra.Command, _ []string) error {
		// The positional arg is a package spec, not a project dir.
		return sharedSetup(rootCtx, cmd, nil)
	},
	RunE: func(_ *cobra.Command, args []string) error {
		name, pkgVersion := splitPackageSpec(args[0])
		if name == "" {
			return fmt.Errorf("invalid package spec %q", args[0])
		}

		engine, err := core.NewEngine(cfg, storeManager)
		if err != nil {
			return fmt.Errorf("engine setup failed: %w", err)
		}

		report := engine.CheckPackage(rootCtx, name, pkgVersion)
		writer := outwriter.NewOutWriter()
		if err := writer.WritePackage(report, cfg); err != nil {
			contract.LogFatal("Failed to write package report", err)
		}

		if report.Trust.TrustScore < cfg.MinTrust {
			return fmt.Errorf("trust score %.1f is below threshold %.1f", report.Trust.TrustScore, cfg.MinTrust)
		}
		return nil
	},
}

// splitPackageSpec splits 'name@version' into its parts. The scope '@' of
// scoped packages is not a separator, so the split happens at the last '@'
// past the first character.
func splitPackageSpec(spec string) (string, string) {
	if idx := strings.LastIndex(spec, "@"); idx > 0 {
		return spec[:idx], spec[idx+1:]
	}
	return spec, ""
}
