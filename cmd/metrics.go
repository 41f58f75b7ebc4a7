package cmd

import (
	"fmt"

	"github.com/huangsam/debtspot/internal/contract"
	"github.com/huangsam/debtspot/internal/outwriter"
	"github.com/huangsam/debtspot/schema"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// metricsSetup loads the minimal output configuration for the metrics command.
// No Git repository is required, so the full shared setup is skipped.
func metricsSetup(_ *cobra.Command, _ []string) error {
	if err := loadConfigFile(); err != nil {
		return err
	}

	cfg.Output = schema.OutputMode(viper.GetString("output"))
	if _, ok := schema.ValidOutputModes[cfg.Output]; !ok {
		return fmt.Errorf("invalid output format '%s'. must be table, csv, json, parquet", cfg.Output)
	}
	cfg.OutputFile = viper.GetString("output-file")
	return nil
}

// metricsCmd displays the formal definitions of all report columns.
var metricsCmd = &cobra.Command{
	Use:   "metrics",
	Short: "Display definitions and rollup rules for all report columns",
	Long: `Show the formal definitions of every report column, including how each
metric rolls up from files into directories.

No Git analysis is performed - this is purely informational.

Use this to:
- Understand what each column measures
- Explain the hotspot index to your team
- Document reporting methodology

Examples:
  # Show column definitions
  debtspot metrics

  # Export definitions as JSON
  debtspot metrics --output json`,
	PreRunE: metricsSetup,
	Run: func(_ *cobra.Command, _ []string) {
		if err := outwriter.PrintMetricsDefinitions(cfg); err != nil {
			contract.LogFatal("Cannot print metrics definitions", err)
		}
	},
}
