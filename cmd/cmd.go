// Package cmd defines the command-line interface for debtspot.
package cmd

import (
	"github.com/huangsam/debtspot/internal/contract"
	"github.com/huangsam/debtspot/schema"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func init() {
	// Call initConfig on Cobra's initialization
	cobra.OnInitialize(initConfig)

	// Add primary subcommands to the root command
	rootCmd.AddCommand(reportCmd)
	rootCmd.AddCommand(metricsCmd)
	rootCmd.AddCommand(cacheCmd)
	rootCmd.AddCommand(versionCmd)

	// Add the cache subcommands to the parent cache command
	cacheCmd.AddCommand(cacheClearCmd)
	cacheCmd.AddCommand(cacheStatusCmd)

	// Bind all persistent flags of rootCmd to Viper
	rootCmd.PersistentFlags().StringP("sort", "s", string(schema.SortByHotspot), "Sort key: path or one of the metric columns")
	rootCmd.PersistentFlags().StringP("kind", "k", string(schema.AllKinds), "Kind filter: all, file, dir")
	rootCmd.PersistentFlags().IntP("limit", "l", 0, "Number of results to display (0 = all)")
	rootCmd.PersistentFlags().String("since", "", "History cutoff in ISO8601 or time ago (e.g. '6 months ago')")
	rootCmd.PersistentFlags().String("exclude", "", "Comma-separated list of subtrees to ignore, relative to the target")
	rootCmd.PersistentFlags().String("ext", contract.DefaultExtensions, "Comma-separated list of file extensions to scan")
	rootCmd.PersistentFlags().Int("workers", contract.DefaultWorkers, "Number of concurrent workers")
	rootCmd.PersistentFlags().Int("precision", contract.DefaultPrecision, "Decimal precision for numeric columns")
	rootCmd.PersistentFlags().StringP("output", "o", string(schema.TableOut), "Output format: table or csv or json or parquet")
	rootCmd.PersistentFlags().String("output-file", "", "Optional path to write output to")
	rootCmd.PersistentFlags().Int("width", 0, "Terminal width override (0 = auto-detect)")
	rootCmd.PersistentFlags().String("cyclomatic-agg", string(schema.CyclomaticMax), "Directory cyclomatic rollup: max or sum")
	rootCmd.PersistentFlags().String("cache-backend", string(schema.SQLiteBackend), "Cache backend: sqlite or mysql or postgresql or none")
	rootCmd.PersistentFlags().String("cache-db-connect", "", "Database connection string for mysql/postgresql (e.g., user:pass@tcp(host:port)/dbname)")
	rootCmd.PersistentFlags().String("color", "yes", "Enable colored labels in output (yes/no/true/false/1/0)")
	rootCmd.PersistentFlags().String("config", "", "Path to config file")
	if err := viper.BindPFlags(rootCmd.PersistentFlags()); err != nil {
		contract.LogFatal("Error binding root flags", err)
	}
}
