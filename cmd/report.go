package cmd

import (
	"github.com/huangsam/debtspot/core"
	"github.com/huangsam/debtspot/internal/analyzer"
	"github.com/huangsam/debtspot/internal/contract"
	"github.com/spf13/cobra"
)

// reportCmd performs the hotspot report over a directory tree.
var reportCmd = &cobra.Command{
	Use:   "report [dir]",
	Short: "Rank files and directories by hotspot index.",
	Long: `Scan a directory tree, compute static-analysis metrics per file, mine Git
history for change counts, and rank every path by its hotspot index.

The hotspot index divides how often a path changed by how maintainable it is,
so frequently-edited hard-to-maintain code rises to the top. Directory rows
roll up the metrics of every file beneath them, helping you:
- Find the files where refactoring pays off the most
- Spot directories that concentrate churn and complexity
- Track comment coverage and maintainability across the tree
- Export the full ranking for dashboards and further analysis

Examples:
  # Rank everything under the current directory
  debtspot report

  # Only files, top 20, recent history only
  debtspot report --kind file --limit 20 --since "6 months ago"

  # Scan Go and JavaScript sources in a subtree
  debtspot report ./services --ext .go,.js

  # Sum cyclomatic complexity into directories instead of taking the max
  debtspot report --cyclomatic-agg sum

  # Export findings to CSV for tracking
  debtspot report --output csv --output-file debt.csv`,
	Args:    cobra.MaximumNArgs(1),
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		client := contract.NewLocalGitClient()
		source := analyzer.NewTreeSitterSource()
		if err := core.ExecuteReport(rootCtx, cfg, client, source, cacheManager); err != nil {
			contract.LogFatal("Cannot run report", err)
		}
	},
}
