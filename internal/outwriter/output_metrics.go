package outwriter

import (
	"encoding/csv"
	"fmt"
	"io"

	"github.com/huangsam/debtspot/internal/contract"
	"github.com/huangsam/debtspot/schema"
)

// metricDefinition describes one report column and how it rolls up into
// directory records.
type metricDefinition struct {
	Column     string `json:"column"`
	Definition string `json:"definition"`
	DirRollup  string `json:"dir_rollup"`
}

// metricDefinitions lists every metric the report emits.
// This is the reference shown by the metrics command.
func metricDefinitions() []metricDefinition {
	return []metricDefinition{
		{
			Column:     "halstead_volume",
			Definition: "Halstead volume: token count times log2 of distinct token vocabulary",
			DirRollup:  "sum of files",
		},
		{
			Column:     "cyclomatic_complexity",
			Definition: "Decision points per function plus one; whole file when no functions",
			DirRollup:  "max of files, or sum with --cyclomatic-agg=sum",
		},
		{
			Column:     "loc",
			Definition: "Physical lines of code",
			DirRollup:  "sum of files",
		},
		{
			Column:     "comments_percentage",
			Definition: "Comment lines as a percentage of physical lines",
			DirRollup:  "LOC-weighted average of files",
		},
		{
			Column:     "maintainability_index",
			Definition: "Visual Studio maintainability index rescaled to 0..100",
			DirRollup:  "min of files (weakest link)",
		},
		{
			Column:     "changes_count",
			Definition: "Commits that touched the path, within the --since window",
			DirRollup:  "sum of file touches",
		},
		{
			Column:     "hotspot_index",
			Definition: "changes_count / (maintainability_index / 100); inf when MI is zero",
			DirRollup:  "derived from the rolled-up values",
		},
	}
}

// PrintMetricsDefinitions displays the formal definitions of all report columns.
// This is a static display that does not require Git analysis.
func PrintMetricsDefinitions(cfg *contract.Config) error {
	defs := metricDefinitions()

	switch cfg.Output {
	case schema.JSONOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeJSON(w, defs)
		}, "Wrote JSON")
	case schema.CSVOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			csvWriter := csv.NewWriter(w)
			defer csvWriter.Flush()
			return writeCSVMetrics(csvWriter, defs)
		}, "Wrote CSV")
	default:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeTextMetrics(w, defs)
		}, "Wrote text")
	}
}

// writeCSVMetrics writes the metric definitions in CSV format.
func writeCSVMetrics(w *csv.Writer, defs []metricDefinition) error {
	header := []string{"column", "definition", "dir_rollup"}
	if err := w.Write(header); err != nil {
		return fmt.Errorf("failed to write CSV header: %w", err)
	}
	for _, def := range defs {
		record := []string{def.Column, def.Definition, def.DirRollup}
		if err := w.Write(record); err != nil {
			return fmt.Errorf("failed to write CSV record: %w", err)
		}
	}
	return nil
}

// writeTextMetrics writes the metric definitions in human-readable form.
func writeTextMetrics(w io.Writer, defs []metricDefinition) error {
	if _, err := fmt.Fprintln(w, "Report Columns"); err != nil {
		return err
	}
	if _, err := fmt.Fprintln(w, "hotspot_index = changes_count / (maintainability_index / 100)"); err != nil {
		return err
	}
	for _, def := range defs {
		if _, err := fmt.Fprintf(w, "\n%s\n  %s\n  Directory rollup: %s\n", def.Column, def.Definition, def.DirRollup); err != nil {
			return err
		}
	}
	return nil
}
