package outwriter

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/huangsam/debtspot/internal/contract"
	"github.com/huangsam/debtspot/internal/parquet"
	"github.com/huangsam/debtspot/schema"

	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"
)

// WriteHotspotResults outputs the ranked records, dispatching based on the output format configured.
func WriteHotspotResults(records []schema.HotspotRecord, cfg *contract.Config, duration time.Duration) error {
	// Create formatters using helper
	fmtFloat, _ := createFormatters(cfg.Precision)

	// Dispatcher: Handle different output formats
	switch cfg.Output {
	case schema.JSONOut:
		if err := writeHotspotJSONResults(records, cfg); err != nil {
			return fmt.Errorf("error writing JSON output: %w", err)
		}
	case schema.CSVOut:
		if err := writeHotspotCSVResults(records, cfg, fmtFloat); err != nil {
			return fmt.Errorf("error writing CSV output: %w", err)
		}
	case schema.ParquetOut:
		// Parquet is a binary format, so stdout is not an option
		if cfg.OutputFile == "" {
			return errors.New("--output-file is required for parquet output")
		}
		rows := parquet.ConvertHotspotRecords(records)
		if err := parquet.WriteHotspotRecordsParquet(rows, cfg.OutputFile); err != nil {
			return fmt.Errorf("error writing parquet output: %w", err)
		}
		fmt.Printf("💾 Wrote %d records to %s\n", len(rows), cfg.OutputFile)
	default:
		// Default to human-readable table
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeHotspotTable(records, cfg, fmtFloat, duration, w)
		}, "Wrote table")
	}
	return nil
}

// writeHotspotJSONResults handles opening the file and calling the JSON writer.
func writeHotspotJSONResults(records []schema.HotspotRecord, cfg *contract.Config) error {
	return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
		return writeJSONResultsForHotspots(w, records)
	}, "Wrote JSON")
}

// writeHotspotCSVResults handles opening the file and calling the CSV writer.
func writeHotspotCSVResults(records []schema.HotspotRecord, cfg *contract.Config, fmtFloat func(float64) string) error {
	return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
		csvWriter := csv.NewWriter(w)
		defer csvWriter.Flush()
		return writeCSVResultsForHotspots(csvWriter, records, fmtFloat)
	}, "Wrote CSV")
}

// writeHotspotTable generates and writes the human-readable table.
func writeHotspotTable(records []schema.HotspotRecord, cfg *contract.Config, fmtFloat func(float64) string, duration time.Duration, writer io.Writer) error {
	table := tablewriter.NewWriter(writer)

	// 1. Define Headers
	headers := []string{"Rank", "Path", "Kind", "Halstead", "Cyclo", "LOC", "Comments%", "MI", "Changes", "Hotspot", "Label"}
	table.Header(headers)

	// 2. Configure Separators/Borders to match a minimal look
	table.Configure(func(cfg *tablewriter.Config) {
		cfg.Row.Alignment.Global = tw.AlignRight
	})

	// 3. Populate Rows
	maxPathWidth := getMaxTablePathWidth(cfg)
	label := contract.GetPlainLabel
	if cfg.UseColors {
		label = contract.GetColorLabel
	}
	var data [][]string
	for i, r := range records {
		row := []string{
			strconv.Itoa(i + 1), // Rank
			contract.TruncatePath(r.Path, maxPathWidth),  // Path
			string(r.Kind),                               // Kind
			formatMetric(r.HalsteadVolume, fmtFloat),     // Halstead
			formatMetric(r.CyclomaticComplexity, fmtFloat), // Cyclo
			formatMetric(r.LinesOfCode, fmtFloat),          // LOC
			formatMetric(r.CommentsPercentage, fmtFloat),   // Comments%
			formatMetric(r.MaintainabilityIndex, fmtFloat), // MI
			strconv.Itoa(r.ChangesCount),                   // Changes
			formatMetric(r.HotspotIndex, fmtFloat), // Hotspot
			label(r.MaintainabilityIndex),          // Label
		}
		data = append(data, row)
	}

	// 4. Render the table
	if err := table.Bulk(data); err != nil {
		return err
	}
	if err := table.Render(); err != nil {
		return err
	}

	// Compute summary stats
	totalChanges := 0
	numFiles := 0
	for _, r := range records {
		if r.Kind == schema.FileKind {
			totalChanges += r.ChangesCount
			numFiles++
		}
	}
	if _, err := fmt.Fprintf(writer, "Showing %d paths, %d files (total changes: %d)\n", len(records), numFiles, totalChanges); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(writer, "Analysis completed in %v with %d workers. Cache backend: %s\n", duration, cfg.Workers, cfg.CacheBackend); err != nil {
		return err
	}
	return nil
}

// writeCSVResultsForHotspots writes the ranked records in CSV format.
func writeCSVResultsForHotspots(w *csv.Writer, records []schema.HotspotRecord, fmtFloat func(float64) string) error {
	header := append([]string{"rank"}, schema.CSVColumns...)
	header = append(header, "label")
	if err := w.Write(header); err != nil {
		return err
	}
	for i, r := range records {
		rec := []string{
			strconv.Itoa(i + 1),
			r.Path,
			string(r.Kind),
			formatMetric(r.HalsteadVolume, fmtFloat),
			formatMetric(r.CyclomaticComplexity, fmtFloat),
			formatMetric(r.LinesOfCode, fmtFloat),
			formatMetric(r.CommentsPercentage, fmtFloat),
			formatMetric(r.MaintainabilityIndex, fmtFloat),
			strconv.Itoa(r.ChangesCount),
			formatMetric(r.HotspotIndex, fmtFloat),
			contract.GetPlainLabel(r.MaintainabilityIndex),
		}
		if err := w.Write(rec); err != nil {
			return err
		}
	}
	return nil
}

// writeJSONResultsForHotspots writes the ranked records in JSON format.
// Metric fields go through MetricJSONValue because encoding/json cannot
// encode NaN or infinity.
func writeJSONResultsForHotspots(w io.Writer, records []schema.HotspotRecord) error {
	type JSONHotspotRecord struct {
		Rank                 int             `json:"rank"`
		Path                 string          `json:"path"`
		Kind                 schema.PathKind `json:"path_type"`
		HalsteadVolume       any             `json:"halstead_volume"`
		CyclomaticComplexity any             `json:"cyclomatic_complexity"`
		LinesOfCode          any             `json:"loc"`
		CommentsPercentage   any             `json:"comments_percentage"`
		MaintainabilityIndex any             `json:"maintainability_index"`
		ChangesCount         int             `json:"changes_count"`
		HotspotIndex         any             `json:"hotspot_index"`
		Label                string          `json:"label"`
	}

	output := make([]JSONHotspotRecord, len(records))
	for i, r := range records {
		output[i] = JSONHotspotRecord{
			Rank:                 i + 1,
			Path:                 r.Path,
			Kind:                 r.Kind,
			HalsteadVolume:       schema.MetricJSONValue(r.HalsteadVolume),
			CyclomaticComplexity: schema.MetricJSONValue(r.CyclomaticComplexity),
			LinesOfCode:          schema.MetricJSONValue(r.LinesOfCode),
			CommentsPercentage:   schema.MetricJSONValue(r.CommentsPercentage),
			MaintainabilityIndex: schema.MetricJSONValue(r.MaintainabilityIndex),
			ChangesCount:         r.ChangesCount,
			HotspotIndex:         schema.MetricJSONValue(r.HotspotIndex),
			Label:                contract.GetPlainLabel(r.MaintainabilityIndex),
		}
	}

	return writeJSON(w, output)
}
