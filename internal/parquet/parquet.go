// Package parquet provides data structures and functions for exporting
// hotspot report data to Parquet files using github.com/parquet-go/parquet-go.
package parquet

import (
	"fmt"
	"math"
	"os"

	"github.com/huangsam/debtspot/internal/contract"
	"github.com/huangsam/debtspot/schema"
	"github.com/parquet-go/parquet-go"
)

// HotspotRow represents one ranked path in a report export.
// Metric fields are pointers because Parquet has no NaN-friendly encoding;
// values that were never computed export as nulls.
type HotspotRow struct {
	// Rank is the position of the path in the ranked report
	Rank int32 `parquet:"rank,snappy"`

	// Path is the repo-root-relative path of the file or directory
	Path string `parquet:"path,snappy"`

	// PathType is "file" or "dir"
	PathType string `parquet:"path_type,snappy"`

	// HalsteadVolume is the Halstead volume metric (nullable)
	HalsteadVolume *float64 `parquet:"halstead_volume,optional,snappy"`

	// CyclomaticComplexity is the aggregated cyclomatic complexity (nullable)
	CyclomaticComplexity *float64 `parquet:"cyclomatic_complexity,optional,snappy"`

	// LinesOfCode is the physical line count (nullable)
	LinesOfCode *float64 `parquet:"loc,optional,snappy"`

	// CommentsPercentage is the comment line percentage (nullable)
	CommentsPercentage *float64 `parquet:"comments_percentage,optional,snappy"`

	// MaintainabilityIndex is the 0..100 maintainability index (nullable)
	MaintainabilityIndex *float64 `parquet:"maintainability_index,optional,snappy"`

	// ChangesCount is the number of commits that touched the path
	ChangesCount int32 `parquet:"changes_count,snappy"`

	// HotspotIndex is the combined churn/maintainability score (nullable,
	// null also covers the infinite zero-MI case)
	HotspotIndex *float64 `parquet:"hotspot_index,optional,snappy"`

	// Label is the maintainability band for the path
	Label string `parquet:"label,snappy"`
}

// WriteHotspotRecordsParquet writes a slice of HotspotRow structs to a Parquet file.
func WriteHotspotRecordsParquet(data []HotspotRow, outputPath string) error {
	// Create the output file
	file, err := os.Create(outputPath)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer func() { _ = file.Close() }()

	// Create a Parquet writer using struct schema inference
	// The schema is automatically derived from the HotspotRow struct tags
	writer := parquet.NewGenericWriter[HotspotRow](file)
	defer func() { _ = writer.Close() }()

	// Write all records to the file
	// The Write method accepts a variadic slice
	if _, err := writer.Write(data); err != nil {
		return fmt.Errorf("failed to write data to parquet file: %w", err)
	}

	return nil
}

// ConvertHotspotRecords converts ranked records to their Parquet representation.
func ConvertHotspotRecords(records []schema.HotspotRecord) []HotspotRow {
	rows := make([]HotspotRow, len(records))
	for i, r := range records {
		rows[i] = HotspotRow{
			Rank:                 int32(i + 1),
			Path:                 r.Path,
			PathType:             string(r.Kind),
			HalsteadVolume:       metricPtr(r.HalsteadVolume),
			CyclomaticComplexity: metricPtr(r.CyclomaticComplexity),
			LinesOfCode:          metricPtr(r.LinesOfCode),
			CommentsPercentage:   metricPtr(r.CommentsPercentage),
			MaintainabilityIndex: metricPtr(r.MaintainabilityIndex),
			ChangesCount:         int32(r.ChangesCount),
			HotspotIndex:         metricPtr(r.HotspotIndex),
			Label:                contract.GetPlainLabel(r.MaintainabilityIndex),
		}
	}
	return rows
}

// metricPtr maps unset and infinite values to null.
func metricPtr(v float64) *float64 {
	if schema.Unset(v) || math.IsInf(v, 0) {
		return nil
	}
	return &v
}
