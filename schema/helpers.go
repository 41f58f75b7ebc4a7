package schema

import "math"

// NewRecord returns a record for the given path with every metric unset.
// NaN is the aggregation identity: it contributes nothing when folded.
func NewRecord(path string, kind PathKind) *Record {
	return &Record{
		Path:                 path,
		Kind:                 kind,
		HalsteadVolume:       math.NaN(),
		CyclomaticComplexity: math.NaN(),
		LinesOfCode:          math.NaN(),
		CommentsPercentage:   math.NaN(),
		MaintainabilityIndex: math.NaN(),
	}
}

// Unset reports whether a metric value has never been assigned.
func Unset(v float64) bool {
	return math.IsNaN(v)
}

// MetricJSONValue maps a metric to a JSON-encodable value.
// encoding/json cannot represent NaN or Inf, so unset metrics become null
// and an infinite hotspot index becomes the string "inf".
func MetricJSONValue(v float64) any {
	switch {
	case math.IsNaN(v):
		return nil
	case math.IsInf(v, 1):
		return "inf"
	case math.IsInf(v, -1):
		return "-inf"
	default:
		return v
	}
}

// CSVColumns is the column order for CSV export.
var CSVColumns = []string{
	"path",
	"path_type",
	"halstead_volume",
	"cyclomatic_complexity",
	"loc",
	"comments_percentage",
	"maintainability_index",
	"changes_count",
	"hotspot_index",
}
