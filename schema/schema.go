// Package schema has configs, models and shared constants for all parts of debtspot.
package schema

import "time"

// Record holds the aggregated metrics for a single path in the scanned tree.
// Metric fields are NaN until a value is known; ChangesCount always starts at zero.
// For directory records every metric is the fold of the file records beneath it.
type Record struct {
	Path                 string   `json:"path"`
	Kind                 PathKind `json:"path_type"`
	HalsteadVolume       float64  `json:"halstead_volume"`
	CyclomaticComplexity float64  `json:"cyclomatic_complexity"`
	LinesOfCode          float64  `json:"loc"`
	CommentsPercentage   float64  `json:"comments_percentage"`
	MaintainabilityIndex float64  `json:"maintainability_index"`
	ChangesCount         int      `json:"changes_count"`
}

// HotspotRecord is a Record plus its derived hotspot index.
type HotspotRecord struct {
	Record
	HotspotIndex float64 `json:"hotspot_index"`
}

// MetricsBundle is the static-analysis output for a single source file.
// Both cyclomatic aggregations are carried so the policy can be applied later
// without re-parsing the file (bundles are cached by content hash).
type MetricsBundle struct {
	HalsteadVolume       float64 `json:"halstead_volume"`
	CyclomaticMax        float64 `json:"cyclomatic_max"`
	CyclomaticSum        float64 `json:"cyclomatic_sum"`
	LinesOfCode          float64 `json:"loc"`
	CommentsPercentage   float64 `json:"comments_percentage"`
	MaintainabilityIndex float64 `json:"maintainability_index"`
}

// CacheStatus holds status information about a cache store.
type CacheStatus struct {
	Backend         string
	Connected       bool
	TotalEntries    int
	LastEntryTime   time.Time
	OldestEntryTime time.Time
	TableSizeBytes  int64
}
