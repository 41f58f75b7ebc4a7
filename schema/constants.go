package schema

// Custom string types for type safety.
type (
	// PathKind distinguishes file records from directory records.
	PathKind string

	// SortKey identifies a column that results can be ordered by.
	SortKey string

	// KindFilter restricts results to a subset of path kinds.
	KindFilter string

	// OutputMode represents the format of the output.
	OutputMode string

	// CyclomaticAgg selects how per-function complexity folds into a file value.
	CyclomaticAgg string

	// DatabaseBackend represents the database backend for caching.
	DatabaseBackend string
)

// All path kinds supported.
const (
	FileKind PathKind = "file"
	DirKind  PathKind = "dir"
)

// All sort keys supported.
const (
	SortByPath            SortKey = "path"
	SortByHalstead        SortKey = "halstead_volume"
	SortByCyclomatic      SortKey = "cyclomatic_complexity"
	SortByLOC             SortKey = "loc"
	SortByComments        SortKey = "comments_percentage"
	SortByMaintainability SortKey = "maintainability_index"
	SortByChanges         SortKey = "changes_count"
	SortByHotspot         SortKey = "hotspot_index" // default
)

// All kind filters supported.
const (
	AllKinds  KindFilter = "all" // default
	FilesOnly KindFilter = "file"
	DirsOnly  KindFilter = "dir"
)

// All output modes supported.
const (
	TableOut   OutputMode = "table" // default
	CSVOut     OutputMode = "csv"
	JSONOut    OutputMode = "json"
	ParquetOut OutputMode = "parquet"
)

// All cyclomatic aggregation policies supported.
const (
	CyclomaticMax CyclomaticAgg = "max" // default
	CyclomaticSum CyclomaticAgg = "sum"
)

// All cache backends supported.
const (
	SQLiteBackend     DatabaseBackend = "sqlite" // default
	MySQLBackend      DatabaseBackend = "mysql"
	PostgreSQLBackend DatabaseBackend = "postgresql"
	NoneBackend       DatabaseBackend = "none"
)

// ValidSortKeys lists all valid sort keys.
var ValidSortKeys = map[SortKey]struct{}{
	SortByPath:            {},
	SortByHalstead:        {},
	SortByCyclomatic:      {},
	SortByLOC:             {},
	SortByComments:        {},
	SortByMaintainability: {},
	SortByChanges:         {},
	SortByHotspot:         {},
}

// ValidKindFilters lists all valid kind filters.
var ValidKindFilters = map[KindFilter]struct{}{
	AllKinds:  {},
	FilesOnly: {},
	DirsOnly:  {},
}

// ValidOutputModes lists all valid output modes.
var ValidOutputModes = map[OutputMode]struct{}{
	TableOut:   {},
	CSVOut:     {},
	JSONOut:    {},
	ParquetOut: {},
}

// ValidCyclomaticAggs lists all valid cyclomatic aggregation policies.
var ValidCyclomaticAggs = map[CyclomaticAgg]struct{}{
	CyclomaticMax: {},
	CyclomaticSum: {},
}

// ValidDatabaseBackends lists all valid cache backends.
var ValidDatabaseBackends = map[DatabaseBackend]struct{}{
	SQLiteBackend:     {},
	MySQLBackend:      {},
	PostgreSQLBackend: {},
	NoneBackend:       {},
}
