package contract

import (
	"context"
	"fmt"
	"os"
	"path"
	"path/filepath"
	"runtime"
	"strings"
	"time"

	"github.com/huangsam/debtspot/schema"
)

// Default values for configuration.
const (
	DefaultPrecision = 1
	MaxResultLimit   = 100000
)

// DefaultWorkers is the default number of concurrent workers to use.
var DefaultWorkers = runtime.GOMAXPROCS(0)

// DateTimeFormat is the default date time representation.
var DateTimeFormat = time.RFC3339

// DefaultExtensions are the file extensions scanned when --ext is not given.
var DefaultExtensions = ".py"

// DefaultExcludes are subtrees skipped in every scan unless overridden.
var DefaultExcludes = []string{
	".git", ".hg", ".svn",
	"__pycache__", ".venv", "venv",
	"node_modules", "dist", "build",
}

// Config holds the runtime configuration for a report run.
// This struct remains the "final, validated" config.
type Config struct {
	TargetDir string // Absolute path of the directory being scanned
	RepoRoot  string // Absolute path of the enclosing Git repository root
	TargetRel string // TargetDir relative to RepoRoot in slash form; "" when they coincide

	SinceTime  time.Time           // Zero means full history
	Excludes   []string            // Repo-root-relative slash keys of excluded subtrees
	Extensions map[string]struct{} // Lowercase extensions with leading dot

	SortKey       schema.SortKey
	KindFilter    schema.KindFilter
	ResultLimit   int // 0 = all
	Workers       int
	Precision     int
	Output        schema.OutputMode
	OutputFile    string
	Width         int // Terminal width override (0 = auto-detect)
	UseColors     bool
	CyclomaticAgg schema.CyclomaticAgg

	CacheBackend   schema.DatabaseBackend
	CacheDBConnect string // Please use env var as this is plaintext
}

// ConfigRawInput holds the raw inputs from all sources (flags, env, config file).
// Viper unmarshals into this struct.
type ConfigRawInput struct {
	// This is set manually from positional args, so no tag
	TargetDirStr string

	Sort           string `mapstructure:"sort"`
	Kind           string `mapstructure:"kind"`
	Limit          int    `mapstructure:"limit"`
	Since          string `mapstructure:"since"`
	Exclude        string `mapstructure:"exclude"`
	Ext            string `mapstructure:"ext"`
	Workers        int    `mapstructure:"workers"`
	Precision      int    `mapstructure:"precision"`
	Output         string `mapstructure:"output"`
	OutputFile     string `mapstructure:"output-file"`
	Width          int    `mapstructure:"width"`
	Color          string `mapstructure:"color"`
	CyclomaticAgg  string `mapstructure:"cyclomatic-agg"`
	CacheBackend   string `mapstructure:"cache-backend"`
	CacheDBConnect string `mapstructure:"cache-db-connect"`
}

// IsExcluded reports whether the repo-relative key falls inside an excluded subtree.
func (c *Config) IsExcluded(key string) bool {
	for _, ex := range c.Excludes {
		if key == ex || strings.HasPrefix(key, ex+"/") {
			return true
		}
	}
	return false
}

// HasExtension reports whether the path carries one of the configured extensions.
func (c *Config) HasExtension(p string) bool {
	_, ok := c.Extensions[strings.ToLower(filepath.Ext(p))]
	return ok
}

// Pathspec returns the git pathspec that scopes history mining to the target.
func (c *Config) Pathspec() string {
	if c.TargetRel == "" {
		return "."
	}
	return c.TargetRel
}

// ProcessAndValidate performs all complex parsing and validation on the raw inputs
// and updates the final Config struct.
func ProcessAndValidate(ctx context.Context, cfg *Config, client GitClient, input *ConfigRawInput) error {
	// All validation functions read from 'input' and populate 'cfg'.
	if err := validateSimpleInputs(cfg, input); err != nil {
		return err
	}
	if err := processSinceTime(cfg, input); err != nil {
		return err
	}
	if err := resolveRepoPaths(ctx, cfg, client, input); err != nil {
		return err
	}
	return nil
}

// ValidateDatabaseConnectionString validates the format of database connection strings
// for MySQL and PostgreSQL backends.
func ValidateDatabaseConnectionString(backend schema.DatabaseBackend, connStr string) error {
	switch backend {
	case schema.SQLiteBackend, schema.NoneBackend:
		return nil
	case schema.MySQLBackend:
		if connStr == "" {
			return fmt.Errorf("cache-db-connect is required when using %s backend", backend)
		}
		if !strings.Contains(connStr, "@tcp(") {
			return fmt.Errorf("MySQL connection string must contain '@tcp(' for host:port specification")
		}
		if !strings.Contains(connStr, "/") {
			return fmt.Errorf("MySQL connection string must contain '/' followed by database name")
		}
	case schema.PostgreSQLBackend:
		if connStr == "" {
			return fmt.Errorf("cache-db-connect is required when using %s backend", backend)
		}
		if !strings.Contains(connStr, "host=") {
			return fmt.Errorf("PostgreSQL connection string must contain 'host=' parameter")
		}
		if !strings.Contains(connStr, "dbname=") {
			return fmt.Errorf("PostgreSQL connection string must contain 'dbname=' parameter")
		}
	}
	return nil
}

// validateSimpleInputs processes and validates all non-path related fields.
func validateSimpleInputs(cfg *Config, input *ConfigRawInput) error {
	// --- 0. Transfer simple non-validated fields from input -> cfg ---
	cfg.OutputFile = input.OutputFile
	cfg.Width = input.Width

	colors, err := ParseBoolString(input.Color)
	if err != nil {
		return fmt.Errorf("invalid --color value: %w", err)
	}
	cfg.UseColors = colors

	// --- 1. ResultLimit Validation ---
	if input.Limit < 0 || input.Limit > MaxResultLimit {
		return fmt.Errorf("limit must be between 0 and %d (received %d)", MaxResultLimit, input.Limit)
	}
	cfg.ResultLimit = input.Limit

	// --- 2. Workers Validation ---
	if input.Workers <= 0 {
		return fmt.Errorf("workers must be greater than 0 (received %d)", input.Workers)
	}
	cfg.Workers = input.Workers

	// --- 3. Sort and Kind Validation ---
	cfg.SortKey = schema.SortKey(strings.ToLower(input.Sort))
	if _, ok := schema.ValidSortKeys[cfg.SortKey]; !ok {
		return fmt.Errorf("invalid sort key '%s'. must be path or one of the metric columns", input.Sort)
	}
	cfg.KindFilter = schema.KindFilter(strings.ToLower(input.Kind))
	if _, ok := schema.ValidKindFilters[cfg.KindFilter]; !ok {
		return fmt.Errorf("invalid kind '%s'. must be all, file, dir", input.Kind)
	}

	// --- 4. Precision and Output Validation ---
	if input.Precision < 1 || input.Precision > 2 {
		return fmt.Errorf("precision must be 1 or 2 (received %d)", input.Precision)
	}
	cfg.Precision = input.Precision

	cfg.Output = schema.OutputMode(strings.ToLower(input.Output))
	if _, ok := schema.ValidOutputModes[cfg.Output]; !ok {
		return fmt.Errorf("invalid output format '%s'. must be table, csv, json, parquet", cfg.Output)
	}

	// --- 5. Cyclomatic Aggregation Policy ---
	cfg.CyclomaticAgg = schema.CyclomaticAgg(strings.ToLower(input.CyclomaticAgg))
	if _, ok := schema.ValidCyclomaticAggs[cfg.CyclomaticAgg]; !ok {
		return fmt.Errorf("invalid cyclomatic-agg '%s'. must be max or sum", input.CyclomaticAgg)
	}

	// --- 6. Backend Validation ---
	cfg.CacheBackend = schema.DatabaseBackend(strings.ToLower(input.CacheBackend))
	if _, ok := schema.ValidDatabaseBackends[cfg.CacheBackend]; !ok {
		return fmt.Errorf("invalid cache backend '%s'. must be sqlite, mysql, postgresql, none", input.CacheBackend)
	}
	cfg.CacheDBConnect = input.CacheDBConnect
	if err := ValidateDatabaseConnectionString(cfg.CacheBackend, cfg.CacheDBConnect); err != nil {
		return err
	}

	// --- 7. Extensions Processing ---
	cfg.Extensions = make(map[string]struct{})
	extInput := input.Ext
	if strings.TrimSpace(extInput) == "" {
		extInput = DefaultExtensions
	}
	for ext := range strings.SplitSeq(extInput, ",") {
		ext = strings.ToLower(strings.TrimSpace(ext))
		if ext == "" {
			continue
		}
		if !strings.HasPrefix(ext, ".") {
			ext = "." + ext
		}
		cfg.Extensions[ext] = struct{}{}
	}

	return nil
}

// processSinceTime parses the optional history cutoff.
func processSinceTime(cfg *Config, input *ConfigRawInput) error {
	cfg.SinceTime = time.Time{}
	if input.Since == "" {
		return nil
	}

	if t, err := time.Parse(DateTimeFormat, input.Since); err == nil {
		cfg.SinceTime = t
		return nil
	}
	if t, err := time.Parse("2006-01-02", input.Since); err == nil {
		cfg.SinceTime = t
		return nil
	}
	t, err := ParseRelativeTime(input.Since, time.Now())
	if err != nil {
		return fmt.Errorf("invalid since date '%s'. Expected absolute ISO8601 or 'N [units] ago': %w", input.Since, err)
	}
	cfg.SinceTime = t
	return nil
}

// resolveRepoPaths resolves the target directory against the enclosing Git
// repository and rebases exclusions onto repo-root-relative keys.
func resolveRepoPaths(ctx context.Context, cfg *Config, client GitClient, input *ConfigRawInput) error {
	targetDir := input.TargetDirStr
	if targetDir == "" {
		targetDir = "."
	}
	absTarget, err := filepath.Abs(targetDir)
	if err != nil {
		return err
	}
	absTarget = filepath.Clean(absTarget)

	info, err := os.Stat(absTarget)
	if err != nil {
		return &IoError{Path: absTarget, Err: err}
	}
	if !info.IsDir() {
		return &IoError{Path: absTarget, Err: fmt.Errorf("not a directory")}
	}
	cfg.TargetDir = absTarget

	gitRoot, err := client.GetRepoRoot(ctx, absTarget)
	if err != nil {
		return &VcsError{Op: "rev-parse --show-toplevel", Err: err}
	}
	cfg.RepoRoot = gitRoot

	rel, err := NormalizeRepoPath(gitRoot, absTarget)
	if err != nil {
		return err
	}
	if rel == "." {
		rel = ""
	}
	cfg.TargetRel = rel

	// Exclusions are given relative to the target directory and rebased onto
	// repo-root-relative keys so they compare directly against record keys.
	cfg.Excludes = nil
	entries := DefaultExcludes
	if input.Exclude != "" {
		for part := range strings.SplitSeq(input.Exclude, ",") {
			if trimmed := strings.TrimSpace(part); trimmed != "" {
				entries = append(entries, trimmed)
			}
		}
	}
	for _, entry := range entries {
		cleaned := path.Clean(strings.ReplaceAll(entry, string(os.PathSeparator), "/"))
		cleaned = strings.TrimPrefix(cleaned, "./")
		if cleaned == "." || cleaned == "" {
			continue
		}
		if strings.HasPrefix(cleaned, "..") {
			return &PathError{Path: entry, Reason: "exclusion escapes the target directory"}
		}
		cfg.Excludes = append(cfg.Excludes, path.Join(cfg.TargetRel, cleaned))
	}

	return nil
}
