// Package contract provides interfaces and shared utilities for internal architecture.
package contract

import (
	"context"
	"time"

	"github.com/huangsam/debtspot/schema"
)

// GitClient defines the necessary operations for change-history mining.
// This allows the core pipeline to be tested without needing a real git executable.
type GitClient interface {
	// Run executes a git command and returns its stdout.
	// Its use should be minimized in favor of the explicit methods below.
	Run(ctx context.Context, repoPath string, args ...string) ([]byte, error)

	// GetRepoRoot returns the absolute path to the root of the Git repository
	// containing the given context path.
	GetRepoRoot(ctx context.Context, contextPath string) (string, error)

	// GetChangeLog returns the raw name-only commit log for the given pathspec,
	// optionally bounded to commits after the since time.
	GetChangeLog(ctx context.Context, repoRoot, pathspec string, since time.Time) ([]byte, error)
}

// MetricSource computes static-analysis metrics for a single source file.
// Implementations must be safe for concurrent use by worker goroutines.
type MetricSource interface {
	// Analyze returns the metrics bundle for the file contents.
	// A file the source cannot parse yields a *ParseError.
	Analyze(ctx context.Context, path string, content []byte) (*schema.MetricsBundle, error)
}

// CacheManager defines the interface for managing cache stores.
// This allows the cache layer to be mocked for testing.
type CacheManager interface {
	GetMetricsStore() CacheStore
}

// CacheStore defines the interface for cache data storage.
// This allows mocking the store for testing.
type CacheStore interface {
	Get(key string) ([]byte, int, int64, error)
	Set(key string, value []byte, version int, timestamp int64) error
	GetStatus() (schema.CacheStatus, error)
	Close() error
}
