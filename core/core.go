// Package core implements the hotspot aggregation pipeline: path discovery,
// metric extraction, change-history mining, hierarchical rollup and ranking.
package core

import (
	"context"
	"time"

	"github.com/huangsam/debtspot/internal/contract"
	"github.com/huangsam/debtspot/internal/outwriter"
)

// ExecuteReport runs the full pipeline and prints ranked results.
// It serves as the main entry point for the 'report' command.
func ExecuteReport(ctx context.Context, cfg *contract.Config, client contract.GitClient, source contract.MetricSource, mgr contract.CacheManager) error {
	start := time.Now()

	rs, err := discoverPaths(cfg)
	if err != nil {
		return err
	}
	if err := extractMetrics(ctx, cfg, source, mgr, rs); err != nil {
		return err
	}
	if err := mineChanges(ctx, cfg, client, rs); err != nil {
		return err
	}
	aggregateTree(cfg, rs)

	ranked := rankRecords(buildHotspotRecords(rs), cfg.SortKey, cfg.KindFilter, cfg.ResultLimit)
	duration := time.Since(start)
	return outwriter.WriteHotspotResults(ranked, cfg, duration)
}
