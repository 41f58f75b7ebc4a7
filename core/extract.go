package core

import (
	"context"
	"crypto/sha256"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"sync"
	"time"

	"github.com/huangsam/debtspot/internal/contract"
	"github.com/huangsam/debtspot/schema"
)

// metricsCacheVersion invalidates cached bundles when the metric
// definitions change.
const metricsCacheVersion = 1

type extractResult struct {
	key string
	err error
}

// extractMetrics computes metrics for every file record using a worker pool.
// Files that fail to parse are warned about and left unset; any other
// failure aborts the run.
func extractMetrics(ctx context.Context, cfg *contract.Config, source contract.MetricSource, mgr contract.CacheManager, rs *recordSet) error {
	fileKeys := rs.fileKeys()
	fileCh := make(chan string, len(fileKeys))
	resultCh := make(chan extractResult, len(fileKeys))

	var wg sync.WaitGroup
	for range cfg.Workers {
		wg.Go(func() {
			// Each key maps to a unique record, so workers never write
			// to the same record concurrently.
			for key := range fileCh {
				resultCh <- extractOne(ctx, cfg, source, mgr, rs, key)
			}
		})
	}

	for _, key := range fileKeys {
		fileCh <- key
	}
	close(fileCh)
	wg.Wait()
	close(resultCh)

	var firstErr error
	for result := range resultCh {
		if result.err == nil {
			continue
		}
		var parseErr *contract.ParseError
		if errors.As(result.err, &parseErr) {
			contract.LogWarn("skipping unparsable file", parseErr)
			continue
		}
		if firstErr == nil {
			firstErr = result.err
		}
	}
	return firstErr
}

func extractOne(ctx context.Context, cfg *contract.Config, source contract.MetricSource, mgr contract.CacheManager, rs *recordSet, key string) extractResult {
	content, err := os.ReadFile(rs.absPaths[key])
	if err != nil {
		return extractResult{key: key, err: &contract.IoError{Path: rs.absPaths[key], Err: err}}
	}

	bundle, err := analyzeWithCache(ctx, source, mgr, key, content)
	if err != nil {
		return extractResult{key: key, err: err}
	}

	applyBundle(rs.records[key], bundle, cfg.CyclomaticAgg)
	return extractResult{key: key}
}

// analyzeWithCache checks the metrics cache before analyzing. The key is a
// content hash, so cache hits survive file renames and cache entries never
// go stale when content changes.
func analyzeWithCache(ctx context.Context, source contract.MetricSource, mgr contract.CacheManager, key string, content []byte) (*schema.MetricsBundle, error) {
	store := mgr.GetMetricsStore()
	cacheKey := fmt.Sprintf("metrics:%x", sha256.Sum256(content))

	if store != nil {
		if raw, version, _, err := store.Get(cacheKey); err == nil && version == metricsCacheVersion {
			var bundle schema.MetricsBundle
			if json.Unmarshal(raw, &bundle) == nil {
				return &bundle, nil
			}
		}
	}

	bundle, err := source.Analyze(ctx, key, content)
	if err != nil {
		return nil, err
	}

	if store != nil {
		if raw, err := json.Marshal(bundle); err == nil {
			_ = store.Set(cacheKey, raw, metricsCacheVersion, time.Now().Unix())
		}
	}
	return bundle, nil
}

// applyBundle fills a file record from a metrics bundle, selecting the
// configured cyclomatic aggregation.
func applyBundle(rec *schema.Record, bundle *schema.MetricsBundle, agg schema.CyclomaticAgg) {
	rec.HalsteadVolume = bundle.HalsteadVolume
	if agg == schema.CyclomaticSum {
		rec.CyclomaticComplexity = bundle.CyclomaticSum
	} else {
		rec.CyclomaticComplexity = bundle.CyclomaticMax
	}
	rec.LinesOfCode = bundle.LinesOfCode
	rec.CommentsPercentage = bundle.CommentsPercentage
	rec.MaintainabilityIndex = bundle.MaintainabilityIndex
}
