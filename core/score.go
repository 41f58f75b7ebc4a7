package core

import (
	"math"

	"github.com/huangsam/debtspot/schema"
)

// HotspotIndex combines churn and maintainability into a single score.
// A path with no computed maintainability has no score. A maintainability
// index of zero yields positive infinity, marking the path as unboundedly
// risky regardless of how often it changed.
func HotspotIndex(changes int, mi float64) float64 {
	if schema.Unset(mi) {
		return math.NaN()
	}
	if mi == 0 {
		return math.Inf(1)
	}
	return float64(changes) / (mi / 100)
}

// buildHotspotRecords scores every record in the set.
func buildHotspotRecords(rs *recordSet) []schema.HotspotRecord {
	out := make([]schema.HotspotRecord, 0, len(rs.records))
	for _, rec := range rs.records {
		out = append(out, schema.HotspotRecord{
			Record:       *rec,
			HotspotIndex: HotspotIndex(rec.ChangesCount, rec.MaintainabilityIndex),
		})
	}
	return out
}
