package core

import (
	"sort"

	"github.com/huangsam/debtspot/schema"
)

// sortValue extracts the metric a record is ranked by.
func sortValue(rec *schema.HotspotRecord, key schema.SortKey) float64 {
	switch key {
	case schema.SortByHalstead:
		return rec.HalsteadVolume
	case schema.SortByCyclomatic:
		return rec.CyclomaticComplexity
	case schema.SortByLOC:
		return rec.LinesOfCode
	case schema.SortByComments:
		return rec.CommentsPercentage
	case schema.SortByMaintainability:
		return rec.MaintainabilityIndex
	case schema.SortByChanges:
		return float64(rec.ChangesCount)
	default:
		return rec.HotspotIndex
	}
}

// rankRecords filters by kind, orders by the sort key and truncates to the
// limit. Numeric keys sort descending with unset values last; ties and the
// path key sort by path ascending. The sort is stable so equal records keep
// a deterministic order across runs.
func rankRecords(records []schema.HotspotRecord, sortKey schema.SortKey, kind schema.KindFilter, limit int) []schema.HotspotRecord {
	filtered := make([]schema.HotspotRecord, 0, len(records))
	for _, rec := range records {
		switch kind {
		case schema.FilesOnly:
			if rec.Kind != schema.FileKind {
				continue
			}
		case schema.DirsOnly:
			if rec.Kind != schema.DirKind {
				continue
			}
		}
		filtered = append(filtered, rec)
	}

	sort.SliceStable(filtered, func(i, j int) bool {
		if sortKey == schema.SortByPath {
			return filtered[i].Path < filtered[j].Path
		}
		a, b := sortValue(&filtered[i], sortKey), sortValue(&filtered[j], sortKey)
		switch {
		case schema.Unset(a) && schema.Unset(b):
			return filtered[i].Path < filtered[j].Path
		case schema.Unset(a):
			return false
		case schema.Unset(b):
			return true
		case a != b:
			return a > b
		default:
			return filtered[i].Path < filtered[j].Path
		}
	})

	if limit > 0 && len(filtered) > limit {
		filtered = filtered[:limit]
	}
	return filtered
}
