package core

import (
	"math"
	"testing"

	"github.com/huangsam/debtspot/schema"
	"github.com/stretchr/testify/assert"
)

func hotspotRecord(path string, kind schema.PathKind, index float64) schema.HotspotRecord {
	rec := schema.NewRecord(path, kind)
	return schema.HotspotRecord{Record: *rec, HotspotIndex: index}
}

func TestRankRecordsDescending(t *testing.T) {
	records := []schema.HotspotRecord{
		hotspotRecord("low.py", schema.FileKind, 1),
		hotspotRecord("high.py", schema.FileKind, 9),
		hotspotRecord("mid.py", schema.FileKind, 5),
	}

	ranked := rankRecords(records, schema.SortByHotspot, schema.AllKinds, 0)
	assert.Equal(t, []string{"high.py", "mid.py", "low.py"}, paths(ranked))
}

func TestRankRecordsUnsetLast(t *testing.T) {
	records := []schema.HotspotRecord{
		hotspotRecord("nan2.py", schema.FileKind, math.NaN()),
		hotspotRecord("scored.py", schema.FileKind, 2),
		hotspotRecord("nan1.py", schema.FileKind, math.NaN()),
		hotspotRecord("infinite.py", schema.FileKind, math.Inf(1)),
	}

	ranked := rankRecords(records, schema.SortByHotspot, schema.AllKinds, 0)
	// Infinity outranks everything, unset values sink to the bottom in path order
	assert.Equal(t, []string{"infinite.py", "scored.py", "nan1.py", "nan2.py"}, paths(ranked))
}

func TestRankRecordsTieBreaksByPath(t *testing.T) {
	records := []schema.HotspotRecord{
		hotspotRecord("zeta.py", schema.FileKind, 5),
		hotspotRecord("alpha.py", schema.FileKind, 5),
	}

	ranked := rankRecords(records, schema.SortByHotspot, schema.AllKinds, 0)
	assert.Equal(t, []string{"alpha.py", "zeta.py"}, paths(ranked))
}

func TestRankRecordsByPath(t *testing.T) {
	records := []schema.HotspotRecord{
		hotspotRecord("b/file.py", schema.FileKind, 1),
		hotspotRecord("a/file.py", schema.FileKind, 9),
	}

	ranked := rankRecords(records, schema.SortByPath, schema.AllKinds, 0)
	assert.Equal(t, []string{"a/file.py", "b/file.py"}, paths(ranked))
}

func TestRankRecordsKindFilter(t *testing.T) {
	records := []schema.HotspotRecord{
		hotspotRecord("pkg", schema.DirKind, 9),
		hotspotRecord("pkg/a.py", schema.FileKind, 5),
		hotspotRecord("pkg/b.py", schema.FileKind, 1),
	}

	files := rankRecords(records, schema.SortByHotspot, schema.FilesOnly, 0)
	assert.Equal(t, []string{"pkg/a.py", "pkg/b.py"}, paths(files))

	dirs := rankRecords(records, schema.SortByHotspot, schema.DirsOnly, 0)
	assert.Equal(t, []string{"pkg"}, paths(dirs))
}

func TestRankRecordsLimit(t *testing.T) {
	records := []schema.HotspotRecord{
		hotspotRecord("a.py", schema.FileKind, 3),
		hotspotRecord("b.py", schema.FileKind, 2),
		hotspotRecord("c.py", schema.FileKind, 1),
	}

	ranked := rankRecords(records, schema.SortByHotspot, schema.AllKinds, 2)
	assert.Len(t, ranked, 2)

	// Zero means no limit
	all := rankRecords(records, schema.SortByHotspot, schema.AllKinds, 0)
	assert.Len(t, all, 3)
}

func TestRankRecordsAlternateSortKeys(t *testing.T) {
	a := hotspotRecord("a.py", schema.FileKind, 0)
	a.ChangesCount = 3
	a.LinesOfCode = 10
	b := hotspotRecord("b.py", schema.FileKind, 0)
	b.ChangesCount = 7
	b.LinesOfCode = 5

	byChanges := rankRecords([]schema.HotspotRecord{a, b}, schema.SortByChanges, schema.AllKinds, 0)
	assert.Equal(t, []string{"b.py", "a.py"}, paths(byChanges))

	byLOC := rankRecords([]schema.HotspotRecord{a, b}, schema.SortByLOC, schema.AllKinds, 0)
	assert.Equal(t, []string{"a.py", "b.py"}, paths(byLOC))
}

func paths(records []schema.HotspotRecord) []string {
	out := make([]string, len(records))
	for i, r := range records {
		out[i] = r.Path
	}
	return out
}
