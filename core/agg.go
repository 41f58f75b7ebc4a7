package core

import (
	"math"
	"path"

	"github.com/huangsam/debtspot/internal/contract"
	"github.com/huangsam/debtspot/schema"
)

// dirTotals accumulates file metrics for one directory.
type dirTotals struct {
	halstead      float64
	cyclomatic    float64
	loc           float64
	commentMass   float64 // sum of pct * loc over files with both set
	commentWeight float64 // sum of loc over those files
	miMin         float64
	changes       int
}

func newDirTotals() *dirTotals {
	return &dirTotals{
		halstead:   math.NaN(),
		cyclomatic: math.NaN(),
		loc:        math.NaN(),
		miMin:      math.NaN(),
	}
}

// aggregateTree rolls file metrics up into every discovered ancestor
// directory. Each file contributes to each ancestor exactly once; the walk
// root has no record, so the ancestor chain stops there. Unset file metrics
// are skipped rather than poisoning the directory totals.
func aggregateTree(cfg *contract.Config, rs *recordSet) {
	totals := make(map[string]*dirTotals)

	for key, rec := range rs.records {
		if rec.Kind != schema.FileKind {
			continue
		}
		for dir := path.Dir(key); dir != "." && dir != "/"; dir = path.Dir(dir) {
			if _, ok := rs.records[dir]; !ok {
				break
			}
			t, ok := totals[dir]
			if !ok {
				t = newDirTotals()
				totals[dir] = t
			}
			foldFile(t, rec, cfg.CyclomaticAgg)
		}
	}

	for dir, t := range totals {
		finalize(rs.records[dir], t)
	}
}

func foldFile(t *dirTotals, rec *schema.Record, agg schema.CyclomaticAgg) {
	addInto(&t.halstead, rec.HalsteadVolume)
	addInto(&t.loc, rec.LinesOfCode)
	minInto(&t.miMin, rec.MaintainabilityIndex)
	t.changes += rec.ChangesCount

	if agg == schema.CyclomaticSum {
		addInto(&t.cyclomatic, rec.CyclomaticComplexity)
	} else {
		maxInto(&t.cyclomatic, rec.CyclomaticComplexity)
	}

	if !schema.Unset(rec.CommentsPercentage) && !schema.Unset(rec.LinesOfCode) {
		t.commentMass += rec.CommentsPercentage * rec.LinesOfCode
		t.commentWeight += rec.LinesOfCode
	}
}

// finalize writes the accumulated totals into a directory record.
// The comments percentage is the LOC-weighted average; it stays unset when
// no contributing file carried any lines.
func finalize(rec *schema.Record, t *dirTotals) {
	rec.HalsteadVolume = t.halstead
	rec.CyclomaticComplexity = t.cyclomatic
	rec.LinesOfCode = t.loc
	rec.MaintainabilityIndex = t.miMin
	rec.ChangesCount = t.changes

	if t.commentWeight > 0 {
		rec.CommentsPercentage = t.commentMass / t.commentWeight
	}
}

func addInto(acc *float64, v float64) {
	if schema.Unset(v) {
		return
	}
	if schema.Unset(*acc) {
		*acc = v
		return
	}
	*acc += v
}

func minInto(acc *float64, v float64) {
	if schema.Unset(v) {
		return
	}
	if schema.Unset(*acc) || v < *acc {
		*acc = v
	}
}

func maxInto(acc *float64, v float64) {
	if schema.Unset(v) {
		return
	}
	if schema.Unset(*acc) || v > *acc {
		*acc = v
	}
}
