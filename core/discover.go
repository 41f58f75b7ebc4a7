package core

import (
	"os"
	"path/filepath"

	"github.com/huangsam/debtspot/internal/contract"
	"github.com/huangsam/debtspot/schema"
)

// recordSet holds the working state of a report run: one record per
// discovered path, keyed by its repo-root-relative slash path, plus the
// absolute filesystem path for each file record.
type recordSet struct {
	records  map[string]*schema.Record
	absPaths map[string]string
}

func newRecordSet() *recordSet {
	return &recordSet{
		records:  make(map[string]*schema.Record),
		absPaths: make(map[string]string),
	}
}

// fileKeys returns the keys of all file records.
func (rs *recordSet) fileKeys() []string {
	keys := make([]string, 0, len(rs.records))
	for key, rec := range rs.records {
		if rec.Kind == schema.FileKind {
			keys = append(keys, key)
		}
	}
	return keys
}

// discoverPaths walks the target directory and builds the initial record set.
// Directories get a record of their own so that metrics can later roll up
// into them; the walk root itself does not. Excluded subtrees are pruned
// and files are kept only when their extension is configured.
func discoverPaths(cfg *contract.Config) (*recordSet, error) {
	rs := newRecordSet()

	toVisit := []string{cfg.TargetDir}
	for len(toVisit) > 0 {
		dir := toVisit[len(toVisit)-1]
		toVisit = toVisit[:len(toVisit)-1]

		entries, err := os.ReadDir(dir)
		if err != nil {
			return nil, &contract.IoError{Path: dir, Err: err}
		}
		for _, entry := range entries {
			abs := filepath.Join(dir, entry.Name())
			key, err := contract.NormalizeRepoPath(cfg.RepoRoot, abs)
			if err != nil {
				return nil, err
			}
			if cfg.IsExcluded(key) {
				continue
			}
			switch {
			case entry.IsDir():
				rs.records[key] = schema.NewRecord(key, schema.DirKind)
				toVisit = append(toVisit, abs)
			case entry.Type().IsRegular() && cfg.HasExtension(entry.Name()):
				rs.records[key] = schema.NewRecord(key, schema.FileKind)
				rs.absPaths[key] = abs
			}
		}
	}
	return rs, nil
}
