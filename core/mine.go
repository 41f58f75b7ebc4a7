package core

import (
	"context"
	"strings"

	"github.com/huangsam/debtspot/internal/contract"
	"github.com/huangsam/debtspot/schema"
)

// mineChanges counts how many commits touched each discovered file.
// Git reports paths relative to the repository root with forward slashes,
// which matches the record keys directly. Paths that no longer exist,
// were excluded, or fall outside the extension filter are skipped.
func mineChanges(ctx context.Context, cfg *contract.Config, client contract.GitClient, rs *recordSet) error {
	out, err := client.GetChangeLog(ctx, cfg.RepoRoot, cfg.Pathspec(), cfg.SinceTime)
	if err != nil {
		return &contract.VcsError{Op: "log --name-only", Err: err}
	}

	for line := range strings.SplitSeq(string(out), "\n") {
		key := strings.TrimSpace(line)
		if key == "" {
			continue
		}
		rec, ok := rs.records[key]
		if !ok || rec.Kind != schema.FileKind {
			continue
		}
		rec.ChangesCount++
	}
	return nil
}
