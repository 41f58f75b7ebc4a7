//go:build basic

package integration

import (
	"encoding/csv"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// scaffoldRepo creates a small git repository with known history:
// a.py committed once, sub/b.py committed twice.
func scaffoldRepo(t *testing.T) string {
	t.Helper()
	if _, err := exec.LookPath("git"); err != nil {
		t.Skipf("git binary not found in PATH: %v", err)
	}

	dir := t.TempDir()
	gitRun(t, dir, "init")
	gitRun(t, dir, "config", "user.email", "test@example.com")
	gitRun(t, dir, "config", "user.name", "Test")

	writeFile(t, dir, "a.py", "import os\n\n\ndef helper():\n    return os.getcwd()\n")
	writeFile(t, dir, "sub/b.py", "def choose(a, b):\n    if a and b:\n        return a\n    return b\n")
	gitRun(t, dir, "add", ".")
	gitRun(t, dir, "commit", "-m", "initial")

	writeFile(t, dir, "sub/b.py", "def choose(a, b):\n    # prefer a when both are set\n    if a and b:\n        return a\n    return b\n")
	gitRun(t, dir, "add", ".")
	gitRun(t, dir, "commit", "-m", "document choose")

	return dir
}

func gitRun(t *testing.T, dir string, args ...string) {
	t.Helper()
	cmd := exec.Command("git", args...)
	cmd.Dir = dir
	output, err := cmd.CombinedOutput()
	require.NoError(t, err, "git %v failed: %s", args, string(output))
}

func writeFile(t *testing.T, dir, rel, content string) {
	t.Helper()
	full := filepath.Join(dir, filepath.FromSlash(rel))
	require.NoError(t, os.MkdirAll(filepath.Dir(full), 0o755))
	require.NoError(t, os.WriteFile(full, []byte(content), 0o644))
}

func TestReportCSV(t *testing.T) {
	repo := scaffoldRepo(t)
	outputFile := filepath.Join(t.TempDir(), "report.csv")

	_, err := runDebtspotCommand(t, repo, "report",
		"--cache-backend", "none",
		"--output", "csv",
		"--output-file", outputFile)
	require.NoError(t, err)

	f, err := os.Open(outputFile)
	require.NoError(t, err)
	defer func() { _ = f.Close() }()

	rows, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 4) // header + a.py + sub + sub/b.py

	assert.Equal(t, "rank", rows[0][0])
	seen := map[string]bool{}
	for _, row := range rows[1:] {
		seen[row[1]] = true
	}
	assert.True(t, seen["a.py"])
	assert.True(t, seen["sub"])
	assert.True(t, seen["sub/b.py"])
}

func TestReportKindAndLimitFlags(t *testing.T) {
	repo := scaffoldRepo(t)
	outputFile := filepath.Join(t.TempDir(), "files.csv")

	_, err := runDebtspotCommand(t, repo, "report",
		"--cache-backend", "none",
		"--kind", "file",
		"--limit", "1",
		"--sort", "changes_count",
		"--output", "csv",
		"--output-file", outputFile)
	require.NoError(t, err)

	f, err := os.Open(outputFile)
	require.NoError(t, err)
	defer func() { _ = f.Close() }()

	rows, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 2) // header + 1 record

	// sub/b.py was committed twice, a.py only once
	assert.Equal(t, "sub/b.py", rows[1][1])
	assert.Equal(t, "2", rows[1][8])
}

func TestReportJSON(t *testing.T) {
	repo := scaffoldRepo(t)

	output, err := runDebtspotCommand(t, repo, "report",
		"--cache-backend", "none",
		"--output", "json")
	require.NoError(t, err)
	assert.Contains(t, output, `"hotspot_index"`)
	assert.Contains(t, output, `"sub/b.py"`)
}

func TestReportTable(t *testing.T) {
	repo := scaffoldRepo(t)

	output, err := runDebtspotCommand(t, repo, "report",
		"--cache-backend", "none",
		"--color", "no")
	require.NoError(t, err)
	assert.Contains(t, output, "sub/b.py")
	assert.Contains(t, output, "Analysis completed")
}

func TestReportRejectsInvalidFlags(t *testing.T) {
	repo := scaffoldRepo(t)

	_, err := runDebtspotCommand(t, repo, "report", "--sort", "popularity")
	assert.Error(t, err)

	_, err = runDebtspotCommand(t, repo, "report", "--kind", "symlink")
	assert.Error(t, err)
}

func TestMetricsCommand(t *testing.T) {
	output, err := runDebtspotCommand(t, ".", "metrics")
	require.NoError(t, err)
	assert.Contains(t, output, "hotspot_index")
	assert.Contains(t, output, "maintainability_index")
}

func TestVersionCommand(t *testing.T) {
	output, err := runDebtspotCommand(t, ".", "version")
	require.NoError(t, err)
	assert.Contains(t, output, "debtspot CLI")
	assert.True(t, strings.Contains(output, "Version:"))
}

func TestCacheLifecycleSQLite(t *testing.T) {
	repo := scaffoldRepo(t)
	dbPath := filepath.Join(t.TempDir(), "cache.db")
	t.Setenv("DEBTSPOT_CACHE_DB_CONNECT", dbPath)

	_, err := runDebtspotCommand(t, repo, "report", "--cache-backend", "sqlite", "--color", "no")
	require.NoError(t, err)

	output, err := runDebtspotCommand(t, repo, "cache", "status", "--cache-backend", "sqlite")
	require.NoError(t, err)
	assert.Contains(t, output, "Cache Backend: sqlite")
	assert.Contains(t, output, "Connected: true")
}
