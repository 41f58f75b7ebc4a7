package contract

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/fatih/color"
	"github.com/huangsam/debtspot/schema"
)

// Maintainability label constants, following the Visual Studio bands.
const (
	CriticalValue = "Critical" // MI below 10
	WarningValue  = "Warning"  // MI below 20
	HealthyValue  = "Healthy"  // MI at or above 20
	UnsetValue    = "Unset"    // metrics never computed
)

// Color variables for console output.
var (
	CriticalColor = color.New(color.FgRed, color.Bold) // criticalColor represents standard danger.
	WarningColor  = color.New(color.FgYellow)          // warningColor represents standard caution, not bold.
	HealthyColor  = color.New(color.FgGreen)           // healthyColor represents a passing signal.
	UnsetColor    = color.New(color.FgCyan)            // unsetColor represents missing data.
)

// GetPlainLabel returns a plain text label for a maintainability index.
// This is the core logic used for CSV, JSON, and table printing.
func GetPlainLabel(mi float64) string {
	switch {
	case schema.Unset(mi):
		return UnsetValue
	case mi < 10:
		return CriticalValue
	case mi < 20:
		return WarningValue
	default:
		return HealthyValue
	}
}

// GetColorLabel returns a colored text label for console output (table).
// It uses GetPlainLabel to determine the string, and then applies the appropriate color.
func GetColorLabel(mi float64) string {
	text := GetPlainLabel(mi)

	switch text {
	case CriticalValue:
		return CriticalColor.Sprint(text)
	case WarningValue:
		return WarningColor.Sprint(text)
	case HealthyValue:
		return HealthyColor.Sprint(text)
	default: // "Unset"
		return UnsetColor.Sprint(text)
	}
}

// SelectOutputFile returns the appropriate file handle for output, based on the
// provided file path. An empty path selects os.Stdout.
func SelectOutputFile(filePath string) (*os.File, error) {
	if filePath == "" {
		return os.Stdout, nil
	}
	return os.Create(filePath)
}

// LogFatal logs an error and exits the program.
func LogFatal(msg string, err error) {
	_, _ = fmt.Fprintf(os.Stderr, "Fatal %s: %v\n", msg, err)
	os.Exit(1)
}

// LogWarn logs a warning message to stderr.
func LogWarn(msg string, err error) {
	_, _ = fmt.Fprintf(os.Stderr, "Warn %s: %v\n", msg, err)
}

// GetCacheDBFilePath returns the path to the SQLite DB file for cache storage.
func GetCacheDBFilePath() string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return ".debtspot_cache.db"
	}
	return filepath.Join(homeDir, ".debtspot_cache.db")
}

// NormalizeRepoPath normalizes an absolute path relative to the repo root
// and ensures it stays within the repository boundaries.
func NormalizeRepoPath(repoRoot, absPath string) (string, error) {
	relPath, err := filepath.Rel(repoRoot, absPath)
	if err != nil {
		return "", &PathError{Path: absPath, Reason: "outside repository"}
	}

	cleanPath := filepath.Clean(relPath)
	if cleanPath == ".." || strings.HasPrefix(cleanPath, ".."+string(filepath.Separator)) {
		return "", &PathError{Path: absPath, Reason: "outside repository"}
	}

	// Forward slashes for consistency with Git paths
	normalized := strings.ReplaceAll(cleanPath, string(filepath.Separator), "/")
	return strings.TrimPrefix(normalized, "./"), nil
}

// TruncatePath truncates a file path to a maximum width with ellipsis prefix.
// Requires maxWidth > 3 to ensure there's space for both the "..." prefix and
// at least one character of content.
func TruncatePath(path string, maxWidth int) string {
	runes := []rune(path)
	if len(runes) > maxWidth && maxWidth > 3 {
		return "..." + string(runes[len(runes)-maxWidth+3:])
	}
	return path
}

// ParseBoolString parses a string value into a boolean.
// Accepts "yes", "no", "true", "false", "1", "0" (case-insensitive).
// Returns an error for invalid values.
func ParseBoolString(s string) (bool, error) {
	switch strings.ToLower(s) {
	case "yes", "true", "1":
		return true, nil
	case "no", "false", "0":
		return false, nil
	default:
		return false, fmt.Errorf("invalid boolean string: %s (expected yes/no/true/false/1/0)", s)
	}
}
