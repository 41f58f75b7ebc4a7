package contract

import "fmt"

// IoError reports a failed filesystem operation. It is always fatal:
// an unreadable file or directory makes the whole report untrustworthy.
type IoError struct {
	Path string
	Err  error
}

func (e *IoError) Error() string {
	return fmt.Sprintf("io failure on %s: %v", e.Path, e.Err)
}

func (e *IoError) Unwrap() error { return e.Err }

// ParseError reports a file the metric source could not analyze.
// It is non-fatal: the file keeps its record with unset metrics.
type ParseError struct {
	Path string
	Err  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("cannot parse %s: %v", e.Path, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// VcsError reports a failed git operation. It is always fatal.
type VcsError struct {
	Op  string
	Err error
}

func (e *VcsError) Error() string {
	return fmt.Sprintf("git %s failed: %v", e.Op, e.Err)
}

func (e *VcsError) Unwrap() error { return e.Err }

// PathError reports a path that cannot be normalized, such as a key
// escaping the repository root. It is always fatal.
type PathError struct {
	Path   string
	Reason string
}

func (e *PathError) Error() string {
	return fmt.Sprintf("invalid path %s: %s", e.Path, e.Reason)
}
