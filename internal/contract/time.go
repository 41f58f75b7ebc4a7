package contract

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// ParseRelativeTime parses a human-friendly relative expression like
// "30 days ago" or "6 months ago" into an absolute time anchored at now.
func ParseRelativeTime(s string, now time.Time) (time.Time, error) {
	fields := strings.Fields(strings.ToLower(strings.TrimSpace(s)))
	if len(fields) != 3 || fields[2] != "ago" {
		return time.Time{}, fmt.Errorf("expected format 'N [units] ago', got %q", s)
	}

	n, err := strconv.Atoi(fields[0])
	if err != nil || n < 0 {
		return time.Time{}, fmt.Errorf("invalid count %q in relative time", fields[0])
	}

	unit := strings.TrimSuffix(fields[1], "s")
	switch unit {
	case "hour":
		return now.Add(-time.Duration(n) * time.Hour), nil
	case "day":
		return now.AddDate(0, 0, -n), nil
	case "week":
		return now.AddDate(0, 0, -7*n), nil
	case "month":
		return now.AddDate(0, -n, 0), nil
	case "year":
		return now.AddDate(-n, 0, 0), nil
	default:
		return time.Time{}, fmt.Errorf("invalid unit %q. must be hours, days, weeks, months, years", fields[1])
	}
}
