package util

import (
	"fmt"
	"time"
)

// DateLayout is the only accepted calendar date format (YYYY-MM-DD).
const DateLayout = "2006-01-02"

// FormatDate renders a Unix seconds timestamp as a UTC calendar date.
func FormatDate(ts int64) string {
	return time.Unix(ts, 0).UTC().Format(DateLayout)
}

// FormatDay renders a calendar day as YYYY-MM-DD.
func FormatDay(t time.Time) string {
	return t.Format(DateLayout)
}

// ParseDate parses s strictly as YYYY-MM-DD, returning midnight UTC.
func ParseDate(s string) (time.Time, error) {
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date format %q, want YYYY-MM-DD: %w", s, err)
	}
	return t, nil
}

// MidnightUTC converts a YYYY-MM-DD date to the Unix seconds of its UTC midnight.
func MidnightUTC(s string) (int64, error) {
	t, err := ParseDate(s)
	if err != nil {
		return 0, err
	}
	return t.Unix(), nil
}
