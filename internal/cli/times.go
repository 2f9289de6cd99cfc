package cli

import (
	"fmt"
	"time"
)

// ParseEventTime parses a CLI-supplied time. Accepted forms:
//   - RFC 3339 ("2025-06-14T15:00:00Z")
//   - "2006-01-02 15:04" in the configured timezone
//   - "15:04", meaning that clock time today in the configured timezone
func ParseEventTime(s string, now time.Time, loc *time.Location) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, nil
	}
	if t, err := time.ParseInLocation("2006-01-02 15:04", s, loc); err == nil {
		return t, nil
	}
	if t, err := time.ParseInLocation("15:04", s, loc); err == nil {
		today := now.In(loc)
		return time.Date(today.Year(), today.Month(), today.Day(),
			t.Hour(), t.Minute(), 0, 0, loc), nil
	}
	return time.Time{}, fmt.Errorf("unrecognized time %q (use RFC 3339, \"YYYY-MM-DD HH:MM\", or \"HH:MM\")", s)
}

// FormatClock renders an instant as a short clock time for tables.
func FormatClock(t *time.Time, loc *time.Location) string {
	if t == nil {
		return "--:--"
	}
	return t.In(loc).Format("15:04")
}
