package hunt

import (
	"fmt"
	"strings"
	"time"
)

// TimeLayout is the canonical sortable text form for stored timestamps.
const TimeLayout = "2006-01-02T15:04:05.000Z"

// FormatTime renders t in the canonical stored form (UTC).
func FormatTime(t time.Time) string {
	return t.UTC().Format(TimeLayout)
}

// ParseTime parses a stored timestamp, accepting the canonical layout and
// plain RFC 3339 variants.
func ParseTime(s string) (time.Time, error) {
	if t, err := time.Parse(TimeLayout, s); err == nil {
		return t, nil
	}
	return time.Parse(time.RFC3339Nano, s)
}

// Started reports whether the game clock is open. Any non-blank stored
// value opens clue access; it does not have to parse as a timestamp.
func Started(raw string) bool {
	return strings.TrimSpace(raw) != ""
}

// Baseline returns the instant elapsed time is measured from: the global
// start when it parses as a valid timestamp, otherwise the team's own
// creation time.
func Baseline(raw string, teamCreated time.Time) time.Time {
	if t, err := ParseTime(strings.TrimSpace(raw)); err == nil {
		return t
	}
	return teamCreated
}

// FormatDuration renders an elapsed duration as MM:SS, or HH:MM:SS once it
// reaches an hour.
func FormatDuration(d time.Duration) string {
	total := int(d.Seconds())
	h := total / 3600
	m := (total % 3600) / 60
	s := total % 60
	if h > 0 {
		return fmt.Sprintf("%02d:%02d:%02d", h, m, s)
	}
	return fmt.Sprintf("%02d:%02d", m, s)
}
