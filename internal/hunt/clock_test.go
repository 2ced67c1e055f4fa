package hunt

import (
	"testing"
	"time"
)

func TestStarted(t *testing.T) {
	cases := []struct {
		raw  string
		want bool
	}{
		{"", false},
		{"   ", false},
		{"2026-05-01T10:00:00.000Z", true},
		// Presence gates access even when the value is not a timestamp.
		{"soon", true},
	}
	for _, tc := range cases {
		if got := Started(tc.raw); got != tc.want {
			t.Errorf("Started(%q) = %v, want %v", tc.raw, got, tc.want)
		}
	}
}

func TestBaseline(t *testing.T) {
	created := time.Date(2026, 5, 1, 9, 30, 0, 0, time.UTC)

	start := time.Date(2026, 5, 1, 10, 0, 0, 0, time.UTC)
	if got := Baseline(FormatTime(start), created); !got.Equal(start) {
		t.Errorf("valid start: baseline = %v, want %v", got, start)
	}
	if got := Baseline("garbage", created); !got.Equal(created) {
		t.Errorf("invalid start: baseline = %v, want team creation %v", got, created)
	}
	if got := Baseline("", created); !got.Equal(created) {
		t.Errorf("unset start: baseline = %v, want team creation %v", got, created)
	}
}

func TestFormatParseRoundTrip(t *testing.T) {
	now := time.Date(2026, 5, 1, 10, 0, 0, 123_000_000, time.UTC)
	parsed, err := ParseTime(FormatTime(now))
	if err != nil {
		t.Fatalf("parsing formatted time: %v", err)
	}
	if !parsed.Equal(now) {
		t.Errorf("round trip = %v, want %v", parsed, now)
	}

	// RFC 3339 without the fixed millisecond part also parses.
	if _, err := ParseTime("2026-05-01T10:00:00Z"); err != nil {
		t.Errorf("plain RFC 3339 should parse: %v", err)
	}
}

func TestFormatDuration(t *testing.T) {
	cases := []struct {
		d    time.Duration
		want string
	}{
		{45 * time.Second, "00:45"},
		{5*time.Minute + 3*time.Second, "05:03"},
		{time.Hour + 2*time.Minute + 1*time.Second, "01:02:01"},
	}
	for _, tc := range cases {
		if got := FormatDuration(tc.d); got != tc.want {
			t.Errorf("FormatDuration(%v) = %q, want %q", tc.d, got, tc.want)
		}
	}
}
