package display

import (
	"testing"
	"time"
)

var formatNow = time.Date(2026, time.September, 1, 12, 0, 0, 0, time.UTC)

func TestFormatRelativeMinutes(t *testing.T) {
	cases := []struct {
		elapsed time.Duration
		want    string
	}{
		{30 * time.Second, "0 mins ago"},
		{1 * time.Minute, "1 min ago"},
		{59 * time.Minute, "59 mins ago"},
	}

	for _, tc := range cases {
		raw := formatNow.Add(-tc.elapsed).Format(time.RFC3339)
		if got := FormatRelative(raw, formatNow); got != tc.want {
			t.Errorf("FormatRelative(-%v) = %q, expected %q", tc.elapsed, got, tc.want)
		}
	}
}

func TestFormatRelativeHourBoundary(t *testing.T) {
	// Exactly 60 minutes: the minute bucket is exhausted, the hour bucket
	// is entered with a singular unit.
	raw := formatNow.Add(-60 * time.Minute).Format(time.RFC3339)
	if got := FormatRelative(raw, formatNow); got != "1 hour ago" {
		t.Errorf("Expected '1 hour ago', got: %q", got)
	}
}

func TestFormatRelativeHoursAndDays(t *testing.T) {
	cases := []struct {
		elapsed time.Duration
		want    string
	}{
		{23 * time.Hour, "23 hours ago"},
		{24 * time.Hour, "1 day ago"},
		{29 * 24 * time.Hour, "29 days ago"},
	}

	for _, tc := range cases {
		raw := formatNow.Add(-tc.elapsed).Format(time.RFC3339)
		if got := FormatRelative(raw, formatNow); got != tc.want {
			t.Errorf("FormatRelative(-%v) = %q, expected %q", tc.elapsed, got, tc.want)
		}
	}
}

func TestFormatRelativeDateFallback(t *testing.T) {
	// 30 days back is beyond the day bucket but within the current year
	raw := formatNow.Add(-30 * 24 * time.Hour).Format(time.RFC3339)
	if got := FormatRelative(raw, formatNow); got != "Aug 2" {
		t.Errorf("Expected 'Aug 2', got: %q", got)
	}

	// A prior year includes the year
	if got := FormatRelative("2025-03-05T10:00:00Z", formatNow); got != "Mar 5, 2025" {
		t.Errorf("Expected 'Mar 5, 2025', got: %q", got)
	}
}

func TestFormatRelativeRFC1123(t *testing.T) {
	raw := formatNow.Add(-5 * time.Minute).Format(time.RFC1123Z)
	if got := FormatRelative(raw, formatNow); got != "5 mins ago" {
		t.Errorf("Expected '5 mins ago' for RFC1123 input, got: %q", got)
	}
}

func TestFormatRelativeInvalid(t *testing.T) {
	for _, raw := range []string{"", "  ", "not a date"} {
		if got := FormatRelative(raw, formatNow); got != UnknownDate {
			t.Errorf("FormatRelative(%q) = %q, expected %q", raw, got, UnknownDate)
		}
	}
}

func TestFormatRelativeFutureDate(t *testing.T) {
	raw := formatNow.Add(2 * time.Minute).Format(time.RFC3339)
	if got := FormatRelative(raw, formatNow); got != "0 mins ago" {
		t.Errorf("Expected future dates clamped to '0 mins ago', got: %q", got)
	}
}
