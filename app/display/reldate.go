package display

import (
	"fmt"
	"strings"
	"time"

	"github.com/araddon/dateparse"
)

// UnknownDate is returned for empty or unparseable source dates.
const UnknownDate = "Unknown date"

// FormatRelative renders a raw source date as a human-relative string against
// the supplied current time. Elapsed whole units are floored, so 30 seconds
// ago reads "0 mins ago" and exactly 60 minutes ago enters the hour bucket as
// "1 hour ago". Beyond 30 days it falls back to a short date, with the year
// only when it differs from the current one.
func FormatRelative(raw string, now time.Time) string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return UnknownDate
	}

	t, err := dateparse.ParseAny(raw)
	if err != nil {
		return UnknownDate
	}

	elapsed := now.Sub(t)
	if elapsed < 0 {
		elapsed = 0
	}

	if mins := int(elapsed.Minutes()); mins < 60 {
		return fmt.Sprintf("%d %s ago", mins, pluralize("min", mins))
	}
	if hours := int(elapsed.Hours()); hours < 24 {
		return fmt.Sprintf("%d %s ago", hours, pluralize("hour", hours))
	}
	if days := int(elapsed.Hours() / 24); days < 30 {
		return fmt.Sprintf("%d %s ago", days, pluralize("day", days))
	}

	if t.Year() != now.Year() {
		return t.Format("Jan 2, 2006")
	}
	return t.Format("Jan 2")
}

func pluralize(unit string, n int) string {
	if n == 1 {
		return unit
	}
	return unit + "s"
}
