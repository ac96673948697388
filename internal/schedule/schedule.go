// Package schedule composes and splits appointment timestamps. The front
// desk enters a date and a time as two masked strings; the stored value is
// their concatenation interpreted as UTC. Composition performs no calendar
// validation: a well-shaped but impossible date passes through verbatim.
package schedule

import (
	"fmt"
	"regexp"
	"time"
)

const (
	DateLayout = "2006-01-02"
	TimeLayout = "15:04"
)

var (
	datePattern = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)
	timePattern = regexp.MustCompile(`^\d{2}:\d{2}$`)
)

// Compose joins a YYYY-MM-DD date and an HH:MM time into a single
// "<date>T<time>:00Z" timestamp string.
func Compose(date, clock string) (string, error) {
	if !datePattern.MatchString(date) {
		return "", fmt.Errorf("invalid date format %q, expected YYYY-MM-DD", date)
	}
	if !timePattern.MatchString(clock) {
		return "", fmt.Errorf("invalid time format %q, expected HH:MM", clock)
	}
	return date + "T" + clock + ":00Z", nil
}

// Split inverts Compose, recovering the date and time strings for
// re-editing. Values that parse as RFC 3339 are re-extracted through the
// parsed instant; impossible-but-well-shaped values fall back to positional
// slicing so the round trip stays exact.
func Split(scheduledAt string) (date, clock string, err error) {
	if t, perr := time.Parse(time.RFC3339, scheduledAt); perr == nil {
		return t.UTC().Format(DateLayout), t.UTC().Format(TimeLayout), nil
	}
	if len(scheduledAt) >= 16 && scheduledAt[10] == 'T' &&
		datePattern.MatchString(scheduledAt[:10]) && timePattern.MatchString(scheduledAt[11:16]) {
		return scheduledAt[:10], scheduledAt[11:16], nil
	}
	return "", "", fmt.Errorf("malformed timestamp %q", scheduledAt)
}

// DisplayDate formats the calendar date of a stored timestamp for read
// views. Unparseable values are returned as-is rather than failing the
// render.
func DisplayDate(scheduledAt string) string {
	t, err := time.Parse(time.RFC3339, scheduledAt)
	if err != nil {
		return scheduledAt
	}
	return t.UTC().Format("02/01/2006")
}

// DisplayTime formats the time-of-day of a stored timestamp for read views.
func DisplayTime(scheduledAt string) string {
	t, err := time.Parse(time.RFC3339, scheduledAt)
	if err != nil {
		return scheduledAt
	}
	return t.UTC().Format(TimeLayout)
}
