package service

import (
	"fmt"
	"time"
)

// Clock supplies the current instant for availability computation.
// Implementations must return a time already resolved to the service's
// configured local zone.
type Clock interface {
	Now() time.Time
}

// LocalClock is the real clock, fixed to one IANA timezone for all requests
type LocalClock struct {
	loc *time.Location
}

// NewLocalClock creates a clock for the given IANA timezone name
func NewLocalClock(timezone string) (*LocalClock, error) {
	loc, err := time.LoadLocation(timezone)
	if err != nil {
		return nil, fmt.Errorf("invalid timezone %q: %w", timezone, err)
	}
	return &LocalClock{loc: loc}, nil
}

// Now returns the current time in the configured zone
func (c *LocalClock) Now() time.Time {
	return time.Now().In(c.loc)
}

// weekdayTags maps Go weekdays to the catalog's weekday vocabulary.
// The catalog uses four-letter forms for Tuesday and Thursday; this is a
// lookup table over all seven days, not derived from calendar abbreviations.
var weekdayTags = map[time.Weekday]string{
	time.Monday:    "MON",
	time.Tuesday:   "TUES",
	time.Wednesday: "WED",
	time.Thursday:  "THURS",
	time.Friday:    "FRI",
	time.Saturday:  "SAT",
	time.Sunday:    "SUN",
}

// WeekdayTag resolves a time's weekday to the catalog's weekday tag
func WeekdayTag(t time.Time) (string, error) {
	tag, ok := weekdayTags[t.Weekday()]
	if !ok {
		// Unreachable while the table covers all seven days
		return "", fmt.Errorf("no weekday tag for %v", t.Weekday())
	}
	return tag, nil
}
