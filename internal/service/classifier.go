package service

import (
	"time"

	"github.com/naahedd/luther-spots/internal/models"
)

// timeLayout is the wall-clock format used by the catalog
const timeLayout = "15:04:05"

// upcomingWindow is how far ahead of a slot's start it reports as upcoming
const upcomingWindow = 20 * time.Minute

// ClassifySlot classifies one time window against the current wall-clock time.
// Both window ends are inclusive, so a slot starting exactly now is available,
// not upcoming. Malformed times fail closed to unavailable; a bad window must
// never abort the surrounding aggregation.
func ClassifySlot(now time.Time, window models.TimeWindow) models.SlotStatus {
	start, err := secondsOfDay(window.StartTime)
	if err != nil {
		return models.StatusUnavailable
	}
	end, err := secondsOfDay(window.EndTime)
	if err != nil {
		return models.StatusUnavailable
	}

	// Compare as seconds since midnight; slots never cross midnight, so this
	// sidesteps date arithmetic entirely
	cur := now.Hour()*3600 + now.Minute()*60 + now.Second()

	switch {
	case start <= cur && cur <= end:
		return models.StatusAvailable
	case cur < start && start-cur <= int(upcomingWindow.Seconds()):
		return models.StatusUpcoming
	default:
		return models.StatusUnavailable
	}
}

// secondsOfDay parses an HH:MM:SS string into seconds since midnight
func secondsOfDay(s string) (int, error) {
	t, err := time.Parse(timeLayout, s)
	if err != nil {
		return 0, err
	}
	return t.Hour()*3600 + t.Minute()*60 + t.Second(), nil
}
