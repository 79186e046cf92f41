package models

// SlotStatus classifies a time slot relative to the current moment
type SlotStatus string

const (
	StatusAvailable   SlotStatus = "available"
	StatusUpcoming    SlotStatus = "upcoming"
	StatusUnavailable SlotStatus = "unavailable"
)

// statusPriority orders statuses for rollups; higher wins
var statusPriority = map[SlotStatus]int{
	StatusAvailable:   3,
	StatusUpcoming:    2,
	StatusUnavailable: 1,
}

// Priority returns the rollup priority of the status.
// Unknown values rank below every defined status.
func (s SlotStatus) Priority() int {
	return statusPriority[s]
}

// RollupStatus reduces a set of statuses to the highest-priority one.
// An empty input rolls up to unavailable.
func RollupStatus(statuses []SlotStatus) SlotStatus {
	result := StatusUnavailable
	for _, s := range statuses {
		if s.Priority() > result.Priority() {
			result = s
		}
	}
	return result
}
