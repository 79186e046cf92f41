// Package service implements the availability aggregation engine
package service

import (
	"context"
	"fmt"
	"time"

	"github.com/naahedd/luther-spots/internal/models"
	"github.com/naahedd/luther-spots/internal/repository"
)

// AvailabilityService computes current classroom availability over the catalog
type AvailabilityService struct {
	repo  repository.Repository
	clock Clock
}

// NewAvailabilityService creates a new AvailabilityService with the given
// repository and clock
func NewAvailabilityService(repo repository.Repository, clock Clock) *AvailabilityService {
	return &AvailabilityService{
		repo:  repo,
		clock: clock,
	}
}

// ComputeAvailability classifies every scheduled slot for the current weekday
// and rolls statuses up through rooms and buildings. When callerPos is
// non-nil, results are ordered by great-circle distance from the caller;
// otherwise they keep catalog order and carry no distance.
func (s *AvailabilityService) ComputeAvailability(ctx context.Context, callerPos *models.Coordinates) ([]models.BuildingResult, error) {
	now := s.clock.Now()
	day, err := WeekdayTag(now)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve weekday: %w", err)
	}

	buildings, err := s.repo.ListBuildings(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list buildings: %w", err)
	}

	results := make([]models.BuildingResult, 0, len(buildings))
	for _, building := range buildings {
		result, ok := buildingResult(building, now, day)
		if !ok {
			continue
		}
		results = append(results, result)
	}

	RankByDistance(results, callerPos)

	return results, nil
}

// buildingResult computes one building's availability for the given day.
// The second return value is false when the building has no qualifying room
// today or its record is too malformed to process; a bad building is dropped
// here rather than failing the whole aggregation.
func buildingResult(building *models.Building, now time.Time, day string) (models.BuildingResult, bool) {
	if building == nil || (building.Name == "" && building.Code == "") {
		return models.BuildingResult{}, false
	}

	rooms := make(map[string]models.RoomAvailability)
	var roomStatuses []models.SlotStatus

	for _, room := range building.Rooms {
		if room.Number == "" {
			continue
		}

		var slots []models.SlotRecord
		var statuses []models.SlotStatus

		for _, weekly := range room.Schedule {
			// Only today's windows count
			if weekly.Weekday != day {
				continue
			}
			for _, window := range weekly.Windows {
				status := ClassifySlot(now, window)
				slots = append(slots, models.SlotRecord{
					StartTime: window.StartTime,
					EndTime:   window.EndTime,
					Status:    status,
				})
				statuses = append(statuses, status)
			}
		}

		// A room with nothing scheduled today is omitted entirely
		if len(slots) == 0 {
			continue
		}

		roomStatus := models.RollupStatus(statuses)
		rooms[room.Number] = models.RoomAvailability{
			Slots:      slots,
			RoomStatus: roomStatus,
		}
		roomStatuses = append(roomStatuses, roomStatus)
	}

	// A building with no qualifying rooms is omitted entirely
	if len(rooms) == 0 {
		return models.BuildingResult{}, false
	}

	return models.BuildingResult{
		Building:       building.Name,
		BuildingCode:   building.Code,
		BuildingStatus: models.RollupStatus(roomStatuses),
		Rooms:          rooms,
		Coords:         building.Coords,
	}, true
}
