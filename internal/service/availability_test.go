package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/naahedd/luther-spots/internal/models"
	"github.com/naahedd/luther-spots/internal/repository/memory"
	"github.com/naahedd/luther-spots/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fixedClock pins the availability computation to a known instant
type fixedClock struct {
	now time.Time
}

func (c fixedClock) Now() time.Time { return c.now }

func buildingWithSlot(code string, weekday, start, end string) *models.Building {
	return &models.Building{
		Name:   code + " Building",
		Code:   code,
		Coords: []float64{-91.8045, 43.3127},
		Rooms: []models.Room{
			{
				Number: "101",
				Schedule: []models.WeeklySlot{
					{
						Weekday: weekday,
						Windows: []models.TimeWindow{
							{StartTime: start, EndTime: end},
						},
					},
				},
			},
		},
	}
}

func newService(t *testing.T, buildings []*models.Building, now time.Time) *service.AvailabilityService {
	t.Helper()
	repo := memory.NewRepository()
	require.NoError(t, repo.ReplaceCatalog(context.Background(), buildings))
	return service.NewAvailabilityService(repo, fixedClock{now: now})
}

func TestComputeAvailabilityDuringSlot(t *testing.T) {
	// Monday 09:30 local, slot 09:00-10:00 on MON
	now := time.Date(2024, 9, 2, 9, 30, 0, 0, time.UTC)
	svc := newService(t, []*models.Building{
		buildingWithSlot("OLIN", "MON", "09:00:00", "10:00:00"),
	}, now)

	results, err := svc.ComputeAvailability(context.Background(), nil)
	require.NoError(t, err)
	require.Len(t, results, 1)

	result := results[0]
	assert.Equal(t, "OLIN", result.BuildingCode)
	assert.Equal(t, models.StatusAvailable, result.BuildingStatus)
	assert.Nil(t, result.Distance)

	room, ok := result.Rooms["101"]
	require.True(t, ok)
	assert.Equal(t, models.StatusAvailable, room.RoomStatus)
	require.Len(t, room.Slots, 1)
	assert.Equal(t, "09:00:00", room.Slots[0].StartTime)
	assert.Equal(t, "10:00:00", room.Slots[0].EndTime)
	assert.Equal(t, models.StatusAvailable, room.Slots[0].Status)
}

func TestComputeAvailabilityBeforeSlot(t *testing.T) {
	// Monday 08:45, slot starts 09:00: 15 minutes out is upcoming
	now := time.Date(2024, 9, 2, 8, 45, 0, 0, time.UTC)
	svc := newService(t, []*models.Building{
		buildingWithSlot("OLIN", "MON", "09:00:00", "10:00:00"),
	}, now)

	results, err := svc.ComputeAvailability(context.Background(), nil)
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, models.StatusUpcoming, results[0].BuildingStatus)
	assert.Equal(t, models.StatusUpcoming, results[0].Rooms["101"].RoomStatus)
}

func TestComputeAvailabilityOmitsUnscheduledBuildings(t *testing.T) {
	// Slot is on THURS, clock says Monday: nothing qualifies
	now := time.Date(2024, 9, 2, 9, 30, 0, 0, time.UTC)
	svc := newService(t, []*models.Building{
		buildingWithSlot("OLIN", "THURS", "09:00:00", "10:00:00"),
	}, now)

	results, err := svc.ComputeAvailability(context.Background(), nil)
	require.NoError(t, err)
	assert.Empty(t, results)
}

func TestComputeAvailabilityOmitsUnscheduledRooms(t *testing.T) {
	now := time.Date(2024, 9, 2, 9, 30, 0, 0, time.UTC)

	building := buildingWithSlot("OLIN", "MON", "09:00:00", "10:00:00")
	building.Rooms = append(building.Rooms, models.Room{
		Number: "205",
		Schedule: []models.WeeklySlot{
			{
				Weekday: "FRI",
				Windows: []models.TimeWindow{{StartTime: "13:00:00", EndTime: "14:00:00"}},
			},
		},
	})

	svc := newService(t, []*models.Building{building}, now)

	results, err := svc.ComputeAvailability(context.Background(), nil)
	require.NoError(t, err)
	require.Len(t, results, 1)

	// Room 205 has no Monday windows, so it is absent, not empty
	assert.Contains(t, results[0].Rooms, "101")
	assert.NotContains(t, results[0].Rooms, "205")
}

func TestComputeAvailabilityRoomRollup(t *testing.T) {
	now := time.Date(2024, 9, 2, 9, 30, 0, 0, time.UTC)

	building := buildingWithSlot("OLIN", "MON", "07:00:00", "08:00:00")
	// Same room gains a second Monday window that is active right now
	building.Rooms[0].Schedule[0].Windows = append(building.Rooms[0].Schedule[0].Windows,
		models.TimeWindow{StartTime: "09:00:00", EndTime: "11:00:00"})

	svc := newService(t, []*models.Building{building}, now)

	results, err := svc.ComputeAvailability(context.Background(), nil)
	require.NoError(t, err)
	require.Len(t, results, 1)

	room := results[0].Rooms["101"]
	require.Len(t, room.Slots, 2)
	assert.Equal(t, models.StatusUnavailable, room.Slots[0].Status)
	assert.Equal(t, models.StatusAvailable, room.Slots[1].Status)
	assert.Equal(t, models.StatusAvailable, room.RoomStatus)
	assert.Equal(t, models.StatusAvailable, results[0].BuildingStatus)
}

func TestComputeAvailabilityPreservesCatalogOrder(t *testing.T) {
	now := time.Date(2024, 9, 2, 9, 30, 0, 0, time.UTC)
	svc := newService(t, []*models.Building{
		buildingWithSlot("ZETA", "MON", "09:00:00", "10:00:00"),
		buildingWithSlot("ALPHA", "MON", "09:00:00", "10:00:00"),
		buildingWithSlot("MIDDLE", "MON", "09:00:00", "10:00:00"),
	}, now)

	results, err := svc.ComputeAvailability(context.Background(), nil)
	require.NoError(t, err)
	require.Len(t, results, 3)

	// No caller position: catalog order, not alphabetical or ranked
	assert.Equal(t, "ZETA", results[0].BuildingCode)
	assert.Equal(t, "ALPHA", results[1].BuildingCode)
	assert.Equal(t, "MIDDLE", results[2].BuildingCode)
}

func TestComputeAvailabilitySkipsMalformedBuilding(t *testing.T) {
	now := time.Date(2024, 9, 2, 9, 30, 0, 0, time.UTC)
	svc := newService(t, []*models.Building{
		{Rooms: []models.Room{{Number: "1"}}}, // no identity at all
		buildingWithSlot("OLIN", "MON", "09:00:00", "10:00:00"),
	}, now)

	results, err := svc.ComputeAvailability(context.Background(), nil)
	require.NoError(t, err)

	// The broken record is skipped, the rest of the catalog survives
	require.Len(t, results, 1)
	assert.Equal(t, "OLIN", results[0].BuildingCode)
}

func TestComputeAvailabilityMalformedWindowFailsClosed(t *testing.T) {
	now := time.Date(2024, 9, 2, 9, 30, 0, 0, time.UTC)
	svc := newService(t, []*models.Building{
		buildingWithSlot("OLIN", "MON", "garbage", "10:00:00"),
	}, now)

	results, err := svc.ComputeAvailability(context.Background(), nil)
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, models.StatusUnavailable, results[0].BuildingStatus)
}

func TestComputeAvailabilityWithCallerPosition(t *testing.T) {
	now := time.Date(2024, 9, 2, 9, 30, 0, 0, time.UTC)

	near := buildingWithSlot("NEAR", "MON", "09:00:00", "10:00:00")
	near.Coords = []float64{-91.8045, 43.3127}
	far := buildingWithSlot("FAR", "MON", "09:00:00", "10:00:00")
	far.Coords = []float64{-87.6298, 41.8781} // Chicago

	// Catalog lists the far building first
	svc := newService(t, []*models.Building{far, near}, now)

	caller := &models.Coordinates{Lat: 43.3127, Lng: -91.8045}
	results, err := svc.ComputeAvailability(context.Background(), caller)
	require.NoError(t, err)
	require.Len(t, results, 2)

	assert.Equal(t, "NEAR", results[0].BuildingCode)
	assert.Equal(t, "FAR", results[1].BuildingCode)

	require.NotNil(t, results[0].Distance)
	require.NotNil(t, results[1].Distance)
	assert.Equal(t, 0.0, *results[0].Distance)
	assert.Greater(t, *results[1].Distance, 100.0)
}
