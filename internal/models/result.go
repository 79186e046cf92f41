package models

// SlotRecord is one classified time window in a response
type SlotRecord struct {
	StartTime string     `json:"StartTime"`
	EndTime   string     `json:"EndTime"`
	Status    SlotStatus `json:"Status"`
}

// RoomAvailability holds a room's classified windows for the current day
// and the status rolled up from them
type RoomAvailability struct {
	Slots      []SlotRecord `json:"slots"`
	RoomStatus SlotStatus   `json:"room_status"`
}

// BuildingResult is the per-building availability record returned to clients.
// Distance is present only when the caller supplied a position; it is nil
// otherwise so the field is omitted from the serialized response.
type BuildingResult struct {
	Building       string                      `json:"building"`
	BuildingCode   string                      `json:"building_code"`
	BuildingStatus SlotStatus                  `json:"building_status"`
	Rooms          map[string]RoomAvailability `json:"rooms"`
	Coords         []float64                   `json:"coords"`
	Distance       *float64                    `json:"distance,omitempty"`
}
