// Package models defines the catalog entities and availability statuses
package models

import (
	"errors"
	"math"
)

// ErrBadCoordinates is returned when a building's geometry cannot be
// interpreted as a [lng, lat] pair
var ErrBadCoordinates = errors.New("invalid building coordinates")

// Coordinates represents a geographic point (WGS 84)
type Coordinates struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// TimeWindow is a single scheduled open interval within one day.
// Times are wall-clock strings in HH:MM:SS form, as stored in the catalog.
type TimeWindow struct {
	StartTime string `json:"StartTime"`
	EndTime   string `json:"EndTime"`
}

// WeeklySlot groups the time windows a room has on one weekday.
// The weekday tag uses the catalog's own vocabulary (e.g. "THURS", not "THU").
type WeeklySlot struct {
	Weekday string       `json:"Weekday"`
	Windows []TimeWindow `json:"Slots"`
}

// Room is a schedulable classroom within a building
type Room struct {
	Number   string       `json:"roomNumber"`
	Schedule []WeeklySlot `json:"Schedule"`
}

// Building is one campus building with its rooms and position.
// Coords keeps the catalog's GeoJSON ordering: [lng, lat].
type Building struct {
	Name   string    `json:"name"`
	Code   string    `json:"code"`
	Coords []float64 `json:"coords"`
	Rooms  []Room    `json:"rooms"`
}

// Position returns the building's coordinates as a lat/lng pair
func (b *Building) Position() (Coordinates, error) {
	return CoordinatesFromList(b.Coords)
}

// CoordinatesFromList interprets a GeoJSON [lng, lat] pair.
// Extra trailing values (altitude) are tolerated and ignored.
func CoordinatesFromList(coords []float64) (Coordinates, error) {
	if len(coords) < 2 {
		return Coordinates{}, ErrBadCoordinates
	}

	c := Coordinates{Lat: coords[1], Lng: coords[0]}
	if math.IsNaN(c.Lat) || math.IsInf(c.Lat, 0) || math.IsNaN(c.Lng) || math.IsInf(c.Lng, 0) {
		return Coordinates{}, ErrBadCoordinates
	}

	return c, nil
}
