package service

import (
	"math"
	"sort"

	"github.com/naahedd/luther-spots/internal/geo"
	"github.com/naahedd/luther-spots/internal/models"
)

// RankByDistance orders results by great-circle distance from the caller,
// in place. With no caller position it does nothing: results keep catalog
// order and carry no distance.
//
// A building whose coordinates cannot be read gets no distance field (JSON
// has no representation for infinity) but is kept and sorts after every
// building with a valid distance. Exact ties keep catalog order.
func RankByDistance(results []models.BuildingResult, callerPos *models.Coordinates) {
	if callerPos == nil {
		return
	}

	for i := range results {
		pos, err := models.CoordinatesFromList(results[i].Coords)
		if err != nil {
			// Degraded, not dropped: the building stays, distance is absent
			continue
		}
		d := geo.Distance(*callerPos, pos)
		results[i].Distance = &d
	}

	sort.SliceStable(results, func(i, j int) bool {
		return sortDistance(results[i]) < sortDistance(results[j])
	})
}

// sortDistance is the ordering key: a missing distance sorts last
func sortDistance(r models.BuildingResult) float64 {
	if r.Distance == nil {
		return math.Inf(1)
	}
	return *r.Distance
}
