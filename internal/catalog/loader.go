// Package catalog loads the static classroom catalog from disk
package catalog

import (
	"encoding/json"
	"fmt"
	"log"
	"os"

	"github.com/naahedd/luther-spots/internal/models"
)

// The catalog file is a GeoJSON-flavored export: a feature collection where
// each feature carries the building metadata and its open classroom schedule.
type catalogFile struct {
	Data struct {
		Features []feature `json:"features"`
	} `json:"data"`
}

type feature struct {
	Properties struct {
		BuildingName       string `json:"buildingName"`
		BuildingCode       string `json:"buildingCode"`
		OpenClassroomSlots struct {
			Data []models.Room `json:"data"`
		} `json:"openClassroomSlots"`
	} `json:"properties"`
	Geometry struct {
		Coordinates []float64 `json:"coordinates"`
	} `json:"geometry"`
}

// Load reads and parses the catalog file at the given path
func Load(path string) ([]*models.Building, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog file: %w", err)
	}
	return Parse(data)
}

// Parse decodes catalog JSON into buildings, preserving file order.
// A malformed feature is skipped and logged; it never fails the whole parse.
func Parse(data []byte) ([]*models.Building, error) {
	var file catalogFile
	if err := json.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse catalog JSON: %w", err)
	}

	buildings := make([]*models.Building, 0, len(file.Data.Features))
	for i, f := range file.Data.Features {
		if f.Properties.BuildingCode == "" && f.Properties.BuildingName == "" {
			log.Printf("Skipping catalog feature %d: missing building identity", i)
			continue
		}

		buildings = append(buildings, &models.Building{
			Name:   f.Properties.BuildingName,
			Code:   f.Properties.BuildingCode,
			Coords: f.Geometry.Coordinates,
			Rooms:  f.Properties.OpenClassroomSlots.Data,
		})
	}

	return buildings, nil
}
