package api

import (
	"context"

	"github.com/naahedd/luther-spots/internal/models"
)

// AvailabilityServicer defines the service operations needed by API handlers
type AvailabilityServicer interface {
	// ComputeAvailability returns per-building availability for the current
	// moment, ranked by distance when a caller position is supplied
	ComputeAvailability(ctx context.Context, callerPos *models.Coordinates) ([]models.BuildingResult, error)
}

// CatalogRefresher reloads the catalog from its source into the repository
type CatalogRefresher interface {
	Refresh(ctx context.Context) error
}
