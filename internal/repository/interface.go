// Package repository defines interfaces for catalog storage
package repository

import (
	"context"
	"time"

	"github.com/naahedd/luther-spots/internal/models"
)

// Repository is the shared handle to the parsed classroom catalog.
// The catalog is replaced wholesale by a refresh and is otherwise read-only;
// implementations must preserve catalog insertion order in ListBuildings.
type Repository interface {
	// ReplaceCatalog atomically swaps in a freshly loaded catalog
	ReplaceCatalog(ctx context.Context, buildings []*models.Building) error

	// ListBuildings returns the catalog in its original order
	ListBuildings(ctx context.Context) ([]*models.Building, error)

	// UpdatedAt reports when the catalog was last replaced
	UpdatedAt(ctx context.Context) (time.Time, error)
}
