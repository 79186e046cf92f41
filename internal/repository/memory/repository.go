// Package memory provides an in-memory implementation of the repository interface
package memory

import (
	"context"
	"sync"
	"time"

	"github.com/naahedd/luther-spots/internal/models"
)

// Repository implements the repository interface with in-memory storage
type Repository struct {
	buildings []*models.Building
	updatedAt time.Time
	mu        sync.RWMutex
}

// NewRepository creates a new in-memory repository
func NewRepository() *Repository {
	return &Repository{}
}

// ReplaceCatalog swaps in a new catalog under the write lock
func (r *Repository) ReplaceCatalog(ctx context.Context, buildings []*models.Building) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	// Keep our own slice so a caller mutating theirs can't race readers
	replacement := make([]*models.Building, len(buildings))
	copy(replacement, buildings)

	r.buildings = replacement
	r.updatedAt = time.Now()

	return nil
}

// ListBuildings returns the catalog in insertion order
func (r *Repository) ListBuildings(ctx context.Context) ([]*models.Building, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	buildings := make([]*models.Building, len(r.buildings))
	copy(buildings, r.buildings)

	return buildings, nil
}

// UpdatedAt reports when the catalog was last replaced
func (r *Repository) UpdatedAt(ctx context.Context) (time.Time, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.updatedAt, nil
}
