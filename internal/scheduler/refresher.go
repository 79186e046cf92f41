// Package scheduler periodically reloads the classroom catalog
package scheduler

import (
	"context"
	"fmt"
	"log"

	"github.com/robfig/cron/v3"

	"github.com/naahedd/luther-spots/internal/catalog"
	"github.com/naahedd/luther-spots/internal/repository"
)

// Refresher reloads the catalog file into the repository, either on demand
// or on a cron schedule
type Refresher struct {
	repo repository.Repository
	path string
	cron *cron.Cron
}

// NewRefresher creates a refresher for the catalog file at the given path
func NewRefresher(repo repository.Repository, path string) *Refresher {
	return &Refresher{
		repo: repo,
		path: path,
		cron: cron.New(),
	}
}

// Refresh reloads the catalog file and replaces the repository contents
func (r *Refresher) Refresh(ctx context.Context) error {
	buildings, err := catalog.Load(r.path)
	if err != nil {
		return fmt.Errorf("failed to load catalog: %w", err)
	}

	if err := r.repo.ReplaceCatalog(ctx, buildings); err != nil {
		return fmt.Errorf("failed to replace catalog: %w", err)
	}

	log.Printf("Catalog refreshed: %d buildings from %s", len(buildings), r.path)
	return nil
}

// Start schedules periodic refreshes on the given cron spec.
// A failed refresh logs and keeps the previous catalog in place.
func (r *Refresher) Start(spec string) error {
	_, err := r.cron.AddFunc(spec, func() {
		if err := r.Refresh(context.Background()); err != nil {
			log.Printf("Scheduled catalog refresh failed, keeping previous catalog: %v", err)
		}
	})
	if err != nil {
		return fmt.Errorf("invalid refresh spec %q: %w", spec, err)
	}

	r.cron.Start()
	return nil
}

// Stop halts scheduled refreshes; a refresh already running completes
func (r *Refresher) Stop() {
	r.cron.Stop()
}
