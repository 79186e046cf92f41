package api

import (
	"net/http"
)

// SetupRoutes configures the HTTP routes for the API
func SetupRoutes(availabilityService AvailabilityServicer, refresher CatalogRefresher) *http.ServeMux {
	mux := http.NewServeMux()

	// Health check endpoints for Kubernetes
	mux.HandleFunc("/health/live", HealthLiveHandler)
	mux.HandleFunc("/health/ready", HealthReadyHandler)

	// Availability endpoint; GET without a position, POST with one
	classroomsHandler := NewClassroomsHandler(availabilityService)
	mux.Handle("/api/open-classrooms", classroomsHandler)

	// Admin endpoint to reload the catalog file
	refreshHandler := NewRefreshHandler(refresher)
	mux.Handle("/admin/refresh", refreshHandler)

	return mux
}
