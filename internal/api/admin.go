package api

import (
	"encoding/json"
	"log"
	"net/http"
	"time"
)

// RefreshHandler handles admin requests to reload the catalog file
type RefreshHandler struct {
	refresher CatalogRefresher
}

// NewRefreshHandler creates a new refresh handler with the given refresher
func NewRefreshHandler(refresher CatalogRefresher) *RefreshHandler {
	return &RefreshHandler{
		refresher: refresher,
	}
}

// ServeHTTP handles POST /admin/refresh to reload the catalog.
// On failure the previous catalog stays in place.
func (h *RefreshHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	w.Header().Set("Content-Type", "application/json")

	if err := h.refresher.Refresh(r.Context()); err != nil {
		log.Printf("Error refreshing catalog: %v", err)
		http.Error(w, "Error refreshing catalog", http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(map[string]string{
		"message":      "Catalog refreshed",
		"refreshed_at": time.Now().UTC().Format(time.RFC3339),
	})
}
