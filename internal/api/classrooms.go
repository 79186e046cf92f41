package api

import (
	"encoding/json"
	"io"
	"log"
	"net/http"

	"github.com/naahedd/luther-spots/internal/geo"
	"github.com/naahedd/luther-spots/internal/models"
	"github.com/naahedd/luther-spots/internal/utils"
)

// ClassroomsHandler handles HTTP requests for current classroom availability
type ClassroomsHandler struct {
	service AvailabilityServicer
}

// NewClassroomsHandler creates a new classrooms handler with the given service
func NewClassroomsHandler(service AvailabilityServicer) *ClassroomsHandler {
	return &ClassroomsHandler{
		service: service,
	}
}

// locationRequest is the optional POST body carrying the caller's position.
// Pointers distinguish "absent" from zero values.
type locationRequest struct {
	Lat *float64 `json:"lat"`
	Lng *float64 `json:"lng"`
}

// errorResponse is the JSON body for rejected requests
type errorResponse struct {
	Error string `json:"error"`
}

// ServeHTTP handles GET and POST requests for /api/open-classrooms.
// GET computes availability with no caller position; POST expects a JSON
// body with both lat and lng and ranks results by distance.
func (h *ClassroomsHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	var callerPos *models.Coordinates

	switch r.Method {
	case http.MethodGet:
		// No caller position; results keep catalog order

	case http.MethodPost:
		pos, ok := h.decodeLocation(w, r)
		if !ok {
			return
		}
		callerPos = pos

	default:
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	results, err := h.service.ComputeAvailability(r.Context(), callerPos)
	if err != nil {
		log.Printf("Error computing availability: %v", err)
		http.Error(w, "Error computing availability", http.StatusInternalServerError)
		return
	}

	json.NewEncoder(w).Encode(results)
}

// decodeLocation parses and validates the caller position from a POST body.
// On failure it writes the client error response and returns ok=false.
func (h *ClassroomsHandler) decodeLocation(w http.ResponseWriter, r *http.Request) (*models.Coordinates, bool) {
	// Limit request body size to prevent abuse
	body, err := io.ReadAll(io.LimitReader(r.Body, 1048576)) // 1MB limit
	if err != nil {
		log.Printf("Error reading location body: %v", err)
		h.reject(w, "Error reading request body")
		return nil, false
	}
	defer r.Body.Close()

	if len(body) == 0 {
		h.reject(w, "No data provided")
		return nil, false
	}

	var req locationRequest
	if err := json.Unmarshal(body, &req); err != nil {
		log.Printf("Error parsing location JSON: %v", utils.SanitizeLogString(err.Error()))
		h.reject(w, "Invalid location data. 'lat' and 'lng' must be numeric.")
		return nil, false
	}

	// Both fields or neither; one without the other is a client error
	if req.Lat == nil || req.Lng == nil {
		h.reject(w, "Invalid location data. 'lat' and 'lng' are required.")
		return nil, false
	}

	pos := models.Coordinates{Lat: *req.Lat, Lng: *req.Lng}
	if err := geo.Validate(pos); err != nil {
		h.reject(w, "Invalid location data: "+err.Error())
		return nil, false
	}

	return &pos, true
}

// reject writes a 400 response with a JSON error body
func (h *ClassroomsHandler) reject(w http.ResponseWriter, message string) {
	w.WriteHeader(http.StatusBadRequest)
	json.NewEncoder(w).Encode(errorResponse{Error: message})
}
