package api

import (
	"net/http"
)

// CORSMiddleware allows the campus map frontend, served from a different
// origin, to call the availability API from the browser
func CORSMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")

		// Preflight requests stop here
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// WrapMuxWithMiddleware wraps an HTTP mux with the CORS middleware
func WrapMuxWithMiddleware(mux *http.ServeMux) http.Handler {
	return CORSMiddleware(mux)
}
