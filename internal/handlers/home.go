package handlers

import "net/http"

// Home reports that the service is up.
func Home(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, "HOME PAGE")
}

// Healthz is a liveness probe endpoint.
func Healthz(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, MessageResponse{Message: "ok"})
}
