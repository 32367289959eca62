package handlers

import "net/http"

// healthPayload is the fixed health check body. The numeric status field is
// part of the published contract.
type healthPayload struct {
	Status  int    `json:"status"`
	Message string `json:"message"`
}

// Health handles GET /health. It has no dependencies and always reports OK;
// liveness of the database is an operational concern, not part of this
// endpoint's contract.
func Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, healthPayload{Status: http.StatusOK, Message: "OK"})
}
