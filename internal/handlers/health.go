package handlers

import (
	"net/http"
	"time"
)

// HealthHandler responds with service health information.
type HealthHandler struct {
	Started time.Time
}

type healthResponse struct {
	Status string `json:"status"`
	Uptime string `json:"uptime,omitempty"`
}

// Handle implements GET /healthz.
func (h HealthHandler) Handle(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	payload := healthResponse{Status: "ok"}
	if !h.Started.IsZero() {
		payload.Uptime = time.Since(h.Started).Round(time.Second).String()
	}
	respondJSON(r.Context(), w, http.StatusOK, payload)
}
