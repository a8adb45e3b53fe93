// ABOUTME: Health handler for liveness probes
// ABOUTME: Reports service status without touching downstream providers

package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// HealthHandler handles liveness checks
type HealthHandler struct{}

// NewHealthHandler creates a new health handler
func NewHealthHandler() *HealthHandler {
	return &HealthHandler{}
}

// RegisterRoutes registers health routes on the router
func (h *HealthHandler) RegisterRoutes(router chi.Router) {
	router.Get("/healthz", h.Check)
}

// Check handles GET /healthz. It deliberately checks nothing downstream so a
// provider outage never makes the orchestrator restart the service.
func (h *HealthHandler) Check(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
