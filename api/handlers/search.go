// ABOUTME: Search handler for the nearby-company enrichment endpoint
// ABOUTME: Validates coordinates and translates pipeline errors to wire responses

package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"leadscout-api/api/dto/mappers"
	"leadscout-api/api/dto/requests"
	"leadscout-api/api/dto/responses"
	"leadscout-api/core/domain"
	"leadscout-api/core/errors"
	"leadscout-api/core/interfaces"
)

const (
	errMissingCoordinates = "Latitude and longitude are required"
	errInvalidBody        = "Invalid request body"
	errProcessingFailed   = "Failed to process request"

	usageHint = "Send a POST request with JSON body: {\"latitude\": <number>, \"longitude\": <number>, \"radius\": <km, optional>}"
)

// SearchHandler handles company search requests
type SearchHandler struct {
	enrichment interfaces.EnrichmentService
	logger     interfaces.Logger
}

// NewSearchHandler creates a new search handler
func NewSearchHandler(enrichment interfaces.EnrichmentService, logger interfaces.Logger) *SearchHandler {
	return &SearchHandler{
		enrichment: enrichment,
		logger:     logger,
	}
}

// RegisterRoutes registers search routes on the router
func (h *SearchHandler) RegisterRoutes(router chi.Router) {
	router.Post("/api/search", h.SearchCompanies)
	router.Get("/api/search", h.SearchUsage)
}

// SearchCompanies handles POST /api/search
func (h *SearchHandler) SearchCompanies(w http.ResponseWriter, r *http.Request) {
	var req requests.SearchCompaniesRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, errInvalidBody)
		return
	}

	if !req.HasCoordinates() {
		writeError(w, http.StatusBadRequest, errMissingCoordinates)
		return
	}

	query := domain.NewSearchQuery(*req.Latitude, *req.Longitude, req.Radius)

	companies, err := h.enrichment.SearchCompanies(r.Context(), query)
	if err != nil {
		if errors.IsValidation(err) {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}

		h.logger.Error("Company search failed", map[string]interface{}{
			"latitude":  query.Latitude,
			"longitude": query.Longitude,
			"radius_km": query.RadiusKm,
			"error":     err.Error(),
		})
		writeError(w, http.StatusInternalServerError, errProcessingFailed)
		return
	}

	writeJSON(w, http.StatusOK, responses.SearchCompaniesResponse{
		Companies: mappers.ToCompanyResponses(companies),
	})
}

// SearchUsage handles GET /api/search with a usage hint for manual callers
func (h *SearchHandler) SearchUsage(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, responses.UsageResponse{Message: usageHint})
}

// writeJSON writes v as a JSON response with the given status
func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

// writeError writes the shared error envelope
func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, responses.ErrorResponse{Error: message})
}
