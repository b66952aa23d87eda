package handler

import (
	"errors"
	"net/http"

	openapi_types "github.com/oapi-codegen/runtime/types"

	"github.com/mgagnon/travel-assistant/internal/domain"
)

// setTripRequest is the setup-form submission. Dates arrive as "2006-01-02"
// strings; openapi_types.Date enforces the format during decoding.
type setTripRequest struct {
	Destination string             `json:"destination"`
	Stops       []string           `json:"stops"`
	StartDate   openapi_types.Date `json:"startDate"`
	EndDate     openapi_types.Date `json:"endDate"`
	Type        string             `json:"type"`
	Vibe        []string           `json:"vibe"`
	Intent      string             `json:"intent"`
}

// GetTrip handles GET /api/trip.
func (s *Server) GetTrip(w http.ResponseWriter, r *http.Request) {
	trip := s.store.GetTrip()
	if trip == nil {
		writeJSON(w, http.StatusNotFound, notFoundBody("no active trip"))
		return
	}
	writeJSON(w, http.StatusOK, trip)
}

// SetTrip handles POST /api/trip. It fully replaces the trip: all derived
// content is regenerated from the submitted details.
func (s *Server) SetTrip(w http.ResponseWriter, r *http.Request) {
	var req setTripRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	details := domain.TripDetails{
		Destination: req.Destination,
		Stops:       req.Stops,
		StartDate:   req.StartDate.Format(domain.DateLayout),
		EndDate:     req.EndDate.Format(domain.DateLayout),
		Type:        req.Type,
		Vibe:        req.Vibe,
		Intent:      req.Intent,
	}

	trip, err := s.store.SetTripDetails(r.Context(), details)
	if err != nil {
		if errors.Is(err, domain.ErrValidation) {
			writeJSON(w, http.StatusUnprocessableEntity, validationBody(err))
			return
		}
		s.serverError(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, trip)
}

// ClearTrip handles DELETE /api/trip. Clearing when no trip exists still
// succeeds; the end state is the same.
func (s *Server) ClearTrip(w http.ResponseWriter, r *http.Request) {
	if err := s.store.ClearTrip(r.Context()); err != nil {
		s.serverError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// serverError logs the failure and replies 500 without leaking internals.
func (s *Server) serverError(w http.ResponseWriter, r *http.Request, err error) {
	s.log.ErrorContext(r.Context(), "handler error", "path", r.URL.Path, "error", err)
	writeJSON(w, http.StatusInternalServerError, ErrorResponse{
		Error: ErrorDetail{Code: "internal_error", Message: "internal server error"},
	})
}

// writeOutcome maps a store mutation outcome to the HTTP reply: applied
// returns the fresh trip, no-trip and unknown-id map to 404 bodies that
// name what was missing.
func (s *Server) writeOutcome(w http.ResponseWriter, outcome domain.Outcome, itemKind string) {
	switch outcome {
	case domain.OutcomeNoTrip:
		writeJSON(w, http.StatusNotFound, notFoundBody("no active trip"))
	case domain.OutcomeNotFound:
		writeJSON(w, http.StatusNotFound, notFoundBody(itemKind+" not found"))
	default:
		writeJSON(w, http.StatusOK, s.store.GetTrip())
	}
}
