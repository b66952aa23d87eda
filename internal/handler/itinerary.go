package handler

import (
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	openapi_types "github.com/oapi-codegen/runtime/types"

	"github.com/mgagnon/travel-assistant/internal/domain"
)

type addItineraryItemRequest struct {
	Title    string             `json:"title"`
	Date     openapi_types.Date `json:"date"`
	Time     string             `json:"time"`
	Location string             `json:"location"`
}

// AddItineraryItem handles POST /api/trip/itinerary. The store assigns the
// id and re-sorts the itinerary chronologically.
func (s *Server) AddItineraryItem(w http.ResponseWriter, r *http.Request) {
	var req addItineraryItemRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if strings.TrimSpace(req.Title) == "" {
		writeJSON(w, http.StatusUnprocessableEntity, requestBody("title is required"))
		return
	}

	item := domain.Activity{
		Title:    req.Title,
		Date:     req.Date.Format(domain.DateLayout),
		Time:     req.Time,
		Location: req.Location,
	}
	outcome, err := s.store.AddItineraryItem(r.Context(), item)
	if err != nil {
		s.serverError(w, r, err)
		return
	}
	s.writeOutcome(w, outcome, "itinerary item")
}

// DeleteItineraryItem handles DELETE /api/trip/itinerary/{id}.
func (s *Server) DeleteItineraryItem(w http.ResponseWriter, r *http.Request) {
	outcome, err := s.store.DeleteItineraryItem(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		s.serverError(w, r, err)
		return
	}
	s.writeOutcome(w, outcome, "itinerary item")
}
