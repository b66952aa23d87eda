package handler

import (
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
)

type addChecklistItemRequest struct {
	Text     string `json:"text"`
	Category string `json:"category"`
}

// AddChecklistItem handles POST /api/trip/checklist.
func (s *Server) AddChecklistItem(w http.ResponseWriter, r *http.Request) {
	var req addChecklistItemRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if strings.TrimSpace(req.Text) == "" {
		writeJSON(w, http.StatusUnprocessableEntity, requestBody("text is required"))
		return
	}

	outcome, err := s.store.AddChecklistItem(r.Context(), req.Text, req.Category)
	if err != nil {
		s.serverError(w, r, err)
		return
	}
	s.writeOutcome(w, outcome, "checklist item")
}

// ToggleChecklistItem handles POST /api/trip/checklist/{id}/toggle.
func (s *Server) ToggleChecklistItem(w http.ResponseWriter, r *http.Request) {
	outcome, err := s.store.ToggleChecklistItem(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		s.serverError(w, r, err)
		return
	}
	s.writeOutcome(w, outcome, "checklist item")
}

// DeleteChecklistItem handles DELETE /api/trip/checklist/{id}.
func (s *Server) DeleteChecklistItem(w http.ResponseWriter, r *http.Request) {
	outcome, err := s.store.DeleteChecklistItem(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		s.serverError(w, r, err)
		return
	}
	s.writeOutcome(w, outcome, "checklist item")
}
