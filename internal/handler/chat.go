package handler

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/mgagnon/travel-assistant/internal/domain"
)

// chatTimeout bounds a single assistant request, including the provider's
// internal model fallback and retries.
const chatTimeout = 45 * time.Second

type chatRequest struct {
	Prompt string `json:"prompt"`
}

// chatResponse reports whether the assistant's structured update was applied
// to the trip. When it was, Trip carries the regenerated plan.
type chatResponse struct {
	Reply   string       `json:"reply"`
	Applied bool         `json:"applied"`
	Trip    *domain.Trip `json:"trip,omitempty"`
}

// Chat handles POST /api/chat. A usable assistant reply fully replaces the
// trip details and regenerates every derived section; when the assistant is
// unavailable or its reply cannot be used, the trip is left untouched and
// the response says so conversationally.
func (s *Server) Chat(w http.ResponseWriter, r *http.Request) {
	if s.assistant == nil {
		writeJSON(w, http.StatusInternalServerError, credentialBody())
		return
	}

	var req chatRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if strings.TrimSpace(req.Prompt) == "" {
		writeJSON(w, http.StatusUnprocessableEntity, requestBody("prompt is required"))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), chatTimeout)
	defer cancel()

	current := s.store.GetTrip()
	update := s.assistant.FetchSmartUpdate(ctx, current, req.Prompt)
	if update == nil {
		writeJSON(w, http.StatusOK, chatResponse{
			Reply:   "I'm having a little trouble planning right now. Could you try rephrasing that?",
			Applied: false,
		})
		return
	}

	trip, err := s.store.SetTripDetails(ctx, update.Details)
	if err != nil {
		s.log.WarnContext(ctx, "assistant update rejected by store", "error", err)
		writeJSON(w, http.StatusOK, chatResponse{
			Reply:   "I'm having a little trouble planning right now. Could you try rephrasing that?",
			Applied: false,
		})
		return
	}

	writeJSON(w, http.StatusOK, chatResponse{
		Reply:   update.ChatResponse,
		Applied: true,
		Trip:    trip,
	})
}
