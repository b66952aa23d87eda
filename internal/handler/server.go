// Package handler implements the HTTP handlers for the Travel Assistant API.
// All handlers are methods on Server. Methods are split into domain-specific
// files (trip.go, checklist.go, chat.go, ...) but all share the same Server
// struct so they can access its dependencies.
package handler

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/mgagnon/travel-assistant/internal/assist"
	"github.com/mgagnon/travel-assistant/internal/domain"
	"github.com/mgagnon/travel-assistant/spec"
)

// TripStore defines the store operations the handlers depend on. Defining
// the interface here (in the consumer package) follows the Go convention:
// "accept interfaces, return concrete types". It lets handler tests inject
// a mock without touching the database or store layer.
type TripStore interface {
	GetTrip() *domain.Trip
	SetTripDetails(ctx context.Context, details domain.TripDetails) (*domain.Trip, error)
	ClearTrip(ctx context.Context) error
	ToggleChecklistItem(ctx context.Context, id string) (domain.Outcome, error)
	AddChecklistItem(ctx context.Context, text, category string) (domain.Outcome, error)
	DeleteChecklistItem(ctx context.Context, id string) (domain.Outcome, error)
	AddItineraryItem(ctx context.Context, item domain.Activity) (domain.Outcome, error)
	DeleteItineraryItem(ctx context.Context, id string) (domain.Outcome, error)
	SetBudgetTotal(ctx context.Context, amount float64, currency string) (domain.Outcome, error)
	AddExpense(ctx context.Context, expense domain.Expense) (domain.Outcome, error)
	DeleteExpense(ctx context.Context, id string) (domain.Outcome, error)
}

// Assistant is the smart-update dependency. A nil Assistant on the Server
// means no provider credential is configured; the chat endpoint reports
// that instead of the server failing to boot.
type Assistant interface {
	FetchSmartUpdate(ctx context.Context, current *domain.Trip, prompt string) *assist.Update
}

// Server holds the handler dependencies for all API endpoints.
type Server struct {
	store     TripStore
	assistant Assistant
	log       *slog.Logger
}

// NewServer constructs the Server with all its dependencies.
// assistant may be nil when no AI credential is configured.
func NewServer(store TripStore, assistant Assistant, log *slog.Logger) *Server {
	return &Server{store: store, assistant: assistant, log: log}
}

// Routes returns the chi router for the API surface.
func (s *Server) Routes() chi.Router {
	r := chi.NewRouter()

	r.Get("/healthz", s.GetHealth)
	r.Get("/openapi.yaml", s.GetOpenAPI)

	r.Route("/api", func(r chi.Router) {
		r.Get("/trip", s.GetTrip)
		r.Post("/trip", s.SetTrip)
		r.Delete("/trip", s.ClearTrip)

		r.Post("/trip/checklist", s.AddChecklistItem)
		r.Post("/trip/checklist/{id}/toggle", s.ToggleChecklistItem)
		r.Delete("/trip/checklist/{id}", s.DeleteChecklistItem)

		r.Post("/trip/itinerary", s.AddItineraryItem)
		r.Delete("/trip/itinerary/{id}", s.DeleteItineraryItem)
		r.Get("/trip/itinerary.ics", s.ExportItinerary)

		r.Get("/trip/budget", s.GetBudget)
		r.Put("/trip/budget", s.SetBudgetTotal)
		r.Post("/trip/expenses", s.AddExpense)
		r.Delete("/trip/expenses/{id}", s.DeleteExpense)

		r.Post("/chat", s.Chat)
	})

	return r
}

// GetHealth handles GET /healthz.
// It returns HTTP 200 with {"status":"ok"} when the server is running.
func (s *Server) GetHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// GetOpenAPI serves the embedded OpenAPI document, keeping the spec and the
// running code in sync.
func (s *Server) GetOpenAPI(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/yaml")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(spec.OpenAPI)
}

// writeJSON encodes v as the response body with the given status.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// decodeJSON decodes the request body into v, returning false after writing
// a 400 when the body is missing or malformed.
func decodeJSON(w http.ResponseWriter, r *http.Request, v any) bool {
	if r.Body == nil {
		writeJSON(w, http.StatusBadRequest, requestBody("request body is required"))
		return false
	}
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		writeJSON(w, http.StatusBadRequest, requestBody("invalid request body"))
		return false
	}
	return true
}
