package handler

import (
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/mgagnon/travel-assistant/internal/domain"
)

// budgetResponse augments the stored budget with the derived totals. Spent
// and remaining are computed per read, never persisted.
type budgetResponse struct {
	domain.Budget
	TotalSpent float64 `json:"totalSpent"`
	Remaining  float64 `json:"remaining"`
}

type setBudgetRequest struct {
	Total    float64 `json:"total"`
	Currency string  `json:"currency"`
}

type addExpenseRequest struct {
	Description string  `json:"description"`
	Amount      float64 `json:"amount"`
	Category    string  `json:"category"`
}

// GetBudget handles GET /api/trip/budget.
func (s *Server) GetBudget(w http.ResponseWriter, r *http.Request) {
	trip := s.store.GetTrip()
	if trip == nil {
		writeJSON(w, http.StatusNotFound, notFoundBody("no active trip"))
		return
	}
	writeJSON(w, http.StatusOK, budgetResponse{
		Budget:     trip.Budget,
		TotalSpent: trip.Budget.TotalSpent(),
		Remaining:  trip.Budget.Remaining(),
	})
}

// SetBudgetTotal handles PUT /api/trip/budget.
func (s *Server) SetBudgetTotal(w http.ResponseWriter, r *http.Request) {
	var req setBudgetRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if req.Total < 0 {
		writeJSON(w, http.StatusUnprocessableEntity, requestBody("total must not be negative"))
		return
	}

	outcome, err := s.store.SetBudgetTotal(r.Context(), req.Total, req.Currency)
	if err != nil {
		s.serverError(w, r, err)
		return
	}
	s.writeOutcome(w, outcome, "budget")
}

// AddExpense handles POST /api/trip/expenses. The store assigns the id and
// timestamps the expense.
func (s *Server) AddExpense(w http.ResponseWriter, r *http.Request) {
	var req addExpenseRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if strings.TrimSpace(req.Description) == "" {
		writeJSON(w, http.StatusUnprocessableEntity, requestBody("description is required"))
		return
	}
	if req.Amount <= 0 {
		writeJSON(w, http.StatusUnprocessableEntity, requestBody("amount must be positive"))
		return
	}

	outcome, err := s.store.AddExpense(r.Context(), domain.Expense{
		Description: req.Description,
		Amount:      req.Amount,
		Category:    req.Category,
	})
	if err != nil {
		s.serverError(w, r, err)
		return
	}
	s.writeOutcome(w, outcome, "expense")
}

// DeleteExpense handles DELETE /api/trip/expenses/{id}.
func (s *Server) DeleteExpense(w http.ResponseWriter, r *http.Request) {
	outcome, err := s.store.DeleteExpense(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		s.serverError(w, r, err)
		return
	}
	s.writeOutcome(w, outcome, "expense")
}
