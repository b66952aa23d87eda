package domain

import (
	"slices"
	"time"
)

// Budget tracks the user-set total and the running expense list. The spent
// and remaining figures are derived on read, never stored.
type Budget struct {
	Total     float64   `json:"total"`
	Currency  string    `json:"currency"`
	Expenses  []Expense `json:"expenses"`
	Estimated *Estimate `json:"estimated,omitempty"`
}

// Estimate is the heuristic pre-trip cost range. It is a display figure only
// and independent of the user-set total.
type Estimate struct {
	Min      int    `json:"min"`
	Max      int    `json:"max"`
	Currency string `json:"currency"`
}

// Expense is a single logged spend. Amount is expected positive but not
// validated here; the HTTP layer rejects non-positive amounts.
type Expense struct {
	ID          string    `json:"id"`
	Description string    `json:"description"`
	Amount      float64   `json:"amount"`
	Category    string    `json:"category"`
	Date        time.Time `json:"date"`
}

// DefaultBudget returns the zero-value budget attached to a fresh trip.
func DefaultBudget() Budget {
	return Budget{Total: 0, Currency: "USD", Expenses: []Expense{}}
}

// TotalSpent sums all logged expenses.
func (b Budget) TotalSpent() float64 {
	var sum float64
	for _, e := range b.Expenses {
		sum += e.Amount
	}
	return sum
}

// Remaining is the user-set total minus everything spent. Recalculated on
// every call; may be negative.
func (b Budget) Remaining() float64 {
	return b.Total - b.TotalSpent()
}

func (b Budget) clone() Budget {
	c := b
	c.Expenses = slices.Clone(b.Expenses)
	if b.Estimated != nil {
		est := *b.Estimated
		c.Estimated = &est
	}
	return c
}
