// Package store owns the in-memory trip record. It is the single source of
// truth: every mutation goes through it, is persisted whole immediately, and
// is fanned out synchronously to subscribers. Handlers hold one injected
// Store instance; a mutex preserves the single-writer invariant under
// concurrent HTTP requests.
package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/mgagnon/travel-assistant/internal/domain"
	"github.com/mgagnon/travel-assistant/internal/planner"
	"github.com/mgagnon/travel-assistant/internal/repo"
)

// StorageKey is the fixed key the serialized trip lives under. Absence of
// the key means no active trip.
const StorageKey = "travel_assistant_trip"

// Listener receives the trip after every committed mutation. It is called
// with a clone (nil after a clear) on the mutating goroutine.
type Listener func(*domain.Trip)

// Store is the exclusive owner of the Trip.
type Store struct {
	records repo.RecordRepo
	log     *slog.Logger
	now     func() time.Time

	mu      sync.Mutex
	trip    *domain.Trip
	subs    map[int]Listener
	nextSub int
}

// New constructs a Store backed by the provided record repo. Call Load
// before serving traffic to pick up a previously persisted trip.
func New(records repo.RecordRepo, log *slog.Logger) *Store {
	return &Store{
		records: records,
		log:     log,
		now:     time.Now,
		subs:    make(map[int]Listener),
	}
}

// Load reads the persisted record. A missing key means no active trip. A
// record that fails to parse is treated the same way: the corrupt document
// is logged and ignored rather than propagated as a startup fault, and the
// next successful write overwrites it.
func (s *Store) Load(ctx context.Context) error {
	data, err := s.records.Get(ctx, StorageKey)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil
		}
		return fmt.Errorf("store.Store.Load: %w", err)
	}

	var trip domain.Trip
	if err := json.Unmarshal([]byte(data), &trip); err != nil {
		s.log.Warn("persisted trip record is malformed; treating as absent", "error", err)
		return nil
	}

	s.mu.Lock()
	s.trip = &trip
	s.mu.Unlock()
	return nil
}

// GetTrip returns a clone of the current trip, or nil when none exists.
// No side effects.
func (s *Store) GetTrip() *domain.Trip {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.trip.Clone()
}

// SetTripDetails fully replaces the trip: every derived field is regenerated
// from the given details. Both the setup form and a successful AI update go
// through this path — the store cannot tell them apart. Persists and
// notifies.
func (s *Store) SetTripDetails(ctx context.Context, details domain.TripDetails) (*domain.Trip, error) {
	if err := validateDetails(details); err != nil {
		return nil, fmt.Errorf("store.Store.SetTripDetails: %w", err)
	}

	trip := planner.BuildTrip(details, s.now())

	s.mu.Lock()
	s.trip = &trip
	err := s.persistLocked(ctx)
	snapshot := s.trip.Clone()
	s.mu.Unlock()
	if err != nil {
		return nil, fmt.Errorf("store.Store.SetTripDetails: %w", err)
	}

	s.notify(snapshot)
	return snapshot, nil
}

// ToggleChecklistItem flips the checked state of the item with the given id.
func (s *Store) ToggleChecklistItem(ctx context.Context, id string) (domain.Outcome, error) {
	return s.mutate(ctx, func(t *domain.Trip) domain.Outcome {
		for i := range t.Checklist {
			if t.Checklist[i].ID == id {
				t.Checklist[i].Checked = !t.Checklist[i].Checked
				return domain.OutcomeApplied
			}
		}
		return domain.OutcomeNotFound
	})
}

// AddChecklistItem appends a new unchecked item. Category defaults to
// "Custom". No text-uniqueness check is applied on this path; dedupe is a
// generation-time property only.
func (s *Store) AddChecklistItem(ctx context.Context, text, category string) (domain.Outcome, error) {
	if category == "" {
		category = "Custom"
	}
	return s.mutate(ctx, func(t *domain.Trip) domain.Outcome {
		t.Checklist = append(t.Checklist, domain.ChecklistItem{
			ID:       domain.NewID("custom"),
			Text:     text,
			Category: category,
			Checked:  false,
		})
		return domain.OutcomeApplied
	})
}

// DeleteChecklistItem removes the item with the given id.
func (s *Store) DeleteChecklistItem(ctx context.Context, id string) (domain.Outcome, error) {
	return s.mutate(ctx, func(t *domain.Trip) domain.Outcome {
		kept := t.Checklist[:0]
		for _, item := range t.Checklist {
			if item.ID != id {
				kept = append(kept, item)
			}
		}
		if len(kept) == len(t.Checklist) {
			return domain.OutcomeNotFound
		}
		t.Checklist = kept
		return domain.OutcomeApplied
	})
}

// AddItineraryItem inserts an activity with a fresh id and resorts the
// itinerary ascending by (date, time).
func (s *Store) AddItineraryItem(ctx context.Context, item domain.Activity) (domain.Outcome, error) {
	return s.mutate(ctx, func(t *domain.Trip) domain.Outcome {
		item.ID = domain.NewID("itin")
		t.Itinerary = append(t.Itinerary, item)
		domain.SortItinerary(t.Itinerary)
		return domain.OutcomeApplied
	})
}

// DeleteItineraryItem removes the activity with the given id.
func (s *Store) DeleteItineraryItem(ctx context.Context, id string) (domain.Outcome, error) {
	return s.mutate(ctx, func(t *domain.Trip) domain.Outcome {
		kept := t.Itinerary[:0]
		for _, item := range t.Itinerary {
			if item.ID != id {
				kept = append(kept, item)
			}
		}
		if len(kept) == len(t.Itinerary) {
			return domain.OutcomeNotFound
		}
		t.Itinerary = kept
		return domain.OutcomeApplied
	})
}

// SetBudgetTotal overwrites the budget total and currency. Currency defaults
// to "USD". A zero-value budget is normalized to the default first.
func (s *Store) SetBudgetTotal(ctx context.Context, amount float64, currency string) (domain.Outcome, error) {
	if currency == "" {
		currency = "USD"
	}
	return s.mutate(ctx, func(t *domain.Trip) domain.Outcome {
		if t.Budget.Expenses == nil {
			t.Budget = domain.DefaultBudget()
		}
		t.Budget.Total = amount
		t.Budget.Currency = currency
		return domain.OutcomeApplied
	})
}

// AddExpense appends an expense with a generated id and the current
// timestamp. The amount is recorded as given; positivity is expected but
// not enforced.
func (s *Store) AddExpense(ctx context.Context, expense domain.Expense) (domain.Outcome, error) {
	return s.mutate(ctx, func(t *domain.Trip) domain.Outcome {
		if t.Budget.Expenses == nil {
			t.Budget = domain.DefaultBudget()
		}
		expense.ID = domain.NewID("exp")
		expense.Date = s.now().UTC()
		t.Budget.Expenses = append(t.Budget.Expenses, expense)
		return domain.OutcomeApplied
	})
}

// DeleteExpense removes the expense with the given id. Deleting an already
// deleted id reports not-found and leaves state untouched, so the call is
// idempotent.
func (s *Store) DeleteExpense(ctx context.Context, id string) (domain.Outcome, error) {
	return s.mutate(ctx, func(t *domain.Trip) domain.Outcome {
		kept := t.Budget.Expenses[:0]
		for _, e := range t.Budget.Expenses {
			if e.ID != id {
				kept = append(kept, e)
			}
		}
		if len(kept) == len(t.Budget.Expenses) {
			return domain.OutcomeNotFound
		}
		t.Budget.Expenses = kept
		return domain.OutcomeApplied
	})
}

// ClearTrip destroys the trip and erases the persisted record. Notifies with
// nil.
func (s *Store) ClearTrip(ctx context.Context) error {
	s.mu.Lock()
	s.trip = nil
	err := s.records.Remove(ctx, StorageKey)
	s.mu.Unlock()
	if err != nil {
		return fmt.Errorf("store.Store.ClearTrip: %w", err)
	}

	s.notify(nil)
	return nil
}

// Subscribe registers a listener for committed mutations and returns its
// unsubscribe function. Fan-out is synchronous and unordered.
func (s *Store) Subscribe(fn Listener) func() {
	s.mu.Lock()
	id := s.nextSub
	s.nextSub++
	s.subs[id] = fn
	s.mu.Unlock()

	return func() {
		s.mu.Lock()
		delete(s.subs, id)
		s.mu.Unlock()
	}
}

// mutate runs fn against the current trip under the lock. No trip means the
// mutation is skipped (the safe no-op policy). Applied mutations are
// persisted before the lock is released and fanned out after.
func (s *Store) mutate(ctx context.Context, fn func(*domain.Trip) domain.Outcome) (domain.Outcome, error) {
	s.mu.Lock()
	if s.trip == nil {
		s.mu.Unlock()
		return domain.OutcomeNoTrip, nil
	}

	outcome := fn(s.trip)
	if outcome != domain.OutcomeApplied {
		s.mu.Unlock()
		return outcome, nil
	}

	err := s.persistLocked(ctx)
	snapshot := s.trip.Clone()
	s.mu.Unlock()
	if err != nil {
		return outcome, fmt.Errorf("store.Store.mutate: %w", err)
	}

	s.notify(snapshot)
	return outcome, nil
}

// persistLocked serializes the whole trip and writes it under the fixed key.
// Callers must hold s.mu.
func (s *Store) persistLocked(ctx context.Context) error {
	data, err := json.Marshal(s.trip)
	if err != nil {
		return err
	}
	return s.records.Set(ctx, StorageKey, string(data))
}

// notify fans out the snapshot to all current subscribers on the calling
// goroutine. Listeners are copied out first so a listener may unsubscribe
// itself without deadlocking.
func (s *Store) notify(snapshot *domain.Trip) {
	s.mu.Lock()
	listeners := make([]Listener, 0, len(s.subs))
	for _, fn := range s.subs {
		listeners = append(listeners, fn)
	}
	s.mu.Unlock()

	for _, fn := range listeners {
		fn(snapshot)
	}
}

// validateDetails enforces the replacement preconditions.
//   - Destination must be non-empty (whitespace-only is rejected).
//   - Both dates must parse and satisfy startDate <= endDate.
func validateDetails(details domain.TripDetails) error {
	if strings.TrimSpace(details.Destination) == "" {
		return fmt.Errorf("%w: destination is required", domain.ErrValidation)
	}
	start, err := time.Parse(domain.DateLayout, details.StartDate)
	if err != nil {
		return fmt.Errorf("%w: startDate must be YYYY-MM-DD", domain.ErrValidation)
	}
	end, err := time.Parse(domain.DateLayout, details.EndDate)
	if err != nil {
		return fmt.Errorf("%w: endDate must be YYYY-MM-DD", domain.ErrValidation)
	}
	if end.Before(start) {
		return fmt.Errorf("%w: endDate must not be before startDate", domain.ErrValidation)
	}
	return nil
}
