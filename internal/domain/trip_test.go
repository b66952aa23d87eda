package domain_test

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mgagnon/travel-assistant/internal/domain"
)

func TestTripDetails_Days(t *testing.T) {
	tests := []struct {
		name  string
		start string
		end   string
		want  int
	}{
		{"week long", "2026-03-10", "2026-03-17", 7},
		{"single night", "2026-03-10", "2026-03-11", 1},
		{"same day", "2026-03-10", "2026-03-10", 0},
		{"end before start", "2026-03-17", "2026-03-10", 0},
		{"bad start date", "not-a-date", "2026-03-10", 0},
		{"bad end date", "2026-03-10", "", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := domain.TripDetails{StartDate: tt.start, EndDate: tt.end}
			assert.Equal(t, tt.want, d.Days())
		})
	}
}

func TestTripDetails_Cities_PrefersStops(t *testing.T) {
	d := domain.TripDetails{
		Destination: "Japan",
		Stops:       []string{"Tokyo", "Kyoto", "Osaka"},
	}
	assert.Equal(t, []string{"Tokyo", "Kyoto", "Osaka"}, d.Cities())
}

func TestTripDetails_Cities_FallsBackToDestination(t *testing.T) {
	d := domain.TripDetails{Destination: "Tokyo, Japan"}
	assert.Equal(t, []string{"Tokyo"}, d.Cities())

	empty := domain.TripDetails{}
	assert.Nil(t, empty.Cities())
}

func TestTrip_Clone_IsDeep(t *testing.T) {
	trip := &domain.Trip{
		Destination: "Tokyo, Japan",
		Stops:       []string{"Tokyo"},
		Vibe:        []string{"Foodie"},
		Itinerary:   []domain.Activity{{ID: "ai-1", Title: "Senso-ji Temple"}},
		Checklist:   []domain.ChecklistItem{{ID: "base-1", Text: "Passport / ID"}},
		Budget: domain.Budget{
			Currency:  "USD",
			Expenses:  []domain.Expense{{ID: "exp-1", Amount: 40}},
			Estimated: &domain.Estimate{Min: 100, Max: 200, Currency: "USD"},
		},
		Recommendations: map[string]domain.Recommendations{
			"Tokyo": {Restaurants: []domain.Restaurant{{Name: "The View Lounge"}}},
		},
		Insights: []domain.Insight{{City: "Tokyo", Tips: []string{"Download offline maps."}}},
	}

	clone := trip.Clone()
	require.NotNil(t, clone)
	require.NotSame(t, trip, clone)

	clone.Stops[0] = "Osaka"
	clone.Itinerary[0].Title = "changed"
	clone.Checklist[0].Checked = true
	clone.Budget.Expenses[0].Amount = 999
	clone.Budget.Estimated.Min = -1
	clone.Insights[0].Tips[0] = "changed"

	assert.Equal(t, "Tokyo", trip.Stops[0])
	assert.Equal(t, "Senso-ji Temple", trip.Itinerary[0].Title)
	assert.False(t, trip.Checklist[0].Checked)
	assert.Equal(t, float64(40), trip.Budget.Expenses[0].Amount)
	assert.Equal(t, 100, trip.Budget.Estimated.Min)
	assert.Equal(t, "Download offline maps.", trip.Insights[0].Tips[0])
}

func TestTrip_Clone_Nil(t *testing.T) {
	var trip *domain.Trip
	assert.Nil(t, trip.Clone())
}

func TestTrip_Details_RoundTrip(t *testing.T) {
	trip := &domain.Trip{
		Destination: "Paris",
		Stops:       []string{"Paris"},
		StartDate:   "2026-05-01",
		EndDate:     "2026-05-08",
		Type:        domain.TypeLeisure,
		Vibe:        []string{"Romantic"},
		Intent:      "anniversary dinner",
	}

	d := trip.Details()
	assert.Equal(t, trip.Destination, d.Destination)
	assert.Equal(t, trip.StartDate, d.StartDate)
	assert.Equal(t, trip.EndDate, d.EndDate)
	assert.Equal(t, trip.Type, d.Type)
	assert.Equal(t, trip.Intent, d.Intent)

	// The derived slices must not alias the trip's.
	d.Stops[0] = "Lyon"
	assert.Equal(t, "Paris", trip.Stops[0])
}

func TestTrip_Details_NilTrip(t *testing.T) {
	var trip *domain.Trip
	assert.Equal(t, domain.TripDetails{}, trip.Details())
}

func TestBudget_TotalSpentAndRemaining(t *testing.T) {
	b := domain.Budget{
		Total: 1000,
		Expenses: []domain.Expense{
			{Amount: 250.50},
			{Amount: 100},
		},
	}
	assert.InDelta(t, 350.50, b.TotalSpent(), 0.001)
	assert.InDelta(t, 649.50, b.Remaining(), 0.001)
}

func TestBudget_Remaining_MayGoNegative(t *testing.T) {
	b := domain.Budget{Total: 50, Expenses: []domain.Expense{{Amount: 80}}}
	assert.InDelta(t, -30, b.Remaining(), 0.001)
}

func TestNewID_Format(t *testing.T) {
	id := domain.NewID("exp")
	require.True(t, strings.HasPrefix(id, "exp-"), "id %q should carry its prefix", id)
	assert.Len(t, id, len("exp-")+9)
	assert.NotEqual(t, id, domain.NewID("exp"))
}

func TestSortItinerary_ByDateThenTime(t *testing.T) {
	items := []domain.Activity{
		{ID: "c", Date: "2026-03-11", Time: "10:00"},
		{ID: "a", Date: "2026-03-10", Time: "19:00"},
		{ID: "b", Date: "2026-03-10", Time: "19:00"},
		{ID: "d", Date: "2026-03-10", Time: "09:00"},
	}

	domain.SortItinerary(items)

	var order []string
	for _, it := range items {
		order = append(order, it.ID)
	}
	// Stable sort keeps a before b on equal keys.
	assert.Equal(t, []string{"d", "a", "b", "c"}, order)
}

func TestOutcome_String(t *testing.T) {
	assert.Equal(t, "applied", domain.OutcomeApplied.String())
	assert.Equal(t, "no-trip", domain.OutcomeNoTrip.String())
	assert.Equal(t, "not-found", domain.OutcomeNotFound.String())
}

func TestDateLayout_RoundTrip(t *testing.T) {
	day, err := time.Parse(domain.DateLayout, "2026-03-10")
	require.NoError(t, err)
	assert.Equal(t, "2026-03-10", day.Format(domain.DateLayout))
}
