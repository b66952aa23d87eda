// Package planner derives trip content from the setup parameters: packing
// checklist, itinerary, recommendations, insights, and the budget estimate.
// The generators are rule tables, not learned models — deterministic except
// for generated ids and the day chosen for intent-triggered activities.
package planner

import (
	"time"

	"github.com/mgagnon/travel-assistant/internal/domain"
)

// BuildTrip assembles a complete trip record from the replacement input.
// Every derived field is recomputed from scratch; nothing from a previous
// trip survives.
func BuildTrip(details domain.TripDetails, now time.Time) domain.Trip {
	vibe := details.Vibe
	if len(vibe) == 0 {
		vibe = []string{"All"}
	}

	cities := details.Cities()
	weather := LookupWeather(first(cities))

	return domain.Trip{
		Destination:     details.Destination,
		Stops:           details.Stops,
		StartDate:       details.StartDate,
		EndDate:         details.EndDate,
		Type:            details.Type,
		Vibe:            vibe,
		Intent:          details.Intent,
		Checklist:       GenerateChecklist(details, &weather),
		Itinerary:       GenerateItinerary(details),
		Recommendations: GenerateRecommendations(details),
		Insights:        GenerateInsights(details),
		Budget: domain.Budget{
			Total:     0,
			Currency:  "USD",
			Expenses:  []domain.Expense{},
			Estimated: EstimateBudget(details),
		},
		CreatedAt: now.UTC(),
	}
}

func first(items []string) string {
	if len(items) == 0 {
		return ""
	}
	return items[0]
}
