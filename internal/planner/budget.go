package planner

import (
	"math"
	"strings"

	"github.com/samber/lo"

	"github.com/mgagnon/travel-assistant/internal/domain"
)

// expensiveCities marks the high-cost tier (roughly double the daily rate).
var expensiveCities = []string{"tokyo", "london", "paris", "new york", "singapore", "dubai", "zurich", "iceland"}

const (
	moderateDailyRate  = 120
	expensiveDailyRate = 220
)

// EstimateBudget returns a pre-trip cost range: day count times a per-day
// rate adjusted for destination cost tier and trip type, with a ±20% band
// around the midpoint. Display figure only — independent of the user-set
// budget total. Returns nil when the dates are unusable.
func EstimateBudget(details domain.TripDetails) *domain.Estimate {
	days := details.Days()
	if days == 0 {
		return nil
	}

	cities := details.Cities()
	rate := float64(moderateDailyRate)

	expensive := lo.SomeBy(cities, func(c string) bool {
		return containsAny(strings.ToLower(c), expensiveCities...)
	})
	if expensive {
		rate = expensiveDailyRate
	}

	switch details.Type {
	case domain.TypeLeisure:
		rate *= 1.2
	case domain.TypeAdventure:
		// Camping and hostels run cheaper.
		rate *= 0.8
	}

	return &domain.Estimate{
		Min:      int(math.Round(rate * float64(days) * 0.8)),
		Max:      int(math.Round(rate * float64(days) * 1.2)),
		Currency: "USD",
	}
}
