package planner

import (
	"fmt"
	"strings"

	"github.com/mgagnon/travel-assistant/internal/domain"
)

// GenerateInsights produces one commentary record per city, colored by the
// free-text intent and the canned forecast.
func GenerateInsights(details domain.TripDetails) []domain.Insight {
	cities := details.Stops
	if len(cities) == 0 {
		cities = []string{details.Destination}
	}
	intent := strings.ToLower(details.Intent)

	insights := make([]domain.Insight, 0, len(cities))
	for _, city := range cities {
		commentary := fmt.Sprintf("Get ready for %s!", city)
		if strings.Contains(intent, "romantic") {
			commentary = fmt.Sprintf("Romantic vibes in %s.", city)
		}
		if strings.Contains(intent, "adventure") {
			commentary = fmt.Sprintf("Adventure awaits in %s.", city)
		}

		secondTip := "Check transport passes."
		if strings.Contains(intent, "food") {
			secondTip = "Book dinner early."
		}

		insights = append(insights, domain.Insight{
			City:       city,
			Weather:    LookupWeather(city),
			Commentary: commentary,
			Tips:       []string{"Download offline maps.", secondTip},
		})
	}
	return insights
}
