package planner

import (
	"fmt"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/mgagnon/travel-assistant/internal/domain"
)

var titleCaser = cases.Title(language.English)

// GenerateRecommendations returns the templated per-city restaurant and
// experience lists, keyed by the city label as the user entered it.
func GenerateRecommendations(details domain.TripDetails) map[string]domain.Recommendations {
	cities := details.Stops
	if len(cities) == 0 {
		cities = []string{details.Destination}
	}

	recs := make(map[string]domain.Recommendations, len(cities))
	for _, city := range cities {
		display := titleCaser.String(city)
		recs[city] = domain.Recommendations{
			Restaurants: []domain.Restaurant{
				{Name: fmt.Sprintf("Top Rated in %s", display), Cuisine: "Local Cuisine", Rating: 4.7},
				{Name: fmt.Sprintf("%s Street Food", display), Cuisine: "Street Food", Rating: 4.5},
				{Name: "The View Lounge", Cuisine: "International", Rating: 4.4},
			},
			Experiences: []domain.Experience{
				{Title: fmt.Sprintf("%s Walking Tour", display), Duration: "3h"},
				{Title: "Local Cooking Class", Duration: "2h"},
				{Title: "Historic Sites", Duration: "4h"},
			},
		}
	}
	return recs
}
