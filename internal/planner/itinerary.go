package planner

import (
	"math/rand/v2"
	"strings"
	"time"

	"github.com/samber/lo"

	"github.com/mgagnon/travel-assistant/internal/domain"
)

// poolActivity is a row in the per-city activity pool.
type poolActivity struct {
	Title string
	Type  string
	Vibe  string
	Slot  string // Morning, Afternoon, Night, All Day
}

// activityPool is the canned per-city activity knowledge base.
var activityPool = map[string][]poolActivity{
	"tokyo": {
		{Title: "Senso-ji Temple", Type: "Culture", Vibe: "History", Slot: "Morning"},
		{Title: "Shibuya Crossing", Type: "Sightseeing", Vibe: "Urban", Slot: "Night"},
		{Title: "Tsukiji Outer Market", Type: "Food", Vibe: "Foodie", Slot: "Morning"},
		{Title: "TeamLab Planets", Type: "Art", Vibe: "Modern", Slot: "Afternoon"},
	},
	"kyoto": {
		{Title: "Fushimi Inari Shrine", Type: "Culture", Vibe: "History", Slot: "Morning"},
		{Title: "Arashiyama Bamboo Grove", Type: "Nature", Vibe: "Chill", Slot: "Afternoon"},
		{Title: "Kinkaku-ji", Type: "Culture", Vibe: "History", Slot: "Morning"},
	},
	"osaka": {
		{Title: "Dotonbori", Type: "Food", Vibe: "Foodie", Slot: "Night"},
		{Title: "Universal Studios", Type: "Fun", Vibe: "Adventure", Slot: "All Day"},
	},
	"paris": {
		{Title: "Eiffel Tower", Type: "Sightseeing", Vibe: "Romantic", Slot: "Night"},
		{Title: "Louvre Museum", Type: "Art", Vibe: "History", Slot: "Morning"},
	},
}

// intentActivity is one free-text-triggered special event.
type intentActivity struct {
	keywords []string
	title    string
	actType  string
	vibe     string
}

var intentActivities = []intentActivity{
	{keywords: []string{"dinner", "romantic"}, title: "Candlelit Dinner Reservation", actType: "Food", vibe: "Romantic"},
	{keywords: []string{"hike", "trek", "mountain"}, title: "Sunrise Hike", actType: "Nature", vibe: "Adventure"},
	{keywords: []string{"shop"}, title: "Afternoon Shopping Spree", actType: "Leisure", vibe: "Urban"},
	{keywords: []string{"museum", "art"}, title: "Private Gallery Tour", actType: "Culture", vibe: "History"},
	{keywords: []string{"party", "club"}, title: "VIP Nightclub Access", actType: "Nightlife", vibe: "Urban"},
}

// pickDay selects the day index for an intent activity. Swapped out in tests
// to pin the schedule.
var pickDay = func(days int) int { return rand.IntN(days) }

// GenerateItinerary distributes the per-city activity pool across the trip's
// days, two activities per day, filtered to matching vibes (falling back to
// the unfiltered pool when nothing matches), then injects intent-triggered
// activities on a pseudo-random day. The result is sorted ascending by
// (date, time).
func GenerateItinerary(details domain.TripDetails) []domain.Activity {
	days := details.Days()
	cities := details.Cities()
	itinerary := []domain.Activity{}
	if days == 0 || len(cities) == 0 {
		return itinerary
	}

	start, err := time.Parse(domain.DateLayout, details.StartDate)
	if err != nil {
		return itinerary
	}

	current := start
	daysPerCity := days / len(cities)

	for _, city := range cities {
		key := strings.ToLower(strings.TrimSpace(city))
		pool := activityPool[key]

		matching := lo.Filter(pool, func(a poolActivity, _ int) bool {
			return lo.Contains(details.Vibe, a.Vibe) || lo.Contains(details.Vibe, "All")
		})
		if len(matching) == 0 {
			matching = pool
		}

		for day := 0; day < daysPerCity; day++ {
			for _, act := range window(matching, day*2, 2) {
				itinerary = append(itinerary, domain.Activity{
					ID:       domain.NewID("ai"),
					Title:    act.Title,
					Date:     current.Format(domain.DateLayout),
					Time:     slotTime(act.Slot),
					Location: city,
					Type:     domain.ActivityGenerated,
				})
			}
			current = current.AddDate(0, 0, 1)
		}
	}

	intent := strings.ToLower(details.Intent)
	for _, special := range intentActivities {
		if !containsAny(intent, special.keywords...) {
			continue
		}
		dayIndex := pickDay(days)
		itinerary = append(itinerary, domain.Activity{
			ID:       domain.NewID("ai-intent"),
			Title:    special.title,
			Date:     start.AddDate(0, 0, dayIndex).Format(domain.DateLayout),
			Time:     "18:00",
			Location: cities[dayIndex%len(cities)],
			Type:     domain.ActivityIntent,
			Vibe:     special.vibe,
		})
	}

	domain.SortItinerary(itinerary)
	return itinerary
}

// window returns up to size elements of items starting at offset.
func window(items []poolActivity, offset, size int) []poolActivity {
	if offset >= len(items) {
		return nil
	}
	end := offset + size
	if end > len(items) {
		end = len(items)
	}
	return items[offset:end]
}

// slotTime maps a named slot to a clock time. Anything not Morning or
// Afternoon lands in the evening.
func slotTime(slot string) string {
	switch slot {
	case "Morning":
		return "10:00"
	case "Afternoon":
		return "14:00"
	default:
		return "19:00"
	}
}
