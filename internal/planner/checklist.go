package planner

import (
	"fmt"
	"strings"

	"github.com/samber/lo"

	"github.com/mgagnon/travel-assistant/internal/domain"
)

// baseItems go on every checklist regardless of trip parameters.
var baseItems = []domain.ChecklistItem{
	{ID: "base-1", Text: "Passport / ID", Category: "Essentials", Reason: "Travel requirement"},
	{ID: "base-2", Text: "Wallet & Credit Cards", Category: "Essentials", Reason: "Payments"},
	{ID: "base-3", Text: "Phone & Charger", Category: "Electronics", Reason: "Communication"},
	{ID: "base-4", Text: "Toiletries Kit", Category: "Toiletries", Reason: "Hygiene"},
	{ID: "base-5", Text: "Underwear (Daily + Extra)", Category: "Clothing", Reason: "Daily Wear"},
	{ID: "base-6", Text: "Socks", Category: "Clothing", Reason: "Daily Wear"},
}

var leisureItems = []domain.ChecklistItem{
	{ID: "leis-1", Text: "Comfortable Walking Shoes", Category: "Clothing", Reason: "Walking Tours"},
	{ID: "leis-2", Text: "Camera", Category: "Electronics", Reason: "Capturing memories"},
	{ID: "leis-3", Text: "Sunglasses", Category: "Accessories", Reason: "Sun protection"},
}

var businessItems = []domain.ChecklistItem{
	{ID: "bus-1", Text: "Laptop & Charger", Category: "Electronics", Reason: "Work"},
	{ID: "bus-2", Text: "Formal Wear / Suit", Category: "Clothing", Reason: "Meetings"},
	{ID: "bus-3", Text: "Business Cards", Category: "Essentials", Reason: "Networking"},
}

var adventureItems = []domain.ChecklistItem{
	{ID: "adv-1", Text: "Hiking Boots", Category: "Clothing", Reason: "Trekking"},
	{ID: "adv-2", Text: "First Aid Kit", Category: "Essentials", Reason: "Safety"},
	{ID: "adv-3", Text: "Backpack / Daypack", Category: "Accessories", Reason: "Carrying gear"},
	{ID: "adv-4", Text: "Rain Jacket", Category: "Clothing", Reason: "Weather protection"},
}

// weatherItems maps a climate bucket to the extra gear it demands.
var weatherItems = map[string][]domain.ChecklistItem{
	"cold": {
		{ID: "w-1", Text: "Heavy Coat", Category: "Clothing", Reason: "Cold Weather"},
		{ID: "w-2", Text: "Thermal Layers", Category: "Clothing", Reason: "Low Temperatures"},
		{ID: "w-3", Text: "Gloves & Beanie", Category: "Clothing", Reason: "Cold Weather"},
	},
	"hot": {
		{ID: "w-4", Text: "Swimsuit", Category: "Clothing", Reason: "Beach/Pool"},
		{ID: "w-5", Text: "Sunscreen", Category: "Toiletries", Reason: "UV Protection"},
		{ID: "w-6", Text: "Hat / Cap", Category: "Accessories", Reason: "Sun"},
	},
	"rain": {
		{ID: "w-7", Text: "Umbrella", Category: "Accessories", Reason: "Rainy Forecast"},
		{ID: "w-8", Text: "Waterproof Shoes", Category: "Clothing", Reason: "Rainy Forecast"},
	},
}

// GenerateChecklist builds the packing list for a trip: base items with
// day-scaled quantities, trip-type additions, destination-keyword climate
// additions, forecast-condition additions, and intent-keyword additions,
// deduplicated by text. Every returned item is unchecked and carries a
// stable unique id.
func GenerateChecklist(details domain.TripDetails, weather *domain.Weather) []domain.ChecklistItem {
	days := details.Days()

	items := append([]domain.ChecklistItem(nil), baseItems...)

	// Pack spares: days plus two of each.
	for i := range items {
		switch {
		case strings.Contains(items[i].Text, "Underwear"):
			items[i].Text = fmt.Sprintf("Underwear (%d pairs)", days+2)
		case strings.Contains(items[i].Text, "Socks"):
			items[i].Text = fmt.Sprintf("Socks (%d pairs)", days+2)
		}
	}

	switch details.Type {
	case domain.TypeLeisure:
		items = append(items, leisureItems...)
	case domain.TypeBusiness:
		items = append(items, businessItems...)
	case domain.TypeAdventure:
		items = append(items, adventureItems...)
	}

	dest := strings.ToLower(details.Destination)
	if containsAny(dest, "beach", "hawaii", "cancun") {
		items = append(items, weatherItems["hot"]...)
	}
	if containsAny(dest, "snow", "alps", "winter") {
		items = append(items, weatherItems["cold"]...)
	}
	if containsAny(dest, "london", "seattle") {
		items = append(items, weatherItems["rain"]...)
	}

	if weather != nil {
		cond := strings.ToLower(weather.Condition)
		if containsAny(cond, "rain", "cloudy") {
			items = append(items, weatherItems["rain"]...)
		}
		if containsAny(cond, "sun", "hot") {
			items = append(items, weatherItems["hot"]...)
		}
	}

	intent := strings.ToLower(details.Intent)
	if containsAny(intent, "hiking", "trek") {
		items = append(items,
			domain.ChecklistItem{ID: "int-1", Text: "Hiking Boots", Category: "Clothing", Reason: "Hiking Intent"},
			domain.ChecklistItem{ID: "int-2", Text: "Water Bottle", Category: "Accessories", Reason: "Hiking Intent"},
		)
	}
	if containsAny(intent, "dinner", "formal", "date") {
		items = append(items, domain.ChecklistItem{ID: "int-3", Text: "Formal/Evening Wear", Category: "Clothing", Reason: "Formal Plans"})
	}
	if containsAny(intent, "swim", "pool") {
		items = append(items, domain.ChecklistItem{ID: "int-4", Text: "Swimsuit", Category: "Clothing", Reason: "Swimming Intent"})
	}

	// First occurrence wins on duplicate text.
	items = lo.UniqBy(items, func(it domain.ChecklistItem) string { return it.Text })

	return lo.Map(items, func(it domain.ChecklistItem, _ int) domain.ChecklistItem {
		it.Checked = false
		if it.ID == "" {
			it.ID = domain.NewID("gen")
		}
		return it
	})
}

func containsAny(s string, keywords ...string) bool {
	for _, kw := range keywords {
		if strings.Contains(s, kw) {
			return true
		}
	}
	return false
}
