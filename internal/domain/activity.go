package domain

import "sort"

// Activity kind markers. Heuristic-generated entries carry ActivityGenerated,
// intent-triggered entries ActivityIntent; user-added entries keep whatever
// the caller supplied.
const (
	ActivityGenerated = "AI_GENERATED"
	ActivityIntent    = "AI_INTENT"
)

// Activity is a single itinerary entry. Identity is the ID; the (Date, Time)
// pair forms the sort key. Titles are not unique.
type Activity struct {
	ID       string `json:"id"`
	Title    string `json:"title"`
	Date     string `json:"date"` // "2006-01-02"
	Time     string `json:"time"` // "15:04", 24-hour
	Location string `json:"location,omitempty"`
	Type     string `json:"type,omitempty"`
	Vibe     string `json:"vibe,omitempty"`
}

// sortKey is the lexicographic (date, time) key. Both components are
// zero-padded fixed-width strings, so string order equals chronological order.
func (a Activity) sortKey() string {
	return a.Date + " " + a.Time
}

// SortItinerary orders activities ascending by (date, time) in place.
// The sort is stable so same-slot activities keep their insertion order.
func SortItinerary(items []Activity) {
	sort.SliceStable(items, func(i, j int) bool {
		return items[i].sortKey() < items[j].sortKey()
	})
}
