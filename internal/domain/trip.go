// Package domain contains the core data types for the Travel Assistant API.
// This package has zero external dependencies beyond uuid and is imported by
// every other internal package (repo, store, planner, assist, handler).
package domain

import (
	"slices"
	"strings"
	"time"
)

// Trip type values accepted by the setup form and the AI update payload.
const (
	TypeLeisure   = "leisure"
	TypeBusiness  = "business"
	TypeAdventure = "adventure"
)

// DateLayout is the calendar-date format used everywhere in the trip record.
// Dates are kept as strings so the record round-trips through the persisted
// JSON document and the model payload without timezone drift.
const DateLayout = "2006-01-02"

// Trip is the single user-owned planning record. At most one Trip exists at
// a time; it is owned exclusively by the store and persisted whole.
type Trip struct {
	Destination     string                     `json:"destination"`
	Stops           []string                   `json:"stops"`
	StartDate       string                     `json:"startDate"`
	EndDate         string                     `json:"endDate"`
	Type            string                     `json:"type"`
	Vibe            []string                   `json:"vibe"`
	Intent          string                     `json:"intent,omitempty"`
	Itinerary       []Activity                 `json:"itinerary"`
	Checklist       []ChecklistItem            `json:"checklist"`
	Budget          Budget                     `json:"budget"`
	Recommendations map[string]Recommendations `json:"recommendations,omitempty"`
	Insights        []Insight                  `json:"insights,omitempty"`
	CreatedAt       time.Time                  `json:"createdAt"`
}

// TripDetails is the input to a full trip replacement: the setup-form
// submission, or the merged result of an AI update. Both paths are
// indistinguishable to the store.
type TripDetails struct {
	Destination string   `json:"destination"`
	Stops       []string `json:"stops"`
	StartDate   string   `json:"startDate"`
	EndDate     string   `json:"endDate"`
	Type        string   `json:"type"`
	Vibe        []string `json:"vibe"`
	Intent      string   `json:"intent"`
}

// Cities returns the stop list, falling back to the first comma-separated
// segment of the destination label when no stops were selected.
func (d TripDetails) Cities() []string {
	if len(d.Stops) > 0 {
		return d.Stops
	}
	first := strings.TrimSpace(strings.Split(d.Destination, ",")[0])
	if first == "" {
		return nil
	}
	return []string{first}
}

// Days returns the whole-day span between the start and end dates, matching
// ceil((end-start)/24h). A same-day trip has zero days and generates an
// empty itinerary. Returns 0 for unparseable dates.
func (d TripDetails) Days() int {
	start, err := time.Parse(DateLayout, d.StartDate)
	if err != nil {
		return 0
	}
	end, err := time.Parse(DateLayout, d.EndDate)
	if err != nil {
		return 0
	}
	hours := end.Sub(start).Hours()
	if hours <= 0 {
		return 0
	}
	days := int(hours / 24)
	if hours > float64(days*24) {
		days++
	}
	return days
}

// Clone returns a deep copy of the trip. The store hands out clones so a
// caller can never mutate the owned record behind the store's back.
func (t *Trip) Clone() *Trip {
	if t == nil {
		return nil
	}
	c := *t
	c.Stops = slices.Clone(t.Stops)
	c.Vibe = slices.Clone(t.Vibe)
	c.Itinerary = slices.Clone(t.Itinerary)
	c.Checklist = slices.Clone(t.Checklist)
	c.Budget = t.Budget.clone()
	if t.Recommendations != nil {
		c.Recommendations = make(map[string]Recommendations, len(t.Recommendations))
		for city, recs := range t.Recommendations {
			c.Recommendations[city] = recs.clone()
		}
	}
	c.Insights = make([]Insight, len(t.Insights))
	for i, ins := range t.Insights {
		c.Insights[i] = ins
		c.Insights[i].Tips = slices.Clone(ins.Tips)
	}
	return &c
}

// Details re-derives the replacement input from an existing trip. Used when
// merging a partial AI payload onto the current record.
func (t *Trip) Details() TripDetails {
	if t == nil {
		return TripDetails{}
	}
	return TripDetails{
		Destination: t.Destination,
		Stops:       slices.Clone(t.Stops),
		StartDate:   t.StartDate,
		EndDate:     t.EndDate,
		Type:        t.Type,
		Vibe:        slices.Clone(t.Vibe),
		Intent:      t.Intent,
	}
}

// Recommendations holds the templated per-city suggestion lists.
type Recommendations struct {
	Restaurants []Restaurant `json:"restaurants"`
	Experiences []Experience `json:"experiences"`
}

func (r Recommendations) clone() Recommendations {
	return Recommendations{
		Restaurants: slices.Clone(r.Restaurants),
		Experiences: slices.Clone(r.Experiences),
	}
}

// Restaurant is one dining recommendation for a city.
type Restaurant struct {
	Name    string  `json:"name"`
	Cuisine string  `json:"cuisine"`
	Rating  float64 `json:"rating"`
}

// Experience is one activity recommendation for a city.
type Experience struct {
	Title    string `json:"title"`
	Duration string `json:"duration"`
}
