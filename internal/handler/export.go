package handler

import (
	"net/http"
	"time"

	ics "github.com/arran4/golang-ical"

	"github.com/mgagnon/travel-assistant/internal/domain"
)

// ExportItinerary handles GET /api/trip/itinerary.ics. It renders the
// current itinerary as an iCalendar feed so the plan can be imported into
// any calendar application. Activities without a parseable time get an
// all-day event.
func (s *Server) ExportItinerary(w http.ResponseWriter, r *http.Request) {
	trip := s.store.GetTrip()
	if trip == nil {
		writeJSON(w, http.StatusNotFound, notFoundBody("no active trip"))
		return
	}

	cal := ics.NewCalendar()
	cal.SetMethod(ics.MethodPublish)
	cal.SetProductId("-//travel-assistant//itinerary//EN")

	for _, item := range trip.Itinerary {
		event := cal.AddEvent(item.ID + "@travel-assistant")
		event.SetSummary(item.Title)
		if item.Location != "" {
			event.SetLocation(item.Location)
		}

		start, err := time.Parse(domain.DateLayout+" 15:04", item.Date+" "+item.Time)
		if err != nil {
			day, dayErr := time.Parse(domain.DateLayout, item.Date)
			if dayErr != nil {
				continue
			}
			event.SetAllDayStartAt(day)
			event.SetAllDayEndAt(day.AddDate(0, 0, 1))
			continue
		}
		event.SetStartAt(start)
		event.SetEndAt(start.Add(time.Hour))
	}

	w.Header().Set("Content-Type", "text/calendar")
	w.Header().Set("Content-Disposition", `attachment; filename="itinerary.ics"`)
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(cal.Serialize()))
}
