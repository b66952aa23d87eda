package planner

import (
	"strings"
	"time"

	gocache "github.com/patrickmn/go-cache"

	"github.com/mgagnon/travel-assistant/internal/domain"
)

// weatherTable is the canned per-city forecast set. Keys are lowercase city
// names. A real forecast provider would slot in behind LookupWeather; the
// cache in front of it is already shaped for that.
var weatherTable = map[string]domain.Weather{
	"tokyo": {Temp: "15°C", Condition: "Partly Cloudy", Summary: "Perfect for walking."},
	"kyoto": {Temp: "14°C", Condition: "Sunny", Summary: "Great for temple visits."},
	"osaka": {Temp: "16°C", Condition: "Rain", Summary: "Bring an umbrella!"},
	"paris": {Temp: "12°C", Condition: "Cloudy", Summary: "A bit chilly."},
}

var defaultWeather = domain.Weather{Temp: "20°C", Condition: "Sunny", Summary: "Pack sunscreen!"}

var unknownCityWeather = domain.Weather{Temp: "22°C", Condition: "Sunny", Summary: "Enjoy the weather!"}

// weatherCache memoizes lookups per normalized city key.
var weatherCache = gocache.New(10*time.Minute, 30*time.Minute)

// LookupWeather returns the forecast for a city label. Multi-segment labels
// ("Tokyo, Kyoto") resolve on the first segment. Unknown cities get a
// generic sunny forecast; an empty label gets the default forecast.
func LookupWeather(city string) domain.Weather {
	if strings.TrimSpace(city) == "" {
		return defaultWeather
	}
	key := strings.ToLower(strings.TrimSpace(strings.Split(city, ",")[0]))

	if cached, ok := weatherCache.Get(key); ok {
		return cached.(domain.Weather)
	}

	w, ok := weatherTable[key]
	if !ok {
		w = unknownCityWeather
	}
	weatherCache.Set(key, w, gocache.DefaultExpiration)
	return w
}
