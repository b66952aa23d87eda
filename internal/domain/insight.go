package domain

// Weather is the canned per-city forecast used by the generators.
type Weather struct {
	Temp      string `json:"temp"`
	Condition string `json:"condition"`
	Summary   string `json:"summary"`
}

// Insight is one per-city commentary record shown on the dashboard.
type Insight struct {
	City       string   `json:"city"`
	Weather    Weather  `json:"weather"`
	Commentary string   `json:"commentary"`
	Tips       []string `json:"tips"`
}
