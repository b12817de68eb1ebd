package domain

import (
	"strconv"
	"strings"
)

// Reading is a numeric field from the weather payload. Float records whether
// the service sent it with a fractional or exponent part, so 12.0 stays
// "12.0" and 12 stays "12" when displayed.
type Reading struct {
	Value float64
	Float bool
}

func (r Reading) String() string {
	s := strconv.FormatFloat(r.Value, 'f', -1, 64)
	if r.Float && !strings.Contains(s, ".") {
		s += ".0"
	}
	return s
}

// Weather is the parsed current-conditions payload from the weather service.
type Weather struct {
	Temp        Reading
	Description string
	Icon        string
	Humidity    Reading
	WindSpeed   Reading
}

// WeatherSummary is what the page shows. On failure only Error is set.
type WeatherSummary struct {
	Temperature string `json:"temperature,omitempty"`
	Condition   string `json:"condition,omitempty"`
	Humidity    string `json:"humidity,omitempty"`
	WindSpeed   string `json:"wind_speed,omitempty"`
	IconURL     string `json:"icon_url,omitempty"`
	Error       string `json:"error,omitempty"`
}
