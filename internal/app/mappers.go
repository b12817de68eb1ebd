package app

import (
	"fmt"
	"strings"
	"time"

	"yatrimitra/internal/domain"
)

/********** lookup tables **********/

type sentimentBand struct {
	min         float64
	label, desc string
}

var sentimentBands = []sentimentBand{
	{0.8, "Excellent", "Guests absolutely love this hotel!"},
	{0.7, "Very Good", "Very positive guest experiences reported"},
	{0.6, "Good", "Guests generally have positive experiences"},
	{0.5, "Satisfactory", "Mixed reviews with positive experiences"},
}

// Checked in order; first substring hit wins. "ac" is last so that words
// like "beach" reach their own entry first.
var amenityIcons = []struct{ key, icon string }{
	{"wifi", "wifi"},
	{"swimming pool", "swimming-pool"},
	{"pool", "swimming-pool"},
	{"parking", "parking"},
	{"spa", "spa"},
	{"gym", "dumbbell"},
	{"fitness", "dumbbell"},
	{"restaurant", "utensils"},
	{"bar", "glass-martini"},
	{"breakfast", "coffee"},
	{"air conditioning", "snowflake"},
	{"air conditioner", "snowflake"},
	{"pet friendly", "paw"},
	{"beach", "umbrella-beach"},
	{"room service", "concierge-bell"},
	{"laundry", "tshirt"},
	{"tv", "tv"},
	{"balcony", "door-open"},
	{"ac", "snowflake"},
}

const defaultAmenityIcon = "check-circle"

/********** card helpers **********/

// SentimentLabel buckets a score into a short label and a one-line description.
func SentimentLabel(score float64) (string, string) {
	for _, b := range sentimentBands {
		if score >= b.min {
			return b.label, b.desc
		}
	}
	return "Mixed", "Some guests had concerns about their stay"
}

// AmenityIcon maps an amenity name to a Font Awesome icon name.
func AmenityIcon(amenity string) string {
	a := strings.ToLower(strings.TrimSpace(amenity))
	for _, e := range amenityIcons {
		if strings.Contains(a, e.key) {
			return e.icon
		}
	}
	return defaultAmenityIcon
}

// MarkerColor picks the map pin color for a sentiment score.
func MarkerColor(score float64) string {
	switch {
	case score >= 0.75:
		return "green"
	case score >= 0.5:
		return "blue"
	default:
		return "orange"
	}
}

// MapsSearchURL links to a Google Maps search for the hotel.
func MapsSearchURL(name, destination string) string {
	q := strings.ReplaceAll(name, " ", "+") + "+" + strings.ReplaceAll(destination, " ", "+")
	return "https://www.google.com/maps/search/?api=1&query=" + q
}

// StayOf computes the number of nights between two dates.
func StayOf(checkIn, checkOut time.Time) (domain.Stay, error) {
	in := truncateDay(checkIn)
	out := truncateDay(checkOut)
	if !out.After(in) {
		return domain.Stay{}, domain.ErrInvalidStay
	}
	nights := int(out.Sub(in).Hours() / 24)
	label := fmt.Sprintf("%d nights", nights)
	if nights == 1 {
		label = "1 night"
	}
	return domain.Stay{
		CheckIn:  in.Format(time.DateOnly),
		CheckOut: out.Format(time.DateOnly),
		Nights:   nights,
		Label:    label,
	}, nil
}

func truncateDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func mapCard(rank int, h domain.HotelRecord, c domain.Coordinate, src domain.CoordSource) domain.HotelCard {
	score := *h.SentimentScore
	label, desc := SentimentLabel(score)
	am := make([]domain.AmenityView, 0, len(h.Amenities))
	for _, a := range h.Amenities {
		am = append(am, domain.AmenityView{Name: a, Icon: AmenityIcon(a)})
	}
	return domain.HotelCard{
		Rank:                 rank,
		Name:                 h.Name,
		Destination:          h.Destination,
		Price:                h.Price,
		Rating:               h.Rating,
		SentimentScore:       score,
		SentimentLabel:       label,
		SentimentDescription: desc,
		Amenities:            am,
		MarkerColor:          MarkerColor(score),
		Coords:               c,
		CoordsSource:         src,
		MapsURL:              MapsSearchURL(h.Name, h.Destination),
	}
}
