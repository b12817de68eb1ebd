package domain

import (
	"context"
	"time"
)

// DatasetSource yields the raw dataset: a header row and the data rows under it.
type DatasetSource interface {
	Name() string
	Load(ctx context.Context) (header []string, rows [][]string, err error)
}

// HotelStore persists the imported dataset. ReplaceHotels swaps the stored
// rows for hs atomically.
type HotelStore interface {
	ReplaceHotels(ctx context.Context, hs []HotelRecord) error
}

type Geocoder interface {
	Geocode(ctx context.Context, query string) (Coordinate, error)
}

type WeatherClient interface {
	Current(ctx context.Context, city string) (Weather, error)
}

type Cache interface {
	Get(ctx context.Context, key string, dst any) (bool, error)
	Set(ctx context.Context, key string, v any, ttlSec int) error
	Del(ctx context.Context, key string) error
}

// Read models & queries
type RecommendationQuery struct {
	Destination string
	Tier        PriceTier
	Amenities   []string
	CheckIn     time.Time
	CheckOut    time.Time
}

type Stay struct {
	CheckIn  string `json:"check_in"`
	CheckOut string `json:"check_out"`
	Nights   int    `json:"nights"`
	Label    string `json:"label"`
}

type AmenityView struct {
	Name string `json:"name"`
	Icon string `json:"icon"`
}

type HotelCard struct {
	Rank                 int           `json:"rank"`
	Name                 string        `json:"name"`
	Destination          string        `json:"destination"`
	Price                *float64      `json:"price"`
	Rating               *float64      `json:"rating"`
	SentimentScore       float64       `json:"sentiment_score"`
	SentimentLabel       string        `json:"sentiment_label"`
	SentimentDescription string        `json:"sentiment_description"`
	Amenities            []AmenityView `json:"amenities"`
	MarkerColor          string        `json:"marker_color"`
	Coords               Coordinate    `json:"coords"`
	CoordsSource         CoordSource   `json:"coords_source"`
	MapsURL              string        `json:"maps_url"`
}

type RecommendationPage struct {
	SearchID    string         `json:"search_id"`
	Destination string         `json:"destination"`
	Tier        PriceTier      `json:"tier"`
	TierLabel   string         `json:"tier_label"`
	Stay        Stay           `json:"stay"`
	Matched     int            `json:"matched"`
	Hotels      []HotelCard    `json:"hotels"`
	Notice      string         `json:"notice,omitempty"`
	Weather     WeatherSummary `json:"weather"`
}
