package googlemaps

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"
	"googlemaps.github.io/maps"

	"yatrimitra/internal/adapters/observability"
	"yatrimitra/internal/domain"
)

// ErrEmptyResponse is returned when the Geocoding API has no result for the address.
var ErrEmptyResponse = errors.New("googlemaps: empty response")

// APIClient is the slice of *maps.Client the provider needs.
type APIClient interface {
	Geocode(ctx context.Context, r *maps.GeocodingRequest) ([]maps.GeocodingResult, error)
}

type Provider struct {
	client APIClient
}

func New(client APIClient) *Provider { return &Provider{client: client} }

// Geocode resolves address to the first result's location.
func (p *Provider) Geocode(ctx context.Context, address string) (domain.Coordinate, error) {
	log.Debug().Str("address", address).Msg("geocoding via google maps")

	start := time.Now()
	res, err := p.client.Geocode(ctx, &maps.GeocodingRequest{Address: address})
	status := 200
	if err != nil {
		status = 0
	}
	observability.ObserveExternal("googlemaps", "geocode", status, time.Since(start))
	if err != nil {
		return domain.Coordinate{}, fmt.Errorf("geocode address: %w", err)
	}
	if len(res) == 0 {
		return domain.Coordinate{}, ErrEmptyResponse
	}
	loc := res[0].Geometry.Location
	return domain.Coordinate{Lat: loc.Lat, Lon: loc.Lng}, nil
}
