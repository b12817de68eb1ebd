package app

import (
	"context"
	"crypto/md5"
	"encoding/binary"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"
	"golang.org/x/sync/singleflight"

	"yatrimitra/internal/adapters/observability"
	"yatrimitra/internal/domain"
)

// fallbackSpread is the maximum offset, in degrees, applied around a city center.
const fallbackSpread = 0.002

// lookupTimeout bounds a shared geocoder call, which outlives any one caller.
const lookupTimeout = 10 * time.Second

type resolved struct {
	Coord  domain.Coordinate
	Source domain.CoordSource
}

// Resolver turns a hotel name and city into map coordinates. It never fails:
// any geocoder problem degrades to FallbackCoordinate.
type Resolver struct {
	geo      domain.Geocoder
	cache    domain.Cache
	cacheTTL time.Duration
	group    singleflight.Group
}

// NewResolver wires a geocoder and an optional cache (nil disables caching).
func NewResolver(g domain.Geocoder, c domain.Cache, ttl time.Duration) *Resolver {
	return &Resolver{geo: g, cache: c, cacheTTL: ttl}
}

func (r *Resolver) Resolve(ctx context.Context, hotelName, city string) (domain.Coordinate, domain.CoordSource) {
	key := coordsKey(hotelName, city)
	if r.cache != nil {
		var c domain.Coordinate
		if ok, _ := r.cache.Get(ctx, key, &c); ok {
			observability.ObserveResolution(string(domain.SourceGeocoder))
			return c, domain.SourceGeocoder
		}
	}

	// detached: every waiter shares this result
	v, _, _ := r.group.Do(key, func() (any, error) {
		lctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), lookupTimeout)
		defer cancel()
		return r.lookup(lctx, key, hotelName, city), nil
	})
	res := v.(resolved)
	observability.ObserveResolution(string(res.Source))
	return res.Coord, res.Source
}

// Refresh asks the geocoder again without reading the cache. A successful
// answer overwrites the cached entry; on failure an existing cached coordinate
// is kept and returned.
func (r *Resolver) Refresh(ctx context.Context, hotelName, city string) (domain.Coordinate, domain.CoordSource) {
	key := coordsKey(hotelName, city)
	res := r.lookup(ctx, key, hotelName, city)
	if res.Source == domain.SourceFallback && r.cache != nil {
		var c domain.Coordinate
		if ok, _ := r.cache.Get(ctx, key, &c); ok {
			res = resolved{c, domain.SourceGeocoder}
		}
	}
	observability.ObserveResolution(string(res.Source))
	return res.Coord, res.Source
}

func (r *Resolver) lookup(ctx context.Context, key, hotelName, city string) resolved {
	if r.geo == nil {
		return resolved{FallbackCoordinate(hotelName, city), domain.SourceFallback}
	}
	c, err := r.geo.Geocode(ctx, hotelName+", "+city)
	if err != nil {
		log.Debug().Err(err).Str("kind", observability.LabelErr(err)).Str("hotel", hotelName).Str("city", city).Msg("geocoding failed, using fallback")
		return resolved{FallbackCoordinate(hotelName, city), domain.SourceFallback}
	}
	if r.cache != nil {
		_ = r.cache.Set(ctx, key, c, int(r.cacheTTL.Seconds()))
	}
	return resolved{c, domain.SourceGeocoder}
}

// FallbackCoordinate places a hotel near its city center at an offset derived
// from the MD5 digest of its name. The first and second 32-bit words of the
// digest map linearly onto [-0.002, 0.002) for latitude and longitude, so the
// same name always lands on the same spot.
func FallbackCoordinate(hotelName, city string) domain.Coordinate {
	center := domain.CenterOf(city)
	sum := md5.Sum([]byte(hotelName))
	return domain.Coordinate{
		Lat: center.Lat + spread(binary.BigEndian.Uint32(sum[0:4])),
		Lon: center.Lon + spread(binary.BigEndian.Uint32(sum[4:8])),
	}
}

func spread(word uint32) float64 {
	frac := float64(word) / (1 << 32)
	return frac*2*fallbackSpread - fallbackSpread
}

// coordsKey length-prefixes the hotel name so names or cities containing ':'
// cannot collide.
func coordsKey(hotelName, city string) string {
	return fmt.Sprintf("coords:%d:%s:%s", len(hotelName), hotelName, city)
}
