package app

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"yatrimitra/internal/domain"
)

const noResultsNotice = "No hotels found for this destination and criteria. Try adjusting your filters!"

type QueryService struct {
	table    *domain.Table
	loadErr  error
	resolver *Resolver
	weather  *WeatherService
}

// NewQueryService serves reads from a table loaded once at startup. A non-nil
// loadErr makes every dataset read fail with ErrDatasetUnavailable, while
// weather and geocoding keep working.
func NewQueryService(t *domain.Table, loadErr error, r *Resolver, w *WeatherService) *QueryService {
	if t == nil {
		t = domain.EmptyTable()
	}
	return &QueryService{table: t, loadErr: loadErr, resolver: r, weather: w}
}

func (s *QueryService) available() error {
	if s.loadErr != nil {
		return fmt.Errorf("%w: %v", domain.ErrDatasetUnavailable, s.loadErr)
	}
	return nil
}

func (s *QueryService) Destinations() ([]string, error) {
	if err := s.available(); err != nil {
		return nil, err
	}
	return s.table.Destinations(), nil
}

func (s *QueryService) Amenities() ([]string, error) {
	if err := s.available(); err != nil {
		return nil, err
	}
	return s.table.Amenities(), nil
}

// Recommend builds the full result page: weather for the destination, then
// the top hotels with a resolved coordinate each. Geocoding runs one hotel
// at a time.
func (s *QueryService) Recommend(ctx context.Context, q domain.RecommendationQuery) (domain.RecommendationPage, error) {
	if err := s.available(); err != nil {
		return domain.RecommendationPage{}, err
	}
	stay, err := StayOf(q.CheckIn, q.CheckOut)
	if err != nil {
		return domain.RecommendationPage{}, err
	}
	if !s.table.HasColumn(domain.ColSentimentScore) {
		return domain.RecommendationPage{}, domain.ErrMissingSentimentColumn
	}

	filtered := Filter(s.table, q)
	top := rankFiltered(filtered)

	page := domain.RecommendationPage{
		SearchID:    uuid.NewString(),
		Destination: q.Destination,
		Tier:        q.Tier,
		TierLabel:   q.Tier.Label(),
		Stay:        stay,
		Matched:     len(filtered),
		Hotels:      make([]domain.HotelCard, 0, len(top)),
		Weather:     s.Weather(ctx, q.Destination),
	}
	if len(top) == 0 {
		page.Notice = noResultsNotice
		return page, nil
	}
	for i, h := range top {
		c, src := s.resolver.Resolve(ctx, h.Name, h.Destination)
		page.Hotels = append(page.Hotels, mapCard(i, h, c, src))
	}
	return page, nil
}

func (s *QueryService) Weather(ctx context.Context, city string) domain.WeatherSummary {
	return s.weather.Current(ctx, city)
}

func (s *QueryService) Locate(ctx context.Context, hotelName, city string) (domain.Coordinate, domain.CoordSource) {
	return s.resolver.Resolve(ctx, hotelName, city)
}
