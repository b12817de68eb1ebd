package app_test

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"yatrimitra/internal/domain"
)

// ---- fakes ----

type fakeCache struct {
	mu    sync.Mutex
	store map[string]domain.Coordinate
	dels  []string
}

func (c *fakeCache) Get(ctx context.Context, key string, dst any) (bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	v, ok := c.store[key]
	if !ok {
		return false, nil
	}
	*dst.(*domain.Coordinate) = v
	return true, nil
}

func (c *fakeCache) Set(ctx context.Context, key string, v any, ttlSec int) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.store == nil {
		c.store = map[string]domain.Coordinate{}
	}
	c.store[key] = v.(domain.Coordinate)
	return nil
}

func (c *fakeCache) Del(ctx context.Context, key string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.store, key)
	c.dels = append(c.dels, key)
	return nil
}

type fakeGeocoder struct {
	coord   domain.Coordinate
	err     error
	delay   time.Duration
	calls   atomic.Int32
	queries sync.Map
}

func (g *fakeGeocoder) Geocode(ctx context.Context, query string) (domain.Coordinate, error) {
	g.calls.Add(1)
	g.queries.Store(query, true)
	if g.delay > 0 {
		time.Sleep(g.delay)
	}
	if err := ctx.Err(); err != nil {
		return domain.Coordinate{}, err
	}
	return g.coord, g.err
}

type fakeStore struct {
	got   []domain.HotelRecord
	calls int
	err   error
}

func (s *fakeStore) ReplaceHotels(ctx context.Context, hs []domain.HotelRecord) error {
	s.calls++
	if s.err != nil {
		return s.err
	}
	s.got = append([]domain.HotelRecord(nil), hs...)
	return nil
}

type fakeWeather struct {
	w     domain.Weather
	err   error
	calls int
}

func (f *fakeWeather) Current(ctx context.Context, city string) (domain.Weather, error) {
	f.calls++
	return f.w, f.err
}

type fakeSource struct {
	header []string
	rows   [][]string
	err    error
}

func (s fakeSource) Name() string { return "fake" }

func (s fakeSource) Load(context.Context) ([]string, [][]string, error) {
	return s.header, s.rows, s.err
}

var errBoom = errors.New("boom")

// ---- fixtures ----

var fullHeader = []string{"Hotel Name", "Destination", "Price", "Ratings", "Amenities", "sentiment_score"}

func mustTable(t *testing.T, header []string, rows [][]string) *domain.Table {
	t.Helper()
	tbl, err := domain.NewTable(header, rows)
	if err != nil {
		t.Fatalf("NewTable: %v", err)
	}
	return tbl
}

func names(hs []domain.HotelRecord) []string {
	out := make([]string, len(hs))
	for i, h := range hs {
		out[i] = h.Name
	}
	return out
}
