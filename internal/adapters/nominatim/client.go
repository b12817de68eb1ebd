package nominatim

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"golang.org/x/time/rate"

	"yatrimitra/internal/adapters/observability"
	"yatrimitra/internal/domain"
)

const (
	DefaultBaseURL   = "https://nominatim.openstreetmap.org/search"
	DefaultUserAgent = "SmartAccommodationFinderApp/1.0"
)

var (
	ErrEmptyResponse = errors.New("nominatim: empty response")
	ErrInvalidCoords = errors.New("nominatim: invalid coordinates")
)

// HTTPClient lets tests swap the transport.
type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

type Client struct {
	base string
	ua   string
	hc   HTTPClient
	rl   *rate.Limiter
}

type place struct {
	Lat string `json:"lat"`
	Lon string `json:"lon"`
}

// New builds a client for a Nominatim search endpoint. The public instance
// allows one request per second; rps <= 0 falls back to that.
func New(base, userAgent string, rps float64, timeout time.Duration) *Client {
	if base == "" {
		base = DefaultBaseURL
	}
	if userAgent == "" {
		userAgent = DefaultUserAgent
	}
	if rps <= 0 {
		rps = 1
	}
	return &Client{
		base: base,
		ua:   userAgent,
		hc:   &http.Client{Timeout: timeout},
		rl:   rate.NewLimiter(rate.Limit(rps), 1),
	}
}

// NewWithClient is New with an injected transport and limiter.
func NewWithClient(base, userAgent string, hc HTTPClient, rl *rate.Limiter) *Client {
	return &Client{base: base, ua: userAgent, hc: hc, rl: rl}
}

// Geocode asks for the single best match for query. There are no retries;
// callers fall back on any error.
func (c *Client) Geocode(ctx context.Context, query string) (domain.Coordinate, error) {
	if err := c.rl.Wait(ctx); err != nil {
		return domain.Coordinate{}, fmt.Errorf("rate limit wait: %w", err)
	}

	u, err := url.Parse(c.base)
	if err != nil {
		return domain.Coordinate{}, fmt.Errorf("parse base URL: %w", err)
	}
	q := u.Query()
	q.Set("q", query)
	q.Set("format", "json")
	q.Set("limit", "1")
	u.RawQuery = q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return domain.Coordinate{}, err
	}
	// usage policy requires an identifying User-Agent
	req.Header.Set("User-Agent", c.ua)
	req.Header.Set("Accept", "application/json")

	start := time.Now()
	resp, err := c.hc.Do(req)
	if err != nil {
		observability.ObserveExternal("nominatim", "search", 0, time.Since(start))
		return domain.Coordinate{}, fmt.Errorf("geocoding request: %w", err)
	}
	defer resp.Body.Close()
	observability.ObserveExternal("nominatim", "search", resp.StatusCode, time.Since(start))

	if resp.StatusCode != http.StatusOK {
		b, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return domain.Coordinate{}, fmt.Errorf("nominatim: bad status %d: %s", resp.StatusCode, strings.TrimSpace(string(b)))
	}

	var places []place
	if err := json.NewDecoder(resp.Body).Decode(&places); err != nil {
		return domain.Coordinate{}, fmt.Errorf("decode nominatim response: %w", err)
	}
	if len(places) == 0 {
		return domain.Coordinate{}, ErrEmptyResponse
	}

	lat, err := strconv.ParseFloat(places[0].Lat, 64)
	if err != nil {
		return domain.Coordinate{}, fmt.Errorf("%w: latitude %q", ErrInvalidCoords, places[0].Lat)
	}
	lon, err := strconv.ParseFloat(places[0].Lon, 64)
	if err != nil {
		return domain.Coordinate{}, fmt.Errorf("%w: longitude %q", ErrInvalidCoords, places[0].Lon)
	}
	return domain.Coordinate{Lat: lat, Lon: lon}, nil
}
