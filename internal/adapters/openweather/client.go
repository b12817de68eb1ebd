package openweather

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"yatrimitra/internal/adapters/observability"
	"yatrimitra/internal/domain"
)

const DefaultBaseURL = "https://api.openweathermap.org/data/2.5/weather"

type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

type Client struct {
	base string
	key  string
	hc   HTTPClient
}

func New(base, apiKey string, timeout time.Duration) *Client {
	return NewWithClient(base, apiKey, &http.Client{Timeout: timeout})
}

func NewWithClient(base, apiKey string, hc HTTPClient) *Client {
	if base == "" {
		base = DefaultBaseURL
	}
	return &Client{base: base, key: apiKey, hc: hc}
}

// code accepts the "cod" field as either a JSON number or a string.
type code int

func (c *code) UnmarshalJSON(b []byte) error {
	b = bytes.Trim(b, `"`)
	if len(b) == 0 || string(b) == "null" {
		*c = 0
		return nil
	}
	n, err := strconv.Atoi(string(b))
	if err != nil {
		return fmt.Errorf("weather cod %q: %w", b, err)
	}
	*c = code(n)
	return nil
}

type payload struct {
	Cod  code `json:"cod"`
	Main struct {
		Temp     json.Number `json:"temp"`
		Humidity json.Number `json:"humidity"`
	} `json:"main"`
	Weather []struct {
		Description string `json:"description"`
		Icon        string `json:"icon"`
	} `json:"weather"`
	Wind struct {
		Speed json.Number `json:"speed"`
	} `json:"wind"`
}

// reading keeps whether the number was written as a float.
func reading(n json.Number) (domain.Reading, error) {
	if n == "" {
		return domain.Reading{}, nil
	}
	f, err := n.Float64()
	if err != nil {
		return domain.Reading{}, err
	}
	return domain.Reading{Value: f, Float: strings.ContainsAny(string(n), ".eE")}, nil
}

// Current fetches current conditions in metric units. A JSON response whose
// cod is not 200 yields domain.ErrWeatherUnavailable; transport and decode
// failures are returned as errors, whatever the HTTP status.
func (c *Client) Current(ctx context.Context, city string) (domain.Weather, error) {
	u, err := url.Parse(c.base)
	if err != nil {
		return domain.Weather{}, fmt.Errorf("parse base URL: %w", err)
	}
	q := u.Query()
	q.Set("q", city)
	q.Set("appid", c.key)
	q.Set("units", "metric")
	u.RawQuery = q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return domain.Weather{}, err
	}
	req.Header.Set("Accept", "application/json")

	start := time.Now()
	resp, err := c.hc.Do(req)
	if err != nil {
		observability.ObserveExternal("openweather", "weather", 0, time.Since(start))
		return domain.Weather{}, err
	}
	defer resp.Body.Close()
	observability.ObserveExternal("openweather", "weather", resp.StatusCode, time.Since(start))

	// error bodies carry cod too, so decode regardless of HTTP status
	var p payload
	if err := json.NewDecoder(resp.Body).Decode(&p); err != nil {
		return domain.Weather{}, fmt.Errorf("decode weather response (HTTP %d): %w", resp.StatusCode, err)
	}
	if p.Cod != http.StatusOK || len(p.Weather) == 0 {
		return domain.Weather{}, domain.ErrWeatherUnavailable
	}

	w := domain.Weather{Description: p.Weather[0].Description, Icon: p.Weather[0].Icon}
	for _, f := range []struct {
		dst *domain.Reading
		src json.Number
		key string
	}{
		{&w.Temp, p.Main.Temp, "temp"},
		{&w.Humidity, p.Main.Humidity, "humidity"},
		{&w.WindSpeed, p.Wind.Speed, "speed"},
	} {
		r, err := reading(f.src)
		if err != nil {
			return domain.Weather{}, fmt.Errorf("weather %s: %w", f.key, err)
		}
		*f.dst = r
	}
	return w, nil
}
