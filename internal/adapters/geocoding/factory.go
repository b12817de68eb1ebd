package geocoding

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"googlemaps.github.io/maps"

	"yatrimitra/internal/adapters/googlemaps"
	"yatrimitra/internal/adapters/nominatim"
	"yatrimitra/internal/domain"
)

// ProviderType names a geocoding backend.
type ProviderType string

const (
	ProviderNominatim ProviderType = "nominatim"
	ProviderGoogle    ProviderType = "google"
)

// ProviderConfig carries everything any backend may need; each backend
// reads only its own fields.
type ProviderConfig struct {
	Type      ProviderType
	BaseURL   string // nominatim
	UserAgent string // nominatim
	APIKey    string // google
	RateLimit float64
	Timeout   time.Duration
}

// NewProvider builds the configured geocoder. An empty Type means nominatim.
func NewProvider(cfg ProviderConfig) (domain.Geocoder, error) {
	switch cfg.Type {
	case ProviderNominatim, "":
		return nominatim.New(cfg.BaseURL, cfg.UserAgent, cfg.RateLimit, cfg.Timeout), nil
	case ProviderGoogle:
		return newGoogle(cfg)
	default:
		return nil, fmt.Errorf("unsupported geocoder provider: %q", cfg.Type)
	}
}

func newGoogle(cfg ProviderConfig) (domain.Geocoder, error) {
	if cfg.APIKey == "" {
		return nil, errors.New("API key is required for google provider")
	}
	opts := []maps.ClientOption{maps.WithAPIKey(cfg.APIKey)}
	if rl := int(cfg.RateLimit); rl > 0 {
		opts = append(opts, maps.WithRateLimit(rl))
	}
	if cfg.Timeout > 0 {
		opts = append(opts, maps.WithHTTPClient(&http.Client{Timeout: cfg.Timeout}))
	}
	client, err := maps.NewClient(opts...)
	if err != nil {
		return nil, fmt.Errorf("create google maps client: %w", err)
	}
	return googlemaps.New(client), nil
}
