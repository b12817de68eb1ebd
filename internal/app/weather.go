package app

import (
	"context"
	"errors"
	"fmt"
	"unicode/utf8"

	"github.com/rs/zerolog/log"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"yatrimitra/internal/domain"
)

const iconURLFormat = "https://openweathermap.org/img/wn/%s@2x.png"

type WeatherService struct {
	client domain.WeatherClient
}

func NewWeatherService(c domain.WeatherClient) *WeatherService {
	return &WeatherService{client: c}
}

// Current never fails; errors come back as a summary with only Error set.
func (s *WeatherService) Current(ctx context.Context, city string) domain.WeatherSummary {
	if s.client == nil {
		return domain.WeatherSummary{Error: "Weather data not available"}
	}
	w, err := s.client.Current(ctx, city)
	if errors.Is(err, domain.ErrWeatherUnavailable) {
		return domain.WeatherSummary{Error: "Weather data not available"}
	}
	if err != nil {
		log.Warn().Err(err).Str("city", city).Msg("weather lookup failed")
		return domain.WeatherSummary{Error: "Failed to fetch data: " + err.Error()}
	}
	return summarize(w)
}

func summarize(w domain.Weather) domain.WeatherSummary {
	ws := domain.WeatherSummary{
		Temperature: w.Temp.String() + "°C",
		Condition:   capitalize(w.Description),
		Humidity:    w.Humidity.String() + "%",
		WindSpeed:   w.WindSpeed.String() + " m/s",
	}
	if w.Icon != "" {
		ws.IconURL = fmt.Sprintf(iconURLFormat, w.Icon)
	}
	return ws
}

// capitalize upper-cases the first letter and lower-cases the rest.
func capitalize(s string) string {
	if s == "" {
		return s
	}
	_, n := utf8.DecodeRuneInString(s)
	return cases.Upper(language.English).String(s[:n]) + cases.Lower(language.English).String(s[n:])
}
