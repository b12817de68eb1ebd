package shared

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
)

type Config struct {
	AppEnv      string
	HTTPAddr    string
	MetricsAddr string

	DatasetSource string // excel|mysql
	DatasetPath   string
	DatasetSheet  string
	MySQLDSN      string

	RedisAddr string
	RedisDB   int
	RedisPass string

	GeocoderProvider  string // nominatim|google
	GeocoderBaseURL   string
	GeocoderUserAgent string
	GeocoderRPS       float64
	GoogleMapsKey     string

	WeatherBase string
	WeatherKey  string

	Workers       int
	CacheTTL      time.Duration
	ClientTimeout time.Duration
}

// Load reads configuration from the environment. A .env file in the working
// directory is applied first when present; real environment variables win.
func Load() Config {
	_ = godotenv.Load()

	atoi := func(k string, def int) int {
		if v := os.Getenv(k); v != "" {
			if n, err := strconv.Atoi(v); err == nil {
				return n
			}
			log.Warn().Str("key", k).Str("value", v).Msg("not an integer, using default")
		}
		return def
	}
	atof := func(k string, def float64) float64 {
		if v := os.Getenv(k); v != "" {
			if f, err := strconv.ParseFloat(v, 64); err == nil {
				return f
			}
			log.Warn().Str("key", k).Str("value", v).Msg("not a number, using default")
		}
		return def
	}
	c := Config{
		AppEnv:      env("APP_ENV", "prod"),
		HTTPAddr:    env("HTTP_ADDR", ":8080"),
		MetricsAddr: env("METRICS_ADDR", ""),

		DatasetSource: env("DATASET_SOURCE", "excel"),
		DatasetPath:   env("DATASET_PATH", "Dataset.xlsx"),
		DatasetSheet:  env("DATASET_SHEET", ""),
		MySQLDSN:      env("MYSQL_DSN", "root:root@tcp(localhost:3306)/yatri?parseTime=true&charset=utf8mb4&loc=UTC"),

		RedisAddr: env("REDIS_ADDR", "localhost:6379"),
		RedisPass: env("REDIS_PASSWORD", ""),
		RedisDB:   atoi("REDIS_DB", 0),

		GeocoderProvider:  env("GEOCODER_PROVIDER", "nominatim"),
		GeocoderBaseURL:   env("GEOCODER_BASE_URL", "https://nominatim.openstreetmap.org/search"),
		GeocoderUserAgent: env("GEOCODER_USER_AGENT", "SmartAccommodationFinderApp/1.0"),
		GeocoderRPS:       atof("GEOCODER_RPS", 1),
		GoogleMapsKey:     env("GOOGLE_MAPS_API_KEY", ""),

		WeatherBase: env("WEATHER_BASE_URL", "https://api.openweathermap.org/data/2.5/weather"),
		WeatherKey:  env("WEATHER_API_KEY", ""),

		Workers:       atoi("IMPORT_WORKERS", 4),
		CacheTTL:      time.Duration(atoi("CACHE_TTL_SECONDS", 86400)) * time.Second,
		ClientTimeout: time.Duration(atoi("HTTP_CLIENT_TIMEOUT_SECONDS", 5)) * time.Second,
	}
	if c.WeatherKey == "" {
		log.Warn().Msg("WEATHER_API_KEY is empty")
	}
	return c
}

func env(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
