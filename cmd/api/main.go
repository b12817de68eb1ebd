package main

import (
	"context"
	"database/sql"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/go-sql-driver/mysql"
	"github.com/rs/zerolog/log"

	"yatrimitra/internal/adapters/geocoding"
	server "yatrimitra/internal/adapters/http_server"
	"yatrimitra/internal/adapters/observability"
	"yatrimitra/internal/adapters/openweather"
	redisad "yatrimitra/internal/adapters/redis"
	"yatrimitra/internal/app"
	"yatrimitra/internal/domain"
	"yatrimitra/internal/shared"
	"yatrimitra/internal/storage/excel"
	mysqlrepo "yatrimitra/internal/storage/mysql"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg := shared.Load()

	// set global logger (console in dev, JSON otherwise)
	log.Logger = observability.NewLogger(cfg.AppEnv)

	reg := observability.InitRegistry()

	// dataset: loaded once; a failure keeps the API up but dataset reads answer 503
	src, closeSrc := datasetSource(cfg)
	defer closeSrc()
	table, loadErr := app.LoadDataset(ctx, src)
	if loadErr != nil {
		log.Error().Err(loadErr).Msg("dataset load failed; serving without data")
	}

	// coordinate cache is optional
	var cache domain.Cache
	rc := redisad.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)
	if err := rc.Ping(ctx); err != nil {
		log.Warn().Err(err).Str("addr", cfg.RedisAddr).Msg("redis unavailable; coordinate cache disabled")
		_ = rc.Close()
	} else {
		cache = rc
		defer rc.Close()
	}

	geo, err := geocoding.NewProvider(geocoding.ProviderConfig{
		Type:      geocoding.ProviderType(cfg.GeocoderProvider),
		BaseURL:   cfg.GeocoderBaseURL,
		UserAgent: cfg.GeocoderUserAgent,
		APIKey:    cfg.GoogleMapsKey,
		RateLimit: cfg.GeocoderRPS,
		Timeout:   cfg.ClientTimeout,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("geocoder setup failed")
	}

	resolver := app.NewResolver(geo, cache, cfg.CacheTTL)
	weather := app.NewWeatherService(openweather.New(cfg.WeatherBase, cfg.WeatherKey, cfg.ClientTimeout))
	q := app.NewQueryService(table, loadErr, resolver, weather)

	// http
	observability.Serve(cfg.MetricsAddr)
	srv := server.New(server.DefaultTimeout)
	srv.Mount("/metrics", observability.MetricsHandler(reg))
	srv.MountHandlers(&server.Handlers{Q: q})

	httpSrv := &http.Server{Addr: cfg.HTTPAddr, Handler: srv.Mux(), ReadHeaderTimeout: 5 * time.Second}
	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		_ = httpSrv.Shutdown(shutdownCtx)
	}()

	log.Info().Str("addr", cfg.HTTPAddr).Str("geocoder", cfg.GeocoderProvider).Msg("API listening")
	if err := httpSrv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Fatal().Err(err).Msg("http server failed")
	}
	log.Info().Msg("API stopped")
}

// datasetSource picks the configured source. The returned func releases any
// connection it opened.
func datasetSource(cfg shared.Config) (domain.DatasetSource, func()) {
	if cfg.DatasetSource != "mysql" {
		return excel.NewSource(cfg.DatasetPath, cfg.DatasetSheet), func() {}
	}
	db, err := sql.Open("mysql", cfg.MySQLDSN)
	if err != nil {
		log.Fatal().Err(err).Msg("sql.Open failed")
	}
	return mysqlrepo.NewSource(db), func() { _ = db.Close() }
}
