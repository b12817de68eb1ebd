package main

import (
	"context"
	"database/sql"
	"flag"
	"sync"
	"sync/atomic"

	_ "github.com/go-sql-driver/mysql"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/semaphore"

	"yatrimitra/internal/adapters/geocoding"
	"yatrimitra/internal/adapters/observability"
	redisad "yatrimitra/internal/adapters/redis"
	"yatrimitra/internal/app"
	"yatrimitra/internal/domain"
	"yatrimitra/internal/shared"
	"yatrimitra/internal/storage/excel"
	mysqlrepo "yatrimitra/internal/storage/mysql"
)

func main() {
	ctx := context.Background()
	cfg := shared.Load()

	path := flag.String("file", cfg.DatasetPath, "spreadsheet to import")
	sheet := flag.String("sheet", cfg.DatasetSheet, "sheet name (default: first sheet)")
	warm := flag.Bool("warm", true, "resolve every hotel's coordinate into the cache")
	flag.Parse()

	// 1) initialize global logger (console in dev, JSON otherwise)
	log.Logger = observability.NewLogger(cfg.AppEnv)

	log.Info().
		Str("file", *path).
		Int("workers", cfg.Workers).
		Bool("warm", *warm).
		Msg("importer starting")

	table, err := app.LoadDataset(ctx, excel.NewSource(*path, *sheet))
	if err != nil {
		log.Fatal().Err(err).Msg("dataset load failed")
	}

	db, err := sql.Open("mysql", cfg.MySQLDSN)
	if err != nil {
		log.Fatal().Err(err).Msg("sql.Open failed")
	}
	defer db.Close()
	if err := db.PingContext(ctx); err != nil {
		log.Fatal().Err(err).Msg("db.Ping failed")
	}
	log.Info().Msg("db ping ok")

	cache := redisad.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)
	defer cache.Close()

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

	imp := app.NewImportService(mysqlrepo.New(db), app.NewResolver(geo, cache, cfg.CacheTTL))
	if err := imp.ImportTable(ctx, table); err != nil {
		log.Fatal().Err(err).Msg("import failed")
	}
	log.Info().Int("rows", table.Len()).Msg("hotels replaced")

	if !*warm {
		return
	}
	if err := cache.Ping(ctx); err != nil {
		log.Warn().Err(err).Msg("redis unavailable; skipping coordinate warm-up")
		return
	}

	sem := semaphore.NewWeighted(int64(max(cfg.Workers, 1)))
	var wg sync.WaitGroup
	var fallbacks atomic.Int64

	for _, h := range table.Records() {
		// acquire before launching the goroutine; release inside it
		if err := sem.Acquire(ctx, 1); err != nil {
			log.Fatal().Err(err).Msg("semaphore acquire failed")
		}

		wg.Add(1)
		go func(h domain.HotelRecord) {
			defer wg.Done()
			defer sem.Release(1)

			c, src := imp.RefreshCoordinates(ctx, h)
			if src == domain.SourceFallback {
				fallbacks.Add(1)
			}
			log.Debug().Str("hotel", h.Name).Str("source", string(src)).Float64("lat", c.Lat).Float64("lon", c.Lon).Msg("coordinate resolved")
		}(h)
	}

	wg.Wait()
	log.Info().Int("hotels", table.Len()).Int64("fallbacks", fallbacks.Load()).Msg("import completed")
}
