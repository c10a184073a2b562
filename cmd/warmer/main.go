package main

import (
	"context"
	"database/sql"
	"os"
	"os/signal"
	"sync"
	"sync/atomic"
	"syscall"

	_ "github.com/go-sql-driver/mysql"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/semaphore"

	"kitchen_cali/internal/adapters/observability"
	redisad "kitchen_cali/internal/adapters/redis"
	"kitchen_cali/internal/app"
	"kitchen_cali/internal/catalog"
	"kitchen_cali/internal/shared"
	mysqlsrc "kitchen_cali/internal/storage/mysql"
)

// warmer pre-populates the Redis cache with the default listing and every
// profile of each location that has caterers.
func main() {
	cfg := shared.Load()

	log.Logger = observability.NewLogger(cfg.AppEnv, cfg.LogLevel)
	if err := cfg.Validate(); err != nil {
		log.Fatal().Err(err).Msg("invalid configuration")
	}
	runID := uuid.NewString()
	logger := log.With().Str("run_id", runID).Logger()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cat, err := loadCatalog(ctx, cfg)
	if err != nil {
		logger.Fatal().Err(err).Str("source", cfg.CatalogSource).Msg("catalog load failed")
	}

	cache := redisad.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)
	defer cache.Close()
	if err := cache.Ping(ctx); err != nil {
		logger.Fatal().Err(err).Str("addr", cfg.RedisAddr).Msg("redis ping failed")
	}

	q := app.NewQueryService(app.NewDirectory(cat), cache, nil, cfg.CacheTTL)
	locs := q.Locations()

	logger.Info().
		Int("locations", len(locs)).
		Int("workers", cfg.WarmWorkers).
		Dur("ttl", cfg.CacheTTL).
		Msg("warmer starting")

	sem := semaphore.NewWeighted(int64(cfg.WarmWorkers))
	var wg sync.WaitGroup
	var written, failed atomic.Int64

	for _, loc := range locs {
		// acquire before launching the goroutine; release inside it
		if err := sem.Acquire(ctx, 1); err != nil {
			logger.Warn().Err(err).Msg("warm interrupted")
			break
		}

		wg.Add(1)
		go func() {
			defer wg.Done()
			defer sem.Release(1)

			n, err := q.WarmLocation(ctx, loc)
			written.Add(int64(n))
			if err != nil {
				failed.Add(1)
				logger.Warn().Str("county", loc.CountySlug).Str("city", loc.CitySlug).Err(err).Msg("warm failed")
				return
			}
			logger.Debug().Str("county", loc.CountySlug).Str("city", loc.CitySlug).Int("keys", n).Msg("warm ok")
		}()
	}

	wg.Wait()
	logger.Info().
		Int64("keys", written.Load()).
		Int64("failed", failed.Load()).
		Msg("warm completed")
	if failed.Load() > 0 {
		_ = cache.Close()
		stop()
		os.Exit(1)
	}
}

func loadCatalog(ctx context.Context, cfg shared.Config) (*catalog.Catalog, error) {
	switch cfg.CatalogSource {
	case shared.SourceFile:
		return catalog.LoadFile(ctx, cfg.CatalogFile)
	case shared.SourceMySQL:
		db, err := sql.Open("mysql", cfg.MySQLDSN)
		if err != nil {
			return nil, err
		}
		defer db.Close()
		return catalog.FromSource(ctx, mysqlsrc.New(db))
	default:
		return catalog.Builtin(), nil
	}
}
