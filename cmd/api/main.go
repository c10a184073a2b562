package main

import (
	"context"
	"database/sql"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/go-sql-driver/mysql"
	"github.com/rs/zerolog/log"

	"kitchen_cali/internal/adapters/geo"
	server "kitchen_cali/internal/adapters/http_server"
	"kitchen_cali/internal/adapters/observability"
	redisad "kitchen_cali/internal/adapters/redis"
	"kitchen_cali/internal/app"
	"kitchen_cali/internal/catalog"
	"kitchen_cali/internal/domain"
	"kitchen_cali/internal/shared"
	mysqlsrc "kitchen_cali/internal/storage/mysql"
)

func main() {
	cfg := shared.Load()

	// set global logger (console in dev, JSON otherwise)
	log.Logger = observability.NewLogger(cfg.AppEnv, cfg.LogLevel)
	if err := cfg.Validate(); err != nil {
		log.Fatal().Err(err).Msg("invalid configuration")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	reg := observability.InitRegistry()
	observability.Serve(cfg.MetricsAddr, reg)

	// catalog
	cat, closeSrc, err := loadCatalog(ctx, cfg)
	if err != nil {
		log.Fatal().Err(err).Str("source", cfg.CatalogSource).Msg("catalog load failed")
	}
	closeSrc()
	observability.SetCatalogSize(cat.Len())

	// deps
	var cache domain.Cache
	if cfg.CacheEnabled {
		rc := redisad.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)
		defer rc.Close()
		if err := rc.Ping(ctx); err != nil {
			log.Warn().Err(err).Str("addr", cfg.RedisAddr).Msg("redis unreachable; serving uncached until it recovers")
		}
		cache = rc
	}

	var boundaries domain.BoundaryClient
	if cfg.GeoURL != "" {
		gc, err := geo.New(cfg.GeoURL, cfg.GeoRPS)
		if err != nil {
			log.Fatal().Err(err).Msg("failed to initialize geo client")
		}
		boundaries = gc
	}

	q := app.NewQueryService(app.NewDirectory(cat), cache, boundaries, cfg.CacheTTL)

	// http
	srv := server.New(cfg.CORSOrigins)
	srv.Mount("/metrics", observability.MetricsHandler(reg))
	srv.MountHandlers(&server.Handlers{Q: q})

	httpSrv := &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           srv.Mux(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		log.Info().Str("addr", cfg.HTTPAddr).Int("caterers", cat.Len()).Msg("API listening")
		if err := httpSrv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("http server failed")
		}
	}()

	<-ctx.Done()
	log.Info().Msg("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	if err := httpSrv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("graceful shutdown failed")
	}
}

// loadCatalog builds the catalog from the configured source. The returned
// func releases anything the source opened.
func loadCatalog(ctx context.Context, cfg shared.Config) (*catalog.Catalog, func(), error) {
	noop := func() {}
	switch cfg.CatalogSource {
	case shared.SourceFile:
		c, err := catalog.LoadFile(ctx, cfg.CatalogFile)
		return c, noop, err
	case shared.SourceMySQL:
		db, err := sql.Open("mysql", cfg.MySQLDSN)
		if err != nil {
			return nil, noop, err
		}
		closeDB := func() { _ = db.Close() }
		if err := db.PingContext(ctx); err != nil {
			closeDB()
			return nil, noop, err
		}
		log.Info().Msg("database connection ok")
		c, err := catalog.FromSource(ctx, mysqlsrc.New(db))
		return c, closeDB, err
	default:
		c, err := catalog.FromSource(ctx, catalog.BuiltinSource{})
		return c, noop, err
	}
}
