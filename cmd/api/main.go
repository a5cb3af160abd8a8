package main

import (
	"context"
	"database/sql"
	"net/http"
	"time"

	_ "github.com/go-sql-driver/mysql"
	"github.com/rs/zerolog/log"

	server "hotel_pricing/internal/adapters/http_server"
	"hotel_pricing/internal/adapters/observability"
	redisad "hotel_pricing/internal/adapters/redis"
	"hotel_pricing/internal/app"
	"hotel_pricing/internal/catalog"
	"hotel_pricing/internal/domain"
	"hotel_pricing/internal/shared"
	mysqlrepo "hotel_pricing/internal/storage/mysql"
)

func main() {
	cfg := shared.Load()

	// set global logger (console in dev, JSON otherwise)
	log.Logger = observability.NewLogger(cfg.AppEnv)

	observability.Serve(cfg.MetricsAddr)

	cat, err := loadCatalog(cfg)
	if err != nil {
		log.Fatal().Err(err).Str("source", cfg.CatalogSource).Msg("catalog load failed")
	}
	log.Info().
		Str("source", cfg.CatalogSource).
		Str("version", cat.Version).
		Int("competitors", len(cat.Competitors)).
		Msg("catalog loaded")

	// cache stays a nil interface when disabled
	var cache domain.Cache
	if cfg.RedisAddr != "" {
		rc := redisad.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)
		ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
		if err := rc.Ping(ctx); err != nil {
			log.Warn().Err(err).Str("addr", cfg.RedisAddr).Msg("redis unreachable; cache disabled")
			_ = rc.Close()
		} else {
			cache = rc
			defer rc.Close()
		}
		cancel()
	}

	svc, err := app.NewRecommendationService(cat, cfg.OccupancyPolicy, cache, cfg.CacheTTL)
	if err != nil {
		log.Fatal().Err(err).Msg("recommendation service")
	}

	// http
	srv := server.New(cfg.RequestTimeout, cfg.RateLimitRPS)
	reg := observability.InitRegistry()
	srv.Mount("/metrics", observability.MetricsHandler(reg))
	srv.MountHandlers(&server.Handlers{S: svc})

	log.Info().Str("addr", cfg.HTTPAddr).Str("policy", cfg.OccupancyPolicy).Msg("API listening")
	httpSrv := &http.Server{Addr: cfg.HTTPAddr, Handler: srv.Mux(), ReadHeaderTimeout: 5 * time.Second}

	if err := httpSrv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatal().Err(err).Msg("http server failed")
	}
}

func loadCatalog(cfg shared.Config) (domain.Catalog, error) {
	switch cfg.CatalogSource {
	case "", "embedded":
		return catalog.Default()
	case "mysql":
		db, err := sql.Open("mysql", cfg.MySQLDSN)
		if err != nil {
			return domain.Catalog{}, err
		}
		defer db.Close()

		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := db.PingContext(ctx); err != nil {
			return domain.Catalog{}, err
		}
		log.Info().Msg("database connection ok")
		return app.LoadFromRepository(ctx, mysqlrepo.New(db))
	default:
		return catalog.LoadFile(cfg.CatalogSource)
	}
}
