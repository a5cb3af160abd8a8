package main

import (
	"context"
	"database/sql"
	"flag"
	"os"
	"os/signal"

	_ "github.com/go-sql-driver/mysql"
	"github.com/rs/zerolog/log"

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
	file := flag.String("catalog", "", "catalog JSON file (default: embedded Toulouse catalog)")
	workers := flag.Int("workers", cfg.SeedWorkers, "concurrent upserts")
	flag.Parse()

	// 1) initialize global logger (console in dev, JSON otherwise)
	log.Logger = observability.NewLogger(cfg.AppEnv)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	var (
		cat domain.Catalog
		err error
	)
	if *file != "" {
		cat, err = catalog.LoadFile(*file)
	} else {
		cat, err = catalog.Default()
	}
	if err != nil {
		log.Fatal().Err(err).Msg("catalog invalid")
	}
	log.Info().
		Str("version", cat.Version).
		Int("competitors", len(cat.Competitors)).
		Int("workers", *workers).
		Msg("seeder starting")

	db, err := sql.Open("mysql", cfg.MySQLDSN)
	if err != nil {
		log.Fatal().Err(err).Msg("sql.Open failed")
	}
	defer db.Close()
	if err := db.PingContext(ctx); err != nil {
		log.Fatal().Err(err).Msg("db.Ping failed")
	}
	log.Info().Msg("db ping ok")

	var cache domain.Cache
	if cfg.RedisAddr != "" {
		rc := redisad.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)
		defer rc.Close()
		cache = rc
	}

	rep, err := app.NewSeedService(mysqlrepo.New(db), cache).Seed(ctx, cat, *workers)
	ev := log.Info()
	if err != nil {
		ev = log.Error().Err(err)
	}
	ev.Int("written", rep.Written).
		Int("failed", rep.Failed).
		Int("pruned", rep.Pruned).
		Int("evicted", rep.Evicted).
		Msg("seeding completed")
	if err != nil {
		os.Exit(1)
	}
}
