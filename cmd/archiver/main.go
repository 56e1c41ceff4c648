package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/ariefcatur/janoer-storefront/internal/archive"
	"github.com/ariefcatur/janoer-storefront/internal/config"
	kafkax "github.com/ariefcatur/janoer-storefront/internal/kafka"
	"github.com/ariefcatur/janoer-storefront/internal/logger"
	"github.com/ariefcatur/janoer-storefront/internal/orders"
	"github.com/ariefcatur/janoer-storefront/internal/postgres"
	"github.com/ariefcatur/janoer-storefront/internal/redisx"
	"github.com/joho/godotenv"
)

func main() {
	_ = godotenv.Load()
	cfg := config.Load()
	name := cfg.ServiceName + "-archiver"
	logger.Init(name, cfg.IsDevelopment(), cfg.LogLevel)
	log := &logger.Logger

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// DB
	db, err := postgres.Connect(ctx, cfg.PostgresDSN, name, int32(cfg.ArchiveWorkers*2+1))
	if err != nil {
		log.Fatal().Err(err).Msg("db connect")
	}
	defer db.Close()

	repo := &orders.Repo{DB: db}
	if err := repo.EnsureSchema(ctx); err != nil {
		log.Fatal().Err(err).Msg("schema")
	}

	// Redis
	rdb := redisx.New(cfg.RedisAddr)
	defer rdb.Close()

	svc := &archive.Service{Repo: repo, Redis: rdb, ServiceName: "archiver"}

	// Consumer
	cons := kafkax.NewConsumer(cfg.KafkaBrokers, cfg.ArchiveGroup, orders.TopicOrderEvents, cfg.ArchiveWorkers)
	done := make(chan struct{})
	go func() {
		defer close(done)
		log.Info().Str("group", cfg.ArchiveGroup).Str("topic", orders.TopicOrderEvents).Int("workers", cfg.ArchiveWorkers).Msg("archive consumer started")
		if err := cons.Start(ctx, svc.Handle); err != nil {
			log.Error().Err(err).Msg("consumer exit")
			cancel()
		}
	}()

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)
	select {
	case <-sig:
		log.Info().Msg("shutting down consumers")
	case <-ctx.Done():
	}
	cancel()
	<-done
}
