package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/ariefcatur/janoer-storefront/internal/catalog"
	"github.com/ariefcatur/janoer-storefront/internal/checkout"
	"github.com/ariefcatur/janoer-storefront/internal/config"
	"github.com/ariefcatur/janoer-storefront/internal/httpx"
	kafkax "github.com/ariefcatur/janoer-storefront/internal/kafka"
	"github.com/ariefcatur/janoer-storefront/internal/logger"
	"github.com/ariefcatur/janoer-storefront/internal/metrics"
	"github.com/ariefcatur/janoer-storefront/internal/orders"
	"github.com/ariefcatur/janoer-storefront/internal/redisx"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
)

func main() {
	_ = godotenv.Load()

	cfg := config.Load()
	logger.Init(cfg.ServiceName, cfg.IsDevelopment(), cfg.LogLevel)
	log := &logger.Logger

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Redis session store
	rdb := redisx.New(cfg.RedisAddr)
	defer rdb.Close()
	if err := rdb.Ping(ctx).Err(); err != nil {
		log.Warn().Err(err).Str("addr", cfg.RedisAddr).Msg("redis unreachable at startup")
	}

	// Kafka producer (semua event order di satu topic)
	prod := kafkax.NewProducer(cfg.KafkaBrokers, orders.TopicOrderEvents, 1024)
	prod.Start(ctx)

	emitter := &orders.Emitter{Publisher: prod, Service: cfg.ServiceName}
	m := metrics.New(prometheus.DefaultRegisterer)

	router := httpx.NewRouter(httpx.RouterOptions{Metrics: m, CORSOrigins: cfg.CORSOrigins})
	(&httpx.StoreHandler{
		Catalog:  catalog.Default(),
		Sessions: &httpx.Sessions{Store: redisx.NewStore(rdb, cfg.SessionTTL)},
		Checkout: &checkout.Service{Events: emitter, Metrics: m},
		Events:   emitter,
		Metrics:  m,
		PageSize: cfg.DefaultPageSize,
	}).Register(router)

	srv := &http.Server{Addr: cfg.HTTPAddr, Handler: router, ReadHeaderTimeout: 5 * time.Second}

	go func() {
		log.Info().Str("addr", cfg.HTTPAddr).Int("products", catalog.Default().Len()).Msg("http listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("listen")
		}
	}()

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)
	<-sig
	log.Info().Msg("shutting down")

	ctx2, cancel2 := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel2()
	if err := srv.Shutdown(ctx2); err != nil {
		log.Error().Err(err).Msg("http shutdown")
	}
	prod.Close()      // tutup inbox -> flush & close writer
	prod.WaitClosed() // drain
}
