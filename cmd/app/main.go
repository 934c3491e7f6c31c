package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/Domenick1991/farecompare/config"
	"github.com/Domenick1991/farecompare/internal/bootstrap"
	"github.com/Domenick1991/farecompare/internal/cache"
	"github.com/Domenick1991/farecompare/internal/ingest"
	"github.com/Domenick1991/farecompare/internal/kafka"
	"github.com/Domenick1991/farecompare/internal/logging"
	"github.com/Domenick1991/farecompare/internal/metrics"
	"github.com/Domenick1991/farecompare/internal/service/fares"
	"github.com/prometheus/client_golang/prometheus"
)

func main() {
	cfgPath := os.Getenv("CONFIG_PATH")
	if cfgPath == "" {
		cfgPath = "config.yaml"
	}

	cfg, err := config.LoadConfig(cfgPath)
	if err != nil {
		slog.Error("load config", slog.Any("error", err))
		os.Exit(1)
	}

	logger := logging.New(os.Stdout, cfg.Log.Level, cfg.Log.Format)
	slog.SetDefault(logger)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	opts := []fares.FareServiceOption{
		fares.WithLogger(logger),
		fares.WithMetrics(metrics.NewFareMetrics(prometheus.DefaultRegisterer)),
	}

	if cfg.Redis.Enabled() {
		redisCache := cache.NewRedisCache(cfg.Redis, cfg.Fares.CacheTTL())
		defer redisCache.Close()
		if err := redisCache.Ping(ctx); err != nil {
			logger.Warn("redis unavailable, sorted views will not be cached", slog.Any("error", err))
		} else {
			opts = append(opts, fares.WithCache(redisCache))
		}
	}

	deps := bootstrap.Deps{Logger: logger, Gatherer: prometheus.DefaultGatherer}

	if cfg.Kafka.Enabled() {
		producer := kafka.NewProducer(cfg.Kafka.Brokers, logger)
		defer producer.Close()
		opts = append(opts, fares.WithProducer(producer, cfg.Kafka.EventsTopic))

		if cfg.Kafka.IngestTopic != "" {
			consumer := kafka.NewConsumer(cfg.Kafka.Brokers, cfg.Kafka.GroupID, cfg.Kafka.IngestTopic)
			defer consumer.Close()
			deps.Ingest = consumer
		}
	}

	fareService := fares.NewFareService(opts...)
	deps.Fares = fareService
	if deps.Ingest != nil {
		deps.IngestHandler = ingest.NewFlightHandler(fareService, logger)
	}

	if cfg.Fares.LoadSample {
		n, err := fareService.AddMany(ctx, fares.SampleFlights())
		if err != nil {
			logger.Error("load sample flights", slog.Any("error", err))
			os.Exit(1)
		}
		logger.Info("loaded sample flights", slog.Int("count", n))
	}

	if err := bootstrap.Run(ctx, cfg, deps); err != nil {
		logger.Error("server error", slog.Any("error", err))
		os.Exit(1)
	}
}
