package main

import (
	"context"
	"encoding/json"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/Domenick1991/farecompare/config"
	"github.com/Domenick1991/farecompare/internal/kafka"
	"github.com/Domenick1991/farecompare/internal/logging"
	"github.com/Domenick1991/farecompare/internal/notify"
	kafkaGo "github.com/segmentio/kafka-go"
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
	if !cfg.Kafka.Enabled() {
		logger.Error("worker needs kafka.brokers")
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	consumer := kafka.NewConsumer(cfg.Kafka.Brokers, cfg.Kafka.GroupID+"-notify", cfg.Kafka.EventsTopic)
	defer consumer.Close()

	sender := notify.NewSender(logger)

	err = consumer.Consume(ctx, func(ctx context.Context, msg kafkaGo.Message) error {
		var event kafka.FlightEvent
		if err := json.Unmarshal(msg.Value, &event); err != nil {
			logger.Warn("decode event error", slog.Any("error", err))
			return nil
		}
		sender.Send(ctx, event)
		return nil
	})
	if err != nil {
		logger.Error("consumer stopped", slog.Any("error", err))
		os.Exit(1)
	}
	logger.Info("worker shut down")
}
