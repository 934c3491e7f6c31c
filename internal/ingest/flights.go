// Package ingest turns Kafka messages into flights for the fare index.
package ingest

import (
	"context"
	"encoding/json"
	"log/slog"

	"github.com/Domenick1991/farecompare/internal/domain"
	kafkaGo "github.com/segmentio/kafka-go"
)

type FlightAdder interface {
	Add(ctx context.Context, f domain.Flight) error
}

// NewFlightHandler decodes one JSON flight per message. Undecodable or
// invalid flights are logged and skipped so a bad message cannot stall the
// partition.
func NewFlightHandler(adder FlightAdder, logger *slog.Logger) func(context.Context, kafkaGo.Message) error {
	if logger == nil {
		logger = slog.Default()
	}
	return func(ctx context.Context, msg kafkaGo.Message) error {
		var f domain.Flight
		if err := json.Unmarshal(msg.Value, &f); err != nil {
			logger.Warn("skipping undecodable flight message",
				slog.Int64("offset", msg.Offset),
				slog.Any("error", err))
			return nil
		}
		if err := adder.Add(ctx, f); err != nil {
			logger.Warn("skipping invalid flight",
				slog.String("id", f.ID),
				slog.Int64("offset", msg.Offset),
				slog.Any("error", err))
			return nil
		}
		return nil
	}
}
