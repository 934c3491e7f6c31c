package kafka

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/Domenick1991/farecompare/internal/domain"
	"github.com/Domenick1991/farecompare/internal/resilience"
	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"
)

const EventFlightAdded = "flight_added"

type FlightEvent struct {
	ID     string        `json:"id"`
	Type   string        `json:"type"`
	Flight domain.Flight `json:"flight"`
	At     time.Time     `json:"at"`
}

func NewFlightEvent(eventType string, f domain.Flight) FlightEvent {
	return FlightEvent{
		ID:     uuid.NewString(),
		Type:   eventType,
		Flight: f,
		At:     time.Now().UTC(),
	}
}

type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

type Producer struct {
	writer  messageWriter
	breaker *resilience.Breaker
	logger  *slog.Logger
}

func NewProducer(brokers []string, logger *slog.Logger) *Producer {
	writer := &kafka.Writer{
		Addr:         kafka.TCP(brokers...),
		Balancer:     &kafka.Hash{},
		BatchTimeout: 50 * time.Millisecond,
		RequiredAcks: kafka.RequireOne,
		MaxAttempts:  3,
		WriteTimeout: 5 * time.Second,
	}
	return newProducer(writer, logger)
}

func newProducer(writer messageWriter, logger *slog.Logger) *Producer {
	if logger == nil {
		logger = slog.Default()
	}
	return &Producer{
		writer:  writer,
		breaker: resilience.NewBreaker(resilience.DefaultBreakerConfig("kafka-producer"), logger),
		logger:  logger,
	}
}

func (p *Producer) Publish(ctx context.Context, topic, key string, payload interface{}) error {
	data, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal payload: %w", err)
	}

	message := kafka.Message{
		Topic: topic,
		Key:   []byte(key),
		Value: data,
		Time:  time.Now(),
	}

	err = p.breaker.Do(func() error {
		return p.writer.WriteMessages(ctx, message)
	})
	if err != nil {
		return fmt.Errorf("failed to write message to Kafka: %w", err)
	}

	p.logger.Debug("published to kafka", slog.String("topic", topic), slog.String("key", key))
	return nil
}

func (p *Producer) Close() error {
	if p.writer != nil {
		return p.writer.Close()
	}
	return nil
}
