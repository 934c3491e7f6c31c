package notify

import (
	"context"
	"log/slog"
	"strings"
	"sync"

	"github.com/Domenick1991/farecompare/internal/kafka"
)

// Sender announces new lowest fares per route. It only sees events, so the
// lowest fare it knows is the lowest among events it has consumed.
type Sender struct {
	mu     sync.Mutex
	lowest map[string]float64
	logger *slog.Logger
}

func NewSender(logger *slog.Logger) *Sender {
	if logger == nil {
		logger = slog.Default()
	}
	return &Sender{lowest: make(map[string]float64), logger: logger}
}

// Send returns true when the event carried a new lowest fare for its route.
func (s *Sender) Send(ctx context.Context, event kafka.FlightEvent) bool {
	if event.Type != kafka.EventFlightAdded {
		return false
	}
	f := event.Flight
	key := strings.ToLower(f.Source) + "->" + strings.ToLower(f.Destination)

	s.mu.Lock()
	prev, seen := s.lowest[key]
	better := !seen || f.Fare < prev
	if better {
		s.lowest[key] = f.Fare
	}
	s.mu.Unlock()

	if !better {
		return false
	}
	attrs := []any{
		slog.String("flight", f.ID),
		slog.String("airline", f.Airline),
		slog.String("route", f.Source+" -> "+f.Destination),
		slog.Float64("fare", f.Fare),
	}
	if seen {
		attrs = append(attrs, slog.Float64("previous", prev))
	}
	s.logger.InfoContext(ctx, "new lowest fare", attrs...)
	return true
}
