package notify

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/Domenick1991/farecompare/internal/domain"
	"github.com/Domenick1991/farecompare/internal/kafka"
	"github.com/stretchr/testify/assert"
)

func event(id string, fare float64) kafka.FlightEvent {
	return kafka.NewFlightEvent(kafka.EventFlightAdded, domain.Flight{ID: id, Airline: "Air", Source: "Delhi", Destination: "Mumbai", Fare: fare})
}

func TestSender_Send(t *testing.T) {
	var buf bytes.Buffer
	sender := NewSender(slog.New(slog.NewTextHandler(&buf, nil)))
	ctx := context.Background()

	assert.True(t, sender.Send(ctx, event("A", 4500)))
	assert.False(t, sender.Send(ctx, event("B", 5000)))
	assert.False(t, sender.Send(ctx, event("C", 4500)))
	assert.True(t, sender.Send(ctx, event("D", 2800)))

	assert.Contains(t, buf.String(), "flight=D")
	assert.Contains(t, buf.String(), "previous=4500")
	assert.NotContains(t, buf.String(), "flight=B")
}

func TestSender_IgnoresOtherEvents(t *testing.T) {
	sender := NewSender(nil)

	ev := event("A", 100)
	ev.Type = "something_else"

	assert.False(t, sender.Send(context.Background(), ev))
}
