package ingest

import (
	"context"
	"testing"

	"github.com/Domenick1991/farecompare/internal/service/fares"
	kafkaGo "github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
)

func TestNewFlightHandler(t *testing.T) {
	service := fares.NewFareService()
	handler := NewFlightHandler(service, nil)
	ctx := context.Background()

	messages := []kafkaGo.Message{
		{Offset: 1, Value: []byte(`{"id":"AI101","airline":"Air India","source":"Delhi","destination":"Mumbai","fare":4500}`)},
		{Offset: 2, Value: []byte(`not json`)},
		{Offset: 3, Value: []byte(`{"id":"BAD","source":"Delhi","destination":"Mumbai","fare":-5}`)},
		{Offset: 4, Value: []byte(`{"id":"IN303","airline":"IndiGo","source":"Delhi","destination":"Mumbai","fare":2800}`)},
	}
	for _, msg := range messages {
		assert.NoError(t, handler(ctx, msg))
	}

	cheapest, ok := service.CheapestOnRoute(ctx, "Delhi", "Mumbai")
	assert.True(t, ok)
	assert.Equal(t, "IN303", cheapest.ID)
	assert.Equal(t, 2, service.Len(ctx))
}
