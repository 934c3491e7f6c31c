package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestFareMetrics(t *testing.T) {
	m := NewFareMetrics(prometheus.NewRegistry())

	m.ObserveAdd(1)
	m.ObserveAdd(2)
	m.ObserveQuery(QueryRoute)
	m.ObserveCache(true)
	m.ObserveCache(false)
	m.ObserveCache(false)
	m.ObserveHeap(3)

	assert.Equal(t, 2.0, testutil.ToFloat64(m.FlightsAdded))
	assert.Equal(t, 2.0, testutil.ToFloat64(m.FlightsStored))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.Queries.WithLabelValues(QueryRoute)))
	assert.Equal(t, 0.0, testutil.ToFloat64(m.Queries.WithLabelValues(QuerySorted)))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.CacheResults.WithLabelValues("hit")))
	assert.Equal(t, 2.0, testutil.ToFloat64(m.CacheResults.WithLabelValues("miss")))
	assert.Equal(t, 1, testutil.CollectAndCount(m.HeapSize))
}

func TestFareMetrics_Nil(t *testing.T) {
	var m *FareMetrics

	assert.NotPanics(t, func() {
		m.ObserveAdd(1)
		m.ObserveQuery(QuerySorted)
		m.ObserveHeap(1)
		m.ObserveCache(true)
	})
}
