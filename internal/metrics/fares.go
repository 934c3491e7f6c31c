package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	QuerySorted   = "sorted"
	QueryRoute    = "route"
	QueryCheapest = "cheapest"
)

// FareMetrics groups the collectors of the fare index. A nil *FareMetrics is
// valid and records nothing.
type FareMetrics struct {
	FlightsAdded  prometheus.Counter
	FlightsStored prometheus.Gauge
	Queries       *prometheus.CounterVec
	CacheResults  *prometheus.CounterVec
	HeapSize      prometheus.Histogram
}

func NewFareMetrics(reg prometheus.Registerer) *FareMetrics {
	factory := promauto.With(reg)
	return &FareMetrics{
		FlightsAdded: factory.NewCounter(prometheus.CounterOpts{
			Name: "fares_flights_added_total",
			Help: "Total number of flights added to the fare index",
		}),
		FlightsStored: factory.NewGauge(prometheus.GaugeOpts{
			Name: "fares_flights_stored",
			Help: "Number of flights currently held by the fare index",
		}),
		Queries: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "fares_queries_total",
			Help: "Total number of fare queries by kind",
		}, []string{"kind"}),
		CacheResults: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "fares_cache_results_total",
			Help: "Sorted-view cache lookups by result",
		}, []string{"result"}),
		HeapSize: factory.NewHistogram(prometheus.HistogramOpts{
			Name:    "fares_heap_size",
			Help:    "Number of flights pushed through a heap per query",
			Buckets: prometheus.ExponentialBuckets(1, 4, 8),
		}),
	}
}

func (m *FareMetrics) ObserveAdd(stored int) {
	if m == nil {
		return
	}
	m.FlightsAdded.Inc()
	m.FlightsStored.Set(float64(stored))
}

func (m *FareMetrics) ObserveQuery(kind string) {
	if m == nil {
		return
	}
	m.Queries.WithLabelValues(kind).Inc()
}

func (m *FareMetrics) ObserveHeap(size int) {
	if m == nil {
		return
	}
	m.HeapSize.Observe(float64(size))
}

func (m *FareMetrics) ObserveCache(hit bool) {
	if m == nil {
		return
	}
	if hit {
		m.CacheResults.WithLabelValues("hit").Inc()
		return
	}
	m.CacheResults.WithLabelValues("miss").Inc()
}
