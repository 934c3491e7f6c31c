package fares

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/Domenick1991/farecompare/internal/domain"
	"github.com/Domenick1991/farecompare/internal/fareheap"
	"github.com/Domenick1991/farecompare/internal/kafka"
	"github.com/Domenick1991/farecompare/internal/metrics"
	"github.com/google/uuid"
)

const defaultPublishTimeout = 2 * time.Second

type FareUseCase interface {
	Add(ctx context.Context, f domain.Flight) error
	SortedByFare(ctx context.Context) []domain.Flight
	SearchRoute(ctx context.Context, source, destination string) []domain.Flight
	CheapestOnRoute(ctx context.Context, source, destination string) (domain.Flight, bool)
	RouteQuote(ctx context.Context, source, destination string) (domain.Quote, bool)
	Routes(ctx context.Context) []domain.Route
	Len(ctx context.Context) int
}

// RouteCache stores sorted views by opaque key.
type RouteCache interface {
	GetSorted(ctx context.Context, key string) ([]domain.Flight, bool, error)
	SetSorted(ctx context.Context, key string, flights []domain.Flight) error
}

type Producer interface {
	Publish(ctx context.Context, topic, key string, value interface{}) error
}

// FareService owns the append-only flight list. Every query builds a fresh
// heap from a snapshot of the list; nothing else is kept between queries.
type FareService struct {
	mu      sync.RWMutex
	flights []domain.Flight
	version uint64

	instanceID  string
	cache       RouteCache
	producer       Producer
	eventsTopic    string
	publishTimeout time.Duration
	metrics     *metrics.FareMetrics
	logger      *slog.Logger
}

type FareServiceOption func(*FareService)

func WithCache(cache RouteCache) FareServiceOption {
	return func(s *FareService) {
		s.cache = cache
	}
}

func WithProducer(producer Producer, topic string) FareServiceOption {
	return func(s *FareService) {
		s.producer = producer
		s.eventsTopic = topic
	}
}

// WithPublishTimeout bounds how long Add waits for the event to be written.
func WithPublishTimeout(d time.Duration) FareServiceOption {
	return func(s *FareService) {
		s.publishTimeout = d
	}
}

func WithMetrics(m *metrics.FareMetrics) FareServiceOption {
	return func(s *FareService) {
		s.metrics = m
	}
}

func WithLogger(logger *slog.Logger) FareServiceOption {
	return func(s *FareService) {
		s.logger = logger
	}
}

func NewFareService(opts ...FareServiceOption) *FareService {
	service := &FareService{
		flights:        make([]domain.Flight, 0),
		instanceID:     uuid.NewString(),
		publishTimeout: defaultPublishTimeout,
		logger:         slog.Default(),
	}
	for _, opt := range opts {
		opt(service)
	}
	return service
}

func (s *FareService) Add(ctx context.Context, f domain.Flight) error {
	if err := f.Validate(); err != nil {
		return err
	}

	s.mu.Lock()
	s.flights = append(s.flights, f)
	s.version++
	stored := len(s.flights)
	s.mu.Unlock()

	s.metrics.ObserveAdd(stored)
	s.logger.Debug("flight added",
		slog.String("id", f.ID),
		slog.String("source", f.Source),
		slog.String("destination", f.Destination),
		slog.Float64("fare", f.Fare))

	if err := s.publish(ctx, f); err != nil {
		s.logger.Warn("failed to publish flight event", slog.String("id", f.ID), slog.Any("error", err))
	}
	return nil
}

// AddMany adds flights in order and stops at the first invalid one.
func (s *FareService) AddMany(ctx context.Context, flights []domain.Flight) (int, error) {
	for i, f := range flights {
		if err := s.Add(ctx, f); err != nil {
			return i, fmt.Errorf("flight %d (%s): %w", i, f.ID, err)
		}
	}
	return len(flights), nil
}

func (s *FareService) SortedByFare(ctx context.Context) []domain.Flight {
	s.metrics.ObserveQuery(metrics.QuerySorted)
	return s.sortedView(ctx, "all", nil)
}

// SearchRoute returns the flights on source->destination, cheapest first.
// Both names compare case-insensitively after trimming surrounding spaces.
func (s *FareService) SearchRoute(ctx context.Context, source, destination string) []domain.Flight {
	s.metrics.ObserveQuery(metrics.QueryRoute)
	return s.searchRoute(ctx, normalizeRoute(source, destination))
}

func (s *FareService) CheapestOnRoute(ctx context.Context, source, destination string) (domain.Flight, bool) {
	s.metrics.ObserveQuery(metrics.QueryCheapest)
	flights := s.searchRoute(ctx, normalizeRoute(source, destination))
	if len(flights) == 0 {
		return domain.Flight{}, false
	}
	return flights[0], true
}

// RouteQuote reports the cheapest flight on a route and how much it saves
// against the most expensive one.
func (s *FareService) RouteQuote(ctx context.Context, source, destination string) (domain.Quote, bool) {
	s.metrics.ObserveQuery(metrics.QueryCheapest)
	route := normalizeRoute(source, destination)
	flights := s.searchRoute(ctx, route)
	if len(flights) == 0 {
		return domain.Quote{}, false
	}
	cheapest := flights[0]
	maxFare := flights[len(flights)-1].Fare
	return domain.Quote{
		Route:    route,
		Cheapest: cheapest,
		Flights:  len(flights),
		MaxFare:  maxFare,
		Savings:  maxFare - cheapest.Fare,
	}, true
}

func (s *FareService) searchRoute(ctx context.Context, route domain.Route) []domain.Flight {
	return s.sortedView(ctx, "route:"+route.Key(), route.Matches)
}

// Routes lists distinct routes in order of first appearance.
func (s *FareService) Routes(ctx context.Context) []domain.Route {
	s.mu.RLock()
	defer s.mu.RUnlock()

	seen := make(map[string]struct{})
	routes := make([]domain.Route, 0)
	for _, f := range s.flights {
		k := domain.Route{Source: f.Source, Destination: f.Destination}.Key()
		if _, ok := seen[k]; ok {
			continue
		}
		seen[k] = struct{}{}
		routes = append(routes, domain.Route{Source: f.Source, Destination: f.Destination})
	}
	return routes
}

func (s *FareService) Len(ctx context.Context) int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.flights)
}

func (s *FareService) sortedView(ctx context.Context, key string, keep func(domain.Flight) bool) []domain.Flight {
	if s.cache != nil {
		s.mu.RLock()
		version := s.version
		s.mu.RUnlock()

		cached, hit, err := s.cache.GetSorted(ctx, s.cacheKey(version, key))
		if err != nil {
			s.logger.Warn("fare cache read failed", slog.String("key", key), slog.Any("error", err))
		}
		s.metrics.ObserveCache(hit)
		if hit && err == nil {
			if cached == nil {
				cached = make([]domain.Flight, 0)
			}
			return cached
		}
	}

	subset, version := s.snapshot(keep)
	sorted := heapSort(subset)
	s.metrics.ObserveHeap(len(subset))

	if s.cache != nil {
		if err := s.cache.SetSorted(ctx, s.cacheKey(version, key), sorted); err != nil {
			s.logger.Warn("fare cache write failed", slog.String("key", key), slog.Any("error", err))
		}
	}
	return sorted
}

// snapshot copies the matching flights and the version they belong to.
func (s *FareService) snapshot(keep func(domain.Flight) bool) ([]domain.Flight, uint64) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	subset := make([]domain.Flight, 0, len(s.flights))
	for _, f := range s.flights {
		if keep == nil || keep(f) {
			subset = append(subset, f)
		}
	}
	return subset, s.version
}

func (s *FareService) cacheKey(version uint64, key string) string {
	return fmt.Sprintf("%s:v%d:%s", s.instanceID, version, key)
}

func (s *FareService) publish(ctx context.Context, f domain.Flight) error {
	if s.producer == nil || s.eventsTopic == "" {
		return nil
	}
	if s.publishTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.publishTimeout)
		defer cancel()
	}
	return s.producer.Publish(ctx, s.eventsTopic, f.ID, kafka.NewFlightEvent(kafka.EventFlightAdded, f))
}

func heapSort(flights []domain.Flight) []domain.Flight {
	h := fareheap.New(len(flights))
	for _, f := range flights {
		h.Insert(f)
	}
	return h.Drain()
}

func normalizeRoute(source, destination string) domain.Route {
	return domain.Route{Source: strings.TrimSpace(source), Destination: strings.TrimSpace(destination)}
}

var _ FareUseCase = (*FareService)(nil)
