package domain

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
	"unicode"
)

var ErrInvalidFlight = errors.New("invalid flight")

// Flight is one fare offer. Values are never mutated once built.
type Flight struct {
	ID            string  `json:"id"`
	Airline       string  `json:"airline"`
	Source        string  `json:"source"`
	Destination   string  `json:"destination"`
	Fare          float64 `json:"fare"`
	Duration      string  `json:"duration"`
	DepartureTime string  `json:"departure_time"`
}

func NewFlight(id, airline, source, destination string, fare float64, duration, departure string) (Flight, error) {
	f := Flight{
		ID:            id,
		Airline:       airline,
		Source:        source,
		Destination:   destination,
		Fare:          fare,
		Duration:      duration,
		DepartureTime: departure,
	}
	if err := f.Validate(); err != nil {
		return Flight{}, err
	}
	return f, nil
}

// Validate checks the fare invariant on flights built outside NewFlight.
func (f Flight) Validate() error {
	if math.IsNaN(f.Fare) || math.IsInf(f.Fare, 0) || f.Fare <= 0 {
		return fmt.Errorf("%w: fare must be positive, got %v", ErrInvalidFlight, f.Fare)
	}
	return nil
}

// ParseFare converts user input into a fare.
func ParseFare(raw string) (float64, error) {
	fare, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil {
		return 0, fmt.Errorf("%w: fare %q is not a number", ErrInvalidFlight, raw)
	}
	if math.IsNaN(fare) || math.IsInf(fare, 0) || fare <= 0 {
		return 0, fmt.Errorf("%w: fare must be positive, got %v", ErrInvalidFlight, fare)
	}
	return fare, nil
}

// Route is an ordered source/destination pair.
type Route struct {
	Source      string `json:"source"`
	Destination string `json:"destination"`
}

// Matches reports whether the flight flies the route, ignoring case.
func (r Route) Matches(f Flight) bool {
	return strings.EqualFold(f.Source, r.Source) && strings.EqualFold(f.Destination, r.Destination)
}

// Key identifies the route under the same folding Matches uses. Each name is
// quoted, so separators inside city names cannot make two routes collide.
func (r Route) Key() string {
	return strconv.Quote(Fold(r.Source)) + "|" + strconv.Quote(Fold(r.Destination))
}

// Fold maps every rune to the smallest rune of its simple case-folding orbit,
// so Fold(a) == Fold(b) exactly when strings.EqualFold(a, b).
func Fold(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		b.WriteRune(foldRune(r))
	}
	return b.String()
}

func foldRune(r rune) rune {
	lowest := r
	for f := unicode.SimpleFold(r); f != r; f = unicode.SimpleFold(f) {
		if f < lowest {
			lowest = f
		}
	}
	return lowest
}

// Quote summarises the cheapest offer on a route.
type Quote struct {
	Route    Route   `json:"route"`
	Cheapest Flight  `json:"cheapest"`
	Flights  int     `json:"flights"`
	MaxFare  float64 `json:"max_fare"`
	Savings  float64 `json:"savings"`
}
