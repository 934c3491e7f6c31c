package domain

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewFlight_Success(t *testing.T) {
	f, err := NewFlight("AI101", "Air India", "Delhi", "Mumbai", 4500, "2h 15m", "06:00 AM")

	require.NoError(t, err)
	assert.Equal(t, "AI101", f.ID)
	assert.Equal(t, 4500.0, f.Fare)
	assert.Equal(t, "06:00 AM", f.DepartureTime)
}

func TestNewFlight_InvalidFare(t *testing.T) {
	testCases := []struct {
		name string
		fare float64
	}{
		{name: "zero", fare: 0},
		{name: "negative", fare: -10},
		{name: "NaN", fare: math.NaN()},
		{name: "infinity", fare: math.Inf(1)},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := NewFlight("X1", "Air", "A", "B", tc.fare, "1h", "09:00")
			assert.ErrorIs(t, err, ErrInvalidFlight)
		})
	}
}

func TestParseFare(t *testing.T) {
	fare, err := ParseFare(" 3200.50 ")
	require.NoError(t, err)
	assert.Equal(t, 3200.5, fare)

	_, err = ParseFare("cheap")
	assert.ErrorIs(t, err, ErrInvalidFlight)

	_, err = ParseFare("-1")
	assert.ErrorIs(t, err, ErrInvalidFlight)

	_, err = ParseFare("NaN")
	assert.ErrorIs(t, err, ErrInvalidFlight)
}

func TestRoute_Matches(t *testing.T) {
	f := Flight{Source: "Delhi", Destination: "Mumbai", Fare: 1}

	assert.True(t, Route{Source: "delhi", Destination: "MUMBAI"}.Matches(f))
	assert.False(t, Route{Source: "Delh", Destination: "Mumbai"}.Matches(f))
	assert.False(t, Route{Source: "Mumbai", Destination: "Delhi"}.Matches(f))
}

func TestRoute_KeyDoesNotCollideOnSeparators(t *testing.T) {
	first := Route{Source: "a:b", Destination: "c"}
	second := Route{Source: "a", Destination: "b:c"}
	third := Route{Source: "a|b", Destination: "c"}
	fourth := Route{Source: "a", Destination: "b|c"}

	keys := map[string]struct{}{}
	for _, r := range []Route{first, second, third, fourth} {
		keys[r.Key()] = struct{}{}
	}
	assert.Len(t, keys, 4)
}

func TestRoute_KeyFollowsMatches(t *testing.T) {
	testCases := []struct {
		name string
		a, b string
	}{
		{name: "ascii case", a: "Delhi", b: "DELHI"},
		{name: "kelvin sign", a: "K", b: "k"},
		{name: "dotted capital I", a: "İstanbul", b: "i̇stanbul"},
		{name: "long s", a: "ſ", b: "S"},
		{name: "sharp s", a: "ß", b: "ss"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ra := Route{Source: tc.a, Destination: "X"}
			rb := Route{Source: tc.b, Destination: "x"}
			f := Flight{Source: tc.b, Destination: "x", Fare: 1}

			assert.Equal(t, ra.Matches(f), ra.Key() == rb.Key())
		})
	}
}
