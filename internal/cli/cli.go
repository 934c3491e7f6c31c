// Package cli is the interactive menu front end of the fare index.
package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/Domenick1991/farecompare/internal/domain"
	"github.com/Domenick1991/farecompare/internal/service/fares"
)

var errInputClosed = errors.New("input closed")

const rule = "=================================================="

type App struct {
	fares fares.FareUseCase
	in    *bufio.Scanner
	out   io.Writer
}

func New(service fares.FareUseCase, in io.Reader, out io.Writer) *App {
	return &App{fares: service, in: bufio.NewScanner(in), out: out}
}

// Run drives the menu until the user exits or input ends.
func (a *App) Run(ctx context.Context) error {
	a.printf("\n%s\nWELCOME TO AIRLINE FARE COMPARATOR\n%s\n", rule, rule)

	answer, err := a.prompt("\nDo you want to load sample flight data? (yes/no): ")
	if err != nil {
		return a.done(err)
	}
	if answer = strings.ToLower(answer); answer == "yes" || answer == "y" {
		if err := a.loadSample(ctx); err != nil {
			return err
		}
	}

	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		a.menu()
		choice, err := a.prompt("\nEnter your choice (1-5): ")
		if err != nil {
			return a.done(err)
		}

		switch choice {
		case "1":
			err = a.addFlight(ctx)
		case "2":
			a.listSorted(ctx)
		case "3":
			err = a.search(ctx)
		case "4":
			err = a.cheapest(ctx)
		case "5":
			a.printf("\n%s\nThank you for using Airline Fare Comparator!\n%s\n\n", rule, rule)
			return nil
		default:
			a.printf("\nInvalid choice! Please select 1-5.\n")
		}
		if err != nil {
			return a.done(err)
		}

		if _, err := a.prompt("\nPress Enter to continue..."); err != nil {
			return a.done(err)
		}
	}
}

func (a *App) loadSample(ctx context.Context) error {
	sample := fares.SampleFlights()
	for _, f := range sample {
		if err := a.fares.Add(ctx, f); err != nil {
			return fmt.Errorf("load sample flights: %w", err)
		}
	}
	a.printf("\nLoaded %d sample flights successfully!\n", len(sample))
	return nil
}

func (a *App) menu() {
	a.printf("\n%s\nAIRLINE FARE COMPARATOR SYSTEM\n%s\n", rule, rule)
	a.printf("\n1. Add Flight\n2. Display All Flights (Sorted by Fare)\n3. Search Flights (Source to Destination)\n4. Find Cheapest Flight\n5. Exit\n%s\n", rule)
}

func (a *App) addFlight(ctx context.Context) error {
	a.printf("\n--- Enter Flight Details ---\n")

	var id, airline, source, destination string
	for _, field := range []struct {
		label string
		value *string
	}{
		{"Flight ID: ", &id},
		{"Airline Name: ", &airline},
		{"Source City: ", &source},
		{"Destination City: ", &destination},
	} {
		v, err := a.prompt(field.label)
		if err != nil {
			return err
		}
		*field.value = v
	}

	var fare float64
	for {
		raw, err := a.prompt("Fare (in $): ")
		if err != nil {
			return err
		}
		fare, err = domain.ParseFare(raw)
		if err == nil {
			break
		}
		a.printf("%v. Try again.\n", err)
	}

	duration, err := a.prompt("Duration (e.g., 2h 15m): ")
	if err != nil {
		return err
	}
	departure, err := a.prompt("Departure Time (e.g., 08:30 AM): ")
	if err != nil {
		return err
	}

	flight, err := domain.NewFlight(id, airline, source, destination, fare, duration, departure)
	if err != nil {
		return err
	}
	if err := a.fares.Add(ctx, flight); err != nil {
		return err
	}
	a.printf("\nFlight added successfully!\n")
	return nil
}

func (a *App) listSorted(ctx context.Context) {
	if a.fares.Len(ctx) == 0 {
		a.printf("\nNo flights available. Please add flights first.\n")
		return
	}
	a.printf("\n--- ALL FLIGHTS SORTED BY FARE (Cheapest First) ---\n")
	a.table(a.fares.SortedByFare(ctx)...)
}

func (a *App) search(ctx context.Context) error {
	if a.fares.Len(ctx) == 0 {
		a.printf("\nNo flights available. Please add flights first.\n")
		return nil
	}
	source, destination, err := a.route()
	if err != nil {
		return err
	}

	flights := a.fares.SearchRoute(ctx, source, destination)
	if len(flights) == 0 {
		a.printf("\nNo flights found from %s to %s\n", source, destination)
		return nil
	}
	a.printf("\n--- FLIGHTS FROM %s TO %s ---\n", strings.ToUpper(source), strings.ToUpper(destination))
	a.table(flights...)
	return nil
}

func (a *App) cheapest(ctx context.Context) error {
	if a.fares.Len(ctx) == 0 {
		a.printf("\nNo flights available. Please add flights first.\n")
		return nil
	}
	source, destination, err := a.route()
	if err != nil {
		return err
	}

	quote, ok := a.fares.RouteQuote(ctx, source, destination)
	if !ok {
		a.printf("\nNo flights found from %s to %s\n", source, destination)
		return nil
	}
	a.printf("\n--- CHEAPEST FLIGHT FROM %s TO %s ---\n", strings.ToUpper(source), strings.ToUpper(destination))
	a.table(quote.Cheapest)
	if quote.Flights > 1 {
		a.printf("\nYou save $%.2f compared to the most expensive option!\n", quote.Savings)
	}
	return nil
}

func (a *App) route() (string, string, error) {
	source, err := a.prompt("\nEnter Source City: ")
	if err != nil {
		return "", "", err
	}
	destination, err := a.prompt("Enter Destination City: ")
	if err != nil {
		return "", "", err
	}
	return source, destination, nil
}

func (a *App) table(flights ...domain.Flight) {
	line := strings.Repeat("=", 100)
	a.printf("\n%s\n", line)
	tw := tabwriter.NewWriter(a.out, 0, 0, 1, ' ', tabwriter.Debug)
	fmt.Fprintln(tw, "Flight ID\tAirline\tRoute\tFare\tDuration\tDeparture")
	for _, f := range flights {
		fmt.Fprintf(tw, "%s\t%s\t%s -> %s\t$%.2f\t%s\t%s\n", f.ID, f.Airline, f.Source, f.Destination, f.Fare, f.Duration, f.DepartureTime)
	}
	tw.Flush()
	a.printf("%s\n", line)
}

func (a *App) prompt(label string) (string, error) {
	a.printf("%s", label)
	if !a.in.Scan() {
		if err := a.in.Err(); err != nil {
			return "", err
		}
		return "", errInputClosed
	}
	return strings.TrimSpace(a.in.Text()), nil
}

func (a *App) printf(format string, args ...any) {
	fmt.Fprintf(a.out, format, args...)
}

// done treats end of input as a normal exit.
func (a *App) done(err error) error {
	if errors.Is(err, errInputClosed) {
		return nil
	}
	return err
}
