package fares

import "github.com/Domenick1991/farecompare/internal/domain"

// SampleFlights is the demo data set offered at start-up.
func SampleFlights() []domain.Flight {
	return []domain.Flight{
		{ID: "AI101", Airline: "Air India", Source: "Delhi", Destination: "Mumbai", Fare: 4500.00, Duration: "2h 15m", DepartureTime: "06:00 AM"},
		{ID: "SG202", Airline: "SpiceJet", Source: "Delhi", Destination: "Mumbai", Fare: 3200.00, Duration: "2h 20m", DepartureTime: "08:30 AM"},
		{ID: "IN303", Airline: "IndiGo", Source: "Delhi", Destination: "Mumbai", Fare: 2800.00, Duration: "2h 10m", DepartureTime: "10:00 AM"},
		{ID: "AI104", Airline: "Air India", Source: "Delhi", Destination: "Mumbai", Fare: 5200.00, Duration: "2h 05m", DepartureTime: "02:00 PM"},
		{ID: "GO505", Airline: "GoAir", Source: "Delhi", Destination: "Mumbai", Fare: 3100.00, Duration: "2h 25m", DepartureTime: "04:30 PM"},
		{ID: "AI201", Airline: "Air India", Source: "Mumbai", Destination: "Bangalore", Fare: 5500.00, Duration: "1h 45m", DepartureTime: "07:00 AM"},
		{ID: "IN402", Airline: "IndiGo", Source: "Mumbai", Destination: "Bangalore", Fare: 3500.00, Duration: "1h 50m", DepartureTime: "09:00 AM"},
		{ID: "SG503", Airline: "SpiceJet", Source: "Mumbai", Destination: "Bangalore", Fare: 3000.00, Duration: "1h 55m", DepartureTime: "11:30 AM"},
		{ID: "AI301", Airline: "Air India", Source: "Delhi", Destination: "Bangalore", Fare: 6200.00, Duration: "2h 45m", DepartureTime: "06:30 AM"},
		{ID: "IN604", Airline: "IndiGo", Source: "Delhi", Destination: "Bangalore", Fare: 4100.00, Duration: "2h 50m", DepartureTime: "08:00 AM"},
	}
}
