package search

import (
	"slices"
	"strconv"
)

// FlightResult is one normalized offer as displayed and exported.
type FlightResult struct {
	Date          string
	DepartureTime string
	ArrivalTime   string
	FromFull      string
	ToFull        string
	Duration      string
	AirlineName   string
	FlightNumber  string
	Seats         *int
}

func (f FlightResult) SeatsDisplay() string {
	if f.Seats == nil {
		return UnknownSeats
	}
	return strconv.Itoa(*f.Seats)
}

type dedupKey struct {
	date          string
	flightNumber  string
	departureTime string
}

func (f FlightResult) key() dedupKey {
	return dedupKey{date: f.Date, flightNumber: f.FlightNumber, departureTime: f.DepartureTime}
}

// FilterBySeats keeps results with fewer than maxSeats known seats. Unknown seat counts are always kept.
func FilterBySeats(results []FlightResult, maxSeats *int) []FlightResult {
	if maxSeats == nil {
		return results
	}
	out := make([]FlightResult, 0, len(results))
	for _, r := range results {
		if r.Seats != nil && *r.Seats >= *maxSeats {
			continue
		}
		out = append(out, r)
	}
	return out
}

// Deduplicate drops repeated (date, flight number, departure time) entries; the first occurrence wins.
func Deduplicate(results []FlightResult) []FlightResult {
	seen := make(map[dedupKey]struct{}, len(results))
	out := make([]FlightResult, 0, len(results))
	for _, r := range results {
		k := r.key()
		if _, ok := seen[k]; ok {
			continue
		}
		seen[k] = struct{}{}
		out = append(out, r)
	}
	return out
}

// SortCanonical orders by (date, departure time) keeping ties in input order.
func SortCanonical(results []FlightResult) {
	slices.SortStableFunc(results, func(a, b FlightResult) int {
		if a.Date != b.Date {
			if a.Date < b.Date {
				return -1
			}
			return 1
		}
		switch {
		case a.DepartureTime < b.DepartureTime:
			return -1
		case a.DepartureTime > b.DepartureTime:
			return 1
		}
		return 0
	})
}
