package search

import (
	"strings"
	"time"

	"fullplanes/internal/domain/airport"
)

type Route struct {
	Origin      string
	Destination string
}

// Request is a validated search over an inclusive date window. Dates are UTC midnights.
type Request struct {
	Origin      string
	Destination string
	StartDate   time.Time
	EndDate     time.Time
	MaxSeats    *int
}

// ParseDate parses a YYYY-MM-DD calendar date into UTC midnight.
func ParseDate(s string) (time.Time, error) {
	t, err := time.Parse(DateLayout, strings.TrimSpace(s))
	if err != nil {
		return time.Time{}, ErrInvalidDate
	}
	return t, nil
}

func NewRequest(origin, destination string, startDate, endDate time.Time, maxSeats *int) (*Request, error) {
	r := &Request{
		Origin:      strings.ToUpper(strings.TrimSpace(origin)),
		Destination: strings.ToUpper(strings.TrimSpace(destination)),
		StartDate:   truncateDay(startDate),
		EndDate:     truncateDay(endDate),
		MaxSeats:    maxSeats,
	}
	if err := r.Validate(); err != nil {
		return nil, err
	}
	return r, nil
}

func (r Request) Validate() error {
	if r.Origin == "" || r.Destination == "" || r.StartDate.IsZero() || r.EndDate.IsZero() {
		return ErrMissingField
	}
	if _, err := airport.NormalizeCode(r.Origin); err != nil {
		return ErrInvalidAirportCode
	}
	if _, err := airport.NormalizeCode(r.Destination); err != nil {
		return ErrInvalidAirportCode
	}
	if r.Origin == r.Destination {
		return ErrSameAirport
	}
	if r.EndDate.Before(r.StartDate) {
		return ErrEndBeforeStart
	}
	if r.SpanDays() > MaxSpanDays {
		return ErrDateSpanTooLong
	}
	if r.MaxSeats != nil && *r.MaxSeats <= 0 {
		return ErrInvalidMaxSeats
	}
	return nil
}

func (r Request) Route() Route {
	return Route{Origin: r.Origin, Destination: r.Destination}
}

// SpanDays is the number of days between start and end; a single-day search has span 0.
func (r Request) SpanDays() int {
	return int(truncateDay(r.EndDate).Sub(truncateDay(r.StartDate)).Hours() / 24)
}

// Dates enumerates the window ascending, both ends inclusive.
func (r Request) Dates() []time.Time {
	start := truncateDay(r.StartDate)
	n := r.SpanDays() + 1
	if n <= 0 {
		return nil
	}
	dates := make([]time.Time, 0, n)
	for i := 0; i < n; i++ {
		dates = append(dates, start.AddDate(0, 0, i))
	}
	return dates
}

func truncateDay(t time.Time) time.Time {
	if t.IsZero() {
		return t
	}
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
