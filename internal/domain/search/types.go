package search

import "errors"

var (
	ErrMissingField       = errors.New("origin, destination, start and end date are required")
	ErrInvalidAirportCode = errors.New("airport code must be three letters")
	ErrSameAirport        = errors.New("origin and destination must differ")
	ErrInvalidDate        = errors.New("date must be formatted as YYYY-MM-DD")
	ErrEndBeforeStart     = errors.New("the end date cannot be before the start date")
	ErrDateSpanTooLong    = errors.New("the date range cannot exceed 7 days")
	ErrInvalidMaxSeats    = errors.New("max seats must be a positive integer")
)

const (
	DateLayout = "2006-01-02"

	// MaxSpanDays bounds EndDate - StartDate, i.e. at most 7 calendar days per search.
	MaxSpanDays = 6

	// UnknownSeats is the display value for offers without a bookable seat count.
	UnknownSeats = "k.A."
)
