//go:build unit || e2e

package builder

import (
	"time"

	"fullplanes/internal/domain/search"
	reqdto "fullplanes/internal/handler/dto/request"
)

type SearchBuilder struct {
	Origin      string
	Destination string
	StartDate   time.Time
	EndDate     time.Time
	MaxSeats    *int
}

func NewSearchBuilder() *SearchBuilder {
	day := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)
	return &SearchBuilder{
		Origin:      "BER",
		Destination: "VIE",
		StartDate:   day,
		EndDate:     day,
	}
}

func (b *SearchBuilder) With(mutate func(*SearchBuilder)) *SearchBuilder {
	mutate(b)
	return b
}

// Build methods
func (b *SearchBuilder) BuildDomain() (*search.Request, error) {
	return search.NewRequest(b.Origin, b.Destination, b.StartDate, b.EndDate, b.MaxSeats)
}

// BuildRaw skips validation so usecase tests can feed invalid requests.
func (b *SearchBuilder) BuildRaw() search.Request {
	return search.Request{
		Origin:      b.Origin,
		Destination: b.Destination,
		StartDate:   b.StartDate,
		EndDate:     b.EndDate,
		MaxSeats:    b.MaxSeats,
	}
}

func (b *SearchBuilder) BuildRequestDTO() reqdto.SearchRequest {
	return reqdto.SearchRequest{
		Origin:      b.Origin,
		Destination: b.Destination,
		StartDate:   b.StartDate.Format(search.DateLayout),
		EndDate:     b.EndDate.Format(search.DateLayout),
		MaxSeats:    b.MaxSeats,
	}
}

// Fluent builder methods
func (b *SearchBuilder) WithRoute(origin, destination string) *SearchBuilder {
	b.Origin = origin
	b.Destination = destination
	return b
}

func (b *SearchBuilder) WithDays(start time.Time, days int) *SearchBuilder {
	b.StartDate = start
	b.EndDate = start.AddDate(0, 0, days-1)
	return b
}

func (b *SearchBuilder) WithMaxSeats(n int) *SearchBuilder {
	b.MaxSeats = &n
	return b
}

type ResultBuilder struct {
	result search.FlightResult
}

func NewResultBuilder() *ResultBuilder {
	seats := 4
	return &ResultBuilder{result: search.FlightResult{
		Date:          "2025-03-10",
		DepartureTime: "08:15",
		ArrivalTime:   "09:35",
		FromFull:      `Berlin - Flughafen Berlin Brandenburg "Willy Brandt" (BER)`,
		ToFull:        "Wien - Flughafen Wien-Schwechat (VIE)",
		Duration:      "1h 20m",
		AirlineName:   "Austrian Airlines",
		FlightNumber:  "OS 228",
		Seats:         &seats,
	}}
}

func (b *ResultBuilder) Build() search.FlightResult {
	return b.result
}

func (b *ResultBuilder) WithDate(date string) *ResultBuilder {
	b.result.Date = date
	return b
}

func (b *ResultBuilder) WithDeparture(hhmm string) *ResultBuilder {
	b.result.DepartureTime = hhmm
	return b
}

func (b *ResultBuilder) WithFlightNumber(number string) *ResultBuilder {
	b.result.FlightNumber = number
	return b
}

func (b *ResultBuilder) WithSeats(seats *int) *ResultBuilder {
	b.result.Seats = seats
	return b
}
