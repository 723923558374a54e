package response

import (
	"fullplanes/internal/domain/airport"
	"fullplanes/internal/domain/quota"
	"fullplanes/internal/domain/search"
	reqdto "fullplanes/internal/handler/dto/request"
)

type AirportOption struct {
	IATA      string `json:"iata"`
	Label     string `json:"label"`
	Category  string `json:"category"`
	Separator bool   `json:"separator,omitempty"`
}

type FormDefaults struct {
	Origin      string `json:"origin"`
	Destination string `json:"destination"`
	StartDate   string `json:"start_date"`
	EndDate     string `json:"end_date"`
	MaxSeats    string `json:"max_seats"`
}

type OptionsResponse struct {
	Origins        []AirportOption `json:"origins"`
	Destinations   []AirportOption `json:"destinations"`
	RemainingQuota int             `json:"remaining_quota"`
	SearchEnabled  bool            `json:"search_enabled"`
	Defaults       FormDefaults    `json:"defaults"`
}

type QuotaResponse struct {
	Month     string `json:"month"`
	Used      int    `json:"used"`
	Limit     int    `json:"limit"`
	Remaining int    `json:"remaining"`
}

type FlightResultResponse struct {
	Date          string `json:"date"`
	DepartureTime string `json:"departure_time"`
	ArrivalTime   string `json:"arrival_time"`
	From          string `json:"from"`
	To            string `json:"to"`
	Duration      string `json:"duration"`
	Airline       string `json:"airline"`
	FlightNumber  string `json:"flight_number"`
	Seats         *int   `json:"seats"`
	SeatsDisplay  string `json:"seats_display"`
}

type SearchRequestEcho struct {
	Origin      string `json:"origin"`
	Destination string `json:"destination"`
	StartDate   string `json:"start_date"`
	EndDate     string `json:"end_date"`
	MaxSeats    *int   `json:"max_seats,omitempty"`
}

type SearchResponse struct {
	Request        SearchRequestEcho      `json:"request"`
	Results        []FlightResultResponse `json:"results"`
	QueriedDates   []string               `json:"queried_dates"`
	FailedDates    []string               `json:"failed_dates"`
	QuotaExhausted bool                   `json:"quota_exhausted"`
	Partial        bool                   `json:"partial"`
	RemainingQuota int                    `json:"remaining_quota"`
}

func FromAirports(airports []airport.Airport) []AirportOption {
	out := make([]AirportOption, 0, len(airports))
	for _, a := range airports {
		opt := AirportOption{IATA: a.IATA, Category: string(a.Category)}
		if a.IsSeparator() {
			opt.Label = a.Name
			opt.Separator = true
		} else {
			opt.Label = a.DisplayName()
		}
		out = append(out, opt)
	}
	return out
}

func FromOptionsDefaults(d reqdto.OptionsDefaults) FormDefaults {
	return FormDefaults{
		Origin:      d.Origin,
		Destination: d.Destination,
		StartDate:   d.StartDate,
		EndDate:     d.EndDate,
		MaxSeats:    d.MaxSeats,
	}
}

func FromQuotaState(s quota.State) QuotaResponse {
	return QuotaResponse{
		Month:     s.Month,
		Used:      s.Used,
		Limit:     s.Limit,
		Remaining: s.Remaining(),
	}
}

func FromOutcome(req search.Request, outcome search.Outcome, remaining int) SearchResponse {
	results := make([]FlightResultResponse, 0, len(outcome.Results))
	for _, r := range outcome.Results {
		results = append(results, FlightResultResponse{
			Date:          r.Date,
			DepartureTime: r.DepartureTime,
			ArrivalTime:   r.ArrivalTime,
			From:          r.FromFull,
			To:            r.ToFull,
			Duration:      r.Duration,
			Airline:       r.AirlineName,
			FlightNumber:  r.FlightNumber,
			Seats:         r.Seats,
			SeatsDisplay:  r.SeatsDisplay(),
		})
	}

	return SearchResponse{
		Request: SearchRequestEcho{
			Origin:      req.Origin,
			Destination: req.Destination,
			StartDate:   req.StartDate.Format(search.DateLayout),
			EndDate:     req.EndDate.Format(search.DateLayout),
			MaxSeats:    req.MaxSeats,
		},
		Results:        results,
		QueriedDates:   nonNil(outcome.QueriedDates),
		FailedDates:    nonNil(outcome.FailedDates),
		QuotaExhausted: outcome.QuotaExhausted,
		Partial:        outcome.Partial(),
		RemainingQuota: remaining,
	}
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
