package search

import "time"

type Outcome struct {
	Results        []FlightResult
	QueriedDates   []string
	FailedDates    []string
	QuotaExhausted bool
}

// NewOutcome builds an outcome whose slices are never nil so they encode as empty arrays.
func NewOutcome(results []FlightResult, queried, failed []string, quotaExhausted bool) *Outcome {
	if results == nil {
		results = []FlightResult{}
	}
	if queried == nil {
		queried = []string{}
	}
	if failed == nil {
		failed = []string{}
	}
	return &Outcome{
		Results:        results,
		QueriedDates:   queried,
		FailedDates:    failed,
		QuotaExhausted: quotaExhausted,
	}
}

// Partial reports whether some dates of the window were not answered.
func (o Outcome) Partial() bool {
	return o.QuotaExhausted || len(o.FailedDates) > 0
}

// Session is the last search of one client, kept for export.
type Session struct {
	Request  Request
	Outcome  Outcome
	StoredAt time.Time
}
