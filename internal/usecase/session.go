package usecase

//go:generate mockgen -source=session.go -destination=../../tests/mock/usecase/mock_session.go

import (
	"fullplanes/internal/domain/search"
	"fullplanes/internal/pkg/clock"
	"fullplanes/internal/pkg/errs"
)

// ExportHeader is the first row of every CSV export.
var ExportHeader = []string{
	"Datum", "Abflug", "Ankunft", "Von", "Nach", "Dauer", "Fluggesellschaft", "Flugnr.", "Freie Plaetze",
}

type SessionStore interface {
	Put(id string, session search.Session)
	Get(id string) (search.Session, bool)
}

type SessionUseCase interface {
	Store(sessionID string, req search.Request, outcome search.Outcome)
	Current(sessionID string) (*search.Session, error)
	ExportRows(sessionID string) ([][]string, error)
}

type sessionUseCaseImpl struct {
	store SessionStore
	clock clock.Clock
}

func NewSessionUseCase(store SessionStore, clk clock.Clock) SessionUseCase {
	return &sessionUseCaseImpl{store: store, clock: clk}
}

// Store replaces whatever the session held before.
func (s *sessionUseCaseImpl) Store(sessionID string, req search.Request, outcome search.Outcome) {
	if sessionID == "" {
		return
	}
	s.store.Put(sessionID, search.Session{
		Request:  req,
		Outcome:  outcome,
		StoredAt: s.clock.Now(),
	})
}

func (s *sessionUseCaseImpl) Current(sessionID string) (*search.Session, error) {
	if sessionID == "" {
		return nil, errs.ErrNoSession
	}
	session, ok := s.store.Get(sessionID)
	if !ok {
		return nil, errs.ErrNoSession
	}
	return &session, nil
}

// ExportRows returns the header followed by one row per result in canonical order.
func (s *sessionUseCaseImpl) ExportRows(sessionID string) ([][]string, error) {
	session, err := s.Current(sessionID)
	if err != nil {
		return nil, err
	}

	results := append([]search.FlightResult(nil), session.Outcome.Results...)
	search.SortCanonical(results)

	rows := make([][]string, 0, len(results)+1)
	rows = append(rows, append([]string(nil), ExportHeader...))
	for _, r := range results {
		rows = append(rows, []string{
			r.Date,
			r.DepartureTime,
			r.ArrivalTime,
			r.FromFull,
			r.ToFull,
			r.Duration,
			r.AirlineName,
			r.FlightNumber,
			r.SeatsDisplay(),
		})
	}
	return rows, nil
}
