package usecase

//go:generate mockgen -source=search.go -destination=../../tests/mock/usecase/mock_search.go

import (
	"context"
	"log/slog"
	"time"

	"fullplanes/internal/domain/quota"
	"fullplanes/internal/domain/search"
	"fullplanes/internal/infra"
	"fullplanes/internal/pkg/clock"
	"fullplanes/internal/pkg/errs"
	"fullplanes/internal/pkg/metrics"
)

// FlightOfferProvider answers one (origin, destination, date) query. Failures are infra.Error values.
type FlightOfferProvider interface {
	SearchOffers(ctx context.Context, origin, destination string, date time.Time) ([]search.RawOffer, error)
}

type SearchUseCase interface {
	Execute(ctx context.Context, req search.Request) (*search.Outcome, error)
	QuotaStatus(ctx context.Context) (quota.State, error)
}

type searchUseCaseImpl struct {
	provider   FlightOfferProvider
	quota      QuotaTracker
	normalizer *ResultNormalizer
	clock      clock.Clock
	metrics    *metrics.Metrics
	logger     *slog.Logger
}

func NewSearchUseCase(
	provider FlightOfferProvider,
	quota QuotaTracker,
	normalizer *ResultNormalizer,
	clk clock.Clock,
	m *metrics.Metrics,
	logger *slog.Logger,
) SearchUseCase {
	return &searchUseCaseImpl{
		provider:   provider,
		quota:      quota,
		normalizer: normalizer,
		clock:      clk,
		metrics:    m,
		logger:     logger,
	}
}

func (s *searchUseCaseImpl) QuotaStatus(ctx context.Context) (quota.State, error) {
	return s.quota.Snapshot(ctx)
}

// Execute queries each date of the window in order, one quota unit per date. Per-date provider
// failures are recorded in the outcome; only auth and quota store failures abort the search.
func (s *searchUseCaseImpl) Execute(ctx context.Context, req search.Request) (*search.Outcome, error) {
	if err := req.Validate(); err != nil {
		s.metrics.Searches.WithLabelValues("invalid").Inc()
		return nil, errs.Mark(err, errs.ErrValidation)
	}

	started := s.clock.Now()
	route := req.Route()

	var (
		results        []search.FlightResult
		queried        []string
		failed         []string
		quotaExhausted bool
	)

	for _, date := range req.Dates() {
		day := date.Format(search.DateLayout)
		if err := ctx.Err(); err != nil {
			s.metrics.Searches.WithLabelValues("aborted").Inc()
			return nil, errs.Wrap(err, "search cancelled")
		}

		granted, err := s.quota.Reserve(ctx, 1)
		if err != nil {
			s.metrics.Searches.WithLabelValues("aborted").Inc()
			return nil, err
		}
		if granted == 0 {
			quotaExhausted = true
			s.logger.Warn("monthly quota exhausted, stopping search",
				slog.String("origin", route.Origin),
				slog.String("destination", route.Destination),
				slog.String("date", day))
			break
		}

		queried = append(queried, day)

		offers, err := s.provider.SearchOffers(ctx, route.Origin, route.Destination, date)
		switch {
		case err == nil:
			s.metrics.ProviderCalls.WithLabelValues("ok").Inc()
		case infra.IsKind(err, infra.KindNoOffers):
			s.metrics.ProviderCalls.WithLabelValues("no_offers").Inc()
			continue
		case infra.IsKind(err, infra.KindAuthFailure):
			s.metrics.ProviderCalls.WithLabelValues("auth_failure").Inc()
			s.metrics.Searches.WithLabelValues("aborted").Inc()
			s.logger.Error("provider rejected credentials, aborting search",
				slog.String("origin", route.Origin),
				slog.String("destination", route.Destination),
				slog.String("date", day))
			return nil, errs.Mark(err, errs.ErrProviderUnavailable)
		default:
			s.metrics.ProviderCalls.WithLabelValues("failed").Inc()
			failed = append(failed, day)
			s.logger.Warn("provider query failed, continuing with next date",
				slog.String("origin", route.Origin),
				slog.String("destination", route.Destination),
				slog.String("date", day),
				slog.String("kind", string(infra.KindOf(err))),
				slog.String("error", err.Error()))
			continue
		}

		results = append(results, s.normalizer.NormalizeAll(route, date, offers)...)
	}

	results = search.FilterBySeats(results, req.MaxSeats)
	results = search.Deduplicate(results)
	search.SortCanonical(results)

	outcome := search.NewOutcome(results, queried, failed, quotaExhausted)

	status := "complete"
	if outcome.Partial() {
		status = "partial"
	}
	s.metrics.Searches.WithLabelValues(status).Inc()
	s.metrics.SearchDuration.Observe(s.clock.Now().Sub(started).Seconds())

	s.logger.Info("search finished",
		slog.String("origin", route.Origin),
		slog.String("destination", route.Destination),
		slog.Int("results", len(outcome.Results)),
		slog.Int("queried", len(outcome.QueriedDates)),
		slog.Int("failed", len(outcome.FailedDates)),
		slog.Bool("quota_exhausted", outcome.QuotaExhausted))

	return outcome, nil
}
