package usecase

//go:generate mockgen -source=quota.go -destination=../../tests/mock/usecase/mock_quota.go

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"fullplanes/internal/domain/quota"
	"fullplanes/internal/pkg/clock"
	"fullplanes/internal/pkg/config"
	"fullplanes/internal/pkg/errs"
	"fullplanes/internal/pkg/metrics"
)

// QuotaStore persists the single global counter. Load returns nil, nil when nothing is stored yet.
type QuotaStore interface {
	Load(ctx context.Context) (*quota.State, error)
	Save(ctx context.Context, state quota.State) error
}

// SharedQuotaStore is a QuotaStore that other processes write to as well. ReserveShared applies
// the grant to the persisted counter in one atomic step, rolling it over to month first, and
// returns the stored state together with the units granted.
type SharedQuotaStore interface {
	QuotaStore
	ReserveShared(ctx context.Context, month string, n, limit int) (quota.State, int, error)
}

type QuotaTracker interface {
	Remaining(ctx context.Context) (int, error)
	Reserve(ctx context.Context, n int) (int, error)
	Snapshot(ctx context.Context) (quota.State, error)
}

type quotaTrackerImpl struct {
	mu       sync.Mutex
	store    QuotaStore
	shared   SharedQuotaStore // nil unless store is shared between processes
	clock    clock.Clock
	loc      *time.Location
	limit    int
	state    *quota.State
	rolledTo string // month of the last logged rollover
	metrics  *metrics.Metrics
	logger   *slog.Logger
}

func NewQuotaTracker(
	cfg config.Config,
	store QuotaStore,
	clk clock.Clock,
	m *metrics.Metrics,
	logger *slog.Logger,
) (QuotaTracker, error) {
	loc, err := time.LoadLocation(cfg.Quota.TimeZone)
	if err != nil {
		return nil, errs.Wrapf(err, "invalid quota time zone %q", cfg.Quota.TimeZone)
	}
	if cfg.Quota.MonthlyLimit <= 0 {
		return nil, errs.Newf("quota monthly limit must be positive, got %d", cfg.Quota.MonthlyLimit)
	}

	shared, _ := store.(SharedQuotaStore)

	return &quotaTrackerImpl{
		store:   store,
		shared:  shared,
		clock:   clk,
		loc:     loc,
		limit:   cfg.Quota.MonthlyLimit,
		metrics: m,
		logger:  logger,
	}, nil
}

func (q *quotaTrackerImpl) Remaining(ctx context.Context) (int, error) {
	q.mu.Lock()
	defer q.mu.Unlock()

	state, err := q.current(ctx)
	if err != nil {
		return 0, err
	}
	return state.Remaining(), nil
}

func (q *quotaTrackerImpl) Snapshot(ctx context.Context) (quota.State, error) {
	q.mu.Lock()
	defer q.mu.Unlock()

	state, err := q.current(ctx)
	if err != nil {
		return quota.State{}, err
	}
	return state, nil
}

// Reserve grants min(n, remaining) units. The in-memory counter only advances once the store accepted it.
func (q *quotaTrackerImpl) Reserve(ctx context.Context, n int) (int, error) {
	q.mu.Lock()
	defer q.mu.Unlock()

	state, err := q.current(ctx)
	if err != nil {
		return 0, err
	}

	var (
		next    quota.State
		granted int
	)
	if q.shared != nil {
		next, granted, err = q.shared.ReserveShared(ctx, state.Month, n, q.limit)
	} else {
		next, granted = state.Grant(n)
		if granted > 0 {
			err = q.store.Save(ctx, next)
		}
	}
	if err != nil {
		q.logger.Error("failed to persist quota, reservation rolled back",
			slog.String("month", state.Month),
			slog.Int("used", state.Used),
			slog.Int("requested", n),
			slog.String("error", err.Error()))
		return 0, errs.Mark(errs.Wrap(err, "save quota"), errs.ErrQuotaStoreFailed)
	}

	if denied := n - granted; denied > 0 {
		q.metrics.QuotaDenied.Add(float64(denied))
	}
	q.state = &next
	q.metrics.QuotaReserved.Add(float64(granted))
	q.metrics.QuotaRemaining.Set(float64(next.Remaining()))
	return granted, nil
}

// current loads the state on first use and rolls it over when the month changed. A shared store is
// reloaded on every call so usage from other processes is visible. Caller holds mu.
func (q *quotaTrackerImpl) current(ctx context.Context) (quota.State, error) {
	month := quota.MonthOf(q.clock.Now(), q.loc)

	if q.state == nil || q.shared != nil {
		loaded, err := q.store.Load(ctx)
		if err != nil {
			return quota.State{}, errs.Mark(errs.Wrap(err, "load quota"), errs.ErrQuotaStoreFailed)
		}
		state := quota.NewState(month, 0, q.limit)
		if loaded != nil {
			state = quota.NewState(loaded.Month, loaded.Used, q.limit)
		}
		q.state = &state
	}

	if q.state.Month != month {
		if q.rolledTo != month {
			q.logger.Info("new quota month, resetting counter",
				slog.String("previous", q.state.Month),
				slog.String("month", month))
			q.rolledTo = month
		}
		next := q.state.ForMonth(month)
		q.state = &next
	}

	q.metrics.QuotaRemaining.Set(float64(q.state.Remaining()))
	return *q.state, nil
}
