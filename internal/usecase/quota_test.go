//go:build unit

package usecase_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"fullplanes/internal/domain/quota"
	"fullplanes/internal/infra/quotastore"
	"fullplanes/internal/pkg/clock"
	"fullplanes/internal/pkg/config"
	"fullplanes/internal/pkg/errs"
	"fullplanes/internal/usecase"
	"fullplanes/tests/common/testutil"
	usecasemock "fullplanes/tests/mock/usecase"

	prom "github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newTracker(t *testing.T, limit int, store usecase.QuotaStore, clk clock.Clock) usecase.QuotaTracker {
	t.Helper()
	cfg := config.NewTestConfig()
	cfg.Quota.MonthlyLimit = limit
	cfg.Quota.TimeZone = "UTC"

	tracker, err := usecase.NewQuotaTracker(cfg, store, clk, testutil.NewMetrics(), testutil.NewDiscardLogger())
	require.NoError(t, err)
	return tracker
}

func TestQuotaTracker(t *testing.T) {
	ctx := context.Background()
	march := time.Date(2025, 3, 15, 12, 0, 0, 0, time.UTC)

	t.Run("grants never exceed the limit", func(t *testing.T) {
		tracker := newTracker(t, 10, newMemoryQuotaStore(), clock.NewMockClock(march))

		total := 0
		for _, n := range []int{3, 4, 5, 2, 1} {
			granted, err := tracker.Reserve(ctx, n)
			require.NoError(t, err)
			assert.LessOrEqual(t, granted, n)
			total += granted
		}

		assert.Equal(t, 10, total)
		remaining, err := tracker.Remaining(ctx)
		require.NoError(t, err)
		assert.Equal(t, 0, remaining)
	})

	t.Run("concurrent reservations are serialized", func(t *testing.T) {
		tracker := newTracker(t, 25, newMemoryQuotaStore(), clock.NewMockClock(march))

		var (
			wg    sync.WaitGroup
			mu    sync.Mutex
			total int
		)
		for i := 0; i < 100; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				granted, err := tracker.Reserve(ctx, 1)
				assert.NoError(t, err)
				mu.Lock()
				total += granted
				mu.Unlock()
			}()
		}
		wg.Wait()

		assert.Equal(t, 25, total)
	})

	t.Run("counter resets on the first call of a new month", func(t *testing.T) {
		clk := clock.NewMockClock(march)
		store := newMemoryQuotaStore()
		tracker := newTracker(t, 5, store, clk)

		granted, err := tracker.Reserve(ctx, 5)
		require.NoError(t, err)
		require.Equal(t, 5, granted)

		clk.Set(time.Date(2025, 4, 1, 0, 0, 1, 0, time.UTC))

		remaining, err := tracker.Remaining(ctx)
		require.NoError(t, err)
		assert.Equal(t, 5, remaining)

		granted, err = tracker.Reserve(ctx, 2)
		require.NoError(t, err)
		assert.Equal(t, 2, granted)

		saved, err := store.Load(ctx)
		require.NoError(t, err)
		assert.Equal(t, &quota.State{Month: "2025-04", Used: 2, Limit: 5}, saved)
	})

	t.Run("persisted usage is picked up on first use", func(t *testing.T) {
		store := newMemoryQuotaStore()
		require.NoError(t, store.Save(ctx, quota.State{Month: "2025-03", Used: 7}))

		tracker := newTracker(t, 10, store, clock.NewMockClock(march))

		snap, err := tracker.Snapshot(ctx)
		require.NoError(t, err)
		assert.Equal(t, quota.State{Month: "2025-03", Used: 7, Limit: 10}, snap)
	})

	t.Run("usage from a previous month is ignored", func(t *testing.T) {
		store := newMemoryQuotaStore()
		require.NoError(t, store.Save(ctx, quota.State{Month: "2025-02", Used: 10}))

		tracker := newTracker(t, 10, store, clock.NewMockClock(march))

		remaining, err := tracker.Remaining(ctx)
		require.NoError(t, err)
		assert.Equal(t, 10, remaining)
	})

	t.Run("failed save rolls the reservation back", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		store := usecasemock.NewMockQuotaStore(ctrl)

		store.EXPECT().Load(gomock.Any()).Return(nil, nil)
		store.EXPECT().Save(gomock.Any(), gomock.Any()).Return(errors.New("disk full"))
		store.EXPECT().Save(gomock.Any(), quota.State{Month: "2025-03", Used: 1, Limit: 3}).Return(nil)

		tracker := newTracker(t, 3, store, clock.NewMockClock(march))

		granted, err := tracker.Reserve(ctx, 1)
		require.Error(t, err)
		assert.True(t, errors.Is(err, errs.ErrQuotaStoreFailed))
		assert.Equal(t, 0, granted)

		remaining, err := tracker.Remaining(ctx)
		require.NoError(t, err)
		assert.Equal(t, 3, remaining)

		granted, err = tracker.Reserve(ctx, 1)
		require.NoError(t, err)
		assert.Equal(t, 1, granted)
	})

	t.Run("zero grant is not persisted", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		store := usecasemock.NewMockQuotaStore(ctrl)

		store.EXPECT().Load(gomock.Any()).Return(&quota.State{Month: "2025-03", Used: 2}, nil)

		tracker := newTracker(t, 2, store, clock.NewMockClock(march))

		granted, err := tracker.Reserve(ctx, 1)
		require.NoError(t, err)
		assert.Equal(t, 0, granted)
	})

	t.Run("load failure surfaces as store failure", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		store := usecasemock.NewMockQuotaStore(ctrl)
		store.EXPECT().Load(gomock.Any()).Return(nil, errors.New("connection refused"))

		tracker := newTracker(t, 2, store, clock.NewMockClock(march))

		_, err := tracker.Remaining(ctx)
		assert.ErrorIs(t, err, errs.ErrQuotaStoreFailed)
	})

	t.Run("shared store reserves atomically and is reloaded on every read", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		store := usecasemock.NewMockSharedQuotaStore(ctrl)

		gomock.InOrder(
			store.EXPECT().Load(gomock.Any()).Return(&quota.State{Month: "2025-03", Used: 1}, nil),
			store.EXPECT().Load(gomock.Any()).Return(&quota.State{Month: "2025-03", Used: 3}, nil),
			store.EXPECT().ReserveShared(gomock.Any(), "2025-03", 4, 5).
				Return(quota.State{Month: "2025-03", Used: 5, Limit: 5}, 2, nil),
		)

		tracker := newTracker(t, 5, store, clock.NewMockClock(march))

		remaining, err := tracker.Remaining(ctx)
		require.NoError(t, err)
		assert.Equal(t, 4, remaining)

		// another process used two units in between
		granted, err := tracker.Reserve(ctx, 4)
		require.NoError(t, err)
		assert.Equal(t, 2, granted)
	})

	t.Run("two trackers on one shared store never exceed the limit together", func(t *testing.T) {
		store := &sharedQuotaStore{}
		first := newTracker(t, 5, store, clock.NewMockClock(march))
		second := newTracker(t, 5, store, clock.NewMockClock(march))

		_, err := first.Remaining(ctx)
		require.NoError(t, err)

		g1, err := second.Reserve(ctx, 3)
		require.NoError(t, err)
		g2, err := first.Reserve(ctx, 4)
		require.NoError(t, err)

		assert.Equal(t, 3, g1)
		assert.Equal(t, 2, g2)

		remaining, err := second.Remaining(ctx)
		require.NoError(t, err)
		assert.Equal(t, 0, remaining)
	})

	t.Run("failed shared reservation grants nothing", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		store := usecasemock.NewMockSharedQuotaStore(ctrl)

		store.EXPECT().Load(gomock.Any()).Return(nil, nil)
		store.EXPECT().ReserveShared(gomock.Any(), "2025-03", 1, 3).Return(quota.State{}, 0, errors.New("lock timeout"))

		tracker := newTracker(t, 3, store, clock.NewMockClock(march))

		granted, err := tracker.Reserve(ctx, 1)
		assert.ErrorIs(t, err, errs.ErrQuotaStoreFailed)
		assert.Equal(t, 0, granted)
	})

	t.Run("invalid configuration is rejected", func(t *testing.T) {
		cfg := config.NewTestConfig()
		cfg.Quota.TimeZone = "Mars/Olympus"
		_, err := usecase.NewQuotaTracker(cfg, newMemoryQuotaStore(), clock.NewRealClock(), testutil.NewMetrics(), testutil.NewDiscardLogger())
		assert.Error(t, err)

		cfg = config.NewTestConfig()
		cfg.Quota.MonthlyLimit = 0
		_, err = usecase.NewQuotaTracker(cfg, newMemoryQuotaStore(), clock.NewRealClock(), testutil.NewMetrics(), testutil.NewDiscardLogger())
		assert.Error(t, err)
	})

	t.Run("metrics follow reservations", func(t *testing.T) {
		cfg := config.NewTestConfig()
		cfg.Quota.MonthlyLimit = 2
		cfg.Quota.TimeZone = "UTC"
		m := testutil.NewMetrics()
		tracker, err := usecase.NewQuotaTracker(cfg, newMemoryQuotaStore(), clock.NewMockClock(march), m, testutil.NewDiscardLogger())
		require.NoError(t, err)

		_, err = tracker.Reserve(ctx, 3)
		require.NoError(t, err)

		assert.Equal(t, 2.0, prom.ToFloat64(m.QuotaReserved))
		assert.Equal(t, 1.0, prom.ToFloat64(m.QuotaDenied))
		assert.Equal(t, 0.0, prom.ToFloat64(m.QuotaRemaining))
	})
}

func newMemoryQuotaStore() *quotastore.MemoryStore {
	return quotastore.NewMemoryStore()
}

// sharedQuotaStore stands in for a database row several processes reserve against.
type sharedQuotaStore struct {
	mu    sync.Mutex
	state *quota.State
}

func (s *sharedQuotaStore) Load(_ context.Context) (*quota.State, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state == nil {
		return nil, nil
	}
	st := *s.state
	return &st, nil
}

func (s *sharedQuotaStore) Save(_ context.Context, state quota.State) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state = &state
	return nil
}

func (s *sharedQuotaStore) ReserveShared(_ context.Context, month string, n, limit int) (quota.State, int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	current := quota.NewState(month, 0, limit)
	if s.state != nil {
		current = quota.NewState(s.state.Month, s.state.Used, limit).ForMonth(month)
	}
	next, granted := current.Grant(n)
	if granted > 0 {
		s.state = &next
	}
	return next, granted, nil
}
