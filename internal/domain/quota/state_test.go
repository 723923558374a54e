//go:build unit

package quota_test

import (
	"testing"
	"time"

	"fullplanes/internal/domain/quota"

	"github.com/stretchr/testify/assert"
)

func TestState(t *testing.T) {
	t.Run("grant never exceeds remaining", func(t *testing.T) {
		s := quota.NewState("2025-03", 8, 10)

		s, granted := s.Grant(5)
		assert.Equal(t, 2, granted)
		assert.Equal(t, 10, s.Used)
		assert.Equal(t, 0, s.Remaining())

		s, granted = s.Grant(1)
		assert.Equal(t, 0, granted)
		assert.Equal(t, 10, s.Used)
	})

	t.Run("non-positive request grants nothing", func(t *testing.T) {
		s := quota.NewState("2025-03", 0, 10)
		_, granted := s.Grant(0)
		assert.Equal(t, 0, granted)
		_, granted = s.Grant(-3)
		assert.Equal(t, 0, granted)
	})

	t.Run("new month resets used", func(t *testing.T) {
		s := quota.NewState("2025-03", 10, 10)

		assert.Equal(t, s, s.ForMonth("2025-03"))
		next := s.ForMonth("2025-04")
		assert.Equal(t, "2025-04", next.Month)
		assert.Equal(t, 0, next.Used)
		assert.Equal(t, 10, next.Remaining())
	})

	t.Run("loaded counters are clamped", func(t *testing.T) {
		assert.Equal(t, 10, quota.NewState("2025-03", 25, 10).Used)
		assert.Equal(t, 0, quota.NewState("2025-03", -1, 10).Used)
	})

	t.Run("month follows the quota time zone", func(t *testing.T) {
		berlin, err := time.LoadLocation("Europe/Berlin")
		if err != nil {
			t.Skip("tzdata not available")
		}
		// 23:30 UTC on March 31 is already April in Berlin
		ts := time.Date(2025, 3, 31, 23, 30, 0, 0, time.UTC)
		assert.Equal(t, "2025-04", quota.MonthOf(ts, berlin))
		assert.Equal(t, "2025-03", quota.MonthOf(ts, time.UTC))
	})
}
