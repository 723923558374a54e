package quota

import "time"

const MonthLayout = "2006-01"

// State is the monthly provider call counter. Used never exceeds Limit.
type State struct {
	Month string
	Used  int
	Limit int
}

// MonthOf formats t as a quota month in loc.
func MonthOf(t time.Time, loc *time.Location) string {
	return t.In(loc).Format(MonthLayout)
}

func NewState(month string, used, limit int) State {
	if used < 0 {
		used = 0
	}
	if used > limit {
		used = limit
	}
	return State{Month: month, Used: used, Limit: limit}
}

func (s State) Remaining() int {
	if r := s.Limit - s.Used; r > 0 {
		return r
	}
	return 0
}

// ForMonth returns s unchanged for the same month and a fresh counter for any other.
func (s State) ForMonth(month string) State {
	if s.Month == month {
		return s
	}
	return State{Month: month, Used: 0, Limit: s.Limit}
}

// Grant takes min(n, Remaining) units and returns the new state with the granted amount.
func (s State) Grant(n int) (State, int) {
	if n <= 0 {
		return s, 0
	}
	granted := min(n, s.Remaining())
	s.Used += granted
	return s, granted
}
