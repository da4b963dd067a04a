package budgetquest

import (
	"github.com/etnz/budgetquest/date"
)

// StreakOutcome classifies what a recorded activity did to a streak.
type StreakOutcome int

const (
	// StreakSameDay means the day already had activity; nothing changed.
	StreakSameDay StreakOutcome = iota
	// StreakStarted means this is the first ever qualifying day.
	StreakStarted
	// StreakContinued means the activity extends a running streak by one day.
	StreakContinued
	// StreakBroken means at least one day was missed; the count restarts at 1.
	StreakBroken
)

func (o StreakOutcome) String() string {
	switch o {
	case StreakSameDay:
		return "same-day"
	case StreakStarted:
		return "started"
	case StreakContinued:
		return "continued"
	case StreakBroken:
		return "broken"
	default:
		return "unknown"
	}
}

// Streak is the running-counter streak state.
//
// Invariant: Count is the number of consecutive calendar days ending at
// LastActivity with at least one qualifying activity each.
type Streak struct {
	LastActivity date.Date `json:"lastActivity"`
	Count        int       `json:"count"`
}

// RecordActivity folds one qualifying activity on 'today' into the streak
// and returns the new state and what happened.
//
// An activity dated before LastActivity (clock skew, out-of-order events) is
// absorbed as same-day: the streak never decrements and never errors.
func RecordActivity(s Streak, today date.Date) (Streak, StreakOutcome) {
	if s.LastActivity.IsZero() || s.Count == 0 {
		return Streak{LastActivity: today, Count: 1}, StreakStarted
	}
	switch diff := today.Sub(s.LastActivity); {
	case diff <= 0:
		return s, StreakSameDay
	case diff == 1:
		return Streak{LastActivity: today, Count: s.Count + 1}, StreakContinued
	default:
		return Streak{LastActivity: today, Count: 1}, StreakBroken
	}
}

// WeekLog is the weekly activity vector: one boolean per weekday (Mon..Sun)
// of the current week, discarded wholesale when the week rolls over.
type WeekLog struct {
	WeekStart date.Date `json:"weekStart"` // Monday of the tracked week
	Days      [7]bool   `json:"days"`      // Mon..Sun
}

// weekdayIndex maps a date's weekday to the Mon=0..Sun=6 slot.
func weekdayIndex(d date.Date) int {
	return (int(d.Weekday()) + 6) % 7
}

// Rollover returns the log valid for the week containing 'today': the same
// log if the week has not changed, or a fresh empty one for the new week.
// The log never rolls backwards: a date from an earlier week (clock skew,
// backfilled events) leaves the tracked week and its marks untouched.
func (w WeekLog) Rollover(today date.Date) WeekLog {
	start := today.StartOf(date.Weekly)
	if w.WeekStart == start || start.Before(w.WeekStart) {
		return w
	}
	return WeekLog{WeekStart: start}
}

// Mark flags today's slot in the week log. It returns the new log, whether
// the slot was newly set, and whether this mark made the week complete.
// A week already marked today, or already complete, reports false twice.
// A date before the tracked week is absorbed as a no-op, like the streak
// counter absorbs it as same-day.
func (w WeekLog) Mark(today date.Date) (WeekLog, bool, bool) {
	w = w.Rollover(today)
	if today.Before(w.WeekStart) {
		return w, false, false
	}
	idx := weekdayIndex(today)
	if w.Days[idx] {
		return w, false, false
	}
	w.Days[idx] = true
	return w, true, w.Complete()
}

// Complete reports whether all seven slots of the week are set.
func (w WeekLog) Complete() bool {
	for _, on := range w.Days {
		if !on {
			return false
		}
	}
	return true
}
