package budgetquest

import (
	"iter"
	"slices"

	"github.com/etnz/budgetquest/date"
)

// ActivityLog stores the unique, sorted calendar days on which a user had at
// least one qualifying activity.
//
// Both streak representations (the running counter and the Mon..Sun week
// vector) are derivable from this one log, so callers can persist the log
// alone instead of maintaining two divergent structures.
type ActivityLog struct {
	days []date.Date
}

// Record returns a log with the given day added. Recording an already
// present day returns the log unchanged.
func (l ActivityLog) Record(on date.Date) ActivityLog {
	i, found := slices.BinarySearchFunc(l.days, on, func(a, b date.Date) int { return a.Sub(b) })
	if found {
		return l
	}
	days := make([]date.Date, 0, len(l.days)+1)
	days = append(days, l.days[:i]...)
	days = append(days, on)
	days = append(days, l.days[i:]...)
	return ActivityLog{days: days}
}

// Len returns the number of distinct active days.
func (l ActivityLog) Len() int { return len(l.days) }

// Latest returns the most recent active day, or the zero date when empty.
func (l ActivityLog) Latest() date.Date {
	if len(l.days) == 0 {
		return date.Date{}
	}
	return l.days[len(l.days)-1]
}

// Days returns an iterator over all active days in chronological order.
func (l ActivityLog) Days() iter.Seq[date.Date] {
	return func(yield func(date.Date) bool) {
		for _, d := range l.days {
			if !yield(d) {
				return
			}
		}
	}
}

// Streak returns the length of the consecutive run of active days ending at
// the most recent active day, as observed on asOf. A log whose latest
// activity is more than one day before asOf has a broken streak of 0.
func (l ActivityLog) Streak(asOf date.Date) int {
	if len(l.days) == 0 {
		return 0
	}
	if asOf.Sub(l.Latest()) > 1 {
		return 0
	}
	count := 1
	for i := len(l.days) - 2; i >= 0; i-- {
		if l.days[i+1].Sub(l.days[i]) != 1 {
			break
		}
		count++
	}
	return count
}

// Week returns the Mon..Sun completion vector of the week containing asOf.
func (l ActivityLog) Week(asOf date.Date) [7]bool {
	var days [7]bool
	week := date.NewRange(asOf, date.Weekly)
	for _, d := range l.days {
		if week.Contains(d) {
			days[weekdayIndex(d)] = true
		}
	}
	return days
}
