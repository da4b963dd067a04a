package budgetquest

import "testing"

func TestActivityLog_Streak(t *testing.T) {
	var l ActivityLog
	// Recorded out of order, with a duplicate.
	for _, offset := range []int{2, 0, 1, 4, 3, 4} {
		l = l.Record(day(offset))
	}
	if l.Len() != 5 {
		t.Fatalf("Len() = %d, want 5 (duplicates collapse)", l.Len())
	}

	testCases := []struct {
		name string
		asOf int
		want int
	}{
		{name: "Observed on the last active day", asOf: 4, want: 5},
		{name: "Observed the day after", asOf: 5, want: 5},
		{name: "Observed after a missed day", asOf: 6, want: 0},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := l.Streak(day(tc.asOf)); got != tc.want {
				t.Errorf("Streak(%s) = %d, want %d", day(tc.asOf), got, tc.want)
			}
		})
	}
}

func TestActivityLog_DaysAreSortedAndUnique(t *testing.T) {
	var l ActivityLog
	for _, offset := range []int{5, 1, 3, 1, 5} {
		l = l.Record(day(offset))
	}
	var got []int
	for d := range l.Days() {
		got = append(got, d.Sub(day(0)))
	}
	want := []int{1, 3, 5}
	if len(got) != len(want) {
		t.Fatalf("Days() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("Days() = %v, want %v", got, want)
		}
	}
}

func TestActivityLog_StreakCountsOnlyTrailingRun(t *testing.T) {
	var l ActivityLog
	for _, offset := range []int{0, 1, 3, 4} { // gap between day 1 and day 3
		l = l.Record(day(offset))
	}
	if got := l.Streak(day(4)); got != 2 {
		t.Errorf("Streak() = %d, want 2 (run after the gap)", got)
	}
}

func TestActivityLog_Week(t *testing.T) {
	var l ActivityLog
	// Monday, Wednesday of this week, plus noise from the week before.
	for _, offset := range []int{-3, 0, 2} {
		l = l.Record(day(offset))
	}
	want := [7]bool{true, false, true, false, false, false, false}
	if got := l.Week(day(4)); got != want {
		t.Errorf("Week() = %v, want %v", got, want)
	}
}

func TestActivityLog_BothViewsAgreeWithStateMachines(t *testing.T) {
	// The unified log must agree with the two event-level machines fed the
	// same activity dates.
	var l ActivityLog
	var s Streak
	var w WeekLog
	for _, offset := range []int{0, 1, 2, 3} {
		l = l.Record(day(offset))
		s, _ = RecordActivity(s, day(offset))
		w, _, _ = w.Mark(day(offset))
	}
	if got := l.Streak(day(3)); got != s.Count {
		t.Errorf("log streak %d != machine streak %d", got, s.Count)
	}
	if got := l.Week(day(3)); got != w.Days {
		t.Errorf("log week %v != machine week %v", got, w.Days)
	}
}
