package budgetquest

import (
	"reflect"
	"testing"
)

func TestEvaluateAchievements(t *testing.T) {
	testCases := []struct {
		name     string
		stats    AggregateStats
		unlocked AchievementSet
		want     []AchievementType
	}{
		{
			name:  "First completed goal",
			stats: AggregateStats{Level: 1, CompletedGoals: 1, TotalSaved: USD(50)},
			want:  []AchievementType{AchFirstGoal},
		},
		{
			name:     "Idempotent: already unlocked is filtered out",
			stats:    AggregateStats{Level: 1, CompletedGoals: 1, TotalSaved: USD(50)},
			unlocked: NewAchievementSet(AchFirstGoal),
			want:     nil,
		},
		{
			name:  "Five goals unlock both goal badges",
			stats: AggregateStats{Level: 1, CompletedGoals: 5, TotalSaved: USD(50)},
			want:  []AchievementType{AchFirstGoal, AchQuestMaster},
		},
		{
			name:  "Level thresholds",
			stats: AggregateStats{Level: 10},
			want:  []AchievementType{AchLevel5, AchLevel10},
		},
		{
			name:  "Streak thresholds",
			stats: AggregateStats{Level: 1, StreakCount: 30},
			want:  []AchievementType{AchStreak7, AchStreak30},
		},
		{
			name:  "Saver 100 range upper bound",
			stats: AggregateStats{Level: 1, CompletedGoals: 2, TotalSaved: USD(999)},
			// first_goal would fire too, filter it to isolate the savers.
			unlocked: NewAchievementSet(AchFirstGoal),
			want:     []AchievementType{AchSaver100},
		},
		{
			name:     "Saver 1000 only, never both",
			stats:    AggregateStats{Level: 1, CompletedGoals: 2, TotalSaved: USD(1000)},
			unlocked: NewAchievementSet(AchFirstGoal),
			want:     []AchievementType{AchSaver1000},
		},
		{
			name:  "Budget keeper",
			stats: AggregateStats{Level: 1, BudgetKept: true},
			want:  []AchievementType{AchBudgetKeeper},
		},
		{
			name:  "Nothing satisfied",
			stats: AggregateStats{Level: 1},
			want:  nil,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := EvaluateAchievements(tc.stats, tc.unlocked)
			if !reflect.DeepEqual(got, tc.want) {
				t.Errorf("EvaluateAchievements() = %v, want %v", got, tc.want)
			}
		})
	}
}

func TestComputeStats_SumsCompletedTargets(t *testing.T) {
	s := NewPlayerState()
	s.Progression.Level = 4
	s.Streak.Count = 12
	s.Goals = []Goal{
		{ID: "g1", Target: USD(600), Current: USD(600), Status: GoalCompleted},
		{ID: "g2", Target: USD(500), Current: USD(500), Status: GoalCompleted},
		// Funded but active: not counted.
		{ID: "g3", Target: USD(900), Current: USD(850), Status: GoalActive},
		{ID: "g4", Target: USD(100), Status: GoalFailed},
	}
	stats := ComputeStats(s, false)
	if stats.CompletedGoals != 2 {
		t.Errorf("CompletedGoals = %d, want 2", stats.CompletedGoals)
	}
	// Total saved counts pledged targets of completed goals, not funded cash.
	if !stats.TotalSaved.Equal(USD(1100)) {
		t.Errorf("TotalSaved = %s, want %s", stats.TotalSaved, USD(1100))
	}
	if stats.Level != 4 || stats.StreakCount != 12 {
		t.Errorf("stats = %+v, want level 4 streak 12", stats)
	}
}

func TestParseAchievementType(t *testing.T) {
	if _, err := ParseAchievementType("first_goal"); err != nil {
		t.Errorf("ParseAchievementType(first_goal) failed: %v", err)
	}
	if _, err := ParseAchievementType("definitely_not_a_badge"); err == nil {
		t.Error("ParseAchievementType should reject unknown types")
	}
	for _, a := range AllAchievements {
		if a.Info().Title == "" {
			t.Errorf("achievement %s has no metadata", a)
		}
	}
}
