package budgetquest

// AggregateStats is the snapshot of a user's progression-relevant totals
// that the achievement rules are evaluated against.
//
// It is derived fresh from the player state on each evaluation and never
// cached, so the rules only ever see current values, not historical deltas.
type AggregateStats struct {
	Level          int
	StreakCount    int
	CompletedGoals int
	// TotalSaved sums the target amount of completed goals, not the funded
	// amount. This mirrors the historical behavior of the product; see
	// DESIGN.md before changing it.
	TotalSaved Money
	// BudgetKept is true only when the evaluation follows a budget period
	// that closed with spend within budget.
	BudgetKept bool
}

// ComputeStats derives the aggregate stats of a player state. budgetKept is
// supplied by the caller because budget adherence is a property of the
// period-close event, not of the stored state.
func ComputeStats(s PlayerState, budgetKept bool) AggregateStats {
	stats := AggregateStats{
		Level:       s.Progression.Level,
		StreakCount: s.Streak.Count,
		BudgetKept:  budgetKept,
	}
	for _, g := range s.Goals {
		if g.Status == GoalCompleted {
			stats.CompletedGoals++
			stats.TotalSaved = stats.TotalSaved.Add(g.Target)
		}
	}
	return stats
}

// EvaluateAchievements returns the badge types newly satisfied by the given
// stats, in table order, excluding anything already unlocked.
//
// Every rule is an independent "at least" threshold re-checked from scratch,
// so re-running with unchanged stats never re-emits a badge: unlocking is
// monotonic and idempotent by set difference. The two saver badges are
// mutually exclusive by range, so jumping straight past $1000 of savings
// unlocks saver_1000 only, never both.
func EvaluateAchievements(stats AggregateStats, unlocked AchievementSet) []AchievementType {
	var newly []AchievementType
	satisfied := func(t AchievementType, ok bool) {
		if ok && !unlocked.Has(t) {
			newly = append(newly, t)
		}
	}
	satisfied(AchFirstGoal, stats.CompletedGoals >= 1)
	satisfied(AchQuestMaster, stats.CompletedGoals >= 5)
	satisfied(AchLevel5, stats.Level >= 5)
	satisfied(AchLevel10, stats.Level >= 10)
	satisfied(AchStreak7, stats.StreakCount >= 7)
	satisfied(AchStreak30, stats.StreakCount >= 30)
	satisfied(AchSaver100, stats.TotalSaved.GreaterThanOrEqual(M(100, "")) && stats.TotalSaved.LessThan(M(1000, "")))
	satisfied(AchSaver1000, stats.TotalSaved.GreaterThanOrEqual(M(1000, "")))
	satisfied(AchBudgetKeeper, stats.BudgetKept)
	return newly
}
