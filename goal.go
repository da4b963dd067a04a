package budgetquest

import (
	"fmt"

	"github.com/etnz/budgetquest/date"
)

// GoalStatus is the lifecycle state of a savings goal.
type GoalStatus string

const (
	GoalActive    GoalStatus = "active"
	GoalCompleted GoalStatus = "completed"
	GoalFailed    GoalStatus = "failed"
)

func (s GoalStatus) String() string { return string(s) }

// ParseGoalStatus parses a string into a GoalStatus.
func ParseGoalStatus(s string) (GoalStatus, error) {
	switch GoalStatus(s) {
	case GoalActive, GoalCompleted, GoalFailed:
		return GoalStatus(s), nil
	default:
		return "", fmt.Errorf("unknown goal status: %q", s)
	}
}

// Goal is a user-defined savings target ("quest") with progress tracking and
// a one-time completion reward.
//
// The completed status is terminal: once reached, Current and Status never
// revert, and funding a completed goal never re-rewards.
type Goal struct {
	ID          string
	Title       string
	Description string
	Target      Money
	Current     Money
	Deadline    date.Date // zero when the goal has no deadline
	Status      GoalStatus
	XPReward    int // frozen at creation
	CoinReward  int // frozen at creation
	CreatedAt   date.Date
	CompletedAt date.Date
}

// NewGoal creates an active goal for the given target amount.
//
// The completion rewards are frozen now, proportional to ambition:
// floor(target/10) XP and floor(target/5) coins. Editing the target later
// does not retroactively change the promised rewards.
func NewGoal(id, title string, target Money, created date.Date) (Goal, error) {
	if !target.IsPositive() {
		return Goal{}, fmt.Errorf("goal target must be greater than 0, got %s", target)
	}
	return Goal{
		ID:         id,
		Title:      title,
		Target:     target,
		Current:    M(0, target.Currency()),
		Status:     GoalActive,
		XPReward:   int(target.DivFloor(10)),
		CoinReward: int(target.DivFloor(5)),
		CreatedAt:  created,
	}, nil
}

// Progress returns the funded share of the target, capped at 100%.
func (g Goal) Progress() Percent {
	p := Percent(100 * g.Current.Ratio(g.Target))
	if p > 100 {
		return 100
	}
	return p
}

// Fund adds amount to the goal's funding progress and returns the new goal
// and whether this funding completed it.
//
// Funding never overshoots: Current is clamped at Target. Completion fires
// only on the active→completed edge; a goal already completed (or failed)
// still clamps but reports completedNow=false, so rewards are granted
// exactly once. A negative amount is a validation error.
func Fund(g Goal, amount Money, on date.Date) (Goal, bool, error) {
	if amount.IsNegative() {
		return g, false, fmt.Errorf("funding amount cannot be negative, got %s", amount)
	}
	g.Current = g.Current.Add(amount).Min(g.Target)
	if g.Status != GoalActive {
		return g, false, nil
	}
	if g.Current.GreaterThanOrEqual(g.Target) {
		g.Status = GoalCompleted
		g.CompletedAt = on
		return g, true, nil
	}
	return g, false, nil
}

// Expire applies the deadline-miss transition: an active goal whose deadline
// is strictly before today becomes failed. Any other goal is returned as is.
func Expire(g Goal, today date.Date) Goal {
	if g.Status == GoalActive && !g.Deadline.IsZero() && g.Deadline.Before(today) {
		g.Status = GoalFailed
	}
	return g
}
