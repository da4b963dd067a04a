package budgetquest

import (
	"fmt"
	"slices"

	"github.com/etnz/budgetquest/date"
)

// Flat reward amounts. Income logging is deliberately incentivized more than
// expense logging, and goal creation is rewarded independently of goal size.
const (
	xpExpenseLogged = 10
	xpIncomeLogged  = 20
	xpGoalCreated   = 50

	xpDailyVisit      = 2
	coinsDailyVisit   = 1
	xpWeekComplete    = 15
	coinsWeekComplete = 10

	xpBudgetUnder    = 10
	coinsBudgetUnder = 5
	xpBudgetNear     = 5
	coinsBudgetNear  = 2
)

// EventType is a typed string identifying a domain event kind.
type EventType string

// Event kinds the coordinator reacts to.
const (
	EvtTransactionLogged EventType = "log-transaction"
	EvtGoalCreated       EventType = "create-goal"
	EvtGoalFunded        EventType = "fund-goal"
	EvtDayVisited        EventType = "visit"
	EvtBudgetClosed      EventType = "close-budget"

	// EvtAccessoryBought is a journal entry, not a reward event: it spends
	// coins instead of granting them, so Replay handles it outside Apply.
	EvtAccessoryBought EventType = "buy-accessory"
)

// Event is a domain event entering the rewards coordinator.
type Event interface {
	What() EventType // What returns the event kind.
	When() date.Date // When returns the logical day the event happened on.
}

type baseEvent struct {
	Event EventType `json:"event"`
	Date  date.Date `json:"date"`
}

func (e baseEvent) What() EventType { return e.Event }
func (e baseEvent) When() date.Date { return e.Date }

func (e baseEvent) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("event", e.Event)
	w.Append("date", e.Date)
	return w.MarshalJSON()
}

// TransactionLogged records one income or expense entry.
type TransactionLogged struct {
	baseEvent
	Type        TransactionType `json:"type"`
	Amount      Money           `json:"amount"`
	Category    string          `json:"category"`
	Description string          `json:"description,omitempty"`
}

// NewTransactionLogged creates a transaction-logged event.
func NewTransactionLogged(on date.Date, typ TransactionType, amount Money, category, description string) TransactionLogged {
	return TransactionLogged{
		baseEvent:   baseEvent{Event: EvtTransactionLogged, Date: on},
		Type:        typ,
		Amount:      amount,
		Category:    category,
		Description: description,
	}
}

// GoalCreated declares a new savings goal.
type GoalCreated struct {
	baseEvent
	GoalID      string    `json:"goalId"`
	Title       string    `json:"title"`
	Description string    `json:"description,omitempty"`
	Target      Money     `json:"target"`
	Deadline    date.Date `json:"deadline"`
}

// NewGoalCreated creates a goal-created event.
func NewGoalCreated(on date.Date, goalID, title string, target Money) GoalCreated {
	return GoalCreated{
		baseEvent: baseEvent{Event: EvtGoalCreated, Date: on},
		GoalID:    goalID,
		Title:     title,
		Target:    target,
	}
}

// GoalFunded adds money to a goal's progress.
type GoalFunded struct {
	baseEvent
	GoalID string `json:"goalId"`
	Amount Money  `json:"amount"`
}

// NewGoalFunded creates a goal-funded event.
func NewGoalFunded(on date.Date, goalID string, amount Money) GoalFunded {
	return GoalFunded{
		baseEvent: baseEvent{Event: EvtGoalFunded, Date: on},
		GoalID:    goalID,
		Amount:    amount,
	}
}

// DayVisited records that the user showed up on a given day.
type DayVisited struct {
	baseEvent
}

// NewDayVisited creates a day-visited event.
func NewDayVisited(on date.Date) DayVisited {
	return DayVisited{baseEvent{Event: EvtDayVisited, Date: on}}
}

// BudgetClosed submits a closed budget period for evaluation.
type BudgetClosed struct {
	baseEvent
	Budget Money `json:"budget"`
	Spent  Money `json:"spent"`
}

// NewBudgetClosed creates a budget-period-submitted event.
func NewBudgetClosed(on date.Date, budget, spent Money) BudgetClosed {
	return BudgetClosed{
		baseEvent: baseEvent{Event: EvtBudgetClosed, Date: on},
		Budget:    budget,
		Spent:     spent,
	}
}

// AccessoryBought records a shop purchase.
type AccessoryBought struct {
	baseEvent
	Item string `json:"item"`
}

// NewAccessoryBought creates an accessory-bought journal entry.
func NewAccessoryBought(on date.Date, item string) AccessoryBought {
	return AccessoryBought{
		baseEvent: baseEvent{Event: EvtAccessoryBought, Date: on},
		Item:      item,
	}
}

// PlayerState is everything the engine needs to know about one user. The
// coordinator receives it as input and returns a new one; it is the caller's
// job to persist the result, and to serialize the read-compute-write cycle
// per user so that concurrent events cannot lose an XP grant.
type PlayerState struct {
	Progression  Progression
	Streak       Streak
	Week         WeekLog
	Activity     ActivityLog
	Goals        []Goal
	Achievements []Achievement
	Transactions []TransactionRecord
	Accessories  []string
	Budgets      BudgetHistory
}

// NewPlayerState returns the state of a brand new user.
func NewPlayerState() PlayerState {
	return PlayerState{Progression: NewProgression()}
}

// UnlockedSet returns the set of badge types already unlocked.
func (s PlayerState) UnlockedSet() AchievementSet {
	set := make(AchievementSet, len(s.Achievements))
	for _, a := range s.Achievements {
		set[a.Type] = struct{}{}
	}
	return set
}

// Goal returns the goal with the given id, or nil if unknown.
func (s PlayerState) Goal(id string) *Goal {
	for i := range s.Goals {
		if s.Goals[i].ID == id {
			return &s.Goals[i]
		}
	}
	return nil
}

// RewardOutcome is the normalized result of applying one event: the XP and
// coin deltas, whether a level threshold was crossed, and any badges
// unlocked. It is what the caller shows the user.
type RewardOutcome struct {
	XPGained        int
	CoinsGained     int
	LeveledUp       bool
	NewLevel        int
	NewAchievements []AchievementType

	// Event-specific details.
	Streak         StreakOutcome // meaningful for day-visited
	PreviousStreak int           // the streak length lost when Streak is broken
	WeekComplete   bool          // the visit filled the last open weekday slot
	GoalCompleted  bool          // the funding crossed the goal's target
}

// Apply folds one event into the player state and returns the new state and
// the reward outcome. The input state is never modified.
//
// Event dispatch:
//   - transaction-logged grants flat XP only (no coins, no streak, no badges).
//   - goal-created grants flat XP and registers the goal.
//   - goal-funded delegates to the goal ledger and, on the completion edge,
//     grants the goal's frozen rewards and re-evaluates achievements.
//   - day-visited advances the streak machinery, grants the daily reward on
//     a started or continued streak, the weekly bonus on a completed week,
//     and re-evaluates achievements.
//   - budget-period-submitted grants a tiered reward on adherence, records
//     the period in the budget history, and re-evaluates achievements.
func Apply(s PlayerState, ev Event) (PlayerState, RewardOutcome, error) {
	var out RewardOutcome
	var err error
	switch e := ev.(type) {
	case TransactionLogged:
		s, err = applyTransaction(s, e, &out)
	case GoalCreated:
		s, err = applyGoalCreated(s, e, &out)
	case GoalFunded:
		s, err = applyGoalFunded(s, e, &out)
	case DayVisited:
		s = applyVisit(s, e, &out)
	case BudgetClosed:
		s, err = applyBudgetClosed(s, e, &out)
	default:
		return s, out, fmt.Errorf("unknown event type %T", ev)
	}
	if err != nil {
		return s, RewardOutcome{}, err
	}
	out.NewLevel = s.Progression.Level
	return s, out, nil
}

// grant applies an XP and coin delta to the progression and accumulates it
// into the outcome.
func grant(p Progression, xp, coins int, out *RewardOutcome) Progression {
	p, gained := ApplyXP(p, xp)
	p = AddCoins(p, coins)
	out.XPGained += xp
	out.CoinsGained += coins
	if gained > 0 {
		out.LeveledUp = true
	}
	return p
}

func applyTransaction(s PlayerState, e TransactionLogged, out *RewardOutcome) (PlayerState, error) {
	if _, err := ParseTransactionType(string(e.Type)); err != nil {
		return s, err
	}
	if !e.Amount.IsPositive() {
		return s, fmt.Errorf("transaction amount must be greater than 0, got %s", e.Amount)
	}
	switch e.Type {
	case Expense:
		s.Progression = grant(s.Progression, xpExpenseLogged, 0, out)
	case Income:
		s.Progression = grant(s.Progression, xpIncomeLogged, 0, out)
	}
	s.Transactions = append(slices.Clip(s.Transactions), TransactionRecord{
		On:          e.When(),
		Type:        e.Type,
		Amount:      e.Amount,
		Category:    e.Category,
		Description: e.Description,
	})
	return s, nil
}

func applyGoalCreated(s PlayerState, e GoalCreated, out *RewardOutcome) (PlayerState, error) {
	if s.Goal(e.GoalID) != nil {
		return s, fmt.Errorf("goal %q already exists", e.GoalID)
	}
	g, err := NewGoal(e.GoalID, e.Title, e.Target, e.When())
	if err != nil {
		return s, err
	}
	g.Description = e.Description
	g.Deadline = e.Deadline
	s.Goals = append(slices.Clip(s.Goals), g)
	s.Progression = grant(s.Progression, xpGoalCreated, 0, out)
	return s, nil
}

func applyGoalFunded(s PlayerState, e GoalFunded, out *RewardOutcome) (PlayerState, error) {
	cur := s.Goal(e.GoalID)
	if cur == nil {
		return s, fmt.Errorf("unknown goal %q", e.GoalID)
	}
	g, completedNow, err := Fund(*cur, e.Amount, e.When())
	if err != nil {
		return s, err
	}
	goals := slices.Clone(s.Goals)
	goals[slices.IndexFunc(goals, func(x Goal) bool { return x.ID == g.ID })] = g
	s.Goals = goals

	if !completedNow {
		return s, nil
	}
	out.GoalCompleted = true
	s.Progression = grant(s.Progression, g.XPReward, g.CoinReward, out)
	return unlock(s, e.When(), ComputeStats(s, false), out), nil
}

func applyVisit(s PlayerState, e DayVisited, out *RewardOutcome) PlayerState {
	today := e.When()
	prev := s.Streak.Count
	s.Streak, out.Streak = RecordActivity(s.Streak, today)
	if out.Streak == StreakBroken {
		out.PreviousStreak = prev
	}

	s.Week, _, out.WeekComplete = s.Week.Mark(today)
	s.Activity = s.Activity.Record(today)

	switch out.Streak {
	case StreakStarted, StreakContinued:
		s.Progression = grant(s.Progression, xpDailyVisit, coinsDailyVisit, out)
	}
	if out.WeekComplete {
		s.Progression = grant(s.Progression, xpWeekComplete, coinsWeekComplete, out)
	}
	return unlock(s, today, ComputeStats(s, false), out)
}

func applyBudgetClosed(s PlayerState, e BudgetClosed, out *RewardOutcome) (PlayerState, error) {
	if e.Budget.IsNegative() || e.Spent.IsNegative() {
		return s, fmt.Errorf("budget and spent amounts cannot be negative, got %s / %s", e.Budget, e.Spent)
	}
	kept := false
	if e.Budget.IsPositive() {
		_, level := Adherence(e.Budget, e.Spent)
		switch level {
		case BudgetUnder:
			s.Progression = grant(s.Progression, xpBudgetUnder, coinsBudgetUnder, out)
		case BudgetNear:
			s.Progression = grant(s.Progression, xpBudgetNear, coinsBudgetNear, out)
		}
		kept = level != BudgetOver
	}
	month := date.NewRange(e.When(), date.Monthly).Identifier()
	s.Budgets = s.Budgets.Upsert(month, e.Budget, e.Spent)
	return unlock(s, e.When(), ComputeStats(s, kept), out), nil
}

// unlock evaluates the achievement rules and appends any newly satisfied
// badges to the state and the outcome.
func unlock(s PlayerState, on date.Date, stats AggregateStats, out *RewardOutcome) PlayerState {
	newly := EvaluateAchievements(stats, s.UnlockedSet())
	if len(newly) == 0 {
		return s
	}
	achievements := slices.Clip(s.Achievements)
	for _, t := range newly {
		achievements = append(achievements, Achievement{Type: t, UnlockedAt: on})
	}
	s.Achievements = achievements
	out.NewAchievements = append(out.NewAchievements, newly...)
	return s
}
