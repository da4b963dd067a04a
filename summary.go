package budgetquest

import (
	"fmt"

	"github.com/etnz/budgetquest/date"
)

// TransactionType distinguishes money coming in from money going out.
type TransactionType string

const (
	Income  TransactionType = "income"
	Expense TransactionType = "expense"
)

func (t TransactionType) String() string { return string(t) }

// ParseTransactionType parses a string into a TransactionType.
func ParseTransactionType(s string) (TransactionType, error) {
	switch TransactionType(s) {
	case Income, Expense:
		return TransactionType(s), nil
	default:
		return "", fmt.Errorf("unknown transaction type: %q", s)
	}
}

// TransactionRecord is one logged income or expense.
type TransactionRecord struct {
	On          date.Date
	Type        TransactionType
	Amount      Money
	Category    string
	Description string
}

// Summary aggregates the transactions of a period.
type Summary struct {
	Period     date.Range
	Income     Money
	Expenses   Money
	Balance    Money
	ByCategory map[string]Money // expense totals per category
}

// Summarize computes the totals of all transactions falling within the period.
func Summarize(records []TransactionRecord, period date.Range) Summary {
	s := Summary{Period: period, ByCategory: make(map[string]Money)}
	for _, r := range records {
		if !period.Contains(r.On) {
			continue
		}
		switch r.Type {
		case Income:
			s.Income = s.Income.Add(r.Amount)
		case Expense:
			s.Expenses = s.Expenses.Add(r.Amount)
			s.ByCategory[r.Category] = s.ByCategory[r.Category].Add(r.Amount)
		}
	}
	s.Balance = s.Income.Sub(s.Expenses)
	return s
}

// AdherenceLevel classifies how spending compares to a budget.
type AdherenceLevel int

const (
	// BudgetUnder means spend was at most 80% of the budget.
	BudgetUnder AdherenceLevel = iota
	// BudgetNear means spend was above 80% but within the budget.
	BudgetNear
	// BudgetOver means the budget was exceeded.
	BudgetOver
)

func (l AdherenceLevel) String() string {
	switch l {
	case BudgetUnder:
		return "under"
	case BudgetNear:
		return "near"
	case BudgetOver:
		return "over"
	default:
		return "unknown"
	}
}

// Adherence returns the spent/budget share and its classification. The 80%
// and 100% bounds are inclusive: landing exactly on them still counts as the
// better class. The comparison is exact decimal arithmetic, so a spend of
// 80.000001% of budget is already BudgetNear.
func Adherence(budget, spent Money) (Percent, AdherenceLevel) {
	p := Percent(100 * spent.Ratio(budget))
	switch {
	// spent/budget <= 0.8  <=>  5*spent <= 4*budget
	case scaled(spent, 5).LessThanOrEqual(scaled(budget, 4)):
		return p, BudgetUnder
	case spent.LessThanOrEqual(budget):
		return p, BudgetNear
	default:
		return p, BudgetOver
	}
}

// scaled returns m multiplied by the integer factor n, currency preserved.
func scaled(m Money, n int64) Money {
	return M(m.value.Mul(newDecimal(n)), m.cur)
}

// BudgetEntry is one closed budget period in the history.
type BudgetEntry struct {
	Month  string // e.g. "2026-08", the range identifier of the month
	Budget Money
	Spent  Money
}

// BudgetHistory is the month-keyed history of closed budget periods.
type BudgetHistory []BudgetEntry

// Upsert returns the history with the given month's entry replaced, or
// appended when the month is new. Re-closing a period overwrites it.
func (h BudgetHistory) Upsert(month string, budget, spent Money) BudgetHistory {
	for i, e := range h {
		if e.Month == month {
			n := make(BudgetHistory, len(h))
			copy(n, h)
			n[i] = BudgetEntry{Month: month, Budget: budget, Spent: spent}
			return n
		}
	}
	n := make(BudgetHistory, len(h), len(h)+1)
	copy(n, h)
	return append(n, BudgetEntry{Month: month, Budget: budget, Spent: spent})
}
