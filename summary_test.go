package budgetquest

import (
	"testing"

	"github.com/etnz/budgetquest/date"
)

func TestSummarize(t *testing.T) {
	records := []TransactionRecord{
		{On: day(0), Type: Income, Amount: USD(2000), Category: "salary"},
		{On: day(1), Type: Expense, Amount: USD(120.50), Category: "groceries"},
		{On: day(3), Type: Expense, Amount: USD(80), Category: "groceries"},
		{On: day(5), Type: Expense, Amount: USD(45), Category: "transport"},
		// Out of the summarized week.
		{On: day(9), Type: Expense, Amount: USD(999), Category: "rent"},
	}
	s := Summarize(records, date.NewRange(day(2), date.Weekly))

	if !s.Income.Equal(USD(2000)) {
		t.Errorf("income = %s, want %s", s.Income, USD(2000))
	}
	if !s.Expenses.Equal(USD(245.50)) {
		t.Errorf("expenses = %s, want %s", s.Expenses, USD(245.50))
	}
	if !s.Balance.Equal(USD(1754.50)) {
		t.Errorf("balance = %s, want %s", s.Balance, USD(1754.50))
	}
	if got := s.ByCategory["groceries"]; !got.Equal(USD(200.50)) {
		t.Errorf("groceries = %s, want %s", got, USD(200.50))
	}
	if _, ok := s.ByCategory["rent"]; ok {
		t.Error("rent falls outside the period and must not be aggregated")
	}
}

func TestAdherence(t *testing.T) {
	testCases := []struct {
		name      string
		budget    Money
		spent     Money
		wantLevel AdherenceLevel
	}{
		{name: "Half the budget", budget: USD(1000), spent: USD(500), wantLevel: BudgetUnder},
		{name: "Exactly 80 percent", budget: USD(1000), spent: USD(800), wantLevel: BudgetUnder},
		{name: "A cent above 80 percent", budget: USD(1000), spent: USD(800.01), wantLevel: BudgetNear},
		{name: "Exactly on budget", budget: USD(1000), spent: USD(1000), wantLevel: BudgetNear},
		{name: "A cent over budget", budget: USD(1000), spent: USD(1000.01), wantLevel: BudgetOver},
		{name: "Nothing spent", budget: USD(1000), spent: USD(0), wantLevel: BudgetUnder},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if _, got := Adherence(tc.budget, tc.spent); got != tc.wantLevel {
				t.Errorf("Adherence(%s, %s) = %s, want %s", tc.budget, tc.spent, got, tc.wantLevel)
			}
		})
	}
}

func TestAdherence_Share(t *testing.T) {
	got, _ := Adherence(USD(1000), USD(250))
	if !got.Equal(25) {
		t.Errorf("share = %s, want 25%%", got)
	}
}

func TestBudgetHistory_Upsert(t *testing.T) {
	var h BudgetHistory
	h = h.Upsert("2026-08", USD(1000), USD(900))
	h = h.Upsert("2026-09", USD(1000), USD(400))
	if len(h) != 2 {
		t.Fatalf("history = %d entries, want 2", len(h))
	}

	// Re-closing a month overwrites instead of duplicating.
	h = h.Upsert("2026-08", USD(1000), USD(950))
	if len(h) != 2 {
		t.Fatalf("history = %d entries after overwrite, want 2", len(h))
	}
	if !h[0].Spent.Equal(USD(950)) {
		t.Errorf("2026-08 spent = %s, want %s", h[0].Spent, USD(950))
	}
}
