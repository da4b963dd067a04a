package renderer

import (
	"sort"

	"github.com/etnz/budgetquest"
)

// Summary renders a period summary: totals, balance and the per-category
// expense breakdown.
func Summary(s budgetquest.Summary) string {
	r := newRenderer()
	r.Printf("# Summary %s\n\n", s.Period.Identifier())
	r.Printf("| | Amount |\n")
	r.Printf("|:---|---:|\n")
	r.Printf("| Income | %s |\n", s.Income)
	r.Printf("| Expenses | %s |\n", s.Expenses)
	r.Printf("| **Balance** | **%s** |\n", s.Balance)

	ConditionalBlock(r, func(w *mdRenderer) bool {
		if len(s.ByCategory) == 0 {
			return false
		}
		w.Printf("\n## Spending by category\n\n")
		w.Printf("| Category | Spent | Share |\n")
		w.Printf("|:---|---:|:---|\n")
		categories := make([]string, 0, len(s.ByCategory))
		for c := range s.ByCategory {
			categories = append(categories, c)
		}
		sort.Strings(categories)
		for _, c := range categories {
			spent := s.ByCategory[c]
			w.Printf("| %s | %s | %s |\n", c, spent, progressBar(spent.Ratio(s.Expenses)))
		}
		return true
	})
	return r.String()
}

// Budgets renders the closed budget period history with adherence.
func Budgets(h budgetquest.BudgetHistory) string {
	r := newRenderer()
	r.Printf("# Budget history\n\n")
	if len(h) == 0 {
		r.Printf("No closed budget periods yet.\n")
		return r.String()
	}
	r.Printf("| Month | Budget | Spent | Used | |\n")
	r.Printf("|:---|---:|---:|---:|:---|\n")
	for _, e := range h {
		share, level := budgetquest.Adherence(e.Budget, e.Spent)
		var verdict string
		switch level {
		case budgetquest.BudgetUnder:
			verdict = "✅ under"
		case budgetquest.BudgetNear:
			verdict = "🟡 near"
		default:
			verdict = "🔴 over"
		}
		r.Printf("| %s | %s | %s | %s | %s |\n", e.Month, e.Budget, e.Spent, share, verdict)
	}
	return r.String()
}
