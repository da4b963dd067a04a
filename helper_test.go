package budgetquest

import (
	"time"

	"github.com/etnz/budgetquest/date"
)

// USD is a helper for tests to create dollar money from const.
func USD(v float64) Money { return M(v, "USD") }

// day is a helper for tests to build dates relative to a fixed Monday:
// day(0) is Monday 2026-08-03, day(6) the following Sunday.
func day(offset int) date.Date { return date.New(2026, time.August, 3).Add(offset) }
