package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/budgetquest"
	"github.com/etnz/budgetquest/date"
	"github.com/google/subcommands"
)

type budgetCmd struct {
	date  string
	spent string
}

func (*budgetCmd) Name() string     { return "budget" }
func (*budgetCmd) Synopsis() string { return "close a monthly budget period and earn adherence rewards" }
func (*budgetCmd) Usage() string {
	return `bqs budget [-d <date>] [-spent <amount>] <budget>

  Closes the budget period of the given month. Spending is summed from the
  logged expenses of that month unless -spent overrides it. Staying at or
  under 80% of the budget earns 10 XP and 5 coins, staying within the
  budget earns 5 XP and 2 coins.

Usage Examples:
$ bqs budget -d 2026-08-31 1200
`
}

func (c *budgetCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.date, "d", "", "A date within the month to close (defaults to today)")
	f.StringVar(&c.spent, "spent", "", "Override the spent amount instead of summing logged expenses")
}

func (c *budgetCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "Error: expected the budget amount")
		return subcommands.ExitUsageError
	}
	on, err := parseDay(c.date)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitUsageError
	}
	budget, err := parseAmount(f.Arg(0))
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitUsageError
	}

	var spent budgetquest.Money
	if c.spent != "" {
		if spent, err = parseAmount(c.spent); err != nil {
			fmt.Fprintln(os.Stderr, err)
			return subcommands.ExitUsageError
		}
	} else {
		state, err := loadState()
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			return subcommands.ExitFailure
		}
		month := date.NewRange(on, date.Monthly)
		spent = budgetquest.Summarize(state.Transactions, month).Expenses
		fmt.Printf("Closing %s with %s spent out of %s.\n", month.Identifier(), spent, budget)
	}
	return appendEvent(budgetquest.NewBudgetClosed(on, budget, spent))
}
