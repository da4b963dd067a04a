package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/budgetquest"
	"github.com/google/subcommands"
)

type fundCmd struct {
	date string
}

func (*fundCmd) Name() string     { return "fund" }
func (*fundCmd) Synopsis() string { return "add money to a savings goal" }
func (*fundCmd) Usage() string {
	return `bqs fund [-d <date>] <goal-id> <amount>

  Adds money to a goal's progress. Overshooting the target is clamped.
  Reaching the target completes the goal and pays its frozen reward.

Usage Examples:
$ bqs fund new-laptop 150
`
}

func (c *fundCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.date, "d", "", "Date of the contribution (defaults to today)")
}

func (c *fundCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 2 {
		fmt.Fprintln(os.Stderr, "Error: expected a goal id and an amount")
		return subcommands.ExitUsageError
	}
	on, err := parseDay(c.date)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitUsageError
	}
	amount, err := parseAmount(f.Arg(1))
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitUsageError
	}
	return appendEvent(budgetquest.NewGoalFunded(on, f.Arg(0), amount))
}
