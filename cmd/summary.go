package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/budgetquest"
	"github.com/etnz/budgetquest/date"
	"github.com/etnz/budgetquest/renderer"
	"github.com/google/subcommands"
)

type summaryCmd struct {
	period string
	date   string
}

func (*summaryCmd) Name() string     { return "summary" }
func (*summaryCmd) Synopsis() string { return "display income, expenses and category totals for a period" }
func (*summaryCmd) Usage() string {
	return `bqs summary [-p <period>] [-d <date>]

  Sums the logged transactions of the period containing the given date.

Usage Examples:
$ bqs summary
$ bqs summary -p week -d 2026-08-05
`
}

func (c *summaryCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.period, "p", "month", "Period to summarize (day, week, month, year)")
	f.StringVar(&c.date, "d", "", "A date within the period (defaults to today)")
}

func (c *summaryCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	on, err := parseDay(c.date)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitUsageError
	}
	period, err := date.ParsePeriod(c.period)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitUsageError
	}
	state, err := loadState()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	s := budgetquest.Summarize(state.Transactions, date.NewRange(on, period))
	printMarkdown(renderer.Summary(s))
	return subcommands.ExitSuccess
}
