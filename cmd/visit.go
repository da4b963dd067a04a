package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/budgetquest"
	"github.com/google/subcommands"
)

type visitCmd struct {
	date string
}

func (*visitCmd) Name() string     { return "visit" }
func (*visitCmd) Synopsis() string { return "check in for the day and keep the streak alive" }
func (*visitCmd) Usage() string {
	return `bqs visit [-d <date>]

  Records today's check-in. The first check-in of a day earns 2 XP and
  1 coin, and a full Monday-to-Sunday week earns a bonus.
`
}

func (c *visitCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.date, "d", "", "Date of the visit (defaults to today)")
}

func (c *visitCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	on, err := parseDay(c.date)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitUsageError
	}
	return appendEvent(budgetquest.NewDayVisited(on))
}
