package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/budgetquest/renderer"
	"github.com/google/subcommands"
)

type statusCmd struct {
	date string
}

func (*statusCmd) Name() string     { return "status" }
func (*statusCmd) Synopsis() string { return "display level, XP, coins, streak and active goals" }
func (*statusCmd) Usage() string {
	return `bqs status [-d <date>]

  Displays the player dashboard.
`
}

func (c *statusCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.date, "d", "", "Date to evaluate the streak at (defaults to today)")
}

func (c *statusCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	on, err := parseDay(c.date)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitUsageError
	}
	state, err := loadState()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	printMarkdown(renderer.Status(state, on))
	return subcommands.ExitSuccess
}
