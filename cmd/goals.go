package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/budgetquest/renderer"
	"github.com/google/subcommands"
)

type goalsCmd struct {
	date string
}

func (*goalsCmd) Name() string     { return "goals" }
func (*goalsCmd) Synopsis() string { return "list all savings goals and their progress" }
func (*goalsCmd) Usage() string {
	return `bqs goals [-d <date>]

  Lists every goal with its funding progress, deadline and status.
`
}

func (c *goalsCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.date, "d", "", "Date to evaluate deadlines at (defaults to today)")
}

func (c *goalsCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
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
	printMarkdown(renderer.Goals(state.Goals, on))
	return subcommands.ExitSuccess
}
