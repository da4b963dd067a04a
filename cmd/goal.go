package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/etnz/budgetquest"
	"github.com/etnz/budgetquest/date"
	"github.com/google/subcommands"
)

type goalCmd struct {
	date     string
	deadline string
	id       string
}

func (*goalCmd) Name() string     { return "goal" }
func (*goalCmd) Synopsis() string { return "create a savings goal and earn 50 XP" }
func (*goalCmd) Usage() string {
	return `bqs goal [-d <date>] [-due <deadline>] [-id <id>] <target> <title...>

  Creates a savings goal. Completing it later pays a reward frozen at
  creation time: target/10 XP and target/5 coins.

Usage Examples:
$ bqs goal 1000 new laptop
$ bqs goal -due 2026-12-31 500 winter tires
`
}

func (c *goalCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.date, "d", "", "Creation date (defaults to today)")
	f.StringVar(&c.deadline, "due", "", "Optional deadline; the goal fails past it")
	f.StringVar(&c.id, "id", "", "Goal identifier (defaults to a slug of the title)")
}

func (c *goalCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() < 2 {
		fmt.Fprintln(os.Stderr, "Error: missing target amount and title")
		return subcommands.ExitUsageError
	}
	on, err := parseDay(c.date)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitUsageError
	}
	target, err := parseAmount(f.Arg(0))
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitUsageError
	}
	title := strings.Join(f.Args()[1:], " ")
	id := c.id
	if id == "" {
		id = slug(title)
	}

	ev := budgetquest.NewGoalCreated(on, id, title, target)
	if c.deadline != "" {
		due, err := date.Parse(c.deadline)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			return subcommands.ExitUsageError
		}
		ev.Deadline = due
	}
	return appendEvent(ev)
}

// slug derives a goal identifier from its title.
func slug(title string) string {
	return strings.ReplaceAll(strings.ToLower(strings.TrimSpace(title)), " ", "-")
}
