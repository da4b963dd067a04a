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

type buyCmd struct{}

func (*buyCmd) Name() string     { return "buy" }
func (*buyCmd) Synopsis() string { return "spend coins on an avatar accessory" }
func (*buyCmd) Usage() string {
	return `bqs buy [<item>]

  Buys an accessory from the shop. Without an argument, lists the
  catalogue and what you already own.
`
}

func (*buyCmd) SetFlags(*flag.FlagSet) {}

func (c *buyCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	state, err := loadState()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	if f.NArg() == 0 {
		fmt.Printf("You have %d coins.\n", state.Progression.Coins)
		for _, item := range budgetquest.Catalogue {
			fmt.Printf("  %s — %d coins\n", item.Name, item.Cost)
		}
		if len(state.Accessories) > 0 {
			fmt.Printf("Owned: %v\n", state.Accessories)
		}
		return subcommands.ExitSuccess
	}

	item := f.Arg(0)
	p, _, err := budgetquest.Buy(state.Progression, state.Accessories, item)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	if err := appendToJournal(budgetquest.NewAccessoryBought(date.Today(), item)); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Bought %q, %d coins left.\n", item, p.Coins)
	return subcommands.ExitSuccess
}
