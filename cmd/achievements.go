package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/budgetquest/renderer"
	"github.com/google/subcommands"
)

type achievementsCmd struct{}

func (*achievementsCmd) Name() string     { return "achievements" }
func (*achievementsCmd) Synopsis() string { return "display the badge gallery" }
func (*achievementsCmd) Usage() string {
	return `bqs achievements

  Displays unlocked badges with their unlock dates, and the ones still
  locked.
`
}

func (*achievementsCmd) SetFlags(*flag.FlagSet) {}

func (*achievementsCmd) Execute(_ context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	state, err := loadState()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	printMarkdown(renderer.Achievements(state.Achievements))
	return subcommands.ExitSuccess
}
