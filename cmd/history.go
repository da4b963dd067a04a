package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/budgetquest/renderer"
	"github.com/google/subcommands"
)

type historyCmd struct{}

func (*historyCmd) Name() string     { return "history" }
func (*historyCmd) Synopsis() string { return "display the closed budget periods and their adherence" }
func (*historyCmd) Usage() string {
	return `bqs history

  Displays every closed budget period with budget, spending and verdict.
`
}

func (*historyCmd) SetFlags(*flag.FlagSet) {}

func (*historyCmd) Execute(_ context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	state, err := loadState()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	printMarkdown(renderer.Budgets(state.Budgets))
	return subcommands.ExitSuccess
}
