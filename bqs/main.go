package main

import (
	"context"
	"flag"
	"os"
	"path"

	"github.com/etnz/budgetquest/cmd"
	"github.com/google/subcommands"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"
)

func main() {
	// Shell completion: handled and exited here when the shell asks for it.
	dateFlags := map[string]complete.Predictor{"d": predict.Nothing}
	complete.Complete("bqs", &complete.Command{
		Flags: map[string]complete.Predictor{
			"journal-file": predict.Files("*.jsonl"),
			"currency":     predict.Set{"USD", "EUR", "GBP"},
		},
		Sub: map[string]*complete.Command{
			"visit": {Flags: dateFlags},
			"log": {Flags: map[string]complete.Predictor{
				"d": predict.Nothing,
				"t": predict.Set{"expense", "income"},
				"c": predict.Nothing,
			}},
			"goal":         {Flags: map[string]complete.Predictor{"d": predict.Nothing, "due": predict.Nothing, "id": predict.Nothing}},
			"fund":         {Flags: dateFlags},
			"budget":       {Flags: map[string]complete.Predictor{"d": predict.Nothing, "spent": predict.Nothing}},
			"buy":          {},
			"status":       {Flags: dateFlags},
			"goals":        {Flags: dateFlags},
			"achievements": {},
			"summary": {Flags: map[string]complete.Predictor{
				"d": predict.Nothing,
				"p": predict.Set{"day", "week", "month", "year"},
			}},
			"history": {},
			"topic":   {Args: predict.Set{"readme", "getting-started", "rewards", "goals", "budgets"}},
		},
	})

	commander := subcommands.NewCommander(flag.CommandLine, path.Base(os.Args[0]))
	commander.Register(commander.HelpCommand(), "")
	commander.Register(commander.FlagsCommand(), "")

	for _, c := range cmd.Commands {
		commander.Register(c, "")
	}

	flag.Parse()
	os.Exit(int(commander.Execute(context.Background())))
}
