package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/etnz/budgetquest"
	"github.com/google/subcommands"
)

type logCmd struct {
	date     string
	typ      string
	category string
}

func (*logCmd) Name() string     { return "log" }
func (*logCmd) Synopsis() string { return "log an income or expense and earn XP" }
func (*logCmd) Usage() string {
	return `bqs log [-d <date>] [-t <type>] [-c <category>] <amount> [description...]

  Appends a transaction to the journal. Logging an expense earns 10 XP,
  logging an income earns 20 XP.

Usage Examples:
$ bqs log -c groceries 42.50 weekly shopping
$ bqs log -t income -c salary 2500
`
}

func (c *logCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.date, "d", "", "Date of the transaction (defaults to today)")
	f.StringVar(&c.typ, "t", "expense", "Transaction type (expense, income)")
	f.StringVar(&c.category, "c", "misc", "Category of the transaction")
}

func (c *logCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() < 1 {
		fmt.Fprintln(os.Stderr, "Error: missing amount")
		return subcommands.ExitUsageError
	}
	on, err := parseDay(c.date)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitUsageError
	}
	typ, err := budgetquest.ParseTransactionType(c.typ)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitUsageError
	}
	amount, err := parseAmount(f.Arg(0))
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitUsageError
	}
	description := strings.Join(f.Args()[1:], " ")
	return appendEvent(budgetquest.NewTransactionLogged(on, typ, amount, c.category, description))
}
