// Package cmd implements the CLI application to play a budget quest.
package cmd

import (
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"log"
	"os"

	"github.com/charmbracelet/glamour"
	"github.com/etnz/budgetquest"
	"github.com/etnz/budgetquest/date"
	"github.com/etnz/budgetquest/renderer"
	"github.com/google/subcommands"
	"github.com/shopspring/decimal"
)

// Commands lists the subcommands in display order.
// A main package registers each of them on its commander.
var Commands = []subcommands.Command{
	&visitCmd{},
	&logCmd{},
	&goalCmd{},
	&fundCmd{},
	&budgetCmd{},
	&buyCmd{},
	&statusCmd{},
	&goalsCmd{},
	&achievementsCmd{},
	&summaryCmd{},
	&historyCmd{},
	&topicCmd{},
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var journalFile = flag.String("journal-file", "quest.jsonl", "Path to the event journal (JSONL format)")
var currencyCode = flag.String("currency", "USD", "Currency code for amounts entered on the command line")

// parseAmount parses a command line amount into a Money in the app currency.
func parseAmount(s string) (budgetquest.Money, error) {
	v, err := decimal.NewFromString(s)
	if err != nil {
		return budgetquest.Money{}, fmt.Errorf("invalid amount %q: %w", s, err)
	}
	return budgetquest.M(v, *currencyCode), nil
}

// loadState replays the app journal file into the current player state.
func loadState() (budgetquest.PlayerState, error) {
	f, err := os.Open(*journalFile)
	if errors.Is(err, fs.ErrNotExist) {
		log.Println("warning, journal does not exist, starting a fresh quest")
		return budgetquest.NewPlayerState(), nil
	}
	if err != nil {
		return budgetquest.PlayerState{}, fmt.Errorf("could not open journal %q: %w", *journalFile, err)
	}
	defer f.Close()

	events, err := budgetquest.DecodeJournal(f)
	if err != nil {
		return budgetquest.PlayerState{}, err
	}
	return budgetquest.Replay(events)
}

// appendEvent validates the event against the current state, appends it to the
// app journal file, and prints the resulting reward toast.
func appendEvent(ev budgetquest.Event) subcommands.ExitStatus {
	state, err := loadState()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	_, out, err := budgetquest.Apply(state, ev)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	if err := appendToJournal(ev); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	printMarkdown(renderer.Outcome(out))
	return subcommands.ExitSuccess
}

// appendToJournal appends a single entry to the journal file, creating it if
// it doesn't exist.
func appendToJournal(ev budgetquest.Event) error {
	f, err := os.OpenFile(*journalFile, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return fmt.Errorf("could not open journal %q: %w", *journalFile, err)
	}
	defer f.Close()
	if err := budgetquest.EncodeEvent(f, ev); err != nil {
		return fmt.Errorf("could not write to journal %q: %w", *journalFile, err)
	}
	return nil
}

// parseDay parses the -d flag value, defaulting to today.
func parseDay(s string) (date.Date, error) {
	if s == "" {
		return date.Today(), nil
	}
	return date.Parse(s)
}

// printMarkdown renders markdown for the terminal; on rendering errors it
// falls back to the raw markdown.
func printMarkdown(md string) {
	out, err := glamour.Render(md, "auto")
	if err != nil {
		fmt.Print(md)
		return
	}
	fmt.Print(out)
}
