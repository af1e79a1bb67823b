// Package cmd implements the interactive CLI session driving the ledger.
//
// Each user command is a subcommands.Command; the session reads one line at
// a time and dispatches it through a Commander, so a failing command prints
// its error and the loop resumes.
package cmd

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"io/fs"
	"log"
	"os"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/google/subcommands"

	tracker "github.com/orvi04/expense-tracker"
)

// As a CLI application it has a very short lived lifecycle, so it is ok to
// use global variables for configuration.

var (
	savesDir = flag.String("saves-dir", "saves", "Directory holding the named save files")
	currency = flag.String("currency", "USD", "Display currency for amounts")
	loadName = flag.String("load", "", "Save file (name or index) to load at startup")
	Verbose  = flag.Bool("v", false, "Enable verbose logging")
)

// Session holds the single in-memory ledger threaded through every command.
// Save and load replace it wholesale.
type Session struct {
	Ledger   *tracker.Ledger
	SavesDir string
	Currency string

	out  io.Writer
	quit bool
}

// NewSession creates a session with an empty ledger, configured from the
// global flags.
func NewSession(out io.Writer) *Session {
	return &Session{
		Ledger:   tracker.NewLedger(),
		SavesDir: *savesDir,
		Currency: *currency,
		out:      out,
	}
}

// Startup applies the -load flag. A missing save starts an empty session
// with a warning; a corrupt one is an unrecoverable startup failure.
func (s *Session) Startup() error {
	if *loadName == "" {
		return nil
	}
	l, name, err := tracker.LoadLedger(s.SavesDir, *loadName)
	if errors.Is(err, fs.ErrNotExist) {
		fmt.Fprintf(os.Stderr, "warning: save %q does not exist, starting fresh\n", *loadName)
		return nil
	}
	if err != nil {
		return err
	}
	s.Ledger = l
	fmt.Fprintf(s.out, "Loaded save %q\n", name)
	return nil
}

// Register wires every command of the session into the commander.
func Register(cdr *subcommands.Commander, s *Session) {
	cdr.Register(cdr.HelpCommand(), "")
	cdr.Register(&topicCmd{s: s}, "")

	cdr.Register(&addCmd{s: s}, "transactions")
	cdr.Register(&deleteCmd{s: s}, "transactions")
	cdr.Register(&txCmd{s: s}, "transactions")

	cdr.Register(&categoryCmd{s: s}, "categories")

	cdr.Register(&balanceCmd{s: s}, "reports")
	cdr.Register(&reportCmd{s: s}, "reports")
	cdr.Register(&checkpointCmd{s: s}, "reports")

	cdr.Register(&saveCmd{s: s}, "saves")
	cdr.Register(&loadCmd{s: s}, "saves")
	cdr.Register(&listCmd{s: s}, "saves")

	cdr.Register(&exitCmd{s: s}, "session")
}

// Run reads commands line by line until exit or EOF. It always returns 0:
// individual command failures are reported and the loop resumes.
func (s *Session) Run(ctx context.Context, in io.Reader) int {
	fmt.Fprintln(s.out, "Welcome to Expense Tracker. Type 'help' for commands.")

	scanner := bufio.NewScanner(in)
	for !s.quit {
		fmt.Fprint(s.out, "(tracker) ")
		if !scanner.Scan() {
			break
		}
		args := strings.Fields(scanner.Text())
		if len(args) == 0 {
			continue
		}

		// A fresh FlagSet and Commander per line: flag values must not
		// leak from one command into the next.
		topFlags := flag.NewFlagSet("tracker", flag.ContinueOnError)
		cdr := subcommands.NewCommander(topFlags, "tracker")
		Register(cdr, s)
		if err := topFlags.Parse(args); err != nil {
			continue
		}
		cdr.Execute(ctx)
	}
	if err := scanner.Err(); err != nil {
		log.Printf("error reading input: %v", err)
	}
	fmt.Fprintln(s.out, "Goodbye!")
	return 0
}

// splitLeading peels up to max leading positional arguments off the flag
// set, then re-parses anything after them as flags. The stdlib flag package
// stops at the first non-flag token, so this is what lets a command accept
// "add 50 expense Dining -date 2024-01-05".
func splitLeading(f *flag.FlagSet, max int) ([]string, error) {
	args := f.Args()
	i := 0
	for i < len(args) && i < max && !strings.HasPrefix(args[i], "-") {
		i++
	}
	pos := args[:i]
	if err := f.Parse(args[i:]); err != nil {
		return nil, err
	}
	if rest := f.Args(); len(rest) > 0 {
		return nil, fmt.Errorf("unexpected argument %q", rest[0])
	}
	return pos, nil
}

// printMarkdown renders markdown to the terminal.
func (s *Session) printMarkdown(md string) {
	rendered, err := glamour.Render(md, "auto")
	if err != nil {
		// Fall back to the raw markdown.
		fmt.Fprintln(s.out, md)
		return
	}
	fmt.Fprint(s.out, rendered)
}
