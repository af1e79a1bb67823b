package cmd

import (
	"bytes"
	"context"
	"flag"
	"strings"
	"testing"

	"github.com/google/subcommands"

	tracker "github.com/orvi04/expense-tracker"
)

// newTestSession builds a session writing to a buffer, saving to a temp dir.
func newTestSession(t *testing.T) (*Session, *bytes.Buffer) {
	t.Helper()
	out := &bytes.Buffer{}
	s := &Session{
		Ledger:   tracker.NewLedger(),
		SavesDir: t.TempDir(),
		Currency: "USD",
		out:      out,
	}
	return s, out
}

// run dispatches one command line the way the interactive loop does.
func run(t *testing.T, s *Session, line string) subcommands.ExitStatus {
	t.Helper()
	fs := flag.NewFlagSet("tracker", flag.ContinueOnError)
	cdr := subcommands.NewCommander(fs, "tracker")
	Register(cdr, s)
	if err := fs.Parse(strings.Fields(line)); err != nil {
		t.Fatalf("parsing %q: %v", line, err)
	}
	return cdr.Execute(context.Background())
}

func TestAddBalanceReport(t *testing.T) {
	s, out := newTestSession(t)

	lines := []string{
		"category add Rent",
		"category add Dining 200",
		"add 1000 income -date 2024-01-01 -recur monthly -desc salary",
		"add 800 expense Rent -date 2024-01-02 -recur monthly",
		"add 250 expense Dining -date 2024-02-10",
	}
	for _, line := range lines {
		if got := run(t, s, line); got != subcommands.ExitSuccess {
			t.Fatalf("%q = %v, want success", line, got)
		}
	}

	out.Reset()
	if got := run(t, s, "balance 2024-02-15"); got != subcommands.ExitSuccess {
		t.Fatalf("balance = %v, want success", got)
	}
	// Two salaries, two rents, one dinner: 2000 - 1600 - 250.
	if want := "Balance on 2024-02-15: $150.00"; !strings.Contains(out.String(), want) {
		t.Errorf("balance output %q, want it to contain %q", out.String(), want)
	}

	out.Reset()
	if got := run(t, s, "report month -d 2024-02-10 -categories"); got != subcommands.ExitSuccess {
		t.Fatalf("report = %v, want success", got)
	}
	report := out.String()
	for _, want := range []string{"Dining", "over its limit"} {
		if !strings.Contains(report, want) {
			t.Errorf("report output does not mention %q:\n%s", want, report)
		}
	}
}

func TestAddRejectsUnknownCategory(t *testing.T) {
	s, _ := newTestSession(t)
	if got := run(t, s, "add 50 expense Groceries"); got != subcommands.ExitFailure {
		t.Errorf("add with unknown category = %v, want failure", got)
	}
}

func TestDeleteByIDAndFilter(t *testing.T) {
	s, out := newTestSession(t)
	run(t, s, "category add Fun")
	run(t, s, "add 10 expense Fun -date 2024-01-01")
	run(t, s, "add 20 expense Fun -date 2024-02-01")
	run(t, s, "add 30 income -date 2024-03-01")

	out.Reset()
	if got := run(t, s, "delete 1"); got != subcommands.ExitSuccess {
		t.Fatalf("delete 1 = %v, want success", got)
	}
	if got := run(t, s, "delete 1"); got != subcommands.ExitFailure {
		t.Errorf("deleting #1 twice = %v, want failure", got)
	}

	out.Reset()
	if got := run(t, s, "delete -filter -category Fun"); got != subcommands.ExitSuccess {
		t.Fatalf("filtered delete = %v, want success", got)
	}
	if want := "Deleted 1 transactions"; !strings.Contains(out.String(), want) {
		t.Errorf("filtered delete output %q, want it to contain %q", out.String(), want)
	}

	// A filtered delete with no criteria must not wipe the ledger.
	if got := run(t, s, "delete -filter"); got != subcommands.ExitFailure {
		t.Errorf("criterionless filtered delete = %v, want failure", got)
	}
	if _, ok := s.Ledger.Transaction(3); !ok {
		t.Error("income transaction should have survived")
	}
}

func TestSaveLoadList(t *testing.T) {
	s, out := newTestSession(t)
	run(t, s, "add 42 income -date 2024-05-01")
	if got := run(t, s, "save vacation"); got != subcommands.ExitSuccess {
		t.Fatalf("save = %v, want success", got)
	}

	// Mutate, then load the save back: the mutation must be gone.
	run(t, s, "delete 1")
	out.Reset()
	if got := run(t, s, "load vacation"); got != subcommands.ExitSuccess {
		t.Fatalf("load = %v, want success", got)
	}
	if _, ok := s.Ledger.Transaction(1); !ok {
		t.Error("loading should have restored transaction #1")
	}

	// Index resolution follows the 'list' ordering.
	run(t, s, "save alpha")
	out.Reset()
	run(t, s, "list")
	if want := "1. alpha\n2. vacation\n"; out.String() != want {
		t.Errorf("list output %q, want %q", out.String(), want)
	}
	if got := run(t, s, "load 2"); got != subcommands.ExitSuccess {
		t.Errorf("load by index = %v, want success", got)
	}
	if got := run(t, s, "load 7"); got != subcommands.ExitFailure {
		t.Errorf("load with out-of-range index = %v, want failure", got)
	}
}

func TestLoadFailureKeepsLedger(t *testing.T) {
	s, _ := newTestSession(t)
	run(t, s, "add 10 income")
	if got := run(t, s, "load nope"); got != subcommands.ExitFailure {
		t.Fatalf("load of a missing save = %v, want failure", got)
	}
	if _, ok := s.Ledger.Transaction(1); !ok {
		t.Error("failed load must leave the current ledger untouched")
	}
}

func TestCheckpointCommand(t *testing.T) {
	s, out := newTestSession(t)
	run(t, s, "add 100 expense -date 2024-04-05")
	if got := run(t, s, "checkpoint -- -250.50 2024-04-01"); got != subcommands.ExitSuccess {
		t.Fatalf("checkpoint = %v, want success", got)
	}
	out.Reset()
	run(t, s, "balance 2024-04-30")
	if want := "-$350.50"; !strings.Contains(out.String(), want) {
		t.Errorf("balance output %q, want it to contain %q", out.String(), want)
	}
}

func TestSessionRun(t *testing.T) {
	s, out := newTestSession(t)
	in := strings.NewReader("add 5 income\nbogus-command\n\nexit\n")
	if got := s.Run(context.Background(), in); got != 0 {
		t.Fatalf("Run() = %d, want 0", got)
	}
	if !strings.Contains(out.String(), "Goodbye!") {
		t.Error("session did not say goodbye")
	}
	if _, ok := s.Ledger.Transaction(1); !ok {
		t.Error("the add dispatched through the loop did not land")
	}
}

func TestSplitLeading(t *testing.T) {
	f := flag.NewFlagSet("test", flag.ContinueOnError)
	date := f.String("date", "", "")
	if err := f.Parse([]string{"50", "expense", "Dining", "-date", "2024-01-05"}); err != nil {
		t.Fatal(err)
	}
	pos, err := splitLeading(f, 3)
	if err != nil {
		t.Fatalf("splitLeading() = %v", err)
	}
	if want := []string{"50", "expense", "Dining"}; len(pos) != 3 || pos[0] != want[0] || pos[1] != want[1] || pos[2] != want[2] {
		t.Errorf("positionals = %v, want %v", pos, want)
	}
	if *date != "2024-01-05" {
		t.Errorf("-date = %q, want %q", *date, "2024-01-05")
	}

	// Trailing junk after the re-parsed flags is an error.
	f = flag.NewFlagSet("test", flag.ContinueOnError)
	f.String("date", "", "")
	if err := f.Parse([]string{"50", "expense", "-date", "x", "leftover"}); err != nil {
		t.Fatal(err)
	}
	if _, err := splitLeading(f, 2); err == nil {
		t.Error("splitLeading() should reject trailing arguments")
	}
}
