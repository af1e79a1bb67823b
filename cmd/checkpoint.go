package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/shopspring/decimal"

	tracker "github.com/orvi04/expense-tracker"
)

type checkpointCmd struct {
	s *Session
}

func (*checkpointCmd) Name() string     { return "checkpoint" }
func (*checkpointCmd) Synopsis() string { return "assert the real account balance on a date" }
func (*checkpointCmd) Usage() string {
	return `checkpoint <balance> [date]

  Declares the actual account balance at the end of the given day
  (defaults to today). Balance queries at or after that date start from
  the checkpoint instead of summing the whole history, which keeps the
  ledger honest against the real account. The balance may be negative;
  write it after a -- separator so it is not read as a flag:

    checkpoint -- -250.50 2024-04-01
`
}

func (*checkpointCmd) SetFlags(*flag.FlagSet) {}

func (c *checkpointCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() < 1 || f.NArg() > 2 {
		fmt.Fprintln(os.Stderr, "checkpoint: a balance and an optional date are required")
		return subcommands.ExitUsageError
	}
	amount, err := decimal.NewFromString(f.Arg(0))
	if err != nil {
		fmt.Fprintf(os.Stderr, "checkpoint: invalid balance %q\n", f.Arg(0))
		return subcommands.ExitFailure
	}
	on := tracker.Today()
	if f.NArg() == 2 {
		if on, err = tracker.ParseDate(f.Arg(1)); err != nil {
			fmt.Fprintln(os.Stderr, err)
			return subcommands.ExitFailure
		}
	}

	c.s.Ledger.SetCheckpoint(on, amount)
	fmt.Fprintf(c.s.out, "Checkpoint set: %s at end of %s\n", tracker.FormatMoney(amount, c.s.Currency), on)
	return subcommands.ExitSuccess
}
