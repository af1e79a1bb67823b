package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"

	tracker "github.com/orvi04/expense-tracker"
)

type balanceCmd struct {
	s *Session
}

func (*balanceCmd) Name() string     { return "balance" }
func (*balanceCmd) Synopsis() string { return "compute the account balance as of a date" }
func (*balanceCmd) Usage() string {
	return `balance [date]

  Computes the balance as of the given date (defaults to today), counting
  every transaction dated on or before it. Recurring templates are
  expanded up to that date first, so asking about a future date includes
  the occurrences that will have happened by then.
`
}

func (*balanceCmd) SetFlags(*flag.FlagSet) {}

func (c *balanceCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	on := tracker.Today()
	if f.NArg() > 1 {
		fmt.Fprintln(os.Stderr, "balance: at most one date is expected")
		return subcommands.ExitUsageError
	}
	if f.NArg() == 1 {
		var err error
		if on, err = tracker.ParseDate(f.Arg(0)); err != nil {
			fmt.Fprintln(os.Stderr, err)
			return subcommands.ExitFailure
		}
	}

	bal := c.s.Ledger.BalanceAsOf(on)
	fmt.Fprintf(c.s.out, "Balance on %s: %s\n", on, tracker.FormatMoney(bal, c.s.Currency))
	return subcommands.ExitSuccess
}
