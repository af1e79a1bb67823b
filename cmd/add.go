package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"

	tracker "github.com/orvi04/expense-tracker"
)

type addCmd struct {
	s *Session

	date  string
	recur string
	desc  string
}

func (*addCmd) Name() string     { return "add" }
func (*addCmd) Synopsis() string { return "record an income or expense transaction" }
func (*addCmd) Usage() string {
	return `add <amount> <income|expense> [category] [-date <YYYY-MM-DD>] [-recur <cadence>] [-desc <text>]

  Records a transaction. The category, if given, must already exist.
  With -recur the transaction becomes a recurring template: future
  occurrences are materialized automatically whenever a balance or
  report is computed past their dates.
`
}

func (c *addCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.date, "date", "", "Transaction date (defaults to today).")
	f.StringVar(&c.recur, "recur", "", "Recurrence cadence (daily, weekly, monthly, yearly).")
	f.StringVar(&c.desc, "desc", "", "Free-text description.")
}

func (c *addCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	pos, err := splitLeading(f, 3)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitUsageError
	}
	if len(pos) < 2 {
		fmt.Fprintln(os.Stderr, "add: amount and type are required")
		return subcommands.ExitUsageError
	}

	t := tracker.Transaction{Description: c.desc}

	if t.Amount, err = tracker.ParseAmount(pos[0]); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	if t.Type, err = tracker.ParseTransactionType(pos[1]); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	if len(pos) == 3 {
		t.Category = pos[2]
	}
	if c.date != "" {
		if t.Date, err = tracker.ParseDate(c.date); err != nil {
			fmt.Fprintln(os.Stderr, err)
			return subcommands.ExitFailure
		}
	}
	if c.recur != "" {
		if t.Recurrence, err = tracker.ParseRecurrence(c.recur); err != nil {
			fmt.Fprintln(os.Stderr, err)
			return subcommands.ExitFailure
		}
	}

	t, err = c.s.Ledger.AddTransaction(t)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	summary := fmt.Sprintf("Added %s of %s", t.Type, tracker.FormatMoney(t.Amount.Decimal(), c.s.Currency))
	if t.Category != "" {
		summary += " in " + t.Category
	}
	if t.IsTemplate() {
		summary += fmt.Sprintf(", recurring %s", t.Recurrence)
	}
	fmt.Fprintf(c.s.out, "%s (#%d, %s)\n", summary, t.ID, t.Date)
	return subcommands.ExitSuccess
}
