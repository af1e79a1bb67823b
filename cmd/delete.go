package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strconv"

	"github.com/google/subcommands"

	tracker "github.com/orvi04/expense-tracker"
)

type deleteCmd struct {
	s *Session

	filtered bool
	typ      string
	category string
	amount   string
	from     string
	to       string
}

func (*deleteCmd) Name() string     { return "delete" }
func (*deleteCmd) Synopsis() string { return "delete a transaction by id, or several by filter" }
func (*deleteCmd) Usage() string {
	return `delete <id>
delete -filter [-type <t>] [-category <c>] [-amount <a>] [-from <date>] [-to <date>]

  Deletes a single transaction by its id, or every transaction matching
  the filter. A filtered delete requires at least one criterion.
`
}

func (c *deleteCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.filtered, "filter", false, "Delete every transaction matching the criteria below.")
	f.StringVar(&c.typ, "type", "", "Match transaction type (income or expense).")
	f.StringVar(&c.category, "category", "", "Match category name.")
	f.StringVar(&c.amount, "amount", "", "Match exact amount.")
	f.StringVar(&c.from, "from", "", "Match dates on or after this date.")
	f.StringVar(&c.to, "to", "", "Match dates on or before this date.")
}

func (c *deleteCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.filtered {
		filter, err := c.buildFilter()
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			return subcommands.ExitFailure
		}
		n, err := c.s.Ledger.DeleteWhere(filter)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			return subcommands.ExitFailure
		}
		fmt.Fprintf(c.s.out, "Deleted %d transactions\n", n)
		return subcommands.ExitSuccess
	}

	if f.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "delete: a transaction id is required")
		return subcommands.ExitUsageError
	}
	id, err := strconv.Atoi(f.Arg(0))
	if err != nil {
		fmt.Fprintf(os.Stderr, "delete: invalid id %q\n", f.Arg(0))
		return subcommands.ExitUsageError
	}
	if err := c.s.Ledger.DeleteTransaction(id); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	fmt.Fprintf(c.s.out, "Deleted transaction #%d\n", id)
	return subcommands.ExitSuccess
}

func (c *deleteCmd) buildFilter() (tracker.Filter, error) {
	var filter tracker.Filter
	var err error

	if c.typ != "" {
		if filter.Type, err = tracker.ParseTransactionType(c.typ); err != nil {
			return filter, err
		}
	}
	filter.Category = c.category
	if c.amount != "" {
		a, err := tracker.ParseAmount(c.amount)
		if err != nil {
			return filter, err
		}
		filter.Amount = &a
	}
	if c.from != "" {
		if filter.From, err = tracker.ParseDate(c.from); err != nil {
			return filter, err
		}
	}
	if c.to != "" {
		if filter.To, err = tracker.ParseDate(c.to); err != nil {
			return filter, err
		}
	}
	return filter, nil
}
