package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/google/subcommands"

	tracker "github.com/orvi04/expense-tracker"
)

type txCmd struct {
	s *Session

	typ      string
	category string
	from     string
	to       string
}

func (*txCmd) Name() string     { return "tx" }
func (*txCmd) Synopsis() string { return "list transactions, optionally filtered" }
func (*txCmd) Usage() string {
	return `tx [-type <t>] [-category <c>] [-from <date>] [-to <date>]

  Lists transactions in insertion order. Recurring templates are listed
  as they were recorded; their materialized occurrences appear once a
  balance or report has been computed past their dates.
`
}

func (c *txCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.typ, "type", "", "Match transaction type (income or expense).")
	f.StringVar(&c.category, "category", "", "Match category name.")
	f.StringVar(&c.from, "from", "", "Match dates on or after this date.")
	f.StringVar(&c.to, "to", "", "Match dates on or before this date.")
}

func (c *txCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	var filter tracker.Filter
	var err error

	if c.typ != "" {
		if filter.Type, err = tracker.ParseTransactionType(c.typ); err != nil {
			fmt.Fprintln(os.Stderr, err)
			return subcommands.ExitFailure
		}
	}
	filter.Category = c.category
	if c.from != "" {
		if filter.From, err = tracker.ParseDate(c.from); err != nil {
			fmt.Fprintln(os.Stderr, err)
			return subcommands.ExitFailure
		}
	}
	if c.to != "" {
		if filter.To, err = tracker.ParseDate(c.to); err != nil {
			fmt.Fprintln(os.Stderr, err)
			return subcommands.ExitFailure
		}
	}
	if err := filter.Validate(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	var b strings.Builder
	n := 0
	for t := range c.s.Ledger.Transactions(filter) {
		n++
		fmt.Fprintf(&b, "%s\n", t)
	}
	if n == 0 {
		fmt.Fprintln(c.s.out, "No matching transactions")
		return subcommands.ExitSuccess
	}
	fmt.Fprint(c.s.out, b.String())
	fmt.Fprintf(c.s.out, "%d transactions\n", n)
	return subcommands.ExitSuccess
}
