package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/google/subcommands"

	tracker "github.com/orvi04/expense-tracker"
)

type reportCmd struct {
	s *Session

	date       string
	year       int
	month      int
	categories bool
}

func (*reportCmd) Name() string     { return "report" }
func (*reportCmd) Synopsis() string { return "summarize income and expenses over a timeframe" }
func (*reportCmd) Usage() string {
	return `report [day|month|year] [-d <date>] [-year <y>] [-month <m>] [-categories]

  Reports the income, expense and net totals of the timeframe containing
  the anchor date (today unless -d, -year or -month say otherwise). With
  -categories a per-category breakdown is included. Categories over
  their spending limit are flagged either way.
`
}

func (c *reportCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.date, "d", "", "Anchor date for the timeframe (defaults to today).")
	f.IntVar(&c.year, "year", 0, "Report on this calendar year.")
	f.IntVar(&c.month, "month", 0, "Report on this month (1-12) of the anchor year.")
	f.BoolVar(&c.categories, "categories", false, "Include the per-category breakdown.")
}

func (c *reportCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	pos, err := splitLeading(f, 1)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitUsageError
	}

	anchor := tracker.Today()
	if c.date != "" {
		if anchor, err = tracker.ParseDate(c.date); err != nil {
			fmt.Fprintln(os.Stderr, err)
			return subcommands.ExitFailure
		}
	}

	// -year and -month pick the timeframe when no explicit one is given.
	period := tracker.Day
	if c.year != 0 {
		anchor = tracker.NewDate(c.year, time.January, 1)
		period = tracker.Year
	}
	if c.month != 0 {
		if c.month < 1 || c.month > 12 {
			fmt.Fprintf(os.Stderr, "report: invalid month %d\n", c.month)
			return subcommands.ExitFailure
		}
		anchor = tracker.NewDate(anchor.Year(), time.Month(c.month), 1)
		period = tracker.Month
	}
	if len(pos) == 1 {
		if period, err = tracker.ParsePeriod(pos[0]); err != nil {
			fmt.Fprintln(os.Stderr, err)
			return subcommands.ExitFailure
		}
	}

	r := tracker.NewSpendingReport(c.s.Ledger, period.Range(anchor), c.categories)
	c.s.printMarkdown(c.render(period, r))
	return subcommands.ExitSuccess
}

func (c *reportCmd) render(period tracker.Period, r *tracker.SpendingReport) string {
	cur := c.s.Currency
	var b strings.Builder

	name := period.String()
	fmt.Fprintf(&b, "# %s report, %s\n\n", strings.ToUpper(name[:1])+name[1:], r.Range.Identifier())
	fmt.Fprintf(&b, "| | |\n|---|---:|\n")
	fmt.Fprintf(&b, "| Income | %s |\n", tracker.FormatMoney(r.Income, cur))
	fmt.Fprintf(&b, "| Expense | %s |\n", tracker.FormatMoney(r.Expense, cur))
	fmt.Fprintf(&b, "| Net | %s |\n", tracker.SignedMoney(r.Net, cur))

	if len(r.Categories) > 0 {
		b.WriteString("\n## By category\n\n")
		b.WriteString("| Category | Income | Expense | Net | Limit |\n")
		b.WriteString("|---|---:|---:|---:|---:|\n")
		for _, row := range r.Categories {
			limit := "-"
			if row.Limit != nil {
				limit = tracker.FormatMoney(row.Limit.Decimal(), cur)
				if row.OverLimit {
					limit += " ⚠️"
				}
			}
			fmt.Fprintf(&b, "| %s | %s | %s | %s | %s |\n",
				row.Name,
				tracker.FormatMoney(row.Income, cur),
				tracker.FormatMoney(row.Expense, cur),
				tracker.SignedMoney(row.Net, cur),
				limit)
		}
	}

	for _, row := range r.Exceeded {
		fmt.Fprintf(&b, "\n⚠️ **%s** is over its limit: %s spent of %s.\n",
			row.Name,
			tracker.FormatMoney(row.Expense, cur),
			tracker.FormatMoney(row.Limit.Decimal(), cur))
	}
	return b.String()
}
