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

type categoryCmd struct {
	s *Session
}

func (*categoryCmd) Name() string     { return "category" }
func (*categoryCmd) Synopsis() string { return "manage spending categories and their limits" }
func (*categoryCmd) Usage() string {
	return `category add <name> [limit]
category list
category delete <name>

  Manages categories. A limit is a monthly spending budget; reports flag
  categories whose expenses exceed it. Deleting a category keeps its
  transactions but makes them uncategorized.
`
}

func (*categoryCmd) SetFlags(*flag.FlagSet) {}

func (c *categoryCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() == 0 {
		fmt.Fprint(os.Stderr, c.Usage())
		return subcommands.ExitUsageError
	}
	switch f.Arg(0) {
	case "add":
		return c.add(f.Args()[1:])
	case "list":
		return c.list()
	case "delete":
		return c.delete(f.Args()[1:])
	default:
		fmt.Fprintf(os.Stderr, "category: unknown action %q\n", f.Arg(0))
		return subcommands.ExitUsageError
	}
}

func (c *categoryCmd) add(args []string) subcommands.ExitStatus {
	if len(args) < 1 || len(args) > 2 {
		fmt.Fprintln(os.Stderr, "category add: a name and an optional limit are required")
		return subcommands.ExitUsageError
	}
	var limit *tracker.Amount
	if len(args) == 2 {
		a, err := tracker.ParseAmount(args[1])
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			return subcommands.ExitFailure
		}
		limit = &a
	}
	if err := c.s.Ledger.CreateCategory(args[0], limit); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	if limit != nil {
		fmt.Fprintf(c.s.out, "Created category %s with limit %s\n", args[0], tracker.FormatMoney(limit.Decimal(), c.s.Currency))
	} else {
		fmt.Fprintf(c.s.out, "Created category %s\n", args[0])
	}
	return subcommands.ExitSuccess
}

func (c *categoryCmd) list() subcommands.ExitStatus {
	var b strings.Builder
	b.WriteString("# Categories\n\n")
	n := 0
	for cat := range c.s.Ledger.Categories() {
		n++
		if cat.Limit != nil {
			fmt.Fprintf(&b, "- **%s** (limit %s)\n", cat.Name, tracker.FormatMoney(cat.Limit.Decimal(), c.s.Currency))
		} else {
			fmt.Fprintf(&b, "- **%s**\n", cat.Name)
		}
	}
	if n == 0 {
		fmt.Fprintln(c.s.out, "No categories defined")
		return subcommands.ExitSuccess
	}
	c.s.printMarkdown(b.String())
	return subcommands.ExitSuccess
}

func (c *categoryCmd) delete(args []string) subcommands.ExitStatus {
	if len(args) != 1 {
		fmt.Fprintln(os.Stderr, "category delete: a name is required")
		return subcommands.ExitUsageError
	}
	ids, err := c.s.Ledger.DeleteCategory(args[0])
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	fmt.Fprintf(c.s.out, "Deleted category %s (%d transactions now uncategorized)\n", args[0], len(ids))
	return subcommands.ExitSuccess
}
