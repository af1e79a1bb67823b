package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"

	tracker "github.com/orvi04/expense-tracker"
)

type saveCmd struct {
	s *Session
}

func (*saveCmd) Name() string     { return "save" }
func (*saveCmd) Synopsis() string { return "write the ledger to a named save file" }
func (*saveCmd) Usage() string {
	return `save [name]

  Writes the whole ledger (transactions, categories, checkpoints) to a
  JSON save file in the saves directory, overwriting any previous save
  of the same name. Defaults to the save named "default".
`
}

func (*saveCmd) SetFlags(*flag.FlagSet) {}

func (c *saveCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() > 1 {
		fmt.Fprintln(os.Stderr, "save: at most one name is expected")
		return subcommands.ExitUsageError
	}
	name := tracker.DefaultSaveName
	if f.NArg() == 1 {
		name = f.Arg(0)
	}
	if err := tracker.SaveLedger(c.s.SavesDir, name, c.s.Ledger); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	fmt.Fprintf(c.s.out, "Saved as %q\n", name)
	return subcommands.ExitSuccess
}

type loadCmd struct {
	s *Session
}

func (*loadCmd) Name() string     { return "load" }
func (*loadCmd) Synopsis() string { return "replace the session ledger with a saved one" }
func (*loadCmd) Usage() string {
	return `load <name|index>

  Loads a save by name, or by its index in the 'list' output. The
  current session ledger is replaced entirely; unsaved changes are lost.
  On failure the session keeps its current ledger.
`
}

func (*loadCmd) SetFlags(*flag.FlagSet) {}

func (c *loadCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "load: a save name or index is required")
		return subcommands.ExitUsageError
	}
	l, name, err := tracker.LoadLedger(c.s.SavesDir, f.Arg(0))
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	c.s.Ledger = l
	n := 0
	for range l.Transactions(tracker.Filter{}) {
		n++
	}
	fmt.Fprintf(c.s.out, "Loaded save %q (%d transactions)\n", name, n)
	return subcommands.ExitSuccess
}

type listCmd struct {
	s *Session
}

func (*listCmd) Name() string     { return "list" }
func (*listCmd) Synopsis() string { return "list the available save files" }
func (*listCmd) Usage() string {
	return `list

  Lists the saves in the saves directory, sorted by name. The number in
  front of each save can be passed to 'load' instead of the name.
`
}

func (*listCmd) SetFlags(*flag.FlagSet) {}

func (c *listCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	names, err := tracker.ListSaves(c.s.SavesDir)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	if len(names) == 0 {
		fmt.Fprintln(c.s.out, "No saves yet")
		return subcommands.ExitSuccess
	}
	for i, name := range names {
		fmt.Fprintf(c.s.out, "%d. %s\n", i+1, name)
	}
	return subcommands.ExitSuccess
}
