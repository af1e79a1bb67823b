package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"

	"github.com/orvi04/expense-tracker/docs"
)

type topicCmd struct {
	s *Session
}

func (*topicCmd) Name() string     { return "topic" }
func (*topicCmd) Synopsis() string { return "show documentation" }
func (*topicCmd) Usage() string {
	return `topic [<topic>...]

  Shows documentation for the given topics, or the general introduction
  when none is given. Use 'topic *' to read everything.
`
}

func (*topicCmd) SetFlags(*flag.FlagSet) {}

func (c *topicCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	topics := f.Args()
	if len(topics) == 0 {
		topics = []string{"readme"}
	}

	doc, err := docs.GetTopics(topics...)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading doc: %v\n", err)
		return subcommands.ExitFailure
	}
	c.s.printMarkdown(doc)

	return subcommands.ExitSuccess
}

type exitCmd struct {
	s *Session
}

func (*exitCmd) Name() string     { return "exit" }
func (*exitCmd) Synopsis() string { return "leave the session" }
func (*exitCmd) Usage() string {
	return `exit

  Ends the session. Unsaved changes are lost; use 'save' first.
`
}

func (*exitCmd) SetFlags(*flag.FlagSet) {}

func (c *exitCmd) Execute(_ context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	c.s.quit = true
	return subcommands.ExitSuccess
}
