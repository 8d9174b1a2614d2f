package cmd

import (
	"context"
	"flag"
	"fmt"
	"strings"

	"github.com/etnz/marina/docs"
	"github.com/google/subcommands"
)

type topicCmd struct {
	list bool
}

func (*topicCmd) Name() string     { return "topic" }
func (*topicCmd) Synopsis() string { return "read the marina documentation" }
func (*topicCmd) Usage() string {
	var b strings.Builder
	b.WriteString(`marina topic [-list] [<topic>...]

Show the documentation topics, the readme when none is given, '*' for all of
them. Topics:

`)
	topics, _ := docs.Topics()
	for _, t := range topics {
		fmt.Fprintf(&b, "  %-8s %s\n", t.Name, t.Summary)
	}
	b.WriteString("\n")
	return b.String()
}

func (c *topicCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.list, "list", false, "list the topics instead of showing them")
}

func (c *topicCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.list {
		topics, err := docs.Topics()
		if err != nil {
			fmt.Fprintf(stderr, "Error reading doc index: %v\n", err)
			return subcommands.ExitFailure
		}
		for _, t := range topics {
			fmt.Fprintf(stdout, "%s\t%s\n", t.Name, t.Summary)
		}
		return subcommands.ExitSuccess
	}

	topics := f.Args()
	if len(topics) == 0 {
		topics = []string{"readme"}
	}

	doc, err := docs.GetTopics(topics...)
	if err != nil {
		fmt.Fprintf(stderr, "Error reading doc: %v\n", err)
		return subcommands.ExitFailure
	}
	printMarkdown(doc)

	return subcommands.ExitSuccess
}
