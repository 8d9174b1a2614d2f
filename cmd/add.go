package cmd

import (
	"context"
	"flag"
	"fmt"
	"strings"

	"github.com/google/subcommands"
)

type addCmd struct{}

func (*addCmd) Name() string     { return "add" }
func (*addCmd) Synopsis() string { return "add a boat to the registry" }
func (*addCmd) Usage() string {
	return `marina add <filename> <record>

  Adds a boat described by a record in the registry file format:

    name,length,kind,locationValue,amountOwed

Usage Examples:
$ marina add boats.csv "Big Brother,20,land,B,0.00"
`
}

func (c *addCmd) SetFlags(f *flag.FlagSet) {}

func (c *addCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() < 2 {
		fmt.Fprintln(stderr, "Error: add takes a registry file and a record.")
		return subcommands.ExitUsageError
	}
	path, record := f.Arg(0), strings.Join(f.Args()[1:], " ")

	reg, _, err := OpenRegistry(path)
	if err != nil {
		fmt.Fprintf(stderr, "Error loading registry: %v\n", err)
		return subcommands.ExitFailure
	}
	b, err := reg.AddRecord(record)
	if err != nil {
		fmt.Fprintf(stderr, "Error adding boat: %v\n", err)
		return subcommands.ExitFailure
	}
	if status := SaveRegistry(path, reg); status != subcommands.ExitSuccess {
		return status
	}
	fmt.Fprintf(stdout, "Added %q to %s\n", b.Name, path)
	return subcommands.ExitSuccess
}
