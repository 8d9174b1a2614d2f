package cmd

import (
	"context"
	"flag"
	"fmt"
	"strings"

	"github.com/google/subcommands"
)

type removeCmd struct{}

func (*removeCmd) Name() string     { return "remove" }
func (*removeCmd) Synopsis() string { return "remove a boat from the registry" }
func (*removeCmd) Usage() string {
	return `marina remove <filename> <name>

  Removes the boat with this name. Names are compared without regard to case.
`
}

func (c *removeCmd) SetFlags(f *flag.FlagSet) {}

func (c *removeCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() < 2 {
		fmt.Fprintln(stderr, "Error: remove takes a registry file and a boat name.")
		return subcommands.ExitUsageError
	}
	path, name := f.Arg(0), strings.Join(f.Args()[1:], " ")

	reg, _, err := OpenRegistry(path)
	if err != nil {
		fmt.Fprintf(stderr, "Error loading registry: %v\n", err)
		return subcommands.ExitFailure
	}
	b, err := reg.Remove(name)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	if status := SaveRegistry(path, reg); status != subcommands.ExitSuccess {
		return status
	}
	fmt.Fprintf(stdout, "Removed %q from %s\n", b.Name, path)
	return subcommands.ExitSuccess
}
