package cmd

import (
	"context"
	"flag"
	"fmt"

	"github.com/google/subcommands"
)

type fmtCmd struct{}

func (*fmtCmd) Name() string { return "fmt" }
func (*fmtCmd) Synopsis() string {
	return "validates and formats the registry file into a canonical form"
}
func (*fmtCmd) Usage() string {
	return `marina fmt <filename>

  Validates and formats the registry file. This command reads all records,
  reports and drops the ones that cannot be read, sorts the boats by name and
  writes them back in the canonical form (amounts with two decimals).

Usage Examples:
$ marina fmt boats.csv

`
}

func (p *fmtCmd) SetFlags(f *flag.FlagSet) {}

func (p *fmtCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprintln(stderr, "Error: fmt takes exactly one registry file.")
		return subcommands.ExitUsageError
	}
	path := f.Arg(0)

	reg, _, err := OpenRegistry(path)
	if err != nil {
		fmt.Fprintf(stderr, "Error: could not load registry: %v\n", err)
		return subcommands.ExitFailure
	}
	if status := SaveRegistry(path, reg); status != subcommands.ExitSuccess {
		return status
	}
	fmt.Fprintf(stderr, "Registry file %q has been formatted (%d boats).\n", path, reg.Len())
	return subcommands.ExitSuccess
}
