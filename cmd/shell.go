package cmd

import (
	"context"
	"flag"
	"fmt"
	"io"

	"github.com/google/subcommands"
)

type shellCmd struct{}

func (*shellCmd) Name() string     { return "shell" }
func (*shellCmd) Synopsis() string { return "manage the registry through the interactive menu" }
func (*shellCmd) Usage() string {
	return `marina [shell] <filename>

  Loads the registry file and shows the interactive menu: inventory, add,
  remove, payment and monthly charge. On exit, the registry is written back
  to the same file. A missing file starts an empty registry.
`
}

func (c *shellCmd) SetFlags(f *flag.FlagSet) {}

func (c *shellCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprintln(stderr, "Usage: marina <filename>")
		return subcommands.ExitUsageError
	}
	return runShell(f.Arg(0), stdin, stdout)
}

// runShell runs the interactive menu on the registry file at path.
func runShell(path string, in io.Reader, out io.Writer) subcommands.ExitStatus {
	reg, cfg, err := OpenRegistry(path)
	if err != nil {
		fmt.Fprintf(stderr, "Error loading registry: %v\n", err)
		return subcommands.ExitFailure
	}

	fmt.Fprintln(out, "Welcome to the Boat Management System")
	fmt.Fprintln(out, "-------------------------------------")

	newSession(reg, in, out, cfg.CurrencyCode()).run()

	status := SaveRegistry(path, reg)
	fmt.Fprintln(out, "\nExiting the Boat Management System")
	return status
}
