package cmd

import (
	"context"
	"flag"
	"fmt"

	"github.com/etnz/marina/renderer"
	"github.com/google/subcommands"
)

type inventoryCmd struct {
	plain bool
}

func (*inventoryCmd) Name() string     { return "inventory" }
func (*inventoryCmd) Synopsis() string { return "list the boats of the registry" }
func (*inventoryCmd) Usage() string {
	return `marina inventory [-plain] <filename>

  Lists the boats of the registry with their location, balance and monthly
  charge, followed by the total owed.
`
}

func (c *inventoryCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.plain, "plain", false, "print the classic fixed-width lines instead of a report")
}

func (c *inventoryCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprintln(stderr, "Error: inventory takes exactly one registry file.")
		return subcommands.ExitUsageError
	}
	reg, cfg, err := OpenRegistry(f.Arg(0))
	if err != nil {
		fmt.Fprintf(stderr, "Error loading registry: %v\n", err)
		return subcommands.ExitFailure
	}

	if c.plain {
		fmt.Fprint(stdout, renderer.Lines(reg.List(), cfg.CurrencyCode()))
		return subcommands.ExitSuccess
	}
	printMarkdown(renderer.RenderInventory(reg.List(), cfg.CurrencyCode()))
	return subcommands.ExitSuccess
}
