package cmd

import (
	"context"
	"flag"
	"fmt"

	"github.com/google/subcommands"
)

type monthCmd struct {
	months int
}

func (*monthCmd) Name() string     { return "month" }
func (*monthCmd) Synopsis() string { return "apply the monthly charge to every boat" }
func (*monthCmd) Usage() string {
	return `marina month [-n <months>] <filename>

  Charges every boat its monthly fee: length times the rate of its location
  kind. See 'marina topic billing' for the rates.
`
}

func (c *monthCmd) SetFlags(f *flag.FlagSet) {
	f.IntVar(&c.months, "n", 1, "number of months to charge")
}

func (c *monthCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprintln(stderr, "Error: month takes exactly one registry file.")
		return subcommands.ExitUsageError
	}
	if c.months < 1 {
		fmt.Fprintln(stderr, "Error: -n must be at least 1.")
		return subcommands.ExitUsageError
	}
	path := f.Arg(0)

	reg, cfg, err := OpenRegistry(path)
	if err != nil {
		fmt.Fprintf(stderr, "Error loading registry: %v\n", err)
		return subcommands.ExitFailure
	}
	for range c.months {
		reg.ChargeMonth()
	}
	if status := SaveRegistry(path, reg); status != subcommands.ExitSuccess {
		return status
	}
	fmt.Fprintf(stdout, "Charged %d month(s) to %d boat(s), %s owed in total\n", c.months, reg.Len(), reg.TotalOwed().Display(cfg.CurrencyCode()))
	return subcommands.ExitSuccess
}
