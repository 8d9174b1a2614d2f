package cmd

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"strings"

	"github.com/etnz/marina"
	"github.com/google/subcommands"
)

type payCmd struct{}

func (*payCmd) Name() string     { return "pay" }
func (*payCmd) Synopsis() string { return "record a payment for a boat" }
func (*payCmd) Usage() string {
	return `marina pay <filename> <name> <amount>

  Deducts a payment from the amount owed by a boat. A payment larger than the
  amount owed is refused.

Usage Examples:
$ marina pay boats.csv Big Brother 150.00
`
}

func (c *payCmd) SetFlags(f *flag.FlagSet) {}

func (c *payCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() < 3 {
		fmt.Fprintln(stderr, "Error: pay takes a registry file, a boat name and an amount.")
		return subcommands.ExitUsageError
	}
	args := f.Args()
	path, name := args[0], strings.Join(args[1:len(args)-1], " ")

	amount, err := marina.ParseMoney(args[len(args)-1])
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}

	reg, cfg, err := OpenRegistry(path)
	if err != nil {
		fmt.Fprintf(stderr, "Error loading registry: %v\n", err)
		return subcommands.ExitFailure
	}
	b, err := reg.Pay(name, amount)
	if errors.Is(err, marina.ErrOverPayment) {
		fmt.Fprintf(stderr, "That is more than the amount owed, %s\n", b.Owed.Display(cfg.CurrencyCode()))
		return subcommands.ExitFailure
	}
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	if status := SaveRegistry(path, reg); status != subcommands.ExitSuccess {
		return status
	}
	fmt.Fprintf(stdout, "%s now owes %s\n", b.Name, b.Owed.Display(cfg.CurrencyCode()))
	return subcommands.ExitSuccess
}
