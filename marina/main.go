// Command marina manages the boat registry of a marina.
//
//	marina <filename>
//
// opens the interactive menu on a registry file; see 'marina help' for the
// other subcommands.
package main

import (
	"context"
	"flag"
	"os"
	"path"

	"github.com/etnz/marina/cmd"
	"github.com/google/subcommands"
)

func main() {
	cmd.Completion().Complete("marina")

	commander := subcommands.NewCommander(flag.CommandLine, path.Base(os.Args[0]))
	commander.Register(commander.HelpCommand(), "")
	commander.Register(commander.FlagsCommand(), "")
	commander.Register(commander.CommandsCommand(), "")
	cmd.Register(commander)

	flag.Parse()
	flag.CommandLine.Parse(cmd.ShellArgs(flag.Args()))
	cmd.SetupLogging()

	os.Exit(int(commander.Execute(context.Background())))
}
