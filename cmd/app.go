// Package cmd implements the CLI application to manage a marina's boat registry.
package cmd

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"slices"

	"github.com/charmbracelet/glamour"
	"github.com/etnz/marina"
	"github.com/google/subcommands"
)

// commands are the subcommands of the application, in the order they are listed.
var commands = []subcommands.Command{
	&shellCmd{},
	&inventoryCmd{},
	&addCmd{},
	&removeCmd{},
	&payCmd{},
	&monthCmd{},
	&fmtCmd{},
	&topicCmd{},
}

// Register the subcommands.
// A main package will call Register() to allow subcommands, and Execute() on the user-selected one.
func Register(c *subcommands.Commander) {
	for _, cmd := range commands {
		group := "registry"
		switch cmd.Name() {
		case "shell":
			group = ""
		case "topic":
			group = "help"
		}
		c.Register(cmd, group)
	}
}

// IsCommand reports whether name is one of the application subcommands, or one of the builtin ones.
func IsCommand(name string) bool {
	switch name {
	case "help", "flags", "commands":
		return true
	}
	return slices.ContainsFunc(commands, func(c subcommands.Command) bool { return c.Name() == name })
}

// ShellArgs rewrites the command line arguments so that anything that does not
// start with a subcommand runs the interactive menu: "marina boats.csv" is
// "marina shell boats.csv", and a bare "marina" gets the menu usage.
func ShellArgs(args []string) []string {
	if len(args) > 0 && IsCommand(args[0]) {
		return args
	}
	return append([]string{"shell"}, args...)
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var configPath = flag.String("config", ".marina.yaml", "Path to the configuration file (YAML format)")
var verbose = flag.Bool("v", false, "Log debug information to stderr")

// stdin, stdout and stderr are the streams the application talks to, swapped in tests.
var (
	stdin  io.Reader = os.Stdin
	stdout io.Writer = os.Stdout
	stderr io.Writer = os.Stderr
)

// SetupLogging installs the default logger, warnings only unless -v is set.
func SetupLogging() {
	level := slog.LevelWarn
	if *verbose {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))
}

// LoadConfig loads the application configuration file.
func LoadConfig() (marina.Config, error) {
	return marina.LoadConfig(*configPath)
}

// OpenRegistry loads the registry file with the application configuration.
//
// Records that could not be loaded have been logged by the registry and are
// not an error here: the registry is usable.
func OpenRegistry(path string) (*marina.Registry, marina.Config, error) {
	cfg, err := LoadConfig()
	if err != nil {
		return nil, cfg, err
	}
	opts, err := cfg.Options(slog.Default())
	if err != nil {
		return nil, cfg, err
	}
	r, err := marina.OpenRegistry(path, opts)
	if errors.Is(err, marina.ErrIO) {
		return nil, cfg, err
	}
	if err != nil {
		slog.Warn("some records were skipped and will be dropped on save", "file", path)
	}
	return r, cfg, nil
}

// SaveRegistry writes the registry back to its file.
func SaveRegistry(path string, r *marina.Registry) subcommands.ExitStatus {
	if err := marina.WriteRegistry(path, r); err != nil {
		fmt.Fprintf(stderr, "Error saving registry: %v\n", err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}

// printMarkdown renders markdown for the terminal.
func printMarkdown(md string) {
	out, err := glamour.Render(md, "auto")
	if err != nil {
		slog.Debug("could not render markdown", "error", err)
		fmt.Fprint(stdout, md)
		return
	}
	fmt.Fprint(stdout, out)
}
