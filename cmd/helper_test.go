package cmd

import (
	"bytes"
	"context"
	"flag"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/subcommands"
)

// createTempRegistry creates a registry file with content and returns its path.
func createTempRegistry(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "boats.csv")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write temp registry: %v", err)
	}
	return path
}

// readFile returns the content of the file at path.
func readFile(t *testing.T, path string) string {
	t.Helper()
	content, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Failed to read %q: %v", path, err)
	}
	return string(content)
}

// useConfig points the global config flag to a file with content, a missing file if content is empty.
func useConfig(t *testing.T, content string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "marina.yaml")
	if content != "" {
		if err := os.WriteFile(path, []byte(content), 0644); err != nil {
			t.Fatalf("Failed to write config: %v", err)
		}
	}
	old := configPath
	configPath = &path
	t.Cleanup(func() { configPath = old })
}

// captureStdout redirects the application output to a buffer for the test duration.
func captureStdout(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	old := stdout
	stdout = &buf
	t.Cleanup(func() { stdout = old })
	return &buf
}

// captureStderr redirects the application error output to a buffer for the test duration.
func captureStderr(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	old := stderr
	stderr = &buf
	t.Cleanup(func() { stderr = old })
	return &buf
}

// execute runs a subcommand with the given arguments.
func execute(t *testing.T, cmd subcommands.Command, args ...string) subcommands.ExitStatus {
	t.Helper()
	f := flag.NewFlagSet(cmd.Name(), flag.ContinueOnError)
	cmd.SetFlags(f)
	if err := f.Parse(args); err != nil {
		t.Fatalf("Failed to parse %v: %v", args, err)
	}
	return cmd.Execute(context.Background(), f)
}
