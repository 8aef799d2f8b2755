// Package executil wraps some functions in the exec package to ease testing
// and common subprocess use cases.
package executil

import (
	"context"
	"io"
	"os/exec"
)

// CommandContext is initialized to exec.CommandContext. It is intended to be
// overridden in tests.
var CommandContext = exec.CommandContext

func SetCommand(fn func(context.Context, string, ...string) *exec.Cmd) {
	CommandContext = fn
}

func ResetCommand() { CommandContext = exec.CommandContext }

// Run executes argv in dir, streaming output to the provided writers.
func Run(ctx context.Context, dir string, argv []string, stdout, stderr io.Writer) error {
	cmd := CommandContext(ctx, argv[0], argv[1:]...)
	cmd.Dir = dir
	cmd.Stdout = stdout
	cmd.Stderr = stderr
	return cmd.Run()
}
