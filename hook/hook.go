// Package hook parses and runs the optional postbuild command.
package hook

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"mvdan.cc/sh/v3/expand"
	"mvdan.cc/sh/v3/syntax"

	"github.com/jeffrom/dualpack/executil"
	"github.com/jeffrom/dualpack/stdio"
)

// Parse splits a single shell-like command line into argv. Only a plain
// command is accepted; pipelines, redirections, and control flow are not.
func Parse(cmdline string) ([]string, error) {
	f, err := syntax.NewParser().Parse(strings.NewReader(cmdline), "postbuild")
	if err != nil {
		return nil, fmt.Errorf("hook: %w", err)
	}
	if len(f.Stmts) != 1 {
		return nil, errors.New("hook: expected a single command")
	}
	call, ok := f.Stmts[0].Cmd.(*syntax.CallExpr)
	if !ok || len(f.Stmts[0].Redirs) > 0 {
		return nil, errors.New("hook: only plain commands are supported")
	}

	cfg := &expand.Config{Env: expand.ListEnviron(os.Environ()...)}
	argv, err := expand.Fields(cfg, call.Args...)
	if err != nil {
		return nil, fmt.Errorf("hook: %w", err)
	}
	if len(argv) == 0 {
		return nil, errors.New("hook: empty command")
	}
	return argv, nil
}

// Run parses cmdline and executes it in dir, labeling its output. A failing
// hook fails the build.
func Run(ctx context.Context, dir, cmdline string) error {
	argv, err := Parse(cmdline)
	if err != nil {
		return err
	}
	std := stdio.FromContext(ctx)
	std.Debugf("running postbuild hook: %s", strings.Join(argv, " "))

	out := stdio.NewPrefixWriter(std.Stdout(), "postbuild")
	errw := stdio.NewPrefixWriter(std.Stderr(), "postbuild")
	if err := executil.Run(ctx, dir, argv, out, errw); err != nil {
		return fmt.Errorf("hook: postbuild failed: %w", err)
	}
	return nil
}
