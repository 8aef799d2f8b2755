package hook

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/jeffrom/dualpack/stdio"
	"github.com/jeffrom/dualpack/testenv"
)

func TestParse(t *testing.T) {
	tcs := []struct {
		name       string
		cmdline    string
		expect     []string
		expectFail bool
	}{
		{
			name:    "basic",
			cmdline: "cp README.md dist/",
			expect:  []string{"cp", "README.md", "dist/"},
		},
		{
			name:    "quoted",
			cmdline: `echo "two words" single`,
			expect:  []string{"echo", "two words", "single"},
		},
		{
			name:       "empty",
			cmdline:    "",
			expectFail: true,
		},
		{
			name:       "multiple-statements",
			cmdline:    "echo a; echo b",
			expectFail: true,
		},
		{
			name:       "pipeline",
			cmdline:    "cat a | wc -l",
			expectFail: true,
		},
		{
			name:       "unterminated",
			cmdline:    `echo "unterminated`,
			expectFail: true,
		},
	}

	for _, tc := range tcs {
		t.Run(tc.name, func(t *testing.T) {
			argv, err := Parse(tc.cmdline)
			if tc.expectFail {
				if err == nil {
					t.Fatalf("expected parse to fail, got %v", argv)
				}
				return
			}
			if err != nil {
				t.Fatal("parse failed:", err)
			}
			if len(argv) != len(tc.expect) {
				t.Fatalf("expected %v, got %v", tc.expect, argv)
			}
			for i, arg := range tc.expect {
				if argv[i] != arg {
					t.Errorf("expected %v, got %v", tc.expect, argv)
					break
				}
			}
		})
	}
}

func TestRun(t *testing.T) {
	tmpdir := testenv.TempDir(t, "hook")
	defer testenv.RemoveOnSuccess(t, tmpdir)

	out := &bytes.Buffer{}
	ctx := stdio.SetContext(context.Background(), &stdio.StdIO{Out: out, Err: out})

	if err := Run(ctx, tmpdir, "echo done"); err != nil {
		t.Fatal("run failed:", err)
	}
	if !strings.Contains(out.String(), "postbuild") || !strings.Contains(out.String(), "done") {
		t.Errorf("expected labeled hook output, got: %s", out.String())
	}
}

func TestRunFailure(t *testing.T) {
	tmpdir := testenv.TempDir(t, "hook-fail")
	defer testenv.RemoveOnSuccess(t, tmpdir)

	out := &bytes.Buffer{}
	ctx := stdio.SetContext(context.Background(), &stdio.StdIO{Out: out, Err: out})

	if err := Run(ctx, tmpdir, "false"); err == nil {
		t.Fatal("expected failing hook to propagate")
	}
}
