package pluginfile

import (
	"bytes"
	"context"
	"path/filepath"
	"strings"
	"testing"

	"github.com/jeffrom/dualpack/stdio"
	"github.com/jeffrom/dualpack/testenv"
)

func TestLoad(t *testing.T) {
	tcs := []struct {
		name          string
		body          string
		noFile        bool
		expectCJS     int
		expectESM     int
		expectWarning string
	}{
		{
			name:   "absent",
			noFile: true,
		},
		{
			name: "cjs-only",
			body: `cjs:
  - name: external
    options:
      packages: [react]
`,
			expectCJS: 1,
		},
		{
			name: "both",
			body: `cjs:
  - name: external
    options:
      packages: [react]
esm:
  - name: alias
    options:
      map:
        lodash: lodash-es
  - name: env
`,
			expectCJS: 1,
			expectESM: 2,
		},
		{
			name:          "empty-document",
			body:          "{}\n",
			expectWarning: "neither cjs nor esm",
		},
		{
			name:          "empty-file",
			body:          "",
			expectWarning: "neither cjs nor esm",
		},
		{
			name:          "malformed",
			body:          "cjs: [unclosed",
			expectWarning: "could not parse",
		},
		{
			name: "unknown-plugin",
			body: `cjs:
  - name: nope
  - name: external
    options:
      packages: [react]
`,
			expectCJS:     1,
			expectWarning: `unknown plugin "nope"`,
		},
		{
			name: "bad-options",
			body: `esm:
  - name: alias
`,
			expectWarning: "requires a non-empty map",
		},
	}

	for _, tc := range tcs {
		t.Run(tc.name, func(t *testing.T) {
			tmpdir := testenv.TempDir(t, "pluginfile")
			defer testenv.RemoveOnSuccess(t, tmpdir)
			if !tc.noFile {
				testenv.WriteFile(t, filepath.Join(tmpdir, Name), tc.body)
			}

			errBuf := &bytes.Buffer{}
			ctx := stdio.SetContext(context.Background(), &stdio.StdIO{Err: errBuf})

			bundle := Load(ctx, tmpdir)
			if len(bundle.CJS) != tc.expectCJS {
				t.Errorf("expected %d cjs plugins, got %d", tc.expectCJS, len(bundle.CJS))
			}
			if len(bundle.ESM) != tc.expectESM {
				t.Errorf("expected %d esm plugins, got %d", tc.expectESM, len(bundle.ESM))
			}

			warned := errBuf.String()
			if tc.expectWarning == "" && warned != "" {
				t.Errorf("expected no warnings, got: %s", warned)
			}
			if tc.expectWarning != "" && !strings.Contains(warned, tc.expectWarning) {
				t.Errorf("expected warning containing %q, got: %s", tc.expectWarning, warned)
			}
		})
	}
}

func TestRegistryNames(t *testing.T) {
	for _, name := range []string{"alias", "external", "env", "replace"} {
		if _, ok := registry[name]; !ok {
			t.Errorf("expected %q in the plugin registry", name)
		}
	}
}

func TestExternalPluginShape(t *testing.T) {
	plugin, err := externalPlugin(map[string]interface{}{
		"packages": []interface{}{"react", "react-dom"},
	})
	if err != nil {
		t.Fatal(err)
	}
	if plugin.Name != "external" {
		t.Errorf("expected plugin name external, got %q", plugin.Name)
	}
	if plugin.Setup == nil {
		t.Error("expected plugin setup func")
	}
}
