package bundler

import (
	"path/filepath"
	"testing"

	"github.com/evanw/esbuild/pkg/api"

	"github.com/jeffrom/dualpack/testenv"
)

func TestBuildESM(t *testing.T) {
	tmpdir := testenv.TempDir(t, "esm")
	defer testenv.RemoveOnSuccess(t, tmpdir)
	out := filepath.Join(tmpdir, "dist")

	eng := &fakeEngine{files: map[string]string{"index.js": "export default 1"}}
	err := BuildESM(testContext(t), eng, ESMOptions{
		Entries:   []string{"src/index.js", "src/sub/feature.js"},
		Outdir:    out,
		SourceMap: true,
		Plugins:   []api.Plugin{{Name: "user"}},
	})
	if err != nil {
		t.Fatal("esm build failed:", err)
	}

	if len(eng.reqs) != 1 {
		t.Fatalf("expected 1 engine invocation, got %d", len(eng.reqs))
	}
	req := eng.reqs[0]
	if req.Bundle {
		t.Error("expected esm build not to bundle")
	}
	if req.Format != FormatESM {
		t.Errorf("expected esm format, got %q", req.Format)
	}
	if req.Outdir != out {
		t.Errorf("expected outputs to land in %q, got %q", out, req.Outdir)
	}
	if !req.SourceMap {
		t.Error("expected source map flag to pass through")
	}
	if len(req.Plugins) != 1 || req.Plugins[0].Name != "user" {
		t.Errorf("expected user plugins to pass through unchanged, got %+v", req.Plugins)
	}
}
