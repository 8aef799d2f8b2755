package npm

import (
	"path/filepath"
	"testing"

	"github.com/jeffrom/dualpack/testenv"
)

func TestNewStub(t *testing.T) {
	stub := NewStub("mylib", "sub", "feature.cjs.js")
	if stub.Main != "feature.cjs.js" {
		t.Errorf("expected main feature.cjs.js, got %q", stub.Main)
	}
	if stub.Module != "feature.js" {
		t.Errorf("expected module feature.js, got %q", stub.Module)
	}
	if stub.Name != "mylib/sub" {
		t.Errorf("expected name mylib/sub, got %q", stub.Name)
	}
	if stub.Types != "index.d.ts" {
		t.Errorf("expected types index.d.ts, got %q", stub.Types)
	}
}

func TestStubWriteFile(t *testing.T) {
	tmpdir := testenv.TempDir(t, "stub")
	defer testenv.RemoveOnSuccess(t, tmpdir)

	stub := NewStub("mylib", "sub/nested", "feature.cjs.js")
	dir := filepath.Join(tmpdir, ".sub", "nested")
	if err := stub.WriteFile(dir); err != nil {
		t.Fatal("write failed:", err)
	}

	body := testenv.ReadFile(t, filepath.Join(dir, "package.json"))
	expect := `{
  "main": "feature.cjs.js",
  "module": "feature.js",
  "name": "mylib/sub/nested",
  "types": "index.d.ts"
}
`
	if body != expect {
		t.Errorf("unexpected stub body:\n%s\nexpected:\n%s", body, expect)
	}
}
