package npm

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
)

// Stub is the generated package descriptor written next to each compiled
// subpackage. It is written once per build and never read back by dualpack.
type Stub struct {
	Main   string `json:"main"`
	Module string `json:"module"`
	Name   string `json:"name"`
	Types  string `json:"types"`
}

// NewStub builds the stub for a compiled file base name like
// "feature.cjs.js" at subpackage path "sub" within pkgName.
func NewStub(pkgName, subpath, base string) Stub {
	return Stub{
		Main:   base,
		Module: strings.TrimSuffix(base, ".cjs.js") + ".js",
		Name:   pkgName + "/" + subpath,
		Types:  "index.d.ts",
	}
}

// WriteFile writes the stub as package.json in dir, creating dir as needed.
func (s Stub) WriteFile(dir string) error {
	b, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return err
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}
	return os.WriteFile(filepath.Join(dir, "package.json"), append(b, '\n'), 0644)
}
