// Package bundler drives the external bundler engine to produce dual
// ESM/CJS package outputs, and post-processes the CJS output tree into
// per-subpackage layout.
package bundler

import (
	"context"

	"github.com/evanw/esbuild/pkg/api"
)

// Output formats passed to the engine.
const (
	FormatESM = "esm"
	FormatCJS = "cjs"
)

// Request is a single engine invocation. Plugins are opaque to dualpack and
// handed to the engine untouched.
type Request struct {
	Entries   []string
	Outdir    string
	Format    string
	Bundle    bool
	SourceMap bool
	Platforms []string
	Plugins   []api.Plugin
	Banner    string
}

// Engine compiles entry files into an output directory. Implementations own
// all parsing, resolution, and code generation; dualpack only observes
// success or failure and the resulting file tree.
type Engine interface {
	Build(ctx context.Context, req Request) error
}
