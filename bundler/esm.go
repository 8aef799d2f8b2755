package bundler

import (
	"context"

	"github.com/evanw/esbuild/pkg/api"

	"github.com/jeffrom/dualpack/stdio"
)

// ESMOptions configures an ESM build.
type ESMOptions struct {
	Entries   []string
	Outdir    string
	SourceMap bool
	Platforms []string
	Plugins   []api.Plugin
	Banner    string
}

// BuildESM compiles each entry independently to ESM. Outputs land directly
// in the output directory mirroring input structure; there is no
// post-processing.
func BuildESM(ctx context.Context, engine Engine, opts ESMOptions) error {
	std := stdio.FromContext(ctx).WithScope("esm")
	std.Debugf("compiling %d entries to %s", len(opts.Entries), opts.Outdir)

	return engine.Build(ctx, Request{
		Entries:   opts.Entries,
		Outdir:    opts.Outdir,
		Format:    FormatESM,
		Bundle:    false,
		SourceMap: opts.SourceMap,
		Platforms: opts.Platforms,
		Plugins:   opts.Plugins,
		Banner:    opts.Banner,
	})
}
