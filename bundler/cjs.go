package bundler

import (
	"context"
	"errors"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/evanw/esbuild/pkg/api"
	"github.com/otiai10/copy"

	"github.com/jeffrom/dualpack/npm"
	"github.com/jeffrom/dualpack/outfs"
	"github.com/jeffrom/dualpack/stdio"
)

// cjsTempDir is the subdirectory the engine writes CJS output into before
// post-processing lifts it into the output root.
const cjsTempDir = "cjs"

// CJSOptions configures a CJS build.
type CJSOptions struct {
	PackageName string
	Entries     []string
	Outdir      string
	SourceMap   bool
	// Manifests are package.json paths whose dependencies the engine leaves
	// as runtime requires instead of inlining.
	Manifests []string
	Platforms []string
	Plugins   []api.Plugin
	Banner    string
}

// BuildCJS bundles the entries to CommonJS in a temporary subdirectory,
// renames the outputs to carry a .cjs.js suffix, lifts them into the output
// root, and writes a manifest stub per compiled subpackage.
//
// Engine and file system failures propagate unchanged; a failed build may
// leave the temporary subdirectory behind.
func BuildCJS(ctx context.Context, engine Engine, opts CJSOptions) error {
	if opts.PackageName == "" {
		return errors.New("bundler: cjs build requires a package name")
	}
	std := stdio.FromContext(ctx).WithScope("cjs")

	external, err := npm.ExternalsPlugin(opts.Manifests)
	if err != nil {
		return err
	}
	plugins := append([]api.Plugin{external}, opts.Plugins...)

	tmp := filepath.Join(opts.Outdir, cjsTempDir)
	std.Debugf("bundling %d entries to %s", len(opts.Entries), tmp)
	if err := engine.Build(ctx, Request{
		Entries:   opts.Entries,
		Outdir:    tmp,
		Format:    FormatCJS,
		Bundle:    true,
		SourceMap: opts.SourceMap,
		Platforms: opts.Platforms,
		Plugins:   plugins,
		Banner:    opts.Banner,
	}); err != nil {
		return err
	}

	if err := renameOutputs(tmp); err != nil {
		return err
	}
	if err := liftTempDir(opts.Outdir, tmp); err != nil {
		return err
	}
	return writeStubs(opts.Outdir, opts.PackageName)
}

// renameOutputs renames every .js file under dir to end in .cjs.js,
// preserving the base name. Source map files keep their names.
func renameOutputs(dir string) error {
	ofs := outfs.New(dir)
	files, err := ofs.Glob("**/*.js")
	if err != nil {
		return err
	}
	for _, f := range files {
		if strings.HasSuffix(f, ".cjs.js") {
			continue
		}
		if err := ofs.Rename(f, strings.TrimSuffix(f, ".js")+".cjs.js"); err != nil {
			return err
		}
	}
	return nil
}

// liftTempDir moves the contents of tmp up into outdir and removes tmp.
func liftTempDir(outdir, tmp string) error {
	if err := copy.Copy(tmp, outdir); err != nil {
		return err
	}
	return os.RemoveAll(tmp)
}

// writeStubs writes a package.json stub into a dot-prefixed directory for
// every compiled subpackage. The top-level index.cjs.js is the package root,
// whose manifest is managed elsewhere.
func writeStubs(outdir, pkgName string) error {
	ofs := outfs.New(outdir)
	files, err := ofs.Glob("**/*.cjs.js")
	if err != nil {
		return err
	}
	for _, f := range files {
		if f == "index.cjs.js" {
			continue
		}
		sub := subpackagePath(f)
		stub := npm.NewStub(pkgName, sub, path.Base(f))
		if err := stub.WriteFile(filepath.Join(outdir, "."+sub)); err != nil {
			return err
		}
	}
	return nil
}

func subpackagePath(p string) string {
	dir := path.Dir(p)
	if dir == "." {
		dir = ""
	}
	return strings.Trim(dir, "/")
}
