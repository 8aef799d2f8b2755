package commands

import (
	"context"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/jeffrom/dualpack/banner"
	"github.com/jeffrom/dualpack/bundler"
	"github.com/jeffrom/dualpack/npm"
	"github.com/jeffrom/dualpack/pluginfile"
	"github.com/jeffrom/dualpack/stdio"
)

type buildOpts struct {
	Out       string
	Entries   []string
	SourceMap bool
	Platforms []string
	Manifests []string
	Name      string
	Banner    string
	Postbuild string
}

func addBuildFlags(cmd *cobra.Command, opts *buildOpts) {
	flags := cmd.Flags()
	flags.StringVarP(&opts.Out, "out", "o", "", "output `dir` (default <dir>/dist)")
	flags.StringArrayVar(&opts.Entries, "entry", nil, "entry `file`s (default from package.json source)")
	flags.BoolVar(&opts.SourceMap, "source-map", false, "emit source maps")
	flags.StringArrayVar(&opts.Platforms, "platform", nil, "target `platform`s, eg node14")
	flags.StringArrayVar(&opts.Manifests, "pkg-json", nil, "package.json `path`s for dependency externalization")
	flags.StringVar(&opts.Name, "name", "", "package name (default from package.json)")
	flags.StringVar(&opts.Banner, "banner", "", "banner `template` prepended to outputs")
	flags.StringVar(&opts.Postbuild, "postbuild", "", "`command` to run after a successful build")
}

// buildEnv is the resolved configuration shared by the build commands.
type buildEnv struct {
	dir       string
	name      string
	entries   []string
	out       string
	manifests []string
	plugins   pluginfile.Bundle
	banner    string
}

// setupBuild resolves flags, package.json defaults, and the plugin
// definition file into a buildEnv.
func setupBuild(ctx context.Context, args []string, opts *buildOpts) (*buildEnv, error) {
	std := stdio.FromContext(ctx)
	dir := "."
	if len(args) > 0 {
		dir = args[0]
	}

	env := &buildEnv{
		dir:       dir,
		name:      opts.Name,
		entries:   opts.Entries,
		out:       opts.Out,
		manifests: opts.Manifests,
	}

	var pkg *npm.Package
	pkgPath := filepath.Join(dir, "package.json")
	if _, err := os.Stat(pkgPath); err == nil {
		p, err := npm.ReadPackage(pkgPath)
		if err != nil {
			return nil, err
		}
		pkg = p
		if err := pkg.ValidateVersion(); err != nil {
			std.Warningf("%v", err)
		}
		if env.name == "" {
			env.name = pkg.Name
		}
		if len(env.manifests) == 0 {
			env.manifests = []string{pkgPath}
		}
	}

	if len(env.entries) == 0 {
		source := filepath.Join("src", "index.js")
		if pkg != nil && pkg.Source != "" {
			source = pkg.Source
		}
		env.entries = []string{filepath.Join(dir, source)}
	}
	if env.out == "" {
		env.out = filepath.Join(dir, "dist")
	}

	env.plugins = pluginfile.Load(ctx, dir)

	if opts.Banner != "" {
		data := banner.Data{Name: env.name}
		if pkg != nil {
			data.Version = pkg.Version
		}
		text, err := banner.Render(opts.Banner, data)
		if err != nil {
			return nil, err
		}
		env.banner = text
	}
	return env, nil
}

func (env *buildEnv) esmOptions(opts *buildOpts) bundler.ESMOptions {
	return bundler.ESMOptions{
		Entries:   env.entries,
		Outdir:    env.out,
		SourceMap: opts.SourceMap,
		Platforms: opts.Platforms,
		Plugins:   env.plugins.ESM,
		Banner:    env.banner,
	}
}

func (env *buildEnv) cjsOptions(opts *buildOpts) bundler.CJSOptions {
	return bundler.CJSOptions{
		PackageName: env.name,
		Entries:     env.entries,
		Outdir:      env.out,
		SourceMap:   opts.SourceMap,
		Manifests:   env.manifests,
		Platforms:   opts.Platforms,
		Plugins:     env.plugins.CJS,
		Banner:      env.banner,
	}
}

func runBoth(ctx context.Context, eng bundler.Engine, env *buildEnv, opts *buildOpts) error {
	if err := bundler.BuildESM(ctx, eng, env.esmOptions(opts)); err != nil {
		return err
	}
	return bundler.BuildCJS(ctx, eng, env.cjsOptions(opts))
}
