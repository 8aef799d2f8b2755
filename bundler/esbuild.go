package bundler

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/evanw/esbuild/pkg/api"
	"github.com/mattn/go-isatty"

	"github.com/jeffrom/dualpack/stdio"
)

// ESBuild is the production engine, backed by the esbuild library.
type ESBuild struct{}

func (e ESBuild) Build(ctx context.Context, req Request) error {
	engines, err := ParseEngines(req.Platforms)
	if err != nil {
		return err
	}

	opts := api.BuildOptions{
		EntryPoints: req.Entries,
		Outdir:      req.Outdir,
		Bundle:      req.Bundle,
		Write:       true,
		Engines:     engines,
		Plugins:     req.Plugins,
		LogLevel:    api.LogLevelSilent,
	}
	switch req.Format {
	case FormatESM:
		opts.Format = api.FormatESModule
	case FormatCJS:
		opts.Format = api.FormatCommonJS
	default:
		return fmt.Errorf("bundler: unknown format %q", req.Format)
	}
	if req.SourceMap {
		opts.Sourcemap = api.SourceMapLinked
	}
	if req.Banner != "" {
		opts.Banner = map[string]string{"js": req.Banner}
	}

	res := api.Build(opts)
	std := stdio.FromContext(ctx)
	color := isatty.IsTerminal(os.Stderr.Fd())
	for _, msg := range api.FormatMessages(res.Warnings, api.FormatMessagesOptions{
		Kind:  api.WarningMessage,
		Color: color,
	}) {
		fmt.Fprint(std.Stderr(), msg)
	}
	if len(res.Errors) > 0 {
		for _, msg := range api.FormatMessages(res.Errors, api.FormatMessagesOptions{
			Kind:  api.ErrorMessage,
			Color: color,
		}) {
			fmt.Fprint(std.Stderr(), msg)
		}
		return fmt.Errorf("bundler: %s build failed with %d errors", req.Format, len(res.Errors))
	}
	return nil
}

var engineNames = map[string]api.EngineName{
	"chrome":  api.EngineChrome,
	"deno":    api.EngineDeno,
	"edge":    api.EngineEdge,
	"firefox": api.EngineFirefox,
	"ios":     api.EngineIOS,
	"node":    api.EngineNode,
	"opera":   api.EngineOpera,
	"safari":  api.EngineSafari,
}

// PlatformNames returns the accepted target platform name prefixes.
func PlatformNames() []string {
	names := make([]string, 0, len(engineNames))
	for name := range engineNames {
		names = append(names, name)
	}
	return names
}

// ParseEngines converts platform identifiers like "node14" or "chrome88.0"
// into engine targets.
func ParseEngines(platforms []string) ([]api.Engine, error) {
	var engines []api.Engine
	for _, platform := range platforms {
		i := strings.IndexAny(platform, "0123456789")
		if i <= 0 {
			return nil, fmt.Errorf("bundler: invalid platform %q, expected eg node14", platform)
		}
		name, ok := engineNames[strings.ToLower(platform[:i])]
		if !ok {
			return nil, fmt.Errorf("bundler: unknown platform %q", platform[:i])
		}
		engines = append(engines, api.Engine{Name: name, Version: platform[i:]})
	}
	return engines, nil
}
