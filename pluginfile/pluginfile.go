// Package pluginfile loads user plugin definitions from a conventional file
// in the working directory. A missing, unreadable, or misshapen file is never
// fatal: the build proceeds with zero user plugins after a warning.
package pluginfile

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/evanw/esbuild/pkg/api"
	"github.com/ghodss/yaml"

	"github.com/jeffrom/dualpack/stdio"
)

// Name is the conventional plugin definition file name.
const Name = "dualpack.plugins.yaml"

// Spec is one declarative plugin entry, resolved through the registry.
type Spec struct {
	Name    string                 `json:"name"`
	Options map[string]interface{} `json:"options,omitempty"`
}

// File is the shape of the plugin definition file.
type File struct {
	CJS []Spec `json:"cjs,omitempty"`
	ESM []Spec `json:"esm,omitempty"`
}

// Bundle holds the resolved plugin sequences per output format. A format
// absent from the file gets zero plugins.
type Bundle struct {
	CJS []api.Plugin
	ESM []api.Plugin
}

// Load reads the plugin definition file from dir. Any load or parse failure
// degrades to an empty bundle with a warning.
func Load(ctx context.Context, dir string) Bundle {
	std := stdio.FromContext(ctx)
	p := filepath.Join(dir, Name)

	b, err := os.ReadFile(p)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return Bundle{}
		}
		std.Warningf("could not read %s: %v", p, err)
		return Bundle{}
	}

	pf := &File{}
	if err := yaml.Unmarshal(b, pf); err != nil {
		std.Warningf("could not parse %s: %v", p, err)
		return Bundle{}
	}
	if pf.CJS == nil && pf.ESM == nil {
		std.Warningf("%s declares neither cjs nor esm plugins", p)
		return Bundle{}
	}

	return Bundle{
		CJS: resolve(std, pf.CJS),
		ESM: resolve(std, pf.ESM),
	}
}

func resolve(std *stdio.StdIO, specs []Spec) []api.Plugin {
	var plugins []api.Plugin
	for _, spec := range specs {
		factory, ok := registry[spec.Name]
		if !ok {
			std.Warningf("unknown plugin %q, skipping", spec.Name)
			continue
		}
		plugin, err := factory(spec.Options)
		if err != nil {
			std.Warningf("plugin %q: %v, skipping", spec.Name, err)
			continue
		}
		plugins = append(plugins, plugin)
	}
	return plugins
}
