package pluginfile

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"regexp"
	"strings"

	"github.com/evanw/esbuild/pkg/api"
)

// registry maps plugin names usable in the definition file to factories.
// Plugins are constructed here and handed to the engine as opaque values.
var registry = map[string]func(options map[string]interface{}) (api.Plugin, error){
	"alias":    aliasPlugin,
	"external": externalPlugin,
	"env":      envPlugin,
	"replace":  replacePlugin,
}

func decodeOptions(options map[string]interface{}, target interface{}) error {
	b, err := json.Marshal(options)
	if err != nil {
		return err
	}
	return json.Unmarshal(b, target)
}

type aliasOptions struct {
	Map map[string]string `json:"map"`
}

// aliasPlugin rewrites bare import specifiers before resolution, eg
// lodash -> lodash-es.
func aliasPlugin(options map[string]interface{}) (api.Plugin, error) {
	opts := &aliasOptions{}
	if err := decodeOptions(options, opts); err != nil {
		return api.Plugin{}, err
	}
	if len(opts.Map) == 0 {
		return api.Plugin{}, errors.New("alias requires a non-empty map")
	}

	names := make([]string, 0, len(opts.Map))
	for name := range opts.Map {
		names = append(names, regexp.QuoteMeta(name))
	}
	filter := fmt.Sprintf("^(%s)$", strings.Join(names, "|"))

	return api.Plugin{
		Name: "alias",
		Setup: func(build api.PluginBuild) {
			build.OnResolve(api.OnResolveOptions{Filter: filter}, func(args api.OnResolveArgs) (api.OnResolveResult, error) {
				replacement := opts.Map[args.Path]
				res := build.Resolve(replacement, api.ResolveOptions{
					ResolveDir: args.ResolveDir,
					Importer:   args.Importer,
					Kind:       args.Kind,
				})
				if len(res.Errors) > 0 {
					return api.OnResolveResult{}, fmt.Errorf("alias %s -> %s: %s", args.Path, replacement, res.Errors[0].Text)
				}
				return api.OnResolveResult{Path: res.Path, External: res.External}, nil
			})
		},
	}, nil
}

type externalOptions struct {
	Packages []string `json:"packages"`
}

// externalPlugin marks the listed packages (and their subpaths) external.
func externalPlugin(options map[string]interface{}) (api.Plugin, error) {
	opts := &externalOptions{}
	if err := decodeOptions(options, opts); err != nil {
		return api.Plugin{}, err
	}
	if len(opts.Packages) == 0 {
		return api.Plugin{}, errors.New("external requires at least one package")
	}

	return api.Plugin{
		Name: "external",
		Setup: func(build api.PluginBuild) {
			build.OnResolve(api.OnResolveOptions{Filter: `^[^./]`}, func(args api.OnResolveArgs) (api.OnResolveResult, error) {
				for _, name := range opts.Packages {
					if args.Path == name || strings.HasPrefix(args.Path, name+"/") {
						return api.OnResolveResult{Path: args.Path, External: true}, nil
					}
				}
				return api.OnResolveResult{}, nil
			})
		},
	}, nil
}

// envPlugin serves `import env from "env"` as a JSON object of the process
// environment at build time.
func envPlugin(options map[string]interface{}) (api.Plugin, error) {
	return api.Plugin{
		Name: "env",
		Setup: func(build api.PluginBuild) {
			build.OnResolve(api.OnResolveOptions{Filter: `^env$`}, func(args api.OnResolveArgs) (api.OnResolveResult, error) {
				return api.OnResolveResult{Path: args.Path, Namespace: "env-ns"}, nil
			})
			build.OnLoad(api.OnLoadOptions{Filter: `.*`, Namespace: "env-ns"}, func(args api.OnLoadArgs) (api.OnLoadResult, error) {
				mappings := map[string]string{}
				for _, item := range os.Environ() {
					if eq := strings.Index(item, "="); eq >= 0 {
						mappings[item[:eq]] = item[eq+1:]
					}
				}
				b, err := json.Marshal(mappings)
				if err != nil {
					return api.OnLoadResult{}, err
				}
				contents := string(b)
				return api.OnLoadResult{Contents: &contents, Loader: api.LoaderJSON}, nil
			})
		},
	}, nil
}

type replaceOptions struct {
	From   string `json:"from"`
	To     string `json:"to"`
	Filter string `json:"filter,omitempty"`
}

// replacePlugin does literal text replacement on matching source files
// before they are compiled.
func replacePlugin(options map[string]interface{}) (api.Plugin, error) {
	opts := &replaceOptions{}
	if err := decodeOptions(options, opts); err != nil {
		return api.Plugin{}, err
	}
	if opts.From == "" {
		return api.Plugin{}, errors.New("replace requires a from string")
	}
	filter := opts.Filter
	if filter == "" {
		filter = `\.[jt]sx?$`
	}

	return api.Plugin{
		Name: "replace",
		Setup: func(build api.PluginBuild) {
			build.OnLoad(api.OnLoadOptions{Filter: filter}, func(args api.OnLoadArgs) (api.OnLoadResult, error) {
				b, err := os.ReadFile(args.Path)
				if err != nil {
					return api.OnLoadResult{}, err
				}
				contents := strings.ReplaceAll(string(b), opts.From, opts.To)
				return api.OnLoadResult{Contents: &contents, Loader: api.LoaderDefault}, nil
			})
		},
	}, nil
}
