package npm

import (
	"strings"

	"github.com/evanw/esbuild/pkg/api"
)

// ExternalsPlugin builds an esbuild plugin that marks every dependency and
// peer dependency declared in the given package manifests as external,
// including subpath imports like "lodash/merge".
func ExternalsPlugin(manifests []string) (api.Plugin, error) {
	names, err := Externals(manifests)
	if err != nil {
		return api.Plugin{}, err
	}
	set := make(map[string]struct{}, len(names))
	for _, name := range names {
		set[name] = struct{}{}
	}

	return api.Plugin{
		Name: "dualpack-externals",
		Setup: func(build api.PluginBuild) {
			// bare specifiers only; relative and absolute imports always
			// resolve normally
			build.OnResolve(api.OnResolveOptions{Filter: `^[^./]`}, func(args api.OnResolveArgs) (api.OnResolveResult, error) {
				if isExternalImport(set, args.Path) {
					return api.OnResolveResult{Path: args.Path, External: true}, nil
				}
				return api.OnResolveResult{}, nil
			})
		},
	}, nil
}

func isExternalImport(set map[string]struct{}, importPath string) bool {
	if _, ok := set[importPath]; ok {
		return true
	}
	for name := range set {
		if strings.HasPrefix(importPath, name+"/") {
			return true
		}
	}
	return false
}
