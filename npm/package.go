// Package npm reads npm package manifests and generates the minimal
// per-subpackage manifest stubs that make dual-format outputs resolvable.
package npm

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"

	"github.com/Masterminds/semver/v3"
)

// Package is the subset of package.json dualpack cares about.
type Package struct {
	Name             string            `json:"name"`
	Version          string            `json:"version,omitempty"`
	Source           string            `json:"source,omitempty"`
	Main             string            `json:"main,omitempty"`
	Module           string            `json:"module,omitempty"`
	Dependencies     map[string]string `json:"dependencies,omitempty"`
	PeerDependencies map[string]string `json:"peerDependencies,omitempty"`
}

func ReadPackage(p string) (*Package, error) {
	b, err := os.ReadFile(p)
	if err != nil {
		return nil, err
	}
	pkg := &Package{}
	if err := json.Unmarshal(b, pkg); err != nil {
		return nil, fmt.Errorf("npm: invalid manifest %s: %w", p, err)
	}
	return pkg, nil
}

// ValidateVersion checks the manifest version parses as semver. An absent
// version is not an error.
func (p *Package) ValidateVersion() error {
	if p.Version == "" {
		return nil
	}
	if _, err := semver.NewVersion(p.Version); err != nil {
		return fmt.Errorf("npm: version %q: %w", p.Version, err)
	}
	return nil
}

// Externals gathers the union of dependency and peer dependency names from
// the given manifest paths. These are the packages the bundler should leave
// as runtime requires instead of inlining.
func Externals(manifests []string) ([]string, error) {
	set := map[string]struct{}{}
	for _, p := range manifests {
		pkg, err := ReadPackage(p)
		if err != nil {
			return nil, err
		}
		for name := range pkg.Dependencies {
			set[name] = struct{}{}
		}
		for name := range pkg.PeerDependencies {
			set[name] = struct{}{}
		}
	}

	names := make([]string, 0, len(set))
	for name := range set {
		names = append(names, name)
	}
	sort.Strings(names)
	return names, nil
}
