// Package outfs is an fs implementation scoped to a build output directory
// that supports stat, reads, and globbing.
package outfs

import (
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
)

type FS struct {
	dirFS fs.FS
	root  string
}

func New(root string) FS {
	return FS{
		dirFS: os.DirFS(root),
		root:  root,
	}
}

func (fs FS) Open(name string) (fs.File, error) { return fs.dirFS.Open(name) }

func (fs FS) Root() string { return fs.root }

func (fs FS) Stat(name string) (fs.FileInfo, error) {
	return os.Stat(fs.Join(name))
}

func (fs FS) ReadDir(name string) ([]fs.DirEntry, error) {
	return os.ReadDir(fs.Join(name))
}

func (fs FS) ReadFile(name string) ([]byte, error) {
	return os.ReadFile(fs.Join(name))
}

// Glob returns paths relative to the output root matching a doublestar
// pattern such as "**/*.cjs.js".
func (fs FS) Glob(pattern string) ([]string, error) {
	return doublestar.Glob(fs, pattern)
}

// Rename renames a file within the output root.
func (fs FS) Rename(oldname, newname string) error {
	return os.Rename(fs.Join(oldname), fs.Join(newname))
}

func (fs FS) WriteFile(name string, b []byte, mode os.FileMode) error {
	p := fs.Join(name)
	if err := os.MkdirAll(filepath.Dir(p), 0755); err != nil {
		return err
	}
	return os.WriteFile(p, b, mode)
}

func (fs FS) Abs(name string) string {
	name = strings.TrimPrefix(name, fs.root+"/")
	return filepath.Clean(filepath.Join(fs.root, name))
}

func (fs FS) Join(paths ...string) string {
	trimmed := make([]string, len(paths))
	for i, p := range paths {
		trimmed[i] = strings.TrimPrefix(p, fs.root+"/")
	}
	return filepath.Join(append([]string{fs.root}, trimmed...)...)
}
