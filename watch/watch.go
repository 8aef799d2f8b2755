// Package watch reruns builds when source files change.
package watch

import (
	"context"
	"path/filepath"
	"sort"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/jeffrom/dualpack/stdio"
)

const defaultDebounce = 250 * time.Millisecond

// Watcher observes the directories containing a set of files and invokes a
// rebuild callback after changes settle.
type Watcher struct {
	dirs     []string
	debounce time.Duration
	rebuild  func(context.Context) error
}

// New builds a watcher over the parent directories of files. rebuild is
// called after each debounced burst of change events; its error is reported
// but does not stop the watch.
func New(files []string, rebuild func(context.Context) error) *Watcher {
	return &Watcher{
		dirs:     parentDirs(files),
		debounce: defaultDebounce,
		rebuild:  rebuild,
	}
}

// Run watches until ctx is canceled.
func (w *Watcher) Run(ctx context.Context) error {
	std := stdio.FromContext(ctx)
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer fsw.Close()

	for _, dir := range w.dirs {
		if err := fsw.Add(dir); err != nil {
			return err
		}
		std.Debugf("watching %s", dir)
	}

	var timer *time.Timer
	var fire <-chan time.Time
	for {
		select {
		case <-ctx.Done():
			if timer != nil {
				timer.Stop()
			}
			return nil
		case ev, ok := <-fsw.Events:
			if !ok {
				return nil
			}
			if ev.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename|fsnotify.Remove) == 0 {
				continue
			}
			std.Debugf("change: %s (%s)", ev.Name, ev.Op)
			if timer != nil {
				timer.Stop()
			}
			timer = time.NewTimer(w.debounce)
			fire = timer.C
		case err, ok := <-fsw.Errors:
			if !ok {
				return nil
			}
			std.Warningf("watch: %v", err)
		case <-fire:
			fire = nil
			if err := w.rebuild(ctx); err != nil {
				std.Warningf("rebuild failed: %v", err)
			}
		}
	}
}

func parentDirs(files []string) []string {
	seen := map[string]struct{}{}
	var dirs []string
	for _, f := range files {
		dir := filepath.Dir(f)
		if _, ok := seen[dir]; ok {
			continue
		}
		seen[dir] = struct{}{}
		dirs = append(dirs, dir)
	}
	sort.Strings(dirs)
	return dirs
}
