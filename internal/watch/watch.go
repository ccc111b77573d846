// Package watch triggers rebuilds when dataset or config files change.
package watch

import (
	"context"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/log"
	"github.com/fsnotify/fsnotify"
)

// Watcher debounces filesystem events over a set of paths and invokes the
// rebuild callback once per burst of changes.
type Watcher struct {
	paths    []string
	debounce time.Duration
	onChange func()
}

// New returns a watcher over the given files and directories. Directories
// are watched recursively.
func New(paths []string, debounce time.Duration, onChange func()) *Watcher {
	if debounce <= 0 {
		debounce = 500 * time.Millisecond
	}
	return &Watcher{paths: paths, debounce: debounce, onChange: onChange}
}

// Run blocks until ctx is canceled, invoking the callback after each
// debounced burst of write/create/remove/rename events.
func (w *Watcher) Run(ctx context.Context) error {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer fw.Close()

	for _, path := range w.paths {
		if err := addRecursive(fw, path); err != nil {
			log.Warnf("cannot watch %s: %v", path, err)
		}
	}

	var timer *time.Timer
	fire := make(chan struct{}, 1)

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case event, ok := <-fw.Events:
			if !ok {
				return nil
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Remove|fsnotify.Rename) == 0 {
				continue
			}
			log.Debugf("change detected: %s", event)
			// newly created directories need their own watch
			if event.Op&fsnotify.Create != 0 {
				if fi, err := os.Stat(event.Name); err == nil && fi.IsDir() {
					addRecursive(fw, event.Name)
				}
			}
			if timer != nil {
				timer.Stop()
			}
			timer = time.AfterFunc(w.debounce, func() {
				select {
				case fire <- struct{}{}:
				default:
				}
			})
		case err, ok := <-fw.Errors:
			if !ok {
				return nil
			}
			log.Warnf("watch error: %v", err)
		case <-fire:
			w.onChange()
		}
	}
}

func addRecursive(fw *fsnotify.Watcher, root string) error {
	fi, err := os.Stat(root)
	if err != nil {
		return err
	}
	if !fi.IsDir() {
		return fw.Add(root)
	}
	return filepath.Walk(root, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if info.IsDir() {
			return fw.Add(path)
		}
		return nil
	})
}
