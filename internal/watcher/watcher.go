// Package watcher triggers documentation rebuilds when project sources
// change.
package watcher

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
)

// DefaultDebounce batches rapid editor save bursts into one rebuild.
const DefaultDebounce = 2 * time.Second

// Watcher monitors a set of files and directories and invokes a callback
// after events settle. Directories are watched recursively; directories
// created while watching are picked up as well.
type Watcher struct {
	fsw      *fsnotify.Watcher
	debounce time.Duration
	onChange func()
	errW     io.Writer
	watched  int
}

// New creates a watcher over the given paths. Paths that do not exist are
// skipped; at least one must be watchable. The callback runs on the watch
// goroutine, so builds are serialized.
func New(paths []string, debounce time.Duration, onChange func(), errW io.Writer) (*Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create file watcher: %w", err)
	}
	if debounce <= 0 {
		debounce = DefaultDebounce
	}
	if errW == nil {
		errW = os.Stderr
	}

	w := &Watcher{fsw: fsw, debounce: debounce, onChange: onChange, errW: errW}

	for _, p := range paths {
		abs, absErr := filepath.Abs(p)
		if absErr != nil {
			continue
		}
		if addErr := w.add(abs); addErr != nil {
			fmt.Fprintf(errW, "Warning: cannot watch %s: %v\n", abs, addErr)
		}
	}

	if w.watched == 0 {
		fsw.Close()
		return nil, fmt.Errorf("none of the watch paths exist: %v", paths)
	}
	return w, nil
}

// add registers a path, recursing into subdirectories.
func (w *Watcher) add(path string) error {
	info, err := os.Stat(path)
	if err != nil {
		return err
	}

	if !info.IsDir() {
		// Watch the parent so editors that replace files (rename+create)
		// are still observed.
		if err := w.fsw.Add(filepath.Dir(path)); err != nil {
			return err
		}
		w.watched++
		return nil
	}

	return filepath.WalkDir(path, func(p string, d os.DirEntry, walkErr error) error {
		if walkErr != nil || !d.IsDir() {
			return nil
		}
		if err := w.fsw.Add(p); err != nil {
			return nil
		}
		w.watched++
		return nil
	})
}

// Run blocks processing events until the context is cancelled.
func (w *Watcher) Run(ctx context.Context) error {
	defer w.fsw.Close()

	timer := time.NewTimer(w.debounce)
	if !timer.Stop() {
		<-timer.C
	}
	pending := false

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-w.fsw.Events:
			if !ok {
				return nil
			}
			if !relevant(event) {
				continue
			}
			if event.Op.Has(fsnotify.Create) {
				// New directory: start watching it too.
				if info, err := os.Stat(event.Name); err == nil && info.IsDir() {
					_ = w.fsw.Add(event.Name)
				}
			}
			if pending {
				if !timer.Stop() {
					select {
					case <-timer.C:
					default:
					}
				}
			}
			timer.Reset(w.debounce)
			pending = true

		case err, ok := <-w.fsw.Errors:
			if !ok {
				return nil
			}
			fmt.Fprintf(w.errW, "Watch error: %v\n", err)

		case <-timer.C:
			if pending {
				pending = false
				w.onChange()
			}
		}
	}
}

func relevant(event fsnotify.Event) bool {
	return event.Op.Has(fsnotify.Write) ||
		event.Op.Has(fsnotify.Create) ||
		event.Op.Has(fsnotify.Remove) ||
		event.Op.Has(fsnotify.Rename)
}
