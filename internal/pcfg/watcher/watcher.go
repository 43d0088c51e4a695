// Package watcher reloads the open config whenever the file changes on disk,
// e.g. when the game's launcher or a text editor rewrites it.
package watcher

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/performai/pcfg/internal/log"
	"github.com/performai/pcfg/internal/pcfg/editor"
	"github.com/performai/pcfg/internal/pcfg/fileutil"
	"github.com/performai/pcfg/internal/pcfg/variant"
)

// DefaultDebounce collapses the burst of events produced by one save
const DefaultDebounce = 300 * time.Millisecond

// Event is reported after every reload attempt
type Event struct {
	Path    string
	Variant variant.Variant
	Status  string
	Err     error
}

// Watcher reloads an editor on file changes
type Watcher struct {
	editor   *editor.Editor
	debounce time.Duration
	onChange func(Event)
	lastHash string
}

// New creates a watcher for the editor's open file
func New(e *editor.Editor, debounce time.Duration, onChange func(Event)) *Watcher {
	if debounce <= 0 {
		debounce = DefaultDebounce
	}
	return &Watcher{editor: e, debounce: debounce, onChange: onChange}
}

// Run blocks until ctx is cancelled. All editor access happens on the calling
// goroutine.
func (w *Watcher) Run(ctx context.Context) error {
	path := w.editor.Path()
	if path == "" {
		return fmt.Errorf("no config file to watch")
	}
	w.lastHash, _ = fileutil.GetFileHashHex(path)

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create fsnotify watcher: %w", err)
	}
	defer func() { _ = fsw.Close() }()

	// Watch the directory: atomic saves replace the file and would drop a
	// watch placed on the file itself.
	dir := filepath.Dir(path)
	if err := fsw.Add(dir); err != nil {
		return fmt.Errorf("failed to watch %s: %w", dir, err)
	}
	log.InfoH2("Watching %s", path)

	var timer *time.Timer
	var fire <-chan time.Time
	defer func() {
		if timer != nil {
			timer.Stop()
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-fsw.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != path {
				continue
			}
			log.DebugH2("File change detected: %s (%s)", event.Name, event.Op.String())
			if timer == nil {
				timer = time.NewTimer(w.debounce)
			} else {
				timer.Reset(w.debounce)
			}
			fire = timer.C

		case <-fire:
			fire = nil
			w.reload(path)

		case err, ok := <-fsw.Errors:
			if !ok {
				return nil
			}
			log.Error("Watcher error: %v", err)
		}
	}
}

func (w *Watcher) reload(path string) {
	hash, err := fileutil.GetFileHashHex(path)
	if err == nil && hash == w.lastHash {
		log.DebugH2("Content unchanged, skipping reload")
		return
	}
	w.lastHash = hash

	err = w.editor.Reload()
	if w.onChange != nil {
		w.onChange(Event{
			Path:    path,
			Variant: w.editor.Variant(),
			Status:  w.editor.Status(),
			Err:     err,
		})
	}
}
