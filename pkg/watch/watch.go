// Package watch re-triggers a callback when a watched file changes on disk, debounced so a
// single save (which often produces several write events) only fires once. Adapted from
// pkg/watcher.FileWatcher: same fsnotify-plus-debounce shape, generalized from "reload a 3-D
// model" to "reload a sketch file."
package watch

import (
	"fmt"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// Watcher watches a set of files and invokes a callback, debounced, when any of them change.
type Watcher struct {
	fsw      *fsnotify.Watcher
	mu       sync.Mutex
	onChange func(string)
	debounce time.Duration
	timers   map[string]*time.Timer
	done     chan struct{}
}

// Files starts watching paths and calls onChange(path) — debounced by debounce — whenever a
// watched file is written or recreated. The returned Watcher runs its own goroutine; call Stop
// to tear it down.
func Files(paths []string, debounce time.Duration, onChange func(string)) (*Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create watcher: %w", err)
	}

	w := &Watcher{
		fsw:      fsw,
		onChange: onChange,
		debounce: debounce,
		timers:   make(map[string]*time.Timer),
		done:     make(chan struct{}),
	}

	for _, path := range paths {
		absPath, err := filepath.Abs(path)
		if err != nil {
			fsw.Close()
			return nil, fmt.Errorf("failed to resolve path %s: %w", path, err)
		}
		if err := fsw.Add(absPath); err != nil {
			fsw.Close()
			return nil, fmt.Errorf("failed to watch %s: %w", absPath, err)
		}
	}

	w.start()
	return w, nil
}

func (w *Watcher) start() {
	go func() {
		for {
			select {
			case event, ok := <-w.fsw.Events:
				if !ok {
					return
				}
				if event.Op&fsnotify.Write == fsnotify.Write || event.Op&fsnotify.Create == fsnotify.Create {
					w.handleChange(event.Name)
				}
			case err, ok := <-w.fsw.Errors:
				if !ok {
					return
				}
				fmt.Printf("watch: %v\n", err)
			case <-w.done:
				return
			}
		}
	}()
}

func (w *Watcher) handleChange(path string) {
	w.mu.Lock()
	defer w.mu.Unlock()

	if timer, exists := w.timers[path]; exists {
		timer.Stop()
	}
	w.timers[path] = time.AfterFunc(w.debounce, func() {
		w.onChange(path)
	})
}

// Stop tears down the fsnotify watcher and cancels any pending debounce timers.
func (w *Watcher) Stop() error {
	w.mu.Lock()
	defer w.mu.Unlock()

	close(w.done)
	for _, timer := range w.timers {
		timer.Stop()
	}
	w.timers = make(map[string]*time.Timer)
	return w.fsw.Close()
}
