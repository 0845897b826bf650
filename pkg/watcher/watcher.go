// Package watcher re-runs a callback when a watched source file changes.
package watcher

import (
	"fmt"
	"log/slog"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// FileWatcher watches a single file and invokes a callback on change.
// Rapid event bursts (editors often write a file several times in a row)
// are debounced into one invocation.
type FileWatcher struct {
	watcher  *fsnotify.Watcher
	debounce time.Duration

	mu       sync.Mutex
	path     string
	onChange func()
	timer    *time.Timer
}

// New creates a file watcher with the given debounce interval
func New(debounce time.Duration) (*FileWatcher, error) {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create watcher: %w", err)
	}
	return &FileWatcher{watcher: w, debounce: debounce}, nil
}

// Watch starts watching the file and calls onChange after each change.
// It returns immediately; events are handled on a background goroutine.
func (fw *FileWatcher) Watch(file string, onChange func()) error {
	absPath, err := filepath.Abs(file)
	if err != nil {
		return fmt.Errorf("failed to resolve path %s: %w", file, err)
	}

	fw.mu.Lock()
	fw.path = absPath
	fw.onChange = onChange
	fw.mu.Unlock()

	// Watch the parent directory: editors that replace the file on save
	// would otherwise drop the watch together with the old inode.
	if err := fw.watcher.Add(filepath.Dir(absPath)); err != nil {
		return fmt.Errorf("failed to watch %s: %w", absPath, err)
	}

	go fw.run()
	return nil
}

func (fw *FileWatcher) run() {
	for {
		select {
		case event, ok := <-fw.watcher.Events:
			if !ok {
				return
			}
			if event.Op&(fsnotify.Write|fsnotify.Create) != 0 {
				fw.handleChange(event.Name)
			}

		case err, ok := <-fw.watcher.Errors:
			if !ok {
				return
			}
			slog.Warn("watcher error", "error", err)
		}
	}
}

func (fw *FileWatcher) handleChange(file string) {
	fw.mu.Lock()
	defer fw.mu.Unlock()

	if file != fw.path {
		return
	}
	if fw.timer != nil {
		fw.timer.Stop()
	}
	fw.timer = time.AfterFunc(fw.debounce, fw.onChange)
}

// Close stops the watcher
func (fw *FileWatcher) Close() error {
	return fw.watcher.Close()
}
