package watcher

import (
	"context"
	"io/fs"
	"iter"
	"os"
	"path/filepath"
	"slices"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"go.trai.ch/modres/internal/core/domain"
	"go.trai.ch/modres/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.Watcher = (*Watcher)(nil)

const eventChannelBuffer = 16

// DefaultDebounceWindow is the default time window for debouncing file events.
const DefaultDebounceWindow = 50 * time.Millisecond

// Watcher implements recursive file system watching using fsnotify.
type Watcher struct {
	fsWatcher *fsnotify.Watcher
	logger    ports.Logger
	debouncer *Debouncer
	events    chan ports.WatchBatch
	done      chan struct{}

	mu     sync.Mutex
	closed bool
}

// NewWatcher creates a new file system watcher delivering batches debounced over window.
// The underlying fsnotify handle is opened by Start.
func NewWatcher(logger ports.Logger, window time.Duration) *Watcher {
	w := &Watcher{
		logger: logger,
		events: make(chan ports.WatchBatch, eventChannelBuffer),
		done:   make(chan struct{}),
	}
	w.debouncer = NewDebouncer(window, w.emit)
	return w
}

// Start begins watching the given root directory recursively.
// A Watcher is started at most once.
func (w *Watcher) Start(ctx context.Context, root string) error {
	fsWatcher, err := fsnotify.NewWatcher()
	if err != nil {
		return zerr.Wrap(err, "failed to create file watcher")
	}
	w.fsWatcher = fsWatcher

	for dir := range w.watchRecursively(root) {
		if err := w.fsWatcher.Add(dir); err != nil {
			return zerr.With(zerr.Wrap(err, "failed to watch directory"), "path", dir)
		}
	}
	w.logger.Debug("watching", "root", root, "directories", len(w.fsWatcher.WatchList()))

	go w.processEvents(ctx)

	return nil
}

// Stop stops the watcher and releases all resources.
func (w *Watcher) Stop() error {
	if w.fsWatcher == nil {
		return nil
	}
	return w.fsWatcher.Close()
}

// Events returns an iterator of debounced change batches.
func (w *Watcher) Events() iter.Seq[ports.WatchBatch] {
	return func(yield func(ports.WatchBatch) bool) {
		for batch := range w.events {
			if !yield(batch) {
				return
			}
		}
	}
}

// watchRecursively walks the directory tree and yields all directories.
func (w *Watcher) watchRecursively(root string) iter.Seq[string] {
	return func(yield func(string) bool) {
		_ = filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return nil //nolint:nilerr // Unreadable directories are skipped.
			}
			if d.IsDir() {
				if path != root && shouldSkip(d.Name()) {
					return fs.SkipDir
				}
				if !yield(path) {
					return filepath.SkipAll
				}
			}
			return nil
		})
	}
}

func shouldSkip(name string) bool {
	return slices.Contains(domain.SkippedDirs, name)
}

// processEvents feeds raw fsnotify events into the debouncer until ctx is done or the watcher closes.
func (w *Watcher) processEvents(ctx context.Context) {
	defer w.shutdown()

	for {
		select {
		case <-ctx.Done():
			return
		case event, ok := <-w.fsWatcher.Events:
			if !ok {
				return
			}

			op := convertOp(event.Op)
			if op == "" {
				continue
			}
			w.debouncer.Add(event.Name, op)

			// New directories are watched as they appear.
			if op == ports.OpCreate {
				if info, err := os.Stat(event.Name); err == nil && info.IsDir() && !shouldSkip(info.Name()) {
					for dir := range w.watchRecursively(event.Name) {
						_ = w.fsWatcher.Add(dir)
					}
				}
			}

		case err, ok := <-w.fsWatcher.Errors:
			if !ok {
				return
			}
			w.logger.Warn("watcher: " + err.Error())
		}
	}
}

// shutdown drops pending changes and closes the event stream exactly once.
func (w *Watcher) shutdown() {
	close(w.done)
	w.debouncer.Stop()

	w.mu.Lock()
	defer w.mu.Unlock()
	w.closed = true
	close(w.events)
}

// emit delivers a batch unless the watcher has shut down.
func (w *Watcher) emit(batch ports.WatchBatch) {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.closed {
		return
	}
	select {
	case w.events <- batch:
	case <-w.done:
	}
}

// convertOp maps an fsnotify operation to its watch operation. Chmod-only events map to "".
func convertOp(op fsnotify.Op) string {
	switch {
	case op.Has(fsnotify.Write):
		return ports.OpWrite
	case op.Has(fsnotify.Create):
		return ports.OpCreate
	case op.Has(fsnotify.Remove):
		return ports.OpRemove
	case op.Has(fsnotify.Rename):
		return ports.OpRename
	default:
		return ""
	}
}
