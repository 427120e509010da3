// Package watcher implements file system watching for re-resolution on change.
package watcher

import (
	"slices"
	"strings"
	"sync"
	"time"
	"unique"

	"go.trai.ch/modres/internal/core/ports"
)

// Debouncer coalesces rapid file system events into one batch per quiet window.
type Debouncer struct {
	mu       sync.Mutex
	pending  map[unique.Handle[string]]string
	timer    *time.Timer
	window   time.Duration
	callback func(batch ports.WatchBatch)
}

// NewDebouncer creates a new debouncer with the given time window and callback.
func NewDebouncer(window time.Duration, callback func(batch ports.WatchBatch)) *Debouncer {
	return &Debouncer{
		pending:  make(map[unique.Handle[string]]string),
		window:   window,
		callback: callback,
	}
}

// Add records a change to path. A later operation on the same path replaces an earlier one.
func (d *Debouncer) Add(path, op string) {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.pending[unique.Make(path)] = op

	if d.timer != nil {
		d.timer.Stop()
	}
	d.timer = time.AfterFunc(d.window, d.fire)
}

// fire is called when the debounce window expires.
func (d *Debouncer) fire() {
	d.mu.Lock()
	d.timer = nil
	batch := d.drain()
	d.mu.Unlock()

	if len(batch) > 0 && d.callback != nil {
		go d.callback(batch)
	}
}

// Stop discards pending changes without delivering them.
func (d *Debouncer) Stop() {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
	clear(d.pending)
}

// drain empties the pending set into a batch sorted by path. Callers hold mu.
func (d *Debouncer) drain() ports.WatchBatch {
	if len(d.pending) == 0 {
		return nil
	}
	batch := make(ports.WatchBatch, 0, len(d.pending))
	for handle, op := range d.pending {
		batch = append(batch, ports.WatchEvent{Path: handle.Value(), Op: op})
	}
	d.pending = make(map[unique.Handle[string]]string)
	slices.SortFunc(batch, func(a, b ports.WatchEvent) int {
		return strings.Compare(a.Path, b.Path)
	})
	return batch
}
