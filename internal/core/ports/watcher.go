package ports

import (
	"context"
	"iter"
)

// Watch operations reported in WatchEvent.Op.
const (
	OpCreate = "create"
	OpWrite  = "write"
	OpRemove = "remove"
	OpRename = "rename"
)

// WatchEvent is a single file system change.
type WatchEvent struct {
	Path string
	Op   string
}

// WatchBatch holds the changes coalesced within one debounce window, one entry per path.
type WatchBatch []WatchEvent

// Paths returns the changed paths in batch order.
func (b WatchBatch) Paths() []string {
	out := make([]string, 0, len(b))
	for _, e := range b {
		out = append(out, e.Path)
	}
	return out
}

// Watcher observes a directory tree for changes.
//
//go:generate mockgen -source=watcher.go -destination=mocks/mock_watcher.go -package=mocks
type Watcher interface {
	// Start begins watching root recursively until ctx is done or Stop is called.
	Start(ctx context.Context, root string) error
	// Stop releases the watcher.
	Stop() error
	// Events yields debounced batches until the watcher stops.
	Events() iter.Seq[WatchBatch]
}
