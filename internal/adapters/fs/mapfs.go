package fs

import (
	iofs "io/fs"
	"iter"
	"path/filepath"
	"strings"

	"go.trai.ch/modres/internal/core/ports"
)

var _ ports.FileSystem = (*MapFS)(nil)

// MapFS adapts an io/fs tree (typically fstest.MapFS) mounted at an absolute root.
// It lets resolver tests describe project layouts in memory.
type MapFS struct {
	FS     iofs.FS
	Root   string // simulated mount point
	walker *Walker
}

// NewMapFS creates a new MapFS with the given root path and filesystem.
func NewMapFS(root string, fsys iofs.FS) *MapFS {
	return &MapFS{
		FS:     fsys,
		Root:   filepath.Clean(root),
		walker: NewWalker(),
	}
}

// Stat returns file info for the given path.
func (m *MapFS) Stat(path string) (iofs.FileInfo, error) {
	rel, ok := m.toRelPath(path)
	if !ok {
		return nil, &iofs.PathError{Op: "stat", Path: path, Err: iofs.ErrNotExist}
	}
	return iofs.Stat(m.FS, rel)
}

// Exists reports whether anything exists at path.
func (m *MapFS) Exists(path string) bool {
	_, err := m.Stat(path)
	return err == nil
}

// IsDir reports whether path is an existing directory.
func (m *MapFS) IsDir(path string) bool {
	info, err := m.Stat(path)
	return err == nil && info.IsDir()
}

// IsFile reports whether path is an existing non-directory.
func (m *MapFS) IsFile(path string) bool {
	info, err := m.Stat(path)
	return err == nil && !info.IsDir()
}

// ReadFile reads the entire file at path.
func (m *MapFS) ReadFile(path string) ([]byte, error) {
	rel, ok := m.toRelPath(path)
	if !ok {
		return nil, &iofs.PathError{Op: "open", Path: path, Err: iofs.ErrNotExist}
	}
	return iofs.ReadFile(m.FS, rel)
}

// WalkFiles yields all files below root, skipping directories named in skip.
func (m *MapFS) WalkFiles(root string, skip []string) iter.Seq[string] {
	rel, ok := m.toRelPath(root)
	if !ok {
		return func(func(string) bool) {}
	}
	sub, err := iofs.Sub(m.FS, rel)
	if err != nil {
		return func(func(string) bool) {}
	}
	return m.walker.WalkFiles(sub, filepath.Clean(root), skip)
}

// toRelPath converts an absolute path to a slash-separated path inside the tree.
// Paths outside the root report false.
func (m *MapFS) toRelPath(absPath string) (string, bool) {
	absPath = filepath.Clean(absPath)
	if !filepath.IsAbs(absPath) {
		return "", false
	}

	var rel string
	switch {
	case absPath == m.Root:
		return ".", true
	case m.Root == string(filepath.Separator):
		rel = strings.TrimPrefix(absPath, m.Root)
	case strings.HasPrefix(absPath, m.Root+string(filepath.Separator)):
		rel = strings.TrimPrefix(absPath, m.Root+string(filepath.Separator))
	default:
		return "", false
	}
	return filepath.ToSlash(rel), true
}
