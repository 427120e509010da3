// Package fs provides the file system adapters the resolver probes through.
package fs

import (
	iofs "io/fs"
	"iter"
	"os"

	"go.trai.ch/modres/internal/core/ports"
)

var _ ports.FileSystem = (*OSFS)(nil)

// OSFS implements ports.FileSystem using the host file system.
type OSFS struct {
	walker *Walker
}

// NewOSFS creates a new OSFS instance.
func NewOSFS(walker *Walker) *OSFS {
	return &OSFS{walker: walker}
}

// Stat returns file info for the given path.
func (o *OSFS) Stat(path string) (iofs.FileInfo, error) {
	return os.Stat(path)
}

// Exists reports whether anything exists at path.
func (o *OSFS) Exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// IsDir reports whether path is an existing directory.
func (o *OSFS) IsDir(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}

// IsFile reports whether path is an existing non-directory.
func (o *OSFS) IsFile(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}

// ReadFile reads the entire file at path.
func (o *OSFS) ReadFile(path string) ([]byte, error) {
	// #nosec G304 -- path is produced by the resolver from a caller-supplied specifier
	return os.ReadFile(path)
}

// WalkFiles yields all files below root, skipping directories named in skip.
func (o *OSFS) WalkFiles(root string, skip []string) iter.Seq[string] {
	return o.walker.WalkFiles(os.DirFS(root), root, skip)
}
