package ports

import (
	"io/fs"
	"iter"
)

// FileSystem is the synchronous file-system access the resolver probes through.
//
//go:generate mockgen -source=filesystem.go -destination=mocks/mock_filesystem.go -package=mocks
type FileSystem interface {
	// Stat returns file info for the given path.
	Stat(path string) (fs.FileInfo, error)
	// Exists reports whether anything exists at path.
	Exists(path string) bool
	// IsDir reports whether path is an existing directory.
	IsDir(path string) bool
	// IsFile reports whether path is an existing non-directory.
	IsFile(path string) bool
	// ReadFile reads the entire file at path.
	ReadFile(path string) ([]byte, error)
	// WalkFiles yields every file below root in lexical order, never descending into
	// directories whose name is listed in skip.
	WalkFiles(root string, skip []string) iter.Seq[string]
}
