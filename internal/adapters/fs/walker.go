package fs

import (
	iofs "io/fs"
	"iter"
	"path"
	"path/filepath"
	"slices"
)

// Walker provides file walking functionality over any io/fs tree.
type Walker struct{}

// NewWalker creates a new Walker.
func NewWalker() *Walker {
	return &Walker{}
}

// WalkFiles yields every file in fsys as an absolute path under root, in lexical order.
// Directories whose name appears in skip are not descended into. A missing root yields nothing.
func (w *Walker) WalkFiles(fsys iofs.FS, root string, skip []string) iter.Seq[string] {
	return func(yield func(string) bool) {
		_ = iofs.WalkDir(fsys, ".", func(p string, d iofs.DirEntry, err error) error {
			if err != nil {
				// Unreadable subtrees are skipped rather than aborting the walk.
				if d != nil && d.IsDir() && p != "." {
					return iofs.SkipDir
				}
				return err
			}

			if d.IsDir() {
				if p != "." && w.shouldSkipDir(d.Name(), skip) {
					return iofs.SkipDir
				}
				return nil
			}

			if !yield(filepath.Join(root, filepath.FromSlash(p))) {
				return iofs.SkipAll
			}
			return nil
		})
	}
}

func (w *Walker) shouldSkipDir(name string, skip []string) bool {
	if slices.Contains(skip, name) {
		return true
	}
	for _, pattern := range skip {
		if matched, _ := path.Match(pattern, name); matched {
			return true
		}
	}
	return false
}
