// Package pathutil implements the path-string helpers used by the resolver.
package pathutil

import (
	"path/filepath"
	"strings"

	"go.trai.ch/modres/internal/core/domain"
	"go.trai.ch/modres/internal/core/ports"
)

var _ ports.PathUtil = (*Paths)(nil)

// Paths implements ports.PathUtil on top of path/filepath.
type Paths struct{}

// New creates a new Paths.
func New() *Paths {
	return &Paths{}
}

// Abs resolves p against base. An empty base resolves against the working directory.
func (Paths) Abs(base, p string) string {
	if filepath.IsAbs(p) {
		return filepath.Clean(p)
	}
	if base == "" {
		if abs, err := filepath.Abs(p); err == nil {
			return abs
		}
	}
	return filepath.Join(base, p)
}

// Ext returns the longest extension in known that p's file name ends with.
// Multi-part extensions like ".d.ts" win over their shorter tails.
// Without a known match the final dotted suffix is returned.
func (Paths) Ext(p string, known []string) string {
	if ext := longestKnown(filepath.Base(p), known); ext != "" {
		return ext
	}
	return filepath.Ext(p)
}

// SetExt replaces the extension of p with ext.
func (u Paths) SetExt(p, ext string, known []string) string {
	return u.ClearExt(p, known) + domain.NormalizeExtension(ext)
}

// ClearExt strips the extension of p.
func (u Paths) ClearExt(p string, known []string) string {
	return strings.TrimSuffix(p, u.Ext(p, known))
}

// HasExt reports whether p ends with one of known.
func (Paths) HasExt(p string, known []string) bool {
	return longestKnown(filepath.Base(p), known) != ""
}

// IsLibrary reports whether specifier is a bare name, i.e. does not start with a
// relative or absolute path marker.
func (Paths) IsLibrary(specifier string) bool {
	switch {
	case specifier == "", specifier == ".", specifier == "..":
		return false
	case strings.HasPrefix(specifier, "./"), strings.HasPrefix(specifier, "../"):
		return false
	case strings.HasPrefix(specifier, `.\`), strings.HasPrefix(specifier, `..\`):
		return false
	case strings.HasPrefix(specifier, "/"), filepath.IsAbs(specifier):
		return false
	}
	return true
}

// FileName returns the final element of p.
func (Paths) FileName(p string) string {
	return filepath.Base(p)
}

// DotPrefix makes sure ext starts with a dot.
func (Paths) DotPrefix(ext string) string {
	return domain.NormalizeExtension(ext)
}

func longestKnown(name string, known []string) string {
	best := ""
	for _, ext := range known {
		if ext == "" || len(ext) <= len(best) || len(name) <= len(ext) {
			continue
		}
		if strings.HasSuffix(name, ext) {
			best = ext
		}
	}
	return best
}
