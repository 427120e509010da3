package resolver

import (
	"path/filepath"
	"slices"
	"strings"

	"go.trai.ch/modres/internal/core/domain"
	"go.trai.ch/modres/internal/core/ports"
)

// ExtensionMatcher infers file extensions in priority order.
type ExtensionMatcher struct {
	fs       ports.FileSystem
	paths    ports.PathUtil
	reader   *DescriptorReader
	allowed  []string
	excluded []string
	known    []string
}

// NewExtensionMatcher creates a matcher probing allowed in order and vetoing excluded.
func NewExtensionMatcher(
	fsys ports.FileSystem,
	paths ports.PathUtil,
	reader *DescriptorReader,
	allowed, excluded []string,
) *ExtensionMatcher {
	allowed = dotPrefixed(paths, allowed)
	excluded = dotPrefixed(paths, excluded)
	known := make([]string, 0, len(allowed)+len(excluded))
	known = append(known, allowed...)
	known = append(known, excluded...)
	return &ExtensionMatcher{
		fs:       fsys,
		paths:    paths,
		reader:   reader,
		allowed:  allowed,
		excluded: excluded,
		known:    known,
	}
}

// FirstMatch returns the first base+ext that is a file, scanning allowed in order.
func (m *ExtensionMatcher) FirstMatch(base string) (string, bool) {
	return m.firstOf(func(ext string) string { return base + ext })
}

// firstOf returns the first existing candidate built from the allowed extensions in order.
func (m *ExtensionMatcher) firstOf(candidateFor func(ext string) string) (string, bool) {
	for _, ext := range m.allowed {
		if slices.Contains(m.excluded, ext) {
			continue
		}
		candidate := candidateFor(ext)
		if m.Excluded(candidate) {
			continue
		}
		if m.fs.IsFile(candidate) {
			return candidate, true
		}
	}
	return "", false
}

// Accepts reports whether p carries an allowed extension and no excluded one.
func (m *ExtensionMatcher) Accepts(p string) bool {
	return m.paths.HasExt(p, m.allowed) && !m.Excluded(p)
}

// Excluded reports whether p ends with an excluded extension.
func (m *ExtensionMatcher) Excluded(p string) bool {
	return m.paths.HasExt(p, m.excluded)
}

// ProbeFile finds the file designated by base: the exact file, base with an inferred
// extension, the entry of base as a directory, then base with its suffix cleared.
func (m *ExtensionMatcher) ProbeFile(base string) (string, bool) {
	if m.fs.IsFile(base) && !m.Excluded(base) {
		return base, true
	}
	if found, ok := m.FirstMatch(base); ok {
		return found, true
	}
	if m.fs.IsDir(base) {
		if found, ok := m.directoryEntry(base); ok {
			return found, true
		}
	}
	if cleared := m.paths.ClearExt(base, m.known); cleared != base && !strings.HasSuffix(cleared, string(filepath.Separator)) {
		return m.firstOf(func(ext string) string { return m.paths.SetExt(base, ext, m.known) })
	}
	return "", false
}

// ProbeDir finds the entry of dir: its manifest entry when it has one, else its index file.
func (m *ExtensionMatcher) ProbeDir(dir string) (string, bool) {
	if !m.fs.IsDir(dir) {
		return "", false
	}
	return m.directoryEntry(dir)
}

// directoryEntry resolves dir through its manifest when it has one, else through its index file.
func (m *ExtensionMatcher) directoryEntry(dir string) (string, bool) {
	manifest := filepath.Join(dir, domain.ManifestName)
	if m.fs.IsFile(manifest) {
		if entry, err := m.reader.EntryPathFor(manifest); err == nil {
			if m.fs.IsFile(entry) && !m.Excluded(entry) {
				return entry, true
			}
			if found, ok := m.FirstMatch(entry); ok {
				return found, true
			}
			if m.fs.IsDir(entry) && entry != dir {
				if found, ok := m.FirstMatch(filepath.Join(entry, domain.IndexName)); ok {
					return found, true
				}
			}
		}
	}
	return m.FirstMatch(filepath.Join(dir, domain.IndexName))
}

func dotPrefixed(paths ports.PathUtil, exts []string) []string {
	out := make([]string, 0, len(exts))
	for _, ext := range exts {
		if ext = paths.DotPrefix(ext); ext != "" {
			out = append(out, ext)
		}
	}
	return out
}
