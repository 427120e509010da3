package resolver

import (
	"path/filepath"
	"strings"

	"go.trai.ch/modres/internal/core/domain"
	"go.trai.ch/modres/internal/core/ports"
)

// LibraryLocator resolves bare library names below a dependency root.
type LibraryLocator struct {
	fs      ports.FileSystem
	paths   ports.PathUtil
	walker  *DirectoryWalker
	matcher *ExtensionMatcher
	reader  *DescriptorReader
}

// NewLibraryLocator creates a locator from its collaborators.
func NewLibraryLocator(
	fsys ports.FileSystem,
	paths ports.PathUtil,
	walker *DirectoryWalker,
	matcher *ExtensionMatcher,
	reader *DescriptorReader,
) *LibraryLocator {
	return &LibraryLocator{
		fs:      fsys,
		paths:   paths,
		walker:  walker,
		matcher: matcher,
		reader:  reader,
	}
}

// Locate returns the entry file of libName as imported from the directory from.
// The returned errors are the bare domain sentinels, or a wrapped manifest read failure.
func (l *LibraryLocator) Locate(libName, from string) (string, error) {
	depRoot, candidate, name, err := l.dependencyRoot(libName, from)
	if err != nil {
		return "", err
	}

	if !l.fs.IsDir(candidate) {
		if found, ok := l.matcher.ProbeFile(candidate); ok {
			return found, nil
		}
		if l.fs.Exists(candidate) {
			return "", domain.ErrPackageEntryNotFound
		}
	} else {
		if found, ok := l.matcher.FirstMatch(candidate); ok {
			return found, nil
		}
		// A subdirectory without its own manifest is entered through its index file.
		if !l.fs.IsFile(filepath.Join(candidate, domain.ManifestName)) {
			if found, ok := l.matcher.FirstMatch(filepath.Join(candidate, domain.IndexName)); ok {
				return found, nil
			}
		}
	}

	manifest, err := l.walker.FindNamedEntry(domain.ManifestName, candidate, depRoot, name)
	if err != nil {
		return "", err
	}

	entry, err := l.reader.EntryPathFor(manifest)
	if err != nil {
		return "", err
	}
	return l.resolveEntry(entry, filepath.Dir(manifest))
}

// dependencyRoot returns the dependency root, the candidate library path and the library
// name relative to the dependency root.
func (l *LibraryLocator) dependencyRoot(libName, from string) (string, string, string, error) {
	segments := strings.Split(filepath.ToSlash(libName), "/")
	if i := lastIndex(segments, domain.DependencyRootName); i >= 0 {
		depRoot := l.paths.Abs(from, filepath.FromSlash(strings.Join(segments[:i+1], "/")))
		name := filepath.FromSlash(strings.Join(segments[i+1:], "/"))
		return depRoot, filepath.Join(depRoot, name), name, nil
	}

	depRoot, ok := l.walker.WalkUpForSibling(domain.DependencyRootName, from)
	if !ok {
		return "", "", "", domain.ErrDependencyRootNotFound
	}
	name := filepath.FromSlash(libName)
	return depRoot, filepath.Join(depRoot, name), name, nil
}

// resolveEntry turns a manifest entry candidate into a file. A candidate with a recognized
// extension is trusted without probing.
func (l *LibraryLocator) resolveEntry(entry, libDir string) (string, error) {
	if l.matcher.Accepts(entry) {
		return entry, nil
	}
	if found, ok := l.matcher.FirstMatch(entry); ok {
		return found, nil
	}
	if l.fs.IsDir(entry) {
		if found, ok := l.matcher.FirstMatch(filepath.Join(entry, domain.IndexName)); ok {
			return found, nil
		}
	}
	if found, ok := l.matcher.FirstMatch(filepath.Join(libDir, domain.IndexName)); ok {
		return found, nil
	}
	return "", domain.ErrPackageEntryNotFound
}

func lastIndex(segments []string, name string) int {
	for i := len(segments) - 1; i >= 0; i-- {
		if segments[i] == name {
			return i
		}
	}
	return -1
}
