package resolver

import (
	"path/filepath"
	"slices"
	"strings"

	"go.trai.ch/modres/internal/core/domain"
	"go.trai.ch/modres/internal/core/ports"
)

// escalation is a fallback location tried when a library directory yields no manifest.
type escalation int

const (
	// escalateNone searches the library directory itself.
	escalateNone escalation = iota
	// escalateSidecar searches the type-sidecar directory of the dependency root.
	escalateSidecar
	// escalateNested searches the next dependency root above the current one.
	escalateNested
)

func (e escalation) String() string {
	switch e {
	case escalateSidecar:
		return "sidecar"
	case escalateNested:
		return "nested"
	default:
		return "library"
	}
}

// walkSkip lists the directory names never entered by a downward enumeration.
var walkSkip = append([]string{domain.DependencyRootName}, domain.SkippedDirs...)

// DirectoryWalker implements the upward and downward searches of the resolver.
type DirectoryWalker struct {
	fs          ports.FileSystem
	paths       ports.PathUtil
	matcher     *ExtensionMatcher
	escalations []escalation
}

// NewDirectoryWalker creates a walker. Under ManifestStrict no escalation is attempted.
func NewDirectoryWalker(
	fsys ports.FileSystem,
	paths ports.PathUtil,
	matcher *ExtensionMatcher,
	policy domain.ManifestPolicy,
) *DirectoryWalker {
	w := &DirectoryWalker{fs: fsys, paths: paths, matcher: matcher}
	if policy != domain.ManifestStrict {
		w.escalations = []escalation{escalateSidecar, escalateNested}
	}
	return w
}

// WalkUpForSibling looks for a directory called name in start and each of its ancestors,
// returning the first match.
func (w *DirectoryWalker) WalkUpForSibling(name, start string) (string, bool) {
	dir := filepath.Clean(start)
	for {
		if escapesRoot(dir) {
			return "", false
		}
		candidate := filepath.Join(dir, name)
		if w.fs.IsDir(candidate) {
			return candidate, true
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", false
		}
		dir = parent
	}
}

// FindNamedEntry looks for target for the library libName living at libDir under depRoot.
// The library directory is searched first; when that fails the configured escalations are
// tried in order, each at most once.
func (w *DirectoryWalker) FindNamedEntry(target, libDir, depRoot, libName string) (string, error) {
	existed := false
	steps := append([]escalation{escalateNone}, w.escalations...)
	for _, step := range steps {
		dir, root, ok := w.escalate(step, libDir, depRoot, libName)
		if !ok || !w.fs.IsDir(dir) {
			continue
		}
		existed = true
		if found, ok := w.searchFrom(target, dir, root); ok {
			return found, nil
		}
	}
	if !existed {
		return "", domain.ErrInvalidAncestorPath
	}
	return "", domain.ErrPackageManifestNotFound
}

// escalate returns the directory to search for step, and the dependency root bounding it.
func (w *DirectoryWalker) escalate(step escalation, libDir, depRoot, libName string) (string, string, bool) {
	switch step {
	case escalateNone:
		return libDir, depRoot, true
	case escalateSidecar:
		root := filepath.Join(depRoot, domain.TypesDirName)
		return filepath.Join(root, sidecarName(libName)), root, true
	case escalateNested:
		higher, ok := w.WalkUpForSibling(domain.DependencyRootName, filepath.Dir(filepath.Dir(depRoot)))
		if !ok || higher == depRoot {
			return "", "", false
		}
		return filepath.Join(higher, libName), higher, true
	default:
		return "", "", false
	}
}

// searchFrom checks dir, then its ancestors inside root, then every file below dir.
func (w *DirectoryWalker) searchFrom(target, dir, root string) (string, bool) {
	if candidate := filepath.Join(dir, target); w.fs.IsFile(candidate) {
		return candidate, true
	}

	for parent := filepath.Dir(dir); isBelow(parent, root); parent = filepath.Dir(parent) {
		if candidate := filepath.Join(parent, target); w.fs.IsFile(candidate) {
			return candidate, true
		}
	}

	exact := w.paths.HasExt(target, w.matcher.known)
	for file := range w.fs.WalkFiles(dir, walkSkip) {
		name := w.paths.FileName(file)
		if exact {
			if name == target && !w.matcher.Excluded(file) {
				return file, true
			}
			continue
		}
		if w.matcher.Accepts(file) && w.paths.ClearExt(name, w.matcher.known) == target {
			return file, true
		}
	}
	return "", false
}

// sidecarName maps a library name to its directory in the type sidecar.
// Scoped names are flattened: "@scope/pkg/sub" becomes "scope__pkg/sub".
func sidecarName(libName string) string {
	if !strings.HasPrefix(libName, "@") {
		return libName
	}
	scope, rest, ok := strings.Cut(strings.TrimPrefix(libName, "@"), "/")
	if !ok {
		return scope
	}
	pkg, sub, _ := strings.Cut(rest, "/")
	name := scope + "__" + pkg
	if sub != "" {
		return name + "/" + sub
	}
	return name
}

// isBelow reports whether p is strictly inside root.
func isBelow(p, root string) bool {
	rel, err := filepath.Rel(root, p)
	if err != nil || rel == "." {
		return false
	}
	return !escapesRoot(rel)
}

// escapesRoot reports whether p carries a ".." segment.
func escapesRoot(p string) bool {
	return slices.Contains(strings.Split(filepath.ToSlash(p), "/"), "..")
}
