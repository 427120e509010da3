// Package resolver implements module specifier resolution.
package resolver

import (
	"os"
	"path/filepath"
	"strings"
	"sync/atomic"

	"go.trai.ch/modres/internal/core/domain"
	"go.trai.ch/modres/internal/core/ports"
	"go.trai.ch/zerr"
	"golang.org/x/sync/singleflight"
)

var _ ports.Resolver = (*Resolver)(nil)

// Resolver maps specifiers to absolute file paths. It is safe for concurrent use.
type Resolver struct {
	fs     ports.FileSystem
	paths  ports.PathUtil
	logger ports.Logger

	state atomic.Pointer[state]
}

// state bundles the options with everything derived from them, including the cache.
type state struct {
	opts     domain.ResolverOptions
	builtins *BuiltinRegistry
	matcher  *ExtensionMatcher
	locator  *LibraryLocator
	cache    *Cache
	group    singleflight.Group
}

// New creates a Resolver with an empty cache.
func New(
	fsys ports.FileSystem,
	paths ports.PathUtil,
	logger ports.Logger,
	opts domain.ResolverOptions,
) *Resolver {
	r := &Resolver{
		fs:     fsys,
		paths:  paths,
		logger: logger,
	}
	r.state.Store(r.newState(opts))
	return r
}

// Reconfigure replaces the options. Resolutions made under the old options are discarded.
func (r *Resolver) Reconfigure(opts domain.ResolverOptions) {
	r.state.Store(r.newState(opts))
	r.logger.Debug("resolver reconfigured",
		"extensions", opts.Extensions,
		"packageFields", opts.PackageFields,
		"manifestPolicy", string(opts.ManifestPolicy),
	)
}

// Options returns the options currently in effect.
func (r *Resolver) Options() domain.ResolverOptions {
	return r.state.Load().opts
}

// Classify reports how specifier is dispatched.
func (r *Resolver) Classify(specifier string) domain.SpecifierKind {
	return r.state.Load().classify(r.paths, specifier)
}

// Resolve returns the absolute path designated by specifier when imported from the directory
// from. Builtin modules resolve to the specifier itself. Errors match the domain sentinels
// with errors.Is and name the requested specifier.
func (r *Resolver) Resolve(specifier, from string) (domain.ResolvedPath, error) {
	if specifier == "" {
		return "", domain.NewResolutionError(domain.ErrEmptySpecifier, specifier, from)
	}
	if from == "" {
		wd, err := os.Getwd()
		if err != nil {
			return "", zerr.Wrap(err, domain.ErrWorkingDirUnavailable.Error())
		}
		from = wd
	}
	from = r.paths.Abs("", from)

	s := r.state.Load()
	kind := s.classify(r.paths, specifier)
	abs := r.paths.Abs(from, specifier)
	if namesDirectory(specifier) {
		abs += string(filepath.Separator)
	}
	key := cacheKey(kind, abs, specifier, from)

	if p, ok := s.cache.Get(key); ok {
		return p, nil
	}

	v, err, _ := s.group.Do(key, func() (any, error) {
		if p, ok := s.cache.Get(key); ok {
			return p, nil
		}
		p, err := r.resolve(s, kind, specifier, from)
		if err != nil {
			return "", err
		}
		return s.cache.Put(key, p), nil
	})
	if err != nil {
		r.logger.Debug("resolution failed", "specifier", specifier, "from", from, "error", err.Error())
		return "", err
	}

	p, _ := v.(string)
	r.logger.Debug("resolved", "specifier", specifier, "from", from, "path", p)
	return p, nil
}

func (r *Resolver) resolve(s *state, kind domain.SpecifierKind, specifier, from string) (string, error) {
	switch kind {
	case domain.KindBuiltin:
		return specifier, nil
	case domain.KindLibrary:
		p, err := s.locator.Locate(specifier, from)
		if err == nil {
			return p, nil
		}
		if s.opts.RetryFromParent {
			if parent := filepath.Dir(from); parent != from {
				if p, retryErr := s.locator.Locate(specifier, parent); retryErr == nil {
					return p, nil
				}
			}
		}
		return "", domain.NewResolutionError(err, specifier, from)
	default:
		abs := r.paths.Abs(from, specifier)
		if namesDirectory(specifier) {
			if p, ok := s.matcher.ProbeDir(abs); ok {
				return p, nil
			}
		} else if p, ok := s.matcher.ProbeFile(abs); ok {
			return p, nil
		}
		return "", domain.NewResolutionError(domain.ErrFileNotFound, specifier, from)
	}
}

func (r *Resolver) newState(opts domain.ResolverOptions) *state {
	reader := NewDescriptorReader(r.fs, opts.PackageFields)
	matcher := NewExtensionMatcher(r.fs, r.paths, reader, opts.Extensions, opts.ExcludedExtensions)
	walker := NewDirectoryWalker(r.fs, r.paths, matcher, opts.ManifestPolicy)
	return &state{
		opts:     opts,
		builtins: NewBuiltinRegistry(opts.BuiltinModules),
		matcher:  matcher,
		locator:  NewLibraryLocator(r.fs, r.paths, walker, matcher, reader),
		cache:    NewCache(),
	}
}

func (s *state) classify(paths ports.PathUtil, specifier string) domain.SpecifierKind {
	switch {
	case !paths.IsLibrary(specifier):
		return domain.KindFile
	case s.builtins.IsBuiltin(specifier):
		return domain.KindBuiltin
	default:
		return domain.KindLibrary
	}
}

// cacheKey keys files by absolute path, builtins by name and libraries by name and context,
// since nested dependency roots make the same name resolve differently per directory.
func cacheKey(kind domain.SpecifierKind, abs, specifier, from string) string {
	switch kind {
	case domain.KindFile:
		return abs
	case domain.KindBuiltin:
		return specifier
	default:
		return from + "\x00" + specifier
	}
}

// namesDirectory reports whether specifier ends in a path separator and so designates a
// directory rather than a file.
func namesDirectory(specifier string) bool {
	return strings.HasSuffix(specifier, "/") || strings.HasSuffix(specifier, string(filepath.Separator))
}
