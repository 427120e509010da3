package ports

import "go.trai.ch/modres/internal/core/domain"

// Resolver turns a specifier and a starting directory into a resolved path.
//
//go:generate mockgen -source=resolver.go -destination=mocks/mock_resolver.go -package=mocks
type Resolver interface {
	// Resolve returns the canonical path designated by specifier when imported from the directory from.
	// An empty from means the process working directory.
	Resolve(specifier, from string) (domain.ResolvedPath, error)
	// Classify reports how specifier would be dispatched, without touching the file system.
	Classify(specifier string) domain.SpecifierKind
	// Reconfigure replaces the options and starts a fresh cache.
	Reconfigure(opts domain.ResolverOptions)
}
