package resolver

import (
	"strings"

	"go.trai.ch/modres/internal/core/domain"
)

// BuiltinRegistry answers whether a specifier names a host runtime module.
type BuiltinRegistry struct {
	names map[string]struct{}
}

// NewBuiltinRegistry creates a registry holding names.
func NewBuiltinRegistry(names []string) *BuiltinRegistry {
	r := &BuiltinRegistry{names: make(map[string]struct{}, len(names))}
	for _, name := range names {
		if name = strings.TrimSpace(name); name != "" {
			r.names[name] = struct{}{}
		}
	}
	return r
}

// IsBuiltin reports whether specifier is registered, either as-is or behind the "node:" prefix.
func (r *BuiltinRegistry) IsBuiltin(specifier string) bool {
	if _, ok := r.names[specifier]; ok {
		return true
	}
	rest, ok := strings.CutPrefix(specifier, domain.BuiltinPrefix)
	if !ok {
		return false
	}
	_, ok = r.names[rest]
	return ok
}

// Len returns the number of registered names.
func (r *BuiltinRegistry) Len() int {
	return len(r.names)
}
