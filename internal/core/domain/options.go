package domain

import (
	"slices"
	"strings"

	"go.trai.ch/zerr"
)

// ManifestPolicy selects what happens when a library directory carries no manifest.
type ManifestPolicy string

const (
	// ManifestEscalate searches the type sidecar and then one dependency root higher.
	ManifestEscalate ManifestPolicy = "escalate"
	// ManifestStrict fails as soon as the library's own ancestry has no manifest.
	ManifestStrict ManifestPolicy = "strict"
)

// ParseManifestPolicy converts a configured policy name, defaulting the empty string to ManifestEscalate.
func ParseManifestPolicy(s string) (ManifestPolicy, error) {
	switch ManifestPolicy(strings.ToLower(strings.TrimSpace(s))) {
	case "", ManifestEscalate:
		return ManifestEscalate, nil
	case ManifestStrict:
		return ManifestStrict, nil
	default:
		return "", zerr.With(ErrInvalidManifestPolicy, "policy", s)
	}
}

// DefaultExtensions are probed in order when a specifier carries no extension.
var DefaultExtensions = []string{".ts", ".tsx", ".js", ".jsx", ".mjs", ".cjs", ".json"}

// DefaultExcludedExtensions veto a match even when an allowed extension would accept it.
var DefaultExcludedExtensions = []string{".d.ts"}

// DefaultPackageFields are the manifest entry fields, highest priority first.
var DefaultPackageFields = []string{"module", "es2015", "jsnext:main", "main"}

// ResolverOptions configures a resolver. Extensions and PackageFields are order-significant.
type ResolverOptions struct {
	Extensions         []string
	ExcludedExtensions []string
	PackageFields      []string
	BuiltinModules     []string
	ManifestPolicy     ManifestPolicy
	RetryFromParent    bool
}

// ExtraOptions are caller additions layered on top of the defaults.
type ExtraOptions struct {
	Extensions         []string
	ExcludedExtensions []string
	PackageFields      []string
	BuiltinModules     []string
}

// DefaultResolverOptions returns a fresh copy of the built-in configuration.
func DefaultResolverOptions() ResolverOptions {
	return ResolverOptions{
		Extensions:         slices.Clone(DefaultExtensions),
		ExcludedExtensions: slices.Clone(DefaultExcludedExtensions),
		PackageFields:      slices.Clone(DefaultPackageFields),
		BuiltinModules:     slices.Clone(DefaultBuiltinModules),
		ManifestPolicy:     ManifestEscalate,
		RetryFromParent:    true,
	}
}

// Extend returns a copy of o with extra appended after the existing entries.
// Extensions are dot-prefixed, and duplicates are dropped so the first position wins.
func (o ResolverOptions) Extend(extra ExtraOptions) ResolverOptions {
	out := o
	out.Extensions = appendUnique(slices.Clone(o.Extensions), normalizeExtensions(extra.Extensions)...)
	out.ExcludedExtensions = appendUnique(slices.Clone(o.ExcludedExtensions), normalizeExtensions(extra.ExcludedExtensions)...)
	out.PackageFields = appendUnique(slices.Clone(o.PackageFields), trimAll(extra.PackageFields)...)
	out.BuiltinModules = appendUnique(slices.Clone(o.BuiltinModules), trimAll(extra.BuiltinModules)...)
	return out
}

// NormalizeExtension makes sure ext starts with a dot. The empty string stays empty.
func NormalizeExtension(ext string) string {
	ext = strings.TrimSpace(ext)
	if ext == "" || strings.HasPrefix(ext, ".") {
		return ext
	}
	return "." + ext
}

func normalizeExtensions(exts []string) []string {
	out := make([]string, 0, len(exts))
	for _, ext := range exts {
		out = append(out, NormalizeExtension(ext))
	}
	return out
}

func trimAll(values []string) []string {
	out := make([]string, 0, len(values))
	for _, v := range values {
		out = append(out, strings.TrimSpace(v))
	}
	return out
}

func appendUnique(dst []string, values ...string) []string {
	for _, v := range values {
		if v == "" || slices.Contains(dst, v) {
			continue
		}
		dst = append(dst, v)
	}
	return dst
}
