package resolver

import (
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/modres/internal/adapters/fs"
	"go.trai.ch/modres/internal/adapters/pathutil"
	"go.trai.ch/modres/internal/core/domain"
)

func newTestWalker(tree fstest.MapFS, policy domain.ManifestPolicy) *DirectoryWalker {
	fsys := fs.NewMapFS("/", tree)
	paths := pathutil.New()
	opts := domain.DefaultResolverOptions()
	reader := NewDescriptorReader(fsys, opts.PackageFields)
	matcher := NewExtensionMatcher(fsys, paths, reader, opts.Extensions, opts.ExcludedExtensions)
	return NewDirectoryWalker(fsys, paths, matcher, policy)
}

func TestDirectoryWalker_WalkUpForSibling(t *testing.T) {
	t.Parallel()

	w := newTestWalker(fstest.MapFS{
		"project/node_modules/.keep":    {},
		"project/a/b/c/file.ts":         {},
		"project/a/node_modules/x/i.js": {},
		"project/a/b/node_modules":      {Data: []byte("not a directory")},
	}, domain.ManifestEscalate)

	got, ok := w.WalkUpForSibling(domain.DependencyRootName, "/project/a/b/c")
	require.True(t, ok)
	assert.Equal(t, "/project/a/node_modules", got)

	got, ok = w.WalkUpForSibling(domain.DependencyRootName, "/project")
	require.True(t, ok)
	assert.Equal(t, "/project/node_modules", got)

	_, ok = w.WalkUpForSibling("missing", "/project/a/b/c")
	assert.False(t, ok)

	_, ok = w.WalkUpForSibling(domain.DependencyRootName, "../project")
	assert.False(t, ok)
}

func TestDirectoryWalker_FindNamedEntry(t *testing.T) {
	t.Parallel()

	tree := fstest.MapFS{
		"p/node_modules/lib/package.json":                  {},
		"p/node_modules/lib/sub/inner.ts":                  {},
		"p/node_modules/lib/node_modules/x/package.json":   {},
		"p/node_modules/walk/src/deep/config.ts":           {},
		"p/node_modules/walk/src/deep/config.d.ts":         {},
		"p/node_modules/empty/README.md":                   {},
		"p/node_modules/empty/node_modules/y/package.json": {},
	}

	w := newTestWalker(tree, domain.ManifestEscalate)
	const root = "/p/node_modules"

	t.Run("direct child", func(t *testing.T) {
		t.Parallel()
		got, err := w.FindNamedEntry(domain.ManifestName, root+"/lib", root, "lib")
		require.NoError(t, err)
		assert.Equal(t, root+"/lib/package.json", got)
	})

	t.Run("ancestor inside the library", func(t *testing.T) {
		t.Parallel()
		got, err := w.FindNamedEntry(domain.ManifestName, root+"/lib/sub", root, "lib/sub")
		require.NoError(t, err)
		assert.Equal(t, root+"/lib/package.json", got)
	})

	t.Run("enumeration matches stripped names", func(t *testing.T) {
		t.Parallel()
		got, err := w.FindNamedEntry("config", root+"/walk", root, "walk")
		require.NoError(t, err)
		assert.Equal(t, root+"/walk/src/deep/config.ts", got)
	})

	t.Run("enumeration skips nested dependency roots", func(t *testing.T) {
		t.Parallel()
		_, err := w.FindNamedEntry(domain.ManifestName, root+"/empty", root, "empty")
		require.ErrorIs(t, err, domain.ErrPackageManifestNotFound)
	})

	t.Run("missing everywhere", func(t *testing.T) {
		t.Parallel()
		_, err := w.FindNamedEntry(domain.ManifestName, root+"/nope", root, "nope")
		require.ErrorIs(t, err, domain.ErrInvalidAncestorPath)
	})
}

func TestSidecarName(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "lodash", sidecarName("lodash"))
	assert.Equal(t, "lodash/fp", sidecarName("lodash/fp"))
	assert.Equal(t, "babel__core", sidecarName("@babel/core"))
	assert.Equal(t, "babel__core/lib", sidecarName("@babel/core/lib"))
	assert.Equal(t, "babel", sidecarName("@babel"))
}

func TestCacheKey(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "/p/a.ts", cacheKey(domain.KindFile, "/p/a.ts", "./a.ts", "/p"))
	assert.Equal(t, "fs", cacheKey(domain.KindBuiltin, "/p/fs", "fs", "/p"))
	assert.NotEqual(t,
		cacheKey(domain.KindLibrary, "/p/x", "x", "/p"),
		cacheKey(domain.KindLibrary, "/q/x", "x", "/q"),
	)
}

func TestEscalationString(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "library", escalateNone.String())
	assert.Equal(t, "sidecar", escalateSidecar.String())
	assert.Equal(t, "nested", escalateNested.String())
}
