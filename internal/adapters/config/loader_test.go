package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/modres/internal/adapters/config"
	"go.trai.ch/modres/internal/adapters/fs"
	"go.trai.ch/modres/internal/core/domain"
	"go.trai.ch/modres/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

func newLoader(t *testing.T, tree fstest.MapFS) (*config.Loader, *mocks.MockLogger) {
	t.Helper()
	ctrl := gomock.NewController(t)
	mockLogger := mocks.NewMockLogger(ctrl)
	mockLogger.EXPECT().Debug(gomock.Any(), gomock.Any()).AnyTimes()
	return config.NewLoader(fs.NewMapFS("/", tree), mockLogger), mockLogger
}

func TestLoader_Load_Defaults(t *testing.T) {
	loader, _ := newLoader(t, fstest.MapFS{
		"project/src/main.ts": {},
	})

	opts, err := loader.Load("/project/src")
	require.NoError(t, err)
	assert.Equal(t, domain.DefaultResolverOptions(), opts)
}

func TestLoader_Load_Extends(t *testing.T) {
	loader, _ := newLoader(t, fstest.MapFS{
		"project/.modres.yaml": {Data: []byte(`
version: "1"
extensions: [vue, .svelte]
excludedExtensions: [.spec.ts]
packageFields: [browser]
builtinModules: [electron]
manifestPolicy: strict
retryFromParent: false
`)},
		"project/src/main.ts": {},
	})

	opts, err := loader.Load("/project/src")
	require.NoError(t, err)

	assert.Equal(t, append(domain.DefaultExtensions, ".vue", ".svelte"), opts.Extensions)
	assert.Equal(t, []string{".d.ts", ".spec.ts"}, opts.ExcludedExtensions)
	assert.Equal(t, append(domain.DefaultPackageFields, "browser"), opts.PackageFields)
	assert.Contains(t, opts.BuiltinModules, "electron")
	assert.Equal(t, domain.ManifestStrict, opts.ManifestPolicy)
	assert.False(t, opts.RetryFromParent)
}

func TestLoader_Load_NearestWins(t *testing.T) {
	loader, _ := newLoader(t, fstest.MapFS{
		"repo/.modres.yaml":         {Data: []byte("extensions: [.outer]\n")},
		"repo/pkg/app/.modres.yaml": {Data: []byte("extensions: [.inner]\n")},
		"repo/pkg/app/src/index.ts": {},
	})

	opts, err := loader.Load("/repo/pkg/app/src")
	require.NoError(t, err)
	assert.Contains(t, opts.Extensions, ".inner")
	assert.NotContains(t, opts.Extensions, ".outer")
	assert.True(t, opts.RetryFromParent)
}

func TestLoader_Load_EmptyFile(t *testing.T) {
	loader, _ := newLoader(t, fstest.MapFS{
		"project/.modres.yaml": {Data: []byte("")},
	})

	opts, err := loader.Load("/project")
	require.NoError(t, err)
	assert.Equal(t, domain.DefaultResolverOptions(), opts)
}

func TestLoader_Load_Errors(t *testing.T) {
	tests := []struct {
		name    string
		content string
		wantErr string
	}{
		{
			name:    "malformed yaml",
			content: "extensions: [.ts\n",
			wantErr: domain.ErrConfigParseFailed.Error(),
		},
		{
			name:    "unknown key",
			content: "extension: [.ts]\n",
			wantErr: domain.ErrConfigParseFailed.Error(),
		},
		{
			name:    "invalid policy",
			content: "manifestPolicy: lenient\n",
			wantErr: domain.ErrInvalidManifestPolicy.Error(),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			loader, _ := newLoader(t, fstest.MapFS{
				"project/.modres.yaml": {Data: []byte(tt.content)},
			})

			_, err := loader.Load("/project")
			require.Error(t, err)
			assert.ErrorContains(t, err, tt.wantErr)
		})
	}
}

func TestLoader_Load_UnknownVersionWarns(t *testing.T) {
	loader, mockLogger := newLoader(t, fstest.MapFS{
		"project/.modres.yaml": {Data: []byte("version: \"2\"\n")},
	})
	mockLogger.EXPECT().Warn(gomock.Any()).Times(1)

	_, err := loader.Load("/project")
	require.NoError(t, err)
}

func TestLoader_DiscoverRoot(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockLogger := mocks.NewMockLogger(ctrl)

	root := t.TempDir()
	nested := filepath.Join(root, "a", "b")
	require.NoError(t, os.MkdirAll(nested, 0o750))

	loader := config.NewLoader(fs.NewOSFS(fs.NewWalker()), mockLogger)

	got, err := loader.DiscoverRoot(nested)
	require.NoError(t, err)
	assert.Equal(t, nested, got, "without a config file the directory itself is the root")

	require.NoError(t, os.WriteFile(filepath.Join(root, domain.ConfigFileName), []byte("version: \"1\"\n"), 0o600))

	got, err = loader.DiscoverRoot(nested)
	require.NoError(t, err)
	assert.Equal(t, root, got)
}
