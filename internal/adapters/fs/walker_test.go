package fs_test

import (
	"os"
	"path/filepath"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/modres/internal/adapters/fs"
)

func TestWalker_WalkFiles(t *testing.T) {
	t.Parallel()

	tmpDir := t.TempDir()

	require.NoError(t, os.MkdirAll(filepath.Join(tmpDir, "dir1"), 0o750))
	require.NoError(t, os.MkdirAll(filepath.Join(tmpDir, "dir2"), 0o750))
	require.NoError(t, os.WriteFile(filepath.Join(tmpDir, "file1.txt"), []byte("content1"), 0o600))
	require.NoError(t, os.WriteFile(filepath.Join(tmpDir, "dir1", "file2.txt"), []byte("content2"), 0o600))
	require.NoError(t, os.WriteFile(filepath.Join(tmpDir, "dir2", "file3.txt"), []byte("content3"), 0o600))

	walker := fs.NewWalker()
	files := slices.Collect(walker.WalkFiles(os.DirFS(tmpDir), tmpDir, nil))

	// WalkDir visits entries in lexical order.
	assert.Equal(t, []string{
		filepath.Join(tmpDir, "dir1", "file2.txt"),
		filepath.Join(tmpDir, "dir2", "file3.txt"),
		filepath.Join(tmpDir, "file1.txt"),
	}, files)
}

func TestWalker_WalkFiles_Skips(t *testing.T) {
	t.Parallel()

	tmpDir := t.TempDir()

	require.NoError(t, os.MkdirAll(filepath.Join(tmpDir, ".git", "objects"), 0o750))
	require.NoError(t, os.MkdirAll(filepath.Join(tmpDir, "node_modules", "dep"), 0o750))
	require.NoError(t, os.MkdirAll(filepath.Join(tmpDir, "src"), 0o750))

	require.NoError(t, os.WriteFile(filepath.Join(tmpDir, ".git", "config"), []byte("gitconfig"), 0o600))
	require.NoError(t, os.WriteFile(filepath.Join(tmpDir, "node_modules", "dep", "index.js"), []byte("x"), 0o600))
	require.NoError(t, os.WriteFile(filepath.Join(tmpDir, "src", "main.ts"), []byte("x"), 0o600))

	walker := fs.NewWalker()
	files := slices.Collect(walker.WalkFiles(os.DirFS(tmpDir), tmpDir, []string{".git", "node_modules"}))

	assert.Equal(t, []string{filepath.Join(tmpDir, "src", "main.ts")}, files)
}

func TestWalker_WalkFiles_MissingRoot(t *testing.T) {
	t.Parallel()

	missing := filepath.Join(t.TempDir(), "missing")
	walker := fs.NewWalker()

	assert.Empty(t, slices.Collect(walker.WalkFiles(os.DirFS(missing), missing, nil)))
}

func TestWalker_WalkFiles_StopsEarly(t *testing.T) {
	t.Parallel()

	tmpDir := t.TempDir()
	for _, name := range []string{"a.ts", "b.ts", "c.ts"} {
		require.NoError(t, os.WriteFile(filepath.Join(tmpDir, name), nil, 0o600))
	}

	walker := fs.NewWalker()
	var seen []string
	for file := range walker.WalkFiles(os.DirFS(tmpDir), tmpDir, nil) {
		seen = append(seen, file)
		break
	}

	assert.Equal(t, []string{filepath.Join(tmpDir, "a.ts")}, seen)
}
