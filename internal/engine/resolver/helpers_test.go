package resolver_test

import (
	iofs "io/fs"
	"iter"
	"sync/atomic"
	"testing"
	"testing/fstest"

	"go.trai.ch/modres/internal/adapters/fs"
	"go.trai.ch/modres/internal/adapters/pathutil"
	"go.trai.ch/modres/internal/core/domain"
	"go.trai.ch/modres/internal/core/ports"
	"go.trai.ch/modres/internal/core/ports/mocks"
	"go.trai.ch/modres/internal/engine/resolver"
	"go.uber.org/mock/gomock"
)

// countingFS records every probe made through it.
type countingFS struct {
	ports.FileSystem
	calls atomic.Int64
}

func (c *countingFS) Stat(path string) (iofs.FileInfo, error) {
	c.calls.Add(1)
	return c.FileSystem.Stat(path)
}

func (c *countingFS) Exists(path string) bool {
	c.calls.Add(1)
	return c.FileSystem.Exists(path)
}

func (c *countingFS) IsDir(path string) bool {
	c.calls.Add(1)
	return c.FileSystem.IsDir(path)
}

func (c *countingFS) IsFile(path string) bool {
	c.calls.Add(1)
	return c.FileSystem.IsFile(path)
}

func (c *countingFS) ReadFile(path string) ([]byte, error) {
	c.calls.Add(1)
	return c.FileSystem.ReadFile(path)
}

func (c *countingFS) WalkFiles(root string, skip []string) iter.Seq[string] {
	c.calls.Add(1)
	return c.FileSystem.WalkFiles(root, skip)
}

func file(content string) *fstest.MapFile {
	return &fstest.MapFile{Data: []byte(content)}
}

func quietLogger(t *testing.T) ports.Logger {
	t.Helper()
	ctrl := gomock.NewController(t)
	log := mocks.NewMockLogger(ctrl)
	log.EXPECT().Debug(gomock.Any(), gomock.Any()).AnyTimes()
	return log
}

// newResolver mounts tree at the file system root and returns a resolver over it.
func newResolver(t *testing.T, tree fstest.MapFS, opts domain.ResolverOptions) (*resolver.Resolver, *countingFS) {
	t.Helper()
	counting := &countingFS{FileSystem: fs.NewMapFS("/", tree)}
	return resolver.New(counting, pathutil.New(), quietLogger(t), opts), counting
}
