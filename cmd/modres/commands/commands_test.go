package commands_test

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/modres/cmd/modres/commands"
	"go.trai.ch/modres/internal/adapters/linear"
	"go.trai.ch/modres/internal/app"
	"go.trai.ch/modres/internal/build"
)

type mockApp struct {
	resolveFunc func(ctx context.Context, specifiers []string, opts app.ResolveOptions) error
	watchFunc   func(ctx context.Context, specifiers []string, opts app.ResolveOptions) error
}

func (m *mockApp) Resolve(ctx context.Context, specifiers []string, opts app.ResolveOptions) error {
	if m.resolveFunc != nil {
		return m.resolveFunc(ctx, specifiers, opts)
	}
	return nil
}

func (m *mockApp) Watch(ctx context.Context, specifiers []string, opts app.ResolveOptions) error {
	if m.watchFunc != nil {
		return m.watchFunc(ctx, specifiers, opts)
	}
	return nil
}

func TestCommands_Resolve(t *testing.T) {
	t.Run("wires flags correctly", func(t *testing.T) {
		var captured app.ResolveOptions
		var specifiers []string

		mock := &mockApp{
			resolveFunc: func(_ context.Context, specs []string, opts app.ResolveOptions) error {
				captured = opts
				specifiers = specs
				return nil
			},
		}

		cli := commands.New(mock)
		cli.SetArgs([]string{
			"resolve", "left-pad", "./src/app",
			"--from", "/project",
			"--ext", "vue,svelte",
			"--exclude-ext", ".spec.ts",
			"--field", "browser",
			"--builtin", "electron",
			"--strict-manifest",
			"--no-parent-retry",
			"--json",
			"-v",
		})

		require.NoError(t, cli.Execute(context.Background()))
		assert.Equal(t, []string{"left-pad", "./src/app"}, specifiers)
		assert.Equal(t, "/project", captured.From)
		assert.Equal(t, []string{"vue", "svelte"}, captured.Extra.Extensions)
		assert.Equal(t, []string{".spec.ts"}, captured.Extra.ExcludedExtensions)
		assert.Equal(t, []string{"browser"}, captured.Extra.PackageFields)
		assert.Equal(t, []string{"electron"}, captured.Extra.BuiltinModules)
		assert.True(t, captured.StrictManifest)
		assert.True(t, captured.NoParentRetry)
		assert.Equal(t, linear.ModeJSON, captured.Mode)
		assert.True(t, captured.Verbose)
		assert.False(t, captured.Trace)
	})

	t.Run("defaults", func(t *testing.T) {
		var captured app.ResolveOptions
		mock := &mockApp{
			resolveFunc: func(_ context.Context, _ []string, opts app.ResolveOptions) error {
				captured = opts
				return nil
			},
		}

		cli := commands.New(mock)
		cli.SetArgs([]string{"resolve", "fs"})

		require.NoError(t, cli.Execute(context.Background()))
		assert.Empty(t, captured.From)
		assert.Equal(t, linear.ModePretty, captured.Mode)
		assert.False(t, captured.StrictManifest)
		assert.False(t, captured.NoParentRetry)
	})

	t.Run("plain and json are exclusive", func(t *testing.T) {
		cli := commands.New(&mockApp{})
		cli.SetOutput(new(bytes.Buffer), new(bytes.Buffer))
		cli.SetArgs([]string{"resolve", "fs", "--plain", "--json"})

		require.Error(t, cli.Execute(context.Background()))
	})

	t.Run("returns error on resolve failure", func(t *testing.T) {
		mock := &mockApp{
			resolveFunc: func(_ context.Context, _ []string, _ app.ResolveOptions) error {
				return errors.New("simulated error")
			},
		}

		cli := commands.New(mock)
		cli.SetArgs([]string{"resolve", "left-pad"})
		cli.SetOutput(new(bytes.Buffer), new(bytes.Buffer))

		err := cli.Execute(context.Background())
		require.Error(t, err)
		assert.Contains(t, err.Error(), "simulated error")
	})

	t.Run("shows usage when no specifiers provided", func(t *testing.T) {
		mock := &mockApp{
			resolveFunc: func(_ context.Context, _ []string, _ app.ResolveOptions) error {
				panic("should not be called")
			},
		}

		cli := commands.New(mock)
		buf := new(bytes.Buffer)
		cli.SetOutput(buf, buf)
		cli.SetArgs([]string{"resolve"})

		require.NoError(t, cli.Execute(context.Background()))
		assert.Contains(t, buf.String(), "Usage:")
	})
}

func TestCommands_Watch(t *testing.T) {
	var captured app.ResolveOptions
	var specifiers []string

	mock := &mockApp{
		watchFunc: func(_ context.Context, specs []string, opts app.ResolveOptions) error {
			captured = opts
			specifiers = specs
			return nil
		},
	}

	cli := commands.New(mock)
	cli.SetArgs([]string{"watch", "react", "--plain", "--trace", "-f", "/project"})

	require.NoError(t, cli.Execute(context.Background()))
	assert.Equal(t, []string{"react"}, specifiers)
	assert.Equal(t, "/project", captured.From)
	assert.Equal(t, linear.ModePlain, captured.Mode)
	assert.True(t, captured.Trace)
}

func TestCommands_Version(t *testing.T) {
	cli := commands.New(&mockApp{})

	buf := new(bytes.Buffer)
	cli.SetOutput(buf, buf)
	cli.SetArgs([]string{"version"})

	require.NoError(t, cli.Execute(context.Background()))
	assert.Contains(t, buf.String(), "modres version "+build.Version)
}

func TestCommands_VersionFlag(t *testing.T) {
	cli := commands.New(&mockApp{})

	buf := new(bytes.Buffer)
	cli.SetOutput(buf, buf)
	cli.SetArgs([]string{"--version"})

	require.NoError(t, cli.Execute(context.Background()))
	assert.Contains(t, buf.String(), "commit: "+build.Commit)
}
