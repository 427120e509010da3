// Package config loads resolver options from .modres.yaml files.
package config

import (
	"bytes"
	"errors"
	"io"
	"path/filepath"

	"go.trai.ch/modres/internal/core/domain"
	"go.trai.ch/modres/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

var _ ports.ConfigLoader = (*Loader)(nil)

// Loader implements ports.ConfigLoader on top of a FileSystem.
type Loader struct {
	fs     ports.FileSystem
	Logger ports.Logger
}

// NewLoader creates a new Loader.
func NewLoader(fsys ports.FileSystem, logger ports.Logger) *Loader {
	return &Loader{fs: fsys, Logger: logger}
}

// Load returns the default options extended by the nearest configuration file above cwd.
func (l *Loader) Load(cwd string) (domain.ResolverOptions, error) {
	opts := domain.DefaultResolverOptions()

	configPath, ok := l.findConfiguration(cwd)
	if !ok {
		return opts, nil
	}

	var modfile Modfile
	if err := l.readAndUnmarshalYAML(configPath, &modfile); err != nil {
		return opts, zerr.With(err, "path", configPath)
	}

	if modfile.Version != "" && modfile.Version != SupportedVersion {
		l.Logger.Warn("unknown version " + modfile.Version + " in " + configPath + ", reading it as version " + SupportedVersion)
	}

	policy, err := domain.ParseManifestPolicy(modfile.ManifestPolicy)
	if err != nil {
		return opts, zerr.With(err, "path", configPath)
	}

	opts = opts.Extend(domain.ExtraOptions{
		Extensions:         modfile.Extensions,
		ExcludedExtensions: modfile.ExcludedExtensions,
		PackageFields:      modfile.PackageFields,
		BuiltinModules:     modfile.BuiltinModules,
	})
	opts.ManifestPolicy = policy
	if modfile.RetryFromParent != nil {
		opts.RetryFromParent = *modfile.RetryFromParent
	}

	l.Logger.Debug("configuration loaded", "path", configPath)
	return opts, nil
}

// DiscoverRoot returns the directory holding the nearest configuration file, or cwd.
func (l *Loader) DiscoverRoot(cwd string) (string, error) {
	abs, err := filepath.Abs(cwd)
	if err != nil {
		return "", zerr.Wrap(err, domain.ErrWorkingDirUnavailable.Error())
	}
	if configPath, ok := l.findConfiguration(abs); ok {
		return filepath.Dir(configPath), nil
	}
	return abs, nil
}

func (l *Loader) findConfiguration(cwd string) (string, bool) {
	currentDir := filepath.Clean(cwd)
	if abs, err := filepath.Abs(currentDir); err == nil {
		currentDir = abs
	}

	for {
		candidate := filepath.Join(currentDir, domain.ConfigFileName)
		if l.fs.IsFile(candidate) {
			return candidate, true
		}

		parentDir := filepath.Dir(currentDir)
		if parentDir == currentDir {
			return "", false
		}
		currentDir = parentDir
	}
}

// readAndUnmarshalYAML decodes the file at configPath into target, rejecting unknown keys.
func (l *Loader) readAndUnmarshalYAML(configPath string, target *Modfile) error {
	data, err := l.fs.ReadFile(configPath)
	if err != nil {
		return zerr.Wrap(err, domain.ErrConfigReadFailed.Error())
	}

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(target); err != nil && !errors.Is(err, io.EOF) {
		return zerr.Wrap(err, domain.ErrConfigParseFailed.Error())
	}
	return nil
}
