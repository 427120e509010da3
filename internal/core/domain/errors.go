package domain

import (
	"strconv"

	"go.trai.ch/zerr"
)

var (
	// ErrDependencyRootNotFound is returned when no ancestor directory contains a dependency root.
	ErrDependencyRootNotFound = zerr.New("dependency root not found")

	// ErrPackageManifestNotFound is returned when no package manifest can be discovered for a library.
	ErrPackageManifestNotFound = zerr.New("package manifest not found")

	// ErrPackageEntryNotFound is returned when the manifest entry does not exist under any allowed extension.
	ErrPackageEntryNotFound = zerr.New("package entry not found")

	// ErrFileNotFound is returned when a relative or absolute specifier does not exist on disk.
	ErrFileNotFound = zerr.New("file not found")

	// ErrInvalidAncestorPath is returned when a named target's ancestor does not exist and escalation is exhausted.
	ErrInvalidAncestorPath = zerr.New("invalid ancestor path")

	// ErrManifestUnreadable is returned when a package manifest cannot be read or parsed.
	ErrManifestUnreadable = zerr.New("failed to read package manifest")

	// ErrEmptySpecifier is returned when an empty specifier is passed to the resolver.
	ErrEmptySpecifier = zerr.New("empty specifier")

	// ErrWorkingDirUnavailable is returned when the process working directory cannot be determined.
	ErrWorkingDirUnavailable = zerr.New("failed to determine working directory")

	// ErrConfigReadFailed is returned when the config file cannot be read.
	ErrConfigReadFailed = zerr.New("failed to read config file")

	// ErrConfigParseFailed is returned when the config file cannot be parsed.
	ErrConfigParseFailed = zerr.New("failed to parse config file")

	// ErrInvalidManifestPolicy is returned when the configured manifest policy is unknown.
	ErrInvalidManifestPolicy = zerr.New("invalid manifest policy, expected 'escalate' or 'strict'")

	// ErrNoSpecifiers is returned when a command is invoked without any specifier.
	ErrNoSpecifiers = zerr.New("no specifiers given")

	// ErrResolutionFailed is returned when at least one specifier of a batch failed to resolve.
	ErrResolutionFailed = zerr.New("resolution failed")

	// ErrWatchFailed is returned when the file system watcher cannot be started.
	ErrWatchFailed = zerr.New("failed to start watcher")
)

// NewResolutionError wraps kind under a message naming the originally requested specifier.
// The result still matches kind with errors.Is.
func NewResolutionError(kind error, specifier, from string) error {
	err := zerr.Wrap(kind, "cannot resolve "+strconv.Quote(specifier))
	err = zerr.With(err, "specifier", specifier)
	return zerr.With(err, "from", from)
}
