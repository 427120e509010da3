package domain

const (
	// DependencyRootName is the conventional directory holding installed libraries.
	DependencyRootName = "node_modules"

	// ManifestName is the name of a library's package manifest.
	ManifestName = "package.json"

	// TypesDirName is the type-sidecar directory living inside a dependency root.
	TypesDirName = "@types"

	// IndexName is the default entry name of a library or directory.
	IndexName = "index"

	// BuiltinPrefix marks a specifier that explicitly targets a host builtin.
	BuiltinPrefix = "node:"

	// ConfigFileName is the name of the optional project configuration file.
	ConfigFileName = ".modres.yaml"
)

// SkippedDirs are never descended into when enumerating or watching a tree.
var SkippedDirs = []string{".git", ".jj"}
