package config

// Modfile is the structure of the .modres.yaml configuration file.
type Modfile struct {
	Version            string   `yaml:"version"`
	Extensions         []string `yaml:"extensions"`
	ExcludedExtensions []string `yaml:"excludedExtensions"`
	PackageFields      []string `yaml:"packageFields"`
	BuiltinModules     []string `yaml:"builtinModules"`
	ManifestPolicy     string   `yaml:"manifestPolicy"`
	RetryFromParent    *bool    `yaml:"retryFromParent"`
}

// SupportedVersion is the configuration format version understood by the loader.
const SupportedVersion = "1"
