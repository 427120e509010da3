// Package build holds build-time information.
package build

// Version information, overwritten by linker flags.
var (
	// Version is the application version.
	Version = "dev"
	// Commit is the source revision the binary was built from.
	Commit = "none"
	// Date is the build date.
	Date = "unknown"
)
