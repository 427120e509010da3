package ports

// PathUtil manipulates path strings without touching the file system.
type PathUtil interface {
	// Abs resolves p against base and cleans the result.
	Abs(base, p string) string
	// Ext returns the longest suffix of p found in known, falling back to the final dotted suffix.
	Ext(p string, known []string) string
	// SetExt replaces the extension of p (as reported by Ext) with ext.
	SetExt(p, ext string, known []string) string
	// ClearExt strips the extension of p (as reported by Ext).
	ClearExt(p string, known []string) string
	// HasExt reports whether p ends with one of known.
	HasExt(p string, known []string) bool
	// IsLibrary reports whether specifier is a bare library name rather than a path.
	IsLibrary(specifier string) bool
	// FileName returns the final element of p.
	FileName(p string) string
	// DotPrefix makes sure ext starts with a dot.
	DotPrefix(ext string) string
}
