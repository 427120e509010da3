package domain

// SpecifierKind classifies a specifier before dispatch.
type SpecifierKind string

const (
	// KindBuiltin is a host runtime module returned verbatim.
	KindBuiltin SpecifierKind = "builtin"
	// KindLibrary is a bare name looked up under a dependency root.
	KindLibrary SpecifierKind = "library"
	// KindFile is a relative or absolute file path.
	KindFile SpecifierKind = "file"
)

// ResolutionRequest is a single specifier resolved from a directory.
type ResolutionRequest struct {
	Specifier string
	From      string
}

// ResolvedPath is an absolute, extension-qualified, existence-verified path.
// Builtin specifiers resolve to themselves.
type ResolvedPath = string

// PackageDescriptor holds the string-valued fields of a package manifest.
type PackageDescriptor map[string]string

// Entry returns the first field of fields present with a non-empty value.
func (d PackageDescriptor) Entry(fields []string) (string, bool) {
	for _, field := range fields {
		if v := d[field]; v != "" {
			return v, true
		}
	}
	return "", false
}

// Resolution is the outcome of resolving one request.
type Resolution struct {
	Specifier string        `json:"specifier"`
	From      string        `json:"from"`
	Kind      SpecifierKind `json:"kind"`
	Path      ResolvedPath  `json:"path,omitempty"`
	Err       error         `json:"-"`
	Error     string        `json:"error,omitempty"`
}

// NewResolution builds a Resolution, mirroring err into its serializable message.
func NewResolution(req ResolutionRequest, kind SpecifierKind, path ResolvedPath, err error) Resolution {
	r := Resolution{
		Specifier: req.Specifier,
		From:      req.From,
		Kind:      kind,
		Path:      path,
		Err:       err,
	}
	if err != nil {
		r.Path = ""
		r.Error = err.Error()
	}
	return r
}

// OK reports whether the resolution succeeded.
func (r Resolution) OK() bool {
	return r.Err == nil
}
