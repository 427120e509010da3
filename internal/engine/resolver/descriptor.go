package resolver

import (
	"encoding/json"
	"path/filepath"

	"go.trai.ch/modres/internal/core/domain"
	"go.trai.ch/modres/internal/core/ports"
	"go.trai.ch/zerr"
)

// DescriptorReader reads package manifests and selects their entry file.
type DescriptorReader struct {
	fs     ports.FileSystem
	fields []string
}

// NewDescriptorReader creates a reader scanning fields in priority order.
func NewDescriptorReader(fsys ports.FileSystem, fields []string) *DescriptorReader {
	return &DescriptorReader{fs: fsys, fields: fields}
}

// Read parses the manifest at manifestPath, keeping its string-valued top-level fields.
func (r *DescriptorReader) Read(manifestPath string) (domain.PackageDescriptor, error) {
	data, err := r.fs.ReadFile(manifestPath)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrManifestUnreadable.Error()), "path", manifestPath)
	}

	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrManifestUnreadable.Error()), "path", manifestPath)
	}

	desc := make(domain.PackageDescriptor, len(raw))
	for key, value := range raw {
		var s string
		if json.Unmarshal(value, &s) == nil {
			desc[key] = s
		}
	}
	return desc, nil
}

// EntryPathFor returns the entry candidate of the manifest at manifestPath, joined against
// the manifest's directory. Without any entry field the candidate is the index name.
func (r *DescriptorReader) EntryPathFor(manifestPath string) (string, error) {
	desc, err := r.Read(manifestPath)
	if err != nil {
		return "", err
	}

	entry, ok := desc.Entry(r.fields)
	if !ok {
		entry = domain.IndexName
	}
	if filepath.IsAbs(entry) {
		return filepath.Clean(entry), nil
	}
	return filepath.Join(filepath.Dir(manifestPath), entry), nil
}
