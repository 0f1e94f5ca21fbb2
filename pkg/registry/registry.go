// Package registry provides configuration and validation for the
// sources.yaml registry.
//
// The registry maps a dataset family and version code to the location
// of its legacy source database, so the source argument can be omitted
// from import commands. Users maintain the file by hand; fsdb generates
// a commented template on first run.
package registry

import (
	"github.com/foodsurveys/fsdb/pkg/datasets"
)

// Registry represents the complete sources.yaml configuration file.
type Registry struct {
	// Sources lists the known source databases.
	Sources []SourceConfig `yaml:"sources"`
}

// SourceConfig locates the source database for one dataset release.
type SourceConfig struct {
	// Family is "fndds" or "fped".
	Family string `yaml:"family"`

	// Version is the bit-flag version code of the release.
	Version int `yaml:"version"`

	// Path is the filesystem path of the SQLite rendition of the
	// legacy source database.
	Path string `yaml:"path"`
}

// Lookup finds the source path registered for a family and version
// code. The second value is false when no entry exists.
func (r *Registry) Lookup(family datasets.Family, version int) (string, bool) {
	for _, s := range r.Sources {
		if s.Family == string(family) && s.Version == version {
			return s.Path, true
		}
	}
	return "", false
}
