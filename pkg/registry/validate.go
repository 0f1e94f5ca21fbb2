package registry

import (
	"fmt"

	"github.com/foodsurveys/fsdb/pkg/datasets"
)

// Validate checks the registry for structural errors.
// Filesystem checks (path existence) are deferred to the I/O layer.
func (r *Registry) Validate() error {
	type key struct {
		family  string
		version int
	}
	seen := make(map[key]struct{})

	for i, s := range r.Sources {
		if err := s.validate(); err != nil {
			return fmt.Errorf("source %d: %w", i+1, err)
		}
		k := key{family: s.Family, version: s.Version}
		if _, ok := seen[k]; ok {
			return fmt.Errorf(
				"source %d: duplicate entry for %s version %d",
				i+1, s.Family, s.Version,
			)
		}
		seen[k] = struct{}{}
	}
	return nil
}

func (s *SourceConfig) validate() error {
	switch datasets.Family(s.Family) {
	case datasets.FNDDS, datasets.FPED:
	default:
		return fmt.Errorf(
			"unknown family %q: must be 'fndds' or 'fped'", s.Family,
		)
	}

	if _, err := datasets.Resolve(s.Version); err != nil {
		return err
	}

	if s.Path == "" {
		return fmt.Errorf("path is required")
	}
	return nil
}
