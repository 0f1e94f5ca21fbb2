// Package ioregistry loads the sources.yaml registry from the user's
// config directory.
package ioregistry

import (
	"os"

	"github.com/foodsurveys/fsdb/pkg/config"
	"github.com/foodsurveys/fsdb/pkg/datasets"
	"github.com/foodsurveys/fsdb/pkg/registry"
	"gopkg.in/yaml.v3"
)

// Load reads and validates the sources.yaml registry.
func Load(cfg *config.Config) (*registry.Registry, error) {
	path := config.SourcesFilePath(cfg.HomeDir)

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, ReadError(path, err)
	}

	var res registry.Registry
	if err := yaml.Unmarshal(data, &res); err != nil {
		return nil, ReadError(path, err)
	}

	if err := res.Validate(); err != nil {
		return nil, ReadError(path, err)
	}

	return &res, nil
}

// LookupSource resolves the source path for a family and version code,
// consulting the registry. A missing entry is an error that names the
// family and code.
func LookupSource(
	cfg *config.Config,
	family datasets.Family,
	version int,
) (string, error) {
	reg, err := Load(cfg)
	if err != nil {
		return "", err
	}

	path, ok := reg.Lookup(family, version)
	if !ok {
		return "", EntryMissingError(cfg.HomeDir, family, version)
	}
	return path, nil
}
