package ioregistry

import (
	"os"
	"testing"

	"github.com/foodsurveys/fsdb/pkg/config"
	"github.com/foodsurveys/fsdb/pkg/datasets"
	"github.com/foodsurveys/fsdb/pkg/errcode"
	"github.com/gnames/gn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newConfig creates a config rooted in a temp home with the given
// sources.yaml content.
func newConfig(t *testing.T, sourcesYAML string) *config.Config {
	t.Helper()
	tempHome := t.TempDir()

	cfg := config.New()
	cfg.Update([]config.Option{config.OptHomeDir(tempHome)})

	dir := config.ConfigDir(tempHome)
	require.NoError(t, os.MkdirAll(dir, 0755))

	if sourcesYAML != "" {
		path := config.SourcesFilePath(tempHome)
		require.NoError(t,
			os.WriteFile(path, []byte(sourcesYAML), 0644))
	}
	return cfg
}

func TestLoad(t *testing.T) {
	cfg := newConfig(t, `
sources:
  - family: fndds
    version: 8
    path: /data/fndds0708.sqlite
  - family: fped
    version: 8
    path: /data/fped0708.sqlite
`)

	reg, err := Load(cfg)
	require.NoError(t, err)
	require.Len(t, reg.Sources, 2)
	assert.Equal(t, "fndds", reg.Sources[0].Family)
}

func TestLoadMissingFile(t *testing.T) {
	cfg := newConfig(t, "")

	_, err := Load(cfg)
	require.Error(t, err)

	gnErr, ok := err.(*gn.Error)
	require.True(t, ok, "Error should be of type *gn.Error")
	assert.Equal(t, errcode.RegistryReadError, gnErr.Code)
}

func TestLoadBadYAML(t *testing.T) {
	cfg := newConfig(t, "sources: [not closed")

	_, err := Load(cfg)
	require.Error(t, err)

	gnErr, ok := err.(*gn.Error)
	require.True(t, ok)
	assert.Equal(t, errcode.RegistryReadError, gnErr.Code)
}

func TestLoadInvalidEntry(t *testing.T) {
	// Version 3 is not a catalog code.
	cfg := newConfig(t, `
sources:
  - family: fndds
    version: 3
    path: /data/a.sqlite
`)

	_, err := Load(cfg)
	require.Error(t, err)

	gnErr, ok := err.(*gn.Error)
	require.True(t, ok)
	assert.Equal(t, errcode.RegistryReadError, gnErr.Code)
}

func TestLookupSource(t *testing.T) {
	cfg := newConfig(t, `
sources:
  - family: fped
    version: 16
    path: /data/fped0910.sqlite
`)

	path, err := LookupSource(cfg, datasets.FPED, 16)
	require.NoError(t, err)
	assert.Equal(t, "/data/fped0910.sqlite", path)

	_, err = LookupSource(cfg, datasets.FNDDS, 16)
	require.Error(t, err)

	gnErr, ok := err.(*gn.Error)
	require.True(t, ok)
	assert.Equal(t, errcode.RegistryEntryMissingError, gnErr.Code)
}
