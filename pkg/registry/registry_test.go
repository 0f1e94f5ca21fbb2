package registry_test

import (
	"testing"

	"github.com/foodsurveys/fsdb/pkg/datasets"
	"github.com/foodsurveys/fsdb/pkg/registry"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestLookup(t *testing.T) {
	reg := &registry.Registry{
		Sources: []registry.SourceConfig{
			{Family: "fndds", Version: 8, Path: "/data/fndds0708.sqlite"},
			{Family: "fped", Version: 8, Path: "/data/fped0708.sqlite"},
		},
	}

	path, ok := reg.Lookup(datasets.FNDDS, 8)
	require.True(t, ok)
	assert.Equal(t, "/data/fndds0708.sqlite", path)

	// Same code, other family.
	path, ok = reg.Lookup(datasets.FPED, 8)
	require.True(t, ok)
	assert.Equal(t, "/data/fped0708.sqlite", path)

	path, ok = reg.Lookup(datasets.FNDDS, 16)
	assert.False(t, ok)
	assert.Empty(t, path)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		msg     string
		sources []registry.SourceConfig
		errText string
	}{
		{
			msg:     "empty registry",
			sources: nil,
		},
		{
			msg: "valid entries",
			sources: []registry.SourceConfig{
				{Family: "fndds", Version: 1, Path: "/data/a.sqlite"},
				{Family: "fndds", Version: 2, Path: "/data/b.sqlite"},
				{Family: "fped", Version: 4, Path: "/data/c.sqlite"},
			},
		},
		{
			msg: "unknown family",
			sources: []registry.SourceConfig{
				{Family: "usda", Version: 1, Path: "/data/a.sqlite"},
			},
			errText: "unknown family",
		},
		{
			msg: "unknown version code",
			sources: []registry.SourceConfig{
				{Family: "fndds", Version: 3, Path: "/data/a.sqlite"},
			},
			errText: "source 1",
		},
		{
			msg: "missing path",
			sources: []registry.SourceConfig{
				{Family: "fndds", Version: 1},
			},
			errText: "path is required",
		},
		{
			msg: "duplicate entry",
			sources: []registry.SourceConfig{
				{Family: "fndds", Version: 1, Path: "/data/a.sqlite"},
				{Family: "fndds", Version: 1, Path: "/data/b.sqlite"},
			},
			errText: "duplicate entry",
		},
	}

	for _, v := range tests {
		reg := &registry.Registry{Sources: v.sources}
		err := reg.Validate()
		if v.errText == "" {
			assert.NoError(t, err, v.msg)
			continue
		}
		require.Error(t, err, v.msg)
		assert.Contains(t, err.Error(), v.errText, v.msg)
	}
}

func TestYAML(t *testing.T) {
	data := `
sources:
  - family: fndds
    version: 8
    path: /data/fndds0708.sqlite
  - family: fped
    version: 8
    path: /data/fped0708.sqlite
`
	var reg registry.Registry
	err := yaml.Unmarshal([]byte(data), &reg)
	require.NoError(t, err)
	require.Len(t, reg.Sources, 2)

	assert.Equal(t, "fndds", reg.Sources[0].Family)
	assert.Equal(t, 8, reg.Sources[0].Version)
	assert.Equal(t, "/data/fndds0708.sqlite", reg.Sources[0].Path)
	assert.NoError(t, reg.Validate())
}
