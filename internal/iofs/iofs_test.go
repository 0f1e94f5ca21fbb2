package iofs

import (
	"os"
	"testing"

	"github.com/foodsurveys/fsdb/pkg/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEnsureDirs(t *testing.T) {
	tempHome := t.TempDir()

	require.NoError(t, EnsureDirs(tempHome))

	for _, dir := range []string{
		config.ConfigDir(tempHome),
		config.CacheDir(tempHome),
		config.LogDir(tempHome),
	} {
		info, err := os.Stat(dir)
		require.NoError(t, err, dir)
		assert.True(t, info.IsDir(), dir)
	}

	// Idempotent.
	assert.NoError(t, EnsureDirs(tempHome))
}

func TestEnsureConfigFile(t *testing.T) {
	tempHome := t.TempDir()
	require.NoError(t, EnsureDirs(tempHome))

	require.NoError(t, EnsureConfigFile(tempHome))

	path := config.ConfigFilePath(tempHome)
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, ConfigYAML, string(data))

	// An existing file is never overwritten.
	edited := "database:\n  host: db.example.org\n"
	require.NoError(t, os.WriteFile(path, []byte(edited), 0644))
	require.NoError(t, EnsureConfigFile(tempHome))

	data, err = os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, edited, string(data))
}

func TestEnsureSourcesFile(t *testing.T) {
	tempHome := t.TempDir()
	require.NoError(t, EnsureDirs(tempHome))

	require.NoError(t, EnsureSourcesFile(tempHome))

	data, err := os.ReadFile(config.SourcesFilePath(tempHome))
	require.NoError(t, err)
	assert.Equal(t, SourcesYAML, string(data))
}
