package ioimport

import (
	"errors"
	"testing"

	"github.com/foodsurveys/fsdb/pkg/errcode"
	"github.com/gnames/gn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestLoaderError_Structure verifies error structure.
func TestLoaderError_Structure(t *testing.T) {
	originalErr := errors.New("copy failed")

	err := LoaderError("foods", originalErr)

	require.NotNil(t, err)

	gnErr, ok := err.(*gn.Error)
	require.True(t, ok, "Error should be of type *gn.Error")

	assert.Equal(t, errcode.ImportLoaderError, gnErr.Code)
	assert.NotEmpty(t, gnErr.Msg)
	assert.Equal(t, []any{"foods"}, gnErr.Vars)
	assert.ErrorIs(t, gnErr.Err, originalErr)
}

// TestVersionRecordError_Structure verifies error structure.
func TestVersionRecordError_Structure(t *testing.T) {
	originalErr := errors.New("insert failed")

	err := VersionRecordError(8, originalErr)

	require.NotNil(t, err)

	gnErr, ok := err.(*gn.Error)
	require.True(t, ok, "Error should be of type *gn.Error")

	assert.Equal(t, errcode.ImportVersionRecordError, gnErr.Code)
	assert.Equal(t, []any{8}, gnErr.Vars)
	assert.ErrorIs(t, gnErr.Err, originalErr)
}

// TestCancelledError_Structure verifies error structure.
func TestCancelledError_Structure(t *testing.T) {
	originalErr := errors.New("context canceled")

	err := CancelledError(originalErr)

	require.NotNil(t, err)

	gnErr, ok := err.(*gn.Error)
	require.True(t, ok, "Error should be of type *gn.Error")
	assert.ErrorIs(t, gnErr.Err, originalErr)
}
