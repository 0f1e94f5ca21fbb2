package iostats

import (
	"context"
	"testing"

	"github.com/foodsurveys/fsdb/internal/iodb"
	"github.com/foodsurveys/fsdb/pkg/config"
	"github.com/foodsurveys/fsdb/pkg/errcode"
	"github.com/gnames/gn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEntityTables(t *testing.T) {
	tables := entityTables()

	// Every destination table except the version bookkeeping one.
	require.Len(t, tables, 13)
	assert.NotContains(t, tables, "dataset_versions")
	assert.Contains(t, tables, "foods")
	assert.Contains(t, tables, "equivalents")
	assert.Contains(t, tables, "mod_equivalents")
}

func TestCountsNotConnected(t *testing.T) {
	ctx := context.Background()

	_, err := Counts(ctx, config.New(), iodb.NewPgxOperator(), 0)
	require.Error(t, err)

	gnErr, ok := err.(*gn.Error)
	require.True(t, ok, "Error should be of type *gn.Error")
	assert.Equal(t, errcode.DBNotConnectedError, gnErr.Code)
}
