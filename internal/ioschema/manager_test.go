package ioschema

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

func TestNotConnected(t *testing.T) {
	ctx := context.Background()
	cfg := config.New()
	m := NewManager(iodb.NewPgxOperator())

	for _, fn := range []func(context.Context, *config.Config) error{
		m.Create, m.Migrate,
	} {
		err := fn(ctx, cfg)
		require.Error(t, err)

		gnErr, ok := err.(*gn.Error)
		require.True(t, ok, "Error should be of type *gn.Error")
		assert.Equal(t, errcode.DBNotConnectedError, gnErr.Code)
	}
}
