package iodb_test

import (
	"context"
	"testing"

	"github.com/foodsurveys/fsdb/internal/iodb"
	"github.com/foodsurveys/fsdb/internal/iotesting"
	"github.com/foodsurveys/fsdb/pkg/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Note: These are integration tests that require PostgreSQL.
//
// Configuration comes from FSDB_DATABASE_* environment variables on
// top of the built-in defaults (postgres/postgres@localhost:5432).
// The database name is always forced to "foodsurveys_test" for
// safety; create it before running:
//
//	createdb foodsurveys_test
//
// Skip these tests where no database is available:
//
//	go test -short ./...

func TestPgxOperator_Connect(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}

	ctx := context.Background()
	op := iodb.NewPgxOperator()

	err := op.Connect(ctx, iotesting.GetTestDatabaseConfig())
	require.NoError(t, err, "Connect should succeed with valid config")
	defer op.Close()

	require.NotNil(t, op.Pool())

	exists, err := op.TableExists(ctx, "nonexistent_table")
	assert.NoError(t, err)
	assert.False(t, exists)
}

func TestPgxOperator_Connect_InvalidHost(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}

	ctx := context.Background()
	op := iodb.NewPgxOperator()

	cfg := config.New().Database
	cfg.Host = "nonexistent.invalid"

	err := op.Connect(ctx, &cfg)
	require.Error(t, err)
	assert.Nil(t, op.Pool())
}
