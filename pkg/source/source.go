// Package source defines the contract for reading legacy tabular
// source databases.
package source

import (
	"context"
	"database/sql"
)

// Reader is an open-once, query-many view of a source database.
// One open connection serves all sequential table reads of an import
// run; the connection is not safe for concurrent use.
type Reader interface {
	// Open connects to the source database at the given path or DSN.
	// Open failures are fatal to the run, there is no retry.
	Open(ctx context.Context, dsn string) error

	// Close releases the source connection.
	Close() error

	// Query executes one query against the source and returns its rows.
	// A failed query (missing table, corrupt file) aborts the run.
	Query(ctx context.Context, query string, args ...any) (*sql.Rows, error)

	// TableExists checks if a table is present in the source database.
	TableExists(ctx context.Context, table string) (bool, error)
}
