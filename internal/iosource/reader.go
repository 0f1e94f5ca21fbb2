// Package iosource implements source.Reader over SQLite renditions of
// the legacy FNDDS and FPED source databases. It uses the pure-Go
// modernc.org/sqlite driver, so imports need no cgo.
package iosource

import (
	"context"
	"database/sql"
	"os"

	"github.com/foodsurveys/fsdb/pkg/source"
	_ "modernc.org/sqlite" // SQLite driver
)

// sqliteReader implements source.Reader for one SQLite file.
// The connection is opened once per import run and serves all
// sequential table reads.
type sqliteReader struct {
	db   *sql.DB
	path string
}

// New creates a source reader (without connecting).
func New() source.Reader {
	return &sqliteReader{}
}

// Open verifies the file exists, opens it and pings the connection.
// Failures are fatal to the run, there is no retry.
func (r *sqliteReader) Open(ctx context.Context, dsn string) error {
	if _, err := os.Stat(dsn); err != nil {
		return FileNotFoundError(dsn, err)
	}

	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return OpenError(dsn, err)
	}

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return OpenError(dsn, err)
	}

	r.db = db
	r.path = dsn
	return nil
}

// Close releases the source connection.
func (r *sqliteReader) Close() error {
	if r.db != nil {
		return r.db.Close()
	}
	return nil
}

// Query executes one query against the source database.
func (r *sqliteReader) Query(
	ctx context.Context,
	query string,
	args ...any,
) (*sql.Rows, error) {
	if r.db == nil {
		return nil, NotOpenError()
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, QueryError(r.path, query, err)
	}
	return rows, nil
}

// TableExists checks if a table is present in the source database.
func (r *sqliteReader) TableExists(
	ctx context.Context,
	table string,
) (bool, error) {
	if r.db == nil {
		return false, NotOpenError()
	}

	query := `
		SELECT EXISTS (
			SELECT 1 FROM sqlite_master
			WHERE type = 'table' AND name = ?
		)
	`

	var exists bool
	err := r.db.QueryRowContext(ctx, query, table).Scan(&exists)
	if err != nil {
		return false, QueryError(r.path, query, err)
	}
	return exists, nil
}
