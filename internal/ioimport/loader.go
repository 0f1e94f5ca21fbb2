// Package ioimport implements the version-aware table-loading
// pipeline that moves one dataset release from its legacy source
// database into PostgreSQL. This is an impure I/O package that reads
// SQLite sources and performs bulk inserts.
package ioimport

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/cheggaaa/pb/v3"
	"github.com/foodsurveys/fsdb/pkg/source"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Loader loads one source table into one destination table.
// New USDA releases periodically add or retire tables, so the set of
// loaders is open: one implementation per table-loading strategy.
type Loader interface {
	// TableName returns the destination table, used for reporting.
	TableName() string

	// Load replaces the destination rows for the current release and
	// returns the number of records written. An empty source table
	// yields zero without error.
	Load(ctx context.Context) (int64, error)
}

// rowMapper converts one source row into destination column values.
// The version code column is prepended by the loader.
type rowMapper func(rows *sql.Rows) ([]any, error)

// tableLoader is the shared table-loading strategy: delete prior rows
// for the release, stream the source table, map each row, bulk-insert
// batches with CopyFrom.
type tableLoader struct {
	pool      *pgxpool.Pool
	reader    source.Reader
	versionID int
	batchSize int

	// table is the destination table; srcTable its source
	// counterpart, also used for the row-count query.
	table    string
	srcTable string

	// srcQuery selects the mapped columns from srcTable.
	srcQuery string

	// columns are the destination columns, version_id first.
	columns []string

	mapRow rowMapper
}

func (l *tableLoader) TableName() string {
	return l.table
}

// Load runs the delete-copy cycle for one table.
// Any source or sink failure aborts the whole run; there is no
// per-loader retry and no partial-row recovery.
func (l *tableLoader) Load(ctx context.Context) (int64, error) {
	if err := l.deletePrior(ctx); err != nil {
		return 0, err
	}

	return l.copyRows(ctx)
}

// deletePrior removes the previous generation of rows for this
// release, so re-imports replace instead of accumulate.
func (l *tableLoader) deletePrior(ctx context.Context) error {
	query := fmt.Sprintf(
		"DELETE FROM %s WHERE version_id = $1", l.table)
	if _, err := l.pool.Exec(ctx, query, l.versionID); err != nil {
		return LoaderError(l.table, err)
	}
	return nil
}

// sourceCount returns the row count of the source table, sizing the
// progress bar before streaming begins.
func (l *tableLoader) sourceCount(ctx context.Context) (int, error) {
	query := fmt.Sprintf("SELECT count(*) FROM %s", l.srcTable)
	rows, err := l.reader.Query(ctx, query)
	if err != nil {
		return 0, err
	}
	defer rows.Close()

	var count int
	if rows.Next() {
		if err := rows.Scan(&count); err != nil {
			return 0, LoaderError(l.table, err)
		}
	}
	if err := rows.Err(); err != nil {
		return 0, LoaderError(l.table, err)
	}
	return count, nil
}

// mapRecord converts the current source row into a destination record
// with the version code prepended.
func (l *tableLoader) mapRecord(rows *sql.Rows) ([]any, error) {
	vals, err := l.mapRow(rows)
	if err != nil {
		return nil, err
	}
	record := make([]any, 0, len(vals)+1)
	record = append(record, l.versionID)
	return append(record, vals...), nil
}

// copyRows streams the source table and bulk-inserts the mapped
// records with CopyFrom, flushing one batch at a time. Memory use is
// bounded by the batch size, not by the source table size.
func (l *tableLoader) copyRows(ctx context.Context) (int64, error) {
	count, err := l.sourceCount(ctx)
	if err != nil {
		return 0, err
	}
	if count == 0 {
		return 0, nil
	}

	rows, err := l.reader.Query(ctx, l.srcQuery)
	if err != nil {
		return 0, err
	}
	defer rows.Close()

	bar := newProgressBar(count, l.table+": ")
	defer bar.Finish()

	batchSize := l.batchSize
	if batchSize == 0 {
		batchSize = 50_000
	}

	var total int64
	batch := make([][]any, 0, min(batchSize, count))

	flush := func() error {
		if len(batch) == 0 {
			return nil
		}
		copyCount, err := l.pool.CopyFrom(
			ctx,
			pgx.Identifier{l.table},
			l.columns,
			pgx.CopyFromRows(batch),
		)
		if err != nil {
			return LoaderError(l.table, err)
		}
		total += copyCount
		bar.Add(len(batch))
		batch = batch[:0]
		return nil
	}

	for rows.Next() {
		record, err := l.mapRecord(rows)
		if err != nil {
			return 0, LoaderError(l.table, err)
		}
		batch = append(batch, record)
		if len(batch) == batchSize {
			if err := flush(); err != nil {
				return 0, err
			}
		}
	}
	if err := rows.Err(); err != nil {
		return 0, LoaderError(l.table, err)
	}
	if err := flush(); err != nil {
		return 0, err
	}

	return total, nil
}

// newProgressBar creates a new progress bar with consistent
// settings.
func newProgressBar(
	total int,
	prefix string,
) *pb.ProgressBar {
	bar := pb.Full.Start(total)
	bar.Set("prefix", prefix)
	bar.Set(pb.CleanOnFinish, true)
	return bar
}
