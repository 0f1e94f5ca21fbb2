package lifecycle

import (
	"context"
)

// TableReport is the outcome of one table loader: the destination
// table it wrote and the number of records it inserted.
type TableReport struct {
	Table string
	Rows  int64
}

// Importer defines the interface for loading one dataset release into
// the destination database. An import run resolves the requested
// version, streams every applicable source table, and replaces the
// prior generation of rows for that release.
//
// Loaders execute strictly in sequence: later tables reference
// identifiers inserted by earlier ones, and the source connection is
// not shareable. The first failure aborts the run; rows already
// committed by earlier loaders stay committed.
type Importer interface {
	// Import runs all table loaders for the configured release and
	// returns one report per executed loader, in execution order.
	Import(ctx context.Context) ([]TableReport, error)
}
