// Package errcode enumerates error codes used by gn.Error values
// across fsdb packages.
package errcode

import (
	"github.com/gnames/gn"
)

const (
	UnknownError gn.ErrorCode = iota

	// File System errors
	CreateDirError
	CopyFileError
	ReadFileError

	// Logging errors
	CreateLogFileError

	// Database errors
	DBConnectionError
	DBTableCheckError
	DBEmptyDatabaseError
	DBNotConnectedError
	DBTableExistsCheckError
	DBQueryTablesError
	DBScanTableError
	DBDropTableError

	// Schema errors
	SchemaGORMConnectionError
	SchemaCreateError
	SchemaMigrateError

	// Dataset catalog errors
	UnknownVersionError

	// Source database errors
	SourceFileNotFoundError
	SourceOpenError
	SourceQueryError

	// Import errors
	ImportVersionRecordError
	ImportLoaderError

	// Registry errors
	RegistryReadError
	RegistryEntryMissingError

	// Stats errors
	StatsQueryError
)
