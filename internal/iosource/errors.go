package iosource

import (
	"fmt"

	"github.com/foodsurveys/fsdb/pkg/errcode"
	"github.com/gnames/gn"
)

// FileNotFoundError creates an error for a missing source database file.
func FileNotFoundError(path string, err error) error {
	msg := `Source database not found

<em>File path:</em> %s

<em>How to fix:</em>
  1. Check the path in sources.yaml or the command argument
  2. Download the SQLite rendition of the release if missing`

	vars := []any{path}

	return &gn.Error{
		Code: errcode.SourceFileNotFoundError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("source file not found: %w", err),
	}
}

// OpenError creates an error for a source database that cannot
// be opened.
func OpenError(path string, err error) error {
	msg := `Cannot open source database

<em>File path:</em> %s

<em>Possible causes:</em>
  - File is corrupted
  - Not an SQLite database
  - Permission denied`

	vars := []any{path}

	return &gn.Error{
		Code: errcode.SourceOpenError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("failed to open source database: %w", err),
	}
}

// NotOpenError creates an error for queries attempted before Open.
func NotOpenError() error {
	msg := "Source query attempted without an open connection"

	return &gn.Error{
		Code: errcode.SourceOpenError,
		Msg:  msg,
		Vars: nil,
		Err:  fmt.Errorf("source database is not open"),
	}
}

// QueryError creates an error for a failed source query.
func QueryError(path, query string, err error) error {
	msg := `Source query failed on <em>%s</em>

<em>Possible causes:</em>
  - Source table is missing for this release
  - File is corrupted`

	vars := []any{path}

	return &gn.Error{
		Code: errcode.SourceQueryError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("query %q: %w", query, err),
	}
}
