package ioimport

import (
	"fmt"

	"github.com/foodsurveys/fsdb/pkg/datasets"
	"github.com/foodsurveys/fsdb/pkg/errcode"
	"github.com/gnames/gn"
)

// NotConnectedError creates an error for when an import is attempted
// without a database connection.
func NotConnectedError() error {
	msg := "Import attempted without database connection"

	return &gn.Error{
		Code: errcode.DBNotConnectedError,
		Msg:  msg,
		Vars: nil,
		Err:  fmt.Errorf("not connected to database"),
	}
}

// UnknownFamilyError creates an error for a dataset family the
// pipeline does not know.
func UnknownFamilyError(family datasets.Family) error {
	msg := "Unknown dataset family <em>%s</em>"
	vars := []any{string(family)}

	return &gn.Error{
		Code: errcode.UnknownError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("unknown dataset family %q", family),
	}
}

// VersionRecordError creates an error for a failed dataset_versions
// record refresh.
func VersionRecordError(versionID int, err error) error {
	msg := `Failed to refresh the version record for code <em>%d</em>`
	vars := []any{versionID}

	return &gn.Error{
		Code: errcode.ImportVersionRecordError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("failed to refresh version record: %w", err),
	}
}

// LoaderError creates an error for a failed table loader.
// The failure aborts the whole run; later loaders never execute.
func LoaderError(table string, err error) error {
	msg := `Failed to load table <em>%s</em>`
	vars := []any{table}

	return &gn.Error{
		Code: errcode.ImportLoaderError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("failed to load %s: %w", table, err),
	}
}

// CancelledError creates an error for a cancelled import run.
func CancelledError(err error) error {
	msg := "Import was cancelled"

	return &gn.Error{
		Code: errcode.UnknownError,
		Msg:  msg,
		Vars: nil,
		Err:  fmt.Errorf("import cancelled: %w", err),
	}
}
