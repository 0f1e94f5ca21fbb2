package iostats

import (
	"fmt"

	"github.com/foodsurveys/fsdb/pkg/errcode"
	"github.com/gnames/gn"
)

// NotConnectedError creates an error for stats gathering attempted
// without a database connection.
func NotConnectedError() error {
	msg := "Stats attempted without database connection"

	return &gn.Error{
		Code: errcode.DBNotConnectedError,
		Msg:  msg,
		Vars: nil,
		Err:  fmt.Errorf("not connected to database"),
	}
}

// QueryError creates an error for a failed count query.
func QueryError(table string, err error) error {
	msg := `Failed to count rows of <em>%s</em>

Run <em>fsdb create</em> first if the schema does not exist yet.`
	vars := []any{table}

	return &gn.Error{
		Code: errcode.StatsQueryError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("failed to count %s: %w", table, err),
	}
}
