package ioschema

import (
	"fmt"

	"github.com/foodsurveys/fsdb/pkg/errcode"
	"github.com/gnames/gn"
)

// NotConnectedError creates an error for schema operations attempted
// without a database connection.
func NotConnectedError() error {
	msg := "Schema operation attempted without database connection"

	return &gn.Error{
		Code: errcode.DBNotConnectedError,
		Msg:  msg,
		Vars: nil,
		Err:  fmt.Errorf("not connected to database"),
	}
}

// GORMConnectionError creates an error for a failed GORM session.
func GORMConnectionError(err error) error {
	msg := "Could not open GORM session over the database pool"

	return &gn.Error{
		Code: errcode.SchemaGORMConnectionError,
		Msg:  msg,
		Vars: nil,
		Err:  fmt.Errorf("gorm open: %w", err),
	}
}

// CreateSchemaError creates an error for failed schema creation.
func CreateSchemaError(err error) error {
	msg := "Could not create database schema"

	return &gn.Error{
		Code: errcode.SchemaCreateError,
		Msg:  msg,
		Vars: nil,
		Err:  fmt.Errorf("auto-migrate: %w", err),
	}
}

// MigrateSchemaError creates an error for failed schema migration.
func MigrateSchemaError(err error) error {
	msg := "Could not migrate database schema"

	return &gn.Error{
		Code: errcode.SchemaMigrateError,
		Msg:  msg,
		Vars: nil,
		Err:  fmt.Errorf("auto-migrate: %w", err),
	}
}
