package ioregistry

import (
	"fmt"

	"github.com/foodsurveys/fsdb/pkg/config"
	"github.com/foodsurveys/fsdb/pkg/datasets"
	"github.com/foodsurveys/fsdb/pkg/errcode"
	"github.com/gnames/gn"
)

// ReadError creates an error for an unreadable or invalid
// sources.yaml file.
func ReadError(path string, err error) error {
	msg := `Cannot use source registry <em>%s</em>

<em>How to fix:</em>
  1. Check the file for YAML syntax errors
  2. Each entry needs family, version and path fields`

	vars := []any{path}

	return &gn.Error{
		Code: errcode.RegistryReadError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("failed to load registry: %w", err),
	}
}

// EntryMissingError creates an error for a family/version pair with
// no registry entry.
func EntryMissingError(
	homeDir string,
	family datasets.Family,
	version int,
) error {
	msg := `No source registered for <em>%s</em> version <em>%d</em>

<em>How to fix:</em>
  1. Pass the source path as the second argument, or
  2. Add an entry to <em>%s</em>:

     sources:
       - family: %s
         version: %d
         path: /path/to/source.sqlite`

	vars := []any{
		string(family), version,
		config.SourcesFilePath(homeDir),
		string(family), version,
	}

	return &gn.Error{
		Code: errcode.RegistryEntryMissingError,
		Msg:  msg,
		Vars: vars,
		Err: fmt.Errorf("no registry entry for %s version %d",
			family, version),
	}
}
