/*
Copyright © 2025 The fsdb Authors

Permission is hereby granted, free of charge, to any person obtaining a copy
of this software and associated documentation files (the "Software"), to deal
in the Software without restriction, including without limitation the rights
to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
copies of the Software, and to permit persons to whom the Software is
furnished to do so, subject to the following conditions:

The above copyright notice and this permission notice shall be included in
all copies or substantial portions of the Software.

THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN
THE SOFTWARE.
*/
package cmd

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strconv"

	"github.com/foodsurveys/fsdb/internal/iodb"
	"github.com/foodsurveys/fsdb/internal/ioimport"
	"github.com/foodsurveys/fsdb/internal/ioregistry"
	"github.com/foodsurveys/fsdb/internal/iosource"
	"github.com/foodsurveys/fsdb/pkg/datasets"
	"github.com/foodsurveys/fsdb/pkg/errcode"
	"github.com/gnames/gn"
)

// parseVersionArg converts the version argument into a version code.
// Malformed arguments are fatal: no version resolution is attempted
// and no connections are opened.
func parseVersionArg(arg string) (int, error) {
	id, err := strconv.Atoi(arg)
	if err != nil {
		err = fmt.Errorf("version code must be an integer, got %q", arg)
		slog.Error("Bad version argument", "arg", arg, "error", err)
		return 0, err
	}
	return id, nil
}

// resolveSourceArg determines the source database path: the optional
// second CLI argument wins, otherwise the sources.yaml registry is
// consulted.
func resolveSourceArg(
	args []string,
	family datasets.Family,
	versionID int,
) (string, error) {
	if len(args) > 1 {
		return args[1], nil
	}
	return ioregistry.LookupSource(cfg, family, versionID)
}

// runImport is the shared body of the fndds and fped commands.
func runImport(family datasets.Family, args []string) error {
	ctx := context.Background()

	versionID, err := parseVersionArg(args[0])
	if err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	sourcePath, err := resolveSourceArg(args, family, versionID)
	if err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	// Create database operator
	op := iodb.NewPgxOperator()
	if err := op.Connect(ctx, &cfg.Database); err != nil {
		gn.PrintErrorMessage(err)
		return err
	}
	defer op.Close()

	gn.Info("Connected to database: <em>%s@%s:%d/%s</em>",
		cfg.Database.User, cfg.Database.Host,
		cfg.Database.Port, cfg.Database.Database)

	// Check if database has tables
	hasTables, err := op.HasTables(ctx)
	if err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	if !hasTables {
		err = &gn.Error{
			Code: errcode.DBEmptyDatabaseError,
			Msg: `<err>Database appears to be empty.</err>
   Run <em>'fsdb create'</em> first to initialize the schema.`,
			Err: errors.New("cannot insert data into empty database"),
		}
		gn.PrintErrorMessage(err)
		return err
	}

	imp := ioimport.New(
		cfg, op, iosource.New(), family, versionID, sourcePath,
	)

	gn.Info("Starting <em>%s</em> import for version <em>%d</em>...",
		string(family), versionID)
	reports, err := imp.Import(ctx)
	if err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	for _, r := range reports {
		fmt.Printf("%-22s %d\n", r.Table, r.Rows)
	}

	return nil
}
