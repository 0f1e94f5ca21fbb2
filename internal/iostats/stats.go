// Package iostats reports destination row counts per table,
// optionally restricted to one dataset release.
package iostats

import (
	"context"
	"fmt"
	"slices"
	"sync"

	"github.com/foodsurveys/fsdb/pkg/config"
	"github.com/foodsurveys/fsdb/pkg/db"
	"github.com/foodsurveys/fsdb/pkg/schema"
	"golang.org/x/sync/errgroup"
)

// TableCount is the row count of one destination table.
type TableCount struct {
	Table string
	Rows  int64
}

// Counts gathers row counts for all entity tables, querying them
// concurrently. When versionID is positive, counts are restricted to
// that release. Results are sorted by table name for deterministic
// output.
func Counts(
	ctx context.Context,
	cfg *config.Config,
	op db.Operator,
	versionID int,
) ([]TableCount, error) {
	pool := op.Pool()
	if pool == nil {
		return nil, NotConnectedError()
	}

	tables := entityTables()

	var mu sync.Mutex
	res := make([]TableCount, 0, len(tables))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(cfg.JobsNumber)

	for _, table := range tables {
		g.Go(func() error {
			query := fmt.Sprintf(
				"SELECT count(*) FROM %s", table)
			args := []any{}
			if versionID > 0 {
				query += " WHERE version_id = $1"
				args = append(args, versionID)
			}

			var count int64
			err := pool.QueryRow(gctx, query, args...).Scan(&count)
			if err != nil {
				return QueryError(table, err)
			}

			mu.Lock()
			res = append(res, TableCount{Table: table, Rows: count})
			mu.Unlock()
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	slices.SortFunc(res, func(a, b TableCount) int {
		switch {
		case a.Table < b.Table:
			return -1
		case a.Table > b.Table:
			return 1
		}
		return 0
	})

	return res, nil
}

// entityTables lists every versioned destination table.
func entityTables() []string {
	models := schema.AllModels()
	res := make([]string, 0, len(models))
	for _, m := range models {
		gen, ok := m.(schema.DDLGenerator)
		if !ok {
			continue
		}
		if gen.TableName() == "dataset_versions" {
			continue
		}
		res = append(res, gen.TableName())
	}
	return res
}
