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
	"fmt"

	"github.com/dustin/go-humanize"
	"github.com/foodsurveys/fsdb/internal/iodb"
	"github.com/foodsurveys/fsdb/internal/iostats"
	"github.com/foodsurveys/fsdb/pkg/datasets"
	"github.com/gnames/gn"
	"github.com/spf13/cobra"
)

// getStatsCmd returns the stats command.
// Extracted as a function to facilitate testing and dynamic
// command registration.
func getStatsCmd() *cobra.Command {
	statsCmd := &cobra.Command{
		Use:   "stats [version]",
		Short: "Show row counts of the destination tables",
		Long: `Show row counts of the destination tables.

Without arguments the counts cover all imported releases. With a
version code argument the counts are restricted to that release.
Tables are queried concurrently; the number of parallel queries
follows the jobs_number setting.

Examples:
  fsdb stats
  fsdb stats 8`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runStats(args)
		},
	}

	return statsCmd
}

func runStats(args []string) error {
	ctx := context.Background()

	versionID := 0
	if len(args) > 0 {
		id, err := parseVersionArg(args[0])
		if err != nil {
			gn.PrintErrorMessage(err)
			return err
		}
		if _, err = datasets.Resolve(id); err != nil {
			gn.PrintErrorMessage(err)
			return err
		}
		versionID = id
	}

	op := iodb.NewPgxOperator()
	if err := op.Connect(ctx, &cfg.Database); err != nil {
		gn.PrintErrorMessage(err)
		return err
	}
	defer op.Close()

	counts, err := iostats.Counts(ctx, cfg, op, versionID)
	if err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	if versionID > 0 {
		gn.Info("Row counts for version <em>%d</em>:", versionID)
	} else {
		gn.Info("Row counts for all versions:")
	}

	var total int64
	for _, c := range counts {
		fmt.Printf("%-22s %s\n", c.Table, humanize.Comma(c.Rows))
		total += c.Rows
	}
	fmt.Printf("%-22s %s\n", "total", humanize.Comma(total))

	return nil
}
