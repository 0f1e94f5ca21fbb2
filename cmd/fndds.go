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
	"github.com/foodsurveys/fsdb/pkg/datasets"
	"github.com/spf13/cobra"
)

// getFnddsCmd returns the fndds command.
// Extracted as a function to facilitate testing and dynamic
// command registration.
func getFnddsCmd() *cobra.Command {
	fnddsCmd := &cobra.Command{
		Use:   "fndds <version> [source]",
		Short: "Import one FNDDS release",
		Long: `Import one FNDDS release from its legacy source database.

This command:
  1. Resolves the version code against the release catalog
  2. Opens the SQLite rendition of the source database
  3. Replaces the version record for this release
  4. Loads all 11 FNDDS tables in dependency order
  5. Reports per-table row counts

<version> is the bit-flag version code of the release (run
'fsdb versions' for the catalog). [source] is the path of the source
database; when omitted, ~/.config/fsdb/sources.yaml is consulted.

Re-importing a release replaces its prior rows, it never accumulates
duplicates.

Examples:
  fsdb fndds 8 /data/usda/fndds_0708.sqlite
  fsdb fndds 8`,
		Args: cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runImport(datasets.FNDDS, args)
		},
	}

	return fnddsCmd
}
