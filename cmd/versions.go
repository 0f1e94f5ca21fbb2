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
	"fmt"

	"github.com/foodsurveys/fsdb/pkg/datasets"
	"github.com/spf13/cobra"
)

// getVersionsCmd returns the versions command.
// Extracted as a function to facilitate testing and dynamic
// command registration.
func getVersionsCmd() *cobra.Command {
	versionsCmd := &cobra.Command{
		Use:   "versions",
		Short: "List the catalog of supported dataset releases",
		Long: `List the catalog of supported dataset releases.

For every release the output shows its bit-flag version code, the
survey cycle it covers, the USDA revision number, and whether FPED
source tables (and the companion modification-equivalents table)
exist for it. The catalog is fixed in code, no database connection
is made.`,
		Run: func(cmd *cobra.Command, args []string) {
			listVersions()
		},
	}

	return versionsCmd
}

func listVersions() {
	fmt.Printf("%4s  %-9s  %-8s  %-6s  %s\n",
		"Code", "Years", "Revision", "FPED", "Mod-Equiv")

	for _, v := range datasets.All() {
		fped := "-"
		if s, ok := datasets.EquivSuffix(v.ID); ok {
			fped = s
		}
		modEquiv := "no"
		if datasets.HasModEquiv(v.ID) {
			modEquiv = "yes"
		}

		years := fmt.Sprintf("%d-%d", v.BeginYear, v.EndYear)
		revision := fmt.Sprintf("%d.%d", v.Major, v.Minor)
		fmt.Printf("%4d  %-9s  %-8s  %-6s  %s\n",
			v.ID, years, revision, fped, modEquiv)
	}
}
