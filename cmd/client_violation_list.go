// Copyright (c) 2026 John Dewey

// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to
// deal in the Software without restriction, including without limitation the
// rights to use, copy, modify, merge, publish, distribute, sublicense, and/or
// sell copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:

// The above copyright notice and this permission notice shall be included in
// all copies or substantial portions of the Software.

// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING
// FROM, OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER
// DEALINGS IN THE SOFTWARE.

package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/fleethos-io/fleethos/internal/cli"
)

var (
	violationListDriverID string
	violationListStatus   string
)

// clientViolationListCmd represents the clientViolationList command.
var clientViolationListCmd = &cobra.Command{
	Use:   "violations",
	Short: "List HOS violations",
	Long: `List detected HOS violations and warnings, optionally filtered by
driver and review status. Requires violation:read permission.
`,
	Run: func(cmd *cobra.Command, _ []string) {
		ctx := cmd.Context()
		resp, err := apiClient.ListViolations(ctx, violationListDriverID, violationListStatus)
		if err != nil {
			cli.LogFatal(logger, "failed to list violations", err)
		}

		if jsonOutput {
			printJSON(resp)
			return
		}

		fmt.Println()
		cli.PrintKV("Total", strconv.Itoa(resp.TotalItems))

		if len(resp.Items) == 0 {
			fmt.Println("  No violations found.")
			return
		}

		rows := make([][]string, 0, len(resp.Items))
		for _, v := range resp.Items {
			rows = append(rows, []string{
				v.ID,
				v.DriverID,
				string(v.RuleID),
				string(v.Severity),
				v.DetectedAt.Format("2006-01-02 15:04"),
				cli.FormatMinutes(v.ActualMinutes) + "/" + cli.FormatMinutes(v.AllowedMinutes),
				string(v.Status),
			})
		}

		cli.PrintCompactTable([]cli.Section{
			{
				Title: "Violations",
				Headers: []string{
					"ID",
					"DRIVER",
					"RULE",
					"SEVERITY",
					"DETECTED",
					"ACTUAL/ALLOWED",
					"STATUS",
				},
				Rows: rows,
			},
		})
	},
}

func init() {
	clientCmd.AddCommand(clientViolationListCmd)
	clientViolationListCmd.Flags().
		StringVar(&violationListDriverID, "driver-id", "", "Restrict to one driver")
	clientViolationListCmd.Flags().
		StringVar(&violationListStatus, "status", "",
			"Restrict to one review status: OPEN, ACKNOWLEDGED, DISPUTED, or RESOLVED")
}
