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
	auditListLimit  int
	auditListOffset int
)

// clientAuditListCmd represents the clientAuditList command.
var clientAuditListCmd = &cobra.Command{
	Use:   "list",
	Short: "List audit trail entries",
	Long: `List audit trail entries with pagination.

Displays a table of recent record mutations including actor, action,
target, and the edit reason. Requires audit:read permission.
`,
	Run: func(cmd *cobra.Command, _ []string) {
		ctx := cmd.Context()
		resp, err := apiClient.ListAudit(ctx, auditListLimit, auditListOffset)
		if err != nil {
			cli.LogFatal(logger, "failed to list audit entries", err)
		}

		if jsonOutput {
			printJSON(resp)
			return
		}

		fmt.Println()
		cli.PrintKV("Total", strconv.Itoa(resp.TotalItems))

		if len(resp.Items) == 0 {
			fmt.Println("  No audit entries found.")
			return
		}

		rows := make([][]string, 0, len(resp.Items))
		for _, entry := range resp.Items {
			rows = append(rows, []string{
				entry.ID,
				entry.Timestamp.Format("2006-01-02 15:04:05"),
				entry.Actor,
				entry.Action,
				string(entry.TargetType) + "/" + entry.TargetID,
				entry.Reason,
			})
		}

		cli.PrintCompactTable([]cli.Section{
			{
				Title: "Audit Entries",
				Headers: []string{
					"ID",
					"TIMESTAMP",
					"ACTOR",
					"ACTION",
					"TARGET",
					"REASON",
				},
				Rows: rows,
			},
		})
	},
}

func init() {
	clientAuditCmd.AddCommand(clientAuditListCmd)
	clientAuditListCmd.Flags().
		IntVar(&auditListLimit, "limit", 20, "Maximum number of entries to return")
	clientAuditListCmd.Flags().IntVar(&auditListOffset, "offset", 0, "Number of entries to skip")
}
