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
	"time"

	"github.com/spf13/cobra"

	"github.com/fleethos-io/fleethos/internal/cli"
)

var auditGetID string

// clientAuditGetCmd represents the clientAuditGet command.
var clientAuditGetCmd = &cobra.Command{
	Use:   "get",
	Short: "Get a single audit trail entry",
	Long: `Get one audit trail entry by ID, including the serialized before and
after state of the mutation. Requires audit:read permission.
`,
	Run: func(cmd *cobra.Command, _ []string) {
		ctx := cmd.Context()
		entry, err := apiClient.GetAudit(ctx, auditGetID)
		if err != nil {
			cli.LogFatal(logger, "failed to get audit entry", err)
		}

		if jsonOutput {
			printJSON(entry)
			return
		}

		fmt.Println()
		cli.PrintKV(
			"ID", entry.ID,
			"Timestamp", entry.Timestamp.Format(time.RFC3339),
		)
		cli.PrintKV(
			"Actor", entry.Actor,
			"Action", entry.Action,
			"Target", string(entry.TargetType)+"/"+entry.TargetID,
		)
		if entry.DriverID != "" {
			cli.PrintKV("Driver", entry.DriverID, "Date", entry.Date)
		}
		if entry.Reason != "" {
			cli.PrintKV("Reason", entry.Reason)
		}
		if len(entry.PreviousValue) > 0 {
			cli.PrintKV("Previous", string(entry.PreviousValue))
		}
		if len(entry.NewValue) > 0 {
			cli.PrintKV("New", string(entry.NewValue))
		}
	},
}

func init() {
	clientAuditCmd.AddCommand(clientAuditGetCmd)
	clientAuditGetCmd.Flags().
		StringVar(&auditGetID, "id", "", "Audit entry ID (required)")
	_ = clientAuditGetCmd.MarkFlagRequired("id")
}
