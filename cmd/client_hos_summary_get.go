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
	"time"

	"github.com/spf13/cobra"

	"github.com/fleethos-io/fleethos/internal/cli"
)

var summaryDriverID string

// clientHOSSummaryGetCmd represents the clientHOSSummaryGet command.
var clientHOSSummaryGetCmd = &cobra.Command{
	Use:   "summary",
	Short: "Get a driver's remaining drive-time balances",
	Long: `Get a driver's remaining balances under the 11-hour driving limit, the
14-hour on-duty window, and the 60/70-hour cycle, along with the trailing
8-day recap. Requires log:read permission.
`,
	Run: func(cmd *cobra.Command, _ []string) {
		ctx := cmd.Context()
		summary, err := apiClient.GetSummary(ctx, summaryDriverID)
		if err != nil {
			cli.LogFatal(logger, "failed to get summary", err)
		}

		if jsonOutput {
			printJSON(summary)
			return
		}

		fmt.Println()
		cli.PrintKV(
			"Driver", summary.DriverID,
			"Carrier", summary.CarrierID,
		)
		cli.PrintKV(
			"Date", summary.Date,
			"Ruleset", string(summary.Ruleset),
		)
		cli.PrintKV("As Of", summary.AsOf.Format(time.RFC3339))

		window := cli.FormatMinutes(summary.Remaining.WindowMinutes)
		if summary.Remaining.WindowSuppressed {
			window = "suppressed (short-haul)"
		}
		cli.PrintKV(
			"Driving Left", cli.FormatMinutes(summary.Remaining.DrivingMinutes),
			"Window Left", window,
			"Cycle Left", cli.FormatMinutes(summary.Remaining.CycleMinutes),
		)
		if summary.NeedsReview {
			cli.PrintKV("Needs Review", "true")
		}

		if len(summary.Recap) == 0 {
			return
		}

		rows := make([][]string, 0, len(summary.Recap))
		for _, day := range summary.Recap {
			rows = append(rows, []string{
				day.Date,
				cli.FormatMinutes(day.OnDutyMinutes),
				cli.FormatMinutes(day.RecapMinutes),
			})
		}

		cli.PrintCompactTable([]cli.Section{
			{
				Title: "Recap (" + strconv.Itoa(len(summary.Recap)) + " days)",
				Headers: []string{
					"DATE",
					"ON DUTY",
					"GAINED",
				},
				Rows: rows,
			},
		})
	},
}

func init() {
	clientHOSCmd.AddCommand(clientHOSSummaryGetCmd)
	clientHOSSummaryGetCmd.Flags().
		StringVar(&summaryDriverID, "driver-id", "", "Driver to summarize (required)")
	_ = clientHOSSummaryGetCmd.MarkFlagRequired("driver-id")
}
