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
	logGetDriverID string
	logGetDate     string
)

// clientHOSLogGetCmd represents the clientHOSLogGet command.
var clientHOSLogGetCmd = &cobra.Command{
	Use:   "log",
	Short: "Get one driver-day's log",
	Long: `Get one driver-day's log: the ordered duty events, the computed
totals, and the certification state. Requires log:read permission.
`,
	Run: func(cmd *cobra.Command, _ []string) {
		ctx := cmd.Context()
		log, err := apiClient.GetDailyLog(ctx, logGetDriverID, logGetDate)
		if err != nil {
			cli.LogFatal(logger, "failed to get daily log", err)
		}

		if jsonOutput {
			printJSON(log)
			return
		}

		fmt.Println()
		cli.PrintKV(
			"Driver", log.DriverID,
			"Date", log.Date,
			"Timezone", log.Timezone,
		)
		cli.PrintKV(
			"State", string(log.State),
			"Version", strconv.Itoa(log.Version),
		)
		if log.CertifiedAt != nil {
			cli.PrintKV(
				"Certified At", log.CertifiedAt.Format("2006-01-02 15:04:05"),
				"Certified By", log.CertifiedBy,
			)
		}
		cli.PrintKV(
			"Driving", cli.FormatMinutes(log.Totals.DrivingMinutes),
			"On Duty", cli.FormatMinutes(log.Totals.OnDutyMinutes),
			"Sleeper", cli.FormatMinutes(log.Totals.SleeperMinutes),
			"Off Duty", cli.FormatMinutes(log.Totals.OffDutyMinutes),
		)
		if log.ShortHaul {
			cli.PrintKV("Short Haul", "true")
		}
		if log.NeedsReview {
			cli.PrintKV("Needs Review", log.ReviewReason)
		}

		if len(log.Events) == 0 {
			fmt.Println("  No events logged.")
			return
		}

		rows := make([][]string, 0, len(log.Events))
		for _, event := range log.Events {
			end := "open"
			if event.EndTime != nil {
				end = event.EndTime.Format("15:04")
			}

			rows = append(rows, []string{
				event.ID,
				string(event.Status),
				event.StartTime.Format("15:04"),
				end,
				cli.FormatMinutes(event.DurationMinutes),
				event.Location,
				strconv.FormatBool(event.Edited),
			})
		}

		cli.PrintCompactTable([]cli.Section{
			{
				Title: "Duty Events",
				Headers: []string{
					"ID",
					"STATUS",
					"START",
					"END",
					"DURATION",
					"LOCATION",
					"EDITED",
				},
				Rows: rows,
			},
		})
	},
}

func init() {
	clientHOSCmd.AddCommand(clientHOSLogGetCmd)
	clientHOSLogGetCmd.Flags().
		StringVar(&logGetDriverID, "driver-id", "", "Driver the log belongs to (required)")
	clientHOSLogGetCmd.Flags().
		StringVar(&logGetDate, "date", "", "Local calendar day, formatted 2006-01-02 (required)")
	_ = clientHOSLogGetCmd.MarkFlagRequired("driver-id")
	_ = clientHOSLogGetCmd.MarkFlagRequired("date")
}
