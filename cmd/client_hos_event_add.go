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

	apihos "github.com/fleethos-io/fleethos/internal/api/hos"
	"github.com/fleethos-io/fleethos/internal/cli"
)

var (
	eventAddDriverID   string
	eventAddVehicleID  string
	eventAddStatus     string
	eventAddStart      string
	eventAddEnd        string
	eventAddLocation   string
	eventAddOdometer   float64
	eventAddAnnotation string
	eventAddAdverse    bool
)

// clientHOSEventAddCmd represents the clientHOSEventAdd command.
var clientHOSEventAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Append a duty event",
	Long: `Append a duty-status event to a driver's log and recompute the
affected days. Times are RFC 3339 UTC. Requires log:write permission.
`,
	Run: func(cmd *cobra.Command, _ []string) {
		ctx := cmd.Context()

		startTime, err := time.Parse(time.RFC3339, eventAddStart)
		if err != nil {
			cli.LogFatal(logger, "invalid start time", err, "start", eventAddStart)
		}

		req := apihos.PostEventRequest{
			DriverID:          eventAddDriverID,
			VehicleID:         eventAddVehicleID,
			Status:            eventAddStatus,
			StartTime:         startTime,
			Location:          eventAddLocation,
			OdometerMiles:     eventAddOdometer,
			Annotation:        eventAddAnnotation,
			AdverseConditions: eventAddAdverse,
		}

		if eventAddEnd != "" {
			endTime, err := time.Parse(time.RFC3339, eventAddEnd)
			if err != nil {
				cli.LogFatal(logger, "invalid end time", err, "end", eventAddEnd)
			}
			req.EndTime = &endTime
		}

		resp, err := apiClient.AppendEvent(ctx, req)
		if err != nil {
			cli.LogFatal(logger, "failed to append event", err)
		}

		if jsonOutput {
			printJSON(resp)
			return
		}

		fmt.Println()
		if resp.Duplicate {
			cli.PrintKV("Duplicate", "true")
		}
		cli.PrintKV(
			"Event", resp.Event.ID,
			"Status", string(resp.Event.Status),
		)
		cli.PrintKV(
			"Day", resp.Log.Date,
			"Driving Left", cli.FormatMinutes(resp.Log.Remaining.DrivingMinutes),
			"Window Left", cli.FormatMinutes(resp.Log.Remaining.WindowMinutes),
		)
		if len(resp.Log.ViolationIDs) > 0 {
			cli.PrintKV("Violations", cli.FormatList(resp.Log.ViolationIDs))
		}
	},
}

func init() {
	clientHOSCmd.AddCommand(clientHOSEventAddCmd)
	clientHOSEventAddCmd.Flags().
		StringVar(&eventAddDriverID, "driver-id", "", "Driver the event belongs to (required)")
	clientHOSEventAddCmd.Flags().
		StringVar(&eventAddVehicleID, "vehicle-id", "", "CMV involved, when any")
	clientHOSEventAddCmd.Flags().
		StringVar(&eventAddStatus, "status", "",
			"Duty status: OFF_DUTY, SLEEPER_BERTH, DRIVING, ON_DUTY_NOT_DRIVING, PERSONAL_CONVEYANCE, or YARD_MOVE (required)")
	clientHOSEventAddCmd.Flags().
		StringVar(&eventAddStart, "start", "", "Interval start, RFC 3339 (required)")
	clientHOSEventAddCmd.Flags().
		StringVar(&eventAddEnd, "end", "", "Interval end, RFC 3339; omit to leave the event open")
	clientHOSEventAddCmd.Flags().
		StringVar(&eventAddLocation, "location", "", "Reported location at the status change")
	clientHOSEventAddCmd.Flags().
		Float64Var(&eventAddOdometer, "odometer", 0, "Vehicle odometer miles at the status change")
	clientHOSEventAddCmd.Flags().
		StringVar(&eventAddAnnotation, "annotation", "", "Free-form driver remark (max 60 characters)")
	clientHOSEventAddCmd.Flags().
		BoolVar(&eventAddAdverse, "adverse", false, "Mark as driven under adverse conditions")
	_ = clientHOSEventAddCmd.MarkFlagRequired("driver-id")
	_ = clientHOSEventAddCmd.MarkFlagRequired("status")
	_ = clientHOSEventAddCmd.MarkFlagRequired("start")
}
