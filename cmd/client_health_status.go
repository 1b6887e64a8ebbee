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

	"github.com/fleethos-io/fleethos/internal/api/health"
	"github.com/fleethos-io/fleethos/internal/cli"
)

// clientHealthStatusCmd represents the clientHealthStatus command.
var clientHealthStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "System status and component health",
	Long: `Show per-component health status with NATS, KV bucket, and fleet
metrics. Requires authentication.
`,
	Run: func(cmd *cobra.Command, _ []string) {
		ctx := cmd.Context()
		resp, err := apiClient.GetHealthStatus(ctx)
		if err != nil {
			cli.LogFatal(logger, "failed to get health status endpoint", err)
		}

		if jsonOutput {
			printJSON(resp)
			return
		}

		displayStatusHealth(resp)
	},
}

// displayStatusHealth renders health status output with fleet metrics.
func displayStatusHealth(
	data *health.StatusResponse,
) {
	fmt.Println()
	cli.PrintKV("Status", data.Status, "Version", data.Version, "Uptime", data.Uptime)

	if data.NATS != nil {
		natsVal := data.NATS.URL
		if data.NATS.Version != "" {
			natsVal += " (v" + data.NATS.Version + ")"
		}
		cli.PrintKV("NATS", natsVal)
	}

	if data.Fleet != nil {
		cli.PrintKV(
			"Drivers", strconv.Itoa(data.Fleet.Drivers),
			"Open Violations", strconv.Itoa(data.Fleet.OpenViolations),
			"Certified Today", strconv.Itoa(data.Fleet.CertifiedLogs),
		)
	}

	if len(data.Components) > 0 {
		rows := make([][]string, 0, len(data.Components))
		for name, component := range data.Components {
			rows = append(rows, []string{name, component.Status, component.Error})
		}
		cli.PrintCompactTable([]cli.Section{
			{
				Title:   "Components",
				Headers: []string{"NAME", "STATUS", "ERROR"},
				Rows:    rows,
			},
		})
	}

	if data.KVBuckets != nil && len(*data.KVBuckets) > 0 {
		rows := make([][]string, 0, len(*data.KVBuckets))
		for _, bucket := range *data.KVBuckets {
			rows = append(rows, []string{
				bucket.Name,
				strconv.Itoa(bucket.Keys),
				strconv.Itoa(bucket.Bytes),
			})
		}
		cli.PrintCompactTable([]cli.Section{
			{
				Title:   "KV Buckets",
				Headers: []string{"NAME", "KEYS", "BYTES"},
				Rows:    rows,
			},
		})
	}
}

func init() {
	clientHealthCmd.AddCommand(clientHealthStatusCmd)
}
