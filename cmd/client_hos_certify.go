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

var (
	certifyDriverID  string
	certifyDate      string
	certifySignature string
)

// clientHOSCertifyCmd represents the clientHOSCertify command.
var clientHOSCertifyCmd = &cobra.Command{
	Use:   "certify",
	Short: "Certify one driver-day's log",
	Long: `Certify a driver-day's log, freezing a signed snapshot of the events
and violations at signing time. Requires log:certify permission.
`,
	Run: func(cmd *cobra.Command, _ []string) {
		ctx := cmd.Context()
		snapshot, err := apiClient.Certify(ctx, certifyDriverID, certifyDate, certifySignature)
		if err != nil {
			cli.LogFatal(logger, "failed to certify log", err)
		}

		if jsonOutput {
			printJSON(snapshot)
			return
		}

		fmt.Println()
		cli.PrintKV(
			"Snapshot", snapshot.ID,
			"Driver", snapshot.DriverID,
			"Date", snapshot.Date,
		)
		cli.PrintKV(
			"Version", strconv.Itoa(snapshot.Version),
			"Certified At", snapshot.CertifiedAt.Format(time.RFC3339),
			"Certified By", snapshot.CertifiedBy,
		)
	},
}

func init() {
	clientHOSCmd.AddCommand(clientHOSCertifyCmd)
	clientHOSCertifyCmd.Flags().
		StringVar(&certifyDriverID, "driver-id", "", "Driver the log belongs to (required)")
	clientHOSCertifyCmd.Flags().
		StringVar(&certifyDate, "date", "", "Local calendar day, formatted 2006-01-02 (required)")
	clientHOSCertifyCmd.Flags().
		StringVar(&certifySignature, "signature", "", "Driver's certification signature (required)")
	_ = clientHOSCertifyCmd.MarkFlagRequired("driver-id")
	_ = clientHOSCertifyCmd.MarkFlagRequired("date")
	_ = clientHOSCertifyCmd.MarkFlagRequired("signature")
}
