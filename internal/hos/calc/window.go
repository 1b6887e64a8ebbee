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

package calc

import (
	"fmt"

	"github.com/fleethos-io/fleethos/internal/hos"
)

// validateWindow checks that the lookback snapshot is internally
// consistent: events ascend by start time, never overlap, closed events
// have positive duration, and only the final event may be open. Any breach
// makes the rolling-window numbers untrustworthy, so the whole computation
// is rejected rather than producing a best-effort result.
func validateWindow(
	events []hos.DutyEvent,
) error {
	for i, ev := range events {
		if ev.EndTime != nil && !ev.EndTime.After(ev.StartTime) {
			return fmt.Errorf(
				"event %s has non-positive duration: %w",
				ev.ID, hos.ErrMalformedHistoricalData,
			)
		}

		if ev.Open() && i != len(events)-1 {
			return fmt.Errorf(
				"open event %s is not the most recent event: %w",
				ev.ID, hos.ErrMalformedHistoricalData,
			)
		}

		if i == 0 {
			continue
		}

		prev := events[i-1]
		if ev.StartTime.Before(prev.StartTime) {
			return fmt.Errorf(
				"event %s starts before event %s: %w",
				ev.ID, prev.ID, hos.ErrMalformedHistoricalData,
			)
		}

		if prev.EndTime != nil && ev.StartTime.Before(*prev.EndTime) {
			return fmt.Errorf(
				"event %s overlaps event %s: %w",
				ev.ID, prev.ID, hos.ErrMalformedHistoricalData,
			)
		}
	}

	return nil
}
