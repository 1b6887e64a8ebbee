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
	"time"

	"github.com/fleethos-io/fleethos/internal/hos"
)

// onDutyByDay sums cycle-accumulating minutes (driving plus on duty not
// driving) per local calendar day within [from, asOf). Yard moves and
// personal conveyance are excluded from cycle accumulation.
func onDutyByDay(
	events []hos.DutyEvent,
	loc *time.Location,
	from time.Time,
	asOf time.Time,
) map[string]int {
	perDay := make(map[string]int)

	for _, ev := range events {
		if !ev.Status.OnDuty() {
			continue
		}

		start := ev.StartTime
		end := ev.EffectiveEnd(asOf)
		if start.Before(from) {
			start = from
		}
		if end.After(asOf) {
			end = asOf
		}

		// Split the interval at local midnight boundaries.
		for start.Before(end) {
			local := start.In(loc)
			dayStart := time.Date(
				local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, loc,
			)
			dayEnd := dayStart.AddDate(0, 0, 1)

			segEnd := end
			if segEnd.After(dayEnd) {
				segEnd = dayEnd
			}

			perDay[dayStart.Format(hos.DateFormat)] += int(segEnd.Sub(start) / time.Minute)
			start = segEnd
		}
	}

	return perDay
}

// buildRecap produces the fixed 8-entry recap array, oldest day first. Each
// entry shows the on-duty minutes consumed on that day and the minutes that
// become available again at the start of the following day, which are the
// minutes of the day aging out of the cycle window at that boundary. Under
// the 60-hour/7-day ruleset the eighth entry is present but zero-valued.
func buildRecap(
	day time.Time,
	perDay map[string]int,
	ruleset hos.Ruleset,
) []hos.RecapDay {
	recap := make([]hos.RecapDay, hos.RecapDays)

	for i := 0; i < hos.RecapDays; i++ {
		d := day.AddDate(0, 0, i-(hos.RecapDays-1))
		entry := hos.RecapDay{Date: d.Format(hos.DateFormat)}

		// Trim days outside the configured cycle window.
		age := hos.RecapDays - 1 - i
		if age < ruleset.CycleDays {
			entry.OnDutyMinutes = perDay[entry.Date]

			// The day aging out at the start of d+1 is d-(CycleDays-1).
			dropped := d.AddDate(0, 0, -(ruleset.CycleDays - 1))
			entry.RecapMinutes = perDay[dropped.Format(hos.DateFormat)]
		}

		recap[i] = entry
	}

	return recap
}
