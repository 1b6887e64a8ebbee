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

// restSpan is a maximal run of contiguous rest events (off duty, sleeper
// berth, personal conveyance).
type restSpan struct {
	start   time.Time
	end     time.Time
	sleeper int // sleeper-berth minutes within the span
}

func (r restSpan) minutes() int {
	return int(r.end.Sub(r.start) / time.Minute)
}

// restSpans merges contiguous rest events within [from, to) into maximal
// spans, ascending. Events are assumed ordered and non-overlapping.
func restSpans(
	events []hos.DutyEvent,
	from time.Time,
	to time.Time,
) []restSpan {
	var spans []restSpan

	for _, ev := range events {
		if !ev.Status.Rest() {
			continue
		}

		start := ev.StartTime
		end := ev.EffectiveEnd(to)
		if start.Before(from) {
			start = from
		}
		if end.After(to) {
			end = to
		}
		if !end.After(start) {
			continue
		}

		sleeper := 0
		if ev.Status == hos.StatusSleeperBerth {
			sleeper = int(end.Sub(start) / time.Minute)
		}

		if n := len(spans); n > 0 && spans[n-1].end.Equal(start) {
			spans[n-1].end = end
			spans[n-1].sleeper += sleeper
			continue
		}

		spans = append(spans, restSpan{start: start, end: end, sleeper: sleeper})
	}

	return spans
}

// findAnchor returns the end of the most recent qualifying break within
// [from, asOf): either a single rest span of at least 10 consecutive hours,
// or a sleeper-berth split (one span with >=7h sleeper paired with another
// span of >=2h rest, combined >=10h, in either order). When no qualifying
// break exists the lookback start is the anchor.
func findAnchor(
	events []hos.DutyEvent,
	from time.Time,
	asOf time.Time,
) time.Time {
	spans := restSpans(events, from, asOf)

	anchor := from

	for i, s := range spans {
		if s.minutes() >= hos.QualifyingBreakMinutes {
			if s.end.After(anchor) {
				anchor = s.end
			}
			continue
		}

		// Sleeper-berth split: pair this span with any earlier one.
		for j := 0; j < i; j++ {
			if !splitQualifies(spans[j], s) {
				continue
			}
			if s.end.After(anchor) {
				anchor = s.end
			}
			break
		}
	}

	return anchor
}

// splitQualifies reports whether the ordered pair (earlier, later) forms a
// qualifying sleeper-berth split. One period must contain at least 7 hours
// of sleeper berth, the other at least 2 hours of rest, combined at least
// 10 hours; which period is which does not matter.
func splitQualifies(
	earlier restSpan,
	later restSpan,
) bool {
	if earlier.minutes()+later.minutes() < hos.QualifyingBreakMinutes {
		return false
	}

	longSleeper := earlier.sleeper >= hos.SplitSleeperMinutes ||
		later.sleeper >= hos.SplitSleeperMinutes
	if !longSleeper {
		return false
	}

	if earlier.sleeper >= hos.SplitSleeperMinutes {
		return later.minutes() >= hos.SplitRestMinutes
	}

	return earlier.minutes() >= hos.SplitRestMinutes
}
