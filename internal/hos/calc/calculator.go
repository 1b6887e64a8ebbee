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

// Package calc implements the rolling-window Hours-of-Service calculator.
// Compute is a pure function over an immutable snapshot of a driver's
// lookback window; it holds no state and touches no store.
package calc

import (
	"fmt"
	"time"

	"github.com/fleethos-io/fleethos/internal/hos"
)

// Input is a consistent snapshot of one driver's lookback window.
type Input struct {
	// DriverID identifies the driver, carried through for error context.
	DriverID string
	// Date is the local calendar day under computation, 2006-01-02.
	Date string
	// Timezone is the driver's home-terminal IANA zone.
	Timezone string
	// AsOf is the UTC instant balances are computed as of. Open events
	// are clipped here.
	AsOf time.Time
	// Events are the live events within the lookback window, ascending
	// by start time. The window must cover the trailing
	// Ruleset.CycleDays calendar days including Date.
	Events []hos.DutyEvent
	// Ruleset is the cycle configuration in force.
	Ruleset hos.Ruleset
	// ShortHaul suppresses the 14-hour clock for the day.
	ShortHaul bool
}

// Result carries the derived totals and balances for Input.Date.
type Result struct {
	// Totals is the per-day minute breakdown for Date.
	Totals hos.DailyTotals
	// Remaining holds the clamped rule balances as of AsOf.
	Remaining hos.Remaining
	// Recap is the trailing 8-day cycle recap, oldest day first.
	Recap []hos.RecapDay

	// DrivingMinutes accumulated since the anchor break.
	DrivingMinutes int
	// WindowElapsedMinutes since the 14-hour window opened. Zero when no
	// window is running.
	WindowElapsedMinutes int
	// CycleMinutes is the rolling on-duty sum over the cycle window.
	CycleMinutes int

	// AllowedDrivingMinutes is the driving limit in force, including any
	// adverse-conditions extension.
	AllowedDrivingMinutes int
	// AllowedWindowMinutes is the window limit in force, including any
	// adverse-conditions extension.
	AllowedWindowMinutes int

	// Anchor is the end of the most recent qualifying break, or the start
	// of the lookback window when none was found.
	Anchor time.Time
	// CycleWindowStart is the start of the oldest day in the cycle window.
	CycleWindowStart time.Time
}

// Compute derives totals, remaining balances, and the recap for one
// driver-day. It returns hos.ErrMalformedHistoricalData (wrapped) when the
// lookback window cannot be trusted.
func Compute(
	in Input,
) (Result, error) {
	loc, err := time.LoadLocation(in.Timezone)
	if err != nil {
		return Result{}, fmt.Errorf("loading timezone %q: %w", in.Timezone, err)
	}

	day, err := time.ParseInLocation(hos.DateFormat, in.Date, loc)
	if err != nil {
		return Result{}, fmt.Errorf("parsing date %q: %w", in.Date, err)
	}

	if err := validateWindow(in.Events); err != nil {
		return Result{}, fmt.Errorf("driver %s: %w", in.DriverID, err)
	}

	asOf := in.AsOf
	dayEnd := day.AddDate(0, 0, 1)
	if asOf.After(dayEnd) {
		asOf = dayEnd
	}

	lookbackStart := day.AddDate(0, 0, -(hos.RecapDays - 1))

	res := Result{
		Totals:                dailyTotals(in.Events, day, dayEnd, asOf),
		AllowedDrivingMinutes: hos.DrivingLimitMinutes,
		AllowedWindowMinutes:  hos.WindowLimitMinutes,
	}

	// Driving and window accumulate from the most recent qualifying break.
	res.Anchor = findAnchor(in.Events, lookbackStart, asOf)
	res.DrivingMinutes = drivingSince(in.Events, res.Anchor, asOf)

	windowStart := windowStartSince(in.Events, res.Anchor, asOf)
	if windowStart != nil {
		res.WindowElapsedMinutes = int(asOf.Sub(*windowStart) / time.Minute)
	}

	if adverseSince(in.Events, res.Anchor, asOf) {
		res.AllowedDrivingMinutes += hos.AdverseExtensionMinutes
		res.AllowedWindowMinutes += hos.AdverseExtensionMinutes
	}

	// Cycle accumulates per local calendar day over the trailing window.
	perDay := onDutyByDay(in.Events, loc, lookbackStart, asOf)
	res.CycleWindowStart = day.AddDate(0, 0, -(in.Ruleset.CycleDays - 1))

	for i := 0; i < in.Ruleset.CycleDays; i++ {
		d := res.CycleWindowStart.AddDate(0, 0, i)
		res.CycleMinutes += perDay[d.Format(hos.DateFormat)]
	}

	res.Recap = buildRecap(day, perDay, in.Ruleset)

	res.Remaining = hos.Remaining{
		DrivingMinutes:   clamp(res.AllowedDrivingMinutes - res.DrivingMinutes),
		WindowMinutes:    clamp(res.AllowedWindowMinutes - res.WindowElapsedMinutes),
		CycleMinutes:     clamp(in.Ruleset.CycleLimitMinutes - res.CycleMinutes),
		WindowStart:      windowStart,
		WindowSuppressed: in.ShortHaul,
	}

	return res, nil
}

// dailyTotals buckets the day's minutes into the four grid rows. Personal
// conveyance lands in off duty and yard moves in on duty, matching the
// printed grid; limit accumulation elsewhere treats both specially.
func dailyTotals(
	events []hos.DutyEvent,
	dayStart time.Time,
	dayEnd time.Time,
	asOf time.Time,
) hos.DailyTotals {
	cutoff := asOf
	if cutoff.After(dayEnd) {
		cutoff = dayEnd
	}

	var t hos.DailyTotals

	for _, ev := range events {
		minutes := overlapMinutes(ev.StartTime, ev.EffectiveEnd(asOf), dayStart, cutoff)
		if minutes == 0 {
			continue
		}

		switch ev.Status {
		case hos.StatusDriving:
			t.DrivingMinutes += minutes
		case hos.StatusOnDutyNotDriving, hos.StatusYardMove:
			t.OnDutyMinutes += minutes
		case hos.StatusSleeperBerth:
			t.SleeperMinutes += minutes
		case hos.StatusOffDuty, hos.StatusPersonalConveyance:
			t.OffDutyMinutes += minutes
		}
	}

	return t
}

// drivingSince sums DRIVING minutes in (anchor, asOf]. Yard moves and
// personal conveyance never accumulate against the driving limit.
func drivingSince(
	events []hos.DutyEvent,
	anchor time.Time,
	asOf time.Time,
) int {
	total := 0

	for _, ev := range events {
		if ev.Status != hos.StatusDriving {
			continue
		}
		total += overlapMinutes(ev.StartTime, ev.EffectiveEnd(asOf), anchor, asOf)
	}

	return total
}

// windowStartSince returns the start of the first driving or
// on-duty-not-driving event at or after the anchor. Personal conveyance and
// yard moves neither start nor extend the window.
func windowStartSince(
	events []hos.DutyEvent,
	anchor time.Time,
	asOf time.Time,
) *time.Time {
	for _, ev := range events {
		if ev.Status != hos.StatusDriving && ev.Status != hos.StatusOnDutyNotDriving {
			continue
		}

		end := ev.EffectiveEnd(asOf)
		if !end.After(anchor) || !ev.StartTime.Before(asOf) {
			continue
		}

		start := ev.StartTime
		if start.Before(anchor) {
			start = anchor
		}

		return &start
	}

	return nil
}

// adverseSince reports whether any driving event since the anchor carries
// the adverse-conditions annotation.
func adverseSince(
	events []hos.DutyEvent,
	anchor time.Time,
	asOf time.Time,
) bool {
	for _, ev := range events {
		if !ev.AdverseConditions || ev.Status != hos.StatusDriving {
			continue
		}
		if overlapMinutes(ev.StartTime, ev.EffectiveEnd(asOf), anchor, asOf) > 0 {
			return true
		}
	}

	return false
}

// overlapMinutes returns the whole minutes of [start, end) falling inside
// [from, to).
func overlapMinutes(
	start time.Time,
	end time.Time,
	from time.Time,
	to time.Time,
) int {
	if start.Before(from) {
		start = from
	}
	if end.After(to) {
		end = to
	}
	if !end.After(start) {
		return 0
	}

	return int(end.Sub(start) / time.Minute)
}

func clamp(
	minutes int,
) int {
	if minutes < 0 {
		return 0
	}

	return minutes
}
