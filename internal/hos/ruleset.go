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

package hos

import "fmt"

// Regulatory minute constants (49 CFR 395.3). The split-break thresholds
// implement the 8/2 (and 7/3) sleeper-berth provision.
const (
	// DrivingLimitMinutes is the 11-hour driving limit.
	DrivingLimitMinutes = 660
	// WindowLimitMinutes is the 14-hour on-duty window.
	WindowLimitMinutes = 840
	// QualifyingBreakMinutes is the 10 consecutive off-duty hours that
	// reset the driving and window limits.
	QualifyingBreakMinutes = 600
	// SplitSleeperMinutes is the minimum sleeper-berth portion of a
	// qualifying split (7 hours).
	SplitSleeperMinutes = 420
	// SplitRestMinutes is the minimum paired rest portion of a qualifying
	// split (2 hours, off duty or sleeper, either order).
	SplitRestMinutes = 120
	// AdverseExtensionMinutes is the maximum extension of the driving and
	// window limits under adverse driving conditions.
	AdverseExtensionMinutes = 120
	// MinutesPerDay is the length of a fully logged day.
	MinutesPerDay = 1440
)

// Ruleset is the cycle configuration a carrier operates under. It is a
// value passed to the calculator, never global state.
type Ruleset struct {
	// ID is the rule identifier emitted on cycle violations.
	ID RuleID
	// CycleDays is the rolling window length in calendar days.
	CycleDays int
	// CycleLimitMinutes is the on-duty ceiling within the window.
	CycleLimitMinutes int
}

// The two US property-carrier cycle rulesets.
var (
	// Ruleset60Hour7Day limits on-duty time to 60 hours in 7 days.
	Ruleset60Hour7Day = Ruleset{
		ID:                Rule60Hour7Day,
		CycleDays:         7,
		CycleLimitMinutes: 3600,
	}

	// Ruleset70Hour8Day limits on-duty time to 70 hours in 8 days.
	Ruleset70Hour8Day = Ruleset{
		ID:                Rule70Hour8Day,
		CycleDays:         8,
		CycleLimitMinutes: 4200,
	}
)

// RulesetByID resolves a configured ruleset name.
func RulesetByID(
	id string,
) (Ruleset, error) {
	switch RuleID(id) {
	case Rule60Hour7Day:
		return Ruleset60Hour7Day, nil
	case Rule70Hour8Day:
		return Ruleset70Hour8Day, nil
	default:
		return Ruleset{}, fmt.Errorf("unknown ruleset: %q", id)
	}
}
