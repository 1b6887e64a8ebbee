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

// Package violation derives compliance records from calculator output.
// Detection is deterministic and idempotent: candidates are diffed against
// the driver's currently open records before anything new is created.
package violation

import (
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/fleethos-io/fleethos/internal/hos"
	"github.com/fleethos-io/fleethos/internal/hos/calc"
)

// DefaultWarningBufferMinutes is the approach buffer below which a WARNING
// is emitted.
const DefaultWarningBufferMinutes = 30

// Detector classifies calculator output into warnings and violations.
type Detector struct {
	logger               *slog.Logger
	warningBufferMinutes int
	now                  func() time.Time
}

// Option configures the Detector.
type Option func(*Detector)

// WithWarningBuffer overrides the approach buffer.
func WithWarningBuffer(
	minutes int,
) Option {
	return func(d *Detector) {
		d.warningBufferMinutes = minutes
	}
}

// WithClock overrides the time source. Used by tests.
func WithClock(
	now func() time.Time,
) Option {
	return func(d *Detector) {
		d.now = now
	}
}

// New creates a new Detector.
func New(
	logger *slog.Logger,
	opts ...Option,
) *Detector {
	d := &Detector{
		logger:               logger,
		warningBufferMinutes: DefaultWarningBufferMinutes,
		now:                  time.Now,
	}

	for _, opt := range opts {
		opt(d)
	}

	return d
}

// Outcome is the diffed result of one detection pass.
type Outcome struct {
	// Created are the records that did not yet exist and must be stored.
	Created []hos.Violation
	// Superseded are open WARNING records whose limit has since been
	// crossed; the caller resolves them when storing the new VIOLATION.
	Superseded []hos.Violation
}

// Detect diffs the rule candidates derived from res against the driver's
// currently open records. Running detection twice over the same log never
// yields a duplicate open record for the same driver, rule, and window.
func (d *Detector) Detect(
	log hos.DailyLog,
	res calc.Result,
	ruleset hos.Ruleset,
	open []hos.Violation,
) Outcome {
	candidates := d.candidates(log, res, ruleset)

	openByKey := make(map[string]hos.Violation, len(open))
	for _, v := range open {
		openByKey[v.Key()] = v
	}

	var out Outcome

	for _, c := range candidates {
		existing, found := openByKey[c.Key()]
		if found {
			if existing.Severity == c.Severity || existing.Severity == hos.SeverityViolation {
				continue
			}

			// The limit was crossed after a WARNING had been emitted. The
			// warning is superseded, never mutated into a violation.
			out.Superseded = append(out.Superseded, existing)
		}

		d.logger.Info(
			"hos record detected",
			slog.String("driver_id", c.DriverID),
			slog.String("rule_id", string(c.RuleID)),
			slog.String("severity", string(c.Severity)),
			slog.Int("excess_minutes", c.ExcessMinutes),
		)

		out.Created = append(out.Created, c)
	}

	return out
}

// candidates derives the per-rule records that the balances currently
// justify. The 11- and 14-hour rules are evaluated independently: when both
// balances reach zero at once, both records are emitted.
func (d *Detector) candidates(
	log hos.DailyLog,
	res calc.Result,
	ruleset hos.Ruleset,
) []hos.Violation {
	now := d.now()
	var out []hos.Violation

	add := func(rule hos.RuleID, actual, allowed int, winStart, winEnd time.Time) {
		severity, ok := d.classify(actual, allowed)
		if !ok {
			return
		}

		out = append(out, hos.Violation{
			ID:             uuid.New().String(),
			DriverID:       log.DriverID,
			CarrierID:      log.CarrierID,
			RuleID:         rule,
			Severity:       severity,
			DetectedAt:     now,
			WindowStart:    winStart,
			WindowEnd:      winEnd,
			ActualMinutes:  actual,
			AllowedMinutes: allowed,
			ExcessMinutes:  clampExcess(actual - allowed),
			Status:         hos.ViolationOpen,
		})
	}

	add(
		hos.Rule11HourDriving,
		res.DrivingMinutes,
		res.AllowedDrivingMinutes,
		res.Anchor,
		now,
	)

	if !res.Remaining.WindowSuppressed && res.Remaining.WindowStart != nil {
		add(
			hos.Rule14HourWindow,
			res.WindowElapsedMinutes,
			res.AllowedWindowMinutes,
			*res.Remaining.WindowStart,
			now,
		)
	}

	add(
		ruleset.ID,
		res.CycleMinutes,
		ruleset.CycleLimitMinutes,
		res.CycleWindowStart,
		now,
	)

	return out
}

// classify maps an accumulated value to a severity. A balance at or past
// zero is a VIOLATION: the limit is an allowance, and using all of it
// exhausts it. Within the buffer of the limit is a WARNING; a warning
// never escalates on its own.
func (d *Detector) classify(
	actual int,
	allowed int,
) (hos.Severity, bool) {
	switch {
	case actual >= allowed:
		return hos.SeverityViolation, true
	case actual > 0 && allowed-actual <= d.warningBufferMinutes:
		return hos.SeverityWarning, true
	default:
		return "", false
	}
}

func clampExcess(
	minutes int,
) int {
	if minutes < 0 {
		return 0
	}

	return minutes
}
