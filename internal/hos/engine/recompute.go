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

package engine

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/fleethos-io/fleethos/internal/hos"
	"github.com/fleethos-io/fleethos/internal/hos/audittrail"
	"github.com/fleethos-io/fleethos/internal/hos/calc"
	"github.com/fleethos-io/fleethos/internal/hos/certify"
	"github.com/fleethos-io/fleethos/internal/telemetry"
)

// recomputeDay rebuilds one driver-day: reload the lookback window, run
// the calculator, diff violations, persist the log. The caller must hold
// the day's writer slot. Malformed historical data marks the log
// NeedsReview, persists that flag, and returns the error.
func (e *Engine) recomputeDay(
	ctx context.Context,
	info *DriverInfo,
	date string,
) (hos.DailyLog, error) {
	timer := prometheus.NewTimer(telemetry.RecomputeDuration)
	defer timer.ObserveDuration()

	loc, err := time.LoadLocation(info.Timezone)
	if err != nil {
		return hos.DailyLog{}, fmt.Errorf("loading timezone %q: %w", info.Timezone, err)
	}

	day, err := time.ParseInLocation(hos.DateFormat, date, loc)
	if err != nil {
		return hos.DailyLog{}, fmt.Errorf("parsing date %q: %w", date, err)
	}
	dayEnd := day.AddDate(0, 0, 1)

	log, err := e.loadOrInitLog(ctx, info, date)
	if err != nil {
		return hos.DailyLog{}, err
	}

	lookbackStart := day.AddDate(0, 0, -(hos.RecapDays - 1))

	window, err := e.eventLog.Window(ctx, info.ID, lookbackStart, dayEnd)
	if err != nil {
		return hos.DailyLog{}, fmt.Errorf("loading lookback window: %w", err)
	}

	res, err := calc.Compute(calc.Input{
		DriverID:  info.ID,
		Date:      date,
		Timezone:  info.Timezone,
		AsOf:      e.now(),
		Events:    window,
		Ruleset:   e.rulesetFor(info),
		ShortHaul: log.ShortHaul,
	})
	if err != nil {
		if errors.Is(err, hos.ErrMalformedHistoricalData) {
			return e.markNeedsReview(ctx, log, err)
		}
		return hos.DailyLog{}, err
	}

	log.Events = eventsForDay(window, day, dayEnd)
	log.Totals = res.Totals
	log.Remaining = res.Remaining
	log.Recap = res.Recap
	log.NeedsReview = false
	log.ReviewReason = ""

	if err := e.applyDetection(ctx, &log, res, e.rulesetFor(info)); err != nil {
		return hos.DailyLog{}, err
	}

	if err := e.stores.Logs.Put(ctx, log); err != nil {
		return hos.DailyLog{}, fmt.Errorf("storing daily log: %w", err)
	}

	e.logger.Debug(
		"daily log recomputed",
		slog.String("driver_id", info.ID),
		slog.String("date", date),
		slog.Int("driving_minutes", log.Totals.DrivingMinutes),
		slog.Int("remaining_cycle_minutes", log.Remaining.CycleMinutes),
	)

	return log, nil
}

// applyDetection diffs the calculator output against open records, stores
// new ones, resolves superseded warnings, and dispatches notifications.
func (e *Engine) applyDetection(
	ctx context.Context,
	log *hos.DailyLog,
	res calc.Result,
	ruleset hos.Ruleset,
) error {
	open, err := e.stores.Violations.ListOpen(ctx, log.DriverID)
	if err != nil {
		return fmt.Errorf("loading open violations: %w", err)
	}

	outcome := e.detector.Detect(*log, res, ruleset, open)

	now := e.now()
	for _, w := range outcome.Superseded {
		w.Status = hos.ViolationResolved
		w.ResolvedAt = &now
		w.ResolvedBy = "system"
		w.ResolutionNote = "limit crossed, warning superseded by violation"

		if err := e.stores.Violations.Put(ctx, w); err != nil {
			return fmt.Errorf("resolving superseded warning: %w", err)
		}
	}

	for _, v := range outcome.Created {
		if err := e.stores.Violations.Put(ctx, v); err != nil {
			return fmt.Errorf("storing violation: %w", err)
		}

		telemetry.ViolationsDetected.WithLabelValues(string(v.RuleID), string(v.Severity)).Inc()
		log.ViolationIDs = appendUnique(log.ViolationIDs, v.ID)

		if v.Severity != hos.SeverityViolation {
			continue
		}

		// Notification failures never roll back detection.
		if err := e.notifier.Notify(ctx, v); err != nil {
			e.logger.Error(
				"dispatching violation notification",
				slog.String("violation_id", v.ID),
				slog.String("driver_id", v.DriverID),
				slog.Any("error", err),
			)
		}
	}

	return nil
}

// markNeedsReview flags the log instead of publishing balances computed
// over untrustworthy history. The flag itself is audited.
func (e *Engine) markNeedsReview(
	ctx context.Context,
	log hos.DailyLog,
	cause error,
) (hos.DailyLog, error) {
	log.NeedsReview = true
	log.ReviewReason = cause.Error()

	if err := e.stores.Logs.Put(ctx, log); err != nil {
		return hos.DailyLog{}, fmt.Errorf("storing needs-review flag: %w", err)
	}

	if _, err := e.trail.Record(ctx, audittrail.Entry{
		TargetType: audittrail.TargetDailyLog,
		TargetID:   log.DriverID + "|" + log.Date,
		Action:     "needs_review",
		Actor:      "system",
		DriverID:   log.DriverID,
		Date:       log.Date,
		Reason:     cause.Error(),
	}); err != nil {
		e.logger.Error("recording needs-review audit entry", slog.Any("error", err))
	}

	e.logger.Warn(
		"daily log flagged for review",
		slog.String("driver_id", log.DriverID),
		slog.String("date", log.Date),
		slog.Any("error", cause),
	)

	return log, cause
}

// loadOrInitLog fetches the stored log for a driver-day, or builds the
// empty draft when none exists yet.
func (e *Engine) loadOrInitLog(
	ctx context.Context,
	info *DriverInfo,
	date string,
) (hos.DailyLog, error) {
	existing, err := e.stores.Logs.Get(ctx, info.ID, date)
	if err != nil && !errors.Is(err, hos.ErrNotFound) {
		return hos.DailyLog{}, fmt.Errorf("loading daily log: %w", err)
	}

	if existing != nil {
		return *existing, nil
	}

	return hos.DailyLog{
		DriverID:  info.ID,
		CarrierID: info.CarrierID,
		Date:      date,
		Timezone:  info.Timezone,
		State:     hos.StateDraft,
	}, nil
}

// recomputeCascade rebuilds a run of days in order, taking and releasing
// each day's writer slot. Days after `from` are affected because their
// lookback windows reach back into it; the run is bounded by the lookback
// depth and never extends past today.
func (e *Engine) recomputeCascade(
	ctx context.Context,
	info *DriverInfo,
	from string,
	loc *time.Location,
) error {
	first, err := time.ParseInLocation(hos.DateFormat, from, loc)
	if err != nil {
		return fmt.Errorf("parsing date %q: %w", from, err)
	}

	today := e.now().In(loc)
	last := first.AddDate(0, 0, hos.RecapDays-1)
	if last.After(today) {
		last = today
	}

	for d := first; !d.After(last); d = d.AddDate(0, 0, 1) {
		date := d.Format(hos.DateFormat)

		release, ok := e.locks.acquire(ctx, lockKey(info.ID, date), e.lockTimeout)
		if !ok {
			return fmt.Errorf("driver %s date %s: %w", info.ID, date, hos.ErrRecomputationTimeout)
		}

		_, err := e.recomputeDay(ctx, info, date)
		release()

		if err != nil {
			return err
		}
	}

	return nil
}

// Sweep recomputes a driver's previous and current local days. Rule
// windows roll forward with the clock, so a day with no new events can
// still cross a cycle limit; periodic sweeps surface those violations.
// A completed draft day is also moved to PENDING_CERTIFICATION so it
// shows up as awaiting the driver's signature.
func (e *Engine) Sweep(
	ctx context.Context,
	driverID string,
) error {
	info, err := e.directory.Driver(ctx, driverID)
	if err != nil {
		return err
	}

	loc, err := time.LoadLocation(info.Timezone)
	if err != nil {
		return fmt.Errorf("loading timezone %q: %w", info.Timezone, err)
	}

	today := e.now().In(loc)
	days := []string{
		today.AddDate(0, 0, -1).Format(hos.DateFormat),
		today.Format(hos.DateFormat),
	}

	for i, date := range days {
		release, ok := e.locks.acquire(ctx, lockKey(info.ID, date), e.lockTimeout)
		if !ok {
			return fmt.Errorf("driver %s date %s: %w", info.ID, date, hos.ErrRecomputationTimeout)
		}

		log, err := e.recomputeDay(ctx, info, date)
		if err == nil && i == 0 {
			// Yesterday is complete: an unsigned draft now awaits the
			// driver's signature.
			err = e.markPending(ctx, log)
		}
		release()

		if err != nil {
			return err
		}
	}

	return nil
}

// markPending moves a completed day still in DRAFT to
// PENDING_CERTIFICATION and audits the transition.
func (e *Engine) markPending(
	ctx context.Context,
	log hos.DailyLog,
) error {
	next := certify.TransitionComplete(log.State)
	if next == log.State {
		return nil
	}
	log.State = next

	if err := e.stores.Logs.Put(ctx, log); err != nil {
		return fmt.Errorf("storing daily log: %w", err)
	}

	if _, err := e.trail.Record(ctx, audittrail.Entry{
		TargetType: audittrail.TargetCertification,
		TargetID:   log.DriverID + "|" + log.Date,
		Action:     "certification.pending",
		Actor:      "system",
		DriverID:   log.DriverID,
		Date:       log.Date,
	}); err != nil {
		return fmt.Errorf("recording audit entry: %w", err)
	}

	return nil
}

// eventsForDay filters the lookback window down to the events touching one
// local day.
func eventsForDay(
	events []hos.DutyEvent,
	dayStart time.Time,
	dayEnd time.Time,
) []hos.DutyEvent {
	var out []hos.DutyEvent

	for _, ev := range events {
		if ev.EndTime != nil && !ev.EndTime.After(dayStart) {
			continue
		}
		if !ev.StartTime.Before(dayEnd) {
			continue
		}
		out = append(out, ev)
	}

	return out
}

func appendUnique(
	ids []string,
	id string,
) []string {
	for _, existing := range ids {
		if existing == id {
			return ids
		}
	}

	return append(ids, id)
}
