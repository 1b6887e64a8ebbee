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
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/fleethos-io/fleethos/internal/hos"
	"github.com/fleethos-io/fleethos/internal/hos/audittrail"
	"github.com/fleethos-io/fleethos/internal/hos/calc"
	"github.com/fleethos-io/fleethos/internal/hos/certify"
	"github.com/fleethos-io/fleethos/internal/hos/eventlog"
	"github.com/fleethos-io/fleethos/internal/hos/store"
	"github.com/fleethos-io/fleethos/internal/telemetry"
)

// AppendOutput is the result of AppendEvent.
type AppendOutput struct {
	// Event is the stored event (the existing one on a duplicate).
	Event hos.DutyEvent
	// Log is the recomputed daily log for the event's day.
	Log hos.DailyLog
	// Duplicate is true when an identical event already existed and the
	// append was a no-op.
	Duplicate bool
}

// AppendEvent records a new duty-status change, closes any open interval,
// and recomputes every affected day. Re-submitting an identical event is a
// no-op, not an error.
func (e *Engine) AppendEvent(
	ctx context.Context,
	event hos.DutyEvent,
	actor string,
) (AppendOutput, error) {
	info, err := e.directory.Driver(ctx, event.DriverID)
	if err != nil {
		return AppendOutput{}, err
	}

	if event.VehicleID != "" {
		known, err := e.directory.VehicleExists(ctx, event.VehicleID)
		if err != nil {
			return AppendOutput{}, err
		}
		if !known {
			return AppendOutput{}, fmt.Errorf(
				"vehicle %s: %w", event.VehicleID, hos.ErrUnknownDriverOrVehicle,
			)
		}
	}

	loc, err := time.LoadLocation(info.Timezone)
	if err != nil {
		return AppendOutput{}, fmt.Errorf("loading timezone %q: %w", info.Timezone, err)
	}
	date := event.StartTime.In(loc).Format(hos.DateFormat)

	// Closing the driver's open event rewrites it under its own day, so
	// when that event started on an earlier local day both days' writer
	// slots are needed, taken in date order like AmendEvent takes them.
	dates := []string{date}
	open, err := e.stores.Events.Open(ctx, info.ID)
	if err != nil {
		return AppendOutput{}, fmt.Errorf("loading open event: %w", err)
	}
	if open != nil {
		openDate := open.StartTime.In(loc).Format(hos.DateFormat)
		if openDate < date {
			dates = []string{openDate, date}
		} else if openDate > date {
			dates = append(dates, openDate)
		}
	}

	var releases []func()
	for _, d := range dates {
		release, ok := e.locks.acquire(ctx, lockKey(info.ID, d), e.lockTimeout)
		if !ok {
			for _, r := range releases {
				r()
			}
			return AppendOutput{}, fmt.Errorf(
				"driver %s date %s: %w", info.ID, d, hos.ErrRecomputationTimeout,
			)
		}
		releases = append(releases, release)
	}

	out, firstAffected, err := e.appendLocked(ctx, info, event, date, actor, loc)
	for _, r := range releases {
		r()
	}
	if err != nil {
		return AppendOutput{}, err
	}

	if err := e.recomputeCascade(ctx, info, firstAffected, loc); err != nil {
		return AppendOutput{}, err
	}

	log, err := e.stores.Logs.Get(ctx, info.ID, date)
	if err != nil {
		return AppendOutput{}, fmt.Errorf("loading daily log: %w", err)
	}
	out.Log = *log

	return out, nil
}

// appendLocked performs the append under the day's writer slot and returns
// the earliest local date whose balances the mutation touched.
func (e *Engine) appendLocked(
	ctx context.Context,
	info *DriverInfo,
	event hos.DutyEvent,
	date string,
	actor string,
	loc *time.Location,
) (AppendOutput, string, error) {
	log, err := e.loadOrInitLog(ctx, info, date)
	if err != nil {
		return AppendOutput{}, "", err
	}

	if log.State == hos.StateCertified {
		return AppendOutput{}, "", fmt.Errorf(
			"day %s is certified, amend instead: %w", date, hos.ErrIllegalTransition,
		)
	}

	res, err := e.eventLog.Append(ctx, event)
	if err != nil {
		return AppendOutput{}, "", err
	}

	if res.Duplicate {
		return AppendOutput{Event: res.Event, Duplicate: true}, date, nil
	}

	telemetry.EventsAppended.Inc()

	newValue, _ := json.Marshal(res.Event)
	if _, err := e.trail.Record(ctx, audittrail.Entry{
		TargetType: audittrail.TargetEvent,
		TargetID:   res.Event.ID,
		Action:     "event.append",
		Actor:      actor,
		DriverID:   info.ID,
		Date:       date,
		NewValue:   newValue,
	}); err != nil {
		return AppendOutput{}, "", fmt.Errorf("recording audit entry: %w", err)
	}

	firstAffected := date
	if res.ClosedPrevious != nil {
		prev := res.ClosedPrevious.StartTime.In(loc).Format(hos.DateFormat)
		if prev < firstAffected {
			firstAffected = prev
		}
	}

	return AppendOutput{Event: res.Event}, firstAffected, nil
}

// AmendOutput is the result of AmendEvent.
type AmendOutput struct {
	// Original is the superseded event, still retrievable.
	Original hos.DutyEvent
	// Amended is the replacement event.
	Amended hos.DutyEvent
	// Log is the recomputed daily log for the amended day.
	Log hos.DailyLog
}

// AmendEvent supersedes an event with an edited copy and recomputes every
// day whose rolling windows the edit can reach. Amending a day that has
// been certified requires a reason and moves the log to AMENDED; its
// pre-amendment certified snapshot stays retrievable verbatim.
func (e *Engine) AmendEvent(
	ctx context.Context,
	eventID string,
	changes eventlog.Changes,
	reason string,
	actor string,
) (AmendOutput, error) {
	original, err := e.stores.Events.Find(ctx, eventID)
	if err != nil {
		return AmendOutput{}, err
	}

	info, err := e.directory.Driver(ctx, original.DriverID)
	if err != nil {
		return AmendOutput{}, err
	}

	loc, err := time.LoadLocation(info.Timezone)
	if err != nil {
		return AmendOutput{}, fmt.Errorf("loading timezone %q: %w", info.Timezone, err)
	}

	origDate := original.StartTime.In(loc).Format(hos.DateFormat)
	newDate := origDate
	if changes.StartTime != nil {
		newDate = changes.StartTime.In(loc).Format(hos.DateFormat)
	}

	dates := []string{origDate}
	if newDate != origDate {
		if newDate < origDate {
			dates = []string{newDate, origDate}
		} else {
			dates = append(dates, newDate)
		}
	}

	// Writer slots are taken in date order so two concurrent amendments
	// touching the same pair of days cannot deadlock.
	var releases []func()
	for _, d := range dates {
		release, ok := e.locks.acquire(ctx, lockKey(info.ID, d), e.lockTimeout)
		if !ok {
			for _, r := range releases {
				r()
			}
			return AmendOutput{}, fmt.Errorf(
				"driver %s date %s: %w", info.ID, d, hos.ErrRecomputationTimeout,
			)
		}
		releases = append(releases, release)
	}

	out, err := e.amendLocked(ctx, info, *original, changes, reason, actor, dates)
	for _, r := range releases {
		r()
	}
	if err != nil {
		return AmendOutput{}, err
	}

	if err := e.recomputeCascade(ctx, info, dates[0], loc); err != nil {
		return AmendOutput{}, err
	}

	log, err := e.stores.Logs.Get(ctx, info.ID, newDate)
	if err != nil {
		return AmendOutput{}, fmt.Errorf("loading daily log: %w", err)
	}
	out.Log = *log

	return out, nil
}

// amendLocked performs the amendment under the affected days' writer
// slots: reason policy, the event swap, version bumps, state transitions,
// and the audit entries.
func (e *Engine) amendLocked(
	ctx context.Context,
	info *DriverInfo,
	original hos.DutyEvent,
	changes eventlog.Changes,
	reason string,
	actor string,
	dates []string,
) (AmendOutput, error) {
	logs := make([]hos.DailyLog, len(dates))
	for i, d := range dates {
		log, err := e.loadOrInitLog(ctx, info, d)
		if err != nil {
			return AmendOutput{}, err
		}
		logs[i] = log

		certified := log.State == hos.StateCertified || log.State == hos.StateAmended
		if certified && reason == "" {
			return AmendOutput{}, fmt.Errorf(
				"driver %s date %s: %w", info.ID, d, hos.ErrEditAfterCertificationWithoutReason,
			)
		}
	}

	res, err := e.eventLog.Amend(ctx, original.ID, changes, reason, actor)
	if err != nil {
		return AmendOutput{}, err
	}

	telemetry.EventsAmended.Inc()

	prevValue, _ := json.Marshal(res.Original)
	newValue, _ := json.Marshal(res.Amended)
	if _, err := e.trail.Record(ctx, audittrail.Entry{
		TargetType:    audittrail.TargetEvent,
		TargetID:      res.Original.ID,
		Action:        "event.amend",
		Actor:         actor,
		DriverID:      info.ID,
		Date:          dates[0],
		PreviousValue: prevValue,
		NewValue:      newValue,
		Reason:        reason,
	}); err != nil {
		return AmendOutput{}, fmt.Errorf("recording audit entry: %w", err)
	}

	for _, log := range logs {
		prevState := log.State
		log.State = certify.TransitionAmend(log.State)
		log.Version++

		if err := e.stores.Logs.Put(ctx, log); err != nil {
			return AmendOutput{}, fmt.Errorf("storing daily log: %w", err)
		}

		if prevState == log.State {
			continue
		}

		if _, err := e.trail.Record(ctx, audittrail.Entry{
			TargetType:    audittrail.TargetCertification,
			TargetID:      log.DriverID + "|" + log.Date,
			Action:        "certification.amend",
			Actor:         actor,
			DriverID:      log.DriverID,
			Date:          log.Date,
			PreviousValue: json.RawMessage(`"` + string(prevState) + `"`),
			NewValue:      json.RawMessage(`"` + string(log.State) + `"`),
			Reason:        reason,
		}); err != nil {
			return AmendOutput{}, fmt.Errorf("recording audit entry: %w", err)
		}
	}

	return AmendOutput{Original: res.Original, Amended: res.Amended}, nil
}

// Certify applies the driver's signature to a day. The day is recomputed
// synchronously first so the signature covers current balances, then the
// log and its violation set are frozen into an immutable snapshot.
// Re-certifying an unchanged day with the same signature is idempotent; a
// concurrent certification of the same day fails fast with a conflict.
func (e *Engine) Certify(
	ctx context.Context,
	driverID string,
	date string,
	signature string,
	actor string,
) (hos.CertifiedSnapshot, error) {
	info, err := e.directory.Driver(ctx, driverID)
	if err != nil {
		return hos.CertifiedSnapshot{}, err
	}

	release, ok := e.locks.tryAcquire(lockKey(driverID, date))
	if !ok {
		return hos.CertifiedSnapshot{}, fmt.Errorf(
			"driver %s date %s: %w", driverID, date, hos.ErrCertificationConflict,
		)
	}
	defer release()

	current, err := e.loadOrInitLog(ctx, info, date)
	if err != nil {
		return hos.CertifiedSnapshot{}, err
	}

	if current.State == hos.StateCertified {
		snap, err := e.latestSnapshot(ctx, driverID, date)
		if err != nil {
			return hos.CertifiedSnapshot{}, err
		}
		if snap != nil && snap.Signature == signature && snap.Version == current.Version {
			return *snap, nil
		}
	}

	log, err := e.recomputeDay(ctx, info, date)
	if err != nil {
		return hos.CertifiedSnapshot{}, err
	}

	state, err := certify.TransitionCertify(log.State)
	if err != nil {
		return hos.CertifiedSnapshot{}, err
	}

	now := e.now()
	log.State = state
	log.CertifiedAt = &now
	log.CertifiedBy = actor

	violations, err := e.violationsByID(ctx, log.ViolationIDs)
	if err != nil {
		return hos.CertifiedSnapshot{}, err
	}

	snap, err := certify.Freeze(log, violations, signature, actor, now)
	if err != nil {
		return hos.CertifiedSnapshot{}, err
	}

	if err := e.stores.Snapshots.Put(ctx, snap); err != nil {
		return hos.CertifiedSnapshot{}, fmt.Errorf("storing snapshot: %w", err)
	}

	if err := e.stores.Logs.Put(ctx, log); err != nil {
		return hos.CertifiedSnapshot{}, fmt.Errorf("storing daily log: %w", err)
	}

	if _, err := e.trail.Record(ctx, audittrail.Entry{
		TargetType: audittrail.TargetCertification,
		TargetID:   driverID + "|" + date,
		Action:     "certify",
		Actor:      actor,
		DriverID:   driverID,
		Date:       date,
		NewValue:   json.RawMessage(`"` + string(log.State) + `"`),
	}); err != nil {
		return hos.CertifiedSnapshot{}, fmt.Errorf("recording audit entry: %w", err)
	}

	telemetry.LogsCertified.Inc()

	e.logger.Info(
		"daily log certified",
		slog.String("driver_id", driverID),
		slog.String("date", date),
		slog.Int("version", snap.Version),
	)

	return snap, nil
}

// GetDailyLog returns the driver's log for a local date. When no stored
// log exists yet the day is computed read-only, without persisting
// anything.
func (e *Engine) GetDailyLog(
	ctx context.Context,
	driverID string,
	date string,
) (hos.DailyLog, error) {
	info, err := e.directory.Driver(ctx, driverID)
	if err != nil {
		return hos.DailyLog{}, err
	}

	stored, err := e.stores.Logs.Get(ctx, driverID, date)
	if err != nil && !errors.Is(err, hos.ErrNotFound) {
		return hos.DailyLog{}, fmt.Errorf("loading daily log: %w", err)
	}
	if stored != nil {
		return *stored, nil
	}

	return e.readLog(ctx, info, date)
}

// Snapshots returns all certified snapshots for a driver-day, oldest
// first. The Raw bytes of each are exactly as frozen at signing time.
func (e *Engine) Snapshots(
	ctx context.Context,
	driverID string,
	date string,
) ([]hos.CertifiedSnapshot, error) {
	return e.stores.Snapshots.List(ctx, driverID, date)
}

// Summary is the point-in-time answer to "can this driver keep driving".
type Summary struct {
	// DriverID identifies the driver.
	DriverID string `json:"driver_id"`
	// CarrierID identifies the motor carrier.
	CarrierID string `json:"carrier_id"`
	// AsOf is the instant the balances were computed.
	AsOf time.Time `json:"as_of"`
	// Date is the local calendar day AsOf falls on.
	Date string `json:"date"`
	// Ruleset is the cycle ruleset in force.
	Ruleset hos.RuleID `json:"ruleset"`
	// Remaining holds the clamped rule balances.
	Remaining hos.Remaining `json:"remaining"`
	// Recap is the trailing 8-day cycle recap.
	Recap []hos.RecapDay `json:"recap"`
	// CycleMinutes is the rolling on-duty sum over the cycle window.
	CycleMinutes int `json:"cycle_minutes"`
	// NeedsReview is true when the balances could not be trusted.
	NeedsReview bool `json:"needs_review,omitempty"`
}

// GetHOSSummary computes the driver's remaining balances as of now. The
// read is computed fresh from the event log and persists nothing.
func (e *Engine) GetHOSSummary(
	ctx context.Context,
	driverID string,
) (Summary, error) {
	info, err := e.directory.Driver(ctx, driverID)
	if err != nil {
		return Summary{}, err
	}

	loc, err := time.LoadLocation(info.Timezone)
	if err != nil {
		return Summary{}, fmt.Errorf("loading timezone %q: %w", info.Timezone, err)
	}

	now := e.now()
	date := now.In(loc).Format(hos.DateFormat)

	log, res, err := e.computeDay(ctx, info, date)
	if err != nil {
		if errors.Is(err, hos.ErrMalformedHistoricalData) {
			return Summary{
				DriverID:    driverID,
				CarrierID:   info.CarrierID,
				AsOf:        now,
				Date:        date,
				Ruleset:     e.rulesetFor(info).ID,
				NeedsReview: true,
			}, err
		}
		return Summary{}, err
	}

	return Summary{
		DriverID:     driverID,
		CarrierID:    info.CarrierID,
		AsOf:         now,
		Date:         date,
		Ruleset:      e.rulesetFor(info).ID,
		Remaining:    log.Remaining,
		Recap:        log.Recap,
		CycleMinutes: res.CycleMinutes,
	}, nil
}

// ListViolations returns violation records matching the filter, newest
// first.
func (e *Engine) ListViolations(
	ctx context.Context,
	filter store.ViolationFilter,
) ([]hos.Violation, error) {
	return e.stores.Violations.List(ctx, filter)
}

// UpdateViolationStatus moves a violation through its review lifecycle.
func (e *Engine) UpdateViolationStatus(
	ctx context.Context,
	id string,
	status hos.ViolationStatus,
	note string,
	actor string,
) (hos.Violation, error) {
	v, err := e.stores.Violations.Get(ctx, id)
	if err != nil {
		return hos.Violation{}, err
	}

	if !statusTransitionAllowed(v.Status, status) {
		return hos.Violation{}, fmt.Errorf(
			"violation %s: %s to %s: %w", id, v.Status, status, hos.ErrIllegalTransition,
		)
	}

	prev := v.Status
	v.Status = status
	if status == hos.ViolationResolved {
		now := e.now()
		v.ResolvedAt = &now
		v.ResolvedBy = actor
		v.ResolutionNote = note
	}

	if err := e.stores.Violations.Put(ctx, *v); err != nil {
		return hos.Violation{}, fmt.Errorf("storing violation: %w", err)
	}

	if _, err := e.trail.Record(ctx, audittrail.Entry{
		TargetType:    audittrail.TargetViolation,
		TargetID:      v.ID,
		Action:        "violation.status",
		Actor:         actor,
		DriverID:      v.DriverID,
		PreviousValue: json.RawMessage(`"` + string(prev) + `"`),
		NewValue:      json.RawMessage(`"` + string(status) + `"`),
		Reason:        note,
	}); err != nil {
		return hos.Violation{}, fmt.Errorf("recording audit entry: %w", err)
	}

	return *v, nil
}

// SetShortHaul toggles the short-haul exemption for a day and recomputes
// it so the 14-hour suppression takes effect immediately.
func (e *Engine) SetShortHaul(
	ctx context.Context,
	driverID string,
	date string,
	enabled bool,
	actor string,
) (hos.DailyLog, error) {
	info, err := e.directory.Driver(ctx, driverID)
	if err != nil {
		return hos.DailyLog{}, err
	}

	release, ok := e.locks.acquire(ctx, lockKey(driverID, date), e.lockTimeout)
	if !ok {
		return hos.DailyLog{}, fmt.Errorf(
			"driver %s date %s: %w", driverID, date, hos.ErrRecomputationTimeout,
		)
	}
	defer release()

	log, err := e.loadOrInitLog(ctx, info, date)
	if err != nil {
		return hos.DailyLog{}, err
	}

	if log.State == hos.StateCertified {
		return hos.DailyLog{}, fmt.Errorf(
			"day %s is certified: %w", date, hos.ErrIllegalTransition,
		)
	}

	if log.ShortHaul == enabled {
		return log, nil
	}

	log.ShortHaul = enabled
	if err := e.stores.Logs.Put(ctx, log); err != nil {
		return hos.DailyLog{}, fmt.Errorf("storing daily log: %w", err)
	}

	if _, err := e.trail.Record(ctx, audittrail.Entry{
		TargetType: audittrail.TargetDailyLog,
		TargetID:   driverID + "|" + date,
		Action:     "short_haul",
		Actor:      actor,
		DriverID:   driverID,
		Date:       date,
		NewValue:   json.RawMessage(fmt.Sprintf("%t", enabled)),
	}); err != nil {
		return hos.DailyLog{}, fmt.Errorf("recording audit entry: %w", err)
	}

	return e.recomputeDay(ctx, info, date)
}

// AuditTrail exposes the ledger for the query surfaces.
func (e *Engine) AuditTrail() *audittrail.Trail {
	return e.trail
}

// computeDay runs the calculator read-only over the driver's lookback
// window for one date.
func (e *Engine) computeDay(
	ctx context.Context,
	info *DriverInfo,
	date string,
) (hos.DailyLog, calc.Result, error) {
	loc, err := time.LoadLocation(info.Timezone)
	if err != nil {
		return hos.DailyLog{}, calc.Result{}, fmt.Errorf(
			"loading timezone %q: %w", info.Timezone, err,
		)
	}

	day, err := time.ParseInLocation(hos.DateFormat, date, loc)
	if err != nil {
		return hos.DailyLog{}, calc.Result{}, fmt.Errorf("parsing date %q: %w", date, err)
	}
	dayEnd := day.AddDate(0, 0, 1)

	log, err := e.loadOrInitLog(ctx, info, date)
	if err != nil {
		return hos.DailyLog{}, calc.Result{}, err
	}

	window, err := e.eventLog.Window(ctx, info.ID, day.AddDate(0, 0, -(hos.RecapDays-1)), dayEnd)
	if err != nil {
		return hos.DailyLog{}, calc.Result{}, fmt.Errorf("loading lookback window: %w", err)
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
		return hos.DailyLog{}, calc.Result{}, err
	}

	log.Events = eventsForDay(window, day, dayEnd)
	log.Totals = res.Totals
	log.Remaining = res.Remaining
	log.Recap = res.Recap

	return log, res, nil
}

// readLog is computeDay without the calc.Result, for the query path.
func (e *Engine) readLog(
	ctx context.Context,
	info *DriverInfo,
	date string,
) (hos.DailyLog, error) {
	log, _, err := e.computeDay(ctx, info, date)
	return log, err
}

// latestSnapshot returns the most recent snapshot for a driver-day, or nil
// when none exists.
func (e *Engine) latestSnapshot(
	ctx context.Context,
	driverID string,
	date string,
) (*hos.CertifiedSnapshot, error) {
	snaps, err := e.stores.Snapshots.List(ctx, driverID, date)
	if err != nil {
		return nil, fmt.Errorf("loading snapshots: %w", err)
	}
	if len(snaps) == 0 {
		return nil, nil
	}

	return &snaps[len(snaps)-1], nil
}

// violationsByID resolves the log's violation references for freezing.
func (e *Engine) violationsByID(
	ctx context.Context,
	ids []string,
) ([]hos.Violation, error) {
	var out []hos.Violation

	for _, id := range ids {
		v, err := e.stores.Violations.Get(ctx, id)
		if err != nil {
			if errors.Is(err, hos.ErrNotFound) {
				continue
			}
			return nil, fmt.Errorf("loading violation %s: %w", id, err)
		}
		out = append(out, *v)
	}

	return out, nil
}

// statusTransitionAllowed encodes the violation review lifecycle: open
// records can be acknowledged, disputed, or resolved; acknowledged and
// disputed records can only be resolved; resolved is terminal.
func statusTransitionAllowed(
	from hos.ViolationStatus,
	to hos.ViolationStatus,
) bool {
	switch from {
	case hos.ViolationOpen:
		return to == hos.ViolationAcknowledged ||
			to == hos.ViolationDisputed ||
			to == hos.ViolationResolved
	case hos.ViolationAcknowledged, hos.ViolationDisputed:
		return to == hos.ViolationResolved
	default:
		return false
	}
}
