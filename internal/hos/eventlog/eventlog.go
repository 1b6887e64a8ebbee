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

// Package eventlog maintains the append-only per-driver duty-status event
// log: chronological ordering, non-overlap, single open event, idempotent
// append, and versioned amendments.
package eventlog

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/fleethos-io/fleethos/internal/hos"
	"github.com/fleethos-io/fleethos/internal/hos/store"
)

// overlapScanDays bounds how far back Append looks for conflicting
// events. Nothing older can overlap a new event that passed the ordering
// check against the most recent event.
const overlapScanDays = 2

// Log enforces the structural invariants of a driver's event sequence.
type Log struct {
	logger *slog.Logger
	events store.EventStore
	now    func() time.Time
}

// Option configures the Log.
type Option func(*Log)

// WithClock overrides the time source. Used by tests.
func WithClock(
	now func() time.Time,
) Option {
	return func(l *Log) {
		l.now = now
	}
}

// New creates a new Log.
func New(
	logger *slog.Logger,
	events store.EventStore,
	opts ...Option,
) *Log {
	l := &Log{
		logger: logger,
		events: events,
		now:    time.Now,
	}

	for _, opt := range opts {
		opt(l)
	}

	return l
}

// AppendResult reports what an append actually did.
type AppendResult struct {
	// Event is the stored event (the existing one on a duplicate).
	Event hos.DutyEvent
	// ClosedPrevious is the previously open event that the append closed,
	// when there was one.
	ClosedPrevious *hos.DutyEvent
	// Duplicate is true when an identical event already existed and
	// nothing was written.
	Duplicate bool
}

// Append validates and stores a new duty event. Re-submitting an identical
// event (same driver, start time, and status) is a no-op, so a caller
// retrying after a timeout never creates a duplicate. When the driver's
// previous event is still open it is closed at the new event's start.
func (l *Log) Append(
	ctx context.Context,
	event hos.DutyEvent,
) (AppendResult, error) {
	recent, err := l.events.ListRange(
		ctx,
		event.DriverID,
		event.StartTime.AddDate(0, 0, -overlapScanDays),
		event.StartTime.AddDate(0, 0, overlapScanDays),
	)
	if err != nil {
		return AppendResult{}, fmt.Errorf("loading events: %w", err)
	}

	for _, existing := range recent {
		if existing.Superseded {
			continue
		}
		if existing.StartTime.Equal(event.StartTime) && existing.Status == event.Status {
			return AppendResult{Event: existing, Duplicate: true}, nil
		}
	}

	open, err := l.events.Open(ctx, event.DriverID)
	if err != nil {
		return AppendResult{}, fmt.Errorf("loading open event: %w", err)
	}

	if open != nil && !event.StartTime.After(open.StartTime) {
		return AppendResult{}, fmt.Errorf(
			"event starts %s, open event started %s: %w",
			event.StartTime.Format(time.RFC3339),
			open.StartTime.Format(time.RFC3339),
			hos.ErrInvalidEventOrdering,
		)
	}

	for _, existing := range recent {
		if existing.Superseded || (open != nil && existing.ID == open.ID) {
			continue
		}
		if existing.EndTime != nil && event.StartTime.Before(*existing.EndTime) &&
			!event.StartTime.Before(existing.StartTime) {
			return AppendResult{}, fmt.Errorf(
				"event starts inside event %s: %w",
				existing.ID, hos.ErrOverlappingEvent,
			)
		}
		if existing.EndTime != nil && event.StartTime.Before(existing.StartTime) {
			return AppendResult{}, fmt.Errorf(
				"event starts before the end of the log: %w",
				hos.ErrInvalidEventOrdering,
			)
		}
	}

	var result AppendResult

	if open != nil {
		closed := *open
		closed.Close(event.StartTime)
		if err := l.events.Put(ctx, closed); err != nil {
			return AppendResult{}, fmt.Errorf("closing open event: %w", err)
		}
		result.ClosedPrevious = &closed
	}

	if event.ID == "" {
		event.ID = uuid.New().String()
	}
	event.CreatedAt = l.now()
	if event.EndTime != nil {
		event.DurationMinutes = int(event.EndTime.Sub(event.StartTime) / time.Minute)
	}

	if err := l.events.Put(ctx, event); err != nil {
		return AppendResult{}, fmt.Errorf("storing event: %w", err)
	}

	l.logger.Debug(
		"duty event appended",
		slog.String("driver_id", event.DriverID),
		slog.String("event_id", event.ID),
		slog.String("status", string(event.Status)),
	)

	result.Event = event

	return result, nil
}

// Changes is the set of amendable event fields. Nil fields are untouched.
type Changes struct {
	// Status replaces the duty status.
	Status *hos.DutyStatus
	// StartTime replaces the interval start.
	StartTime *time.Time
	// EndTime replaces the interval end.
	EndTime *time.Time
	// VehicleID replaces the vehicle reference.
	VehicleID *string
	// Location replaces the reported location.
	Location *string
	// OdometerMiles replaces the odometer reading.
	OdometerMiles *float64
	// Annotation replaces the driver remark.
	Annotation *string
	// AdverseConditions replaces the adverse-conditions flag.
	AdverseConditions *bool
}

// AmendResult carries both sides of an amendment.
type AmendResult struct {
	// Original is the superseded event, still retrievable.
	Original hos.DutyEvent
	// Amended is the replacement event carrying a fresh identity.
	Amended hos.DutyEvent
}

// Amend supersedes an event with an edited copy. The original is kept
// retrievable and marked superseded; the copy records who edited it and
// why, and links back via SupersedesEventID.
func (l *Log) Amend(
	ctx context.Context,
	eventID string,
	changes Changes,
	reason string,
	actor string,
) (AmendResult, error) {
	original, err := l.events.Find(ctx, eventID)
	if err != nil {
		return AmendResult{}, err
	}

	if original.Superseded {
		return AmendResult{}, fmt.Errorf(
			"event %s is already superseded: %w", eventID, hos.ErrNotFound,
		)
	}

	amended := *original
	amended.ID = uuid.New().String()
	amended.SupersedesEventID = original.ID
	amended.Superseded = false
	amended.Edited = true
	amended.EditReason = reason
	amended.EditedBy = actor
	amended.CreatedAt = l.now()

	applyChanges(&amended, changes)

	if amended.EndTime != nil {
		if !amended.EndTime.After(amended.StartTime) {
			return AmendResult{}, fmt.Errorf(
				"amended interval is empty: %w", hos.ErrInvalidEventOrdering,
			)
		}
		amended.DurationMinutes = int(amended.EndTime.Sub(amended.StartTime) / time.Minute)
	}

	if err := l.checkAmendedPlacement(ctx, *original, amended); err != nil {
		return AmendResult{}, err
	}

	superseded := *original
	superseded.Superseded = true

	if err := l.events.Put(ctx, superseded); err != nil {
		return AmendResult{}, fmt.Errorf("superseding event: %w", err)
	}
	if err := l.events.Put(ctx, amended); err != nil {
		return AmendResult{}, fmt.Errorf("storing amended event: %w", err)
	}

	l.logger.Info(
		"duty event amended",
		slog.String("driver_id", amended.DriverID),
		slog.String("event_id", amended.ID),
		slog.String("supersedes", original.ID),
		slog.String("actor", actor),
	)

	return AmendResult{Original: superseded, Amended: amended}, nil
}

// Window returns the driver's live events touching [from, to), ascending.
// Superseded events are excluded; read-only.
func (l *Log) Window(
	ctx context.Context,
	driverID string,
	from time.Time,
	to time.Time,
) ([]hos.DutyEvent, error) {
	events, err := l.events.ListRange(ctx, driverID, from, to)
	if err != nil {
		return nil, fmt.Errorf("loading events: %w", err)
	}

	live := make([]hos.DutyEvent, 0, len(events))
	for _, ev := range events {
		if !ev.Superseded {
			live = append(live, ev)
		}
	}

	return live, nil
}

// checkAmendedPlacement verifies the amended interval does not collide
// with the driver's other live events.
func (l *Log) checkAmendedPlacement(
	ctx context.Context,
	original hos.DutyEvent,
	amended hos.DutyEvent,
) error {
	neighbors, err := l.events.ListRange(
		ctx,
		amended.DriverID,
		amended.StartTime.AddDate(0, 0, -overlapScanDays),
		amended.StartTime.AddDate(0, 0, overlapScanDays),
	)
	if err != nil {
		return fmt.Errorf("loading neighbors: %w", err)
	}

	end := amended.EffectiveEnd(amended.StartTime.AddDate(0, 0, overlapScanDays))

	for _, existing := range neighbors {
		if existing.Superseded || existing.ID == original.ID || existing.ID == amended.ID {
			continue
		}

		existingEnd := existing.EffectiveEnd(end)
		if amended.StartTime.Before(existingEnd) && existing.StartTime.Before(end) {
			return fmt.Errorf(
				"amended interval overlaps event %s: %w",
				existing.ID, hos.ErrOverlappingEvent,
			)
		}
	}

	return nil
}

func applyChanges(
	event *hos.DutyEvent,
	changes Changes,
) {
	if changes.Status != nil {
		event.Status = *changes.Status
	}
	if changes.StartTime != nil {
		event.StartTime = *changes.StartTime
	}
	if changes.EndTime != nil {
		event.EndTime = changes.EndTime
	}
	if changes.VehicleID != nil {
		event.VehicleID = *changes.VehicleID
	}
	if changes.Location != nil {
		event.Location = *changes.Location
	}
	if changes.OdometerMiles != nil {
		event.OdometerMiles = *changes.OdometerMiles
	}
	if changes.Annotation != nil {
		event.Annotation = *changes.Annotation
	}
	if changes.AdverseConditions != nil {
		event.AdverseConditions = *changes.AdverseConditions
	}
}
