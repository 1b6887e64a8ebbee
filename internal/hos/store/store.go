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

// Package store defines the persistence abstraction for the compliance
// engine and its NATS KV and in-memory implementations. The engine never
// reaches for a backing store directly; everything is injected.
package store

import (
	"context"
	"time"

	"github.com/fleethos-io/fleethos/internal/hos"
)

// EventStore persists duty-status events.
type EventStore interface {
	// Put creates or replaces an event.
	Put(ctx context.Context, event hos.DutyEvent) error
	// Get retrieves an event by driver and ID.
	Get(ctx context.Context, driverID, eventID string) (*hos.DutyEvent, error)
	// Find retrieves an event by ID alone.
	Find(ctx context.Context, eventID string) (*hos.DutyEvent, error)
	// ListRange returns all events (superseded included) whose interval
	// touches [from, to), ascending by start time.
	ListRange(
		ctx context.Context,
		driverID string,
		from time.Time,
		to time.Time,
	) ([]hos.DutyEvent, error)
	// Open returns the driver's open event, or nil when none exists.
	Open(ctx context.Context, driverID string) (*hos.DutyEvent, error)
}

// DailyLogStore persists daily logs.
type DailyLogStore interface {
	// Put creates or replaces a daily log.
	Put(ctx context.Context, log hos.DailyLog) error
	// Get retrieves the log for a driver and local date.
	Get(ctx context.Context, driverID, date string) (*hos.DailyLog, error)
}

// ViolationFilter narrows List queries. Zero fields match everything.
type ViolationFilter struct {
	// DriverID matches records for one driver.
	DriverID string
	// CarrierID matches records for one carrier.
	CarrierID string
	// Status matches records in one review status.
	Status hos.ViolationStatus
	// From matches records whose window starts at or after this instant.
	From time.Time
	// To matches records whose window starts before this instant.
	To time.Time
}

// ViolationStore persists derived compliance records.
type ViolationStore interface {
	// Put creates or replaces a record.
	Put(ctx context.Context, v hos.Violation) error
	// Get retrieves a record by ID.
	Get(ctx context.Context, id string) (*hos.Violation, error)
	// ListOpen returns the driver's records not yet resolved.
	ListOpen(ctx context.Context, driverID string) ([]hos.Violation, error)
	// List returns records matching the filter, newest first.
	List(ctx context.Context, filter ViolationFilter) ([]hos.Violation, error)
}

// SnapshotStore persists certified snapshots. Snapshots are append-only:
// there is no update or delete.
type SnapshotStore interface {
	// Put appends a snapshot.
	Put(ctx context.Context, snap hos.CertifiedSnapshot) error
	// List returns all snapshots for a driver and date, oldest first.
	List(ctx context.Context, driverID, date string) ([]hos.CertifiedSnapshot, error)
}
