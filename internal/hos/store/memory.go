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

package store

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/fleethos-io/fleethos/internal/hos"
)

// Compile-time interface checks.
var (
	_ EventStore     = (*MemoryEventStore)(nil)
	_ DailyLogStore  = (*MemoryDailyLogStore)(nil)
	_ ViolationStore = (*MemoryViolationStore)(nil)
	_ SnapshotStore  = (*MemorySnapshotStore)(nil)
)

// Memory bundles in-memory twins of the four KV stores. It backs unit
// tests and single-process development runs; nothing survives a restart.
type Memory struct {
	Events     *MemoryEventStore
	Logs       *MemoryDailyLogStore
	Violations *MemoryViolationStore
	Snapshots  *MemorySnapshotStore
}

// NewMemory creates a new Memory bundle.
func NewMemory() *Memory {
	return &Memory{
		Events:     &MemoryEventStore{events: make(map[string]hos.DutyEvent)},
		Logs:       &MemoryDailyLogStore{logs: make(map[string]hos.DailyLog)},
		Violations: &MemoryViolationStore{violations: make(map[string]hos.Violation)},
		Snapshots:  &MemorySnapshotStore{},
	}
}

// MemoryEventStore implements EventStore over a map.
type MemoryEventStore struct {
	mu     sync.RWMutex
	events map[string]hos.DutyEvent
}

// Put creates or replaces an event.
func (m *MemoryEventStore) Put(
	_ context.Context,
	event hos.DutyEvent,
) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.events[eventKey(event.DriverID, event.ID)] = event

	return nil
}

// Get retrieves an event by driver and ID.
func (m *MemoryEventStore) Get(
	_ context.Context,
	driverID string,
	eventID string,
) (*hos.DutyEvent, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	ev, ok := m.events[eventKey(driverID, eventID)]
	if !ok {
		return nil, fmt.Errorf("event %s: %w", eventID, hos.ErrNotFound)
	}

	return &ev, nil
}

// Find retrieves an event by ID alone.
func (m *MemoryEventStore) Find(
	_ context.Context,
	eventID string,
) (*hos.DutyEvent, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	for _, ev := range m.events {
		if ev.ID == eventID {
			found := ev
			return &found, nil
		}
	}

	return nil, fmt.Errorf("event %s: %w", eventID, hos.ErrNotFound)
}

// ListRange returns all events touching [from, to), ascending by start.
func (m *MemoryEventStore) ListRange(
	_ context.Context,
	driverID string,
	from time.Time,
	to time.Time,
) ([]hos.DutyEvent, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	var out []hos.DutyEvent
	for _, ev := range m.events {
		if ev.DriverID != driverID {
			continue
		}
		if ev.EffectiveEnd(to).After(from) && ev.StartTime.Before(to) {
			out = append(out, ev)
		}
	}

	sortEvents(out)

	return out, nil
}

// Open returns the driver's open event, or nil when none exists.
func (m *MemoryEventStore) Open(
	_ context.Context,
	driverID string,
) (*hos.DutyEvent, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	for _, ev := range m.events {
		if ev.DriverID == driverID && ev.Open() && !ev.Superseded {
			open := ev
			return &open, nil
		}
	}

	return nil, nil
}

// MemoryDailyLogStore implements DailyLogStore over a map.
type MemoryDailyLogStore struct {
	mu   sync.RWMutex
	logs map[string]hos.DailyLog
}

// Put creates or replaces a daily log.
func (m *MemoryDailyLogStore) Put(
	_ context.Context,
	log hos.DailyLog,
) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.logs[log.DriverID+"."+log.Date] = log

	return nil
}

// Get retrieves the log for a driver and local date.
func (m *MemoryDailyLogStore) Get(
	_ context.Context,
	driverID string,
	date string,
) (*hos.DailyLog, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	log, ok := m.logs[driverID+"."+date]
	if !ok {
		return nil, fmt.Errorf("daily log %s/%s: %w", driverID, date, hos.ErrNotFound)
	}

	return &log, nil
}

// MemoryViolationStore implements ViolationStore over a map.
type MemoryViolationStore struct {
	mu         sync.RWMutex
	violations map[string]hos.Violation
}

// Put creates or replaces a record.
func (m *MemoryViolationStore) Put(
	_ context.Context,
	v hos.Violation,
) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.violations[v.ID] = v

	return nil
}

// Get retrieves a record by ID.
func (m *MemoryViolationStore) Get(
	_ context.Context,
	id string,
) (*hos.Violation, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	v, ok := m.violations[id]
	if !ok {
		return nil, fmt.Errorf("violation %s: %w", id, hos.ErrNotFound)
	}

	return &v, nil
}

// ListOpen returns the driver's unresolved records.
func (m *MemoryViolationStore) ListOpen(
	_ context.Context,
	driverID string,
) ([]hos.Violation, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	var out []hos.Violation
	for _, v := range m.violations {
		if v.DriverID == driverID && v.Status != hos.ViolationResolved {
			out = append(out, v)
		}
	}

	return out, nil
}

// List returns records matching the filter, newest first.
func (m *MemoryViolationStore) List(
	_ context.Context,
	filter ViolationFilter,
) ([]hos.Violation, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	var out []hos.Violation
	for _, v := range m.violations {
		if matchesFilter(v, filter) {
			out = append(out, v)
		}
	}

	sort.Slice(out, func(i, j int) bool {
		return out[i].DetectedAt.After(out[j].DetectedAt)
	})

	return out, nil
}

// MemorySnapshotStore implements SnapshotStore over a slice.
type MemorySnapshotStore struct {
	mu        sync.RWMutex
	snapshots []hos.CertifiedSnapshot
}

// Put appends a snapshot. Duplicate driver/date/version is rejected to
// mirror the KV store's create-only semantics.
func (m *MemorySnapshotStore) Put(
	_ context.Context,
	snap hos.CertifiedSnapshot,
) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, existing := range m.snapshots {
		if existing.DriverID == snap.DriverID &&
			existing.Date == snap.Date &&
			existing.Version == snap.Version {
			return fmt.Errorf(
				"snapshot %s/%s v%d already exists",
				snap.DriverID, snap.Date, snap.Version,
			)
		}
	}

	m.snapshots = append(m.snapshots, snap)

	return nil
}

// List returns all snapshots for a driver and date, oldest first.
func (m *MemorySnapshotStore) List(
	_ context.Context,
	driverID string,
	date string,
) ([]hos.CertifiedSnapshot, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	var out []hos.CertifiedSnapshot
	for _, snap := range m.snapshots {
		if snap.DriverID == driverID && snap.Date == date {
			out = append(out, snap)
		}
	}

	sort.Slice(out, func(i, j int) bool {
		return out[i].Version < out[j].Version
	})

	return out, nil
}
