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
	"encoding/json"
	"fmt"
	"log/slog"
	"sort"
	"strings"
	"time"

	"github.com/nats-io/nats.go"

	"github.com/fleethos-io/fleethos/internal/hos"
)

// Compile-time interface checks.
var (
	_ EventStore     = (*KVEventStore)(nil)
	_ DailyLogStore  = (*KVDailyLogStore)(nil)
	_ ViolationStore = (*KVViolationStore)(nil)
	_ SnapshotStore  = (*KVSnapshotStore)(nil)
)

// KVEventStore implements EventStore backed by a NATS KeyValue bucket.
// Keys are <driverID>.<eventID>.
type KVEventStore struct {
	kv     nats.KeyValue
	logger *slog.Logger
}

// NewKVEventStore creates a new KVEventStore.
func NewKVEventStore(
	logger *slog.Logger,
	kv nats.KeyValue,
) *KVEventStore {
	return &KVEventStore{kv: kv, logger: logger}
}

// Put creates or replaces an event.
func (s *KVEventStore) Put(
	_ context.Context,
	event hos.DutyEvent,
) error {
	data, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("marshal event: %w", err)
	}

	if _, err := s.kv.Put(eventKey(event.DriverID, event.ID), data); err != nil {
		return fmt.Errorf("put event: %w", err)
	}

	return nil
}

// Get retrieves an event by driver and ID.
func (s *KVEventStore) Get(
	_ context.Context,
	driverID string,
	eventID string,
) (*hos.DutyEvent, error) {
	kve, err := s.kv.Get(eventKey(driverID, eventID))
	if err != nil {
		if err == nats.ErrKeyNotFound {
			return nil, fmt.Errorf("event %s: %w", eventID, hos.ErrNotFound)
		}
		return nil, fmt.Errorf("get event: %w", err)
	}

	var event hos.DutyEvent
	if err := json.Unmarshal(kve.Value(), &event); err != nil {
		return nil, fmt.Errorf("unmarshal event: %w", err)
	}

	return &event, nil
}

// Find retrieves an event by ID alone. Keys end in the event ID, so the
// scan matches on suffix.
func (s *KVEventStore) Find(
	_ context.Context,
	eventID string,
) (*hos.DutyEvent, error) {
	keys, err := s.kv.Keys()
	if err != nil {
		if err == nats.ErrNoKeysFound {
			return nil, fmt.Errorf("event %s: %w", eventID, hos.ErrNotFound)
		}
		return nil, fmt.Errorf("list event keys: %w", err)
	}

	for _, key := range keys {
		if !strings.HasSuffix(key, "."+eventID) {
			continue
		}

		kve, err := s.kv.Get(key)
		if err != nil {
			return nil, fmt.Errorf("get event: %w", err)
		}

		var ev hos.DutyEvent
		if err := json.Unmarshal(kve.Value(), &ev); err != nil {
			return nil, fmt.Errorf("unmarshal event: %w", err)
		}

		return &ev, nil
	}

	return nil, fmt.Errorf("event %s: %w", eventID, hos.ErrNotFound)
}

// ListRange returns all events touching [from, to), ascending by start.
func (s *KVEventStore) ListRange(
	ctx context.Context,
	driverID string,
	from time.Time,
	to time.Time,
) ([]hos.DutyEvent, error) {
	events, err := s.driverEvents(ctx, driverID)
	if err != nil {
		return nil, err
	}

	out := make([]hos.DutyEvent, 0, len(events))
	for _, ev := range events {
		end := ev.EffectiveEnd(to)
		if end.After(from) && ev.StartTime.Before(to) {
			out = append(out, ev)
		}
	}

	sortEvents(out)

	return out, nil
}

// Open returns the driver's open event, or nil when none exists.
func (s *KVEventStore) Open(
	ctx context.Context,
	driverID string,
) (*hos.DutyEvent, error) {
	events, err := s.driverEvents(ctx, driverID)
	if err != nil {
		return nil, err
	}

	for _, ev := range events {
		if ev.Open() && !ev.Superseded {
			open := ev
			return &open, nil
		}
	}

	return nil, nil
}

// driverEvents loads every event stored under the driver's key prefix.
func (s *KVEventStore) driverEvents(
	_ context.Context,
	driverID string,
) ([]hos.DutyEvent, error) {
	keys, err := s.kv.Keys()
	if err != nil {
		if err == nats.ErrNoKeysFound {
			return nil, nil
		}
		return nil, fmt.Errorf("list event keys: %w", err)
	}

	prefix := driverID + "."
	var events []hos.DutyEvent

	for _, key := range keys {
		if !strings.HasPrefix(key, prefix) {
			continue
		}

		kve, err := s.kv.Get(key)
		if err != nil {
			s.logger.Warn(
				"failed to get event",
				slog.String("key", key),
				slog.String("error", err.Error()),
			)
			continue
		}

		var ev hos.DutyEvent
		if err := json.Unmarshal(kve.Value(), &ev); err != nil {
			return nil, fmt.Errorf("unmarshal event %s: %w", key, err)
		}

		events = append(events, ev)
	}

	return events, nil
}

// KVDailyLogStore implements DailyLogStore backed by a NATS KeyValue
// bucket. Keys are <driverID>.<date>.
type KVDailyLogStore struct {
	kv     nats.KeyValue
	logger *slog.Logger
}

// NewKVDailyLogStore creates a new KVDailyLogStore.
func NewKVDailyLogStore(
	logger *slog.Logger,
	kv nats.KeyValue,
) *KVDailyLogStore {
	return &KVDailyLogStore{kv: kv, logger: logger}
}

// Put creates or replaces a daily log.
func (s *KVDailyLogStore) Put(
	_ context.Context,
	log hos.DailyLog,
) error {
	data, err := json.Marshal(log)
	if err != nil {
		return fmt.Errorf("marshal daily log: %w", err)
	}

	if _, err := s.kv.Put(log.DriverID+"."+log.Date, data); err != nil {
		return fmt.Errorf("put daily log: %w", err)
	}

	return nil
}

// Get retrieves the log for a driver and local date.
func (s *KVDailyLogStore) Get(
	_ context.Context,
	driverID string,
	date string,
) (*hos.DailyLog, error) {
	kve, err := s.kv.Get(driverID + "." + date)
	if err != nil {
		if err == nats.ErrKeyNotFound {
			return nil, fmt.Errorf("daily log %s/%s: %w", driverID, date, hos.ErrNotFound)
		}
		return nil, fmt.Errorf("get daily log: %w", err)
	}

	var log hos.DailyLog
	if err := json.Unmarshal(kve.Value(), &log); err != nil {
		return nil, fmt.Errorf("unmarshal daily log: %w", err)
	}

	return &log, nil
}

// KVViolationStore implements ViolationStore backed by a NATS KeyValue
// bucket. Keys are <driverID>.<violationID>.
type KVViolationStore struct {
	kv     nats.KeyValue
	logger *slog.Logger
}

// NewKVViolationStore creates a new KVViolationStore.
func NewKVViolationStore(
	logger *slog.Logger,
	kv nats.KeyValue,
) *KVViolationStore {
	return &KVViolationStore{kv: kv, logger: logger}
}

// Put creates or replaces a record.
func (s *KVViolationStore) Put(
	_ context.Context,
	v hos.Violation,
) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("marshal violation: %w", err)
	}

	if _, err := s.kv.Put(v.DriverID+"."+v.ID, data); err != nil {
		return fmt.Errorf("put violation: %w", err)
	}

	return nil
}

// Get retrieves a record by ID.
func (s *KVViolationStore) Get(
	ctx context.Context,
	id string,
) (*hos.Violation, error) {
	all, err := s.list(ctx)
	if err != nil {
		return nil, err
	}

	for _, v := range all {
		if v.ID == id {
			found := v
			return &found, nil
		}
	}

	return nil, fmt.Errorf("violation %s: %w", id, hos.ErrNotFound)
}

// ListOpen returns the driver's unresolved records.
func (s *KVViolationStore) ListOpen(
	ctx context.Context,
	driverID string,
) ([]hos.Violation, error) {
	all, err := s.list(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]hos.Violation, 0, len(all))
	for _, v := range all {
		if v.DriverID == driverID && v.Status != hos.ViolationResolved {
			out = append(out, v)
		}
	}

	return out, nil
}

// List returns records matching the filter, newest first.
func (s *KVViolationStore) List(
	ctx context.Context,
	filter ViolationFilter,
) ([]hos.Violation, error) {
	all, err := s.list(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]hos.Violation, 0, len(all))
	for _, v := range all {
		if matchesFilter(v, filter) {
			out = append(out, v)
		}
	}

	sort.Slice(out, func(i, j int) bool {
		return out[i].DetectedAt.After(out[j].DetectedAt)
	})

	return out, nil
}

func (s *KVViolationStore) list(
	_ context.Context,
) ([]hos.Violation, error) {
	keys, err := s.kv.Keys()
	if err != nil {
		if err == nats.ErrNoKeysFound {
			return nil, nil
		}
		return nil, fmt.Errorf("list violation keys: %w", err)
	}

	out := make([]hos.Violation, 0, len(keys))
	for _, key := range keys {
		kve, err := s.kv.Get(key)
		if err != nil {
			s.logger.Warn(
				"failed to get violation",
				slog.String("key", key),
				slog.String("error", err.Error()),
			)
			continue
		}

		var v hos.Violation
		if err := json.Unmarshal(kve.Value(), &v); err != nil {
			return nil, fmt.Errorf("unmarshal violation %s: %w", key, err)
		}

		out = append(out, v)
	}

	return out, nil
}

func matchesFilter(
	v hos.Violation,
	filter ViolationFilter,
) bool {
	if filter.DriverID != "" && v.DriverID != filter.DriverID {
		return false
	}
	if filter.CarrierID != "" && v.CarrierID != filter.CarrierID {
		return false
	}
	if filter.Status != "" && v.Status != filter.Status {
		return false
	}
	if !filter.From.IsZero() && v.WindowStart.Before(filter.From) {
		return false
	}
	if !filter.To.IsZero() && !v.WindowStart.Before(filter.To) {
		return false
	}

	return true
}

// KVSnapshotStore implements SnapshotStore backed by a NATS KeyValue
// bucket. Keys are <driverID>.<date>.v<version>; snapshots are never
// overwritten or deleted.
type KVSnapshotStore struct {
	kv     nats.KeyValue
	logger *slog.Logger
}

// NewKVSnapshotStore creates a new KVSnapshotStore.
func NewKVSnapshotStore(
	logger *slog.Logger,
	kv nats.KeyValue,
) *KVSnapshotStore {
	return &KVSnapshotStore{kv: kv, logger: logger}
}

// Put appends a snapshot. Create (not Put) enforces append-only semantics
// at the bucket level.
func (s *KVSnapshotStore) Put(
	_ context.Context,
	snap hos.CertifiedSnapshot,
) error {
	data, err := json.Marshal(snap)
	if err != nil {
		return fmt.Errorf("marshal snapshot: %w", err)
	}

	key := fmt.Sprintf("%s.%s.v%d", snap.DriverID, snap.Date, snap.Version)
	if _, err := s.kv.Create(key, data); err != nil {
		return fmt.Errorf("create snapshot: %w", err)
	}

	return nil
}

// List returns all snapshots for a driver and date, oldest first.
func (s *KVSnapshotStore) List(
	_ context.Context,
	driverID string,
	date string,
) ([]hos.CertifiedSnapshot, error) {
	keys, err := s.kv.Keys()
	if err != nil {
		if err == nats.ErrNoKeysFound {
			return nil, nil
		}
		return nil, fmt.Errorf("list snapshot keys: %w", err)
	}

	prefix := driverID + "." + date + ".v"
	out := make([]hos.CertifiedSnapshot, 0, len(keys))

	for _, key := range keys {
		if !strings.HasPrefix(key, prefix) {
			continue
		}

		kve, err := s.kv.Get(key)
		if err != nil {
			s.logger.Warn(
				"failed to get snapshot",
				slog.String("key", key),
				slog.String("error", err.Error()),
			)
			continue
		}

		var snap hos.CertifiedSnapshot
		if err := json.Unmarshal(kve.Value(), &snap); err != nil {
			return nil, fmt.Errorf("unmarshal snapshot %s: %w", key, err)
		}

		out = append(out, snap)
	}

	sort.Slice(out, func(i, j int) bool {
		return out[i].Version < out[j].Version
	})

	return out, nil
}

func eventKey(
	driverID string,
	eventID string,
) string {
	return driverID + "." + eventID
}

func sortEvents(
	events []hos.DutyEvent,
) {
	sort.Slice(events, func(i, j int) bool {
		return events[i].StartTime.Before(events[j].StartTime)
	})
}
