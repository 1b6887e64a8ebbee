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

package store_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/fleethos-io/fleethos/internal/hos"
	"github.com/fleethos-io/fleethos/internal/hos/store"
)

type MemoryStorePublicTestSuite struct {
	suite.Suite

	ctx    context.Context
	stores *store.Memory
}

func (s *MemoryStorePublicTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.stores = store.NewMemory()
}

func (s *MemoryStorePublicTestSuite) at(value string) time.Time {
	t, err := time.Parse(time.RFC3339, value)
	s.Require().NoError(err)

	return t
}

func (s *MemoryStorePublicTestSuite) event(
	id string,
	start string,
	end string,
) hos.DutyEvent {
	ev := hos.DutyEvent{
		ID:        id,
		DriverID:  "driver-1",
		Status:    hos.StatusDriving,
		StartTime: s.at(start),
	}
	if end != "" {
		e := s.at(end)
		ev.EndTime = &e
	}

	return ev
}

func (s *MemoryStorePublicTestSuite) TestEventListRange() {
	s.Require().NoError(s.stores.Events.Put(
		s.ctx, s.event("ev-1", "2026-03-09T06:00:00Z", "2026-03-09T09:00:00Z"),
	))
	s.Require().NoError(s.stores.Events.Put(
		s.ctx, s.event("ev-2", "2026-03-10T06:00:00Z", "2026-03-10T09:00:00Z"),
	))
	s.Require().NoError(s.stores.Events.Put(
		s.ctx, s.event("ev-3", "2026-03-11T06:00:00Z", "2026-03-11T09:00:00Z"),
	))

	events, err := s.stores.Events.ListRange(
		s.ctx, "driver-1",
		s.at("2026-03-10T00:00:00Z"), s.at("2026-03-11T00:00:00Z"),
	)

	s.Require().NoError(err)
	s.Require().Len(events, 1)
	s.Equal("ev-2", events[0].ID)
}

func (s *MemoryStorePublicTestSuite) TestEventListRangeIncludesStraddlers() {
	// An interval crossing the range boundary still touches the range.
	s.Require().NoError(s.stores.Events.Put(
		s.ctx, s.event("ev-1", "2026-03-09T22:00:00Z", "2026-03-10T02:00:00Z"),
	))

	events, err := s.stores.Events.ListRange(
		s.ctx, "driver-1",
		s.at("2026-03-10T00:00:00Z"), s.at("2026-03-11T00:00:00Z"),
	)

	s.Require().NoError(err)
	s.Len(events, 1)
}

func (s *MemoryStorePublicTestSuite) TestEventOpen() {
	open, err := s.stores.Events.Open(s.ctx, "driver-1")
	s.Require().NoError(err)
	s.Nil(open)

	s.Require().NoError(s.stores.Events.Put(
		s.ctx, s.event("ev-1", "2026-03-10T06:00:00Z", ""),
	))

	open, err = s.stores.Events.Open(s.ctx, "driver-1")
	s.Require().NoError(err)
	s.Require().NotNil(open)
	s.Equal("ev-1", open.ID)
}

func (s *MemoryStorePublicTestSuite) TestEventOpenIgnoresSuperseded() {
	ev := s.event("ev-1", "2026-03-10T06:00:00Z", "")
	ev.Superseded = true
	s.Require().NoError(s.stores.Events.Put(s.ctx, ev))

	open, err := s.stores.Events.Open(s.ctx, "driver-1")

	s.Require().NoError(err)
	s.Nil(open)
}

func (s *MemoryStorePublicTestSuite) TestEventFind() {
	s.Require().NoError(s.stores.Events.Put(
		s.ctx, s.event("ev-1", "2026-03-10T06:00:00Z", "2026-03-10T09:00:00Z"),
	))

	found, err := s.stores.Events.Find(s.ctx, "ev-1")
	s.Require().NoError(err)
	s.Equal("driver-1", found.DriverID)

	_, err = s.stores.Events.Find(s.ctx, "ev-nope")
	s.ErrorIs(err, hos.ErrNotFound)
}

func (s *MemoryStorePublicTestSuite) TestDailyLogRoundTrip() {
	log := hos.DailyLog{
		DriverID: "driver-1",
		Date:     "2026-03-10",
		Timezone: "UTC",
		State:    hos.StateDraft,
	}
	s.Require().NoError(s.stores.Logs.Put(s.ctx, log))

	got, err := s.stores.Logs.Get(s.ctx, "driver-1", "2026-03-10")
	s.Require().NoError(err)
	s.Equal(hos.StateDraft, got.State)

	_, err = s.stores.Logs.Get(s.ctx, "driver-1", "2026-03-11")
	s.ErrorIs(err, hos.ErrNotFound)
}

func (s *MemoryStorePublicTestSuite) TestViolationListFilters() {
	violations := []hos.Violation{
		{
			ID:          "viol-1",
			DriverID:    "driver-1",
			RuleID:      hos.Rule11HourDriving,
			Status:      hos.ViolationOpen,
			DetectedAt:  s.at("2026-03-10T12:00:00Z"),
			WindowStart: s.at("2026-03-10T04:00:00Z"),
		},
		{
			ID:          "viol-2",
			DriverID:    "driver-1",
			RuleID:      hos.Rule14HourWindow,
			Status:      hos.ViolationResolved,
			DetectedAt:  s.at("2026-03-10T14:00:00Z"),
			WindowStart: s.at("2026-03-10T04:00:00Z"),
		},
		{
			ID:          "viol-3",
			DriverID:    "driver-2",
			RuleID:      hos.Rule11HourDriving,
			Status:      hos.ViolationOpen,
			DetectedAt:  s.at("2026-03-10T16:00:00Z"),
			WindowStart: s.at("2026-03-10T06:00:00Z"),
		},
	}
	for _, v := range violations {
		s.Require().NoError(s.stores.Violations.Put(s.ctx, v))
	}

	byDriver, err := s.stores.Violations.List(
		s.ctx, store.ViolationFilter{DriverID: "driver-1"},
	)
	s.Require().NoError(err)
	s.Len(byDriver, 2)

	// Newest first.
	s.Equal("viol-2", byDriver[0].ID)

	byStatus, err := s.stores.Violations.List(
		s.ctx, store.ViolationFilter{Status: hos.ViolationOpen},
	)
	s.Require().NoError(err)
	s.Len(byStatus, 2)

	open, err := s.stores.Violations.ListOpen(s.ctx, "driver-1")
	s.Require().NoError(err)
	s.Require().Len(open, 1)
	s.Equal("viol-1", open[0].ID)
}

func (s *MemoryStorePublicTestSuite) TestSnapshotAppendOnly() {
	snap := hos.CertifiedSnapshot{
		ID:       "snap-1",
		DriverID: "driver-1",
		Date:     "2026-03-10",
		Version:  0,
		Raw:      []byte(`{}`),
	}
	s.Require().NoError(s.stores.Snapshots.Put(s.ctx, snap))

	// Same driver, date, and version cannot be written twice.
	dup := snap
	dup.ID = "snap-2"
	s.Error(s.stores.Snapshots.Put(s.ctx, dup))

	next := snap
	next.ID = "snap-3"
	next.Version = 1
	s.Require().NoError(s.stores.Snapshots.Put(s.ctx, next))

	snaps, err := s.stores.Snapshots.List(s.ctx, "driver-1", "2026-03-10")
	s.Require().NoError(err)
	s.Require().Len(snaps, 2)
	s.Equal(0, snaps[0].Version)
	s.Equal(1, snaps[1].Version)
}

func TestMemoryStorePublicTestSuite(t *testing.T) {
	suite.Run(t, new(MemoryStorePublicTestSuite))
}
