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

package eventlog_test

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/fleethos-io/fleethos/internal/hos"
	"github.com/fleethos-io/fleethos/internal/hos/eventlog"
	"github.com/fleethos-io/fleethos/internal/hos/store"
)

type EventLogPublicTestSuite struct {
	suite.Suite

	ctx    context.Context
	stores *store.Memory
	log    *eventlog.Log
	clock  time.Time
}

func (s *EventLogPublicTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.stores = store.NewMemory()
	s.clock = s.at("2026-03-10T12:00:00Z")
	s.log = eventlog.New(
		slog.Default(),
		s.stores.Events,
		eventlog.WithClock(func() time.Time { return s.clock }),
	)
}

func (s *EventLogPublicTestSuite) at(value string) time.Time {
	t, err := time.Parse(time.RFC3339, value)
	s.Require().NoError(err)

	return t
}

func (s *EventLogPublicTestSuite) event(
	status hos.DutyStatus,
	start string,
	end string,
) hos.DutyEvent {
	ev := hos.DutyEvent{
		DriverID:  "driver-1",
		Status:    status,
		StartTime: s.at(start),
	}
	if end != "" {
		e := s.at(end)
		ev.EndTime = &e
	}

	return ev
}

func (s *EventLogPublicTestSuite) TestAppend() {
	res, err := s.log.Append(
		s.ctx,
		s.event(hos.StatusDriving, "2026-03-10T06:00:00Z", "2026-03-10T09:00:00Z"),
	)

	s.Require().NoError(err)
	s.NotEmpty(res.Event.ID)
	s.Equal(s.clock, res.Event.CreatedAt)
	s.Equal(180, res.Event.DurationMinutes)
	s.False(res.Duplicate)
	s.Nil(res.ClosedPrevious)

	stored, err := s.stores.Events.Get(s.ctx, "driver-1", res.Event.ID)
	s.Require().NoError(err)
	s.Equal(hos.StatusDriving, stored.Status)
}

func (s *EventLogPublicTestSuite) TestAppendClosesOpenEvent() {
	first, err := s.log.Append(
		s.ctx,
		s.event(hos.StatusDriving, "2026-03-10T06:00:00Z", ""),
	)
	s.Require().NoError(err)
	s.True(first.Event.Open())

	second, err := s.log.Append(
		s.ctx,
		s.event(hos.StatusOffDuty, "2026-03-10T09:00:00Z", ""),
	)

	s.Require().NoError(err)
	s.Require().NotNil(second.ClosedPrevious)
	s.Equal(first.Event.ID, second.ClosedPrevious.ID)
	s.Require().NotNil(second.ClosedPrevious.EndTime)
	s.Equal(s.at("2026-03-10T09:00:00Z"), *second.ClosedPrevious.EndTime)
	s.Equal(180, second.ClosedPrevious.DurationMinutes)
}

func (s *EventLogPublicTestSuite) TestAppendIdempotent() {
	first, err := s.log.Append(
		s.ctx,
		s.event(hos.StatusDriving, "2026-03-10T06:00:00Z", "2026-03-10T09:00:00Z"),
	)
	s.Require().NoError(err)

	// A retry after a timeout resubmits the same driver, start, and status.
	retry, err := s.log.Append(
		s.ctx,
		s.event(hos.StatusDriving, "2026-03-10T06:00:00Z", "2026-03-10T09:00:00Z"),
	)

	s.Require().NoError(err)
	s.True(retry.Duplicate)
	s.Equal(first.Event.ID, retry.Event.ID)
}

func (s *EventLogPublicTestSuite) TestAppendRejectsBackdatedStart() {
	_, err := s.log.Append(
		s.ctx,
		s.event(hos.StatusDriving, "2026-03-10T06:00:00Z", ""),
	)
	s.Require().NoError(err)

	_, err = s.log.Append(
		s.ctx,
		s.event(hos.StatusOffDuty, "2026-03-10T05:00:00Z", ""),
	)

	s.Require().Error(err)
	s.ErrorIs(err, hos.ErrInvalidEventOrdering)
}

func (s *EventLogPublicTestSuite) TestAppendRejectsOverlap() {
	_, err := s.log.Append(
		s.ctx,
		s.event(hos.StatusDriving, "2026-03-10T06:00:00Z", "2026-03-10T09:00:00Z"),
	)
	s.Require().NoError(err)

	_, err = s.log.Append(
		s.ctx,
		s.event(hos.StatusOffDuty, "2026-03-10T08:00:00Z", "2026-03-10T10:00:00Z"),
	)

	s.Require().Error(err)
	s.ErrorIs(err, hos.ErrOverlappingEvent)
}

func (s *EventLogPublicTestSuite) TestAppendRejectsStartBeforeLog() {
	_, err := s.log.Append(
		s.ctx,
		s.event(hos.StatusDriving, "2026-03-10T06:00:00Z", "2026-03-10T09:00:00Z"),
	)
	s.Require().NoError(err)

	_, err = s.log.Append(
		s.ctx,
		s.event(hos.StatusOffDuty, "2026-03-10T04:00:00Z", "2026-03-10T05:00:00Z"),
	)

	s.Require().Error(err)
	s.ErrorIs(err, hos.ErrInvalidEventOrdering)
}

func (s *EventLogPublicTestSuite) TestAmend() {
	res, err := s.log.Append(
		s.ctx,
		s.event(hos.StatusDriving, "2026-03-10T06:00:00Z", "2026-03-10T09:00:00Z"),
	)
	s.Require().NoError(err)

	status := hos.StatusOnDutyNotDriving
	end := s.at("2026-03-10T08:00:00Z")

	amended, err := s.log.Amend(
		s.ctx,
		res.Event.ID,
		eventlog.Changes{Status: &status, EndTime: &end},
		"logged wrong status at the dock",
		"driver-1",
	)

	s.Require().NoError(err)
	s.True(amended.Original.Superseded)
	s.Equal(res.Event.ID, amended.Original.ID)

	s.NotEqual(res.Event.ID, amended.Amended.ID)
	s.Equal(res.Event.ID, amended.Amended.SupersedesEventID)
	s.True(amended.Amended.Edited)
	s.Equal("logged wrong status at the dock", amended.Amended.EditReason)
	s.Equal("driver-1", amended.Amended.EditedBy)
	s.Equal(hos.StatusOnDutyNotDriving, amended.Amended.Status)
	s.Equal(120, amended.Amended.DurationMinutes)

	// The original stays retrievable, marked superseded.
	original, err := s.stores.Events.Get(s.ctx, "driver-1", res.Event.ID)
	s.Require().NoError(err)
	s.True(original.Superseded)
}

func (s *EventLogPublicTestSuite) TestAmendTwiceRejected() {
	res, err := s.log.Append(
		s.ctx,
		s.event(hos.StatusDriving, "2026-03-10T06:00:00Z", "2026-03-10T09:00:00Z"),
	)
	s.Require().NoError(err)

	location := "Flagstaff, AZ"
	_, err = s.log.Amend(
		s.ctx, res.Event.ID,
		eventlog.Changes{Location: &location}, "missing location", "driver-1",
	)
	s.Require().NoError(err)

	// The first amendment superseded the original; a second edit must
	// target the replacement.
	_, err = s.log.Amend(
		s.ctx, res.Event.ID,
		eventlog.Changes{Location: &location}, "missing location", "driver-1",
	)

	s.Require().Error(err)
	s.ErrorIs(err, hos.ErrNotFound)
}

func (s *EventLogPublicTestSuite) TestAmendRejectsEmptyInterval() {
	res, err := s.log.Append(
		s.ctx,
		s.event(hos.StatusDriving, "2026-03-10T06:00:00Z", "2026-03-10T09:00:00Z"),
	)
	s.Require().NoError(err)

	end := s.at("2026-03-10T06:00:00Z")
	_, err = s.log.Amend(
		s.ctx, res.Event.ID,
		eventlog.Changes{EndTime: &end}, "typo in end time", "driver-1",
	)

	s.Require().Error(err)
	s.ErrorIs(err, hos.ErrInvalidEventOrdering)
}

func (s *EventLogPublicTestSuite) TestAmendRejectsOverlapWithNeighbor() {
	res, err := s.log.Append(
		s.ctx,
		s.event(hos.StatusDriving, "2026-03-10T06:00:00Z", "2026-03-10T09:00:00Z"),
	)
	s.Require().NoError(err)

	_, err = s.log.Append(
		s.ctx,
		s.event(hos.StatusOffDuty, "2026-03-10T09:00:00Z", "2026-03-10T12:00:00Z"),
	)
	s.Require().NoError(err)

	end := s.at("2026-03-10T10:00:00Z")
	_, err = s.log.Amend(
		s.ctx, res.Event.ID,
		eventlog.Changes{EndTime: &end}, "drove longer than logged", "driver-1",
	)

	s.Require().Error(err)
	s.ErrorIs(err, hos.ErrOverlappingEvent)
}

func (s *EventLogPublicTestSuite) TestWindowExcludesSuperseded() {
	res, err := s.log.Append(
		s.ctx,
		s.event(hos.StatusDriving, "2026-03-10T06:00:00Z", "2026-03-10T09:00:00Z"),
	)
	s.Require().NoError(err)

	location := "Winslow, AZ"
	amended, err := s.log.Amend(
		s.ctx, res.Event.ID,
		eventlog.Changes{Location: &location}, "missing location", "driver-1",
	)
	s.Require().NoError(err)

	events, err := s.log.Window(
		s.ctx, "driver-1",
		s.at("2026-03-10T00:00:00Z"), s.at("2026-03-11T00:00:00Z"),
	)

	s.Require().NoError(err)
	s.Require().Len(events, 1)
	s.Equal(amended.Amended.ID, events[0].ID)
	s.Equal("Winslow, AZ", events[0].Location)
}

func TestEventLogPublicTestSuite(t *testing.T) {
	suite.Run(t, new(EventLogPublicTestSuite))
}
