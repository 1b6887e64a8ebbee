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

package audittrail_test

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/fleethos-io/fleethos/internal/hos"
	"github.com/fleethos-io/fleethos/internal/hos/audittrail"
)

type TrailPublicTestSuite struct {
	suite.Suite

	ctx   context.Context
	now   time.Time
	trail *audittrail.Trail
}

func (s *TrailPublicTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.now = time.Date(2026, 3, 10, 18, 0, 0, 0, time.UTC)
	s.trail = audittrail.New(
		slog.Default(),
		audittrail.NewMemoryStore(),
		audittrail.WithClock(func() time.Time { return s.now }),
	)
}

func (s *TrailPublicTestSuite) entry(
	action string,
	targetID string,
) audittrail.Entry {
	return audittrail.Entry{
		TargetType: audittrail.TargetEvent,
		TargetID:   targetID,
		Action:     action,
		Actor:      "driver-1",
		DriverID:   "driver-1",
		Date:       "2026-03-10",
	}
}

func (s *TrailPublicTestSuite) TestRecordAssignsIdentity() {
	recorded, err := s.trail.Record(s.ctx, s.entry("event.append", "ev-1"))

	s.Require().NoError(err)
	s.NotEmpty(recorded.ID)
	s.Equal(s.now, recorded.Timestamp)

	got, err := s.trail.Get(s.ctx, recorded.ID)
	s.Require().NoError(err)
	s.Equal(recorded.Action, got.Action)
}

func (s *TrailPublicTestSuite) TestRecordKeepsExplicitIdentity() {
	given := s.entry("event.append", "ev-1")
	given.ID = "entry-42"
	given.Timestamp = s.now.Add(-time.Hour)

	recorded, err := s.trail.Record(s.ctx, given)

	s.Require().NoError(err)
	s.Equal("entry-42", recorded.ID)
	s.Equal(s.now.Add(-time.Hour), recorded.Timestamp)
}

func (s *TrailPublicTestSuite) TestGetUnknown() {
	_, err := s.trail.Get(s.ctx, "nope")

	s.Require().Error(err)
	s.ErrorIs(err, hos.ErrNotFound)
}

func (s *TrailPublicTestSuite) TestByTarget() {
	_, err := s.trail.Record(s.ctx, s.entry("event.append", "ev-1"))
	s.Require().NoError(err)
	_, err = s.trail.Record(s.ctx, s.entry("event.amend", "ev-1"))
	s.Require().NoError(err)
	_, err = s.trail.Record(s.ctx, s.entry("event.append", "ev-2"))
	s.Require().NoError(err)

	entries, err := s.trail.ByTarget(s.ctx, audittrail.TargetEvent, "ev-1")

	s.Require().NoError(err)
	s.Require().Len(entries, 2)
	s.Equal("event.append", entries[0].Action)
	s.Equal("event.amend", entries[1].Action)
}

func (s *TrailPublicTestSuite) TestRangePagination() {
	for i := 0; i < 5; i++ {
		e := s.entry("event.append", "ev-1")
		e.Timestamp = s.now.Add(time.Duration(i) * time.Minute)

		_, err := s.trail.Record(s.ctx, e)
		s.Require().NoError(err)
	}

	page, total, err := s.trail.Range(s.ctx, time.Time{}, time.Time{}, 2, 2)

	s.Require().NoError(err)
	s.Equal(5, total)
	s.Require().Len(page, 2)
	s.Equal(s.now.Add(2*time.Minute), page[0].Timestamp)

	tail, total, err := s.trail.Range(s.ctx, time.Time{}, time.Time{}, 2, 4)
	s.Require().NoError(err)
	s.Equal(5, total)
	s.Len(tail, 1)

	past, total, err := s.trail.Range(s.ctx, time.Time{}, time.Time{}, 2, 10)
	s.Require().NoError(err)
	s.Equal(5, total)
	s.Empty(past)
}

func (s *TrailPublicTestSuite) TestRangeTimeBounds() {
	for i := 0; i < 3; i++ {
		e := s.entry("event.append", "ev-1")
		e.Timestamp = s.now.Add(time.Duration(i) * time.Hour)

		_, err := s.trail.Record(s.ctx, e)
		s.Require().NoError(err)
	}

	entries, total, err := s.trail.Range(
		s.ctx, s.now.Add(time.Hour), s.now.Add(2*time.Hour), 10, 0,
	)

	s.Require().NoError(err)
	s.Equal(1, total)
	s.Require().Len(entries, 1)
	s.Equal(s.now.Add(time.Hour), entries[0].Timestamp)
}

func TestTrailPublicTestSuite(t *testing.T) {
	suite.Run(t, new(TrailPublicTestSuite))
}
