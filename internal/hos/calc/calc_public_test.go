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

package calc_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/fleethos-io/fleethos/internal/hos"
	"github.com/fleethos-io/fleethos/internal/hos/calc"
)

type CalcPublicTestSuite struct {
	suite.Suite
}

func (s *CalcPublicTestSuite) at(value string) time.Time {
	t, err := time.Parse(time.RFC3339, value)
	s.Require().NoError(err)

	return t
}

func (s *CalcPublicTestSuite) span(
	id string,
	status hos.DutyStatus,
	start string,
	end string,
) hos.DutyEvent {
	ev := hos.DutyEvent{
		ID:        id,
		DriverID:  "driver-1",
		Status:    status,
		StartTime: s.at(start),
		CreatedAt: s.at(start),
	}
	ev.Close(s.at(end))

	return ev
}

func (s *CalcPublicTestSuite) openSpan(
	id string,
	status hos.DutyStatus,
	start string,
) hos.DutyEvent {
	return hos.DutyEvent{
		ID:        id,
		DriverID:  "driver-1",
		Status:    status,
		StartTime: s.at(start),
		CreatedAt: s.at(start),
	}
}

func (s *CalcPublicTestSuite) input(
	date string,
	asOf string,
	events ...hos.DutyEvent,
) calc.Input {
	return calc.Input{
		DriverID: "driver-1",
		Date:     date,
		Timezone: "UTC",
		AsOf:     s.at(asOf),
		Events:   events,
		Ruleset:  hos.Ruleset70Hour8Day,
	}
}

func (s *CalcPublicTestSuite) TestComputeSimpleDay() {
	in := s.input(
		"2026-03-10",
		"2026-03-10T13:00:00Z",
		s.span("ev-1", hos.StatusOffDuty, "2026-03-09T20:00:00Z", "2026-03-10T06:00:00Z"),
		s.span("ev-2", hos.StatusDriving, "2026-03-10T06:00:00Z", "2026-03-10T13:00:00Z"),
	)

	res, err := calc.Compute(in)

	s.Require().NoError(err)
	s.Equal(420, res.Totals.DrivingMinutes)
	s.Equal(360, res.Totals.OffDutyMinutes)
	s.Equal(s.at("2026-03-10T06:00:00Z"), res.Anchor)
	s.Equal(420, res.DrivingMinutes)
	s.Equal(420, res.WindowElapsedMinutes)
	s.Equal(420, res.CycleMinutes)
	s.Equal(240, res.Remaining.DrivingMinutes)
	s.Equal(420, res.Remaining.WindowMinutes)
	s.Equal(3780, res.Remaining.CycleMinutes)
	s.Require().NotNil(res.Remaining.WindowStart)
	s.Equal(s.at("2026-03-10T06:00:00Z"), *res.Remaining.WindowStart)
	s.False(res.Remaining.WindowSuppressed)
}

func (s *CalcPublicTestSuite) TestComputeFullyLoggedDaySumsToFullDay() {
	in := s.input(
		"2026-03-10",
		"2026-03-11T01:00:00Z",
		s.span("ev-1", hos.StatusOffDuty, "2026-03-10T00:00:00Z", "2026-03-10T06:00:00Z"),
		s.span("ev-2", hos.StatusDriving, "2026-03-10T06:00:00Z", "2026-03-10T11:00:00Z"),
		s.span("ev-3", hos.StatusOnDutyNotDriving, "2026-03-10T11:00:00Z", "2026-03-10T13:00:00Z"),
		s.span("ev-4", hos.StatusSleeperBerth, "2026-03-10T13:00:00Z", "2026-03-10T21:00:00Z"),
		s.span("ev-5", hos.StatusOffDuty, "2026-03-10T21:00:00Z", "2026-03-11T00:00:00Z"),
	)

	res, err := calc.Compute(in)

	s.Require().NoError(err)
	s.Equal(300, res.Totals.DrivingMinutes)
	s.Equal(120, res.Totals.OnDutyMinutes)
	s.Equal(480, res.Totals.SleeperMinutes)
	s.Equal(540, res.Totals.OffDutyMinutes)

	// Every minute of a fully logged day lands in exactly one bucket.
	s.Equal(hos.MinutesPerDay, res.Totals.Sum())
}

func (s *CalcPublicTestSuite) TestComputeSplitSleeperBerth() {
	in := s.input(
		"2026-03-10",
		"2026-03-10T15:00:00Z",
		s.span("ev-1", hos.StatusSleeperBerth, "2026-03-09T21:00:00Z", "2026-03-10T04:00:00Z"),
		s.span("ev-2", hos.StatusDriving, "2026-03-10T04:00:00Z", "2026-03-10T08:00:00Z"),
		s.span("ev-3", hos.StatusOffDuty, "2026-03-10T08:00:00Z", "2026-03-10T11:00:00Z"),
		s.span("ev-4", hos.StatusDriving, "2026-03-10T11:00:00Z", "2026-03-10T15:00:00Z"),
	)

	res, err := calc.Compute(in)

	s.Require().NoError(err)

	// The 7h sleeper plus the later 3h off-duty period pair into a
	// qualifying split; the anchor lands at the end of the second period.
	s.Equal(s.at("2026-03-10T11:00:00Z"), res.Anchor)
	s.Equal(240, res.DrivingMinutes)
	s.Equal(420, res.Remaining.DrivingMinutes)
	s.Equal(240, res.WindowElapsedMinutes)
	s.Equal(600, res.Remaining.WindowMinutes)
}

func (s *CalcPublicTestSuite) TestComputeShortBreakDoesNotReset() {
	in := s.input(
		"2026-03-10",
		"2026-03-10T13:00:00Z",
		s.span("ev-1", hos.StatusDriving, "2026-03-10T00:00:00Z", "2026-03-10T06:00:00Z"),
		s.span("ev-2", hos.StatusOffDuty, "2026-03-10T06:00:00Z", "2026-03-10T07:00:00Z"),
		s.span("ev-3", hos.StatusDriving, "2026-03-10T07:00:00Z", "2026-03-10T13:00:00Z"),
	)

	res, err := calc.Compute(in)

	s.Require().NoError(err)

	// No qualifying break anywhere in the lookback window.
	s.Equal(s.at("2026-03-03T00:00:00Z"), res.Anchor)
	s.Equal(720, res.DrivingMinutes)
	s.Equal(hos.DrivingLimitMinutes, res.AllowedDrivingMinutes)
	s.Equal(0, res.Remaining.DrivingMinutes)
	s.Equal(780, res.WindowElapsedMinutes)
	s.Equal(60, res.Remaining.WindowMinutes)
}

func (s *CalcPublicTestSuite) TestComputeAdverseConditions() {
	adverse := s.span("ev-3", hos.StatusDriving, "2026-03-10T07:00:00Z", "2026-03-10T13:00:00Z")
	adverse.AdverseConditions = true

	in := s.input(
		"2026-03-10",
		"2026-03-10T13:00:00Z",
		s.span("ev-1", hos.StatusDriving, "2026-03-10T00:00:00Z", "2026-03-10T06:00:00Z"),
		s.span("ev-2", hos.StatusOffDuty, "2026-03-10T06:00:00Z", "2026-03-10T07:00:00Z"),
		adverse,
	)

	res, err := calc.Compute(in)

	s.Require().NoError(err)
	s.Equal(hos.DrivingLimitMinutes+hos.AdverseExtensionMinutes, res.AllowedDrivingMinutes)
	s.Equal(hos.WindowLimitMinutes+hos.AdverseExtensionMinutes, res.AllowedWindowMinutes)
	s.Equal(60, res.Remaining.DrivingMinutes)
	s.Equal(180, res.Remaining.WindowMinutes)
}

func (s *CalcPublicTestSuite) TestComputePersonalConveyanceAndYardMove() {
	in := s.input(
		"2026-03-10",
		"2026-03-10T14:00:00Z",
		s.span("ev-1", hos.StatusOffDuty, "2026-03-09T18:00:00Z", "2026-03-10T05:00:00Z"),
		s.span("ev-2", hos.StatusPersonalConveyance, "2026-03-10T05:00:00Z", "2026-03-10T06:00:00Z"),
		s.span("ev-3", hos.StatusYardMove, "2026-03-10T06:00:00Z", "2026-03-10T07:00:00Z"),
		s.span("ev-4", hos.StatusDriving, "2026-03-10T07:00:00Z", "2026-03-10T12:00:00Z"),
	)

	res, err := calc.Compute(in)

	s.Require().NoError(err)

	// The grid buckets PC under off duty and YM under on duty.
	s.Equal(300, res.Totals.DrivingMinutes)
	s.Equal(60, res.Totals.OnDutyMinutes)
	s.Equal(360, res.Totals.OffDutyMinutes)

	// Neither status starts the window or burns driving or cycle minutes.
	s.Equal(300, res.DrivingMinutes)
	s.Equal(300, res.CycleMinutes)
	s.Require().NotNil(res.Remaining.WindowStart)
	s.Equal(s.at("2026-03-10T07:00:00Z"), *res.Remaining.WindowStart)
}

func (s *CalcPublicTestSuite) TestComputeCycleLimit() {
	var events []hos.DutyEvent

	// Eight consecutive nine-hour driving days with full overnight rests.
	day := s.at("2026-03-03T00:00:00Z")
	for i := 0; i < 8; i++ {
		d := day.AddDate(0, 0, i)
		events = append(events, s.span(
			"drive-"+d.Format(hos.DateFormat), hos.StatusDriving,
			d.Add(8*time.Hour).Format(time.RFC3339),
			d.Add(17*time.Hour).Format(time.RFC3339),
		))
		if i < 7 {
			events = append(events, s.span(
				"rest-"+d.Format(hos.DateFormat), hos.StatusOffDuty,
				d.Add(17*time.Hour).Format(time.RFC3339),
				d.Add(32*time.Hour).Format(time.RFC3339),
			))
		}
	}

	in := s.input("2026-03-10", "2026-03-10T17:00:00Z", events...)

	res, err := calc.Compute(in)

	s.Require().NoError(err)
	s.Equal(s.at("2026-03-10T08:00:00Z"), res.Anchor)
	s.Equal(540, res.DrivingMinutes)
	s.Equal(4320, res.CycleMinutes)
	s.Equal(0, res.Remaining.CycleMinutes)
	s.Equal(s.at("2026-03-03T00:00:00Z"), res.CycleWindowStart)

	s.Require().Len(res.Recap, hos.RecapDays)
	s.Equal("2026-03-03", res.Recap[0].Date)
	s.Equal(540, res.Recap[0].OnDutyMinutes)
	s.Equal("2026-03-10", res.Recap[7].Date)
	s.Equal(540, res.Recap[7].OnDutyMinutes)
	// The day aging out after 2026-03-10 is 2026-03-03.
	s.Equal(540, res.Recap[7].RecapMinutes)
}

func (s *CalcPublicTestSuite) TestComputeRecapSixtyHourSevenDay() {
	var events []hos.DutyEvent

	day := s.at("2026-03-03T00:00:00Z")
	for i := 0; i < 8; i++ {
		d := day.AddDate(0, 0, i)
		events = append(events, s.span(
			"drive-"+d.Format(hos.DateFormat), hos.StatusDriving,
			d.Add(8*time.Hour).Format(time.RFC3339),
			d.Add(17*time.Hour).Format(time.RFC3339),
		))
		if i < 7 {
			events = append(events, s.span(
				"rest-"+d.Format(hos.DateFormat), hos.StatusOffDuty,
				d.Add(17*time.Hour).Format(time.RFC3339),
				d.Add(32*time.Hour).Format(time.RFC3339),
			))
		}
	}

	in := s.input("2026-03-10", "2026-03-10T17:00:00Z", events...)
	in.Ruleset = hos.Ruleset60Hour7Day

	res, err := calc.Compute(in)

	s.Require().NoError(err)
	s.Equal(s.at("2026-03-04T00:00:00Z"), res.CycleWindowStart)
	s.Equal(3780, res.CycleMinutes)
	s.Equal(0, res.Remaining.CycleMinutes)

	s.Require().Len(res.Recap, hos.RecapDays)

	// The eighth trailing day falls outside the 7-day cycle: present but
	// zero-valued.
	s.Equal("2026-03-03", res.Recap[0].Date)
	s.Equal(0, res.Recap[0].OnDutyMinutes)
	s.Equal(0, res.Recap[0].RecapMinutes)
	s.Equal(540, res.Recap[7].OnDutyMinutes)
	s.Equal(540, res.Recap[7].RecapMinutes)
}

func (s *CalcPublicTestSuite) TestComputeOpenEventClippedAtAsOf() {
	in := s.input(
		"2026-03-10",
		"2026-03-10T10:30:00Z",
		s.span("ev-1", hos.StatusOffDuty, "2026-03-09T18:00:00Z", "2026-03-10T06:00:00Z"),
		s.openSpan("ev-2", hos.StatusDriving, "2026-03-10T06:00:00Z"),
	)

	res, err := calc.Compute(in)

	s.Require().NoError(err)
	s.Equal(270, res.Totals.DrivingMinutes)
	s.Equal(270, res.DrivingMinutes)
	s.Equal(390, res.Remaining.DrivingMinutes)
	s.Equal(270, res.WindowElapsedMinutes)
}

func (s *CalcPublicTestSuite) TestComputeShortHaulSuppressesWindow() {
	in := s.input(
		"2026-03-10",
		"2026-03-10T13:00:00Z",
		s.span("ev-1", hos.StatusDriving, "2026-03-10T06:00:00Z", "2026-03-10T13:00:00Z"),
	)
	in.ShortHaul = true

	res, err := calc.Compute(in)

	s.Require().NoError(err)
	s.True(res.Remaining.WindowSuppressed)

	// The clock itself still runs; suppression is a presentation flag the
	// detector honors.
	s.NotZero(res.WindowElapsedMinutes)
}

func (s *CalcPublicTestSuite) TestComputeMidnightSplitAcrossTimezone() {
	in := calc.Input{
		DriverID: "driver-1",
		Date:     "2026-03-10",
		Timezone: "America/Phoenix",
		AsOf:     s.at("2026-03-10T12:00:00Z"),
		Events: []hos.DutyEvent{
			// 22:00 to 02:00 local, straddling the Phoenix midnight.
			s.span("ev-1", hos.StatusDriving, "2026-03-10T05:00:00Z", "2026-03-10T09:00:00Z"),
		},
		Ruleset: hos.Ruleset70Hour8Day,
	}

	res, err := calc.Compute(in)

	s.Require().NoError(err)

	// Only the post-midnight half lands in the grid for the log date.
	s.Equal(120, res.Totals.DrivingMinutes)

	s.Require().Len(res.Recap, hos.RecapDays)
	s.Equal("2026-03-09", res.Recap[6].Date)
	s.Equal(120, res.Recap[6].OnDutyMinutes)
	s.Equal("2026-03-10", res.Recap[7].Date)
	s.Equal(120, res.Recap[7].OnDutyMinutes)
}

func (s *CalcPublicTestSuite) TestComputeMalformedWindow() {
	end := s.at("2026-03-10T06:00:00Z")

	tests := []struct {
		name   string
		events []hos.DutyEvent
	}{
		{
			name: "overlapping events",
			events: []hos.DutyEvent{
				s.span("ev-1", hos.StatusDriving, "2026-03-10T06:00:00Z", "2026-03-10T09:00:00Z"),
				s.span("ev-2", hos.StatusOffDuty, "2026-03-10T08:00:00Z", "2026-03-10T10:00:00Z"),
			},
		},
		{
			name: "out of order events",
			events: []hos.DutyEvent{
				s.span("ev-1", hos.StatusDriving, "2026-03-10T08:00:00Z", "2026-03-10T09:00:00Z"),
				s.span("ev-2", hos.StatusOffDuty, "2026-03-10T06:00:00Z", "2026-03-10T07:00:00Z"),
			},
		},
		{
			name: "non-positive duration",
			events: []hos.DutyEvent{
				{
					ID:        "ev-1",
					DriverID:  "driver-1",
					Status:    hos.StatusDriving,
					StartTime: s.at("2026-03-10T06:00:00Z"),
					EndTime:   &end,
				},
			},
		},
		{
			name: "open event not most recent",
			events: []hos.DutyEvent{
				s.openSpan("ev-1", hos.StatusDriving, "2026-03-10T06:00:00Z"),
				s.span("ev-2", hos.StatusOffDuty, "2026-03-10T09:00:00Z", "2026-03-10T10:00:00Z"),
			},
		},
	}

	for _, tc := range tests {
		s.Run(tc.name, func() {
			in := s.input("2026-03-10", "2026-03-10T12:00:00Z", tc.events...)

			_, err := calc.Compute(in)

			s.Require().Error(err)
			s.ErrorIs(err, hos.ErrMalformedHistoricalData)
		})
	}
}

func (s *CalcPublicTestSuite) TestComputeBadInput() {
	tests := []struct {
		name     string
		timezone string
		date     string
	}{
		{
			name:     "unknown timezone",
			timezone: "Mars/Olympus",
			date:     "2026-03-10",
		},
		{
			name:     "unparseable date",
			timezone: "UTC",
			date:     "03/10/2026",
		},
	}

	for _, tc := range tests {
		s.Run(tc.name, func() {
			in := calc.Input{
				DriverID: "driver-1",
				Date:     tc.date,
				Timezone: tc.timezone,
				AsOf:     s.at("2026-03-10T12:00:00Z"),
				Ruleset:  hos.Ruleset70Hour8Day,
			}

			_, err := calc.Compute(in)

			s.Error(err)
		})
	}
}

func TestCalcPublicTestSuite(t *testing.T) {
	suite.Run(t, new(CalcPublicTestSuite))
}
