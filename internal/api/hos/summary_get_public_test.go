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

package hos_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/fleethos-io/fleethos/internal/hos"
	"github.com/fleethos-io/fleethos/internal/hos/engine"
)

type SummaryGetPublicTestSuite struct {
	handlerSuite
}

func (s *SummaryGetPublicTestSuite) get(
	driverID string,
) *httptest.ResponseRecorder {
	return s.do(
		s.handler.GetSummary,
		http.MethodGet,
		"/hos/drivers/"+driverID+"/summary",
		"",
		map[string]string{"driverId": driverID},
	)
}

func (s *SummaryGetPublicTestSuite) TestGetSummary() {
	s.seedEvent("OFF_DUTY", "2026-03-09T18:00:00Z", "2026-03-10T06:00:00Z")
	s.seedEvent("DRIVING", "2026-03-10T06:00:00Z", "2026-03-10T09:00:00Z")

	rec := s.get("driver-1")
	s.Equal(http.StatusOK, rec.Code)

	var summary engine.Summary
	s.decode(rec, &summary)
	s.Equal("driver-1", summary.DriverID)
	s.Equal("carrier-1", summary.CarrierID)
	s.Equal("2026-03-10", summary.Date)
	s.Equal(hos.Rule70Hour8Day, summary.Ruleset)
	s.Equal(480, summary.Remaining.DrivingMinutes)
	s.Equal(120, summary.Remaining.WindowMinutes)
	s.Equal(4020, summary.Remaining.CycleMinutes)
	s.Equal(180, summary.CycleMinutes)
	s.Len(summary.Recap, hos.RecapDays)
	s.False(summary.NeedsReview)
}

func (s *SummaryGetPublicTestSuite) TestGetSummaryNeedsReview() {
	// Overlapping history written behind the engine's back, as a botched
	// ELD import would leave it.
	first := hos.DutyEvent{
		ID:        "event-raw-1",
		DriverID:  "driver-1",
		Status:    hos.StatusDriving,
		StartTime: s.at("2026-03-10T06:00:00Z"),
	}
	first.Close(s.at("2026-03-10T09:00:00Z"))
	second := hos.DutyEvent{
		ID:        "event-raw-2",
		DriverID:  "driver-1",
		Status:    hos.StatusOnDutyNotDriving,
		StartTime: s.at("2026-03-10T08:00:00Z"),
	}
	second.Close(s.at("2026-03-10T10:00:00Z"))
	s.Require().NoError(s.stores.Events.Put(s.ctx, first))
	s.Require().NoError(s.stores.Events.Put(s.ctx, second))

	rec := s.get("driver-1")
	s.Equal(http.StatusOK, rec.Code)

	var summary engine.Summary
	s.decode(rec, &summary)
	s.True(summary.NeedsReview)
	s.Equal("driver-1", summary.DriverID)
}

func (s *SummaryGetPublicTestSuite) TestGetSummaryUnknownDriver() {
	rec := s.get("driver-404")

	s.Equal(http.StatusNotFound, rec.Code)
}

func TestSummaryGetPublicTestSuite(t *testing.T) {
	suite.Run(t, new(SummaryGetPublicTestSuite))
}
