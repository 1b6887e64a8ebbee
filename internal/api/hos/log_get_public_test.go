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
)

type LogGetPublicTestSuite struct {
	handlerSuite
}

func (s *LogGetPublicTestSuite) get(
	driverID string,
	date string,
) *httptest.ResponseRecorder {
	return s.do(
		s.handler.GetDailyLog,
		http.MethodGet,
		"/hos/drivers/"+driverID+"/logs/"+date,
		"",
		map[string]string{"driverId": driverID, "date": date},
	)
}

func (s *LogGetPublicTestSuite) TestGetDailyLog() {
	s.seedEvent("DRIVING", "2026-03-10T06:00:00Z", "2026-03-10T09:00:00Z")

	rec := s.get("driver-1", "2026-03-10")
	s.Equal(http.StatusOK, rec.Code)

	var log hos.DailyLog
	s.decode(rec, &log)
	s.Equal("driver-1", log.DriverID)
	s.Equal("carrier-1", log.CarrierID)
	s.Equal("2026-03-10", log.Date)
	s.Equal(hos.StateDraft, log.State)
	s.Equal(180, log.Totals.DrivingMinutes)
	s.Require().Len(log.Events, 1)
	s.Equal(hos.StatusDriving, log.Events[0].Status)
}

func (s *LogGetPublicTestSuite) TestGetDailyLogEmptyDayComputedReadOnly() {
	rec := s.get("driver-1", "2026-03-09")
	s.Equal(http.StatusOK, rec.Code)

	var log hos.DailyLog
	s.decode(rec, &log)
	s.Equal("2026-03-09", log.Date)
	s.Empty(log.Events)

	_, err := s.stores.Logs.Get(s.ctx, "driver-1", "2026-03-09")
	s.ErrorIs(err, hos.ErrNotFound)
}

func (s *LogGetPublicTestSuite) TestGetDailyLogBadDate() {
	rec := s.get("driver-1", "03/10/2026")

	s.Equal(http.StatusBadRequest, rec.Code)
	s.Contains(s.errBody(rec), "2006-01-02")
}

func (s *LogGetPublicTestSuite) TestGetDailyLogUnknownDriver() {
	rec := s.get("driver-404", "2026-03-10")

	s.Equal(http.StatusNotFound, rec.Code)
}

func TestLogGetPublicTestSuite(t *testing.T) {
	suite.Run(t, new(LogGetPublicTestSuite))
}
